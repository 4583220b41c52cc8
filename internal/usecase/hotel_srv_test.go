package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSearchHotels_PassesFilter(t *testing.T) {
	ctx := context.Background()
	hotel := testHotel(4500)

	var gotFilter repository.HotelFilter
	hotelRepo := &mockHotelRepo{
		searchFn: func(ctx context.Context, filter repository.HotelFilter, limit, offset int) ([]*entity.Hotel, error) {
			gotFilter = filter
			require.Equal(t, 10, limit)
			require.Equal(t, 0, offset)
			return []*entity.Hotel{hotel}, nil
		},
		countSearchFn: func(ctx context.Context, filter repository.HotelFilter) (int64, error) {
			return 1, nil
		},
	}
	svc := NewHotelService(hotelRepo, testLogger())

	resp, err := svc.SearchHotels(ctx, &request.SearchHotelsRequest{
		Query:    "plaza",
		Category: "luxury",
		City:     "Moscow",
	}, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	require.Equal(t, int64(1), resp.Pagination.Total)

	require.Equal(t, "plaza", gotFilter.Query)
	require.Equal(t, "luxury", gotFilter.Category)
	require.Equal(t, "Moscow", gotFilter.City)
}

func TestSearchHotels_BadCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewHotelService(&mockHotelRepo{}, testLogger())

	_, err := svc.SearchHotels(ctx, &request.SearchHotelsRequest{
		Category: "castle",
	}, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.Error(t, err)
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestGetHotelByID_NotFound(t *testing.T) {
	ctx := context.Background()
	hotelRepo := &mockHotelRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
			return nil, nil
		},
	}
	svc := NewHotelService(hotelRepo, testLogger())

	_, err := svc.GetHotelByID(ctx, uuid.NewString())
	require.Error(t, err)
	require.Equal(t, apperr.CodeNotFound, apperr.Code(err))
}

func TestGetHotelByID_BadID(t *testing.T) {
	ctx := context.Background()
	svc := NewHotelService(&mockHotelRepo{}, testLogger())

	_, err := svc.GetHotelByID(ctx, "not-a-uuid")
	require.Error(t, err)
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestGetHotelsByCategory_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewHotelService(&mockHotelRepo{}, testLogger())

	_, err := svc.GetHotelsByCategory(ctx, "motel", &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.Error(t, err)
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCreateHotel(t *testing.T) {
	ctx := context.Background()

	var created *entity.Hotel
	hotelRepo := &mockHotelRepo{
		createFn: func(ctx context.Context, h *entity.Hotel) error {
			created = h
			return nil
		},
	}
	svc := NewHotelService(hotelRepo, testLogger())

	resp, err := svc.CreateHotel(ctx, &request.HotelRequest{
		Name:          "Riverside Inn",
		Category:      "budget",
		City:          "Kazan",
		Address:       "12 River St",
		PricePerNight: 2500,
		Rating:        4.1,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, entity.CategoryBudget, created.Category)
	require.NotNil(t, created.Amenities) // nil amenities normalize to empty
	require.Equal(t, created.ID.String(), resp.ID)
}

func TestUpdateHotel_PartialMerge(t *testing.T) {
	ctx := context.Background()
	existing := testHotel(5000)

	var updated *entity.Hotel
	hotelRepo := &mockHotelRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, h *entity.Hotel) error {
			updated = h
			return nil
		},
	}
	svc := NewHotelService(hotelRepo, testLogger())

	newPrice := 5500.0
	_, err := svc.UpdateHotel(ctx, existing.ID.String(), &request.HotelUpdateRequest{
		PricePerNight: &newPrice,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, 5500.0, updated.PricePerNight)
	// untouched fields survive
	require.Equal(t, "Grand Plaza", updated.Name)
	require.Equal(t, "Moscow", updated.City)
}

func TestDeleteHotel_NotFound(t *testing.T) {
	ctx := context.Background()
	hotelRepo := &mockHotelRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
			return nil, nil
		},
	}
	svc := NewHotelService(hotelRepo, testLogger())

	err := svc.DeleteHotel(ctx, uuid.NewString())
	require.Error(t, err)
	require.Equal(t, apperr.CodeNotFound, apperr.Code(err))
}
