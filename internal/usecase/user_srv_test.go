package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Name:     "Ivan Petrov",
		Email:    "ivan@example.com",
		Role:     entity.RoleCustomer,
		IsActive: true,
	}

	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			require.Equal(t, user.ID, id)
			return user, nil
		},
	}
	svc := NewUserService(userRepo, testLogger())

	resp, err := svc.GetProfile(ctx, user.ID.String())
	require.NoError(t, err)
	require.Equal(t, user.Email, resp.Email)
	require.Equal(t, user.Name, resp.Name)
}

func TestGetProfile_NotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return nil, nil
		},
	}
	svc := NewUserService(userRepo, testLogger())

	_, err := svc.GetProfile(ctx, uuid.NewString())
	require.Error(t, err)
	require.Equal(t, apperr.CodeNotFound, apperr.Code(err))
}

func TestUpdateProfile_PartialMerge(t *testing.T) {
	ctx := context.Background()
	phone := "+79991234567"
	user := &entity.User{
		Base:  entity.Base{ID: uuid.New()},
		Name:  "Ivan Petrov",
		Email: "ivan@example.com",
		Phone: &phone,
	}

	var updated *entity.User
	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return user, nil
		},
		updateFn: func(ctx context.Context, u *entity.User) error {
			updated = u
			return nil
		},
	}
	svc := NewUserService(userRepo, testLogger())

	newName := "Ivan Sidorov"
	resp, err := svc.UpdateProfile(ctx, user.ID.String(), &request.UpdateProfileRequest{
		Name: &newName,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Ivan Sidorov", updated.Name)
	// phone untouched
	require.NotNil(t, updated.Phone)
	require.Equal(t, phone, *updated.Phone)
	require.Equal(t, "Ivan Sidorov", resp.Name)
}
