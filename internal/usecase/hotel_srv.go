package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HotelService interface {
	SearchHotels(ctx context.Context, search *request.SearchHotelsRequest, page *request.PaginatedRequest) (*response.PaginatedResponse[response.HotelResponse], error)
	GetHotelByID(ctx context.Context, hotelID string) (*response.HotelResponse, error)
	GetHotelsByCategory(ctx context.Context, category string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.HotelResponse], error)

	// Admin endpoints
	CreateHotel(ctx context.Context, req *request.HotelRequest) (*response.HotelResponse, error)
	UpdateHotel(ctx context.Context, hotelID string, req *request.HotelUpdateRequest) (*response.HotelResponse, error)
	DeleteHotel(ctx context.Context, hotelID string) error
}

type hotelService struct {
	hotelRepo repository.HotelRepository
	log       *zap.Logger
}

func NewHotelService(hotelRepo repository.HotelRepository, log *zap.Logger) HotelService {
	return &hotelService{
		hotelRepo: hotelRepo,
		log:       log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) SearchHotels(ctx context.Context, search *request.SearchHotelsRequest, page *request.PaginatedRequest) (*response.PaginatedResponse[response.HotelResponse], error) {
	if errs := utils.ValidateStruct(search); len(errs) > 0 {
		s.log.Warn("Search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	filter := repository.HotelFilter{
		Query:    search.Query,
		Category: search.Category,
		City:     search.City,
	}

	return s.paginatedSearch(ctx, filter, page)
}

func (s *hotelService) GetHotelByID(ctx context.Context, hotelID string) (*response.HotelResponse, error) {
	id, err := uuid.Parse(hotelID)
	if err != nil {
		s.log.Warn("Invalid hotel ID format", zap.String("hotel_id", hotelID), zap.Error(err))
		return nil, fmt.Errorf("invalid hotel ID: %w", apperr.ErrValidation)
	}

	hotel, err := s.hotelRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get hotel by ID", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("get hotel by ID: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("hotel %s: %w", hotelID, apperr.ErrNotFound)
	}

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) GetHotelsByCategory(ctx context.Context, category string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.HotelResponse], error) {
	if !entity.HotelCategory(category).Valid() {
		return nil, fmt.Errorf("unknown category %q: %w", category, apperr.ErrValidation)
	}

	return s.paginatedSearch(ctx, repository.HotelFilter{Category: category}, page)
}

// ==================== ADMIN METHODS ====================

func (s *hotelService) CreateHotel(ctx context.Context, req *request.HotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hotel validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	hotel := &entity.Hotel{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Category:      entity.HotelCategory(req.Category),
		City:          req.City,
		Address:       req.Address,
		PricePerNight: req.PricePerNight,
		Rating:        req.Rating,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
		Amenities:     req.Amenities,
	}
	if hotel.Amenities == nil {
		hotel.Amenities = []string{}
	}

	if err := s.hotelRepo.Create(ctx, hotel); err != nil {
		s.log.Error("Failed to create hotel", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	s.log.Info("Hotel created",
		zap.String("hotel_id", hotel.ID.String()),
		zap.String("name", hotel.Name),
		zap.String("city", hotel.City),
	)

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) UpdateHotel(ctx context.Context, hotelID string, req *request.HotelUpdateRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update hotel validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel ID: %w", apperr.ErrValidation)
	}

	hotel, err := s.hotelRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get hotel for update", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("update hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("hotel %s: %w", hotelID, apperr.ErrNotFound)
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.Category != nil {
		hotel.Category = entity.HotelCategory(*req.Category)
	}
	if req.City != nil {
		hotel.City = *req.City
	}
	if req.Address != nil {
		hotel.Address = *req.Address
	}
	if req.PricePerNight != nil {
		hotel.PricePerNight = *req.PricePerNight
	}
	if req.Rating != nil {
		hotel.Rating = *req.Rating
	}
	if req.ImageURL != nil {
		hotel.ImageURL = req.ImageURL
	}
	if req.Description != nil {
		hotel.Description = req.Description
	}
	if req.Amenities != nil {
		hotel.Amenities = req.Amenities
	}
	hotel.UpdatedAt = time.Now()

	if err := s.hotelRepo.Update(ctx, hotel); err != nil {
		s.log.Error("Failed to update hotel", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("update hotel: %w", err)
	}

	s.log.Info("Hotel updated", zap.String("hotel_id", hotelID))

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) DeleteHotel(ctx context.Context, hotelID string) error {
	id, err := uuid.Parse(hotelID)
	if err != nil {
		return fmt.Errorf("invalid hotel ID: %w", apperr.ErrValidation)
	}

	hotel, err := s.hotelRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get hotel for delete", zap.Error(err), zap.String("hotel_id", hotelID))
		return fmt.Errorf("delete hotel: %w", err)
	}
	if hotel == nil {
		return fmt.Errorf("hotel %s: %w", hotelID, apperr.ErrNotFound)
	}

	if err := s.hotelRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete hotel", zap.Error(err), zap.String("hotel_id", hotelID))
		return fmt.Errorf("delete hotel: %w", err)
	}

	s.log.Info("Hotel deleted",
		zap.String("hotel_id", hotelID),
		zap.String("name", hotel.Name),
	)
	return nil
}

// ==================== HELPER METHODS ====================

func (s *hotelService) paginatedSearch(ctx context.Context, filter repository.HotelFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.HotelResponse], error) {
	limit := page.Limit()
	offset := page.Offset()

	hotels, err := s.hotelRepo.Search(ctx, filter, limit, offset)
	if err != nil {
		s.log.Error("Failed to search hotels",
			zap.Error(err),
			zap.String("query", filter.Query),
			zap.String("category", filter.Category),
			zap.String("city", filter.City),
		)
		return nil, fmt.Errorf("search hotels: %w", err)
	}

	total, err := s.hotelRepo.CountSearch(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count hotels", zap.Error(err))
		return nil, fmt.Errorf("count hotels: %w", err)
	}

	hotelResponses := make([]response.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		hotelResponses[i] = response.HotelToResponse(hotel)
	}

	s.log.Info("Hotels retrieved",
		zap.Int("count", len(hotels)),
		zap.Int64("total", total),
		zap.Int("page", page.Page),
		zap.Int("per_page", page.PerPage),
	)

	return response.NewPaginatedResponse(hotelResponses, page.Page, page.PerPage, total), nil
}
