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

type PartnerService interface {
	SubmitApplication(ctx context.Context, req *request.PartnerApplicationRequest) (*response.PartnerApplicationResponse, error)

	// Admin endpoints
	GetApplications(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.PartnerApplicationResponse], error)
	UpdateApplicationStatus(ctx context.Context, applicationID string, req *request.UpdateApplicationStatusRequest) error
}

type partnerService struct {
	partnerRepo repository.PartnerRepository
	log         *zap.Logger
}

func NewPartnerService(partnerRepo repository.PartnerRepository, log *zap.Logger) PartnerService {
	return &partnerService{
		partnerRepo: partnerRepo,
		log:         log.With(zap.String("service", "partner")),
	}
}

func (s *partnerService) SubmitApplication(ctx context.Context, req *request.PartnerApplicationRequest) (*response.PartnerApplicationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Partner application validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	app := &entity.PartnerApplication{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CompanyName:  req.CompanyName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Message:      req.Message,
		Status:       entity.ApplicationStatusPending,
	}

	if err := s.partnerRepo.Create(ctx, app); err != nil {
		s.log.Error("Failed to submit partner application",
			zap.Error(err),
			zap.String("company", req.CompanyName),
		)
		return nil, fmt.Errorf("submit application: %w", err)
	}

	s.log.Info("Partner application submitted",
		zap.String("application_id", app.ID.String()),
		zap.String("company", app.CompanyName),
	)

	resp := response.PartnerApplicationToResponse(app)
	return &resp, nil
}

// ==================== ADMIN METHODS ====================

func (s *partnerService) GetApplications(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.PartnerApplicationResponse], error) {
	if status != "" && status != string(entity.ApplicationStatusPending) &&
		status != string(entity.ApplicationStatusApproved) &&
		status != string(entity.ApplicationStatusRejected) {
		return nil, fmt.Errorf("unknown status %q: %w", status, apperr.ErrValidation)
	}

	limit := page.Limit()
	offset := page.Offset()

	apps, err := s.partnerRepo.FindAll(ctx, status, limit, offset)
	if err != nil {
		s.log.Error("Failed to get partner applications", zap.Error(err))
		return nil, fmt.Errorf("get applications: %w", err)
	}

	total, err := s.partnerRepo.CountAll(ctx, status)
	if err != nil {
		s.log.Error("Failed to count partner applications", zap.Error(err))
		return nil, fmt.Errorf("count applications: %w", err)
	}

	appResponses := make([]response.PartnerApplicationResponse, len(apps))
	for i, app := range apps {
		appResponses[i] = response.PartnerApplicationToResponse(app)
	}

	return response.NewPaginatedResponse(appResponses, page.Page, page.PerPage, total), nil
}

func (s *partnerService) UpdateApplicationStatus(ctx context.Context, applicationID string, req *request.UpdateApplicationStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(applicationID)
	if err != nil {
		return fmt.Errorf("invalid application ID format: %w", apperr.ErrValidation)
	}

	app, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load partner application", zap.Error(err), zap.String("application_id", applicationID))
		return fmt.Errorf("load application: %w", err)
	}
	if app == nil {
		return fmt.Errorf("application %s: %w", applicationID, apperr.ErrNotFound)
	}

	// Decisions are final
	if app.Status != entity.ApplicationStatusPending {
		return fmt.Errorf("application status is %s: %w", app.Status, apperr.ErrInvalidState)
	}

	if err := s.partnerRepo.UpdateStatus(ctx, id, entity.ApplicationStatus(req.Status)); err != nil {
		s.log.Error("Failed to update application status",
			zap.Error(err),
			zap.String("application_id", applicationID),
		)
		return fmt.Errorf("update application %s: %w", applicationID, err)
	}

	s.log.Info("Partner application decided",
		zap.String("application_id", applicationID),
		zap.String("status", req.Status),
	)

	return nil
}
