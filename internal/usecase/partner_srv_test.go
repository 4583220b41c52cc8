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

func TestSubmitApplication(t *testing.T) {
	ctx := context.Background()

	var created *entity.PartnerApplication
	partnerRepo := &mockPartnerRepo{
		createFn: func(ctx context.Context, app *entity.PartnerApplication) error {
			created = app
			return nil
		},
	}
	svc := NewPartnerService(partnerRepo, testLogger())

	resp, err := svc.SubmitApplication(ctx, &request.PartnerApplicationRequest{
		CompanyName:  "Baikal Hostels LLC",
		ContactEmail: "partner@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, entity.ApplicationStatusPending, created.Status)
	require.Equal(t, created.ID.String(), resp.ID)
}

func TestSubmitApplication_BadInput(t *testing.T) {
	ctx := context.Background()
	svc := NewPartnerService(&mockPartnerRepo{}, testLogger())

	_, err := svc.SubmitApplication(ctx, &request.PartnerApplicationRequest{
		CompanyName:  "B",
		ContactEmail: "nope",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestGetApplications_BadStatusFilter(t *testing.T) {
	ctx := context.Background()
	svc := NewPartnerService(&mockPartnerRepo{}, testLogger())

	_, err := svc.GetApplications(ctx, "archived", &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.Error(t, err)
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateApplicationStatus_Approve(t *testing.T) {
	ctx := context.Background()
	app := &entity.PartnerApplication{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		CompanyName:  "Baikal Hostels LLC",
		ContactEmail: "partner@example.com",
		Status:       entity.ApplicationStatusPending,
	}

	var newStatus entity.ApplicationStatus
	partnerRepo := &mockPartnerRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.PartnerApplication, error) {
			return app, nil
		},
		updateStatusFn: func(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error {
			newStatus = status
			return nil
		},
	}
	svc := NewPartnerService(partnerRepo, testLogger())

	err := svc.UpdateApplicationStatus(ctx, app.ID.String(), &request.UpdateApplicationStatusRequest{
		Status: "approved",
	})
	require.NoError(t, err)
	require.Equal(t, entity.ApplicationStatusApproved, newStatus)
}

func TestUpdateApplicationStatus_DecisionsAreFinal(t *testing.T) {
	ctx := context.Background()
	app := &entity.PartnerApplication{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Status:       entity.ApplicationStatusRejected,
	}

	partnerRepo := &mockPartnerRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.PartnerApplication, error) {
			return app, nil
		},
	}
	svc := NewPartnerService(partnerRepo, testLogger())

	err := svc.UpdateApplicationStatus(ctx, app.ID.String(), &request.UpdateApplicationStatusRequest{
		Status: "approved",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestUpdateApplicationStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	partnerRepo := &mockPartnerRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.PartnerApplication, error) {
			return nil, nil
		},
	}
	svc := NewPartnerService(partnerRepo, testLogger())

	err := svc.UpdateApplicationStatus(ctx, uuid.NewString(), &request.UpdateApplicationStatusRequest{
		Status: "rejected",
	})
	require.Error(t, err)
	require.Equal(t, apperr.CodeNotFound, apperr.Code(err))
}
