package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PartnerRepository interface {
	Create(ctx context.Context, app *entity.PartnerApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PartnerApplication, error)
	FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.PartnerApplication, error)
	CountAll(ctx context.Context, status string) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error
}

type partnerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPartnerRepository(db database.PgxIface, log *zap.Logger) PartnerRepository {
	return &partnerRepository{
		db:  db,
		log: log.With(zap.String("repository", "partner")),
	}
}

func (r *partnerRepository) Create(ctx context.Context, app *entity.PartnerApplication) error {
	query := `
		INSERT INTO partner_applications (id, company_name, contact_email, contact_phone,
		                                  message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		app.ID,
		app.CompanyName,
		app.ContactEmail,
		app.ContactPhone,
		app.Message,
		app.Status,
		app.CreatedAt,
		app.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create partner application",
			zap.Error(err),
			zap.String("company", app.CompanyName),
		)
		return fmt.Errorf("create partner application %s: %w", app.CompanyName, err)
	}

	return nil
}

func (r *partnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PartnerApplication, error) {
	query := `
		SELECT id, company_name, contact_email, contact_phone, message, status, created_at, updated_at
		FROM partner_applications
		WHERE id = $1
	`

	var app entity.PartnerApplication
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID,
		&app.CompanyName,
		&app.ContactEmail,
		&app.ContactPhone,
		&app.Message,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find partner application",
			zap.Error(err),
			zap.String("application_id", id.String()),
		)
		return nil, fmt.Errorf("find partner application %s: %w", id.String(), err)
	}

	return &app, nil
}

func (r *partnerRepository) FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.PartnerApplication, error) {
	query := `
		SELECT id, company_name, contact_email, contact_phone, message, status, created_at, updated_at
		FROM partner_applications
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find partner applications",
			zap.Error(err),
			zap.String("status", status),
		)
		return nil, fmt.Errorf("find partner applications: %w", err)
	}
	defer rows.Close()

	var apps []*entity.PartnerApplication
	for rows.Next() {
		var app entity.PartnerApplication
		err := rows.Scan(
			&app.ID,
			&app.CompanyName,
			&app.ContactEmail,
			&app.ContactPhone,
			&app.Message,
			&app.Status,
			&app.CreatedAt,
			&app.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan partner application row", zap.Error(err))
			return nil, fmt.Errorf("scan partner application row: %w", err)
		}
		apps = append(apps, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate partner application rows: %w", err)
	}

	return apps, nil
}

func (r *partnerRepository) CountAll(ctx context.Context, status string) (int64, error) {
	query := `SELECT COUNT(*) FROM partner_applications WHERE ($1 = '' OR status = $1)`

	var count int64
	err := r.db.QueryRow(ctx, query, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count partner applications", zap.Error(err))
		return 0, fmt.Errorf("count partner applications: %w", err)
	}

	return count, nil
}

func (r *partnerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error {
	query := `UPDATE partner_applications SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update partner application status",
			zap.Error(err),
			zap.String("application_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update partner application %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("partner application %s not found", id.String())
	}

	return nil
}
