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

// HotelFilter is the conjunctive search filter: every set field narrows the
// result. Query matches name/description, City is a substring match, Category
// is exact.
type HotelFilter struct {
	Query    string
	Category string
	City     string
}

type HotelRepository interface {
	Create(ctx context.Context, hotel *entity.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	Search(ctx context.Context, filter HotelFilter, limit, offset int) ([]*entity.Hotel, error)
	CountSearch(ctx context.Context, filter HotelFilter) (int64, error)
	Update(ctx context.Context, hotel *entity.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type hotelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHotelRepository(db database.PgxIface, log *zap.Logger) HotelRepository {
	return &hotelRepository{
		db:  db,
		log: log.With(zap.String("repository", "hotel")),
	}
}

const hotelColumns = `id, name, category, city, address, price_per_night,
	rating, image_url, description, amenities, created_at, updated_at`

func scanHotel(row pgx.Row) (*entity.Hotel, error) {
	var hotel entity.Hotel
	err := row.Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Category,
		&hotel.City,
		&hotel.Address,
		&hotel.PricePerNight,
		&hotel.Rating,
		&hotel.ImageURL,
		&hotel.Description,
		&hotel.Amenities,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		INSERT INTO hotels (id, name, category, city, address, price_per_night,
		                    rating, image_url, description, amenities, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		hotel.ID,
		hotel.Name,
		hotel.Category,
		hotel.City,
		hotel.Address,
		hotel.PricePerNight,
		hotel.Rating,
		hotel.ImageURL,
		hotel.Description,
		hotel.Amenities,
		hotel.CreatedAt,
		hotel.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create hotel",
			zap.Error(err),
			zap.String("name", hotel.Name),
		)
		return fmt.Errorf("create hotel %s: %w", hotel.Name, err)
	}

	return nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE id = $1`

	hotel, err := scanHotel(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hotel by ID",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
		)
		return nil, fmt.Errorf("find hotel by ID %s: %w", id.String(), err)
	}

	return hotel, nil
}

// buildSearchWhere returns the WHERE clause and args for a filter. Args start
// at $1; the caller appends LIMIT/OFFSET placeholders after them.
func buildSearchWhere(filter HotelFilter) (string, []any) {
	where := " WHERE TRUE"
	var args []any

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		where += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.City != "" {
		args = append(args, "%"+filter.City+"%")
		where += fmt.Sprintf(" AND city ILIKE $%d", len(args))
	}

	return where, args
}

func (r *hotelRepository) Search(ctx context.Context, filter HotelFilter, limit, offset int) ([]*entity.Hotel, error) {
	where, args := buildSearchWhere(filter)

	query := `SELECT ` + hotelColumns + ` FROM hotels` + where +
		fmt.Sprintf(" ORDER BY rating DESC, name LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search hotels",
			zap.Error(err),
			zap.String("query", filter.Query),
			zap.String("category", filter.Category),
			zap.String("city", filter.City),
		)
		return nil, fmt.Errorf("search hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*entity.Hotel
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			r.log.Error("Failed to scan hotel row", zap.Error(err))
			return nil, fmt.Errorf("scan hotel row: %w", err)
		}
		hotels = append(hotels, hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hotel rows: %w", err)
	}

	return hotels, nil
}

func (r *hotelRepository) CountSearch(ctx context.Context, filter HotelFilter) (int64, error) {
	where, args := buildSearchWhere(filter)

	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM hotels`+where, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count hotels", zap.Error(err))
		return 0, fmt.Errorf("count hotels: %w", err)
	}

	return count, nil
}

func (r *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		UPDATE hotels
		SET name = $2, category = $3, city = $4, address = $5, price_per_night = $6,
		    rating = $7, image_url = $8, description = $9, amenities = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		hotel.ID,
		hotel.Name,
		hotel.Category,
		hotel.City,
		hotel.Address,
		hotel.PricePerNight,
		hotel.Rating,
		hotel.ImageURL,
		hotel.Description,
		hotel.Amenities,
		hotel.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update hotel",
			zap.Error(err),
			zap.String("hotel_id", hotel.ID.String()),
		)
		return fmt.Errorf("update hotel %s: %w", hotel.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", hotel.ID.String())
	}

	return nil
}

func (r *hotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM hotels WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete hotel",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
		)
		return fmt.Errorf("delete hotel %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", id.String())
	}

	r.log.Info("Hotel deleted", zap.String("hotel_id", id.String()))
	return nil
}
