package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		phone TEXT,
		avatar_url TEXT,
		role TEXT NOT NULL DEFAULT 'customer',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		token UUID NOT NULL UNIQUE,
		user_agent TEXT,
		ip_address TEXT,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS hotels (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		city TEXT NOT NULL,
		address TEXT NOT NULL,
		price_per_night DOUBLE PRECISION NOT NULL,
		rating DOUBLE PRECISION NOT NULL,
		image_url TEXT,
		description TEXT,
		amenities TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS hotels_category_idx ON hotels (category)`,
	`CREATE INDEX IF NOT EXISTS hotels_city_idx ON hotels (city)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		order_id TEXT NOT NULL UNIQUE,
		user_id UUID NOT NULL REFERENCES users(id),
		hotel_id UUID NOT NULL REFERENCES hotels(id),
		hotel_name TEXT NOT NULL,
		hotel_city TEXT NOT NULL,
		price_per_night DOUBLE PRECISION NOT NULL,
		check_in DATE NOT NULL,
		check_out DATE NOT NULL,
		guests INT NOT NULL,
		rooms INT NOT NULL,
		total_price DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL,
		payment_status TEXT NOT NULL,
		payment_method TEXT,
		special_requests TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	// One live booking per (user, hotel, dates). Cancelled bookings do not
	// block rebooking the same dates.
	`CREATE UNIQUE INDEX IF NOT EXISTS bookings_fingerprint_idx
		ON bookings (user_id, hotel_id, check_in, check_out)
		WHERE status <> 'cancelled'`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		booking_id UUID NOT NULL REFERENCES bookings(id),
		amount DOUBLE PRECISION NOT NULL,
		method_type TEXT NOT NULL,
		card_last4 TEXT,
		status TEXT NOT NULL,
		transaction_id TEXT,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS partner_applications (
		id UUID PRIMARY KEY,
		company_name TEXT NOT NULL,
		contact_email TEXT NOT NULL,
		contact_phone TEXT,
		message TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
}

type seedHotel struct {
	name        string
	category    string
	city        string
	address     string
	price       float64
	rating      float64
	imageURL    string
	description string
	amenities   []string
}

var seedHotels = []seedHotel{
	{"Grand Plaza Hotel", "luxury", "Moscow", "Tverskaya St 1", 15000, 4.8,
		"https://images.example.com/hotels/grand-plaza.jpg",
		"Five-star hotel in the heart of the city with panoramic views from the Plaza rooftop bar.",
		[]string{"wifi", "pool", "spa", "gym", "restaurant", "parking"}},
	{"Business Park Inn", "business", "Moscow", "Leningradsky Ave 36", 7500, 4.4,
		"https://images.example.com/hotels/business-park.jpg",
		"Conference rooms, fast wifi and an airport shuttle for the working traveller.",
		[]string{"wifi", "conference", "restaurant", "parking"}},
	{"Riverside Hostel", "budget", "Saint Petersburg", "Naberezhnaya 12", 1800, 4.1,
		"https://images.example.com/hotels/riverside-hostel.jpg",
		"Clean dorms and private rooms two minutes from the embankment.",
		[]string{"wifi", "kitchen", "laundry"}},
	{"Seaside Resort & Spa", "resort", "Sochi", "Primorskaya St 8", 12000, 4.7,
		"https://images.example.com/hotels/seaside-resort.jpg",
		"Private beach, three pools and an all-inclusive option.",
		[]string{"wifi", "pool", "spa", "beach", "restaurant", "bar"}},
	{"Old Town Boutique", "boutique", "Kazan", "Bauman St 21", 6200, 4.6,
		"https://images.example.com/hotels/old-town.jpg",
		"Twelve individually designed rooms in a restored merchant house.",
		[]string{"wifi", "breakfast", "bar"}},
	{"Metropol Luxe", "luxury", "Saint Petersburg", "Nevsky Prospekt 44", 18500, 4.9,
		"https://images.example.com/hotels/metropol-luxe.jpg",
		"Historic grand hotel with butler service and a Michelin-starred restaurant.",
		[]string{"wifi", "spa", "gym", "restaurant", "concierge", "parking"}},
	{"Transit Capsule", "budget", "Moscow", "Sheremetyevo Terminal B", 2400, 3.9,
		"https://images.example.com/hotels/transit-capsule.jpg",
		"Capsule rooms inside the airport for short layovers.",
		[]string{"wifi", "shower", "luggage"}},
	{"Mountain View Resort", "resort", "Krasnaya Polyana", "Gornaya St 3", 9800, 4.5,
		"https://images.example.com/hotels/mountain-view.jpg",
		"Ski-in ski-out resort with heated outdoor pool.",
		[]string{"wifi", "pool", "ski", "restaurant", "spa"}},
}

// Migrate creates the schema and seeds the hotel catalog. Safe to run on
// every startup: tables are IF NOT EXISTS and seeding only fills an empty
// catalog. Seed rows that still carry local-path image URLs from older builds
// are dropped first so they get replaced with hosted URLs.
func Migrate(ctx context.Context, db PgxIface) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("exec schema statement: %w", err)
		}
	}

	// Stale seed rows reference images that shipped with the old build
	if _, err := db.Exec(ctx,
		`DELETE FROM hotels WHERE image_url LIKE '/images/%'
			AND id NOT IN (SELECT hotel_id FROM bookings)`); err != nil {
		return fmt.Errorf("drop stale seed hotels: %w", err)
	}

	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM hotels`).Scan(&count); err != nil {
		return fmt.Errorf("count hotels: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, h := range seedHotels {
		_, err := db.Exec(ctx, `
			INSERT INTO hotels (id, name, category, city, address, price_per_night,
			                    rating, image_url, description, amenities, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		`, uuid.New(), h.name, h.category, h.city, h.address, h.price, h.rating,
			h.imageURL, h.description, h.amenities)
		if err != nil {
			return fmt.Errorf("seed hotel %s: %w", h.name, err)
		}
	}

	return nil
}
