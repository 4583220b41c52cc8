package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	// Completed is set by an external fulfillment process after checkout;
	// nothing in this service produces it, but guards must accept it.
	BookingStatusCompleted BookingStatus = "completed"
)

// Terminal reports whether the status admits no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking snapshots the hotel name, city and nightly price at creation time,
// so later catalog edits never change the terms of an existing booking.
type Booking struct {
	BaseNoDelete
	OrderID         string        `db:"order_id"`
	UserID          uuid.UUID     `db:"user_id"`
	HotelID         uuid.UUID     `db:"hotel_id"`
	HotelName       string        `db:"hotel_name"`
	HotelCity       string        `db:"hotel_city"`
	PricePerNight   float64       `db:"price_per_night"`
	CheckIn         time.Time     `db:"check_in"`
	CheckOut        time.Time     `db:"check_out"`
	Guests          int           `db:"guests"`
	Rooms           int           `db:"rooms"`
	TotalPrice      float64       `db:"total_price"`
	Status          BookingStatus `db:"status"`
	PaymentStatus   PaymentStatus `db:"payment_status"`
	PaymentMethod   *string       `db:"payment_method"`
	SpecialRequests *string       `db:"special_requests"`
}
