package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	OrderID         string               `json:"order_id"`
	UserID          string               `json:"user_id"`
	HotelID         string               `json:"hotel_id"`
	HotelName       string               `json:"hotel_name"`
	HotelCity       string               `json:"hotel_city"`
	PricePerNight   float64              `json:"price_per_night"`
	CheckIn         string               `json:"check_in"`
	CheckOut        string               `json:"check_out"`
	Nights          int                  `json:"nights"`
	Guests          int                  `json:"guests"`
	Rooms           int                  `json:"rooms"`
	TotalPrice      float64              `json:"total_price"`
	Status          entity.BookingStatus `json:"status"`
	PaymentStatus   entity.PaymentStatus `json:"payment_status"`
	PaymentMethod   *string              `json:"payment_method,omitempty"`
	SpecialRequests *string              `json:"special_requests,omitempty"`
	Payment         *PaymentResponse     `json:"payment,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

type PaymentResponse struct {
	ID            string               `json:"id"`
	BookingID     string               `json:"booking_id"`
	Amount        float64              `json:"amount"`
	MethodType    string               `json:"method_type"`
	CardLast4     *string              `json:"card_last4,omitempty"`
	Status        entity.PaymentStatus `json:"status"`
	TransactionID *string              `json:"transaction_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Helper converters
func BookingToResponse(b *entity.Booking, nights int) BookingResponse {
	return BookingResponse{
		ID:              b.ID.String(),
		OrderID:         b.OrderID,
		UserID:          b.UserID.String(),
		HotelID:         b.HotelID.String(),
		HotelName:       b.HotelName,
		HotelCity:       b.HotelCity,
		PricePerNight:   b.PricePerNight,
		CheckIn:         b.CheckIn.Format("2006-01-02"),
		CheckOut:        b.CheckOut.Format("2006-01-02"),
		Nights:          nights,
		Guests:          b.Guests,
		Rooms:           b.Rooms,
		TotalPrice:      b.TotalPrice,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		PaymentMethod:   b.PaymentMethod,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
	}
}

func PaymentToResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID.String(),
		BookingID:     p.BookingID.String(),
		Amount:        p.Amount,
		MethodType:    p.MethodType,
		CardLast4:     p.CardLast4,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}
