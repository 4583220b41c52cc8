package request

type CreateBookingRequest struct {
	HotelID         string  `json:"hotel_id" validate:"required,uuid4"`
	CheckIn         string  `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut        string  `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests          int     `json:"guests" validate:"required,min=1,max=10"`
	Rooms           int     `json:"rooms" validate:"required,min=1,max=5"`
	SpecialRequests *string `json:"special_requests,omitempty" validate:"omitempty,max=1000"`
}

type PaymentMethodRequest struct {
	Type       string `json:"type" validate:"required,oneof=card sbp cash"`
	CardNumber string `json:"card_number,omitempty" validate:"omitempty,min=13,max=19,numeric"`
	CardHolder string `json:"card_holder,omitempty" validate:"omitempty,max=100"`
}

type ProcessPaymentRequest struct {
	BookingID string               `json:"booking_id" validate:"required,uuid4"`
	Amount    float64              `json:"amount" validate:"required,gt=0"`
	Method    PaymentMethodRequest `json:"method" validate:"required"`
}
