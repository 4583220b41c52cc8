package entity

import (
	"github.com/google/uuid"
)

// Payment is one authorization attempt against a booking. A booking keeps its
// aggregate payment status; the payments table keeps the attempt history.
type Payment struct {
	BaseSimple
	BookingID     uuid.UUID     `db:"booking_id"`
	Amount        float64       `db:"amount"`
	MethodType    string        `db:"method_type"`
	CardLast4     *string       `db:"card_last4"`
	Status        PaymentStatus `db:"status"`
	TransactionID *string       `db:"transaction_id"`
}
