package apperr

import "errors"

// Sentinel errors for every expected failure mode. Services wrap these with
// fmt.Errorf("context: %w", ...) so handlers can branch with errors.Is while
// the message keeps its context.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrEmailTaken       = errors.New("email already registered")
	ErrInvalidCreds     = errors.New("invalid credentials")
	ErrDuplicateBooking = errors.New("duplicate booking for same hotel and dates")
	ErrPaymentDeclined  = errors.New("payment declined")
	ErrInvalidState     = errors.New("operation not allowed in current state")
)

// Stable machine-readable codes, one per sentinel.
const (
	CodeValidation       = "VALIDATION"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeEmailTaken       = "EMAIL_TAKEN"
	CodeInvalidCreds     = "INVALID_CREDENTIALS"
	CodeDuplicateBooking = "DUPLICATE_BOOKING"
	CodePaymentDeclined  = "PAYMENT_DECLINED"
	CodeInvalidState     = "INVALID_STATE"
	CodeInternal         = "INTERNAL"
)

// Code maps an error chain to its machine code. Unknown errors are INTERNAL.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrEmailTaken):
		return CodeEmailTaken
	case errors.Is(err, ErrInvalidCreds):
		return CodeInvalidCreds
	case errors.Is(err, ErrDuplicateBooking):
		return CodeDuplicateBooking
	case errors.Is(err, ErrPaymentDeclined):
		return CodePaymentDeclined
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	default:
		return CodeInternal
	}
}
