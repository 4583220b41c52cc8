package adaptor

import (
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Hotel   *HotelHandler
	Booking *BookingHandler
	Partner *PartnerHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Hotel:   NewHotelHandler(service.Hotel, log),
		Booking: NewBookingHandler(service.Booking, log),
		Partner: NewPartnerHandler(service.Partner, log),
	}
}

// writeServiceError maps an error chain to an HTTP response by its
// machine code, keeping the human message in the body.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	code := apperr.Code(err)

	switch code {
	case apperr.CodeValidation:
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), code, nil)
	case apperr.CodeNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error(), code)
	case apperr.CodeUnauthorized, apperr.CodeInvalidCreds:
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error(), code)
	case apperr.CodeForbidden:
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error(), code)
	case apperr.CodeEmailTaken, apperr.CodeDuplicateBooking, apperr.CodeInvalidState:
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), code)
	case apperr.CodePaymentDeclined:
		log.Warn(operation+" failed - payment declined", zap.Error(err))
		utils.ResponsePaymentRequired(w, err.Error(), code)
	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parsePagination reads page/per_page query params with defaults.
func parsePagination(r *http.Request) (page, perPage int) {
	query := r.URL.Query()
	return utils.ParseInt(query.Get("page"), 1), utils.ParseInt(query.Get("per_page"), 10)
}
