package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/gateway"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	minGuests = 1
	maxGuests = 10
	minRooms  = 1
	maxRooms  = 5
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ProcessPayment(ctx context.Context, userID string, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error)
	CancelBooking(ctx context.Context, bookingID, userID string) error

	// Admin endpoints
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	AdminCancelBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo *repository.Repository // groups booking, hotel and payment repos
	gw   gateway.Gateway
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, gw gateway.Gateway, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		gw:   gw,
		log:  log.With(zap.String("service", "booking")),
	}
}

// ParseDate parses a YYYY-MM-DD string at UTC midnight. All stay dates go
// through here so night arithmetic is exact multiples of 24h.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// Nights returns the calendar-day difference between two stay dates.
// Inputs are normalized to their date part, so clock time and DST in the
// caller's locale cannot shift the count.
func Nights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in) / (24 * time.Hour))
}

// CalculateTotalPrice is nightly price * nights * rooms.
func CalculateTotalPrice(pricePerNight float64, checkIn, checkOut time.Time, rooms int) float64 {
	return pricePerNight * float64(Nights(checkIn, checkOut)) * float64(rooms)
}

// ValidateBookingData enforces the stay invariants against the given current
// time: check-in not before today, check-out strictly after check-in, guests
// and rooms within their inclusive ranges.
func ValidateBookingData(req *request.CreateBookingRequest, now time.Time) error {
	checkIn, err := ParseDate(req.CheckIn)
	if err != nil {
		return fmt.Errorf("invalid check-in date %q: %w", req.CheckIn, apperr.ErrValidation)
	}
	checkOut, err := ParseDate(req.CheckOut)
	if err != nil {
		return fmt.Errorf("invalid check-out date %q: %w", req.CheckOut, apperr.ErrValidation)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		return fmt.Errorf("check-in date is in the past: %w", apperr.ErrValidation)
	}
	if !checkOut.After(checkIn) {
		return fmt.Errorf("check-out must be after check-in: %w", apperr.ErrValidation)
	}
	if req.Guests < minGuests || req.Guests > maxGuests {
		return fmt.Errorf("guests must be between %d and %d: %w", minGuests, maxGuests, apperr.ErrValidation)
	}
	if req.Rooms < minRooms || req.Rooms > maxRooms {
		return fmt.Errorf("rooms must be between %d and %d: %w", minRooms, maxRooms, apperr.ErrValidation)
	}

	return nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// Range and date checks beyond struct tags
	if err := ValidateBookingData(req, time.Now()); err != nil {
		s.log.Warn("Create booking rejected", zap.Error(err), zap.String("user_id", userID))
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", apperr.ErrValidation)
	}

	hotelID, err := uuid.Parse(req.HotelID)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel ID format: %w", apperr.ErrValidation)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		s.log.Error("Failed to load hotel for booking", zap.Error(err), zap.String("hotel_id", req.HotelID))
		return nil, fmt.Errorf("load hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("hotel %s: %w", req.HotelID, apperr.ErrNotFound)
	}

	checkIn, _ := ParseDate(req.CheckIn)
	checkOut, _ := ParseDate(req.CheckOut)
	totalPrice := CalculateTotalPrice(hotel.PricePerNight, checkIn, checkOut, req.Rooms)

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID: utils.GenerateOrderID(),
		UserID:  userUUID,
		HotelID: hotel.ID,
		// Snapshot the hotel terms: later price edits must not touch this booking
		HotelName:       hotel.Name,
		HotelCity:       hotel.City,
		PricePerNight:   hotel.PricePerNight,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		Rooms:           req.Rooms,
		TotalPrice:      totalPrice,
		Status:          entity.BookingStatusPending,
		PaymentStatus:   entity.PaymentStatusPending,
		SpecialRequests: req.SpecialRequests,
	}

	// The fingerprint index makes the duplicate check atomic; no pre-scan
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Warn("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("hotel_id", req.HotelID),
		)
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("user_id", userID),
		zap.String("hotel_id", hotel.ID.String()),
		zap.Int("nights", Nights(checkIn, checkOut)),
		zap.Float64("total_price", totalPrice),
	)

	resp := response.BookingToResponse(booking, Nights(checkIn, checkOut))
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", apperr.ErrValidation)
	}

	limit := page.Limit()
	offset := page.Offset()

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = s.buildBookingResponse(ctx, booking)
	}

	s.log.Info("User bookings retrieved",
		zap.String("user_id", userID),
		zap.Int("count", len(bookings)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(bookingResponses, page.Page, page.PerPage, total), nil
}

func (s *bookingService) ProcessPayment(ctx context.Context, userID string, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Process payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", apperr.ErrValidation)
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format: %w", apperr.ErrValidation)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to load booking for payment", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", req.BookingID, apperr.ErrNotFound)
	}

	if booking.UserID != userUUID {
		s.log.Warn("Payment attempt on foreign booking",
			zap.String("booking_id", req.BookingID),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("booking belongs to another user: %w", apperr.ErrForbidden)
	}

	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("booking status is %s: %w", booking.Status, apperr.ErrInvalidState)
	}
	if booking.PaymentStatus == entity.PaymentStatusPaid {
		return nil, fmt.Errorf("booking already paid: %w", apperr.ErrInvalidState)
	}

	if req.Amount != booking.TotalPrice {
		return nil, fmt.Errorf("payment amount %.2f does not match booking total %.2f: %w",
			req.Amount, booking.TotalPrice, apperr.ErrValidation)
	}

	method := gateway.Method{
		Type:       req.Method.Type,
		CardNumber: req.Method.CardNumber,
		CardHolder: req.Method.CardHolder,
	}

	outcome, err := s.gw.Authorize(ctx, req.Amount, method)
	if err != nil {
		// Gateway unreachable: no state change, booking stays payable
		s.log.Error("Payment gateway error",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, fmt.Errorf("authorize payment: %w", err)
	}

	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID:  bookingID,
		Amount:     req.Amount,
		MethodType: req.Method.Type,
	}
	if last4 := method.Last4(); last4 != "" {
		payment.CardLast4 = &last4
	}

	if outcome.Status == gateway.OutcomeDeclined {
		payment.Status = entity.PaymentStatusFailed

		if err := s.repo.Payment.Create(ctx, payment); err != nil {
			s.log.Error("Failed to record declined payment", zap.Error(err), zap.String("booking_id", req.BookingID))
		}
		// Booking stays pending so the user can retry with another method
		if err := s.repo.Booking.UpdatePayment(ctx, bookingID,
			entity.PaymentStatusFailed, entity.BookingStatusPending, nil); err != nil {
			s.log.Error("Failed to mark payment failed", zap.Error(err), zap.String("booking_id", req.BookingID))
		}

		s.log.Warn("Payment declined",
			zap.String("booking_id", req.BookingID),
			zap.String("reason", outcome.Reason),
		)
		return nil, fmt.Errorf("%s: %w", outcome.Reason, apperr.ErrPaymentDeclined)
	}

	payment.Status = entity.PaymentStatusPaid
	payment.TransactionID = &outcome.Reference

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, fmt.Errorf("create payment: %w", err)
	}

	methodType := req.Method.Type
	if err := s.repo.Booking.UpdatePayment(ctx, bookingID,
		entity.PaymentStatusPaid, entity.BookingStatusConfirmed, &methodType); err != nil {
		s.log.Error("Failed to confirm booking after payment",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	s.log.Info("Payment processed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.String("method", req.Method.Type),
		zap.Float64("amount", req.Amount),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format: %w", apperr.ErrValidation)
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.UserID != userUUID {
		s.log.Warn("Cancel attempt on foreign booking",
			zap.String("booking_id", bookingID),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("booking belongs to another user: %w", apperr.ErrForbidden)
	}

	return s.cancel(ctx, booking)
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := s.buildBookingResponse(ctx, booking)
	return &resp, nil
}

func (s *bookingService) AdminCancelBooking(ctx context.Context, bookingID string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	return s.cancel(ctx, booking)
}

// ==================== HELPER METHODS ====================

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format: %w", apperr.ErrValidation)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, apperr.ErrNotFound)
	}

	return booking, nil
}

func (s *bookingService) cancel(ctx context.Context, booking *entity.Booking) error {
	if booking.Status.Terminal() {
		return fmt.Errorf("booking status is %s: %w", booking.Status, apperr.ErrInvalidState)
	}

	// Paid bookings get the refund flag together with the cancellation
	if booking.PaymentStatus == entity.PaymentStatusPaid {
		if err := s.repo.Booking.UpdatePayment(ctx, booking.ID,
			entity.PaymentStatusRefunded, entity.BookingStatusCancelled, nil); err != nil {
			s.log.Error("Failed to cancel paid booking",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
			return fmt.Errorf("cancel booking %s: %w", booking.ID.String(), err)
		}
	} else {
		if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
			s.log.Error("Failed to cancel booking",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
			return fmt.Errorf("cancel booking %s: %w", booking.ID.String(), err)
		}
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.Bool("refunded", booking.PaymentStatus == entity.PaymentStatusPaid),
	)

	return nil
}

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) response.BookingResponse {
	resp := response.BookingToResponse(booking, Nights(booking.CheckIn, booking.CheckOut))

	payment, err := s.repo.Payment.FindLatestByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Warn("Failed to load payment for booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
	if payment != nil {
		paymentResp := response.PaymentToResponse(payment)
		resp.Payment = &paymentResp
	}

	return resp
}
