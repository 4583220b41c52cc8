package usecase

import (
	"context"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/gateway"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Function-field mocks so each test wires only the calls it cares about.

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *entity.User) error
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	updateFn      func(ctx context.Context, user *entity.User) error
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn == nil {
		return nil, nil
	}
	return m.findByEmailFn(ctx, email)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, user)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockSessionRepo struct {
	createFn func(ctx context.Context, session *entity.Session) error
	revokeFn func(ctx context.Context, token string) error
}

var _ repository.SessionRepository = (*mockSessionRepo)(nil)

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, session)
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return nil, nil
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	if m.revokeFn == nil {
		return nil
	}
	return m.revokeFn(ctx, token)
}

func (m *mockSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	return nil
}

type mockHotelRepo struct {
	createFn      func(ctx context.Context, hotel *entity.Hotel) error
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	searchFn      func(ctx context.Context, filter repository.HotelFilter, limit, offset int) ([]*entity.Hotel, error)
	countSearchFn func(ctx context.Context, filter repository.HotelFilter) (int64, error)
	updateFn      func(ctx context.Context, hotel *entity.Hotel) error
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

var _ repository.HotelRepository = (*mockHotelRepo)(nil)

func (m *mockHotelRepo) Create(ctx context.Context, hotel *entity.Hotel) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, hotel)
}

func (m *mockHotelRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockHotelRepo) Search(ctx context.Context, filter repository.HotelFilter, limit, offset int) ([]*entity.Hotel, error) {
	if m.searchFn == nil {
		return nil, nil
	}
	return m.searchFn(ctx, filter, limit, offset)
}

func (m *mockHotelRepo) CountSearch(ctx context.Context, filter repository.HotelFilter) (int64, error) {
	if m.countSearchFn == nil {
		return 0, nil
	}
	return m.countSearchFn(ctx, filter)
}

func (m *mockHotelRepo) Update(ctx context.Context, hotel *entity.Hotel) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, hotel)
}

func (m *mockHotelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockBookingRepo struct {
	createFn        func(ctx context.Context, booking *entity.Booking) error
	findByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	findByUserIDFn  func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	countByUserIDFn func(ctx context.Context, userID uuid.UUID) (int64, error)
	updateStatusFn  func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	updatePaymentFn func(ctx context.Context, bookingID uuid.UUID, paymentStatus entity.PaymentStatus,
		status entity.BookingStatus, method *string) error
}

var _ repository.BookingRepository = (*mockBookingRepo)(nil)

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, booking)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	if m.findByUserIDFn == nil {
		return nil, nil
	}
	return m.findByUserIDFn(ctx, userID, limit, offset)
}

func (m *mockBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.countByUserIDFn == nil {
		return 0, nil
	}
	return m.countByUserIDFn(ctx, userID)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if m.updateStatusFn == nil {
		return nil
	}
	return m.updateStatusFn(ctx, bookingID, status)
}

func (m *mockBookingRepo) UpdatePayment(ctx context.Context, bookingID uuid.UUID, paymentStatus entity.PaymentStatus,
	status entity.BookingStatus, method *string) error {
	if m.updatePaymentFn == nil {
		return nil
	}
	return m.updatePaymentFn(ctx, bookingID, paymentStatus, status, method)
}

type mockPaymentRepo struct {
	createFn        func(ctx context.Context, payment *entity.Payment) error
	findLatestFn    func(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
	findByBookingFn func(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error)
}

var _ repository.PaymentRepository = (*mockPaymentRepo)(nil)

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, payment)
}

func (m *mockPaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	if m.findByBookingFn == nil {
		return nil, nil
	}
	return m.findByBookingFn(ctx, bookingID)
}

func (m *mockPaymentRepo) FindLatestByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	if m.findLatestFn == nil {
		return nil, nil
	}
	return m.findLatestFn(ctx, bookingID)
}

type mockPartnerRepo struct {
	createFn       func(ctx context.Context, app *entity.PartnerApplication) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.PartnerApplication, error)
	findAllFn      func(ctx context.Context, status string, limit, offset int) ([]*entity.PartnerApplication, error)
	countAllFn     func(ctx context.Context, status string) (int64, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error
}

var _ repository.PartnerRepository = (*mockPartnerRepo)(nil)

func (m *mockPartnerRepo) Create(ctx context.Context, app *entity.PartnerApplication) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, app)
}

func (m *mockPartnerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PartnerApplication, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockPartnerRepo) FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.PartnerApplication, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx, status, limit, offset)
}

func (m *mockPartnerRepo) CountAll(ctx context.Context, status string) (int64, error) {
	if m.countAllFn == nil {
		return 0, nil
	}
	return m.countAllFn(ctx, status)
}

func (m *mockPartnerRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error {
	if m.updateStatusFn == nil {
		return nil
	}
	return m.updateStatusFn(ctx, id, status)
}

type mockGateway struct {
	authorizeFn func(ctx context.Context, amount float64, method gateway.Method) (*gateway.Outcome, error)
}

var _ gateway.Gateway = (*mockGateway)(nil)

func (m *mockGateway) Authorize(ctx context.Context, amount float64, method gateway.Method) (*gateway.Outcome, error) {
	if m.authorizeFn == nil {
		return &gateway.Outcome{Status: gateway.OutcomeApproved, Reference: "TXN-TEST"}, nil
	}
	return m.authorizeFn(ctx, amount, method)
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
