package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/gateway"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Hotel   HotelService
	Booking BookingService
	Partner PartnerService
}

func NewService(repo *repository.Repository, config *utils.Config, gw gateway.Gateway, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo.User, log),
		Hotel:   NewHotelService(repo.Hotel, log),
		Booking: NewBookingService(repo, gw, log),
		Partner: NewPartnerService(repo.Partner, log),
	}
}
