package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHotel(
	r chi.Router,
	hotelHandler *adaptor.HotelHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public catalog routes. Listing and search share one endpoint; with no
	// query params the full catalog comes back.
	r.Get("/api/hotels", hotelHandler.SearchHotels)
	r.Get("/api/hotels/category/{category}", hotelHandler.GetHotelsByCategory)
	r.Get("/api/hotels/{id}", hotelHandler.GetHotelByID)

	// Admin catalog management
	r.Route("/api/admin/hotels", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", hotelHandler.CreateHotel)
		r.Put("/{id}", hotelHandler.UpdateHotel)
		r.Delete("/{id}", hotelHandler.DeleteHotel)
	})
}
