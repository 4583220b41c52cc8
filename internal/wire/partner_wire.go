package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePartner(
	r chi.Router,
	partnerHandler *adaptor.PartnerHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Anyone can apply to list their property
	r.Post("/api/partners/apply", partnerHandler.SubmitApplication)

	// Admin application review
	r.Route("/api/admin/partners", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", partnerHandler.GetApplications)
		r.Put("/{id}/status", partnerHandler.UpdateApplicationStatus)
	})
}
