package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PartnerHandler struct {
	service usecase.PartnerService
	log     *zap.Logger
}

func NewPartnerHandler(service usecase.PartnerService, log *zap.Logger) *PartnerHandler {
	return &PartnerHandler{
		service: service,
		log:     log.With(zap.String("handler", "partner")),
	}
}

// SubmitApplication handles POST /api/partners/apply (public)
func (h *PartnerHandler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req request.PartnerApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", apperr.CodeValidation, nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", apperr.CodeValidation, validationErrors)
		return
	}

	application, err := h.service.SubmitApplication(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "submit application")
		return
	}

	utils.ResponseCreated(w, "success", application)
}

// GetApplications handles GET /api/admin/partners (admin)
func (h *PartnerHandler) GetApplications(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	page, perPage := parsePagination(r)

	applications, err := h.service.GetApplications(r.Context(), status, &request.PaginatedRequest{Page: page, PerPage: perPage})
	if err != nil {
		writeServiceError(w, h.log, err, "list applications")
		return
	}

	utils.ResponseSuccess(w, "success", applications)
}

// UpdateApplicationStatus handles PUT /api/admin/partners/{id}/status (admin)
func (h *PartnerHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	applicationID := chi.URLParam(r, "id")

	var req request.UpdateApplicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", apperr.CodeValidation, nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", apperr.CodeValidation, validationErrors)
		return
	}

	if err := h.service.UpdateApplicationStatus(r.Context(), applicationID, &req); err != nil {
		writeServiceError(w, h.log, err, "update application status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
