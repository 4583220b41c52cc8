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

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// SearchHotels handles GET /api/hotels (public). Empty query params mean
// no filtering, so the same endpoint serves the full catalog listing.
func (h *HotelHandler) SearchHotels(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := request.SearchHotelsRequest{
		Query:    query.Get("q"),
		Category: query.Get("category"),
		City:     query.Get("city"),
	}

	if validationErrors := utils.ValidateStruct(search); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", apperr.CodeValidation, validationErrors)
		return
	}

	page, perPage := parsePagination(r)

	hotels, err := h.service.SearchHotels(r.Context(), &search, &request.PaginatedRequest{Page: page, PerPage: perPage})
	if err != nil {
		writeServiceError(w, h.log, err, "search hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// GetHotelByID handles GET /api/hotels/{id} (public)
func (h *HotelHandler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "id")

	hotel, err := h.service.GetHotelByID(r.Context(), hotelID)
	if err != nil {
		writeServiceError(w, h.log, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// GetHotelsByCategory handles GET /api/hotels/category/{category} (public)
func (h *HotelHandler) GetHotelsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	page, perPage := parsePagination(r)

	hotels, err := h.service.GetHotelsByCategory(r.Context(), category, &request.PaginatedRequest{Page: page, PerPage: perPage})
	if err != nil {
		writeServiceError(w, h.log, err, "list hotels by category")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// CreateHotel handles POST /api/admin/hotels (admin)
func (h *HotelHandler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var req request.HotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", apperr.CodeValidation, nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", apperr.CodeValidation, validationErrors)
		return
	}

	hotel, err := h.service.CreateHotel(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create hotel")
		return
	}

	utils.ResponseCreated(w, "success", hotel)
}

// UpdateHotel handles PUT /api/admin/hotels/{id} (admin)
func (h *HotelHandler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "id")

	var req request.HotelUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", apperr.CodeValidation, nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", apperr.CodeValidation, validationErrors)
		return
	}

	hotel, err := h.service.UpdateHotel(r.Context(), hotelID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update hotel")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// DeleteHotel handles DELETE /api/admin/hotels/{id} (admin)
func (h *HotelHandler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "id")

	if err := h.service.DeleteHotel(r.Context(), hotelID); err != nil {
		writeServiceError(w, h.log, err, "delete hotel")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
