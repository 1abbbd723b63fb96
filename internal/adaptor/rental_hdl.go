package adaptor

import (
	"encoding/json"
	"net/http"

	"wheeloop/internal/dto/request"
	"wheeloop/internal/usecase"
	"wheeloop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RentalHandler struct {
	service usecase.RentalService
	log     *zap.Logger
}

func NewRentalHandler(service usecase.RentalService, log *zap.Logger) *RentalHandler {
	return &RentalHandler{
		service: service,
		log:     log.With(zap.String("handler", "rental")),
	}
}

// CreateRental handles POST /api/rental (protected)
func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rental, err := h.service.CreateRental(r.Context(), userID.String(), &req)
	if err != nil {
		respondServiceError(h.log, w, err, "create rental")
		return
	}

	utils.ResponseCreated(w, "success", rental)
}

// GetUserRentals handles GET /api/rental/userBookings (protected)
func (h *RentalHandler) GetUserRentals(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	rentals, err := h.service.GetUserRentals(r.Context(), userID.String())
	if err != nil {
		respondServiceError(h.log, w, err, "get user rentals")
		return
	}

	utils.ResponseSuccess(w, "success", rentals)
}

// ==================== ADMIN METHODS ====================

// GetAllRentals handles GET /api/rental/adminBookings (admin only)
func (h *RentalHandler) GetAllRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.service.GetAllRentals(r.Context())
	if err != nil {
		respondServiceError(h.log, w, err, "get all rentals")
		return
	}

	utils.ResponseSuccess(w, "success", rentals)
}

// UpdateRental handles PUT /api/rental/updateBooking/{id} (admin only).
// Both the edit modal and the inline status select post here.
func (h *RentalHandler) UpdateRental(w http.ResponseWriter, r *http.Request) {
	rentalID := chi.URLParam(r, "id")
	if rentalID == "" {
		utils.ResponseBadRequest(w, "Rental ID is required", nil)
		return
	}

	var req request.UpdateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rental, err := h.service.UpdateRental(r.Context(), rentalID, &req)
	if err != nil {
		respondServiceError(h.log, w, err, "update rental")
		return
	}

	utils.ResponseSuccess(w, "success", rental)
}

// DeleteRental handles DELETE /api/rental/deleteBooking/{id} (admin only)
func (h *RentalHandler) DeleteRental(w http.ResponseWriter, r *http.Request) {
	rentalID := chi.URLParam(r, "id")
	if rentalID == "" {
		utils.ResponseBadRequest(w, "Rental ID is required", nil)
		return
	}

	if err := h.service.DeleteRental(r.Context(), rentalID); err != nil {
		respondServiceError(h.log, w, err, "delete rental")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
