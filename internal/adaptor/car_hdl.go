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

type CarHandler struct {
	service usecase.CarService
	log     *zap.Logger
}

func NewCarHandler(service usecase.CarService, log *zap.Logger) *CarHandler {
	return &CarHandler{
		service: service,
		log:     log.With(zap.String("handler", "car")),
	}
}

// ListCars handles GET /api/car/findAll (public)
// Supports ?search= substring filtering on name and type.
func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	cars, err := h.service.ListCars(r.Context(), search)
	if err != nil {
		respondServiceError(h.log, w, err, "list cars")
		return
	}

	utils.ResponseSuccess(w, "success", cars)
}

// GetCar handles GET /api/car/{id} (public)
func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	carID := chi.URLParam(r, "id")
	if carID == "" {
		utils.ResponseBadRequest(w, "Car ID is required", nil)
		return
	}

	car, err := h.service.GetCar(r.Context(), carID)
	if err != nil {
		respondServiceError(h.log, w, err, "get car")
		return
	}

	utils.ResponseSuccess(w, "success", car)
}

// ==================== ADMIN METHODS ====================

// CreateCar handles POST /api/car (admin only)
func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req request.CarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	car, err := h.service.CreateCar(r.Context(), &req)
	if err != nil {
		respondServiceError(h.log, w, err, "create car")
		return
	}

	utils.ResponseCreated(w, "success", car)
}

// UpdateCar handles PUT /api/car/{id} (admin only)
func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	carID := chi.URLParam(r, "id")
	if carID == "" {
		utils.ResponseBadRequest(w, "Car ID is required", nil)
		return
	}

	var req request.CarUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	car, err := h.service.UpdateCar(r.Context(), carID, &req)
	if err != nil {
		respondServiceError(h.log, w, err, "update car")
		return
	}

	utils.ResponseSuccess(w, "success", car)
}

// DeleteCar handles DELETE /api/car/{id} (admin only)
func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	carID := chi.URLParam(r, "id")
	if carID == "" {
		utils.ResponseBadRequest(w, "Car ID is required", nil)
		return
	}

	if err := h.service.DeleteCar(r.Context(), carID); err != nil {
		respondServiceError(h.log, w, err, "delete car")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
