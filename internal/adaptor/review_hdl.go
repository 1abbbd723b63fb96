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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// SubmitReview handles POST /api/review/submit (protected).
// Resubmitting for the same car replaces the user's previous review.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.SubmitReview(r.Context(), userID.String(), &req)
	if err != nil {
		respondServiceError(h.log, w, err, "submit review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// GetCarReviews handles GET /api/review/car/{carId} (public)
func (h *ReviewHandler) GetCarReviews(w http.ResponseWriter, r *http.Request) {
	carID := chi.URLParam(r, "carId")
	if carID == "" {
		utils.ResponseBadRequest(w, "Car ID is required", nil)
		return
	}

	reviews, err := h.service.GetCarReviews(r.Context(), carID)
	if err != nil {
		respondServiceError(h.log, w, err, "get car reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetUserCarReview handles GET /api/review/user/{userId}/car/{carId} (protected).
// Returns null data when the user has not reviewed the car yet.
func (h *ReviewHandler) GetUserCarReview(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	carID := chi.URLParam(r, "carId")
	if userID == "" || carID == "" {
		utils.ResponseBadRequest(w, "User ID and Car ID are required", nil)
		return
	}

	review, err := h.service.GetUserCarReview(r.Context(), userID, carID)
	if err != nil {
		respondServiceError(h.log, w, err, "get user car review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// ==================== ADMIN METHODS ====================

// GetAllReviews handles GET /api/review/all (admin only)
func (h *ReviewHandler) GetAllReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.GetAllReviews(r.Context())
	if err != nil {
		respondServiceError(h.log, w, err, "get all reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// UpdateReview handles PUT /api/review/update/{id} (admin only)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.UpdateReview(r.Context(), reviewID, &req)
	if err != nil {
		respondServiceError(h.log, w, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// DeleteReview handles DELETE /api/review/delete/{id} (admin only)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID); err != nil {
		respondServiceError(h.log, w, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
