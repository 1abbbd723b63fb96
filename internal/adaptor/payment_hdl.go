package adaptor

import (
	"encoding/json"
	"net/http"

	"wheeloop/internal/data/entity"
	"wheeloop/internal/dto/request"
	"wheeloop/internal/usecase"
	"wheeloop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// ProcessPayment handles POST /api/payment/process (protected).
// A successful capture also confirms the paid rental.
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	payment, err := h.service.ProcessPayment(r.Context(), userID.String(), &req)
	if err != nil {
		respondServiceError(h.log, w, err, "process payment")
		return
	}

	utils.ResponseCreated(w, "Payment processed successfully", payment)
}

// GetUserPayments handles GET /api/payment/user/{id} (protected).
// Customers may only read their own payment history.
func (h *PaymentHandler) GetUserPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	targetID := chi.URLParam(r, "id")
	if targetID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())
	if targetID != userID.String() && role != string(entity.RoleAdmin) {
		utils.ResponseForbidden(w, "Access denied")
		return
	}

	payments, err := h.service.GetUserPayments(r.Context(), targetID)
	if err != nil {
		respondServiceError(h.log, w, err, "get user payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// ==================== ADMIN METHODS ====================

// GetAllPayments handles GET /api/payment/fetchAll (admin only)
func (h *PaymentHandler) GetAllPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.GetAllPayments(r.Context())
	if err != nil {
		respondServiceError(h.log, w, err, "get all payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// UpdatePaymentStatus handles PUT /api/payment/update/{id} (admin only)
func (h *PaymentHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	var req request.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdatePaymentStatus(r.Context(), paymentID, &req); err != nil {
		respondServiceError(h.log, w, err, "update payment status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// DeletePayment handles DELETE /api/payment/delete/{id} (admin only)
func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	if err := h.service.DeletePayment(r.Context(), paymentID); err != nil {
		respondServiceError(h.log, w, err, "delete payment")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
