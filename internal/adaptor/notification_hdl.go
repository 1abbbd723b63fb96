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

type NotificationHandler struct {
	service usecase.NotificationService
	log     *zap.Logger
}

func NewNotificationHandler(service usecase.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log.With(zap.String("handler", "notification")),
	}
}

// GetAllNotifications handles GET /api/notification/all (protected)
func (h *NotificationHandler) GetAllNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.service.GetAllNotifications(r.Context())
	if err != nil {
		respondServiceError(h.log, w, err, "get all notifications")
		return
	}

	utils.ResponseSuccess(w, "success", notifications)
}

// MarkAsRead handles PUT /api/notification/markAsRead/{id} (protected)
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	notificationID := chi.URLParam(r, "id")
	if notificationID == "" {
		utils.ResponseBadRequest(w, "Notification ID is required", nil)
		return
	}

	if err := h.service.MarkAsRead(r.Context(), notificationID); err != nil {
		respondServiceError(h.log, w, err, "mark notification as read")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== ADMIN METHODS ====================

// SendNotification handles POST /api/notification/send (admin only)
func (h *NotificationHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req request.SendNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	notification, err := h.service.SendNotification(r.Context(), &req)
	if err != nil {
		respondServiceError(h.log, w, err, "send notification")
		return
	}

	utils.ResponseCreated(w, "success", notification)
}

// DeleteNotification handles DELETE /api/notification/delete/{id} (admin only)
func (h *NotificationHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	notificationID := chi.URLParam(r, "id")
	if notificationID == "" {
		utils.ResponseBadRequest(w, "Notification ID is required", nil)
		return
	}

	if err := h.service.DeleteNotification(r.Context(), notificationID); err != nil {
		respondServiceError(h.log, w, err, "delete notification")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
