package wire

import (
	"wheeloop/internal/adaptor"
	"wheeloop/internal/data/repository"
	"wheeloop/pkg/middleware"
	"wheeloop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNotification(
	r chi.Router,
	notificationHandler *adaptor.NotificationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/notification/all - The announcement feed
		r.Get("/api/notification/all", notificationHandler.GetAllNotifications)

		// PUT /api/notification/markAsRead/{id} - Clear one unread badge
		r.Put("/api/notification/markAsRead/{id}", notificationHandler.MarkAsRead)
	})

	// ==================== ADMIN ROUTES ====================
	// Announcement management
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/notification/send - Publish an announcement
		r.Post("/api/notification/send", notificationHandler.SendNotification)

		// DELETE /api/notification/delete/{id} - Remove an announcement
		r.Delete("/api/notification/delete/{id}", notificationHandler.DeleteNotification)
	})
}
