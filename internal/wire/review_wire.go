package wire

import (
	"wheeloop/internal/adaptor"
	"wheeloop/internal/data/repository"
	"wheeloop/pkg/middleware"
	"wheeloop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/review/car/{carId} - All reviews for a car
	r.Get("/api/review/car/{carId}", reviewHandler.GetCarReviews)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/review/submit - Submit or replace the caller's review
		r.Post("/api/review/submit", reviewHandler.SubmitReview)

		// GET /api/review/user/{userId}/car/{carId} - A user's review of one car
		r.Get("/api/review/user/{userId}/car/{carId}", reviewHandler.GetUserCarReview)
	})

	// ==================== ADMIN ROUTES ====================
	// Review moderation
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/review/all - Every review in the system
		r.Get("/api/review/all", reviewHandler.GetAllReviews)

		// PUT /api/review/update/{id} - Edit review text
		r.Put("/api/review/update/{id}", reviewHandler.UpdateReview)

		// DELETE /api/review/delete/{id} - Remove a review
		r.Delete("/api/review/delete/{id}", reviewHandler.DeleteReview)
	})
}
