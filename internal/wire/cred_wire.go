package wire

import (
	"wheeloop/internal/adaptor"
	"wheeloop/internal/data/repository"
	"wheeloop/pkg/middleware"
	"wheeloop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCred(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/cred/register", authHandler.Register)
	r.Post("/api/cred/login", authHandler.Login)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/cred/logout - Revoke the presented session token
		r.Post("/api/cred/logout", authHandler.Logout)

		// GET /api/cred/me - Current user's profile
		r.Get("/api/cred/me", userHandler.GetProfile)
	})

	// ==================== ADMIN ROUTES ====================
	// User account management
	r.Route("/api/cred/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/cred/users - List all accounts
		r.Get("/", userHandler.GetAllUsers)

		// POST /api/cred/users - Create an account (customer or admin)
		r.Post("/", userHandler.CreateUser)

		// PUT /api/cred/users/{id} - Update an account
		r.Put("/{id}", userHandler.UpdateUser)

		// DELETE /api/cred/users/{id} - Remove an account
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
