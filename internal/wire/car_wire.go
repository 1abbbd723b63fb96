package wire

import (
	"wheeloop/internal/adaptor"
	"wheeloop/internal/data/repository"
	"wheeloop/pkg/middleware"
	"wheeloop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCar(
	r chi.Router,
	carHandler *adaptor.CarHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/car/findAll - Browse the catalog, optional ?search= filter
	r.Get("/api/car/findAll", carHandler.ListCars)

	// GET /api/car/{id} - Single car details
	r.Get("/api/car/{id}", carHandler.GetCar)

	// ==================== ADMIN ROUTES ====================
	// Fleet management
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/car - Add a car to the fleet
		r.Post("/api/car", carHandler.CreateCar)

		// PUT /api/car/{id} - Update car details
		r.Put("/api/car/{id}", carHandler.UpdateCar)

		// DELETE /api/car/{id} - Retire a car
		r.Delete("/api/car/{id}", carHandler.DeleteCar)
	})
}
