package wire

import (
	"wheeloop/internal/adaptor"
	"wheeloop/internal/data/repository"
	"wheeloop/pkg/middleware"
	"wheeloop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRental(
	r chi.Router,
	rentalHandler *adaptor.RentalHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/rental - Create a booking (starts as pending)
		r.Post("/api/rental", rentalHandler.CreateRental)

		// GET /api/rental/userBookings - The caller's booking history
		r.Get("/api/rental/userBookings", rentalHandler.GetUserRentals)
	})

	// ==================== ADMIN ROUTES ====================
	// Booking management
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/rental/adminBookings - Every booking in the system
		r.Get("/api/rental/adminBookings", rentalHandler.GetAllRentals)

		// PUT /api/rental/updateBooking/{id} - Edit details or confirm/reject
		r.Put("/api/rental/updateBooking/{id}", rentalHandler.UpdateRental)

		// DELETE /api/rental/deleteBooking/{id} - Remove a booking
		r.Delete("/api/rental/deleteBooking/{id}", rentalHandler.DeleteRental)
	})
}
