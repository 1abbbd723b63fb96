package wire

import (
	"wheeloop/internal/adaptor"
	"wheeloop/internal/data/repository"
	"wheeloop/pkg/middleware"
	"wheeloop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/payment/process - Pay for a pending rental
		r.Post("/api/payment/process", paymentHandler.ProcessPayment)

		// GET /api/payment/user/{id} - A user's payment history
		r.Get("/api/payment/user/{id}", paymentHandler.GetUserPayments)
	})

	// ==================== ADMIN ROUTES ====================
	// Payment management
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/payment/fetchAll - Every payment record
		r.Get("/api/payment/fetchAll", paymentHandler.GetAllPayments)

		// PUT /api/payment/update/{id} - Correct a payment status
		r.Put("/api/payment/update/{id}", paymentHandler.UpdatePaymentStatus)

		// DELETE /api/payment/delete/{id} - Remove a payment record
		r.Delete("/api/payment/delete/{id}", paymentHandler.DeletePayment)
	})
}
