package repository

import (
	"wheeloop/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Car          CarRepository
	Rental       RentalRepository
	Payment      PaymentRepository
	Review       ReviewRepository
	Notification NotificationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Car:          NewCarRepository(db, log),
		Rental:       NewRentalRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		Review:       NewReviewRepository(db, log),
		Notification: NewNotificationRepository(db, log),
	}
}
