package usecase

import (
	"wheeloop/internal/data/repository"
	"wheeloop/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Car          CarService
	Rental       RentalService
	Payment      PaymentService
	Review       ReviewService
	Notification NotificationService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		User:         NewUserService(repo, log),
		Car:          NewCarService(repo.Car, log),
		Rental:       NewRentalService(repo, log),
		Payment:      NewPaymentService(repo, log),
		Review:       NewReviewService(repo, log),
		Notification: NewNotificationService(repo.Notification, log),
	}
}
