package usecase

import (
	"context"
	"fmt"
	"time"

	"wheeloop/internal/data/entity"
	"wheeloop/internal/data/repository"
	"wheeloop/internal/dto/request"
	"wheeloop/internal/dto/response"
	"wheeloop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService interface {
	GetAllNotifications(ctx context.Context) ([]response.NotificationResponse, error)
	MarkAsRead(ctx context.Context, notificationID string) error

	// Admin endpoints
	SendNotification(ctx context.Context, req *request.SendNotificationRequest) (*response.NotificationResponse, error)
	DeleteNotification(ctx context.Context, notificationID string) error
}

type notificationService struct {
	notifications repository.NotificationRepository
	log           *zap.Logger
}

func NewNotificationService(notifications repository.NotificationRepository, log *zap.Logger) NotificationService {
	return &notificationService{
		notifications: notifications,
		log:           log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) GetAllNotifications(ctx context.Context) ([]response.NotificationResponse, error) {
	notifications, err := s.notifications.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get notifications", zap.Error(err))
		return nil, fmt.Errorf("get notifications: %w", err)
	}

	notificationResponses := make([]response.NotificationResponse, len(notifications))
	for i, notification := range notifications {
		notificationResponses[i] = response.NotificationToResponse(notification)
	}

	return notificationResponses, nil
}

// MarkAsRead flips the isNew flag for exactly one notification.
func (s *notificationService) MarkAsRead(ctx context.Context, notificationID string) error {
	id, err := uuid.Parse(notificationID)
	if err != nil {
		return fmt.Errorf("invalid notification ID format %s: %w", notificationID, err)
	}

	if err := s.notifications.MarkAsRead(ctx, id); err != nil {
		s.log.Error("Failed to mark notification as read",
			zap.Error(err),
			zap.String("notification_id", notificationID),
		)
		return fmt.Errorf("mark notification %s as read: %w", notificationID, err)
	}

	return nil
}

// ==================== ADMIN METHODS ====================

func (s *notificationService) SendNotification(ctx context.Context, req *request.SendNotificationRequest) (*response.NotificationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Send notification validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	notification := &entity.Notification{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:   req.Title,
		Message: req.Message,
		IsNew:   true,
	}

	if err := s.notifications.Create(ctx, notification); err != nil {
		s.log.Error("Failed to send notification", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("send notification: %w", err)
	}

	s.log.Info("Notification sent",
		zap.String("notification_id", notification.ID.String()),
		zap.String("title", req.Title))

	notificationResp := response.NotificationToResponse(notification)
	return &notificationResp, nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, notificationID string) error {
	id, err := uuid.Parse(notificationID)
	if err != nil {
		return fmt.Errorf("invalid notification ID format %s: %w", notificationID, err)
	}

	if err := s.notifications.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete notification",
			zap.Error(err),
			zap.String("notification_id", notificationID),
		)
		return fmt.Errorf("delete notification %s: %w", notificationID, err)
	}

	return nil
}
