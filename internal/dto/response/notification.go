package response

import (
	"time"

	"wheeloop/internal/data/entity"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsNew     bool      `json:"isNew"`
	CreatedAt time.Time `json:"created_at"`
}

func NotificationToResponse(notification *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID.String(),
		Title:     notification.Title,
		Message:   notification.Message,
		IsNew:     notification.IsNew,
		CreatedAt: notification.CreatedAt,
	}
}
