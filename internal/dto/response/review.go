package response

import (
	"time"

	"wheeloop/internal/data/entity"
)

type ReviewResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CarID      string    `json:"car_id"`
	UserName   string    `json:"user_name,omitempty"`
	ReviewText string    `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.Review, user *entity.User) ReviewResponse {
	resp := ReviewResponse{
		ID:         review.ID.String(),
		UserID:     review.UserID.String(),
		CarID:      review.CarID.String(),
		ReviewText: review.Text,
		CreatedAt:  review.CreatedAt,
	}

	if user != nil {
		resp.UserName = user.Name
	}

	return resp
}
