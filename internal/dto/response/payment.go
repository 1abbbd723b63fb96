package response

import (
	"time"

	"wheeloop/internal/data/entity"
)

type PaymentResponse struct {
	ID            string               `json:"id"`
	RentalID      string               `json:"rental_id"`
	UserID        string               `json:"user_id"`
	TotalAmount   float64              `json:"total_amount"`
	PaymentMethod entity.PaymentMethod `json:"payment_method"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	TransactionID *string              `json:"transaction_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID.String(),
		RentalID:      payment.RentalID.String(),
		UserID:        payment.UserID.String(),
		TotalAmount:   payment.TotalAmount,
		PaymentMethod: payment.Method,
		PaymentStatus: payment.Status,
		TransactionID: payment.TransactionID,
		CreatedAt:     payment.CreatedAt,
	}
}
