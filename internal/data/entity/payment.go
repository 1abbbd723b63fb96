package entity

import (
	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPaypal PaymentMethod = "paypal"
	PaymentMethodCash   PaymentMethod = "cash"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Payment struct {
	Base
	RentalID      uuid.UUID     `db:"rental_id"`
	UserID        uuid.UUID     `db:"user_id"`
	TotalAmount   float64       `db:"total_amount"`
	Method        PaymentMethod `db:"method"`
	Status        PaymentStatus `db:"status"`
	TransactionID *string       `db:"transaction_id"`
}
