package request

type CardDetails struct {
	CardHolder string `json:"card_holder" validate:"required,min=1,max=100"`
	CardNumber string `json:"card_number" validate:"required,len=16,numeric"`
	ExpiryDate string `json:"expiry_date" validate:"required,min=4,max=7"`
	CVV        string `json:"cvv" validate:"required,min=3,max=4,numeric"`
}

type ProcessPaymentRequest struct {
	RentalID      string       `json:"rental_id" validate:"required,uuid4"`
	TotalAmount   float64      `json:"total_amount" validate:"required,gt=0"`
	PaymentMethod string       `json:"payment_method" validate:"required,oneof=card paypal cash"`
	TransactionID *string      `json:"transaction_id,omitempty"`
	CardDetails   *CardDetails `json:"card_details,omitempty"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending completed failed"`
}
