package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"wheeloop/internal/data/entity"
	"wheeloop/internal/data/repository"
	"wheeloop/internal/dto/request"
	"wheeloop/internal/dto/response"
	"wheeloop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	// Customer endpoints
	ProcessPayment(ctx context.Context, userID string, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error)
	GetUserPayments(ctx context.Context, userID string) ([]response.PaymentResponse, error)

	// Admin endpoints
	GetAllPayments(ctx context.Context) ([]response.PaymentResponse, error)
	UpdatePaymentStatus(ctx context.Context, paymentID string, req *request.UpdatePaymentRequest) error
	DeletePayment(ctx context.Context, paymentID string) error
}

type paymentService struct {
	repo *repository.Repository // groups payment, rental and car repos
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

// validateMethodDetails enforces the per-method required fields before
// anything is persisted: card needs the four card fields, paypal needs a
// transaction id, cash needs nothing extra.
func validateMethodDetails(req *request.ProcessPaymentRequest) error {
	switch entity.PaymentMethod(req.PaymentMethod) {
	case entity.PaymentMethodCard:
		if req.CardDetails == nil {
			return fmt.Errorf("validation failed: card details are required for card payments")
		}
		if errs := utils.ValidateStruct(req.CardDetails); len(errs) > 0 {
			return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
		}
	case entity.PaymentMethodPaypal:
		if req.TransactionID == nil || *req.TransactionID == "" {
			return fmt.Errorf("validation failed: transaction ID is required for paypal payments")
		}
	case entity.PaymentMethodCash:
		// Nothing extra to check.
	}
	return nil
}

func (s *paymentService) ProcessPayment(ctx context.Context, userID string, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Process payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := validateMethodDetails(req); err != nil {
		s.log.Warn("Payment method validation failed",
			zap.String("method", req.PaymentMethod), zap.Error(err))
		return nil, err
	}

	// Parse IDs
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	rentalID, err := uuid.Parse(req.RentalID)
	if err != nil {
		return nil, fmt.Errorf("invalid rental ID format %s: %w", req.RentalID, err)
	}

	// Get rental
	rental, err := s.repo.Rental.FindByID(ctx, rentalID)
	if err != nil || rental == nil {
		return nil, fmt.Errorf("rental %s not found", req.RentalID)
	}

	// Check if rental belongs to user
	if rental.UserID != userUUID {
		return nil, fmt.Errorf("unauthorized to process payment for this rental")
	}

	// Check rental status
	if rental.Status != entity.RentalStatusPending {
		return nil, fmt.Errorf("rental status is %s, cannot process payment", rental.Status)
	}

	// Reject a second capture for the same rental
	existing, err := s.repo.Payment.FindByRentalID(ctx, rentalID)
	if err != nil {
		s.log.Error("Failed to check existing payment", zap.Error(err), zap.String("rental_id", req.RentalID))
		return nil, fmt.Errorf("check existing payment: %w", err)
	}
	if existing != nil && existing.Status == entity.PaymentStatusCompleted {
		return nil, fmt.Errorf("rental %s is already paid", req.RentalID)
	}

	// Recompute the total server-side; the submitted amount must match.
	car, err := s.repo.Car.FindByID(ctx, rental.CarID)
	if err != nil || car == nil {
		return nil, fmt.Errorf("car not found for rental %s", req.RentalID)
	}

	rentalDays := RentalDays(rental.StartDate, rental.EndDate)
	expected := TotalAmount(rentalDays, car.PricePerDay, rental.DriverDays)
	if math.Abs(req.TotalAmount-expected) > 0.01 {
		return nil, fmt.Errorf("payment amount %.2f does not match rental total %.2f", req.TotalAmount, expected)
	}

	// Create payment
	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RentalID:      rentalID,
		UserID:        userUUID,
		TotalAmount:   req.TotalAmount,
		Method:        entity.PaymentMethod(req.PaymentMethod),
		Status:        entity.PaymentStatusPending,
		TransactionID: req.TransactionID,
	}

	// Dummy capture step. A real gateway integration would go here.
	payment.Status = entity.PaymentStatusCompleted

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("rental_id", req.RentalID),
		)
		return nil, fmt.Errorf("create payment: %w", err)
	}

	// Successful payment confirms the rental
	if err := s.repo.Rental.UpdateStatus(ctx, rentalID, entity.RentalStatusConfirmed); err != nil {
		s.log.Error("Failed to confirm rental after payment",
			zap.Error(err),
			zap.String("rental_id", req.RentalID),
		)
		// Continue anyway
	}

	s.log.Info("Payment processed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("rental_id", req.RentalID),
		zap.String("method", req.PaymentMethod),
		zap.Float64("total_amount", req.TotalAmount),
		zap.String("status", string(payment.Status)),
	)

	paymentResp := response.PaymentToResponse(payment)
	return &paymentResp, nil
}

func (s *paymentService) GetUserPayments(ctx context.Context, userID string) ([]response.PaymentResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	payments, err := s.repo.Payment.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user payments", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user payments: %w", err)
	}

	return convertPayments(payments), nil
}

// ==================== ADMIN METHODS ====================

func (s *paymentService) GetAllPayments(ctx context.Context) ([]response.PaymentResponse, error) {
	payments, err := s.repo.Payment.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get all payments", zap.Error(err))
		return nil, fmt.Errorf("get all payments: %w", err)
	}

	return convertPayments(payments), nil
}

func (s *paymentService) UpdatePaymentStatus(ctx context.Context, paymentID string, req *request.UpdatePaymentRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update payment validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(paymentID)
	if err != nil {
		return fmt.Errorf("invalid payment ID format %s: %w", paymentID, err)
	}

	if err := s.repo.Payment.UpdateStatus(ctx, id, entity.PaymentStatus(req.PaymentStatus)); err != nil {
		s.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("payment_id", paymentID),
			zap.String("status", req.PaymentStatus),
		)
		return fmt.Errorf("update payment %s: %w", paymentID, err)
	}

	s.log.Info("Payment status updated",
		zap.String("payment_id", paymentID),
		zap.String("status", req.PaymentStatus))

	return nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) error {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return fmt.Errorf("invalid payment ID format %s: %w", paymentID, err)
	}

	if err := s.repo.Payment.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete payment", zap.Error(err), zap.String("payment_id", paymentID))
		return fmt.Errorf("delete payment %s: %w", paymentID, err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

func convertPayments(payments []*entity.Payment) []response.PaymentResponse {
	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentResponses[i] = response.PaymentToResponse(payment)
	}
	return paymentResponses
}
