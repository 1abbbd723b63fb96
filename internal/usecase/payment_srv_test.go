package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wheeloop/internal/data/entity"
	"wheeloop/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func validCard() *request.CardDetails {
	return &request.CardDetails{
		CardHolder: "Jordan Lee",
		CardNumber: "4242424242424242",
		ExpiryDate: "12/27",
		CVV:        "123",
	}
}

func TestProcessPaymentCard(t *testing.T) {
	repos := newTestRepos()
	svc := NewPaymentService(repos.repo, zap.NewNop())
	car := seedCar(repos, 100)
	userID := uuid.New()
	rental := seedRental(repos, userID, car.ID, entity.RentalStatusPending)

	payment, err := svc.ProcessPayment(context.Background(), userID.String(), &request.ProcessPaymentRequest{
		RentalID:      rental.ID.String(),
		TotalAmount:   500, // 5 days at 100, no driver
		PaymentMethod: "card",
		CardDetails:   validCard(),
	})
	if err != nil {
		t.Fatalf("ProcessPayment failed: %v", err)
	}

	if payment.PaymentStatus != entity.PaymentStatusCompleted {
		t.Errorf("payment status = %s, want completed", payment.PaymentStatus)
	}

	// A successful payment confirms the rental.
	if rental.Status != entity.RentalStatusConfirmed {
		t.Errorf("rental status = %s, want confirmed", rental.Status)
	}
	if len(repos.rentals.statusChanges) != 1 {
		t.Fatalf("got %d status changes, want 1", len(repos.rentals.statusChanges))
	}
	if repos.rentals.statusChanges[0].status != entity.RentalStatusConfirmed {
		t.Errorf("status change = %s, want confirmed", repos.rentals.statusChanges[0].status)
	}
}

func TestProcessPaymentCardMissingDetails(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*request.CardDetails)
	}{
		{"no card details", nil},
		{"empty holder", func(c *request.CardDetails) { c.CardHolder = "" }},
		{"short number", func(c *request.CardDetails) { c.CardNumber = "4242" }},
		{"empty expiry", func(c *request.CardDetails) { c.ExpiryDate = "" }},
		{"empty cvv", func(c *request.CardDetails) { c.CVV = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := newTestRepos()
			svc := NewPaymentService(repos.repo, zap.NewNop())
			car := seedCar(repos, 100)
			userID := uuid.New()
			rental := seedRental(repos, userID, car.ID, entity.RentalStatusPending)

			req := &request.ProcessPaymentRequest{
				RentalID:      rental.ID.String(),
				TotalAmount:   500,
				PaymentMethod: "card",
			}
			if tt.mutate != nil {
				card := validCard()
				tt.mutate(card)
				req.CardDetails = card
			}

			_, err := svc.ProcessPayment(context.Background(), userID.String(), req)
			if err == nil {
				t.Fatal("expected card validation error")
			}

			// Rejected before anything touches the payment store.
			if repos.payments.calls != 0 {
				t.Errorf("payment repo was called %d times", repos.payments.calls)
			}
			if rental.Status != entity.RentalStatusPending {
				t.Errorf("rental status changed to %s", rental.Status)
			}
		})
	}
}

func TestProcessPaymentPaypalNeedsTransactionID(t *testing.T) {
	repos := newTestRepos()
	svc := NewPaymentService(repos.repo, zap.NewNop())
	car := seedCar(repos, 100)
	userID := uuid.New()
	rental := seedRental(repos, userID, car.ID, entity.RentalStatusPending)

	_, err := svc.ProcessPayment(context.Background(), userID.String(), &request.ProcessPaymentRequest{
		RentalID:      rental.ID.String(),
		TotalAmount:   500,
		PaymentMethod: "paypal",
	})
	if err == nil {
		t.Fatal("expected error for paypal without transaction id")
	}

	txn := "PAYPAL-123"
	_, err = svc.ProcessPayment(context.Background(), userID.String(), &request.ProcessPaymentRequest{
		RentalID:      rental.ID.String(),
		TotalAmount:   500,
		PaymentMethod: "paypal",
		TransactionID: &txn,
	})
	if err != nil {
		t.Fatalf("paypal payment with transaction id failed: %v", err)
	}
}

func TestProcessPaymentCash(t *testing.T) {
	repos := newTestRepos()
	svc := NewPaymentService(repos.repo, zap.NewNop())
	car := seedCar(repos, 100)
	userID := uuid.New()
	rental := seedRental(repos, userID, car.ID, entity.RentalStatusPending)

	payment, err := svc.ProcessPayment(context.Background(), userID.String(), &request.ProcessPaymentRequest{
		RentalID:      rental.ID.String(),
		TotalAmount:   500,
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("cash payment failed: %v", err)
	}
	if payment.PaymentMethod != entity.PaymentMethodCash {
		t.Errorf("method = %s, want cash", payment.PaymentMethod)
	}
}

func TestProcessPaymentAmountMismatch(t *testing.T) {
	repos := newTestRepos()
	svc := NewPaymentService(repos.repo, zap.NewNop())
	car := seedCar(repos, 100)
	userID := uuid.New()
	rental := seedRental(repos, userID, car.ID, entity.RentalStatusPending)

	_, err := svc.ProcessPayment(context.Background(), userID.String(), &request.ProcessPaymentRequest{
		RentalID:      rental.ID.String(),
		TotalAmount:   400, // true total is 500
		PaymentMethod: "cash",
	})
	if err == nil || !strings.Contains(err.Error(), "does not match") {
		t.Fatalf("expected amount mismatch error, got %v", err)
	}
	if rental.Status != entity.RentalStatusPending {
		t.Errorf("rental status changed to %s on rejected payment", rental.Status)
	}
}

func TestProcessPaymentWrongUser(t *testing.T) {
	repos := newTestRepos()
	svc := NewPaymentService(repos.repo, zap.NewNop())
	car := seedCar(repos, 100)
	owner := uuid.New()
	rental := seedRental(repos, owner, car.ID, entity.RentalStatusPending)

	_, err := svc.ProcessPayment(context.Background(), uuid.NewString(), &request.ProcessPaymentRequest{
		RentalID:      rental.ID.String(),
		TotalAmount:   500,
		PaymentMethod: "cash",
	})
	if err == nil || !strings.Contains(err.Error(), "unauthorized") {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestProcessPaymentNonPendingRental(t *testing.T) {
	repos := newTestRepos()
	svc := NewPaymentService(repos.repo, zap.NewNop())
	car := seedCar(repos, 100)
	userID := uuid.New()
	rental := seedRental(repos, userID, car.ID, entity.RentalStatusConfirmed)

	_, err := svc.ProcessPayment(context.Background(), userID.String(), &request.ProcessPaymentRequest{
		RentalID:      rental.ID.String(),
		TotalAmount:   500,
		PaymentMethod: "cash",
	})
	if err == nil || !strings.Contains(err.Error(), "cannot process payment") {
		t.Fatalf("expected status error, got %v", err)
	}
	if repos.payments.calls != 0 {
		t.Errorf("payment repo was called for a confirmed rental")
	}
}

func TestProcessPaymentRejectsDoubleCapture(t *testing.T) {
	repos := newTestRepos()
	svc := NewPaymentService(repos.repo, zap.NewNop())
	car := seedCar(repos, 100)
	userID := uuid.New()
	rental := seedRental(repos, userID, car.ID, entity.RentalStatusPending)

	// Force the confirm step to fail so the rental stays pending
	// with a completed payment already recorded.
	repos.rentals.updateStatusErr = errors.New("db down")

	req := &request.ProcessPaymentRequest{
		RentalID:      rental.ID.String(),
		TotalAmount:   500,
		PaymentMethod: "cash",
	}
	if _, err := svc.ProcessPayment(context.Background(), userID.String(), req); err != nil {
		t.Fatalf("first payment failed: %v", err)
	}

	_, err := svc.ProcessPayment(context.Background(), userID.String(), req)
	if err == nil || !strings.Contains(err.Error(), "already paid") {
		t.Fatalf("expected already paid error, got %v", err)
	}
	if len(repos.payments.payments) != 1 {
		t.Errorf("payment count = %d, want 1", len(repos.payments.payments))
	}
}

func TestGetUserPaymentsOnlyOwn(t *testing.T) {
	repos := newTestRepos()
	svc := NewPaymentService(repos.repo, zap.NewNop())
	car := seedCar(repos, 100)
	alice := uuid.New()
	bob := uuid.New()

	for _, userID := range []uuid.UUID{alice, alice, bob} {
		rental := seedRental(repos, userID, car.ID, entity.RentalStatusPending)
		if _, err := svc.ProcessPayment(context.Background(), userID.String(), &request.ProcessPaymentRequest{
			RentalID:      rental.ID.String(),
			TotalAmount:   500,
			PaymentMethod: "cash",
		}); err != nil {
			t.Fatalf("seed payment failed: %v", err)
		}
	}

	payments, err := svc.GetUserPayments(context.Background(), alice.String())
	if err != nil {
		t.Fatalf("GetUserPayments failed: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("got %d payments, want 2", len(payments))
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	repos := newTestRepos()
	svc := NewPaymentService(repos.repo, zap.NewNop())
	car := seedCar(repos, 100)
	userID := uuid.New()
	rental := seedRental(repos, userID, car.ID, entity.RentalStatusPending)

	payment, err := svc.ProcessPayment(context.Background(), userID.String(), &request.ProcessPaymentRequest{
		RentalID:      rental.ID.String(),
		TotalAmount:   500,
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("seed payment failed: %v", err)
	}

	if err := svc.UpdatePaymentStatus(context.Background(), payment.ID, &request.UpdatePaymentRequest{
		PaymentStatus: "failed",
	}); err != nil {
		t.Fatalf("UpdatePaymentStatus failed: %v", err)
	}

	id, _ := uuid.Parse(payment.ID)
	if got := repos.payments.payments[id].Status; got != entity.PaymentStatusFailed {
		t.Errorf("status = %s, want failed", got)
	}
}
