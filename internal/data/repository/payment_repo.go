package repository

import (
	"context"
	"fmt"

	"wheeloop/internal/data/entity"
	"wheeloop/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByRentalID(ctx context.Context, rentalID uuid.UUID) (*entity.Payment, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)
	FindAll(ctx context.Context) ([]*entity.Payment, error)
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, rental_id, user_id, total_amount, method,
		                     status, transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.RentalID,
		payment.UserID,
		payment.TotalAmount,
		payment.Method,
		payment.Status,
		payment.TransactionID,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("rental_id", payment.RentalID.String()),
			zap.Float64("total_amount", payment.TotalAmount),
		)
		return fmt.Errorf("create payment for rental %s: %w", payment.RentalID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, rental_id, user_id, total_amount, method, status,
		       transaction_id, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.RentalID,
		&payment.UserID,
		&payment.TotalAmount,
		&payment.Method,
		&payment.Status,
		&payment.TransactionID,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return &payment, nil
}

func (r *paymentRepository) FindByRentalID(ctx context.Context, rentalID uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, rental_id, user_id, total_amount, method, status,
		       transaction_id, created_at, updated_at
		FROM payments
		WHERE rental_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, rentalID).Scan(
		&payment.ID,
		&payment.RentalID,
		&payment.UserID,
		&payment.TotalAmount,
		&payment.Method,
		&payment.Status,
		&payment.TransactionID,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by rental ID",
			zap.Error(err),
			zap.String("rental_id", rentalID.String()),
		)
		return nil, fmt.Errorf("find payment by rental ID %s: %w", rentalID.String(), err)
	}

	return &payment, nil
}

func (r *paymentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT id, rental_id, user_id, total_amount, method, status,
		       transaction_id, created_at, updated_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find payments by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find payments by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return scanPayments(rows, r.log)
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	query := `
		SELECT id, rental_id, user_id, total_amount, method, status,
		       transaction_id, created_at, updated_at
		FROM payments
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all payments", zap.Error(err))
		return nil, fmt.Errorf("find all payments: %w", err)
	}
	defer rows.Close()

	return scanPayments(rows, r.log)
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus) error {
	query := `UPDATE payments SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, paymentID, status)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update payment %s status to %s: %w", paymentID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", paymentID.String())
	}

	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM payments WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete payment",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return fmt.Errorf("delete payment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", id.String())
	}

	r.log.Info("Payment deleted", zap.String("payment_id", id.String()))
	return nil
}

func scanPayments(rows pgx.Rows, log *zap.Logger) ([]*entity.Payment, error) {
	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.RentalID,
			&payment.UserID,
			&payment.TotalAmount,
			&payment.Method,
			&payment.Status,
			&payment.TransactionID,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, nil
}
