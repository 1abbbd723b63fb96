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

type RentalRepository interface {
	Create(ctx context.Context, rental *entity.Rental) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Rental, error)
	FindAll(ctx context.Context) ([]*entity.Rental, error)
	Update(ctx context.Context, rental *entity.Rental) error
	UpdateStatus(ctx context.Context, rentalID uuid.UUID, status entity.RentalStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type rentalRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRentalRepository(db database.PgxIface, log *zap.Logger) RentalRepository {
	return &rentalRepository{
		db:  db,
		log: log.With(zap.String("repository", "rental")),
	}
}

func (r *rentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	query := `
		INSERT INTO rentals (id, car_id, user_id, pick_up_location, start_date,
		                    end_date, driver_days, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		rental.ID,
		rental.CarID,
		rental.UserID,
		rental.PickUpLocation,
		rental.StartDate,
		rental.EndDate,
		rental.DriverDays,
		rental.Status,
		rental.CreatedAt,
		rental.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create rental",
			zap.Error(err),
			zap.String("car_id", rental.CarID.String()),
			zap.String("user_id", rental.UserID.String()),
		)
		return fmt.Errorf("create rental for car %s: %w", rental.CarID.String(), err)
	}

	return nil
}

func (r *rentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	query := `
		SELECT id, car_id, user_id, pick_up_location, start_date, end_date,
		       driver_days, status, created_at, updated_at
		FROM rentals
		WHERE id = $1
	`

	var rental entity.Rental
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rental.ID,
		&rental.CarID,
		&rental.UserID,
		&rental.PickUpLocation,
		&rental.StartDate,
		&rental.EndDate,
		&rental.DriverDays,
		&rental.Status,
		&rental.CreatedAt,
		&rental.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rental by ID",
			zap.Error(err),
			zap.String("rental_id", id.String()),
		)
		return nil, fmt.Errorf("find rental by ID %s: %w", id.String(), err)
	}

	return &rental, nil
}

func (r *rentalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Rental, error) {
	query := `
		SELECT id, car_id, user_id, pick_up_location, start_date, end_date,
		       driver_days, status, created_at, updated_at
		FROM rentals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find rentals by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find rentals by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return scanRentals(rows, r.log)
}

func (r *rentalRepository) FindAll(ctx context.Context) ([]*entity.Rental, error) {
	query := `
		SELECT id, car_id, user_id, pick_up_location, start_date, end_date,
		       driver_days, status, created_at, updated_at
		FROM rentals
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all rentals", zap.Error(err))
		return nil, fmt.Errorf("find all rentals: %w", err)
	}
	defer rows.Close()

	return scanRentals(rows, r.log)
}

func (r *rentalRepository) Update(ctx context.Context, rental *entity.Rental) error {
	query := `
		UPDATE rentals
		SET car_id = $2, user_id = $3, pick_up_location = $4, start_date = $5,
		    end_date = $6, driver_days = $7, status = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		rental.ID,
		rental.CarID,
		rental.UserID,
		rental.PickUpLocation,
		rental.StartDate,
		rental.EndDate,
		rental.DriverDays,
		rental.Status,
		rental.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update rental",
			zap.Error(err),
			zap.String("rental_id", rental.ID.String()),
		)
		return fmt.Errorf("update rental %s: %w", rental.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rental %s not found", rental.ID.String())
	}

	return nil
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, rentalID uuid.UUID, status entity.RentalStatus) error {
	query := `UPDATE rentals SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, rentalID, status)
	if err != nil {
		r.log.Error("Failed to update rental status",
			zap.Error(err),
			zap.String("rental_id", rentalID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update rental %s status to %s: %w", rentalID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rental %s not found", rentalID.String())
	}

	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rentals WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete rental",
			zap.Error(err),
			zap.String("rental_id", id.String()),
		)
		return fmt.Errorf("delete rental %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rental %s not found", id.String())
	}

	r.log.Info("Rental deleted", zap.String("rental_id", id.String()))
	return nil
}

func scanRentals(rows pgx.Rows, log *zap.Logger) ([]*entity.Rental, error) {
	var rentals []*entity.Rental
	for rows.Next() {
		var rental entity.Rental
		err := rows.Scan(
			&rental.ID,
			&rental.CarID,
			&rental.UserID,
			&rental.PickUpLocation,
			&rental.StartDate,
			&rental.EndDate,
			&rental.DriverDays,
			&rental.Status,
			&rental.CreatedAt,
			&rental.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan rental row", zap.Error(err))
			return nil, fmt.Errorf("scan rental row: %w", err)
		}
		rentals = append(rentals, &rental)
	}

	return rentals, nil
}
