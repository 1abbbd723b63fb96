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

type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error)
	FindAll(ctx context.Context) ([]*entity.Car, error)
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type carRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCarRepository(db database.PgxIface, log *zap.Logger) CarRepository {
	return &carRepository{
		db:  db,
		log: log.With(zap.String("repository", "car")),
	}
}

func (r *carRepository) Create(ctx context.Context, car *entity.Car) error {
	query := `
		INSERT INTO cars (id, name, type, price_per_day, capacity, transmission,
		                 mileage, description, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		car.ID,
		car.Name,
		car.Type,
		car.PricePerDay,
		car.Capacity,
		car.Transmission,
		car.Mileage,
		car.Description,
		car.ImageURL,
		car.CreatedAt,
		car.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create car",
			zap.Error(err),
			zap.String("name", car.Name),
		)
		return fmt.Errorf("create car %s: %w", car.Name, err)
	}

	return nil
}

func (r *carRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	query := `
		SELECT id, name, type, price_per_day, capacity, transmission,
		       mileage, description, image_url, created_at, updated_at
		FROM cars
		WHERE id = $1
	`

	var car entity.Car
	err := r.db.QueryRow(ctx, query, id).Scan(
		&car.ID,
		&car.Name,
		&car.Type,
		&car.PricePerDay,
		&car.Capacity,
		&car.Transmission,
		&car.Mileage,
		&car.Description,
		&car.ImageURL,
		&car.CreatedAt,
		&car.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find car by ID",
			zap.Error(err),
			zap.String("car_id", id.String()),
		)
		return nil, fmt.Errorf("find car by ID %s: %w", id.String(), err)
	}

	return &car, nil
}

func (r *carRepository) FindAll(ctx context.Context) ([]*entity.Car, error) {
	query := `
		SELECT id, name, type, price_per_day, capacity, transmission,
		       mileage, description, image_url, created_at, updated_at
		FROM cars
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all cars", zap.Error(err))
		return nil, fmt.Errorf("find all cars: %w", err)
	}
	defer rows.Close()

	var cars []*entity.Car
	for rows.Next() {
		var car entity.Car
		err := rows.Scan(
			&car.ID,
			&car.Name,
			&car.Type,
			&car.PricePerDay,
			&car.Capacity,
			&car.Transmission,
			&car.Mileage,
			&car.Description,
			&car.ImageURL,
			&car.CreatedAt,
			&car.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan car row", zap.Error(err))
			return nil, fmt.Errorf("scan car row: %w", err)
		}
		cars = append(cars, &car)
	}

	return cars, nil
}

func (r *carRepository) Update(ctx context.Context, car *entity.Car) error {
	query := `
		UPDATE cars
		SET name = $2, type = $3, price_per_day = $4, capacity = $5,
		    transmission = $6, mileage = $7, description = $8, image_url = $9,
		    updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		car.ID,
		car.Name,
		car.Type,
		car.PricePerDay,
		car.Capacity,
		car.Transmission,
		car.Mileage,
		car.Description,
		car.ImageURL,
		car.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update car",
			zap.Error(err),
			zap.String("car_id", car.ID.String()),
		)
		return fmt.Errorf("update car %s: %w", car.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("car %s not found", car.ID.String())
	}

	return nil
}

func (r *carRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cars WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete car",
			zap.Error(err),
			zap.String("car_id", id.String()),
		)
		return fmt.Errorf("delete car %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("car %s not found", id.String())
	}

	r.log.Info("Car deleted", zap.String("car_id", id.String()))
	return nil
}
