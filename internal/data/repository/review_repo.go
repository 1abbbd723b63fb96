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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByCarID(ctx context.Context, carID uuid.UUID) ([]*entity.Review, error)
	FindByUserAndCar(ctx context.Context, userID, carID uuid.UUID) (*entity.Review, error)
	FindAll(ctx context.Context) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, car_id, review_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.CarID,
		review.Text,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("car_id", review.CarID.String()),
		)
		return fmt.Errorf("create review for car %s: %w", review.CarID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, user_id, car_id, review_text, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.UserID,
		&review.CarID,
		&review.Text,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByCarID(ctx context.Context, carID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, car_id, review_text, created_at, updated_at
		FROM reviews
		WHERE car_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, carID)
	if err != nil {
		r.log.Error("Failed to find reviews by car ID",
			zap.Error(err),
			zap.String("car_id", carID.String()),
		)
		return nil, fmt.Errorf("find reviews by car ID %s: %w", carID.String(), err)
	}
	defer rows.Close()

	return scanReviews(rows, r.log)
}

func (r *reviewRepository) FindByUserAndCar(ctx context.Context, userID, carID uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, user_id, car_id, review_text, created_at, updated_at
		FROM reviews
		WHERE user_id = $1 AND car_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, userID, carID).Scan(
		&review.ID,
		&review.UserID,
		&review.CarID,
		&review.Text,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and car",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("car_id", carID.String()),
		)
		return nil, fmt.Errorf("find review by user %s and car %s: %w", userID.String(), carID.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, car_id, review_text, created_at, updated_at
		FROM reviews
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all reviews", zap.Error(err))
		return nil, fmt.Errorf("find all reviews: %w", err)
	}
	defer rows.Close()

	return scanReviews(rows, r.log)
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET review_text = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Text,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}

func scanReviews(rows pgx.Rows, log *zap.Logger) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.CarID,
			&review.Text,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}
