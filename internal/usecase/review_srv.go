package usecase

import (
	"context"
	"fmt"
	"time"

	"wheeloop/internal/data/entity"
	"wheeloop/internal/data/repository"
	"wheeloop/internal/dto/request"
	"wheeloop/internal/dto/response"
	"wheeloop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	SubmitReview(ctx context.Context, userID string, req *request.SubmitReviewRequest) (*response.ReviewResponse, error)
	GetCarReviews(ctx context.Context, carID string) ([]response.ReviewResponse, error)
	GetUserCarReview(ctx context.Context, userID, carID string) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID string) error

	// Admin endpoints
	GetAllReviews(ctx context.Context) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository // groups review, car and user repos
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, userID string, req *request.SubmitReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Parse IDs
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	carID, err := uuid.Parse(req.CarID)
	if err != nil {
		return nil, fmt.Errorf("invalid car ID format %s: %w", req.CarID, err)
	}

	// Validate car exists
	car, err := s.repo.Car.FindByID(ctx, carID)
	if err != nil || car == nil {
		return nil, fmt.Errorf("car %s not found", req.CarID)
	}

	// One review per user per car: resubmitting replaces the old text
	existing, err := s.repo.Review.FindByUserAndCar(ctx, userUUID, carID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, fmt.Errorf("check existing review: %w", err)
	}

	now := time.Now()

	if existing != nil {
		existing.Text = req.ReviewText
		existing.UpdatedAt = now
		if err := s.repo.Review.Update(ctx, existing); err != nil {
			s.log.Error("Failed to update existing review",
				zap.Error(err), zap.String("review_id", existing.ID.String()))
			return nil, fmt.Errorf("update review: %w", err)
		}

		s.log.Info("Review replaced",
			zap.String("review_id", existing.ID.String()),
			zap.String("car_id", req.CarID))

		reviewResp := s.convertReview(ctx, existing)
		return &reviewResp, nil
	}

	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userUUID,
		CarID:  carID,
		Text:   req.ReviewText,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("car_id", req.CarID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review submitted",
		zap.String("review_id", review.ID.String()),
		zap.String("car_id", req.CarID))

	reviewResp := s.convertReview(ctx, review)
	return &reviewResp, nil
}

func (s *reviewService) GetCarReviews(ctx context.Context, carID string) ([]response.ReviewResponse, error) {
	id, err := uuid.Parse(carID)
	if err != nil {
		return nil, fmt.Errorf("invalid car ID format %s: %w", carID, err)
	}

	reviews, err := s.repo.Review.FindByCarID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get car reviews", zap.Error(err), zap.String("car_id", carID))
		return nil, fmt.Errorf("get car reviews: %w", err)
	}

	return s.convertReviews(ctx, reviews), nil
}

func (s *reviewService) GetUserCarReview(ctx context.Context, userID, carID string) (*response.ReviewResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	carUUID, err := uuid.Parse(carID)
	if err != nil {
		return nil, fmt.Errorf("invalid car ID format %s: %w", carID, err)
	}

	review, err := s.repo.Review.FindByUserAndCar(ctx, userUUID, carUUID)
	if err != nil {
		s.log.Error("Failed to get user car review", zap.Error(err))
		return nil, fmt.Errorf("get user car review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review not found for user %s and car %s", userID, carID)
	}

	reviewResp := s.convertReview(ctx, review)
	return &reviewResp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil || review == nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}

	review.Text = req.ReviewText
	review.UpdatedAt = time.Now()

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("update review %s: %w", reviewID, err)
	}

	s.log.Info("Review updated", zap.String("review_id", reviewID))

	reviewResp := s.convertReview(ctx, review)
	return &reviewResp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	if err := s.repo.Review.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", reviewID))
		return fmt.Errorf("delete review %s: %w", reviewID, err)
	}

	return nil
}

// ==================== ADMIN METHODS ====================

func (s *reviewService) GetAllReviews(ctx context.Context) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get all reviews", zap.Error(err))
		return nil, fmt.Errorf("get all reviews: %w", err)
	}

	return s.convertReviews(ctx, reviews), nil
}

// ==================== HELPER METHODS ====================

func (s *reviewService) convertReview(ctx context.Context, review *entity.Review) response.ReviewResponse {
	user, _ := s.repo.User.FindByID(ctx, review.UserID)
	return response.ReviewToResponse(review, user)
}

func (s *reviewService) convertReviews(ctx context.Context, reviews []*entity.Review) []response.ReviewResponse {
	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = s.convertReview(ctx, review)
	}
	return reviewResponses
}
