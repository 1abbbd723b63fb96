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

const dateLayout = "2006-01-02"

type RentalService interface {
	// Customer endpoints
	CreateRental(ctx context.Context, userID string, req *request.CreateRentalRequest) (*response.RentalQuoteResponse, error)
	GetUserRentals(ctx context.Context, userID string) ([]response.RentalResponse, error)

	// Admin endpoints
	GetAllRentals(ctx context.Context) ([]response.RentalResponse, error)
	UpdateRental(ctx context.Context, rentalID string, req *request.UpdateRentalRequest) (*response.RentalResponse, error)
	DeleteRental(ctx context.Context, rentalID string) error
}

type rentalService struct {
	repo *repository.Repository // groups rental and car repos
	log  *zap.Logger
}

func NewRentalService(repo *repository.Repository, log *zap.Logger) RentalService {
	return &rentalService{
		repo: repo,
		log:  log.With(zap.String("service", "rental")),
	}
}

func (s *rentalService) CreateRental(ctx context.Context, userID string, req *request.CreateRentalRequest) (*response.RentalQuoteResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create rental validation failed", zap.Any("errors", errs))
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

	// Parse dates
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %s: %w", req.StartDate, err)
	}

	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %s: %w", req.EndDate, err)
	}

	// The date picker enforces ordering client-side only; re-check here.
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date cannot be before start date")
	}

	rentalDays := RentalDays(startDate, endDate)
	if rentalDays < 1 {
		return nil, fmt.Errorf("rental must cover at least one day")
	}

	// Validate car exists
	car, err := s.repo.Car.FindByID(ctx, carID)
	if err != nil || car == nil {
		return nil, fmt.Errorf("car %s not found", req.CarID)
	}

	// Create rental entity, always pending until payment or admin action
	now := time.Now()
	rental := &entity.Rental{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CarID:          carID,
		UserID:         userUUID,
		PickUpLocation: req.PickUpLocation,
		StartDate:      startDate,
		EndDate:        endDate,
		DriverDays:     req.DriverDays,
		Status:         entity.RentalStatusPending,
	}

	if err := s.repo.Rental.Create(ctx, rental); err != nil {
		s.log.Error("Failed to create rental",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("car_id", req.CarID),
		)
		return nil, fmt.Errorf("create rental: %w", err)
	}

	totalAmount := TotalAmount(rentalDays, car.PricePerDay, req.DriverDays)

	s.log.Info("Rental created",
		zap.String("rental_id", rental.ID.String()),
		zap.String("user_id", userID),
		zap.String("car_id", req.CarID),
		zap.Int("rental_days", rentalDays),
		zap.Float64("total_amount", totalAmount),
	)

	return &response.RentalQuoteResponse{
		RentalResponse: response.RentalToResponse(rental, car),
		PricePerDay:    car.PricePerDay,
		RentalDays:     rentalDays,
		DriverCost:     DriverCost(req.DriverDays, rentalDays),
		TotalAmount:    totalAmount,
	}, nil
}

func (s *rentalService) GetUserRentals(ctx context.Context, userID string) ([]response.RentalResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	rentals, err := s.repo.Rental.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user rentals", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user rentals: %w", err)
	}

	return s.convertRentals(ctx, rentals), nil
}

// ==================== ADMIN METHODS ====================

func (s *rentalService) GetAllRentals(ctx context.Context) ([]response.RentalResponse, error) {
	rentals, err := s.repo.Rental.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get all rentals", zap.Error(err))
		return nil, fmt.Errorf("get all rentals: %w", err)
	}

	return s.convertRentals(ctx, rentals), nil
}

func (s *rentalService) UpdateRental(ctx context.Context, rentalID string, req *request.UpdateRentalRequest) (*response.RentalResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update rental validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(rentalID)
	if err != nil {
		return nil, fmt.Errorf("invalid rental ID format %s: %w", rentalID, err)
	}

	rental, err := s.repo.Rental.FindByID(ctx, id)
	if err != nil || rental == nil {
		return nil, fmt.Errorf("rental %s not found", rentalID)
	}

	if req.PickUpLocation != nil {
		rental.PickUpLocation = *req.PickUpLocation
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %s: %w", *req.StartDate, err)
		}
		rental.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %s: %w", *req.EndDate, err)
		}
		rental.EndDate = endDate
	}
	if rental.EndDate.Before(rental.StartDate) {
		return nil, fmt.Errorf("end date cannot be before start date")
	}
	if req.DriverDays != nil {
		rental.DriverDays = *req.DriverDays
	}
	if req.Status != nil {
		newStatus := entity.RentalStatus(*req.Status)
		if newStatus != rental.Status && rental.Status != entity.RentalStatusPending {
			// Only pending rentals move to confirmed or rejected.
			return nil, fmt.Errorf("rental status is %s, cannot change to %s", rental.Status, newStatus)
		}
		rental.Status = newStatus
	}
	rental.UpdatedAt = time.Now()

	if err := s.repo.Rental.Update(ctx, rental); err != nil {
		s.log.Error("Failed to update rental", zap.Error(err), zap.String("rental_id", rentalID))
		return nil, fmt.Errorf("update rental %s: %w", rentalID, err)
	}

	s.log.Info("Rental updated",
		zap.String("rental_id", rentalID),
		zap.String("status", string(rental.Status)))

	car, _ := s.repo.Car.FindByID(ctx, rental.CarID)
	resp := response.RentalToResponse(rental, car)
	return &resp, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, rentalID string) error {
	id, err := uuid.Parse(rentalID)
	if err != nil {
		return fmt.Errorf("invalid rental ID format %s: %w", rentalID, err)
	}

	if err := s.repo.Rental.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete rental", zap.Error(err), zap.String("rental_id", rentalID))
		return fmt.Errorf("delete rental %s: %w", rentalID, err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

func (s *rentalService) convertRentals(ctx context.Context, rentals []*entity.Rental) []response.RentalResponse {
	rentalResponses := make([]response.RentalResponse, len(rentals))
	for i, rental := range rentals {
		car, _ := s.repo.Car.FindByID(ctx, rental.CarID)
		rentalResponses[i] = response.RentalToResponse(rental, car)
	}
	return rentalResponses
}
