package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wheeloop/internal/data/entity"
	"wheeloop/internal/data/repository"
	"wheeloop/internal/dto/request"
	"wheeloop/internal/dto/response"
	"wheeloop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CarService interface {
	ListCars(ctx context.Context, search string) ([]response.CarResponse, error)
	GetCar(ctx context.Context, carID string) (*response.CarResponse, error)

	// Admin endpoints
	CreateCar(ctx context.Context, req *request.CarRequest) (*response.CarResponse, error)
	UpdateCar(ctx context.Context, carID string, req *request.CarUpdateRequest) (*response.CarResponse, error)
	DeleteCar(ctx context.Context, carID string) error
}

type carService struct {
	cars repository.CarRepository
	log  *zap.Logger
}

func NewCarService(cars repository.CarRepository, log *zap.Logger) CarService {
	return &carService{
		cars: cars,
		log:  log.With(zap.String("service", "car")),
	}
}

// FilterCars keeps the cars whose name or type contains the search term,
// case-insensitive. An empty term keeps everything.
func FilterCars(cars []*entity.Car, term string) []*entity.Car {
	if term == "" {
		return cars
	}

	term = strings.ToLower(term)
	var filtered []*entity.Car
	for _, car := range cars {
		if strings.Contains(strings.ToLower(car.Name), term) ||
			strings.Contains(strings.ToLower(car.Type), term) {
			filtered = append(filtered, car)
		}
	}

	return filtered
}

func (s *carService) ListCars(ctx context.Context, search string) ([]response.CarResponse, error) {
	cars, err := s.cars.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list cars", zap.Error(err))
		return nil, fmt.Errorf("list cars: %w", err)
	}

	cars = FilterCars(cars, search)

	carResponses := make([]response.CarResponse, len(cars))
	for i, car := range cars {
		carResponses[i] = response.CarToResponse(car)
	}

	s.log.Info("Cars listed", zap.Int("count", len(cars)), zap.String("search", search))
	return carResponses, nil
}

func (s *carService) GetCar(ctx context.Context, carID string) (*response.CarResponse, error) {
	id, err := uuid.Parse(carID)
	if err != nil {
		return nil, fmt.Errorf("invalid car ID format %s: %w", carID, err)
	}

	car, err := s.cars.FindByID(ctx, id)
	if err != nil || car == nil {
		return nil, fmt.Errorf("car %s not found", carID)
	}

	carResp := response.CarToResponse(car)
	return &carResp, nil
}

// ==================== ADMIN METHODS ====================

func (s *carService) CreateCar(ctx context.Context, req *request.CarRequest) (*response.CarResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create car validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	car := &entity.Car{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Type:         req.Type,
		PricePerDay:  req.PricePerDay,
		Capacity:     req.Capacity,
		Transmission: req.Transmission,
		Mileage:      req.Mileage,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
	}

	if err := s.cars.Create(ctx, car); err != nil {
		s.log.Error("Failed to create car", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create car: %w", err)
	}

	s.log.Info("Car created",
		zap.String("car_id", car.ID.String()),
		zap.String("name", car.Name),
		zap.Float64("price_per_day", car.PricePerDay))

	carResp := response.CarToResponse(car)
	return &carResp, nil
}

func (s *carService) UpdateCar(ctx context.Context, carID string, req *request.CarUpdateRequest) (*response.CarResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update car validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(carID)
	if err != nil {
		return nil, fmt.Errorf("invalid car ID format %s: %w", carID, err)
	}

	car, err := s.cars.FindByID(ctx, id)
	if err != nil || car == nil {
		return nil, fmt.Errorf("car %s not found", carID)
	}

	if req.Name != nil {
		car.Name = *req.Name
	}
	if req.Type != nil {
		car.Type = *req.Type
	}
	if req.PricePerDay != nil {
		car.PricePerDay = *req.PricePerDay
	}
	if req.Capacity != nil {
		car.Capacity = *req.Capacity
	}
	if req.Transmission != nil {
		car.Transmission = *req.Transmission
	}
	if req.Mileage != nil {
		car.Mileage = *req.Mileage
	}
	if req.Description != nil {
		car.Description = req.Description
	}
	if req.ImageURL != nil {
		car.ImageURL = req.ImageURL
	}
	car.UpdatedAt = time.Now()

	if err := s.cars.Update(ctx, car); err != nil {
		s.log.Error("Failed to update car", zap.Error(err), zap.String("car_id", carID))
		return nil, fmt.Errorf("update car %s: %w", carID, err)
	}

	s.log.Info("Car updated", zap.String("car_id", carID))

	carResp := response.CarToResponse(car)
	return &carResp, nil
}

func (s *carService) DeleteCar(ctx context.Context, carID string) error {
	id, err := uuid.Parse(carID)
	if err != nil {
		return fmt.Errorf("invalid car ID format %s: %w", carID, err)
	}

	if err := s.cars.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete car", zap.Error(err), zap.String("car_id", carID))
		return fmt.Errorf("delete car %s: %w", carID, err)
	}

	return nil
}
