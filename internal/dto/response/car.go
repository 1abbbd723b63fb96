package response

import (
	"time"

	"wheeloop/internal/data/entity"
)

type CarResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	PricePerDay  float64   `json:"price_per_day"`
	Capacity     int       `json:"capacity"`
	Transmission string    `json:"transmission"`
	Mileage      int       `json:"mileage"`
	Description  *string   `json:"description,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func CarToResponse(car *entity.Car) CarResponse {
	return CarResponse{
		ID:           car.ID.String(),
		Name:         car.Name,
		Type:         car.Type,
		PricePerDay:  car.PricePerDay,
		Capacity:     car.Capacity,
		Transmission: car.Transmission,
		Mileage:      car.Mileage,
		Description:  car.Description,
		ImageURL:     car.ImageURL,
		CreatedAt:    car.CreatedAt,
	}
}
