package response

import (
	"time"

	"wheeloop/internal/data/entity"
)

type RentalResponse struct {
	ID             string              `json:"id"`
	CarID          string              `json:"car_id"`
	UserID         string              `json:"user_id"`
	CarName        string              `json:"car_name,omitempty"`
	CarImageURL    *string             `json:"car_image_url,omitempty"`
	PickUpLocation string              `json:"pick_up_location"`
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	DriverDays     int                 `json:"driver_days"`
	Status         entity.RentalStatus `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
}

// RentalQuoteResponse is returned on booking creation. It carries the
// server-side price breakdown the payment step is expected to submit back.
type RentalQuoteResponse struct {
	RentalResponse
	PricePerDay float64 `json:"price_per_day"`
	RentalDays  int     `json:"rental_days"`
	DriverCost  float64 `json:"driver_cost"`
	TotalAmount float64 `json:"total_amount"`
}

func RentalToResponse(rental *entity.Rental, car *entity.Car) RentalResponse {
	resp := RentalResponse{
		ID:             rental.ID.String(),
		CarID:          rental.CarID.String(),
		UserID:         rental.UserID.String(),
		PickUpLocation: rental.PickUpLocation,
		StartDate:      rental.StartDate.Format("2006-01-02"),
		EndDate:        rental.EndDate.Format("2006-01-02"),
		DriverDays:     rental.DriverDays,
		Status:         rental.Status,
		CreatedAt:      rental.CreatedAt,
	}

	if car != nil {
		resp.CarName = car.Name
		resp.CarImageURL = car.ImageURL
	}

	return resp
}
