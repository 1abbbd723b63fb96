package request

type CreateRentalRequest struct {
	CarID          string `json:"car_id" validate:"required,uuid4"`
	PickUpLocation string `json:"pick_up_location" validate:"required,min=1,max=200"`
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" validate:"required,datetime=2006-01-02"`
	DriverDays     int    `json:"driver_days" validate:"min=0"`
}

type UpdateRentalRequest struct {
	PickUpLocation *string `json:"pick_up_location,omitempty" validate:"omitempty,min=1,max=200"`
	StartDate      *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DriverDays     *int    `json:"driver_days,omitempty" validate:"omitempty,min=0"`
	Status         *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed rejected"`
}
