package request

type CarRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Type         string  `json:"type" validate:"required,min=1,max=50"`
	PricePerDay  float64 `json:"price_per_day" validate:"required,gt=0"`
	Capacity     int     `json:"capacity" validate:"required,min=1,max=20"`
	Transmission string  `json:"transmission" validate:"required,oneof=manual automatic"`
	Mileage      int     `json:"mileage" validate:"required,min=1"`
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type CarUpdateRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type         *string  `json:"type,omitempty" validate:"omitempty,min=1,max=50"`
	PricePerDay  *float64 `json:"price_per_day,omitempty" validate:"omitempty,gt=0"`
	Capacity     *int     `json:"capacity,omitempty" validate:"omitempty,min=1,max=20"`
	Transmission *string  `json:"transmission,omitempty" validate:"omitempty,oneof=manual automatic"`
	Mileage      *int     `json:"mileage,omitempty" validate:"omitempty,min=1"`
	Description  *string  `json:"description,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty" validate:"omitempty,url"`
}
