package entity

type Car struct {
	Base
	Name         string  `db:"name"`
	Type         string  `db:"type"`
	PricePerDay  float64 `db:"price_per_day"`
	Capacity     int     `db:"capacity"`
	Transmission string  `db:"transmission"`
	Mileage      int     `db:"mileage"` // miles per day allowance
	Description  *string `db:"description"`
	ImageURL     *string `db:"image_url"`
}
