package usecase

import (
	"math"
	"time"
)

// DriverDailyRate is the chauffeur surcharge in Rs per driver-day.
const DriverDailyRate = 500.0

// RentalDays returns the number of billable days between two dates,
// rounded up so a partial day counts as a full one.
func RentalDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// DriverCost computes the chauffeur surcharge. The rate applies per
// requested driver-day for every day of the rental, which compounds the
// charge by trip length. That is the billing rule the web client has
// always shown customers; changing it is a product decision, not a bug fix.
func DriverCost(driverDays, rentalDays int) float64 {
	return float64(driverDays) * DriverDailyRate * float64(rentalDays)
}

// TotalAmount is the full price of a rental: daily rate times billable
// days plus the chauffeur surcharge.
func TotalAmount(rentalDays int, pricePerDay float64, driverDays int) float64 {
	return float64(rentalDays)*pricePerDay + DriverCost(driverDays, rentalDays)
}
