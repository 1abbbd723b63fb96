package entity

import (
	"time"

	"github.com/google/uuid"
)

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusConfirmed RentalStatus = "confirmed"
	RentalStatusRejected  RentalStatus = "rejected"
)

type Rental struct {
	Base
	CarID          uuid.UUID    `db:"car_id"`
	UserID         uuid.UUID    `db:"user_id"`
	PickUpLocation string       `db:"pick_up_location"`
	StartDate      time.Time    `db:"start_date"`
	EndDate        time.Time    `db:"end_date"`
	DriverDays     int          `db:"driver_days"`
	Status         RentalStatus `db:"status"`
}
