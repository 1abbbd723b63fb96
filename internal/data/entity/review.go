package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	Base
	UserID uuid.UUID `db:"user_id"`
	CarID  uuid.UUID `db:"car_id"`
	Text   string    `db:"review_text"`
}
