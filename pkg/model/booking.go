package model

import (
	"time"
)

type Booking struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,uuid4"`
	PropertyID string    `json:"property_id" bson:"property_id" validate:"required,uuid4"`
	UserID     string    `json:"user_id" bson:"user_id" validate:"required,uuid4"`
	StartDate  Date      `json:"start_date" bson:"start_date" validate:"-"`
	EndDate    Date      `json:"end_date" bson:"end_date" validate:"-"`
	TotalPrice Price     `json:"total_price" bson:"total_price" validate:"-"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// Nights returns the length of the stay in whole days.
func (b *Booking) Nights() int {
	return Nights(b.StartDate, b.EndDate)
}

type BookingUpdate struct {
	StartDate *Date `json:"start_date,omitempty"`
	EndDate   *Date `json:"end_date,omitempty"`
}
