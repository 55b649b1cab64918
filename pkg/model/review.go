package model

import (
	"time"
)

type Review struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,uuid4"`
	PropertyID string    `json:"property_id" bson:"property_id" validate:"required,uuid4"`
	UserID     string    `json:"user_id" bson:"user_id" validate:"required,uuid4"`
	Rating     int       `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Comment    string    `json:"comment" bson:"comment" validate:"required,max=2000"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

type ReviewUpdate struct {
	Rating  *int   `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}
