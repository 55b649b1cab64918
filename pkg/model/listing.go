package model

import (
	"time"
)

type Listing struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,uuid4"`
	HostID        string    `json:"host_id" bson:"host_id" validate:"required,uuid4"`
	Name          string    `json:"name" bson:"name" validate:"required,min=2,max=200"`
	Description   string    `json:"description" bson:"description" validate:"required,max=2000"`
	Location      string    `json:"location" bson:"location" validate:"required,min=2,max=200"`
	LocationSlug  string    `json:"location_slug,omitempty" bson:"location_slug" validate:"omitempty"`
	PricePerNight Price     `json:"price_per_night" bson:"price_per_night" validate:"-"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at" validate:"omitempty"`
}

type ListingUpdate struct {
	Name          string `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description   string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location      string `json:"location,omitempty" validate:"omitempty,min=2,max=200"`
	PricePerNight *Price `json:"price_per_night,omitempty" validate:"-"`
}
