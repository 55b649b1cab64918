package model

import (
	"time"
)

type User struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,uuid4"`
	Username  string    `json:"username" bson:"username" validate:"required,min=3,max=50"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	FirstName string    `json:"first_name,omitempty" bson:"first_name" validate:"omitempty,max=100"`
	LastName  string    `json:"last_name,omitempty" bson:"last_name" validate:"omitempty,max=100"`
	Phone     string    `json:"phone,omitempty" bson:"phone" validate:"omitempty,e164"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

type UserUpdate struct {
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,e164"`
}
