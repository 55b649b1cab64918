package model

import "time"

// BookingLock is an advisory lock document held across the overlap
// check and insert for a property. A unique _id insert acquires the
// lock; a TTL index on expires_at reclaims locks from crashed holders.
type BookingLock struct {
	ID        string    `json:"id" bson:"_id"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
