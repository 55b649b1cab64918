package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "stayhub"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultBookingLockTTL = 10 * time.Second

	DefaultPaginationLimit = 100

	// Upper bound on bookings fetched for a single overlap check.
	// A property cannot hold more concurrent candidates than this
	// within one date window.
	DefaultMaxOverlapFetch = 30

	DefaultListingsServiceURL = "http://localhost:8081"
	DefaultBookingsServiceURL = "http://localhost:8082"
	DefaultReviewsServiceURL  = "http://localhost:8083"
	DefaultUsersServiceURL    = "http://localhost:8084"
)
