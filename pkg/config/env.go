package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvBookingLockTTL  = "BOOKING_LOCK_TTL"
	EnvMaxOverlapFetch = "MAX_OVERLAP_FETCH"

	EnvListingsServiceURL = "LISTINGS_SERVICE_URL"
	EnvBookingsServiceURL = "BOOKINGS_SERVICE_URL"
	EnvReviewsServiceURL  = "REVIEWS_SERVICE_URL"
	EnvUsersServiceURL    = "USERS_SERVICE_URL"
)
