package config

import "time"

const (
	DefaultBookingsTopic = "stayhub.bookings"
	DefaultListingsTopic = "stayhub.listings"
	DefaultDLQTopic      = "stayhub.dlq"

	DefaultConsumerGroupID = "stayhub"

	DefaultProducerCompression  = "snappy"
	DefaultProducerRequireAcks  = -1
	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 100 * time.Millisecond
	DefaultProducerAsync        = false

	DefaultConsumerMinBytes    = 1
	DefaultConsumerMaxBytes    = 10 * 1024 * 1024
	DefaultConsumerMaxWait     = 500 * time.Millisecond
	DefaultConsumerStartOffset = "last"
)
