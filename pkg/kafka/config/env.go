package config

const (
	EnvBrokers = "KAFKA_BROKERS"

	EnvBookingsTopic = "KAFKA_BOOKINGS_TOPIC"
	EnvListingsTopic = "KAFKA_LISTINGS_TOPIC"
	EnvDLQTopic      = "KAFKA_DLQ_TOPIC"

	EnvConsumerGroupID = "KAFKA_CONSUMER_GROUP_ID"

	EnvProducerCompression  = "KAFKA_PRODUCER_COMPRESSION"
	EnvProducerRequireAcks  = "KAFKA_PRODUCER_REQUIRE_ACKS"
	EnvProducerMaxAttempts  = "KAFKA_PRODUCER_MAX_ATTEMPTS"
	EnvProducerBatchTimeout = "KAFKA_PRODUCER_BATCH_TIMEOUT"
	EnvProducerAsync        = "KAFKA_PRODUCER_ASYNC"

	EnvConsumerMinBytes    = "KAFKA_CONSUMER_MIN_BYTES"
	EnvConsumerMaxBytes    = "KAFKA_CONSUMER_MAX_BYTES"
	EnvConsumerMaxWait     = "KAFKA_CONSUMER_MAX_WAIT"
	EnvConsumerStartOffset = "KAFKA_CONSUMER_START_OFFSET"
)
