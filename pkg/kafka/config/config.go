package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Brokers []string

	BookingsTopic string
	ListingsTopic string
	DLQTopic      string

	ConsumerGroupID string

	ProducerCompression  string
	ProducerRequireAcks  int
	ProducerMaxAttempts  int
	ProducerBatchTimeout time.Duration
	ProducerAsync        bool

	ConsumerMinBytes    int
	ConsumerMaxBytes    int
	ConsumerMaxWait     time.Duration
	ConsumerStartOffset string
}

// Load reads Kafka settings from the environment. An empty broker list
// means eventing is disabled and services run without a producer.
func Load() *Config {
	return &Config{
		Brokers: splitNonEmpty(os.Getenv(EnvBrokers)),

		BookingsTopic: getEnvStr(EnvBookingsTopic, DefaultBookingsTopic),
		ListingsTopic: getEnvStr(EnvListingsTopic, DefaultListingsTopic),
		DLQTopic:      getEnvStr(EnvDLQTopic, DefaultDLQTopic),

		ConsumerGroupID: getEnvStr(EnvConsumerGroupID, DefaultConsumerGroupID),

		ProducerCompression:  getEnvStr(EnvProducerCompression, DefaultProducerCompression),
		ProducerRequireAcks:  getEnvNum(EnvProducerRequireAcks, DefaultProducerRequireAcks),
		ProducerMaxAttempts:  getEnvNum(EnvProducerMaxAttempts, DefaultProducerMaxAttempts),
		ProducerBatchTimeout: getEnvDuration(EnvProducerBatchTimeout, DefaultProducerBatchTimeout),
		ProducerAsync:        getEnvBool(EnvProducerAsync, DefaultProducerAsync),

		ConsumerMinBytes:    getEnvNum(EnvConsumerMinBytes, DefaultConsumerMinBytes),
		ConsumerMaxBytes:    getEnvNum(EnvConsumerMaxBytes, DefaultConsumerMaxBytes),
		ConsumerMaxWait:     getEnvDuration(EnvConsumerMaxWait, DefaultConsumerMaxWait),
		ConsumerStartOffset: getEnvStr(EnvConsumerStartOffset, DefaultConsumerStartOffset),
	}
}

func (c *Config) Enabled() bool {
	return len(c.Brokers) > 0
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
