package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message represents a Kafka message with metadata
type Message struct {
	Key       string            // Partition key (e.g., property_id, booking_id)
	Value     []byte            // Message payload (JSON-encoded)
	Headers   map[string]string // Message headers
	Topic     string            // Topic name
	Partition int               // Partition number (set by Kafka)
	Offset    int64             // Message offset (set by Kafka)
	Timestamp time.Time         // Message timestamp
}

// Header keys used across all services
const (
	HeaderEventID       = "event-id"
	HeaderEventType     = "event-type"
	HeaderCorrelationID = "correlation-id"
	HeaderSchemaVersion = "schema-version"
	HeaderSource        = "source"
	HeaderTimestamp     = "timestamp"
	HeaderRetryCount    = "retry-count"
	HeaderOriginalTopic = "original-topic"
)

// Event types published by the domain services
const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingCancelled = "booking.cancelled"
	EventListingDeleted   = "listing.deleted"
)

func (m Message) GetEventID() string {
	return m.Headers[HeaderEventID]
}

func (m Message) GetEventType() string {
	return m.Headers[HeaderEventType]
}

func (m Message) GetCorrelationID() string {
	return m.Headers[HeaderCorrelationID]
}

// MessageBuilder provides a fluent interface for building messages
type MessageBuilder struct {
	msg Message
	err error
}

// NewMessage creates a new MessageBuilder with a generated event id
// and the current timestamp.
func NewMessage(source string) *MessageBuilder {
	return &MessageBuilder{
		msg: Message{
			Headers: map[string]string{
				HeaderEventID:       uuid.NewString(),
				HeaderSchemaVersion: "1",
				HeaderSource:        source,
				HeaderTimestamp:     time.Now().UTC().Format(time.RFC3339),
			},
			Timestamp: time.Now().UTC(),
		},
	}
}

func (b *MessageBuilder) WithKey(key string) *MessageBuilder {
	b.msg.Key = key
	return b
}

func (b *MessageBuilder) WithEventType(eventType string) *MessageBuilder {
	b.msg.Headers[HeaderEventType] = eventType
	return b
}

func (b *MessageBuilder) WithCorrelationID(correlationID string) *MessageBuilder {
	b.msg.Headers[HeaderCorrelationID] = correlationID
	return b
}

func (b *MessageBuilder) WithHeader(key, value string) *MessageBuilder {
	b.msg.Headers[key] = value
	return b
}

// WithJSONPayload marshals payload as the message value.
func (b *MessageBuilder) WithJSONPayload(payload any) *MessageBuilder {
	data, err := json.Marshal(payload)
	if err != nil {
		b.err = fmt.Errorf("failed to marshal payload: %w", err)
		return b
	}
	b.msg.Value = data
	return b
}

func (b *MessageBuilder) Build() (Message, error) {
	if b.err != nil {
		return Message{}, b.err
	}
	if b.msg.Key == "" {
		return Message{}, ErrEmptyKey
	}
	if len(b.msg.Value) == 0 {
		return Message{}, ErrEmptyValue
	}
	return b.msg, nil
}
