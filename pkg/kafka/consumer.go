package kafka

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	kafka_config "stayhub/pkg/kafka/config"

	"github.com/segmentio/kafka-go"
)

// MessageHandler processes a single consumed message
type MessageHandler func(ctx context.Context, msg Message) error

// Consumer wraps kafka-go reader with handler dispatch
type Consumer struct {
	reader  *kafka.Reader
	handler MessageHandler
	closed  bool
	mu      sync.RWMutex
}

// NewConsumer creates a new Kafka consumer for the given topic
func NewConsumer(cfg *kafka_config.Config, topic string, handler MessageHandler) (*Consumer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}
	if handler == nil {
		return nil, fmt.Errorf("handler cannot be nil")
	}

	startOffset := kafka.LastOffset
	if cfg.ConsumerStartOffset == "first" {
		startOffset = kafka.FirstOffset
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		GroupID:     cfg.ConsumerGroupID,
		Topic:       topic,
		MinBytes:    cfg.ConsumerMinBytes,
		MaxBytes:    cfg.ConsumerMaxBytes,
		MaxWait:     cfg.ConsumerMaxWait,
		StartOffset: startOffset,
		Logger:      kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(log.Printf),
	})

	return &Consumer{
		reader:  reader,
		handler: handler,
	}, nil
}

// Run consumes messages until the context is cancelled or the
// consumer is closed. Handler errors are logged and the message is
// committed anyway; redelivery is not a retry strategy here.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		c.mu.RLock()
		if c.closed {
			c.mu.RUnlock()
			return ErrConsumerClosed
		}
		c.mu.RUnlock()

		kafkaMsg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		msg := Message{
			Key:       string(kafkaMsg.Key),
			Value:     kafkaMsg.Value,
			Headers:   map[string]string{},
			Topic:     kafkaMsg.Topic,
			Partition: kafkaMsg.Partition,
			Offset:    kafkaMsg.Offset,
			Timestamp: kafkaMsg.Time,
		}
		for _, h := range kafkaMsg.Headers {
			msg.Headers[h.Key] = string(h.Value)
		}

		if err := c.handler(ctx, msg); err != nil {
			log.Printf("[KAFKA CONSUMER] handler failed | topic=%s key=%s offset=%d error=%v",
				msg.Topic, msg.Key, msg.Offset, err)
		}
	}
}

// Close stops the consumer
func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.reader.Close()
}
