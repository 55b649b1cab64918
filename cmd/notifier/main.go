package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"stayhub/pkg/kafka"
	kafka_config "stayhub/pkg/kafka/config"
	"stayhub/pkg/logger"
)

const ServiceName = "notifier"

// Consumes the domain topics and logs every event. Stand-in for the
// downstream side of eventing (guest emails, host alerts); anything that
// reacts to bookings or listings plugs in here as another handler.
func main() {
	log := logger.New(logger.Config{
		Level:   logger.INFO,
		Format:  logger.JSON,
		Service: ServiceName,
	})

	kafkaCfg := kafka_config.Load()
	if !kafkaCfg.Enabled() {
		log.Fatal("Kafka brokers must be configured for the notifier")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-shutdown
		log.Info("Shutdown signal received", "signal", sig)
		cancel()
	}()

	topics := []string{kafkaCfg.BookingsTopic, kafkaCfg.ListingsTopic}
	var wg sync.WaitGroup

	for _, topic := range topics {
		consumer, err := kafka.NewConsumer(kafkaCfg, topic, logEvent(log))
		if err != nil {
			log.Fatal("Failed to create Kafka consumer", "topic", topic, "error", err)
		}
		defer consumer.Close()

		wg.Add(1)
		go func(topic string) {
			defer wg.Done()
			log.Info("Consuming topic", "topic", topic)
			if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("Consumer stopped", "topic", topic, "error", err)
				cancel()
			}
		}(topic)
	}

	wg.Wait()
	log.Info("Notifier stopped")
}

func logEvent(log *logger.Logger) kafka.MessageHandler {
	return func(ctx context.Context, msg kafka.Message) error {
		log.Info("Event received",
			"topic", msg.Topic,
			"key", msg.Key,
			"event_id", msg.GetEventID(),
			"event_type", msg.GetEventType(),
			"offset", msg.Offset,
		)
		return nil
	}
}
