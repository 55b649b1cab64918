package main

import (
	"stayhub/internal/bookings/handler"
	"stayhub/internal/bookings/repository"
	"stayhub/internal/bookings/service"
	"stayhub/internal/bookings/validator"
	"stayhub/pkg/app"
	"stayhub/pkg/config"
	"stayhub/pkg/kafka"
	kafka_config "stayhub/pkg/kafka/config"
	kafka_middleware "stayhub/pkg/kafka/middleware"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Bookings service")
	bookingService := initServices(cfg)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewBookingHandler(bookingService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	lockRepo := repository.NewBookingLockRepository(cfg)
	refsRepo := repository.NewRefsRepository(cfg)

	var events service.EventPublisher
	kafkaCfg := kafka_config.Load()
	if kafkaCfg.Enabled() {
		producer, err := kafka.NewProducer(kafkaCfg, kafkaCfg.BookingsTopic, kafkaCfg.DLQTopic)
		if err != nil {
			cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
		}
		producer.Use(kafka_middleware.LoggingProducerMiddleware())
		events = producer
		cfg.Log.Info("Kafka producer initialized", "topic", kafkaCfg.BookingsTopic)
	} else {
		cfg.Log.Info("Kafka brokers not configured, event publishing disabled")
	}

	bookingService := service.NewBookingService(
		bookingRepo,
		lockRepo,
		refsRepo,
		bookingValidator,
		events,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService
}
