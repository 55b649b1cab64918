package main

import (
	"stayhub/internal/listings/handler"
	"stayhub/internal/listings/repository"
	"stayhub/internal/listings/service"
	"stayhub/internal/listings/validator"
	"stayhub/pkg/app"
	"stayhub/pkg/config"
	"stayhub/pkg/kafka"
	kafka_config "stayhub/pkg/kafka/config"
	kafka_middleware "stayhub/pkg/kafka/middleware"
)

const ServiceName = "listings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Listings service")
	listingService := initServices(cfg)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewListingHandler(listingService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.ListingService {
	listingValidator := validator.NewListingValidator(cfg.Log)
	listingRepo := repository.NewMongoListingRepository(cfg)
	refsRepo := repository.NewRefsRepository(cfg)

	var events service.EventPublisher
	kafkaCfg := kafka_config.Load()
	if kafkaCfg.Enabled() {
		producer, err := kafka.NewProducer(kafkaCfg, kafkaCfg.ListingsTopic, kafkaCfg.DLQTopic)
		if err != nil {
			cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
		}
		producer.Use(kafka_middleware.LoggingProducerMiddleware())
		events = producer
		cfg.Log.Info("Kafka producer initialized", "topic", kafkaCfg.ListingsTopic)
	} else {
		cfg.Log.Info("Kafka brokers not configured, event publishing disabled")
	}

	listingService := service.NewListingService(
		listingRepo,
		refsRepo,
		listingValidator,
		events,
		cfg,
	)

	cfg.Log.Info("Listing service initialized", "database", cfg.MongoDatabaseName)
	return listingService
}
