package main

import (
	"stayhub/internal/reviews/handler"
	"stayhub/internal/reviews/repository"
	"stayhub/internal/reviews/service"
	"stayhub/internal/reviews/validator"
	"stayhub/pkg/app"
	"stayhub/pkg/config"
)

const ServiceName = "reviews"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Reviews service")
	reviewService := initServices(cfg)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewReviewHandler(reviewService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.ReviewService {
	reviewValidator := validator.NewReviewValidator(cfg.Log)
	reviewRepo := repository.NewMongoReviewRepository(cfg)
	refsRepo := repository.NewRefsRepository(cfg)

	reviewService := service.NewReviewService(
		reviewRepo,
		refsRepo,
		reviewValidator,
		cfg,
	)

	cfg.Log.Info("Review service initialized", "database", cfg.MongoDatabaseName)
	return reviewService
}
