package main

import (
	"stayhub/internal/users/handler"
	"stayhub/internal/users/repository"
	"stayhub/internal/users/service"
	"stayhub/internal/users/validator"
	"stayhub/pkg/app"
	"stayhub/pkg/config"
)

const ServiceName = "users"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Users service")
	userService := initServices(cfg)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewUserHandler(userService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.UserService {
	userValidator := validator.NewUserValidator(cfg.Log)
	userRepo := repository.NewMongoUserRepository(cfg)

	userService := service.NewUserService(
		userRepo,
		userValidator,
		cfg,
	)

	cfg.Log.Info("User service initialized", "database", cfg.MongoDatabaseName)
	return userService
}
