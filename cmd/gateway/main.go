package main

import (
	"net/http"
	"os"

	"stayhub/internal/gateway/api"
	"stayhub/pkg/config"
)

const ServiceName = "gateway"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetServices()

	router := api.SetupRouter(cfg.Client, cfg.Log)

	addr := ":" + cfg.Port
	cfg.Log.Info("Starting Gateway API server",
		"address", addr,
		"listings_url", cfg.ListingsServiceURL,
		"bookings_url", cfg.BookingsServiceURL,
		"reviews_url", cfg.ReviewsServiceURL,
		"users_url", cfg.UsersServiceURL,
	)

	if err := http.ListenAndServe(addr, router); err != nil {
		cfg.Log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
