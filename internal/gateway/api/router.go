package api

import (
	"net/http"
	"stayhub/internal/gateway/handlers"
	"stayhub/internal/gateway/service"
	"stayhub/pkg/client"
	"stayhub/pkg/logger"
)

func SetupRouter(client *client.Client, log *logger.Logger) *http.ServeMux {
	gatewayService := service.NewGatewayService(client, log)
	flowHandler := handlers.NewFlowHandler(gatewayService, log)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/gateway/execute", flowHandler.ExecuteFlow)
	mux.HandleFunc("/api/v1/gateway/flows", flowHandler.ListFlows)
	mux.HandleFunc("/api/v1/gateway/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})
	return mux
}
