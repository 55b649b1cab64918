package service

import (
	"fmt"
	"stayhub/internal/gateway/core"
	"stayhub/internal/gateway/flows"
	"stayhub/pkg/client"
	"stayhub/pkg/logger"
)

type GatewayService struct {
	client *client.Client
	Logger *logger.Logger
}

func NewGatewayService(client *client.Client, logger *logger.Logger) *GatewayService {
	return &GatewayService{
		client: client,
		Logger: logger,
	}
}

type FlowFunc func(ctx *core.FlowContext) error

var flowRegistry = map[string]FlowFunc{
	"search_listings":   flows.SearchListings,
	"property_overview": flows.PropertyOverview,
	"create_booking":    flows.CreateBooking,
}

func (s *GatewayService) ExecuteFlow(flowName string, input map[string]any) (map[string]any, error) {
	flow, exists := flowRegistry[flowName]
	if !exists {
		return nil, fmt.Errorf("unknown flow: %s", flowName)
	}
	ctx := core.NewFlowContext(input, s.client, s.Logger)
	if err := flow(ctx); err != nil {
		return nil, fmt.Errorf("flow execution failed: %v", err)
	}
	return ctx.Output, nil
}

func (s *GatewayService) GetAvailableFlows() []string {
	names := make([]string, 0, len(flowRegistry))
	for flowName := range flowRegistry {
		names = append(names, flowName)
	}
	return names
}
