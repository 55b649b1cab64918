package core

import (
	"stayhub/pkg/client"
	"stayhub/pkg/logger"
)

// FlowContext carries a flow's state: the caller's input, scratch
// values passed between steps, and the accumulated output.
type FlowContext struct {
	Input   map[string]any
	Process map[string]any
	Output  map[string]any
	Client  *client.Client
	Log     *logger.Logger
}

func NewFlowContext(input map[string]any, client *client.Client, log *logger.Logger) *FlowContext {
	return &FlowContext{
		Input:   input,
		Process: make(map[string]any),
		Output:  make(map[string]any),
		Client:  client,
		Log:     log,
	}
}

// ExtractString returns the input value for key, or "" when absent or
// not a string.
func (c *FlowContext) ExtractString(key string) string {
	raw, ok := c.Input[key]
	if !ok {
		return ""
	}
	s, _ := raw.(string)
	return s
}

// ExtractInt returns the input value for key as an int. JSON numbers
// decode as float64, so both forms are accepted.
func (c *FlowContext) ExtractInt(key string, fallback int) int {
	raw, ok := c.Input[key]
	if !ok {
		return fallback
	}
	switch v := raw.(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return fallback
	}
}
