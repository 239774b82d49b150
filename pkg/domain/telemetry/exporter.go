package telemetry

import (
	"context"
)

// Exporter ships decision events to an external sink. A registered exporter is
// a prototype; WithSettings returns the configured instance that is used.
type Exporter interface {
	Name() string
	ValidateConfig(settings map[string]interface{}) error
	Handle(ctx context.Context, evt *DecisionEvent) error
	WithSettings(settings map[string]interface{}) (Exporter, error)
	Close()
}

type ExporterConfig struct {
	Name     string                 `json:"name" mapstructure:"name"`
	Settings map[string]interface{} `json:"settings" mapstructure:"settings"`
}
