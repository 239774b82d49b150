package kafka

import (
	"context"
	"testing"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/telemetry"
	"github.com/stretchr/testify/assert"
)

func TestExporter_ValidateConfig(t *testing.T) {
	exporter := NewKafkaExporter()

	tests := []struct {
		name     string
		settings map[string]interface{}
		wantErr  string
	}{
		{"valid", map[string]interface{}{"host": "localhost", "port": "9092", "topic": "decisions"}, ""},
		{"numeric port", map[string]interface{}{"host": "localhost", "port": 9092, "topic": "decisions"}, ""},
		{"missing host", map[string]interface{}{"port": "9092", "topic": "decisions"}, "kafka host is required"},
		{"missing port", map[string]interface{}{"host": "localhost", "topic": "decisions"}, "kafka port is required"},
		{"missing topic", map[string]interface{}{"host": "localhost", "port": "9092"}, "kafka topic is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := exporter.ValidateConfig(tt.settings)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestExporter_HandleWithoutProducer(t *testing.T) {
	exporter := NewKafkaExporter()

	err := exporter.Handle(context.Background(), &telemetry.DecisionEvent{RequestID: "req-1"})

	assert.EqualError(t, err, "kafka producer is not initialized")
	assert.Equal(t, ExporterName, exporter.Name())
	exporter.Close()
}
