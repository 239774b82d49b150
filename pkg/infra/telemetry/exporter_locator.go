package telemetry

import (
	"fmt"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/telemetry"
)

type ExporterLocator struct {
	exporters map[string]telemetry.Exporter
}

func NewExporterLocator(opts ...ExporterLocatorOption) *ExporterLocator {
	el := &ExporterLocator{
		exporters: make(map[string]telemetry.Exporter),
	}
	for _, opt := range opts {
		opt(el)
	}
	return el
}

func (p *ExporterLocator) GetExporter(cfg telemetry.ExporterConfig) (telemetry.Exporter, error) {
	base, ok := p.exporters[cfg.Name]
	if !ok {
		return nil, fmt.Errorf("unknown exporter: %s", cfg.Name)
	}
	if err := base.ValidateConfig(cfg.Settings); err != nil {
		return nil, err
	}
	return base.WithSettings(cfg.Settings)
}

func (p *ExporterLocator) ValidateExporter(cfg telemetry.ExporterConfig) error {
	base, ok := p.exporters[cfg.Name]
	if !ok {
		return fmt.Errorf("unknown exporter: %s", cfg.Name)
	}
	return base.ValidateConfig(cfg.Settings)
}

// Build configures every exporter in cfgs. On error the exporters built so far
// are closed.
func (p *ExporterLocator) Build(cfgs []telemetry.ExporterConfig) ([]telemetry.Exporter, error) {
	built := make([]telemetry.Exporter, 0, len(cfgs))
	for _, cfg := range cfgs {
		exporter, err := p.GetExporter(cfg)
		if err != nil {
			for _, e := range built {
				e.Close()
			}
			return nil, fmt.Errorf("exporter %s: %w", cfg.Name, err)
		}
		built = append(built, exporter)
	}
	return built, nil
}
