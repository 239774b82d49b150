package prometheus

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Check latency buckets in milliseconds. Most checks are pure regex work
	// plus one insert.
	latencyBuckets = []float64{
		1, 2.5, 5, 10, 25,
		50, 100, 250, 500,
		1000, 2500,
	}

	// Risk scores live in [0, 10].
	scoreBuckets = []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 8.5, 9, 10}

	GuardrailChecksTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustguard_checks_total",
			Help: "Total number of guardrail checks by decision",
		},
		[]string{"action", "severity"},
	)

	GuardrailRiskScore = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustguard_risk_score",
			Help:    "Distribution of prompt and response risk scores",
			Buckets: scoreBuckets,
		},
		[]string{"side"}, // prompt or response
	)

	GuardrailPIIDetections = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustguard_pii_detections_total",
			Help: "PII categories detected across checks",
		},
		[]string{"pii_type"},
	)

	GuardrailCheckLatency = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trustguard_check_latency_ms",
			Help:    "Guardrail check latency in milliseconds",
			Buckets: latencyBuckets,
		},
	)

	GuardrailReviewsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustguard_reviews_total",
			Help: "Human review decisions submitted",
		},
		[]string{"decision"},
	)

	GuardrailExportFailures = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustguard_export_failures_total",
			Help: "Decision events an exporter failed to deliver",
		},
		[]string{"exporter"},
	)

	HTTPRequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustguard_http_requests_total",
			Help: "Admin API requests by route and status class",
		},
		[]string{"method", "route", "status"},
	)
)

type MetricsConfig struct {
	EnableLatency  bool // Check latency histogram
	EnablePIITypes bool // Per PII category counter
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency:  true,
		EnablePIITypes: true,
	}
}

var Config = DefaultMetricsConfig()

var initOnce sync.Once

func Initialize(cfg MetricsConfig) {
	Config = cfg
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

// Handler serves the guardrail registry in the exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func Gatherer() prometheus.Gatherer {
	return registry
}
