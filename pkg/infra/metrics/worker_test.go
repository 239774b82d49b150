package metrics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/telemetry"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type recordingExporter struct {
	mu     sync.Mutex
	name   string
	err    error
	events []*telemetry.DecisionEvent
	closed bool
}

func (r *recordingExporter) Name() string { return r.name }
func (r *recordingExporter) ValidateConfig(map[string]interface{}) error { return nil }
func (r *recordingExporter) WithSettings(map[string]interface{}) (telemetry.Exporter, error) {
	return r, nil
}

func (r *recordingExporter) Handle(_ context.Context, evt *telemetry.DecisionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return r.err
}

func (r *recordingExporter) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

func (r *recordingExporter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func TestWorker_ProcessExportsAndRecords(t *testing.T) {
	ok := &recordingExporter{name: "ok"}
	failing := &recordingExporter{name: "failing-test", err: errors.New("broker down")}
	w := NewWorker(newTestLogger(), []telemetry.Exporter{ok, failing}, 10)
	w.StartWorkers(2)

	before := testutil.ToFloat64(prometheus.GuardrailChecksTotal.WithLabelValues("redacted", "low"))

	w.Process(&telemetry.DecisionEvent{
		RequestID: "req-1",
		Action:    "redacted",
		Severity:  "low",
		PIITypes:  []string{"email"},
	})

	assert.Eventually(t, func() bool {
		return ok.count() == 1 && failing.count() == 1
	}, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(prometheus.GuardrailChecksTotal.WithLabelValues("redacted", "low")) == before+1
	}, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(prometheus.GuardrailExportFailures.WithLabelValues("failing-test")) >= 1
	}, time.Second, 10*time.Millisecond)

	w.Shutdown()
	assert.True(t, ok.closed)
	assert.True(t, failing.closed)
}

func TestWorker_ProcessAfterShutdownIsDropped(t *testing.T) {
	exporter := &recordingExporter{name: "late"}
	w := NewWorker(newTestLogger(), []telemetry.Exporter{exporter}, 10)
	w.StartWorkers(1)
	w.Shutdown()
	w.Shutdown()

	w.Process(&telemetry.DecisionEvent{RequestID: "req-2"})

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, exporter.count())
}

func TestWorker_FullQueueDropsTasks(t *testing.T) {
	exporter := &recordingExporter{name: "slow"}
	w := NewWorker(newTestLogger(), []telemetry.Exporter{exporter}, 1)

	for i := 0; i < 5; i++ {
		w.Process(&telemetry.DecisionEvent{RequestID: "req"})
	}

	impl := w.(*worker)
	assert.Len(t, impl.taskChan, 1)
	w.Shutdown()
}
