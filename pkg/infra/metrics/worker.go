package metrics

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/telemetry"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const exportTimeout = 10 * time.Second

//go:generate mockery --name=Worker --dir=. --output=./mocks --filename=worker_mock.go --case=underscore
type Worker interface {
	Shutdown()
	StartWorkers(n int)
	Process(evt *telemetry.DecisionEvent)
}

type worker struct {
	logger    *logrus.Logger
	exporters []telemetry.Exporter
	taskChan  chan func()
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closed    atomic.Bool
}

func NewWorker(logger *logrus.Logger, exporters []telemetry.Exporter, queueSize int) Worker {
	if queueSize <= 0 {
		queueSize = 1000
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &worker{
		logger:    logger,
		exporters: exporters,
		taskChan:  make(chan func(), queueSize),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (m *worker) Shutdown() {
	if m.closed.Swap(true) {
		return
	}
	m.logger.Info("shutting down decision workers")
	m.cancel()
	m.wg.Wait()
	for _, exporter := range m.exporters {
		exporter.Close()
	}
	m.logger.Info("decision workers stopped")
}

func (m *worker) Process(evt *telemetry.DecisionEvent) {
	m.enqueueTask(func() {
		m.registryMetricsToPrometheus(evt)
	}, evt.RequestID)

	if len(m.exporters) == 0 {
		return
	}
	m.enqueueTask(func() {
		m.registryEventToExporters(evt)
	}, evt.RequestID)
}

func (m *worker) registryEventToExporters(evt *telemetry.DecisionEvent) {
	ctx, cancel := context.WithTimeout(m.ctx, exportTimeout)
	defer cancel()

	var g errgroup.Group
	for _, exporter := range m.exporters {
		exporter := exporter
		g.Go(func() error {
			if err := exporter.Handle(ctx, evt); err != nil {
				prometheus.GuardrailExportFailures.WithLabelValues(exporter.Name()).Inc()
				m.logger.WithFields(logrus.Fields{
					"request_id": evt.RequestID,
					"exporter":   exporter.Name(),
				}).WithError(err).Error("exporter failed")
				return err
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (m *worker) registryMetricsToPrometheus(evt *telemetry.DecisionEvent) {
	prometheus.GuardrailChecksTotal.WithLabelValues(evt.Action, evt.Severity).Inc()
	prometheus.GuardrailRiskScore.WithLabelValues("prompt").Observe(evt.PromptRiskScore)
	prometheus.GuardrailRiskScore.WithLabelValues("response").Observe(evt.ResponseRiskScore)
	if prometheus.Config.EnablePIITypes {
		for _, t := range evt.PIITypes {
			prometheus.GuardrailPIIDetections.WithLabelValues(t).Inc()
		}
	}
	if prometheus.Config.EnableLatency {
		prometheus.GuardrailCheckLatency.Observe(float64(evt.LatencyMs))
	}
}

func (m *worker) StartWorkers(n int) {
	m.logger.WithField("workers", n).Info("starting decision workers")
	for i := 0; i < n; i++ {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			for {
				select {
				case task := <-m.taskChan:
					task()
				case <-m.ctx.Done():
					return
				}
			}
		}()
	}
}

func (m *worker) enqueueTask(task func(), requestID string) {
	if m.closed.Load() {
		return
	}
	select {
	case m.taskChan <- task:
	default:
		m.logger.WithField("request_id", requestID).
			Warn("taskChan is full, dropping decision task")
	}
}
