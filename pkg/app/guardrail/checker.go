package guardrail

import (
	"context"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/telemetry"
	"github.com/NeuralTrust/TrustGuard/pkg/guardrails"
	infraCache "github.com/NeuralTrust/TrustGuard/pkg/infra/cache"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/metrics"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Checker --dir=. --output=./mocks --filename=guardrail_checker_mock.go --case=underscore
type Checker interface {
	Check(ctx context.Context, prompt string, response *string, gc guardrails.Context) (*guardrails.CheckResult, error)
}

type checker struct {
	logger    *logrus.Logger
	engine    *guardrails.Engine
	worker    metrics.Worker
	publisher infraCache.EventPublisher
	now       func() time.Time
}

func NewChecker(
	logger *logrus.Logger,
	engine *guardrails.Engine,
	worker metrics.Worker,
	publisher infraCache.EventPublisher,
) Checker {
	return &checker{
		logger:    logger,
		engine:    engine,
		worker:    worker,
		publisher: publisher,
		now:       time.Now,
	}
}

// Check runs the engine and then, once the decision is final, notifies the
// review queue and the decision exporters. Neither notification can change
// the returned result.
func (c *checker) Check(
	ctx context.Context,
	prompt string,
	response *string,
	gc guardrails.Context,
) (*guardrails.CheckResult, error) {
	start := c.now()
	res, err := c.engine.Check(ctx, prompt, response, gc)
	if err != nil {
		return nil, err
	}
	elapsed := c.now().Sub(start)

	logFields := logrus.Fields{
		"request_id": gc.RequestID,
		"action":     res.Action,
		"severity":   res.Severity,
		"log_id":     res.LogID,
	}
	if res.Allowed {
		c.logger.WithFields(logFields).Debug("guardrail check completed")
	} else {
		c.logger.WithFields(logFields).Info("guardrail check denied request")
	}

	c.worker.Process(toDecisionEvent(res, gc, elapsed, c.now()))

	if res.RequiresHumanReview && res.LogID != "" {
		if err := c.publisher.Publish(ctx, event.ReviewRequiredEvent{
			LogID:           res.LogID,
			RequestID:       gc.RequestID,
			OrganizationID:  gc.OrganizationID,
			Action:          string(res.Action),
			Severity:        string(res.Severity),
			PromptRiskScore: res.PromptRiskScore,
		}); err != nil {
			c.logger.WithError(err).WithField("log_id", res.LogID).
				Error("failed to publish review required event")
		}
	}

	return res, nil
}

func toDecisionEvent(
	res *guardrails.CheckResult,
	gc guardrails.Context,
	elapsed time.Duration,
	at time.Time,
) *telemetry.DecisionEvent {
	flags := make(map[string]float64, len(res.ModerationFlags))
	for name, v := range res.ModerationFlags {
		flags[name] = v
	}
	return &telemetry.DecisionEvent{
		LogID:               res.LogID,
		RequestID:           gc.RequestID,
		OrganizationID:      gc.OrganizationID,
		UserID:              gc.UserID,
		ModelProvider:       gc.ModelProvider,
		ModelName:           gc.ModelName,
		Action:              string(res.Action),
		Severity:            string(res.Severity),
		Allowed:             res.Allowed,
		PromptRiskScore:     res.PromptRiskScore,
		ResponseRiskScore:   res.ResponseRiskScore,
		PIIDetected:         res.PIIDetected,
		PIITypes:            append([]string{}, res.PIITypes...),
		ContentCategories:   append([]string{}, res.ContentCategories...),
		ModerationFlags:     flags,
		RequiresHumanReview: res.RequiresHumanReview,
		FailedSecure:        res.LogID == "",
		LatencyMs:           elapsed.Milliseconds(),
		Timestamp:           at.UTC(),
	}
}
