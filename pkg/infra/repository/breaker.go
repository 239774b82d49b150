package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain"
	"github.com/NeuralTrust/TrustGuard/pkg/domain/guardrail_log"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

type BreakerConfig struct {
	Name        string
	Timeout     time.Duration
	MaxFailures uint32
}

// guardedGuardrailLogRepository trips after consecutive store failures so
// that checks fail closed immediately instead of queueing on a dead database.
// Reads are not guarded.
type guardedGuardrailLogRepository struct {
	guardrail_log.Repository
	breaker *gobreaker.CircuitBreaker
}

func NewGuardedGuardrailLogRepository(
	logger *logrus.Logger,
	repo guardrail_log.Repository,
	cfg BreakerConfig,
) guardrail_log.Repository {
	if cfg.Name == "" {
		cfg.Name = "guardrail-log-store"
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 5,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("audit store circuit breaker changed state")
		},
	}
	return &guardedGuardrailLogRepository{
		Repository: repo,
		breaker:    gobreaker.NewCircuitBreaker(settings),
	}
}

func (r *guardedGuardrailLogRepository) Save(ctx context.Context, log *guardrail_log.GuardrailLog) error {
	return r.execute(func() error {
		return r.Repository.Save(ctx, log)
	})
}

func (r *guardedGuardrailLogRepository) UpdateReview(ctx context.Context, id uuid.UUID, review guardrail_log.Review) error {
	// Business outcomes (not found, already reviewed) must not trip the breaker.
	var outcome error
	err := r.execute(func() error {
		outcome = r.Repository.UpdateReview(ctx, id, review)
		if isStoreFailure(outcome) {
			return outcome
		}
		return nil
	})
	if err != nil {
		return err
	}
	return outcome
}

func (r *guardedGuardrailLogRepository) execute(fn func() error) error {
	_, err := r.breaker.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if err != nil {
		return fmt.Errorf("breaker (%s): %w", r.breaker.Name(), err)
	}
	return nil
}

func isStoreFailure(err error) bool {
	if err == nil {
		return false
	}
	return !domain.IsNotFoundError(err) && !errors.Is(err, guardrail_log.ErrAlreadyReviewed)
}
