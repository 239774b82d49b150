package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain"
	"github.com/NeuralTrust/TrustGuard/pkg/domain/guardrail_log"
	infraCache "github.com/NeuralTrust/TrustGuard/pkg/infra/cache"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/prometheus"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Submitter --dir=. --output=./mocks --filename=review_submitter_mock.go --case=underscore
type Submitter interface {
	Submit(
		ctx context.Context,
		logID uuid.UUID,
		reviewedBy string,
		decision string,
		notes *string,
	) (*guardrail_log.GuardrailLog, error)
}

type submitter struct {
	logger    *logrus.Logger
	repo      guardrail_log.Repository
	publisher infraCache.EventPublisher
	now       func() time.Time
}

func NewSubmitter(
	logger *logrus.Logger,
	repo guardrail_log.Repository,
	publisher infraCache.EventPublisher,
) Submitter {
	return &submitter{
		logger:    logger,
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Submit records a reviewer's decision on an existing log. Scores and the
// automated action are never touched.
func (s *submitter) Submit(
	ctx context.Context,
	logID uuid.UUID,
	reviewedBy string,
	decision string,
	notes *string,
) (*guardrail_log.GuardrailLog, error) {
	parsed, err := guardrail_log.ReviewDecisionFromString(strings.ToLower(strings.TrimSpace(decision)))
	if err != nil {
		return nil, err
	}
	if notes != nil && strings.TrimSpace(*notes) == "" {
		notes = nil
	}

	review := guardrail_log.Review{
		ReviewedBy: strings.TrimSpace(reviewedBy),
		Decision:   parsed,
		Notes:      notes,
		ReviewedAt: s.now().UTC(),
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateReview(ctx, logID, review); err != nil {
		if domain.IsNotFoundError(err) || errors.Is(err, guardrail_log.ErrAlreadyReviewed) {
			return nil, err
		}
		s.logger.WithError(err).WithField("log_id", logID.String()).Error("failed to submit review")
		return nil, fmt.Errorf("failed to submit review: %w", err)
	}

	prometheus.GuardrailReviewsTotal.WithLabelValues(string(parsed)).Inc()

	if err := s.publisher.Publish(ctx, event.ReviewSubmittedEvent{
		LogID:      logID.String(),
		ReviewedBy: review.ReviewedBy,
		Decision:   string(review.Decision),
		ReviewedAt: review.ReviewedAt.Format(time.RFC3339),
	}); err != nil {
		s.logger.WithError(err).WithField("log_id", logID.String()).
			Error("failed to publish review submitted event")
	}

	updated, err := s.repo.Get(ctx, logID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload reviewed log: %w", err)
	}
	return updated, nil
}
