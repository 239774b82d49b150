package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/guardrail_log"
	"github.com/NeuralTrust/TrustGuard/pkg/guardrails"
	"github.com/sirupsen/logrus"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var (
	ErrInvalidSeverity   = errors.New("invalid severity: must be 'low', 'medium', 'high' or 'critical'")
	ErrInvalidPagination = errors.New("invalid pagination: offset must be >= 0 and limit between 1 and 100")
)

// Query filters the pending review queue. Nil pointers take the queue
// defaults: only records that require review and have not been reviewed yet.
type Query struct {
	Severity            *string
	RequiresHumanReview *bool
	OnlyUnreviewed      *bool
	Offset              int
	Limit               int
}

type Page struct {
	Items  []guardrail_log.GuardrailLog `json:"items"`
	Total  int64                        `json:"total"`
	Offset int                          `json:"offset"`
	Limit  int                          `json:"limit"`
}

//go:generate mockery --name=Lister --dir=. --output=./mocks --filename=review_lister_mock.go --case=underscore
type Lister interface {
	ListPending(ctx context.Context, organizationID string, query Query) (*Page, error)
}

type lister struct {
	logger *logrus.Logger
	repo   guardrail_log.Repository
}

func NewLister(logger *logrus.Logger, repo guardrail_log.Repository) Lister {
	return &lister{
		logger: logger,
		repo:   repo,
	}
}

func (l *lister) ListPending(ctx context.Context, organizationID string, query Query) (*Page, error) {
	filter, err := query.toFilter(organizationID)
	if err != nil {
		return nil, err
	}

	items, total, err := l.repo.ListPending(ctx, filter)
	if err != nil {
		l.logger.WithError(err).WithField("organization_id", organizationID).
			Error("failed to list pending reviews")
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}

	return &Page{
		Items:  items,
		Total:  total,
		Offset: filter.Offset,
		Limit:  filter.Limit,
	}, nil
}

func (q Query) toFilter(organizationID string) (guardrail_log.PendingFilter, error) {
	limit := q.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if q.Offset < 0 || limit < 1 || limit > MaxLimit {
		return guardrail_log.PendingFilter{}, ErrInvalidPagination
	}

	if q.Severity != nil {
		switch guardrails.Severity(*q.Severity) {
		case guardrails.SeverityLow, guardrails.SeverityMedium, guardrails.SeverityHigh, guardrails.SeverityCritical:
		default:
			return guardrail_log.PendingFilter{}, ErrInvalidSeverity
		}
	}

	requiresReview := true
	if q.RequiresHumanReview != nil {
		requiresReview = *q.RequiresHumanReview
	}
	onlyUnreviewed := true
	if q.OnlyUnreviewed != nil {
		onlyUnreviewed = *q.OnlyUnreviewed
	}

	return guardrail_log.PendingFilter{
		OrganizationID:      organizationID,
		Severity:            q.Severity,
		RequiresHumanReview: &requiresReview,
		OnlyUnreviewed:      onlyUnreviewed,
		Offset:              q.Offset,
		Limit:               limit,
	}, nil
}
