package guardrail_log

import (
	"context"

	"github.com/google/uuid"
)

// PendingFilter narrows the review queue. Nil pointers mean "any".
type PendingFilter struct {
	OrganizationID      string
	Severity            *string
	RequiresHumanReview *bool
	OnlyUnreviewed      bool
	Offset              int
	Limit               int
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=guardrail_log_repository_mock.go --case=underscore
type Repository interface {
	Save(ctx context.Context, log *GuardrailLog) error
	Get(ctx context.Context, id uuid.UUID) (*GuardrailLog, error)
	ListPending(ctx context.Context, filter PendingFilter) ([]GuardrailLog, int64, error)
	UpdateReview(ctx context.Context, id uuid.UUID, review Review) error
}
