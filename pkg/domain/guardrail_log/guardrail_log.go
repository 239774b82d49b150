package guardrail_log

import (
	"errors"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/database/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewDecision string

const (
	ReviewApproved ReviewDecision = "approved"
	ReviewRejected ReviewDecision = "rejected"
	ReviewModified ReviewDecision = "modified"
)

func ReviewDecisionFromString(value string) (ReviewDecision, error) {
	switch ReviewDecision(value) {
	case ReviewApproved, ReviewRejected, ReviewModified:
		return ReviewDecision(value), nil
	default:
		return "", ErrInvalidReviewDecision
	}
}

var (
	ErrInvalidReviewDecision = errors.New("invalid review decision: must be 'approved', 'rejected' or 'modified'")
	ErrReviewerRequired      = errors.New("reviewed_by is required")
	ErrAlreadyReviewed       = errors.New("guardrail log has already been reviewed")
)

// GuardrailLog is the persisted, sanitized trace of one guardrail check. The
// review columns are the only ones written after insert.
type GuardrailLog struct {
	ID                  uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	RequestID           string            `json:"request_id" gorm:"type:text;not null;index"`
	OrganizationID      *string           `json:"organization_id,omitempty" gorm:"type:text;index"`
	UserID              *string           `json:"user_id,omitempty" gorm:"type:text"`
	SanitizedPrompt     string            `json:"sanitized_prompt" gorm:"type:text;not null"`
	SanitizedResponse   *string           `json:"sanitized_response,omitempty" gorm:"type:text"`
	PromptRiskScore     float64           `json:"prompt_risk_score" gorm:"not null"`
	ResponseRiskScore   float64           `json:"response_risk_score" gorm:"not null"`
	Action              string            `json:"action" gorm:"type:text;not null"`
	Severity            string            `json:"severity" gorm:"type:text;not null;index"`
	Allowed             bool              `json:"allowed"`
	PIIDetected         bool              `json:"pii_detected"`
	PIITypes            types.StringArray `json:"pii_types" gorm:"type:text[]"`
	ContentCategories   types.StringArray `json:"content_categories" gorm:"type:text[]"`
	ModerationFlags     domain.ScoresJSON `json:"moderation_flags" gorm:"type:jsonb"`
	RequiresHumanReview bool              `json:"requires_human_review" gorm:"index"`
	ReviewedBy          *string           `json:"reviewed_by,omitempty" gorm:"type:text"`
	ReviewDecision      *ReviewDecision   `json:"review_decision,omitempty" gorm:"type:text"`
	ReviewNotes         *string           `json:"review_notes,omitempty" gorm:"type:text"`
	ReviewedAt          *time.Time        `json:"reviewed_at,omitempty"`
	ModelProvider       string            `json:"model_provider" gorm:"type:text"`
	ModelName           string            `json:"model_name" gorm:"type:text"`
	ProcessingTimeMs    int64             `json:"processing_time_ms"`
	CreatedAt           time.Time         `json:"created_at"`
}

// Review is a human decision about a past automated decision.
type Review struct {
	ReviewedBy string
	Decision   ReviewDecision
	Notes      *string
	ReviewedAt time.Time
}

func (r Review) Validate() error {
	if r.ReviewedBy == "" {
		return ErrReviewerRequired
	}
	if _, err := ReviewDecisionFromString(string(r.Decision)); err != nil {
		return err
	}
	return nil
}

func (l *GuardrailLog) IsReviewed() bool {
	return l.ReviewedAt != nil
}

func (l *GuardrailLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	if l.PIITypes == nil {
		l.PIITypes = types.StringArray{}
	}
	if l.ContentCategories == nil {
		l.ContentCategories = types.StringArray{}
	}
	return nil
}

func (l *GuardrailLog) TableName() string {
	return "guardrail_logs"
}
