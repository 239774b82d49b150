package guardrails

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	// ErrMissingRequestID is returned before any analysis runs when the caller
	// context carries no request id.
	ErrMissingRequestID = errors.New("guardrail context: request_id is required")
	ErrNilAuditSink     = errors.New("guardrails: audit sink is required")
)

// Context identifies the caller of a check. It is read-only for the engine.
type Context struct {
	RequestID      string `json:"request_id"`
	UserID         string `json:"user_id,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`
	ModelProvider  string `json:"model_provider"`
	ModelName      string `json:"model_name"`
	IPAddress      string `json:"ip_address,omitempty"`
}

func (c Context) Validate() error {
	if strings.TrimSpace(c.RequestID) == "" {
		return ErrMissingRequestID
	}
	return nil
}

type CheckResult struct {
	Allowed             bool            `json:"allowed"`
	Action              Action          `json:"action"`
	Severity            Severity        `json:"severity"`
	SanitizedPrompt     string          `json:"sanitized_prompt"`
	SanitizedResponse   *string         `json:"sanitized_response,omitempty"`
	PIIDetected         bool            `json:"pii_detected"`
	PIITypes            []string        `json:"pii_types"`
	PromptRiskScore     float64         `json:"prompt_risk_score"`
	ResponseRiskScore   float64         `json:"response_risk_score"`
	RequiresHumanReview bool            `json:"requires_human_review"`
	ContentCategories   []string        `json:"content_categories"`
	ModerationFlags     ModerationFlags `json:"moderation_flags"`
	LogID               string          `json:"log_id,omitempty"`
}

// AuditRecord is everything the audit sink may persist for a check. It only ever
// carries sanitized text.
type AuditRecord struct {
	Context             Context
	SanitizedPrompt     string
	SanitizedResponse   *string
	PromptRiskScore     float64
	ResponseRiskScore   float64
	Action              Action
	Severity            Severity
	Allowed             bool
	PIIDetected         bool
	PIITypes            []string
	ContentCategories   []string
	ModerationFlags     ModerationFlags
	RequiresHumanReview bool
	ProcessingTime      time.Duration
}

type AuditSink interface {
	Record(ctx context.Context, record *AuditRecord) (string, error)
}
