package telemetry

import "time"

// DecisionEvent is the exported view of a guardrail decision. It has no prompt
// or response text, sanitized or otherwise.
type DecisionEvent struct {
	LogID               string             `json:"log_id,omitempty"`
	RequestID           string             `json:"request_id"`
	OrganizationID      string             `json:"organization_id,omitempty"`
	UserID              string             `json:"user_id,omitempty"`
	ModelProvider       string             `json:"model_provider"`
	ModelName           string             `json:"model_name"`
	Action              string             `json:"action"`
	Severity            string             `json:"severity"`
	Allowed             bool               `json:"allowed"`
	PromptRiskScore     float64            `json:"prompt_risk_score"`
	ResponseRiskScore   float64            `json:"response_risk_score"`
	PIIDetected         bool               `json:"pii_detected"`
	PIITypes            []string           `json:"pii_types"`
	ContentCategories   []string           `json:"content_categories"`
	ModerationFlags     map[string]float64 `json:"moderation_flags"`
	RequiresHumanReview bool               `json:"requires_human_review"`
	FailedSecure        bool               `json:"failed_secure"`
	LatencyMs           int64              `json:"latency_ms"`
	Timestamp           time.Time          `json:"timestamp"`
}
