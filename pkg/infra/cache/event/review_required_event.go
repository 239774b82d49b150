package event

// ReviewRequiredEvent is published when a check lands in the human review
// queue. It carries ids and scores only, never prompt text.
type ReviewRequiredEvent struct {
	LogID           string  `json:"log_id"`
	RequestID       string  `json:"request_id"`
	OrganizationID  string  `json:"organization_id,omitempty"`
	Action          string  `json:"action"`
	Severity        string  `json:"severity"`
	PromptRiskScore float64 `json:"prompt_risk_score"`
}

func (e ReviewRequiredEvent) Type() string {
	return ReviewRequiredEventType
}
