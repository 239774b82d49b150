package request

import "github.com/NeuralTrust/TrustGuard/pkg/guardrails"

type CheckRequest struct {
	Prompt         string  `json:"prompt"`
	Response       *string `json:"response,omitempty"`
	RequestID      string  `json:"request_id"`
	UserID         string  `json:"user_id,omitempty"`
	OrganizationID string  `json:"organization_id,omitempty"`
	ModelProvider  string  `json:"model_provider"`
	ModelName      string  `json:"model_name"`
}

// GuardrailContext builds the caller context. The request id is left as sent
// so the engine can reject a missing one.
func (r *CheckRequest) GuardrailContext(ipAddress string) guardrails.Context {
	return guardrails.Context{
		RequestID:      r.RequestID,
		UserID:         r.UserID,
		OrganizationID: r.OrganizationID,
		ModelProvider:  r.ModelProvider,
		ModelName:      r.ModelName,
		IPAddress:      ipAddress,
	}
}
