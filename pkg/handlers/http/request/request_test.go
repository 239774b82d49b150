package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckRequest_GuardrailContext(t *testing.T) {
	req := CheckRequest{
		RequestID:      "req-1",
		UserID:         "user-1",
		OrganizationID: "org-1",
		ModelProvider:  "openai",
		ModelName:      "gpt-4o",
	}

	gc := req.GuardrailContext("10.0.0.1")

	assert.Equal(t, "req-1", gc.RequestID)
	assert.Equal(t, "org-1", gc.OrganizationID)
	assert.Equal(t, "openai", gc.ModelProvider)
	assert.Equal(t, "10.0.0.1", gc.IPAddress)
	assert.NoError(t, gc.Validate())
}

func TestSubmitReviewRequest_Validate(t *testing.T) {
	assert.Error(t, (&SubmitReviewRequest{}).Validate())
	assert.Error(t, (&SubmitReviewRequest{Decision: "  "}).Validate())
	assert.NoError(t, (&SubmitReviewRequest{Decision: "approved"}).Validate())
}
