package guardrail

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/guardrail_log"
	"github.com/NeuralTrust/TrustGuard/pkg/domain/guardrail_log/mocks"
	"github.com/NeuralTrust/TrustGuard/pkg/guardrails"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func TestAuditLogger_Record(t *testing.T) {
	repo := mocks.NewRepository(t)
	sink := NewAuditLogger(newTestLogger(), repo)

	var saved *guardrail_log.GuardrailLog
	repo.On("Save", mock.Anything, mock.AnythingOfType("*guardrail_log.GuardrailLog")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*guardrail_log.GuardrailLog)
		}).
		Return(nil).Once()

	response := "Contact [REDACTED_EMAIL]"
	id, err := sink.Record(context.Background(), &guardrails.AuditRecord{
		Context: guardrails.Context{
			RequestID:      "req-1",
			OrganizationID: "org-1",
			ModelProvider:  "openai",
			ModelName:      "gpt-4o",
		},
		SanitizedPrompt:   "my mail is [REDACTED_EMAIL]",
		SanitizedResponse: &response,
		PromptRiskScore:   0,
		Action:            guardrails.ActionRedacted,
		Severity:          guardrails.SeverityLow,
		Allowed:           true,
		PIIDetected:       true,
		PIITypes:          []string{guardrails.PIIEmail},
		ContentCategories: []string{guardrails.CategoryContainsPII},
		ModerationFlags:   guardrails.ModerationFlags{guardrails.FlagPII: 1},
		ProcessingTime:    12 * time.Millisecond,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, saved.ID.String(), id)
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)

	assert.Equal(t, "req-1", saved.RequestID)
	require.NotNil(t, saved.OrganizationID)
	assert.Equal(t, "org-1", *saved.OrganizationID)
	assert.Nil(t, saved.UserID)
	assert.Equal(t, "my mail is [REDACTED_EMAIL]", saved.SanitizedPrompt)
	assert.Equal(t, &response, saved.SanitizedResponse)
	assert.Equal(t, "redacted", saved.Action)
	assert.Equal(t, "low", saved.Severity)
	assert.Equal(t, []string{"email"}, []string(saved.PIITypes))
	assert.Equal(t, 1.0, saved.ModerationFlags["pii"])
	assert.Equal(t, int64(12), saved.ProcessingTimeMs)
	assert.Nil(t, saved.ReviewedAt)
}

func TestAuditLogger_RecordError(t *testing.T) {
	repo := mocks.NewRepository(t)
	sink := NewAuditLogger(newTestLogger(), repo)
	dbErr := errors.New("connection refused")
	repo.On("Save", mock.Anything, mock.Anything).Return(dbErr).Once()

	id, err := sink.Record(context.Background(), &guardrails.AuditRecord{
		Context: guardrails.Context{RequestID: "req-1"},
	})

	assert.Empty(t, id)
	assert.ErrorIs(t, err, dbErr)
}

func TestAuditLogger_SavedLogHoldsNoDetectedPII(t *testing.T) {
	repo := mocks.NewRepository(t)
	engine, err := guardrails.NewEngine(newTestLogger(), guardrails.DefaultConfig(), NewAuditLogger(newTestLogger(), repo))
	require.NoError(t, err)

	var saved *guardrail_log.GuardrailLog
	repo.On("Save", mock.Anything, mock.AnythingOfType("*guardrail_log.GuardrailLog")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*guardrail_log.GuardrailLog)
		}).
		Return(nil).Once()

	response := "I will write to jane.doe@example.com from 10.1.2.3"
	res, err := engine.Check(
		context.Background(),
		"my ip is 10.1.2.3 and my mail is jane.doe@example.com",
		&response,
		guardrails.Context{
			RequestID:     "req-pii",
			ModelProvider: "openai",
			ModelName:     "gpt-4o",
			IPAddress:     "10.1.2.3",
		},
	)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, saved.ID.String(), res.LogID)
	assert.ElementsMatch(t, []string{guardrails.PIIEmail, guardrails.PIIIPAddress}, []string(saved.PIITypes))

	row, err := json.Marshal(saved)
	require.NoError(t, err)
	for _, raw := range []string{"10.1.2.3", "jane.doe@example.com"} {
		assert.NotContains(t, string(row), raw)
	}
	assert.Contains(t, saved.SanitizedPrompt, "[REDACTED_IP_ADDRESS]")
	require.NotNil(t, saved.SanitizedResponse)
	assert.Contains(t, *saved.SanitizedResponse, "[REDACTED_EMAIL]")
}
