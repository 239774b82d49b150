package guardrail

import (
	"context"
	"fmt"
	"strings"

	"github.com/NeuralTrust/TrustGuard/pkg/domain"
	"github.com/NeuralTrust/TrustGuard/pkg/domain/guardrail_log"
	"github.com/NeuralTrust/TrustGuard/pkg/guardrails"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/database/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type auditLogger struct {
	logger *logrus.Logger
	repo   guardrail_log.Repository
}

// NewAuditLogger returns the engine's audit sink backed by the guardrail log
// store. Every write is an insert; nothing is ever buffered.
func NewAuditLogger(logger *logrus.Logger, repo guardrail_log.Repository) guardrails.AuditSink {
	return &auditLogger{
		logger: logger,
		repo:   repo,
	}
}

func (a *auditLogger) Record(ctx context.Context, record *guardrails.AuditRecord) (string, error) {
	entry := toGuardrailLog(record)
	if err := a.repo.Save(ctx, entry); err != nil {
		a.logger.WithError(err).WithField("request_id", record.Context.RequestID).
			Error("failed to save guardrail log")
		return "", fmt.Errorf("failed to save guardrail log: %w", err)
	}
	return entry.ID.String(), nil
}

func toGuardrailLog(record *guardrails.AuditRecord) *guardrail_log.GuardrailLog {
	flags := make(domain.ScoresJSON, len(record.ModerationFlags))
	for name, v := range record.ModerationFlags {
		flags[name] = v
	}
	return &guardrail_log.GuardrailLog{
		ID:                  uuid.New(),
		RequestID:           record.Context.RequestID,
		OrganizationID:      optional(record.Context.OrganizationID),
		UserID:              optional(record.Context.UserID),
		SanitizedPrompt:     record.SanitizedPrompt,
		SanitizedResponse:   record.SanitizedResponse,
		PromptRiskScore:     record.PromptRiskScore,
		ResponseRiskScore:   record.ResponseRiskScore,
		Action:              string(record.Action),
		Severity:            string(record.Severity),
		Allowed:             record.Allowed,
		PIIDetected:         record.PIIDetected,
		PIITypes:            append(types.StringArray{}, record.PIITypes...),
		ContentCategories:   append(types.StringArray{}, record.ContentCategories...),
		ModerationFlags:     flags,
		RequiresHumanReview: record.RequiresHumanReview,
		ModelProvider:       record.Context.ModelProvider,
		ModelName:           record.Context.ModelName,
		ProcessingTimeMs:    record.ProcessingTime.Milliseconds(),
	}
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
