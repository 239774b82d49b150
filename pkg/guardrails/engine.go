package guardrails

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Engine runs the guardrail pipeline. It holds no per-call state and is safe for
// concurrent use.
type Engine struct {
	logger     *logrus.Logger
	cfg        Config
	shield     *promptShield
	pii        *piiRedactor
	scorer     *riskScorer
	arbiter    *arbiter
	moderation *moderationEstimator
	sink       AuditSink
}

func NewEngine(logger *logrus.Logger, cfg Config, sink AuditSink) (*Engine, error) {
	if sink == nil {
		return nil, ErrNilAuditSink
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.clone()

	piiRules, err := compileRules(cfg.PIIPatterns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	harmfulRules, err := compileRules(cfg.HarmfulPatterns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	pii := newPIIRedactor(piiRules)
	return &Engine{
		logger:     logger,
		cfg:        cfg,
		shield:     newPromptShield(cfg),
		pii:        pii,
		scorer:     newRiskScorer(cfg.Thresholds, pii, harmfulRules),
		arbiter:    newArbiter(cfg.Thresholds),
		moderation: newModerationEstimator(cfg),
		sink:       sink,
	}, nil
}

// Check analyses a prompt and, when given, the model response, then persists the
// sanitized decision. A missing request id is the only error returned; any other
// failure, including a failed audit write, yields the fail-secure result.
func (e *Engine) Check(
	ctx context.Context,
	prompt string,
	response *string,
	gc Context,
) (result *CheckResult, err error) {
	if err := gc.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			e.logger.WithFields(logrus.Fields{
				"request_id": gc.RequestID,
				"panic":      r,
			}).Error("guardrail check panicked, failing secure")
			result, err = FailSecureResult(), nil
		}
	}()

	res := e.Analyze(prompt, response)

	logID, recErr := e.sink.Record(ctx, &AuditRecord{
		Context:             gc,
		SanitizedPrompt:     res.SanitizedPrompt,
		SanitizedResponse:   res.SanitizedResponse,
		PromptRiskScore:     res.PromptRiskScore,
		ResponseRiskScore:   res.ResponseRiskScore,
		Action:              res.Action,
		Severity:            res.Severity,
		Allowed:             res.Allowed,
		PIIDetected:         res.PIIDetected,
		PIITypes:            res.PIITypes,
		ContentCategories:   res.ContentCategories,
		ModerationFlags:     res.ModerationFlags,
		RequiresHumanReview: res.RequiresHumanReview,
		ProcessingTime:      time.Since(start),
	})
	if recErr != nil {
		e.logger.WithError(recErr).WithField("request_id", gc.RequestID).
			Error("failed to persist guardrail log, failing secure")
		return FailSecureResult(), nil
	}

	res.LogID = logID
	return res, nil
}

// Analyze is the pure part of Check: no persistence, no clock.
func (e *Engine) Analyze(prompt string, response *string) *CheckResult {
	shield := e.shield.Shield(prompt)
	promptPII := e.pii.Redact(prompt)
	promptScore := e.scorer.ScorePrompt(prompt, shield)

	categories := append(make([]string, 0, len(shield.RiskFactors)+4), shield.RiskFactors...)
	if promptPII.Detected {
		categories = append(categories, CategoryContainsPII)
	}

	piiDetected := promptPII.Detected
	piiTypes := promptPII.Types
	responseScore := 0.0
	responseText := ""
	var sanitizedResponse *string

	if response != nil {
		responseText = *response
		analysis := e.scorer.AnalyzeResponse(responseText)
		responseScore = analysis.RiskScore
		sanitized := analysis.SanitizedResponse
		sanitizedResponse = &sanitized
		categories = append(categories, analysis.ContentCategories...)
		piiDetected = piiDetected || analysis.PII.Detected
		piiTypes = e.mergePIITypes(piiTypes, analysis.PII.Types)
	}

	decision := e.arbiter.Decide(promptScore, responseScore, piiDetected)

	return &CheckResult{
		Allowed:             decision.Allowed,
		Action:              decision.Action,
		Severity:            decision.Severity,
		SanitizedPrompt:     promptPII.Sanitized,
		SanitizedResponse:   sanitizedResponse,
		PIIDetected:         piiDetected,
		PIITypes:            piiTypes,
		PromptRiskScore:     promptScore,
		ResponseRiskScore:   responseScore,
		RequiresHumanReview: decision.RequiresHumanReview,
		ContentCategories:   categories,
		ModerationFlags:     e.moderation.Estimate(prompt, responseText, piiDetected),
	}
}

// ShieldPrompt exposes the Prompt Shield on its own.
func (e *Engine) ShieldPrompt(prompt string) ShieldResult {
	return e.shield.Shield(prompt)
}

// RedactPII exposes the PII Detector/Redactor on its own.
func (e *Engine) RedactPII(text string) PIIResult {
	return e.pii.Redact(text)
}

// mergePIITypes returns the union of both lists in table order.
func (e *Engine) mergePIITypes(a, b []string) []string {
	present := make(map[string]struct{}, len(a)+len(b))
	for _, t := range a {
		present[t] = struct{}{}
	}
	for _, t := range b {
		present[t] = struct{}{}
	}
	out := make([]string, 0, len(present))
	for _, rule := range e.cfg.PIIPatterns {
		if _, ok := present[rule.Name]; ok {
			out = append(out, rule.Name)
		}
	}
	return out
}

// FailSecureResult is returned whenever the pipeline cannot finish.
func FailSecureResult() *CheckResult {
	return &CheckResult{
		Allowed:             false,
		Action:              ActionBlocked,
		Severity:            SeverityCritical,
		PIITypes:            []string{},
		PromptRiskScore:     10,
		ResponseRiskScore:   0,
		RequiresHumanReview: true,
		ContentCategories:   []string{},
		ModerationFlags:     ModerationFlags{},
	}
}
