package guardrails

import (
	"strings"
	"unicode/utf8"
)

const (
	CategoryContainsPII        = "contains_pii"
	CategoryContainsCode       = "contains_code"
	CategoryPotentiallyHarmful = "potentially_harmful"
)

// ResponseAnalysis is the response-side counterpart of the prompt scorer.
type ResponseAnalysis struct {
	RiskScore         float64   `json:"risk_score"`
	SanitizedResponse string    `json:"sanitized_response"`
	ContentCategories []string  `json:"content_categories"`
	PII               PIIResult `json:"pii"`
}

type riskScorer struct {
	thresholds Thresholds
	pii        *piiRedactor
	harmful    []compiledRule
}

func newRiskScorer(t Thresholds, pii *piiRedactor, harmful []compiledRule) *riskScorer {
	return &riskScorer{thresholds: t, pii: pii, harmful: harmful}
}

// ScorePrompt adds up the shield signals; independent signals compound.
func (s *riskScorer) ScorePrompt(prompt string, shield ShieldResult) float64 {
	t := s.thresholds
	score := 0.0
	if hasFactor(shield.RiskFactors, FactorPromptInjection) {
		score += t.InjectionWeight
	}
	score += t.InjectionHitScore * float64(countWithPrefix(shield.RiskFactors, FactorInjectionPrefix))
	if shield.Blocked {
		score += t.BlockedBonus
	}
	score += t.SensitiveHitScore * float64(countWithPrefix(shield.RiskFactors, FactorSensitivePrefix))
	if utf8.RuneCountInString(prompt) > t.LongPromptChars {
		score += t.LongPromptScore
	}
	return s.clamp(score)
}

func (s *riskScorer) AnalyzeResponse(response string) ResponseAnalysis {
	analysis := ResponseAnalysis{ContentCategories: make([]string, 0)}
	score := 0.0

	analysis.PII = s.pii.Redact(response)
	analysis.SanitizedResponse = analysis.PII.Sanitized
	if analysis.PII.Detected {
		analysis.ContentCategories = append(analysis.ContentCategories, CategoryContainsPII)
		score += s.thresholds.ResponsePIIScore
	}

	if strings.Contains(response, responseCodeFence) {
		analysis.ContentCategories = append(analysis.ContentCategories, CategoryContainsCode)
	}

	// every matching rule scores; the category tag is added once
	harmful := false
	for _, rule := range s.harmful {
		if rule.re.MatchString(response) {
			score += rule.score
			harmful = true
		}
	}
	if harmful {
		analysis.ContentCategories = append(analysis.ContentCategories, CategoryPotentiallyHarmful)
	}

	analysis.RiskScore = s.clamp(score)
	return analysis
}

func (s *riskScorer) clamp(score float64) float64 {
	if score > s.thresholds.MaxScore {
		return s.thresholds.MaxScore
	}
	if score < 0 {
		return 0
	}
	return score
}
