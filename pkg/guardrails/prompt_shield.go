package guardrails

import "strings"

const (
	FactorPromptInjection = "prompt_injection"
	FactorInjectionPrefix = "injection_attempt_"
	FactorSensitivePrefix = "sensitive_"
	FactorCodeBlock       = "code_block_detected"
	FactorPotentialXSS    = "potential_xss"
	FactorHTMLTags        = "html_tags_detected"
)

// ShieldResult is the Prompt Shield verdict for a single prompt.
type ShieldResult struct {
	Blocked     bool     `json:"blocked"`
	RiskFactors []string `json:"risk_factors"`
}

type promptShield struct {
	highRisk     []string
	moderateRisk []string
}

func newPromptShield(cfg Config) *promptShield {
	return &promptShield{
		highRisk:     lowerKeywords(cfg.HighRiskKeywords),
		moderateRisk: lowerKeywords(cfg.ModerateRiskKeywords),
	}
}

func (s *promptShield) Shield(prompt string) ShieldResult {
	lower := strings.ToLower(prompt)
	factors := make([]string, 0)
	blocked := false

	for _, keyword := range s.highRisk {
		if strings.Contains(lower, keyword) {
			factors = append(factors, FactorInjectionPrefix+keyword)
			blocked = true
		}
	}

	// paraphrased attempts that miss every exact keyword still land here
	if strings.Contains(lower, "ignore") &&
		(strings.Contains(lower, "instructions") || strings.Contains(lower, "prompts")) {
		factors = append(factors, FactorPromptInjection)
	}

	for _, keyword := range s.moderateRisk {
		if strings.Contains(lower, keyword) {
			factors = append(factors, FactorSensitivePrefix+keyword)
		}
	}

	for _, marker := range codeBlockMarkers {
		if strings.Contains(prompt, marker) {
			factors = append(factors, FactorCodeBlock)
			break
		}
	}

	if htmlTagPattern.MatchString(prompt) {
		if containsAny(lower, xssTokens) {
			factors = append(factors, FactorPotentialXSS)
		} else {
			factors = append(factors, FactorHTMLTags)
		}
	}

	return ShieldResult{Blocked: blocked, RiskFactors: factors}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func countWithPrefix(factors []string, prefix string) int {
	n := 0
	for _, f := range factors {
		if strings.HasPrefix(f, prefix) {
			n++
		}
	}
	return n
}

func hasFactor(factors []string, name string) bool {
	for _, f := range factors {
		if f == name {
			return true
		}
	}
	return false
}
