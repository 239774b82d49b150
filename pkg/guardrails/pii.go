package guardrails

// PIIResult lists the PII categories found in a text and a redacted copy of it.
type PIIResult struct {
	Detected  bool     `json:"detected"`
	Types     []string `json:"types"`
	Sanitized string   `json:"sanitized"`
}

type piiRedactor struct {
	rules []compiledRule
}

func newPIIRedactor(rules []compiledRule) *piiRedactor {
	return &piiRedactor{rules: rules}
}

// Redact checks every category independently and replaces all of its matches with
// the category placeholder. Categories run in table order, so an earlier category
// consumes text before a later one can see it.
func (r *piiRedactor) Redact(text string) PIIResult {
	result := PIIResult{Types: make([]string, 0), Sanitized: text}
	for _, rule := range r.rules {
		if !rule.re.MatchString(result.Sanitized) {
			continue
		}
		result.Detected = true
		result.Types = append(result.Types, rule.name)
		result.Sanitized = rule.re.ReplaceAllLiteralString(result.Sanitized, rule.placeholder)
	}
	return result
}
