package guardrails

import (
	"regexp"
	"strings"
)

const (
	PIIEmail      = "email"
	PIISSN        = "ssn"
	PIICreditCard = "credit_card"
	PIIPhone      = "phone"
	PIIIPAddress  = "ip_address"
)

// Order matters: redaction runs top to bottom so the output is stable for a given input.
func defaultPIIPatterns() []PatternRule {
	return []PatternRule{
		{Name: PIIEmail, Pattern: `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`},
		{Name: PIISSN, Pattern: `\b\d{3}-\d{2}-\d{4}\b`},
		{Name: PIICreditCard, Pattern: `\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`},
		{Name: PIIPhone, Pattern: `(?:\+?1[\s.-]?)?\(?\b\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}\b`},
		{Name: PIIIPAddress, Pattern: `\b(?:\d{1,3}\.){3}\d{1,3}\b`},
	}
}

func defaultHarmfulPatterns() []PatternRule {
	return []PatternRule{
		{Name: "secret_disclosure", Pattern: `(?i)(password|secret|token|api[\s_-]?key)\s*[:=]`, Score: 1},
		{Name: "violent_action", Pattern: `(?i)\b(kill|harm|hurt|attack)\b`, Score: 1},
		{Name: "discrimination", Pattern: `(?i)discriminat`, Score: 3},
	}
}

func defaultModerationCategories() []ModerationCategory {
	return []ModerationCategory{
		{Name: FlagHate, Keywords: []string{"hate", "racist", "bigot", "supremacy", "slur"}},
		{Name: FlagHarassment, Keywords: []string{"idiot", "stupid", "loser", "worthless", "shut up"}},
		{Name: FlagViolence, Keywords: []string{"kill", "attack", "hurt", "weapon", "bomb"}},
		{Name: FlagSexual, Keywords: []string{"sexual", "explicit", "nude", "porn"}},
		{Name: FlagSelfHarm, Keywords: []string{"suicide", "self-harm", "self harm", "kill myself", "end my life"}},
	}
}

var (
	htmlTagPattern    = regexp.MustCompile(`<[^<>]*>`)
	xssTokens         = []string{"onerror", "onclick", "onload", "alert("}
	codeBlockMarkers  = []string{"```", "---"}
	responseCodeFence = "```"
)

type compiledRule struct {
	name        string
	placeholder string
	score       float64
	re          *regexp.Regexp
}

// compileRules compiles a rule table once at engine construction. *regexp.Regexp keeps
// no match position between calls, so a compiled table is safe to share between
// concurrent checks.
func compileRules(rules []PatternRule) ([]compiledRule, error) {
	out := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, err
		}
		out = append(out, compiledRule{
			name:        r.Name,
			placeholder: "[REDACTED_" + strings.ToUpper(r.Name) + "]",
			score:       r.Score,
			re:          re,
		})
	}
	return out, nil
}

func lowerKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, strings.ToLower(k))
	}
	return out
}
