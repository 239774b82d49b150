package guardrails

import (
	"math"
	"strings"
)

const (
	FlagHate       = "hate"
	FlagHarassment = "harassment"
	FlagViolence   = "violence"
	FlagSexual     = "sexual"
	FlagSelfHarm   = "self_harm"
	FlagPII        = "pii"
)

// ModerationFlags maps a moderation category to a probability in [0,1]. The flags
// are informational and never feed the action decision.
type ModerationFlags map[string]float64

type moderationEstimator struct {
	categories []ModerationCategory
	perHit     float64
}

func newModerationEstimator(cfg Config) *moderationEstimator {
	categories := make([]ModerationCategory, 0, len(cfg.ModerationCategories))
	for _, c := range cfg.ModerationCategories {
		categories = append(categories, ModerationCategory{Name: c.Name, Keywords: lowerKeywords(c.Keywords)})
	}
	return &moderationEstimator{categories: categories, perHit: cfg.Thresholds.ModerationPerHit}
}

func (m *moderationEstimator) Estimate(prompt, response string, piiDetected bool) ModerationFlags {
	text := strings.ToLower(prompt + "\n" + response)
	flags := make(ModerationFlags, len(m.categories)+1)
	for _, c := range m.categories {
		hits := 0
		for _, k := range c.Keywords {
			if strings.Contains(text, k) {
				hits++
			}
		}
		flags[c.Name] = math.Min(1, m.perHit*float64(hits))
	}
	flags[FlagPII] = 0
	if piiDetected {
		flags[FlagPII] = 1
	}
	return flags
}
