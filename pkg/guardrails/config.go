package guardrails

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidConfig = errors.New("invalid guardrails config")
)

// Thresholds holds every numeric boundary used by the scorers and the arbiter.
type Thresholds struct {
	MaxScore          float64 `mapstructure:"max_score"`
	Block             float64 `mapstructure:"block"`
	HumanReview       float64 `mapstructure:"human_review"`
	ElevatedBlock     float64 `mapstructure:"elevated_block"`
	Flag              float64 `mapstructure:"flag"`
	SeverityCritical  float64 `mapstructure:"severity_critical"`
	SeverityHigh      float64 `mapstructure:"severity_high"`
	SeverityMedium    float64 `mapstructure:"severity_medium"`
	LongPromptChars   int     `mapstructure:"long_prompt_chars"`
	ModerationPerHit  float64 `mapstructure:"moderation_per_hit"`
	InjectionWeight   float64 `mapstructure:"injection_weight"`
	InjectionHitScore float64 `mapstructure:"injection_hit_score"`
	BlockedBonus      float64 `mapstructure:"blocked_bonus"`
	SensitiveHitScore float64 `mapstructure:"sensitive_hit_score"`
	LongPromptScore   float64 `mapstructure:"long_prompt_score"`
	ResponsePIIScore  float64 `mapstructure:"response_pii_score"`
}

// PatternRule is a named regular expression with the score it contributes on a match.
type PatternRule struct {
	Name    string  `mapstructure:"name"`
	Pattern string  `mapstructure:"pattern"`
	Score   float64 `mapstructure:"score"`
}

// ModerationCategory is a moderation flag and the keywords that raise it.
type ModerationCategory struct {
	Name     string   `mapstructure:"name"`
	Keywords []string `mapstructure:"keywords"`
}

// Config is the immutable policy the Engine is built from. The engine keeps its
// own copy, so callers may reuse or mutate the value after NewEngine returns.
type Config struct {
	HighRiskKeywords     []string             `mapstructure:"high_risk_keywords"`
	ModerateRiskKeywords []string             `mapstructure:"moderate_risk_keywords"`
	PIIPatterns          []PatternRule        `mapstructure:"pii_patterns"`
	HarmfulPatterns      []PatternRule        `mapstructure:"harmful_patterns"`
	ModerationCategories []ModerationCategory `mapstructure:"moderation_categories"`
	Thresholds           Thresholds           `mapstructure:"thresholds"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxScore:          10,
		Block:             8.0,
		HumanReview:       8.5,
		ElevatedBlock:     7.0,
		Flag:              5.0,
		SeverityCritical:  8,
		SeverityHigh:      6,
		SeverityMedium:    4,
		LongPromptChars:   10000,
		ModerationPerHit:  0.3,
		InjectionWeight:   8,
		InjectionHitScore: 4,
		BlockedBonus:      4,
		SensitiveHitScore: 0.5,
		LongPromptScore:   1,
		ResponsePIIScore:  2,
	}
}

func DefaultConfig() Config {
	return Config{
		HighRiskKeywords: []string{
			"ignore previous instructions",
			"disregard",
			"new instructions",
			"jailbreak",
			"bypass",
			"developer mode",
		},
		ModerateRiskKeywords: []string{
			"confidential",
			"password",
			"api key",
		},
		PIIPatterns:          defaultPIIPatterns(),
		HarmfulPatterns:      defaultHarmfulPatterns(),
		ModerationCategories: defaultModerationCategories(),
		Thresholds:           DefaultThresholds(),
	}
}

// Validate checks that every table entry is usable.
func (c Config) Validate() error {
	if len(c.PIIPatterns) == 0 {
		return fmt.Errorf("%w: at least one pii pattern is required", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.PIIPatterns))
	for _, p := range c.PIIPatterns {
		if p.Name == "" {
			return fmt.Errorf("%w: pii pattern name cannot be empty", ErrInvalidConfig)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: duplicate pii pattern %s", ErrInvalidConfig, p.Name)
		}
		seen[p.Name] = struct{}{}
		if _, err := regexp.Compile(p.Pattern); err != nil {
			return fmt.Errorf("%w: pii pattern %s: %v", ErrInvalidConfig, p.Name, err)
		}
	}
	for _, p := range c.HarmfulPatterns {
		if _, err := regexp.Compile(p.Pattern); err != nil {
			return fmt.Errorf("%w: harmful pattern %s: %v", ErrInvalidConfig, p.Name, err)
		}
	}
	for _, k := range append(append([]string{}, c.HighRiskKeywords...), c.ModerateRiskKeywords...) {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("%w: keywords cannot be blank", ErrInvalidConfig)
		}
	}
	t := c.Thresholds
	if t.MaxScore <= 0 {
		return fmt.Errorf("%w: max_score must be positive", ErrInvalidConfig)
	}
	if t.HumanReview > t.MaxScore || t.Block > t.MaxScore {
		return fmt.Errorf("%w: thresholds cannot exceed max_score", ErrInvalidConfig)
	}
	return nil
}

func (c Config) clone() Config {
	out := c
	out.HighRiskKeywords = append([]string(nil), c.HighRiskKeywords...)
	out.ModerateRiskKeywords = append([]string(nil), c.ModerateRiskKeywords...)
	out.PIIPatterns = append([]PatternRule(nil), c.PIIPatterns...)
	out.HarmfulPatterns = append([]PatternRule(nil), c.HarmfulPatterns...)
	out.ModerationCategories = make([]ModerationCategory, len(c.ModerationCategories))
	for i, mc := range c.ModerationCategories {
		out.ModerationCategories[i] = ModerationCategory{
			Name:     mc.Name,
			Keywords: append([]string(nil), mc.Keywords...),
		}
	}
	return out
}
