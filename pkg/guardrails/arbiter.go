package guardrails

import "math"

type Action string

const (
	ActionAllowed             Action = "allowed"
	ActionBlocked             Action = "blocked"
	ActionRedacted            Action = "redacted"
	ActionFlagged             Action = "flagged"
	ActionHumanReviewRequired Action = "human_review_required"
)

// Permits reports whether the caller may forward the content.
func (a Action) Permits() bool {
	switch a {
	case ActionAllowed, ActionRedacted, ActionFlagged:
		return true
	default:
		return false
	}
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Decision is the arbiter output for one check.
type Decision struct {
	Action              Action   `json:"action"`
	Severity            Severity `json:"severity"`
	Allowed             bool     `json:"allowed"`
	RequiresHumanReview bool     `json:"requires_human_review"`
}

type arbiter struct {
	t Thresholds
}

func newArbiter(t Thresholds) *arbiter {
	return &arbiter{t: t}
}

func (a *arbiter) Severity(promptScore, responseScore float64) Severity {
	top := math.Max(promptScore, responseScore)
	switch {
	case top >= a.t.SeverityCritical:
		return SeverityCritical
	case top >= a.t.SeverityHigh:
		return SeverityHigh
	case top >= a.t.SeverityMedium:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func (a *arbiter) RequiresHumanReview(promptScore float64) bool {
	return promptScore > a.t.HumanReview && promptScore < a.t.MaxScore
}

// Decide applies the rules in order and returns on the first match. The review
// range and the elevated block range overlap; the order below settles it.
func (a *arbiter) Decide(promptScore, responseScore float64, piiDetected bool) Decision {
	d := Decision{
		Severity:            a.Severity(promptScore, responseScore),
		RequiresHumanReview: a.RequiresHumanReview(promptScore),
	}

	switch {
	case promptScore >= a.t.MaxScore || responseScore >= a.t.MaxScore:
		d.Action = ActionBlocked
	case d.Severity == SeverityCritical || promptScore >= a.t.Block || responseScore >= a.t.Block:
		d.Action = ActionBlocked
	case d.RequiresHumanReview:
		d.Action = ActionHumanReviewRequired
	case promptScore > a.t.ElevatedBlock || responseScore > a.t.ElevatedBlock:
		d.Action = ActionBlocked
	case piiDetected:
		d.Action = ActionRedacted
	case promptScore > a.t.Flag:
		d.Action = ActionFlagged
	default:
		d.Action = ActionAllowed
	}

	d.Allowed = d.Action.Permits()
	return d
}
