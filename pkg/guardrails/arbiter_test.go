package guardrails

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArbiter_Severity(t *testing.T) {
	a := newArbiter(DefaultThresholds())

	assert.Equal(t, SeverityLow, a.Severity(0, 3.9))
	assert.Equal(t, SeverityMedium, a.Severity(4, 0))
	assert.Equal(t, SeverityHigh, a.Severity(2, 6))
	assert.Equal(t, SeverityCritical, a.Severity(8, 0))
	assert.Equal(t, SeverityCritical, a.Severity(0, 10))
}

func TestArbiter_Decide_DefaultThresholds(t *testing.T) {
	a := newArbiter(DefaultThresholds())

	tests := []struct {
		name         string
		prompt       float64
		response     float64
		pii          bool
		wantAction   Action
		wantAllowed  bool
		wantReview   bool
		wantSeverity Severity
	}{
		{"clean", 0, 0, false, ActionAllowed, true, false, SeverityLow},
		{"pii only", 0, 0, true, ActionRedacted, true, false, SeverityLow},
		{"flag boundary is exclusive", 5, 0, false, ActionAllowed, true, false, SeverityMedium},
		{"flagged", 5.5, 0, false, ActionFlagged, true, false, SeverityMedium},
		{"high but not blocked", 6, 0, true, ActionRedacted, true, false, SeverityHigh},
		{"elevated prompt", 7.5, 0, false, ActionBlocked, false, false, SeverityHigh},
		{"elevated response beats pii", 0, 7.5, true, ActionBlocked, false, false, SeverityHigh},
		{"critical prompt", 8, 0, false, ActionBlocked, false, false, SeverityCritical},
		{"critical response", 1, 8, false, ActionBlocked, false, false, SeverityCritical},
		{"review range still blocked by severity", 9, 0, false, ActionBlocked, false, true, SeverityCritical},
		{"ceiling", 10, 0, false, ActionBlocked, false, false, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := a.Decide(tt.prompt, tt.response, tt.pii)
			assert.Equal(t, tt.wantAction, d.Action)
			assert.Equal(t, tt.wantAllowed, d.Allowed)
			assert.Equal(t, tt.wantReview, d.RequiresHumanReview)
			assert.Equal(t, tt.wantSeverity, d.Severity)
		})
	}
}

func TestArbiter_Decide_ReviewWinsOverElevatedBlock(t *testing.T) {
	th := DefaultThresholds()
	th.Block = 9.5
	th.SeverityCritical = 9.5
	a := newArbiter(th)

	d := a.Decide(8.6, 0, false)
	assert.Equal(t, ActionHumanReviewRequired, d.Action)
	assert.False(t, d.Allowed)
	assert.True(t, d.RequiresHumanReview)

	d = a.Decide(7.5, 0, true)
	assert.Equal(t, ActionBlocked, d.Action)
	assert.False(t, d.RequiresHumanReview)

	d = a.Decide(9.6, 0, false)
	assert.Equal(t, ActionBlocked, d.Action)
	assert.True(t, d.RequiresHumanReview)
}

func TestAction_Permits(t *testing.T) {
	assert.True(t, ActionAllowed.Permits())
	assert.True(t, ActionRedacted.Permits())
	assert.True(t, ActionFlagged.Permits())
	assert.False(t, ActionBlocked.Permits())
	assert.False(t, ActionHumanReviewRequired.Permits())
}
