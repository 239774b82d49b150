package guardrails

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModerationEstimator_Estimate(t *testing.T) {
	m := newModerationEstimator(DefaultConfig())

	flags := m.Estimate("They plan to attack and kill", "with a bomb", false)

	assert.InDelta(t, 0.9, flags[FlagViolence], 0.0001)
	assert.Equal(t, 0.0, flags[FlagSexual])
	assert.Equal(t, 0.0, flags[FlagPII])
	assert.Len(t, flags, 6)
}

func TestModerationEstimator_CapsAtOne(t *testing.T) {
	m := newModerationEstimator(DefaultConfig())

	flags := m.Estimate("idiot stupid loser worthless shut up", "", true)

	assert.Equal(t, 1.0, flags[FlagHarassment])
	assert.Equal(t, 1.0, flags[FlagPII])
}
