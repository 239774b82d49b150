package channel

type Channel string

const (
	// GuardrailReviews carries review queue notifications.
	GuardrailReviews Channel = "trustguard:guardrails:reviews"
)
