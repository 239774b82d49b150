package event

type Event interface {
	Type() string
}

var (
	ReviewRequiredEventType  = "ReviewRequiredEvent"
	ReviewSubmittedEventType = "ReviewSubmittedEvent"
)
