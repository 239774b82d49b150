package event

type ReviewSubmittedEvent struct {
	LogID      string `json:"log_id"`
	ReviewedBy string `json:"reviewed_by"`
	Decision   string `json:"decision"`
	ReviewedAt string `json:"reviewed_at"`
}

func (e ReviewSubmittedEvent) Type() string {
	return ReviewSubmittedEventType
}
