package common

const (
	RequestIDHeader = "X-Request-Id"
	ReviewerHeader  = "X-Reviewer-Id"
)
