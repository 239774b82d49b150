package request

import (
	"errors"
	"strings"
)

type SubmitReviewRequest struct {
	Decision   string  `json:"decision"`
	Notes      *string `json:"notes,omitempty"`
	ReviewedBy string  `json:"reviewed_by,omitempty"`
}

func (r *SubmitReviewRequest) Validate() error {
	if strings.TrimSpace(r.Decision) == "" {
		return errors.New("decision is required")
	}
	return nil
}
