package http

import (
	"errors"
	"strconv"

	"github.com/NeuralTrust/TrustGuard/pkg/app/review"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listPendingReviewsHandler struct {
	logger *logrus.Logger
	lister review.Lister
}

func NewListPendingReviewsHandler(logger *logrus.Logger, lister review.Lister) Handler {
	return &listPendingReviewsHandler{
		logger: logger,
		lister: lister,
	}
}

// Handle @Summary      List guardrail logs awaiting human review
// @Description  Pages through the review queue, newest first
// @Tags         Reviews
// @Param        Authorization header string false "Authorization token"
// @Param        organization_id query string false "Organization ID"
// @Param        severity query string false "low, medium, high or critical"
// @Param        requires_human_review query bool false "Defaults to true"
// @Param        only_unreviewed query bool false "Defaults to true"
// @Param        offset query int false "Offset"
// @Param        limit query int false "Page size, 1 to 100"
// @Produce      json
// @Success      200 {object} review.Page "Pending reviews"
// @Failure      400 {object} map[string]interface{} "Invalid query"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /api/v1/guardrails/reviews [get]
func (h *listPendingReviewsHandler) Handle(c *fiber.Ctx) error {
	query, err := h.parseQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	page, err := h.lister.ListPending(c.UserContext(), c.Query("organization_id"), query)
	if err != nil {
		if errors.Is(err, review.ErrInvalidSeverity) || errors.Is(err, review.ErrInvalidPagination) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to list pending reviews")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list pending reviews"})
	}

	return c.Status(fiber.StatusOK).JSON(page)
}

func (h *listPendingReviewsHandler) parseQuery(c *fiber.Ctx) (review.Query, error) {
	var query review.Query
	if severity := c.Query("severity"); severity != "" {
		query.Severity = &severity
	}
	var err error
	if query.RequiresHumanReview, err = parseOptionalBool(c.Query("requires_human_review")); err != nil {
		return query, errors.New("requires_human_review must be a boolean")
	}
	if query.OnlyUnreviewed, err = parseOptionalBool(c.Query("only_unreviewed")); err != nil {
		return query, errors.New("only_unreviewed must be a boolean")
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if query.Offset, err = strconv.Atoi(offsetStr); err != nil {
			return query, errors.New("offset must be an integer")
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if query.Limit, err = strconv.Atoi(limitStr); err != nil {
			return query, errors.New("limit must be an integer")
		}
	}
	return query, nil
}

func parseOptionalBool(value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
