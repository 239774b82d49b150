package http

import (
	"errors"

	"github.com/NeuralTrust/TrustGuard/pkg/app/review"
	"github.com/NeuralTrust/TrustGuard/pkg/common"
	"github.com/NeuralTrust/TrustGuard/pkg/domain"
	"github.com/NeuralTrust/TrustGuard/pkg/domain/guardrail_log"
	"github.com/NeuralTrust/TrustGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type submitReviewHandler struct {
	logger    *logrus.Logger
	submitter review.Submitter
}

func NewSubmitReviewHandler(logger *logrus.Logger, submitter review.Submitter) Handler {
	return &submitReviewHandler{
		logger:    logger,
		submitter: submitter,
	}
}

// Handle @Summary Submit a human review for a guardrail log
// @Description Records the reviewer decision. A log can only be reviewed once.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param Authorization header string false "Authorization token"
// @Param log_id path string true "Guardrail log ID"
// @Param request body request.SubmitReviewRequest true "Review"
// @Success 200 {object} guardrail_log.GuardrailLog "Reviewed log"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Guardrail log not found"
// @Failure 409 {object} map[string]interface{} "Already reviewed"
// @Router /api/v1/guardrails/logs/{log_id}/review [post]
func (h *submitReviewHandler) Handle(c *fiber.Ctx) error {
	logID, err := uuid.Parse(c.Params("log_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": domain.ErrInvalidID.Error()})
	}

	var req request.SubmitReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// An authenticated reviewer always wins over the body.
	reviewedBy := req.ReviewedBy
	if reviewer, ok := c.Locals(common.ReviewerContextKey).(string); ok && reviewer != "" {
		reviewedBy = reviewer
	}

	reviewed, err := h.submitter.Submit(c.UserContext(), logID, reviewedBy, req.Decision, req.Notes)
	if err != nil {
		switch {
		case domain.IsNotFoundError(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "guardrail log not found"})
		case errors.Is(err, guardrail_log.ErrAlreadyReviewed):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, guardrail_log.ErrInvalidReviewDecision),
			errors.Is(err, guardrail_log.ErrReviewerRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).WithField("log_id", logID.String()).Error("failed to submit review")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to submit review"})
	}

	return c.Status(fiber.StatusOK).JSON(reviewed)
}
