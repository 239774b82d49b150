package http

import (
	"errors"

	"github.com/NeuralTrust/TrustGuard/pkg/app/guardrail"
	"github.com/NeuralTrust/TrustGuard/pkg/guardrails"
	"github.com/NeuralTrust/TrustGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type checkGuardrailHandler struct {
	logger  *logrus.Logger
	checker guardrail.Checker
}

func NewCheckGuardrailHandler(logger *logrus.Logger, checker guardrail.Checker) Handler {
	return &checkGuardrailHandler{
		logger:  logger,
		checker: checker,
	}
}

// Handle @Summary Run the guardrails on a prompt and optional response
// @Description Scores, redacts and decides on the given text. The result is returned with status 200 whether or not the text is allowed.
// @Tags Guardrails
// @Accept json
// @Produce json
// @Param request body request.CheckRequest true "Check request"
// @Success 200 {object} guardrails.CheckResult "Guardrail decision"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/v1/guardrails/check [post]
func (h *checkGuardrailHandler) Handle(c *fiber.Ctx) error {
	var req request.CheckRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Debug("failed to parse check request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.checker.Check(c.UserContext(), req.Prompt, req.Response, req.GuardrailContext(c.IP()))
	if err != nil {
		if errors.Is(err, guardrails.ErrMissingRequestID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).WithField("request_id", req.RequestID).Error("guardrail check failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "guardrail check failed"})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
