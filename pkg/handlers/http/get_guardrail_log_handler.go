package http

import (
	"github.com/NeuralTrust/TrustGuard/pkg/domain"
	"github.com/NeuralTrust/TrustGuard/pkg/domain/guardrail_log"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getGuardrailLogHandler struct {
	logger *logrus.Logger
	repo   guardrail_log.Repository
}

func NewGetGuardrailLogHandler(logger *logrus.Logger, repo guardrail_log.Repository) Handler {
	return &getGuardrailLogHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle @Summary Retrieve a guardrail log by ID
// @Description Returns the sanitized audit record of one guardrail check
// @Tags Guardrails
// @Param Authorization header string false "Authorization token"
// @Produce json
// @Param log_id path string true "Guardrail log ID"
// @Success 200 {object} guardrail_log.GuardrailLog "Guardrail log"
// @Failure 400 {object} map[string]interface{} "Invalid log ID"
// @Failure 404 {object} map[string]interface{} "Guardrail log not found"
// @Router /api/v1/guardrails/logs/{log_id} [get]
func (h *getGuardrailLogHandler) Handle(c *fiber.Ctx) error {
	logID, err := uuid.Parse(c.Params("log_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": domain.ErrInvalidID.Error()})
	}

	entry, err := h.repo.Get(c.UserContext(), logID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "guardrail log not found"})
		}
		h.logger.WithError(err).WithField("log_id", logID.String()).Error("failed to get guardrail log")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get guardrail log"})
	}

	return c.Status(fiber.StatusOK).JSON(entry)
}
