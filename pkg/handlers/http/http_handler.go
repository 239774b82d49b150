package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Guardrails
	CheckGuardrailHandler     Handler
	GetGuardrailLogHandler    Handler
	ListPendingReviewsHandler Handler
	SubmitReviewHandler       Handler

	// Ops
	GetVersionHandler Handler
	HealthHandler     Handler
}
