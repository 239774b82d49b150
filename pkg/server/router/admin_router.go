package router

import (
	"errors"

	handlers "github.com/NeuralTrust/TrustGuard/pkg/handlers/http"
	"github.com/NeuralTrust/TrustGuard/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

var (
	ErrInvalidHandlerTransport = errors.New("invalid handler transport")
)

type adminRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
}

func NewAdminRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
) ServerRouter {
	return &adminRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *adminRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h == nil || h.CheckGuardrailHandler == nil || h.SubmitReviewHandler == nil {
		return ErrInvalidHandlerTransport
	}

	for _, m := range []middleware.Middleware{
		r.middlewareTransport.PanicRecoverMiddleware,
		r.middlewareTransport.RequestIDMiddleware,
		r.middlewareTransport.CORSMiddleware,
		r.middlewareTransport.MetricsMiddleware,
	} {
		if m != nil {
			router.Use(m.Middleware())
		}
	}

	router.Get("/version", h.GetVersionHandler.Handle)
	router.Get("/health", h.HealthHandler.Handle)

	guardrails := router.Group("/api/v1/guardrails")
	{
		guardrails.Post("/check", h.CheckGuardrailHandler.Handle)

		// Review endpoints require a reviewer identity when auth is enabled.
		var auth []fiber.Handler
		if r.middlewareTransport.ReviewerAuthMiddleware != nil {
			auth = append(auth, r.middlewareTransport.ReviewerAuthMiddleware.Middleware())
		}
		guardrails.Get("/reviews", append(auth, h.ListPendingReviewsHandler.Handle)...)
		guardrails.Get("/logs/:log_id", append(auth, h.GetGuardrailLogHandler.Handle)...)
		guardrails.Post("/logs/:log_id/review", append(auth, h.SubmitReviewHandler.Handle)...)
	}

	return nil
}
