package middleware

import (
	"context"

	"github.com/NeuralTrust/TrustGuard/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type requestIDMiddleware struct{}

// NewRequestIDMiddleware propagates X-Request-Id, minting one when absent.
func NewRequestIDMiddleware() Middleware {
	return &requestIDMiddleware{}
}

func (m *requestIDMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(common.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(common.RequestIDKey, requestID)
		c.SetUserContext(context.WithValue(c.UserContext(), common.RequestIDKey, requestID))
		c.Set(common.RequestIDHeader, requestID)
		return c.Next()
	}
}
