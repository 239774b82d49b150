package middleware

import (
	"strings"

	"github.com/NeuralTrust/TrustGuard/pkg/common"
	"github.com/gofiber/fiber/v2"
)

type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowCredentials bool
	MaxAge           string
}

type corsGlobalMiddleware struct {
	allowOrigins     []string
	allowMethods     []string
	allowCredentials bool
	exposeHeaders    []string
	maxAge           string
}

func NewCORSMiddleware(cfg CORSConfig) Middleware {
	methods := cfg.AllowMethods
	if len(methods) == 0 {
		methods = []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}
	}
	return &corsGlobalMiddleware{
		allowOrigins:     cfg.AllowOrigins,
		allowMethods:     methods,
		allowCredentials: cfg.AllowCredentials,
		exposeHeaders:    []string{common.RequestIDHeader},
		maxAge:           cfg.MaxAge,
	}
}

func (m *corsGlobalMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" || len(m.allowOrigins) == 0 {
			return c.Next()
		}

		allowed := false
		for _, o := range m.allowOrigins {
			if o == "*" || strings.EqualFold(o, origin) {
				allowed = true
				break
			}
		}
		if allowed {
			c.Set("Vary", "Origin")
			if m.allowCredentials {
				c.Set("Access-Control-Allow-Origin", origin)
				c.Set("Access-Control-Allow-Credentials", "true")
			} else {
				if hasStar(m.allowOrigins) {
					c.Set("Access-Control-Allow-Origin", "*")
				} else {
					c.Set("Access-Control-Allow-Origin", origin)
				}
			}
			if len(m.exposeHeaders) > 0 {
				c.Set("Access-Control-Expose-Headers", strings.Join(m.exposeHeaders, ", "))
			}

			// Preflight for the review console.
			if c.Method() == fiber.MethodOptions && c.Get("Access-Control-Request-Method") != "" {
				c.Set("Access-Control-Allow-Methods", strings.Join(m.allowMethods, ", "))
				reqHeaders := c.Get("Access-Control-Request-Headers")
				if reqHeaders == "" {
					reqHeaders = "Content-Type, Authorization"
				}
				c.Set("Access-Control-Allow-Headers", reqHeaders)
				if m.maxAge != "" {
					c.Set("Access-Control-Max-Age", m.maxAge)
				}
				return c.SendStatus(fiber.StatusNoContent)
			}
		}
		return c.Next()
	}
}

func hasStar(arr []string) bool {
	for _, v := range arr {
		if v == "*" {
			return true
		}
	}
	return false
}
