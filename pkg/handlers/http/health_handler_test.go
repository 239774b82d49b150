package http

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestHealth_AllUp(t *testing.T) {
	app := fiber.New()
	app.Get("/health", NewHealthHandler(logrus.New(), map[string]HealthCheck{
		"database": func(ctx context.Context) error { return nil },
	}).Handle)

	status, body := getJSON(t, app, "/health")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestHealth_DependencyDown(t *testing.T) {
	app := fiber.New()
	app.Get("/health", NewHealthHandler(logrus.New(), map[string]HealthCheck{
		"database": func(ctx context.Context) error { return nil },
		"redis":    func(ctx context.Context) error { return errors.New("dial tcp: refused") },
	}).Handle)

	status, body := getJSON(t, app, "/health")

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "degraded", body["status"])
	components := body["components"].(map[string]interface{})
	assert.Equal(t, "down", components["redis"])
	assert.Equal(t, "up", components["database"])
}

func TestGetVersion(t *testing.T) {
	app := fiber.New()
	app.Get("/version", NewGetVersionHandler(logrus.New()).Handle)

	status, body := getJSON(t, app, "/version")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "TrustGuard", body["app_name"])
}
