package dependency_container

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeuralTrust/TrustGuard/pkg/app/guardrail"
	"github.com/NeuralTrust/TrustGuard/pkg/app/review"
	"github.com/NeuralTrust/TrustGuard/pkg/config"
	"github.com/NeuralTrust/TrustGuard/pkg/domain/guardrail_log"
	"github.com/NeuralTrust/TrustGuard/pkg/guardrails"
	handlers "github.com/NeuralTrust/TrustGuard/pkg/handlers/http"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/database"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/metrics"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/repository"
	infraTelemetry "github.com/NeuralTrust/TrustGuard/pkg/infra/telemetry"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/telemetry/kafka"
	"github.com/NeuralTrust/TrustGuard/pkg/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

type Container struct {
	RedisClient         *redis.Client
	EventPublisher      cache.EventPublisher
	GuardrailLogRepo    guardrail_log.Repository
	MetricsWorker       metrics.Worker
	Engine              *guardrails.Engine
	Checker             guardrail.Checker
	ReviewLister        review.Lister
	ReviewSubmitter     review.Submitter
	JWTManager          jwt.Manager
	HandlerTransport    *handlers.HandlerTransport
	MiddlewareTransport *middleware.Transport
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	DB     *database.DB
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg
	logger := di.Logger

	prometheus.Initialize(prometheus.MetricsConfig{
		EnableLatency:  cfg.Metrics.EnableLatency,
		EnablePIITypes: cfg.Metrics.EnablePIITypes,
	})

	var (
		redisClient *redis.Client
		publisher   = cache.NewNoopEventPublisher()
	)
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(cache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TLS:      cfg.Redis.TLS,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		redisClient = client
		publisher = cache.NewRedisEventPublisher(client, channel.GuardrailReviews)
	} else {
		logger.Info("redis disabled, review notifications will not be published")
	}

	logRepo := repository.NewGuardedGuardrailLogRepository(
		logger,
		repository.NewGuardrailLogRepository(di.DB.DB),
		repository.BreakerConfig{
			Timeout:     cfg.AuditStore.BreakerTimeout,
			MaxFailures: cfg.AuditStore.BreakerMaxFailures,
		},
	)

	exporterLocator := infraTelemetry.NewExporterLocator(
		infraTelemetry.WithExporter(kafka.ExporterName, kafka.NewKafkaExporter()),
	)
	exporters, err := exporterLocator.Build(cfg.Telemetry.Exporters)
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry exporters: %w", err)
	}
	worker := metrics.NewWorker(logger, exporters, cfg.Metrics.QueueSize)
	worker.StartWorkers(cfg.Metrics.Workers)

	engine, err := guardrails.NewEngine(logger, cfg.EngineConfig(), guardrail.NewAuditLogger(logger, logRepo))
	if err != nil {
		worker.Shutdown()
		return nil, fmt.Errorf("failed to initialize guardrail engine: %w", err)
	}

	checker := guardrail.NewChecker(logger, engine, worker, publisher)
	lister := review.NewLister(logger, logRepo)
	submitter := review.NewSubmitter(logger, logRepo, publisher)

	healthChecks := map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := di.DB.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if redisClient != nil {
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	middlewareTransport := &middleware.Transport{
		RequestIDMiddleware:    middleware.NewRequestIDMiddleware(),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(logger),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		CORSMiddleware: middleware.NewCORSMiddleware(middleware.CORSConfig{
			AllowOrigins:     cfg.Server.CORS.AllowOrigins,
			AllowCredentials: cfg.Server.CORS.AllowCredentials,
			MaxAge:           cfg.Server.CORS.MaxAge,
		}),
	}

	var jwtManager jwt.Manager
	if cfg.Auth.Enabled {
		if cfg.Auth.SecretKey == "" {
			worker.Shutdown()
			return nil, errors.New("auth is enabled but auth.secret_key is empty")
		}
		jwtManager = jwt.NewJwtManager(&cfg.Auth)
		middlewareTransport.ReviewerAuthMiddleware = middleware.NewReviewerAuthMiddleware(logger, jwtManager)
	}

	handlerTransport := &handlers.HandlerTransport{
		CheckGuardrailHandler:     handlers.NewCheckGuardrailHandler(logger, checker),
		GetGuardrailLogHandler:    handlers.NewGetGuardrailLogHandler(logger, logRepo),
		ListPendingReviewsHandler: handlers.NewListPendingReviewsHandler(logger, lister),
		SubmitReviewHandler:       handlers.NewSubmitReviewHandler(logger, submitter),
		GetVersionHandler:         handlers.NewGetVersionHandler(logger),
		HealthHandler:             handlers.NewHealthHandler(logger, healthChecks),
	}

	return &Container{
		RedisClient:         redisClient,
		EventPublisher:      publisher,
		GuardrailLogRepo:    logRepo,
		MetricsWorker:       worker,
		Engine:              engine,
		Checker:             checker,
		ReviewLister:        lister,
		ReviewSubmitter:     submitter,
		JWTManager:          jwtManager,
		HandlerTransport:    handlerTransport,
		MiddlewareTransport: middlewareTransport,
	}, nil
}

// Close stops background workers and releases connections. The database is
// owned by the caller.
func (c *Container) Close() error {
	c.MetricsWorker.Shutdown()
	if c.RedisClient != nil {
		return c.RedisClient.Close()
	}
	return nil
}
