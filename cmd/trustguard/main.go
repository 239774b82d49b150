package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/TrustGuard/pkg/config"
	"github.com/NeuralTrust/TrustGuard/pkg/dependency_container"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/database"
	infraLogger "github.com/NeuralTrust/TrustGuard/pkg/infra/logger"
	_ "github.com/NeuralTrust/TrustGuard/pkg/infra/migrations"
	"github.com/NeuralTrust/TrustGuard/pkg/server"
	"github.com/NeuralTrust/TrustGuard/pkg/server/router"
	"github.com/NeuralTrust/TrustGuard/pkg/version"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config"
	}
	if err := config.Load(configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	logger, closeLogger := infraLogger.NewLogger("trustguard", infraLogger.Options{
		Level:   cfg.Log.Level,
		Dir:     cfg.Log.Dir,
		Console: cfg.Log.Console,
	})
	defer closeLogger()

	logger.WithFields(logrus.Fields{
		"version": version.Version,
		"app":     version.AppName,
	}).Info("starting")

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("trustguard stopped with error")
		closeLogger()
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	db, err := database.NewDB(logger, &database.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		DBName:       cfg.Database.DBName,
		SSLMode:      cfg.Database.SSLMode,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Warn("failed to close database")
		}
	}()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
		DB:     db,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.WithError(err).Warn("failed to release dependencies")
		}
	}()

	srv := server.NewAdminServer(server.AdminServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewAdminRouter(container.MiddlewareTransport, container.HandlerTransport),
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(srv.RunMetrics)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")
		return srv.Shutdown()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
