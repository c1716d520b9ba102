package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/svaraj/bizdesk/internal/pkg/config"
	"github.com/svaraj/bizdesk/internal/pkg/database"
	"github.com/svaraj/bizdesk/internal/pkg/health"
	"github.com/svaraj/bizdesk/internal/pkg/logger"
	"github.com/svaraj/bizdesk/internal/pkg/middleware"
	nrpkg "github.com/svaraj/bizdesk/internal/pkg/newrelic"
	"github.com/svaraj/bizdesk/internal/pkg/server"
	"github.com/svaraj/bizdesk/services/auth/gateway"
	"github.com/svaraj/bizdesk/services/auth/handler"
	httpHandler "github.com/svaraj/bizdesk/services/auth/handler/http"
	"github.com/svaraj/bizdesk/services/auth/repository"
	"github.com/svaraj/bizdesk/services/auth/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "auth-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(appName, configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection and run migrations
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	if err := postgresClient.Migrate(); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize repository
	authRepo := repository.NewAuthRepo(configs, postgresClient.GetDB())

	// Initialize gateway
	authGW, err := gateway.NewAuthGW(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	// Initialize usecase
	authUC := usecase.NewAuthUC(authRepo, authGW, configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(authUC)
	sessionHandler := httpHandler.NewSessionHandler(authUC)
	routeHandler := handler.NewHandler(authHandler, sessionHandler, redisClient, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints and service routes
	health.RegisterHealthEndpoints(e, appName)
	routeHandler.RegisterRoutes(e)

	// Register shutdown hooks
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		authGW.Close()
		return nil
	})

	// Start server and wait for termination
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownManager.Shutdown(ctx)
}
