package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tumapesa/tumapesa/internal/pkg/config"
	"github.com/tumapesa/tumapesa/internal/pkg/database"
	"github.com/tumapesa/tumapesa/internal/pkg/health"
	"github.com/tumapesa/tumapesa/internal/pkg/logger"
	"github.com/tumapesa/tumapesa/internal/pkg/middleware"
	natspkg "github.com/tumapesa/tumapesa/internal/pkg/nats"
	nrpkg "github.com/tumapesa/tumapesa/internal/pkg/newrelic"
	"github.com/tumapesa/tumapesa/services/payments/gateway"
	"github.com/tumapesa/tumapesa/services/payments/handler"
	httpHandler "github.com/tumapesa/tumapesa/services/payments/handler/http"
	"github.com/tumapesa/tumapesa/services/payments/repository"
	"github.com/tumapesa/tumapesa/services/payments/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "payments-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	// Wait for New Relic connection before proceeding
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connection established")
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Log startup with Zap
	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository
	paymentRepo := repository.NewPaymentRepo(postgresClient.GetDB(), redisClient)

	// Initialize Gateway
	paymentGW := gateway.NewPaymentGW(configs.Mpesa, natsClient)

	// Initialize UseCase
	paymentUC := usecase.NewPaymentUC(paymentRepo, paymentGW)

	// Handlers for HTTP
	paymentHandler := httpHandler.NewPaymentHandler(paymentUC)
	payoutHandler := httpHandler.NewPayoutHandler(paymentUC)

	// Initialize handlers
	Handler := handler.NewHandler(paymentHandler, payoutHandler, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthSvc := health.NewService(appName)
	healthSvc.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthSvc.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthSvc.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, healthSvc)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
