package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gracefleet/routeengine/internal/pkg/config"
	"github.com/gracefleet/routeengine/internal/pkg/database"
	"github.com/gracefleet/routeengine/internal/pkg/health"
	"github.com/gracefleet/routeengine/internal/pkg/logger"
	"github.com/gracefleet/routeengine/internal/pkg/middleware"
	"github.com/gracefleet/routeengine/internal/pkg/nats"
	nrpkg "github.com/gracefleet/routeengine/internal/pkg/newrelic"
	"github.com/gracefleet/routeengine/services/routes/gateway"
	"github.com/gracefleet/routeengine/services/routes/handler"
	"github.com/gracefleet/routeengine/services/routes/repository"
	"github.com/gracefleet/routeengine/services/routes/usecase"
)

func main() {
	appName := "routes-service"
	configPath := "config/routes.env"
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	routeRepo := repository.NewRouteRepository(configs, postgresClient.GetDB())
	routeGW := gateway.NewRouteGW(configs, natsClient)
	geocodeGW := gateway.NewGeocodeGW(configs, redisClient, zapLogger)

	routeUC, err := usecase.NewRouteUC(configs, routeRepo, routeGW, geocodeGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize route use case", logger.Err(err))
	}

	routeHandler := handler.NewHandler(routeUC, natsClient, redisClient, configs)

	if err := routeHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true

	// Panic recovery first so every later middleware is covered
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.EchoMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	routeHandler.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	natsClient.Close()

	if nrApp != nil {
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Shutdown complete")
}
