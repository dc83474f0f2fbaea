package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voicepay/backend"
	"voicepay/config"
	"voicepay/handlers"
	"voicepay/middleware"
	"voicepay/routes"
	"voicepay/services/assistant"
	"voicepay/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.Use(middleware.RequestIDMiddleware(logger))

	// Backend client with injected address and per-call timeout.
	timeout := time.Duration(config.AppConfig.BackendTimeoutSeconds) * time.Second
	backendClient := backend.NewClient(config.AppConfig.BackendURL, timeout)

	// services.
	assistantService := &assistant.DefaultAssistantService{
		Backend:       backendClient,
		Logger:        logger,
		PaymentMethod: config.AppConfig.PaymentMethod,
	}

	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// Register routes.
	routes.RegisterRoutes(router, assistantHandler, backendClient.BaseURL())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting agent on %s (backend %s)...", srv.Addr, backendClient.BaseURL())
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
