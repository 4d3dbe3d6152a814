// ABOUTME: Main entry point for the Zhihu RSS API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zhihu-rss-api/api"
	"zhihu-rss-api/api/handlers"
	"zhihu-rss-api/core/domain"
	"zhihu-rss-api/core/interfaces"
	"zhihu-rss-api/core/stream"
	"zhihu-rss-api/core/zhihu"
	stdhttp "zhihu-rss-api/infrastructure/http/standard"
	logruslogger "zhihu-rss-api/infrastructure/logger/logrus"
	"zhihu-rss-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogrusLoggerWithLevel(cfg.Server.LogLevel)
	logger.Info("Starting Zhihu RSS API", map[string]interface{}{
		"port":             cfg.Server.Port,
		"upstream_timeout": cfg.Upstream.Timeout.String(),
		"min_items":        cfg.Stream.MinItems,
		"max_pages":        cfg.Stream.MaxPages,
	})

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Upstream.Timeout)

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	zhihuClient := zhihu.NewClient(deps)
	streamService := stream.NewService(deps, zhihuClient, domain.Budget{
		MinItems: cfg.Stream.MinItems,
		MaxPages: cfg.Stream.MaxPages,
	})

	// Create router with middleware
	streamHandler := handlers.NewStreamHandler(streamService, logger)
	router := api.NewRouter(api.Config{
		Logger:         logger,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	}, streamHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
