package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"barcode-scanner/internal/config"
	"barcode-scanner/internal/database"
	"barcode-scanner/internal/logger"
	"barcode-scanner/internal/server"

	"go.uber.org/zap"
)

// @title Barcode Scanner API
// @version 1.0
// @description Barcode lookup and product catalog service.
// @BasePath /api

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The context is used to inform the server it has 30 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close server resources
	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.Server.Env, cfg.Server.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting barcode scanner API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("update_mode", cfg.Catalog.UpdateMode),
	)

	// Initialize database
	dbService, err := database.New(cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.RunMigrations(dbService.DB(), cfg.Database.MigrationsDir, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Create server
	srv := server.NewServer(cfg, log, dbService)

	if cfg.Database.SeedSampleData {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := srv.Catalog.SeedSampleProducts(ctx); err != nil {
			log.Error("Failed to seed sample data", zap.Error(err))
		}
		cancel()
	}

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	// Run graceful shutdown in a separate goroutine
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info("Graceful shutdown complete")
}
