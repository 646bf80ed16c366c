package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/debtwise-ledger/internal/api"
	"github.com/debtwise-ledger/internal/api/service"
	"github.com/debtwise-ledger/internal/audit"
	"github.com/debtwise-ledger/internal/config"
	"github.com/debtwise-ledger/internal/data/memory"
	"github.com/debtwise-ledger/internal/data/mongo"
	"github.com/debtwise-ledger/internal/data/redis"
	"github.com/debtwise-ledger/internal/ledger"
	"github.com/debtwise-ledger/internal/logger"
	"github.com/debtwise-ledger/internal/platform/events"
	"github.com/debtwise-ledger/internal/platform/persistence"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("debtwise")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize the snapshot store. An empty Redis address selects the
	// in-memory store for local development.
	var kv ledger.KV
	var redisDB *persistence.Redis
	if cfg.Redis.Addr != "" {
		redisDB, err = persistence.NewRedis(appCtx, log, &cfg.Redis)
		if err != nil {
			log.Error("Failed to initialize Redis", "error", err)
			os.Exit(1)
		}
		kv = redis.NewKV(log, redisDB.Client())
	} else {
		log.Warn("No Redis address configured, using in-memory snapshot store")
		kv = memory.NewKV()
	}

	mongoDB, err := persistence.NewMongoDB(appCtx, log, &cfg.MongoDB)
	if err != nil {
		log.Error("Failed to initialize MongoDB", "error", err)
		os.Exit(1)
	}

	// Initialize Kafka publisher for debt events
	publisher, err := events.NewDebtEventPublisher(appCtx, log, &cfg.Kafka)
	if err != nil {
		log.Error("Failed to initialize Kafka publisher", "error", err)
		os.Exit(1)
	}

	// Initialize the audit recorder with its worker pool
	historyRepo := mongo.NewHistoryRepository(log, mongoDB.Database())
	recorder, err := audit.NewRecorder(log, cfg.WorkerPool.Size, historyRepo, publisher)
	if err != nil {
		log.Error("Failed to initialize audit recorder", "error", err)
		os.Exit(1)
	}

	// Initialize the ledger store and services
	store := ledger.NewStore(appCtx, log, kv)
	debtService := service.NewDebtService(log, store, recorder)
	historyService := service.NewHistoryService(historyRepo)

	// Initialize REST server
	server := api.NewServer(log, cfg, debtService, historyService)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	// Shutdown HTTP server first so no new mutations arrive
	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	// Drain in-flight audit work before closing its sinks
	recorder.Shutdown()

	if err = publisher.Close(); err != nil {
		log.Error("Error closing Kafka publisher", "error", err)
	}

	if err = mongoDB.Close(shutdownCtx); err != nil {
		log.Error("Error closing MongoDB connection", "error", err)
	}

	if redisDB != nil {
		if err = redisDB.Close(); err != nil {
			log.Error("Error closing Redis connection", "error", err)
		}
	}

	// Final status
	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
