package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/wadjakorntonsri/coin-collection/pkg/adapters/handler"
	"github.com/wadjakorntonsri/coin-collection/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/coin-collection/pkg/config"
	"github.com/wadjakorntonsri/coin-collection/pkg/core/services"
	logpkg "github.com/wadjakorntonsri/coin-collection/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	// Initialize Repository
	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer repo.Close()

	// Initialize Services
	collectionService := services.NewCollectionService(repo)
	jobs := services.NewDispatcher(cfg.JobQueueSize)
	baseCtx := logpkg.ContextWithLogger(context.Background(), logger)
	if err := jobs.Start(baseCtx); err != nil {
		logger.Fatal("Failed to start job dispatcher", zap.Error(err))
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.NewRouter(cfg, logger, collectionService, jobs),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}
	if err := jobs.Stop(); err != nil {
		logger.Error("Error stopping job dispatcher", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
