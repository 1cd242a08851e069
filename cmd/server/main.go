package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/kainoa/surftrack/api"
	dbfs "github.com/kainoa/surftrack/db"
	"github.com/kainoa/surftrack/internal/config"
	"github.com/kainoa/surftrack/internal/db"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelDebug
	if cfg.IsProduction() {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	logger.Info("Starting surftrack server",
		"version", version,
		"build_time", buildTime,
		"environment", cfg.Environment)

	ctx := context.Background()

	database, err := db.New(ctx, cfg.DSN(), db.PoolConfig{
		MaxOpenConns: cfg.DBPoolSize,
		IdleTimeout:  cfg.DBIdleTimeout,
		ConnTimeout:  cfg.DBConnTimeout,
	})
	if err != nil {
		logger.Error("Failed to open DB", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(ctx, database, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		logger.Error("Failed to migrate DB", "error", err)
		os.Exit(1)
	}

	// Monitor the idle pool. A connection that cannot be revived means the
	// store is gone; exit rather than serve errors indefinitely.
	keepaliveCtx, stopKeepalive := context.WithCancel(ctx)
	defer stopKeepalive()
	go database.Keepalive(keepaliveCtx, func(err error) {
		logger.Error("Database connection lost", "error", err)
		os.Exit(1)
	})

	handler := api.SetupRoutes(cfg, version, buildTime, database, logger)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	stopKeepalive()

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if err := database.Close(); err != nil {
		logger.Warn("Error closing DB", "error", err)
	}

	logger.Info("Server exited")
}
