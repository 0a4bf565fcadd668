package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fintrack/internal/amqp"
	"fintrack/internal/config"
	"fintrack/internal/export/xlsx"
	apphttp "fintrack/internal/http"
	applog "fintrack/internal/log"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	// AMQP is optional: without it the sheets export endpoint reports 503.
	var exportQueue services.ExportQueue
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()
		exportQueue = amqpClient
		logger.Info("AMQP export queue initialized", "queue", cfg.AMQPQueue)
	} else {
		logger.Info("AMQP disabled - sheets export unavailable")
	}

	tokenOwners := cfg.TokenOwners()
	if len(tokenOwners) == 0 {
		logger.Error("No API tokens configured - set API_TOKENS (token:owner pairs)")
		os.Exit(1)
	}

	var limiter apphttp.RateLimitStore
	if cfg.RedisAddr != "" {
		limiter = apphttp.NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RateLimitPerMinute)
		logger.Info("Redis rate limiter initialized", "addr", cfg.RedisAddr)
	} else {
		limiter = apphttp.NewMemoryLimiter(cfg.RateLimitPerMinute)
	}

	stats := services.NewStatsService(repo, repo, exportQueue)
	savings := services.NewSavingsService(repo, repo, repo)

	srv := apphttp.NewServer(apphttp.Options{
		Addr:          ":" + cfg.Port,
		Authenticator: apphttp.NewTokenAuthenticator(tokenOwners),
		Limiter:       limiter,
		Stats:         stats,
		Savings:       savings,
		Transactions:  repo,
		Categories:    repo,
		Cards:         repo,
		Budgets:       repo,
		Encoder:       xlsx.NewEncoder(),
		Ready:         repo.Ping,
	})

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting fintrack server", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
