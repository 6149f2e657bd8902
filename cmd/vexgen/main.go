package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sword9322/vexgen/internal/api"
	"github.com/sword9322/vexgen/internal/config"
	"github.com/sword9322/vexgen/internal/enhancer"
	"github.com/sword9322/vexgen/internal/events"
	"github.com/sword9322/vexgen/internal/generator"
	"github.com/sword9322/vexgen/internal/ratelimit"
	"github.com/sword9322/vexgen/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("vexgen starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database (optional — without it usage records are not kept)
	var db *store.Store
	if cfg.DatabaseURL != "" {
		var err error
		db, err = store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("database connected")
	} else {
		slog.Warn("DATABASE_URL not set — running without usage records")
	}

	// NATS (optional — without it no generation events are published)
	var publisher *events.Publisher
	if cfg.NatsURL != "" {
		var err error
		publisher, err = events.NewPublisher(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS_URL not set — running without generation events")
	}

	// OpenAI enhancer (optional — the deterministic builder works standalone)
	var enh generator.Enhancer
	if cfg.OpenAIAPIKey != "" {
		enh = enhancer.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		slog.Info("openai enhancer ready", "model", cfg.OpenAIModel)
	} else {
		slog.Warn("OPENAI_API_KEY not set — using deterministic builder only")
	}

	gen := generator.New(enh, db, publisher, slog.Default())
	limiter := ratelimit.New(cfg.RateLimit, time.Minute)

	srv := api.NewServer(cfg.Port, cfg.APIToken, gen, db, limiter)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("vexgen ready", "port", cfg.Port, "rate_limit", cfg.RateLimit)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("vexgen stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
