// Command worker consumes queued batch requests and scores them.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"jobfit/internal/app"
	"jobfit/internal/config"
	"jobfit/internal/queue"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.App.LogLevel}))
	slog.SetDefault(logger)

	if cfg.AMQP.URL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init container", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := c.Close(); err != nil {
			logger.Warn("cleanup error", "error", err)
		}
	}()

	consumer := queue.NewConsumer(cfg.AMQP, c.Batch, logger)
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("consumer stopped", "error", err)
	}
}
