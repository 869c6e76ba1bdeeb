package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobfit/internal/app"
	"jobfit/internal/config"
	"jobfit/internal/database/migration"

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootstrap, cleanup, err := app.Bootstrap(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to bootstrap app", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Warn("cleanup error", "error", err)
		}
	}()

	migCtx, migCancel := context.WithTimeout(ctx, 2*time.Minute)
	r := migration.Runner{Logger: logger}
	err = r.Run(migCtx, bootstrap.Container.DB.SQLDB())
	migCancel()
	if err != nil {
		logger.Error("migration failed", "error", err)
		return
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logger.Error("invalid HTTP port", "error", err)
		return
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()
	logger.Info("server started", "addr", addr, "env", cfg.App.Environment)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Warn("shutdown error", "error", err)
		}
	}
}
