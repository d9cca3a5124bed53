package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/footylab/mvp-selector/internal/app"
	"github.com/footylab/mvp-selector/internal/config"
	"github.com/footylab/mvp-selector/internal/interfaces/cli"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	svc := app.NewMVPService(cfg, logger)
	runner := cli.NewRunner(svc, os.Stdin, os.Stdout, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("interactive loop failed", "error", err)
		os.Exit(1)
	}
}
