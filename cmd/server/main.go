package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vblinov/gophblog/internal/server"
	"github.com/vblinov/gophblog/internal/server/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := server.New(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to init application", slog.Any("error", err))
		os.Exit(1)
	}
	defer app.Close()

	logger.Info("gophblog server",
		slog.String("version", Version),
		slog.String("build_date", BuildDate),
		slog.String("git_commit", GitCommit))

	if err := app.Run(ctx); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Println("Server stopped")
}
