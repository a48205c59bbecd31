// Package main User Accounts API
//
// @title           User Accounts API
// @version         1.0
// @description     API для управления учётными записями пользователей

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey AccessToken
// @in header
// @name Authorization
// @description Type "AccessToken" followed by a space and JWT token.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/user-accounts/internal/app/useraccounts"
	"github.com/magabrotheeeer/user-accounts/internal/config"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting user-accounts", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := useraccounts.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("user-accounts stopped gracefully")
}
