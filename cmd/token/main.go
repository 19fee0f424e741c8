// Package main prints a signed operator token for the write routes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/kpi-dashboard/backend/config"
	"github.com/kpi-dashboard/backend/internal/integration/adapters"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	subject := flag.String("subject", "operator", "name recorded in the token subject")
	expiry := flag.Duration("expiry", cfg.Auth.TokenExpiry, "token lifetime")
	flag.Parse()

	tokens := adapters.NewTokenService(cfg.Auth.Secret, *expiry, adapters.NewSystemClock())
	token, expiresAt, err := tokens.GenerateToken(context.Background(), *subject)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		os.Exit(1)
	}

	slog.Info("operator token generated", "subject", *subject, "expires_at", expiresAt.Format(time.RFC3339))
	fmt.Println(token)
}
