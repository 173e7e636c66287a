// Command cleanup-tokens deletes expired and revoked refresh tokens.
//
// Usage:
//
//	cleanup-tokens
//
// Requires the same database configuration as the server (DATABASE_DSN or
// CONFIG_PATH).
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/traveleats-backend/internal/adapter/postgres"
	"github.com/heartmarshall/traveleats-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/traveleats-backend/internal/app"
	"github.com/heartmarshall/traveleats-backend/internal/config"
)

func main() {
	var cfg struct {
		Database config.DatabaseConfig `yaml:"database"`
		Log      config.LogConfig      `yaml:"log"`
	}
	if err := config.Read(&cfg, "CONFIG_PATH", "./config.yaml"); err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	count, err := token.New(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Deleted %d expired/revoked refresh tokens.\n", count)
}
