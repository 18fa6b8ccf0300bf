// Package main runs the Z&C Metal website: the server-rendered pages, the
// catalog JSON API and the media files.
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/NeilHuang625/zcmetal/domain/catalog"
	"github.com/NeilHuang625/zcmetal/domain/health"
	"github.com/NeilHuang625/zcmetal/domain/pages"
	"github.com/NeilHuang625/zcmetal/domain/tracing"
	"github.com/NeilHuang625/zcmetal/internal/config"
	"github.com/NeilHuang625/zcmetal/internal/content"
	"github.com/NeilHuang625/zcmetal/internal/server"
	"github.com/NeilHuang625/zcmetal/internal/storage"
	"github.com/NeilHuang625/zcmetal/pkg/logger"
)

func main() {
	// Load .env files if present (for local development)
	// Note: Load() won't overwrite existing vars, Overload() will
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		// Logging
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		server.Module,
		storage.Module,
		tracing.Module,

		// Site content tables
		content.Module,

		// Domain modules
		health.Module,
		catalog.Module,
		pages.Module,
	).Run()
}
