// cmd/console/main.go
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/adapters/export"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/console"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/services"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/pkg/config"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("info", "text")

	slogger.Info("starting stock management system",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	ledger := services.NewLedger(services.LedgerOptions{
		BestSellersLimit: cfg.Ledger.BestSellersLimit,
		ReportTopItems:   cfg.Ledger.ReportTopItems,
	}, slogger)
	directory := services.NewDirectory(cfg.Directory.Users, slogger)

	if cfg.Ledger.SeedSampleData {
		if err := seedSampleData(ctx, ledger); err != nil {
			slogger.Error("failed to seed sample data", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slogger.Info("seeded sample stock data")
	}

	app := console.NewApp(
		os.Stdin,
		os.Stdout,
		ledger,
		directory,
		export.NewCSVExporter(slogger),
		export.NewXLSXExporter(slogger),
		cfg,
		slogger,
	)

	if err := app.Run(ctx); err != nil {
		slogger.Error("console session failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger.Info("shutdown complete")
}
