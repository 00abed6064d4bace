package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/angeloszaimis/seqdemo/config"
	"github.com/angeloszaimis/seqdemo/internal/demo"
	"github.com/angeloszaimis/seqdemo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := buildLogger(cfg)

	log.Info("starting demo run")

	runner := demo.NewRunner(os.Stdout, log)
	runner.Run()

	log.Info("demo run finished")
}

// buildLogger constructs the application logger from config and tags every
// line with a fresh run identifier.
func buildLogger(cfg *config.Config) *slog.Logger {
	return logger.New(cfg.Logging.Level, cfg.Logging.AddSource, cfg.App.Environment).With(
		slog.String("run_id", uuid.NewString()),
	)
}
