package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"power-analytics/internal/app"
	"power-analytics/internal/shared/configs"
	"power-analytics/internal/shared/loggers"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.String("config", "./configs/configs.yml", "path to the YAML configuration file")
	sourceNames := pflag.StringSlice("source", nil, "source to process, repeatable (default: every configured source)")
	pflag.Parse()

	// Load configuration
	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, svcErr := application.Run(ctx, *sourceNames)
	if svcErr != nil {
		event := application.Logger().Error().Str(loggers.FieldErrorCode, svcErr.Code)
		if report != nil {
			event = event.Str(loggers.FieldRunID, report.RunID)
		}
		event.Msg(svcErr.Message)
		stop()
		os.Exit(1)
	}
	if failures := report.Failures(); failures > 0 {
		application.Logger().Warn().
			Str(loggers.FieldRunID, report.RunID).
			Int("failures", failures).
			Msg("run completed with failed steps")
	}
}
