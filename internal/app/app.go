package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"power-analytics/internal/aggregators"
	"power-analytics/internal/correlations"
	"power-analytics/internal/correlators"
	internalhttp "power-analytics/internal/http"
	"power-analytics/internal/loaders"
	"power-analytics/internal/models"
	"power-analytics/internal/pipelines"
	"power-analytics/internal/shared/configs"
	"power-analytics/internal/shared/filestorages"
	"power-analytics/internal/shared/loggers"
	"power-analytics/internal/shared/metrics"
	"power-analytics/internal/shared/svcerrors"
	"power-analytics/internal/sources"
	"power-analytics/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	runner    pipelines.Runner
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := newLogger(config.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "power-analytics").
		Logger()

	// Input and output live under separate roots; only the output root is written.
	inputStorage, err := filestorages.NewFileStorage(config.Input.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize input storage: %w", err)
	}
	outputStorage, err := filestorages.NewFileStorage(config.Output.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize output storage: %w", err)
	}
	inputStore := stores.NewInputStore(inputStorage)
	outputStore := stores.NewOutputStore(outputStorage)

	window, err := models.NewWindowSize(config.Pipeline.WindowMs)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize window size: %w", err)
	}
	overrides := make([]sources.Override, 0, len(config.Sources))
	for _, s := range config.Sources {
		overrides = append(overrides, sources.Override{Name: s.Name, WindowMs: s.WindowMs})
	}
	configured, err := sources.Select(window, overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to select sources: %w", err)
	}

	// Initialize aggregation service
	aggregationService := aggregators.NewAggregationService(aggregators.NewSignalReducer(), inputStore, outputStore)

	// Initialize correlation service
	var loader loaders.SeriesLoader
	if config.Loader.Enabled {
		loader = loaders.NewPostgresLoader(config.Loader.DatabaseURL)
	}
	correlationService := correlations.NewCorrelationService(inputStore, outputStore, correlations.Options{
		Join:     correlators.JoinStrategy(config.Pipeline.JoinStrategy),
		CopyRoot: config.Output.CopyRoot,
		Loader:   loader,
	})

	runner := pipelines.NewRunner(configured, aggregationService, correlationService, config.Pipeline.Parallelism)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(runner, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		runner:    runner,
		server:    server,
	}, nil
}

func newLogger(config configs.LogConfig) (loggers.Logger, error) {
	if !config.File.Enabled {
		return loggers.New(config.Level)
	}
	return loggers.NewWithRotation(config.Level, loggers.RotationConfig{
		Path:       config.File.Path,
		MaxSizeMB:  config.File.MaxSizeMB,
		MaxBackups: config.File.MaxBackups,
		MaxAgeDays: config.File.MaxAgeDays,
		Compress:   config.File.Compress,
	})
}

// Logger returns the application logger.
func (app *App) Logger() *loggers.Logger {
	return &app.appLogger
}

// Run performs one batch run over the named sources, or every configured
// source when names is empty, then dumps the metrics textfile if configured.
func (app *App) Run(ctx context.Context, names []string) (*models.RunReport, *svcerrors.ServiceError) {
	batchLogger := app.appLogger.With().Str(loggers.FieldComponent, "batch").Logger()
	ctx = batchLogger.WithContext(ctx)

	batchLogger.Info().
		Str("input_root_dir", app.config.Input.RootDir).
		Str("output_root_dir", app.config.Output.RootDir).
		Str("join_strategy", app.config.Pipeline.JoinStrategy).
		Bool("loader_enabled", app.config.Loader.Enabled).
		Msg("Starting power-analytics batch run")

	report, svcErr := app.runner.Run(ctx, names)

	if path := app.config.Output.MetricsTextfile; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			batchLogger.Error().Err(err).Str("path", path).Msg("failed to write metrics textfile")
		}
	}
	return report, svcErr
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting power-analytics service on port %d (log_level=%s, input_root_dir=%s, output_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Input.RootDir,
			app.config.Output.RootDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application. An in-flight run finishes
// within the shutdown deadline or is abandoned with its request.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
