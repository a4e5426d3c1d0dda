// Package correlations runs the correlation step of a source: region
// deduplication, the interval join, the pivot to a wide series and the schema.
package correlations

import (
	"context"
	"errors"
	"path"

	"power-analytics/internal/correlators"
	"power-analytics/internal/frames"
	"power-analytics/internal/loaders"
	"power-analytics/internal/models"
	"power-analytics/internal/regions"
	"power-analytics/internal/schemas"
	"power-analytics/internal/series"
	"power-analytics/internal/shared/loggers"
	"power-analytics/internal/shared/metrics"
	"power-analytics/internal/shared/svcerrors"
	"power-analytics/internal/sources"
	"power-analytics/internal/stores"
)

//go:generate mockgen -source=correlation_service.go -destination=./mocks/correlation_service_mock.go -package=mocks
type CorrelationService interface {
	// Correlate returns nil for sources without a correlation step. Otherwise the
	// result is always returned, including when an error is returned alongside it.
	Correlate(ctx context.Context, source *sources.Source) (*models.CorrelationResult, *svcerrors.ServiceError)
}

type Options struct {
	Join correlators.JoinStrategy
	// CopyRoot is where psql finds the output directory when running the schema's \COPY.
	CopyRoot string
	// Loader is optional.
	Loader loaders.SeriesLoader
}

type correlationService struct {
	inputStore  stores.InputStore
	outputStore stores.OutputStore
	opts        Options
}

func NewCorrelationService(inputStore stores.InputStore, outputStore stores.OutputStore, opts Options) CorrelationService {
	return &correlationService{inputStore: inputStore, outputStore: outputStore, opts: opts}
}

func (s *correlationService) Correlate(ctx context.Context, source *sources.Source) (*models.CorrelationResult, *svcerrors.ServiceError) {
	if source.Correlation == nil {
		return nil, nil
	}
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldSignal, "correlation").Logger()
	ctx = logger.WithContext(ctx)

	result := &models.CorrelationResult{}
	svcErr := s.correlate(ctx, source, result)
	if svcErr != nil {
		result.Status = models.StatusFailed
		if svcErr.IsMissingInput() {
			result.Status = models.StatusSkipped
		}
		result.ErrorCode = svcErr.Code
		result.Message = svcErr.Error()
		metricCorrelationTotal.WithLabelValues(source.Name, svcErr.Code).Inc()
		return result, svcErr
	}

	metricCorrelationTotal.WithLabelValues(source.Name, metrics.ValueNoError).Inc()
	logger.Info().
		Int("samples", result.Samples).
		Int("matched", result.Matched).
		Int("unknown", result.Unknown).
		Int("regions", result.Regions).
		Int(loggers.FieldRows, result.SeriesRows).
		Msgf("correlation %s", result.Status)
	return result, nil
}

func (s *correlationService) correlate(ctx context.Context, source *sources.Source, result *models.CorrelationResult) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	step := source.Correlation

	sampleKeys, err := s.inputStore.List(ctx, source.InputDir, step.SamplePattern)
	if err != nil {
		return errInternalInputFailed(err)
	}
	regionKeys, err := s.inputStore.List(ctx, source.InputDir, step.RegionPattern)
	if err != nil {
		return errInternalInputFailed(err)
	}
	result.SampleFiles = len(sampleKeys)
	result.RegionFiles = len(regionKeys)
	if len(sampleKeys) == 0 {
		return errMissingInput("sample", source.InputDir, step.SamplePattern)
	}
	if len(regionKeys) == 0 && step.RegionsOptional {
		logger.Debug().Msg("no region files, nothing to correlate")
		result.Status = models.StatusSkipped
		return nil
	}
	if len(regionKeys) == 0 {
		return errMissingInput("region", source.InputDir, step.RegionPattern)
	}

	samples, err := s.inputStore.LoadFrame(ctx, sampleKeys)
	if err != nil {
		if errors.Is(err, frames.ErrMalformedRow) {
			return errMalformedSamples(err)
		}
		return errInternalInputFailed(err)
	}
	// every sample file was empty or header-only
	if samples.IsEmpty() {
		logger.Warn().Int(loggers.FieldFileCount, len(sampleKeys)).Msg("sample files hold no rows, nothing to correlate")
		result.Status = models.StatusEmpty
		return nil
	}
	intervals, err := s.inputStore.LoadIntervals(ctx, regionKeys)
	if err != nil {
		if errors.Is(err, regions.ErrMissingRegionColumns) || errors.Is(err, regions.ErrInvalidRegionRow) {
			return errInvalidRegions(err)
		}
		return errInternalInputFailed(err)
	}
	intervals = regions.Deduplicate(intervals)
	result.Regions = len(intervals)

	correlator, err := correlators.NewCorrelator(correlators.Options{
		ValueStrategies: step.ValueStrategies(),
		TimestampFields: step.TimestampFields,
		Join:            s.opts.Join,
	})
	if err != nil {
		return errInternalCorrelatorFailed(err)
	}
	correlation, err := correlator.Correlate(samples, intervals)
	if err != nil {
		switch {
		case errors.Is(err, correlators.ErrNoValueColumn):
			return errNoValue(err)
		case errors.Is(err, correlators.ErrNoTimestampColumn):
			return errNoTimestamp(err)
		default:
			return errInternalCorrelatorFailed(err)
		}
	}

	result.Samples = len(correlation.Records)
	result.Matched = correlation.Matched()
	result.Unknown = result.Samples - result.Matched
	result.SkippedSamples = correlation.Skipped
	metricSamplesCorrelatedTotal.WithLabelValues(source.Name, matchRegion).Add(float64(result.Matched))
	metricSamplesCorrelatedTotal.WithLabelValues(source.Name, matchUnknown).Add(float64(result.Unknown))
	metricSamplesCorrelatedTotal.WithLabelValues(source.Name, matchSkipped).Add(float64(result.SkippedSamples))
	if correlation.Skipped > 0 {
		logger.Warn().Int("skipped", correlation.Skipped).
			Str("timestamp_field", correlation.TimestampField.String()).
			Msg("skipped samples without a usable timestamp")
	}
	if len(correlation.Records) == 0 {
		result.Status = models.StatusEmpty
		return nil
	}

	correlationKey := source.OutputKey(step.CorrelationFile)
	if err := s.outputStore.PutCorrelation(ctx, correlationKey, step.ValueHeader, correlation.Records); err != nil {
		return errInternalOutputFailed(err)
	}
	result.CorrelationKey = correlationKey

	table := series.Pivot(correlation.Records)
	result.SeriesRows = table.Len()
	result.Overwrites = table.Overwrites
	if table.Overwrites > 0 {
		metricSeriesOverwritesTotal.WithLabelValues(source.Name).Add(float64(table.Overwrites))
		logger.Warn().Int("overwrites", table.Overwrites).
			Msg("several samples share a timestamp and region; the last one was kept")
	}
	seriesKey := source.OutputKey(step.SeriesFile())
	if err := s.outputStore.PutSeries(ctx, seriesKey, table); err != nil {
		return errInternalOutputFailed(err)
	}
	result.SeriesKey = seriesKey

	schema := schemas.Build(step.Table, table.TimeColumn, table.Regions, path.Join(s.opts.CopyRoot, seriesKey))
	schemaKey := source.OutputKey(step.SchemaFile())
	if err := s.outputStore.PutSchema(ctx, schemaKey, schema); err != nil {
		return errInternalOutputFailed(err)
	}
	result.SchemaKey = schemaKey
	result.Status = models.StatusWritten

	if s.opts.Loader != nil {
		if err := s.opts.Loader.Load(ctx, schema, table); err != nil {
			return errInternalLoaderFailed(err)
		}
		result.Loaded = true
	}
	return nil
}
