package aggregators

import (
	"context"
	"errors"

	"power-analytics/internal/frames"
	"power-analytics/internal/models"
	"power-analytics/internal/shared/loggers"
	"power-analytics/internal/shared/metrics"
	"power-analytics/internal/shared/svcerrors"
	"power-analytics/internal/sources"
	"power-analytics/internal/stats"
	"power-analytics/internal/stores"
	"power-analytics/internal/timestamps"
	"power-analytics/internal/windows"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Aggregate processes one signal of source. The result is always returned and
	// describes the outcome, including when an error is returned alongside it.
	Aggregate(ctx context.Context, source *sources.Source, signal sources.Signal) (*models.SignalResult, *svcerrors.ServiceError)
}

type aggregationService struct {
	signalReducer SignalReducer
	inputStore    stores.InputStore
	outputStore   stores.OutputStore
}

func NewAggregationService(signalReducer SignalReducer, inputStore stores.InputStore, outputStore stores.OutputStore) AggregationService {
	return &aggregationService{signalReducer: signalReducer, inputStore: inputStore, outputStore: outputStore}
}

func (s *aggregationService) Aggregate(ctx context.Context, source *sources.Source, signal sources.Signal) (*models.SignalResult, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldSignal, signal.Name).Logger()
	ctx = logger.WithContext(ctx)

	result := &models.SignalResult{Signal: signal.Name}
	svcErr := s.aggregate(ctx, source, signal, result)
	if svcErr != nil {
		result.Status = models.StatusFailed
		if svcErr.IsMissingInput() {
			result.Status = models.StatusSkipped
		}
		result.ErrorCode = svcErr.Code
		result.Message = svcErr.Error()
		metricSignalAggregatedTotal.WithLabelValues(source.Name, signal.Name, svcErr.Code).Inc()
		return result, svcErr
	}

	metricSignalAggregatedTotal.WithLabelValues(source.Name, signal.Name, metrics.ValueNoError).Inc()
	metricRowsWrittenTotal.WithLabelValues(source.Name, signal.Name).Add(float64(result.Rows))
	logger.Info().
		Int(loggers.FieldFileCount, result.Files).
		Int(loggers.FieldRows, result.Rows).
		Str(loggers.FieldFileKey, result.OutputKey).
		Msgf("signal %s", result.Status)
	return result, nil
}

func (s *aggregationService) aggregate(ctx context.Context, source *sources.Source, signal sources.Signal, result *models.SignalResult) *svcerrors.ServiceError {
	keys, err := s.inputStore.List(ctx, source.InputDir, signal.Pattern)
	if err != nil {
		return errInternalInputFailed(err)
	}
	result.Files = len(keys)
	if len(keys) == 0 {
		return errMissingInput(source.InputDir, signal.Pattern)
	}
	loggers.Ctx(ctx).Debug().Int(loggers.FieldFileCount, len(keys)).Msg("started aggregating signal")

	key := source.OutputKey(signal.Output)
	if signal.Kind == sources.KindStats {
		return s.aggregateStats(ctx, key, keys, result)
	}

	input, err := s.inputStore.LoadFrame(ctx, keys)
	if err != nil {
		if errors.Is(err, frames.ErrMalformedRow) {
			return errMalformedInput(err)
		}
		return errInternalInputFailed(err)
	}
	out, err := s.signalReducer.Reduce(signal, source.Window, input)
	if err != nil {
		if isMissingColumn(err) {
			return errMissingColumn(err)
		}
		return errInternalReducerFailed(err)
	}
	if out.IsEmpty() {
		result.Status = models.StatusEmpty
		return nil
	}
	if err := s.outputStore.PutFrame(ctx, key, out); err != nil {
		return errInternalOutputFailed(err)
	}
	result.Status = models.StatusWritten
	result.Rows = out.Len()
	result.OutputKey = key
	return nil
}

func (s *aggregationService) aggregateStats(ctx context.Context, key string, keys []string, result *models.SignalResult) *svcerrors.ServiceError {
	records, err := s.inputStore.LoadStats(ctx, keys)
	if err != nil {
		return errInternalInputFailed(err)
	}
	values := stats.Mean(records)
	if len(values) == 0 {
		result.Status = models.StatusEmpty
		return nil
	}
	if err := s.outputStore.PutStats(ctx, key, values); err != nil {
		return errInternalOutputFailed(err)
	}
	result.Status = models.StatusWritten
	result.Rows = len(values)
	result.OutputKey = key
	return nil
}

func isMissingColumn(err error) bool {
	return errors.Is(err, frames.ErrMissingColumns) ||
		errors.Is(err, timestamps.ErrNoTimestamp) ||
		errors.Is(err, windows.ErrInvalidTimeColumn)
}
