// Package pipelines drives a run over the selected sources.
package pipelines

import (
	"context"
	"sort"
	"sync"
	"time"

	"power-analytics/internal/aggregators"
	"power-analytics/internal/correlations"
	"power-analytics/internal/models"
	"power-analytics/internal/shared/loggers"
	"power-analytics/internal/shared/svcerrors"
	"power-analytics/internal/shared/ulid"
	"power-analytics/internal/sources"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=runner.go -destination=./mocks/runner_mock.go -package=mocks
type Runner interface {
	// Run processes the named sources, or every configured source when names is
	// empty. A report is returned whenever the run started.
	Run(ctx context.Context, names []string) (*models.RunReport, *svcerrors.ServiceError)
}

type runner struct {
	sources            []sources.Source
	aggregationService aggregators.AggregationService
	correlationService correlations.CorrelationService
	parallelism        int

	mu sync.Mutex
}

func NewRunner(configured []sources.Source, aggregationService aggregators.AggregationService, correlationService correlations.CorrelationService, parallelism int) Runner {
	if parallelism < 1 {
		parallelism = 1
	}
	return &runner{
		sources:            configured,
		aggregationService: aggregationService,
		correlationService: correlationService,
		parallelism:        parallelism,
	}
}

func (r *runner) Run(ctx context.Context, names []string) (*models.RunReport, *svcerrors.ServiceError) {
	selected, svcErr := r.selectSources(names)
	if svcErr != nil {
		return nil, svcErr
	}
	if !r.mu.TryLock() {
		return nil, errRunInProgress()
	}
	defer r.mu.Unlock()

	report := &models.RunReport{RunID: ulid.NewULID(), StartedAt: time.Now().UTC()}
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldRunID, report.RunID).Logger()
	ctx = logger.WithContext(ctx)
	logger.Info().Strs("sources", sources.Names(selected)).Msg("run started")

	var failures error
	for i := range selected {
		if err := ctx.Err(); err != nil {
			failures = multierr.Append(failures, err)
			break
		}
		sourceReport, err := r.runSource(ctx, &selected[i])
		report.Sources = append(report.Sources, sourceReport)
		failures = multierr.Append(failures, err)
	}

	report.FinishedAt = time.Now().UTC()
	elapsed := report.FinishedAt.Sub(report.StartedAt)
	metricRunDurationSeconds.WithLabelValues(outcome(report, failures)).Observe(elapsed.Seconds())

	if failures != nil {
		errs := multierr.Errors(failures)
		logger.Error().Err(failures).Int("failures", len(errs)).Dur(loggers.FieldDuration, elapsed).Msg("run finished with failures")
	} else {
		logger.Info().Dur(loggers.FieldDuration, elapsed).Msg("run finished")
	}

	if !report.FoundInput() {
		return report, errNoInput(sources.Names(selected))
	}
	return report, nil
}

func (r *runner) selectSources(names []string) ([]sources.Source, *svcerrors.ServiceError) {
	if len(names) == 0 {
		return r.sources, nil
	}
	byName := make(map[string]sources.Source, len(r.sources))
	for _, s := range r.sources {
		byName[s.Name] = s
	}
	selected := make([]sources.Source, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, errUnknownSource(name, sources.Names(r.sources))
		}
		selected = append(selected, s)
	}
	return selected, nil
}

type indexedResult struct {
	index  int
	result *models.SignalResult
	err    *svcerrors.ServiceError
}

// runSource aggregates every signal of source on a bounded pool, then runs the
// correlation step. The returned error combines the internal failures only;
// missing input and bad input are reported, not propagated.
func (r *runner) runSource(ctx context.Context, source *sources.Source) (models.SourceReport, error) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldSource, source.Name).Logger()
	ctx = logger.WithContext(ctx)
	report := models.SourceReport{Source: source.Name, Window: source.Window}

	p := pool.NewWithResults[indexedResult]().WithMaxGoroutines(r.parallelism)
	for i, signal := range source.Signals {
		i, signal := i, signal
		p.Go(func() indexedResult {
			result, svcErr := r.aggregationService.Aggregate(ctx, source, signal)
			return indexedResult{index: i, result: result, err: svcErr}
		})
	}
	results := p.Wait()
	sort.Slice(results, func(a, b int) bool { return results[a].index < results[b].index })

	var failures error
	for _, res := range results {
		if res.result != nil {
			report.Signals = append(report.Signals, *res.result)
		}
		failures = multierr.Append(failures, r.record(ctx, res.err))
	}

	correlation, svcErr := r.correlationService.Correlate(ctx, source)
	report.Correlation = correlation
	failures = multierr.Append(failures, r.record(ctx, svcErr))
	return report, failures
}

// record logs svcErr at the level its category deserves and returns it only
// when it is internal.
func (r *runner) record(ctx context.Context, svcErr *svcerrors.ServiceError) error {
	if svcErr == nil {
		return nil
	}
	logger := loggers.Ctx(ctx)
	switch {
	case svcErr.IsInternalError():
		logger.Error().Err(svcErr.Cause).Str(loggers.FieldErrorCode, svcErr.Code).Msg(svcErr.Message)
		return svcErr
	case svcErr.IsMissingInput():
		logger.Warn().Str(loggers.FieldErrorCode, svcErr.Code).Msg(svcErr.Message)
	default:
		logger.Error().Err(svcErr.Cause).Str(loggers.FieldErrorCode, svcErr.Code).Msg(svcErr.Message)
	}
	return nil
}

func outcome(report *models.RunReport, failures error) string {
	switch {
	case failures != nil || report.Failures() > 0:
		return "failed"
	case !report.FoundInput():
		return "no_input"
	default:
		return "ok"
	}
}
