package pipelines_test

import (
	"context"
	"errors"
	"testing"

	aggregatormocks "power-analytics/internal/aggregators/mocks"
	correlationmocks "power-analytics/internal/correlations/mocks"
	"power-analytics/internal/models"
	"power-analytics/internal/pipelines"
	"power-analytics/internal/shared/svcerrors"
	"power-analytics/internal/sources"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	aggregation *aggregatormocks.MockAggregationService
	correlation *correlationmocks.MockCorrelationService
	runner      pipelines.Runner
	sources     []sources.Source
}

func newFixture(t *testing.T, parallelism int) *fixture {
	ctrl := gomock.NewController(t)
	configured := sources.Catalog(20)
	f := &fixture{
		aggregation: aggregatormocks.NewMockAggregationService(ctrl),
		correlation: correlationmocks.NewMockCorrelationService(ctrl),
		sources:     configured,
	}
	f.runner = pipelines.NewRunner(configured, f.aggregation, f.correlation, parallelism)
	return f
}

// written answers every Aggregate call with a written result for one file.
func written(_ context.Context, _ *sources.Source, signal sources.Signal) (*models.SignalResult, *svcerrors.ServiceError) {
	return &models.SignalResult{Signal: signal.Name, Status: models.StatusWritten, Files: 1, Rows: 1}, nil
}

func TestRun_AllSourcesInCatalogOrder(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 4)
	f.aggregation.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(written).AnyTimes()
	f.correlation.EXPECT().Correlate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sources.Source) (*models.CorrelationResult, *svcerrors.ServiceError) {
			return &models.CorrelationResult{Status: models.StatusWritten, SampleFiles: 1, RegionFiles: 1}, nil
		}).Times(3)

	report, svcErr := f.runner.Run(context.Background(), nil)
	require.Nil(t, svcErr)

	require.Len(t, report.Sources, 3)
	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.FinishedAt.Before(report.StartedAt))
	for i, source := range f.sources {
		got := report.Sources[i]
		assert.Equal(t, source.Name, got.Source)
		require.Len(t, got.Signals, len(source.Signals))
		for j, signal := range source.Signals {
			assert.Equal(t, signal.Name, got.Signals[j].Signal, "signal results keep catalog order")
		}
		assert.Equal(t, models.StatusWritten, got.Correlation.Status)
	}
	assert.Equal(t, 0, report.Failures())
}

func TestRun_SelectedSources(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 1)
	var seen []string
	f.aggregation.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, source *sources.Source, signal sources.Signal) (*models.SignalResult, *svcerrors.ServiceError) {
			seen = append(seen, source.Name)
			return written(ctx, source, signal)
		}).AnyTimes()
	f.correlation.EXPECT().Correlate(gomock.Any(), gomock.Any()).Return(nil, nil)

	report, svcErr := f.runner.Run(context.Background(), []string{sources.NvmlEnergy})
	require.Nil(t, svcErr)
	require.Len(t, report.Sources, 1)
	assert.Equal(t, sources.NvmlEnergy, report.Sources[0].Source)
	assert.Nil(t, report.Sources[0].Correlation)
	for _, name := range seen {
		assert.Equal(t, sources.NvmlEnergy, name)
	}
}

func TestRun_UnknownSource(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 1)

	report, svcErr := f.runner.Run(context.Background(), []string{"rapl"})
	require.NotNil(t, svcErr)
	assert.Nil(t, report)
	assert.Equal(t, "RUN_1000", svcErr.Code)
	assert.Equal(t, 400, svcErr.HttpStatusCode)
	assert.Contains(t, svcErr.Message, "rapl")
}

func TestRun_NoInputAnywhere(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 2)
	f.aggregation.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sources.Source, signal sources.Signal) (*models.SignalResult, *svcerrors.ServiceError) {
			return &models.SignalResult{Signal: signal.Name, Status: models.StatusSkipped, ErrorCode: "AGG_1000"},
				svcerrors.NewMissingInputError("AGG_1000", "no input files", nil)
		}).AnyTimes()
	f.correlation.EXPECT().Correlate(gomock.Any(), gomock.Any()).
		Return(&models.CorrelationResult{Status: models.StatusSkipped}, svcerrors.NewMissingInputError("COR_1000", "no sample files", nil)).
		AnyTimes()

	report, svcErr := f.runner.Run(context.Background(), nil)
	require.NotNil(t, svcErr)
	assert.Equal(t, "RUN_1001", svcErr.Code)
	require.NotNil(t, report, "the report is returned with the error")
	assert.Len(t, report.Sources, 3)
	assert.False(t, report.FoundInput())
}

func TestRun_FailuresDoNotAbortOtherSources(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 3)
	f.aggregation.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, source *sources.Source, signal sources.Signal) (*models.SignalResult, *svcerrors.ServiceError) {
			if source.Name == sources.NvmlPower && signal.Name == "nvml_absolute" {
				return &models.SignalResult{Signal: signal.Name, Status: models.StatusFailed, Files: 1, ErrorCode: "AGG_9001"},
					svcerrors.NewInternalError("AGG_9001", errors.New("disk full"))
			}
			return written(ctx, source, signal)
		}).AnyTimes()
	f.correlation.EXPECT().Correlate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, source *sources.Source) (*models.CorrelationResult, *svcerrors.ServiceError) {
			if source.Name == sources.Variorum {
				return &models.CorrelationResult{Status: models.StatusFailed, SampleFiles: 1, RegionFiles: 1, ErrorCode: "COR_1001"},
					svcerrors.NewFailedPreconditionError("COR_1001", "no usable timestamp column in samples", nil)
			}
			return &models.CorrelationResult{Status: models.StatusWritten, SampleFiles: 1, RegionFiles: 1}, nil
		}).Times(3)

	report, svcErr := f.runner.Run(context.Background(), nil)
	require.Nil(t, svcErr, "per-source failures are reported, not returned")
	require.Len(t, report.Sources, 3)
	assert.Equal(t, 2, report.Failures())
	assert.Equal(t, models.StatusFailed, report.Sources[0].Signals[1].Status)
	assert.Equal(t, models.StatusWritten, report.Sources[1].Signals[0].Status)
	assert.Equal(t, models.StatusFailed, report.Sources[2].Correlation.Status)
}

func TestRun_RejectsConcurrentRun(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 1)
	started := make(chan struct{})
	release := make(chan struct{})
	first := true
	f.aggregation.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, source *sources.Source, signal sources.Signal) (*models.SignalResult, *svcerrors.ServiceError) {
			if first {
				first = false
				close(started)
				<-release
			}
			return written(ctx, source, signal)
		}).AnyTimes()
	f.correlation.EXPECT().Correlate(gomock.Any(), gomock.Any()).Return(nil, nil)

	done := make(chan *svcerrors.ServiceError)
	go func() {
		_, svcErr := f.runner.Run(context.Background(), []string{sources.NvmlEnergy})
		done <- svcErr
	}()
	<-started

	_, svcErr := f.runner.Run(context.Background(), []string{sources.NvmlEnergy})
	require.NotNil(t, svcErr)
	assert.Equal(t, "RUN_1002", svcErr.Code)
	assert.Equal(t, 409, svcErr.HttpStatusCode)

	close(release)
	assert.Nil(t, <-done)
}
