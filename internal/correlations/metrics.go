package correlations

import (
	"power-analytics/internal/shared/metrics"
)

const (
	matchRegion  = "region"
	matchUnknown = "unknown"
	matchSkipped = "skipped"
)

// metricSamplesCorrelatedTotal counts samples by join outcome: attributed to a
// region, attributed to the Unknown Region, or skipped for lack of a timestamp.
var (
	metricSamplesCorrelatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCorrelation,
			Name:      "samples_correlated_total",
		},
		[]string{metrics.FieldSource, "match"},
	)

	// metricSeriesOverwritesTotal counts series cells written more than once.
	// Only the last write is kept, so a non-zero rate means lost samples.
	metricSeriesOverwritesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCorrelation,
			Name:      "series_overwrites_total",
		},
		[]string{metrics.FieldSource},
	)

	metricCorrelationTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCorrelation,
			Name:      "correlation_total",
		},
		[]string{metrics.FieldSource, metrics.FieldErrorCode},
	)
)
