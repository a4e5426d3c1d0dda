package aggregators

import (
	"power-analytics/internal/shared/metrics"
)

// metricSignalAggregatedTotal counts signal aggregations by outcome.
//
// error_code is empty for signals that were written or had nothing to write,
// and holds the AGG_* code otherwise. A run over an input directory without
// the signal's files records error_code="AGG_1000".
var (
	metricSignalAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "signal_aggregated_total",
		},
		[]string{metrics.FieldSource, metrics.FieldSignal, metrics.FieldErrorCode},
	)

	// metricRowsWrittenTotal counts output rows per signal.
	metricRowsWrittenTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "rows_written_total",
		},
		[]string{metrics.FieldSource, metrics.FieldSignal},
	)
)
