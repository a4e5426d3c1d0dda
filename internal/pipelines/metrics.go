package pipelines

import (
	"power-analytics/internal/shared/metrics"
)

// metricRunDurationSeconds observes whole runs; outcome is ok, failed or no_input.
var (
	metricRunDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRun,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"outcome"},
	)
)
