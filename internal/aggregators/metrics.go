package aggregators

import (
	"binop-stats/internal/shared/metrics"
)

var (
	// metricSamplesAggregatedTotal counts samples folded into the aggregate table, per operation.
	metricSamplesAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "samples_aggregated_total",
		},
		[]string{"op"},
	)

	// metricAggregationDuration observes the wall time of one Aggregate call, open to close.
	// The error_code label is empty for successful runs.
	metricAggregationDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)
)
