package ingestors

import (
	"binop-stats/internal/shared/metrics"
)

const (
	lineKindStart      = "start"
	lineKindCompletion = "completion"
	lineKindIgnored    = "ignored"
)

var (
	// metricLinesScannedTotal counts scanned log lines by how they were classified.
	// Lines skipped while waiting for a completion line count as "ignored".
	metricLinesScannedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_scanned_total",
		},
		[]string{"line_kind"},
	)

	// metricDanglingStartsTotal counts start lines still waiting for their completion line at end of input.
	metricDanglingStartsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "dangling_starts_total",
		},
		[]string{"op"},
	)
)
