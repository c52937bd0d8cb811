package ingestors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"binop-stats/internal/models"
	"binop-stats/internal/shared/loggers"
)

const defaultMaxLineBytes = 1024 * 1024

// ScanResult reports what a single Scan pass saw.
type ScanResult struct {
	LinesRead      int64
	StartLines     int64
	Samples        int64
	DanglingStarts int64
	OversizedLines int64
	OverflowTimes  int64
}

// IgnoredLines returns the number of lines that neither opened an event nor produced a sample.
// Oversized lines and completions with an out-of-range time are included.
func (r *ScanResult) IgnoredLines() int64 {
	return r.LinesRead - r.StartLines - r.Samples
}

//go:generate mockgen -source=sample_scanner.go -destination=./mocks/sample_scanner_mock.go -package=mocks
type SampleScanner interface {
	// Scan reads r once, front to back, and calls emit for every matched (start, completion) pair.
	// An error returned by emit stops the scan and is returned unchanged.
	Scan(ctx context.Context, r io.Reader, emit func(sample models.Sample) error) (*ScanResult, error)
}

type sampleScanner struct {
	matcher      *LineMatcher
	maxLineBytes int
	logger       loggers.Logger
}

// NewSampleScanner creates a scanner for lines of the given prefix. Lines longer than maxLineBytes
// are skipped; a non-positive maxLineBytes selects the 1 MiB default.
func NewSampleScanner(prefix string, maxLineBytes int, logger loggers.Logger) SampleScanner {
	if maxLineBytes <= 0 {
		maxLineBytes = defaultMaxLineBytes
	}
	return &sampleScanner{
		matcher:      NewLineMatcher(prefix),
		maxLineBytes: maxLineBytes,
		logger:       logger,
	}
}

// pendingStart is a start line waiting for the completion line of the same op.
type pendingStart struct {
	op    string
	param string
}

func (s *sampleScanner) Scan(ctx context.Context, r io.Reader, emit func(sample models.Sample) error) (*ScanResult, error) {
	result := &ScanResult{}
	defer recordScanMetrics(result)

	lines := newLineReader(r, s.maxLineBytes)
	var pending *pendingStart
	for {
		raw, oversized, err := lines.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, fmt.Errorf("%w after line %d: %w", ErrReadFailed, result.LinesRead, err)
		}
		result.LinesRead++

		if oversized {
			result.OversizedLines++
			s.logger.Debug().Msgf("skipped line %d longer than %d bytes", result.LinesRead, s.maxLineBytes)
			continue
		}
		line := string(raw)

		if pending == nil {
			op, rawParam, ok := s.matcher.MatchStart(line)
			if !ok {
				continue
			}
			pending = &pendingStart{op: op, param: NormalizeParam(rawParam)}
			result.StartLines++
			continue
		}

		// Everything up to the completion line of the pending op is skipped, other start lines included.
		msec, ok := s.matcher.MatchCompletion(pending.op, line)
		if !ok {
			continue
		}
		sample := models.Sample{Op: pending.op, Param: pending.param, Time: msec}
		pending = nil
		if math.IsInf(msec, 0) {
			result.OverflowTimes++
			s.logger.Debug().Msgf("dropped %s event with time out of float64 range at line %d", sample.Op, result.LinesRead)
			continue
		}
		if err := emit(sample); err != nil {
			return result, err
		}
		result.Samples++
	}

	if pending != nil {
		result.DanglingStarts++
		metricDanglingStartsTotal.WithLabelValues(pending.op).Inc()
		s.logger.Debug().Msgf("dropped start line for op %s without completion line (param: %s)", pending.op, pending.param)
	}

	return result, nil
}

func recordScanMetrics(result *ScanResult) {
	metricLinesScannedTotal.WithLabelValues(lineKindStart).Add(float64(result.StartLines))
	metricLinesScannedTotal.WithLabelValues(lineKindCompletion).Add(float64(result.Samples))
	metricLinesScannedTotal.WithLabelValues(lineKindIgnored).Add(float64(result.IgnoredLines()))
}
