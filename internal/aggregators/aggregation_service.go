package aggregators

import (
	"context"
	"errors"
	"time"

	"binop-stats/internal/ingestors"
	"binop-stats/internal/models"
	"binop-stats/internal/shared/loggers"
	"binop-stats/internal/shared/logsources"
	"binop-stats/internal/shared/metrics"
	"binop-stats/internal/shared/svcerrors"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Aggregate scans the log at path once and returns a table owned by the caller.
	Aggregate(ctx context.Context, path string) (*models.AggregateTable, *svcerrors.ServiceError)
}

type aggregationService struct {
	logSource      logsources.LogSource
	sampleScanner  ingestors.SampleScanner
	sampleRolluper SampleRolluper
	logger         loggers.Logger
}

func NewAggregationService(logSource logsources.LogSource, sampleScanner ingestors.SampleScanner, sampleRolluper SampleRolluper, logger loggers.Logger) AggregationService {
	return &aggregationService{
		logSource:      logSource,
		sampleScanner:  sampleScanner,
		sampleRolluper: sampleRolluper,
		logger:         logger,
	}
}

func (s *aggregationService) Aggregate(ctx context.Context, path string) (*models.AggregateTable, *svcerrors.ServiceError) {
	start := time.Now()
	table, svcErr := s.aggregate(ctx, path)

	errorCode := metrics.ValueNoError
	if svcErr != nil {
		errorCode = svcErr.Code
	}
	metricAggregationDuration.WithLabelValues(errorCode).Observe(time.Since(start).Seconds())

	return table, svcErr
}

func (s *aggregationService) aggregate(ctx context.Context, path string) (*models.AggregateTable, *svcerrors.ServiceError) {
	logger := s.logger
	logger.Debug().Str(loggers.FieldLogPath, path).Msg("started aggregating benchmark log")

	readCloser, err := s.logSource.Open(ctx, path)
	if err != nil {
		switch {
		case errors.Is(err, logsources.ErrFileNotFound):
			return nil, errLogFileNotFound(err)
		case errors.Is(err, logsources.ErrInvalidPath):
			return nil, errInvalidLogPath(err)
		default:
			return nil, errInternalLogOpenFailed(err)
		}
	}
	defer func() {
		if closeErr := readCloser.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Str(loggers.FieldLogPath, path).Msg("failed to close log file")
		}
	}()

	table := models.NewAggregateTable()
	var rollupErr error
	result, err := s.sampleScanner.Scan(ctx, readCloser, func(sample models.Sample) error {
		if rollupErr = s.sampleRolluper.Rollup(table, &sample); rollupErr != nil {
			return rollupErr
		}
		metricSamplesAggregatedTotal.WithLabelValues(sample.Op).Inc()
		return nil
	})
	if err != nil {
		if rollupErr != nil {
			return nil, errInternalSampleRollupFailed(rollupErr)
		}
		return nil, errInternalLogReadFailed(err)
	}

	logger.Debug().
		Int64(loggers.FieldLinesRead, result.LinesRead).
		Int64(loggers.FieldSamples, result.Samples).
		Int64(loggers.FieldDanglingStarts, result.DanglingStarts).
		Int64(loggers.FieldOversizedLines, result.OversizedLines).
		Int(loggers.FieldGroups, table.Len()).
		Msg("finished aggregating benchmark log")

	return table, nil
}
