package app

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"binop-stats/internal/aggregators"
	"binop-stats/internal/ingestors"
	"binop-stats/internal/reports"
	"binop-stats/internal/shared/configs"
	"binop-stats/internal/shared/loggers"
	"binop-stats/internal/shared/logsources"
	"binop-stats/internal/shared/svcerrors"
	"binop-stats/internal/shared/ulid"
)

const (
	appName = "binopstats"
	usage   = "usage: binopstats <log-file>"
)

// App holds all application dependencies for one CLI invocation.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger

	aggregationService aggregators.AggregationService
	tableReporter      reports.TableReporter

	stdout io.Writer
	stderr io.Writer
}

// New creates and initializes a new App instance. The report goes to stdout, logs and diagnostics to stderr.
func New(config *configs.Config, stdout, stderr io.Writer) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// one App per CLI invocation
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Str(loggers.FieldRunID, ulid.NewRunID()).
		Logger()

	// Initialize aggregation service
	logSource := logsources.NewFileLogSource()
	ingestorLogger := appLogger.With().Str(loggers.FieldComponent, "ingestor").Logger()
	sampleScanner := ingestors.NewSampleScanner(config.Ingestion.Prefix, config.Ingestion.MaxLineBytes, ingestorLogger)
	sampleRolluper := aggregators.NewSampleRolluper()
	aggregatorLogger := appLogger.With().Str(loggers.FieldComponent, "aggregator").Logger()
	aggregationService := aggregators.NewAggregationService(logSource, sampleScanner, sampleRolluper, aggregatorLogger)

	// Initialize reporter
	reporterLogger := appLogger.With().Str(loggers.FieldComponent, "reporter").Logger()
	tableReporter := reports.NewTableReporter(reports.Layout{
		NumberWidth: config.Report.NumberWidth,
		Precision:   config.Report.Precision,
		OpWidth:     config.Report.OpWidth,
	}, reporterLogger)

	return &App{
		config:             config,
		appLogger:          appLogger,
		aggregationService: aggregationService,
		tableReporter:      tableReporter,
		stdout:             stdout,
		stderr:             stderr,
	}, nil
}

// Run aggregates the log named by args[0], prints the report and returns the process exit code.
// Arguments after the first are ignored.
func (app *App) Run(ctx context.Context, args []string) (exitCode int) {
	ctx = app.appLogger.WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("run panic recovered: %v", r)

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr, ok := svcerrors.AsServiceError(panicErr)
			if !ok {
				svcErr = svcerrors.NewInternalErrorPanic(panicErr)
			}
			exitCode = app.fail(ctx, svcErr)
		}
	}()

	if len(args) < 1 {
		fmt.Fprintln(app.stderr, usage)
		return app.fail(ctx, errMissingLogFileArgument())
	}
	if len(args) > 1 {
		loggers.Ctx(ctx).Debug().Msgf("ignoring %d extra argument(s)", len(args)-1)
	}
	logPath := args[0]

	start := time.Now()
	table, svcErr := app.aggregationService.Aggregate(ctx, logPath)
	if svcErr != nil {
		return app.fail(ctx, svcErr)
	}

	if err := app.tableReporter.Render(app.stdout, table); err != nil {
		return app.fail(ctx, errInternalReportWriteFailed(err))
	}

	loggers.Ctx(ctx).Info().
		Str(loggers.FieldLogPath, logPath).
		Int(loggers.FieldGroups, table.Len()).
		Dur(loggers.FieldDuration, time.Since(start)).
		Msg("report written")

	return svcerrors.ExitCodeOK
}

// fail reports svcErr on stderr and returns its exit code.
// Internal errors are logged at error level, a missing log file at warn level, usage errors at debug level.
func (app *App) fail(ctx context.Context, svcErr *svcerrors.ServiceError) int {
	fmt.Fprintf(app.stderr, "%s: %s\n", appName, svcErr.Error())

	logger := loggers.Ctx(ctx)
	event := logger.Debug()
	if svcErr.IsInternalError() {
		event = logger.Error()
	} else if svcErr.IsNotFound() {
		event = logger.Warn()
	}
	event.Str(loggers.FieldErrorCode, svcErr.Code).Err(svcErr.Cause).Msg(svcErr.Message)

	return svcErr.ExitCode
}
