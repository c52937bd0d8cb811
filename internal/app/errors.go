package app

import (
	"fmt"

	"binop-stats/internal/shared/svcerrors"
)

const (
	codeMissingLogFileArgument = "APP_1000"

	codeInternalReportWriteFailed = "APP_9000"
)

// errMissingLogFileArgument returns an error when the log file argument is absent.
func errMissingLogFileArgument() *svcerrors.ServiceError {
	return svcerrors.NewUsageError(codeMissingLogFileArgument, "missing log file argument")
}

// errInternalReportWriteFailed returns an error when the report cannot be written to stdout.
func errInternalReportWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportWriteFailed, fmt.Errorf("reportWriteFailed: %w", cause))
}
