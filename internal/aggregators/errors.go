package aggregators

import (
	"fmt"

	"binop-stats/internal/shared/svcerrors"
)

const (
	codeLogFileNotFound = "AGG_1000"
	codeInvalidLogPath  = "AGG_1001"

	codeInternalLogOpenFailed      = "AGG_9000"
	codeInternalLogReadFailed      = "AGG_9001"
	codeInternalSampleRollupFailed = "AGG_9002"
)

// errLogFileNotFound returns an error when the log file does not exist.
func errLogFileNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeLogFileNotFound, "log file not found", cause)
}

// errInvalidLogPath returns an error when the log path cannot name a readable file.
func errInvalidLogPath(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidLogPath, "invalid log path", cause)
}

// errInternalLogOpenFailed returns an error when opening the log fails for any other reason.
func errInternalLogOpenFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogOpenFailed, fmt.Errorf("logOpenFailed: %w", cause))
}

// errInternalLogReadFailed returns an error when reading the log fails mid-scan.
func errInternalLogReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogReadFailed, fmt.Errorf("logReadFailed: %w", cause))
}

// errInternalSampleRollupFailed returns an error when a sample cannot be folded into the table.
func errInternalSampleRollupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSampleRollupFailed, fmt.Errorf("sampleRollupFailed: %w", cause))
}
