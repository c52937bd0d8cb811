package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryNotFound        = "not_found"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalPanic = "SYS_9000"
)

const (
	ExitCodeOK      = 0
	ExitCodeFailure = 1
	ExitCodeUsage   = 2
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidArgument,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeFailure,
	}
}

// NewUsageError creates a new ServiceError with category invalid_argument
// that terminates the process with the usage exit code.
func NewUsageError(code, message string) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidArgument,
		Code:     code,
		Message:  message,
		ExitCode: ExitCodeUsage,
	}
}

// NewNotFoundError creates a new ServiceError with category not_found.
func NewNotFoundError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryNotFound,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeFailure,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
		ExitCode: ExitCodeFailure,
	}
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // invalid_argument, not_found or internal
	Code     string // service-owned stable code (e.g. AGG_1000)
	Message  string // human-readable, printed on stderr
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit status
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

func (e *ServiceError) IsNotFound() bool {
	return e.Category == categoryNotFound
}
