package ingestors

import "errors"

// ErrReadFailed wraps failures of the underlying reader, including lines longer than the configured limit.
var ErrReadFailed = errors.New("failed to read log")
