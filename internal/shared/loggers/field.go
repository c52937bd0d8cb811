package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldLogPath   = "log_path"

	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldLinesRead      = "lines_read"
	FieldSamples        = "samples"
	FieldDanglingStarts = "dangling_starts"
	FieldOversizedLines = "oversized_lines"
	FieldGroups         = "groups"
)
