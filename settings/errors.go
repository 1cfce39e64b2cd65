package settings

import "errors"

// Validation errors returned by [Settings.Validate], wrapped in a
// KindConfig *errs.Error.
var (
	// ErrInvalidLoggingConfigs indicates a log level zerolog cannot parse.
	ErrInvalidLoggingConfigs = errors.New("invalid logging configuration")
	// ErrInvalidDatabaseConfigs indicates a database URL without a scheme.
	ErrInvalidDatabaseConfigs = errors.New("invalid database configuration")
	// ErrInvalidTracingConfigs indicates an OTLP endpoint that is not an
	// absolute URL.
	ErrInvalidTracingConfigs = errors.New("invalid tracing configuration")
)
