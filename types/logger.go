package types

// Logger defines methods for structured logging.
//
// The signature is compatible with zap.SugaredLogger and similar structured
// loggers; every method takes a message followed by alternating key-value
// pairs.
type Logger interface {
	// Debug logs a message at debug level with optional key-value fields.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at info level with optional key-value fields.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at warn level with optional key-value fields.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at error level with optional key-value fields.
	Error(msg string, keysAndValues ...any)

	// Fatal logs a message at fatal level and terminates the process.
	Fatal(msg string, keysAndValues ...any)
}
