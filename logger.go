package muon

import "context"

// Logger is the output collaborator the instrumentation layer writes to.
// All methods are safe for concurrent use. Messages arrive pre-formatted;
// implementations perform the actual I/O.
type Logger interface {
	// Debug logs a message on the debug channel.
	Debug(ctx context.Context, msg string, fields ...Field)

	// Log logs a message on the standard (verbose) channel.
	Log(ctx context.Context, msg string, fields ...Field)

	// Warn logs a message on the warning channel.
	Warn(ctx context.Context, msg string, fields ...Field)

	// Error logs a failure message with its error.
	Error(ctx context.Context, err error, msg string, fields ...Field)

	// LogWithDebugParams logs msg on the standard channel; the extra
	// parameter text is appended only when the current level is debug.
	LogWithDebugParams(ctx context.Context, msg, params string, fields ...Field)

	// Level returns the current minimum level.
	Level() Level

	// SetLevel changes the level at runtime.
	SetLevel(level Level)

	// Sync flushes any buffered entries.
	// Applications should call Sync before exiting.
	Sync() error
}

// Field represents a structured logging field (key-value pair).
type Field struct {
	Key   string
	Value any
}

// F is a convenience constructor for Field.
//
//	logger.Log(ctx, "connected", muon.F("host", "localhost"), muon.F("port", 8080))
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field.
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field with the standard key "error".
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}
