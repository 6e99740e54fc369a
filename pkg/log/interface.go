// Package log provides a structured logging interface for curvefit operations.
//
// The Logger interface is slog-compatible so callers can plug in any backend.
// The default backend is zerolog; SetupLogger installs a JSON log/slog handler
// for programs that prefer the standard library's default logger.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("polyfit").With(
//	    log.DegreeKey, 3,
//	    log.RegularizationKey, 1e-3,
//	)
//	logger.Info("Fit completed",
//	    log.SamplesKey, 10,
//	    log.TrainRMSKey, 0.12,
//	)

package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are passed as alternating key/value pairs. With returns a child
// logger carrying pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	// Per-grid-point fit results are logged at this level.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	//
	// Example:
	//   logger.Info("Sweep completed",
	//       log.GridSizeKey, 40,
	//       log.ValidationRMSKey, 0.21,
	//   )
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// An error value passed under the "error" key keeps its stack trace.
	//
	// Example:
	//   logger.Error("Fit failed",
	//       "error", err,
	//       log.OperationKey, log.OperationFit,
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider defines an interface for creating and configuring loggers.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a specific component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
