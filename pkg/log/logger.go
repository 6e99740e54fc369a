package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// SetupLogger configures process-wide logging.
//
// It installs a JSON slog handler (wrapped by ErrFmtHandler so cockroachdb
// stack traces are emitted) as the slog default, replaces the global provider
// with a zerolog provider at the same level, and routes errors.Warn through
// zerolog.
func SetupLogger(loglevel string) {
	setupLogger(os.Stdout, ToLogLevel(loglevel))
}

func setupLogger(w io.Writer, level Level) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     slog.Level(level),
		// Replace attributes to convert to CloudLogging format.
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{
					Key:   "severity",
					Value: attr.Value,
				}
			case slog.MessageKey:
				attr = slog.Attr{
					Key:   "message",
					Value: attr.Value,
				}
			case slog.SourceKey:
				attr = slog.Attr{
					Key:   "logging.googleapis.com/sourceLocation",
					Value: attr.Value,
				}
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(w, &ops)
	slog.SetDefault(slog.New(WrapByErrFmtHandler(handler)))

	SetLoggerProvider(NewZerologProvider(w, level))

	warnLogger := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		event := warnLogger.Warn()
		var m zerolog.LogObjectMarshaler
		if errors.As(warning, &m) {
			event = event.EmbedObject(m)
		}
		event.Msg(warning.Error())
	})
}

// ParseLevel converts a level name to a Level.
func ParseLevel(level string) (Level, error) {
	switch level {
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, errors.NewInvalidParameterError("log-level", "must be one of debug, info, warn, error", level)
	}
}

// ToLogLevel is ParseLevel for trusted input; it panics on unknown names.
func ToLogLevel(level string) Level {
	l, err := ParseLevel(level)
	if err != nil {
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
	return l
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
