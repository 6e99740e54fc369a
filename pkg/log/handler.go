package log

import (
	"context"
	"log/slog"

	cockroach "github.com/cockroachdb/errors"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// ErrFmtHandler is a slog handler that expands errors logged under ErrAttrKey
// into a stacktrace attribute and an error.code attribute.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps a slog handler with ErrFmtHandler.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{
		handler: handler,
	}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var logged error
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == ErrAttrKey {
			if err, ok := attr.Value.Any().(error); ok {
				logged = err
			}
			return false
		}
		return true
	})
	if logged != nil {
		if st := extractStacktrace(logged); st != "" {
			r.AddAttrs(slog.String(StacktraceAttrKey, st))
		}
		if code := ErrorCode(logged); code != "" {
			r.AddAttrs(slog.String(ErrorCodeKey, code))
		}
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(g)}
}

// ErrorCode maps an error to one of the standard error codes, or "" if it
// belongs to none of the curvefit error kinds.
func ErrorCode(err error) string {
	var notFitted *errors.NotFittedError
	switch {
	case errors.Is(err, errors.ErrInvalidInput):
		return ErrorInvalidInput
	case errors.Is(err, errors.ErrInvalidParameter):
		return ErrorInvalidParameter
	case errors.Is(err, errors.ErrComputationFailed):
		return ErrorComputationFailed
	case errors.As(err, &notFitted):
		return ErrorNotFitted
	}
	return ""
}

func extractStacktrace(err error) string {
	safeDetails := cockroach.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
