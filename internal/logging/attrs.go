package logging

import (
	"context"
	"log/slog"
	"slices"
	"time"
)

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Duration(key string, value time.Duration) slog.Attr { return slog.Duration(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Int64(key string, value int64) slog.Attr { return slog.Int64(key, value) }

func String(key string, value string) slog.Attr { return slog.String(key, value) }

// Error records err under the "error" key. A nil error is logged as "<nil>"
// so the key is always present on failure events.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger tags logger with the component field. A nil logger
// yields a no-op logger.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

const defaultErrorHint = "check logs for details"

// WarnWithContext logs a degraded-path warning. event_type, error_hint and
// impact are filled in when the caller did not supply them.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...slog.Attr) {
	logEvent(logger, slog.LevelWarn, msg, eventType, attrs,
		String(FieldErrorHint, defaultErrorHint),
		String(FieldImpact, "operation completed with warnings"))
}

// ErrorWithContext logs a failure with event_type and error_hint filled in.
func ErrorWithContext(logger *slog.Logger, msg, eventType string, attrs ...slog.Attr) {
	logEvent(logger, slog.LevelError, msg, eventType, attrs,
		String(FieldErrorHint, defaultErrorHint))
}

func logEvent(logger *slog.Logger, level slog.Level, msg, eventType string, attrs []slog.Attr, defaults ...slog.Attr) {
	if logger == nil {
		return
	}
	defaults = append([]slog.Attr{String(FieldEventType, eventType)}, defaults...)
	for _, d := range defaults {
		if !slices.ContainsFunc(attrs, func(a slog.Attr) bool { return a.Key == d.Key }) {
			attrs = append(attrs, d)
		}
	}
	logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// NoopHandler discards all log output.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }
