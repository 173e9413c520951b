package logging

import (
	"context"
	"log/slog"

	"marquee/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType classifies a log line for filtering (e.g. cache_hit).
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step an operator should take.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldCorrelationID is the standardized structured logging key for request correlation identifiers.
	FieldCorrelationID = "correlation_id"
	// FieldUserID identifies the chat user a request was made for.
	FieldUserID = "user_id"
	// FieldLanguage is the catalog language tag of a request.
	FieldLanguage = "language"
	// FieldMediaKind is "movie" or "tv".
	FieldMediaKind = "media_kind"
	// FieldMediaID is the catalog identifier of a title.
	FieldMediaID = "media_id"
	// FieldCacheKey is the composite key of a cache entry.
	FieldCacheKey = "cache_key"
	// FieldCollection names a cache store collection.
	FieldCollection = "collection"
	// FieldService names the emitting service on JSON lines.
	FieldService = "service"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if rid, ok := services.RequestIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, rid))
	}
	if uid, ok := services.UserIDFromContext(ctx); ok {
		fields = append(fields, slog.Int64(FieldUserID, uid))
	}
	if lang, ok := services.LanguageFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldLanguage, lang))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
