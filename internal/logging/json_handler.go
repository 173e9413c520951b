package logging

import (
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// ServiceName is stamped on every JSON line.
	ServiceName = "marquee"

	jsonTimeLayout = "2006-01-02T15:04:05.000Z07:00"
)

func newJSONHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	opts := slog.HandlerOptions{Level: lvl, AddSource: addSource, ReplaceAttr: jsonReplaceAttr}
	return slog.NewJSONHandler(w, &opts).WithAttrs([]slog.Attr{String(FieldService, ServiceName)})
}

// jsonReplaceAttr rewrites the built-in keys: ts in UTC with millisecond
// precision, a lowercase level and source as file:line.
func jsonReplaceAttr(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	switch attr.Key {
	case slog.TimeKey:
		if attr.Value.Kind() == slog.KindTime {
			return slog.String("ts", attr.Value.Time().UTC().Format(jsonTimeLayout))
		}
		attr.Key = "ts"
	case slog.LevelKey:
		attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
	case slog.SourceKey:
		if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
			attr.Value = slog.StringValue(filepath.Base(src.File) + ":" + strconv.Itoa(src.Line))
		}
	}
	return attr
}
