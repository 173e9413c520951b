package logging

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// maxConsoleValue bounds a single console value; catalog payloads and
// overviews are cut to this many runes.
const maxConsoleValue = 160

// plainValue renders v without quoting, used for the component prefix.
func plainValue(v slog.Value) string {
	return valueText(v.Resolve())
}

// consoleValue renders v for the key=value tail of a console line.
func consoleValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindBool, slog.KindInt64, slog.KindUint64, slog.KindFloat64, slog.KindDuration, slog.KindTime:
		return valueText(v)
	}
	s := truncateRunes(valueText(v), maxConsoleValue)
	if needsQuotes(s) {
		return strconv.Quote(s)
	}
	return s
}

func valueText(v slog.Value) string {
	switch v.Kind() {
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindTime:
		return v.Time().UTC().Format(time.RFC3339)
	case slog.KindAny:
		switch x := v.Any().(type) {
		case error:
			return x.Error()
		case json.RawMessage:
			return string(x)
		case []byte:
			return string(x)
		default:
			return fmt.Sprint(x)
		}
	default:
		return v.String()
	}
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

func needsQuotes(s string) bool {
	if s == "" {
		return true
	}
	return strings.ContainsFunc(s, func(r rune) bool {
		return r <= ' ' || r == '=' || r == '"'
	})
}
