package api

import (
	"encoding/json"
	"strings"
)

// rawField extracts a string field from a raw detail payload.
func rawField(raw map[string]json.RawMessage, field, fallback string) string {
	value, ok := raw[field]
	if !ok {
		return fallback
	}
	var decoded string
	if err := json.Unmarshal(value, &decoded); err != nil {
		return fallback
	}
	if decoded = strings.TrimSpace(decoded); decoded == "" {
		return fallback
	}
	return decoded
}

// rawTitle returns the movie title or series name.
func rawTitle(raw map[string]json.RawMessage) string {
	if title := rawField(raw, "title", ""); title != "" {
		return title
	}
	return rawField(raw, "name", "")
}
