package media

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrMalformedHit reports a search hit without a media_type or id.
var ErrMalformedHit = errors.New("malformed search hit")

// Hit is one multi-search entry. Field order and kind-specific fields are
// preserved exactly as the catalog sent them.
type Hit struct {
	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// NewHit builds a hit from key/value pairs; values are marshalled to JSON.
func NewHit(pairs ...any) (Hit, error) {
	h := Hit{fields: orderedmap.New[string, json.RawMessage]()}
	if len(pairs)%2 != 0 {
		return Hit{}, errors.New("hit pairs must be key/value")
	}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return Hit{}, fmt.Errorf("hit key %v is not a string", pairs[i])
		}
		raw, err := json.Marshal(pairs[i+1])
		if err != nil {
			return Hit{}, fmt.Errorf("marshal hit field %q: %w", key, err)
		}
		h.fields.Set(key, raw)
	}
	return h, nil
}

func (h Hit) MarshalJSON() ([]byte, error) {
	if h.fields == nil {
		return []byte("{}"), nil
	}
	return h.fields.MarshalJSON()
}

func (h *Hit) UnmarshalJSON(data []byte) error {
	fields := orderedmap.New[string, json.RawMessage]()
	if err := fields.UnmarshalJSON(data); err != nil {
		return err
	}
	h.fields = fields
	return nil
}

// Len returns the number of fields.
func (h Hit) Len() int {
	if h.fields == nil {
		return 0
	}
	return h.fields.Len()
}

// Keys returns field names in arrival order.
func (h Hit) Keys() []string {
	if h.fields == nil {
		return nil
	}
	keys := make([]string, 0, h.fields.Len())
	for pair := h.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Get returns the raw JSON of a field.
func (h Hit) Get(key string) (json.RawMessage, bool) {
	if h.fields == nil {
		return nil, false
	}
	return h.fields.Get(key)
}

// String decodes a string field; missing or non-string fields yield "".
func (h Hit) String(key string) string {
	raw, ok := h.Get(key)
	if !ok {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}

// MediaType returns the raw media_type value.
func (h Hit) MediaType() (string, error) {
	raw, ok := h.Get("media_type")
	if !ok {
		return "", fmt.Errorf("%w: missing media_type", ErrMalformedHit)
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("%w: media_type: %v", ErrMalformedHit, err)
	}
	return value, nil
}

// ID returns the catalog id of the hit.
func (h Hit) ID() (int64, error) {
	raw, ok := h.Get("id")
	if !ok {
		return 0, fmt.Errorf("%w: missing id", ErrMalformedHit)
	}
	var value int64
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, fmt.Errorf("%w: id: %v", ErrMalformedHit, err)
	}
	return value, nil
}

// Enrich returns a copy of h with every top-level field of doc that h does
// not already carry appended in doc's order. Fields already on the hit win.
func (h Hit) Enrich(doc json.RawMessage) (Hit, error) {
	extra := orderedmap.New[string, json.RawMessage]()
	if len(bytes.TrimSpace(doc)) > 0 {
		if err := extra.UnmarshalJSON(doc); err != nil {
			return Hit{}, fmt.Errorf("decode enrichment: %w", err)
		}
	}
	out := Hit{fields: orderedmap.New[string, json.RawMessage](h.Len() + extra.Len())}
	if h.fields != nil {
		for pair := h.fields.Oldest(); pair != nil; pair = pair.Next() {
			out.fields.Set(pair.Key, pair.Value)
		}
	}
	for pair := extra.Oldest(); pair != nil; pair = pair.Next() {
		if _, exists := out.fields.Get(pair.Key); exists {
			continue
		}
		out.fields.Set(pair.Key, pair.Value)
	}
	return out, nil
}
