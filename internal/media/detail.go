package media

import (
	"encoding/json"

	"github.com/samber/lo"
)

// Detail is the denormalized record merged from a title's detail and credits
// payloads. The zero value is the empty record returned whenever any upstream
// field is missing.
type Detail struct {
	Kind      Kind
	IMDbID    string
	Languages []string
	Genres    []string
	Casts     []string
	Directors []string
	Writers   []string
	// Year is set for movies, Year1 and Year2 for series.
	Year  string
	Year1 string
	Year2 string
	// Raw holds the full detail payload when requested. Its keys sit underneath
	// the normalized keys in the JSON form.
	Raw map[string]json.RawMessage
}

// IsEmpty reports whether d is the empty record.
func (d Detail) IsEmpty() bool {
	return !d.Kind.Valid()
}

func (d Detail) normalized() map[string]any {
	fields := map[string]any{
		"languages": nonNil(d.Languages),
		"genres":    nonNil(d.Genres),
		"casts":     nonNil(d.Casts),
		"directors": nonNil(d.Directors),
		"writers":   nonNil(d.Writers),
	}
	switch d.Kind {
	case KindMovie:
		fields["imdb_id"] = lo.EmptyableToPtr(d.IMDbID)
		fields["year"] = d.Year
	case KindTV:
		fields["year1"] = d.Year1
		fields["year2"] = d.Year2
	}
	return fields
}

// MarshalJSON renders the record as the flat document stored in the cache.
// The empty record renders as {}.
func (d Detail) MarshalJSON() ([]byte, error) {
	if d.IsEmpty() {
		return []byte("{}"), nil
	}
	raw := make(map[string]any, len(d.Raw))
	for key, value := range d.Raw {
		raw[key] = value
	}
	return json.Marshal(lo.Assign(raw, d.normalized()))
}

// UnmarshalJSON restores a record written by MarshalJSON. Keys other than the
// normalized ones are kept in Raw.
func (d *Detail) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*d = Detail{}
	if len(doc) == 0 {
		return nil
	}

	_, hasYear1 := doc["year1"]
	_, hasYear2 := doc["year2"]
	_, hasYear := doc["year"]
	switch {
	case hasYear1 || hasYear2:
		d.Kind = KindTV
	case hasYear:
		d.Kind = KindMovie
	default:
		return nil
	}

	targets := map[string]any{
		"imdb_id":   &d.IMDbID,
		"languages": &d.Languages,
		"genres":    &d.Genres,
		"casts":     &d.Casts,
		"directors": &d.Directors,
		"writers":   &d.Writers,
		"year":      &d.Year,
		"year1":     &d.Year1,
		"year2":     &d.Year2,
	}
	for key, value := range doc {
		target, ok := targets[key]
		if !ok {
			if d.Raw == nil {
				d.Raw = make(map[string]json.RawMessage)
			}
			d.Raw[key] = value
			continue
		}
		if string(value) == "null" {
			continue
		}
		if err := json.Unmarshal(value, target); err != nil {
			return err
		}
	}
	d.Languages = nonNil(d.Languages)
	d.Genres = nonNil(d.Genres)
	d.Casts = nonNil(d.Casts)
	d.Directors = nonNil(d.Directors)
	d.Writers = nonNil(d.Writers)
	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
