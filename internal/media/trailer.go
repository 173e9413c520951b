package media

import "github.com/samber/mo"

// Trailer is one selected video. URL is present only for videos hosted on
// a supported site with a non-empty key.
type Trailer struct {
	Name     string            `json:"name"`
	Official bool              `json:"official"`
	Type     string            `json:"type"`
	URL      mo.Option[string] `json:"url"`
}
