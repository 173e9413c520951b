package media

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind reports a media type other than "movie" or "tv".
var ErrUnknownKind = errors.New("unknown media kind")

// Kind distinguishes films from series.
type Kind int

const (
	KindUnknown Kind = iota
	KindMovie
	KindTV
)

func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindTV:
		return "tv"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the two supported kinds.
func (k Kind) Valid() bool {
	return k == KindMovie || k == KindTV
}

// ParseKind maps the catalog's media_type strings onto a Kind.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "movie", "film":
		return KindMovie, nil
	case "tv", "series", "show":
		return KindTV, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, value)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
