package media

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentity is returned for identities with a non-positive id or unsupported kind.
var ErrInvalidIdentity = errors.New("invalid media identity")

// Identity names one title in one language. It is comparable and is the
// basis of every cache key.
type Identity struct {
	Kind     Kind
	ID       int64
	Language string
}

// NewIdentity builds an Identity with a normalized language tag.
func NewIdentity(kind Kind, id int64, language string) Identity {
	return Identity{Kind: kind, ID: id, Language: NormalizeLanguage(language)}
}

// Validate reports whether the identity can be sent to the catalog.
func (i Identity) Validate() error {
	if !i.Kind.Valid() {
		return fmt.Errorf("%w: kind %s", ErrInvalidIdentity, i.Kind)
	}
	if i.ID <= 0 {
		return fmt.Errorf("%w: id %d", ErrInvalidIdentity, i.ID)
	}
	return nil
}

// WithLanguage returns a copy of i for another language.
func (i Identity) WithLanguage(language string) Identity {
	i.Language = NormalizeLanguage(language)
	return i
}

func (i Identity) String() string {
	return fmt.Sprintf("%s/%d (%s)", i.Kind, i.ID, i.Language)
}
