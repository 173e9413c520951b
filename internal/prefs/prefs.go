// Package prefs persists per-user language preferences in the cache store.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"

	"marquee/internal/media"
	"marquee/internal/mediacache"
)

// Store reads and writes user language preferences.
type Store struct {
	store mediacache.Store
}

// New returns a preference store over the users_lang collection of store.
func New(store mediacache.Store) *Store {
	return &Store{store: store}
}

// Get returns the saved language for userID, or the default language when
// none is saved or the entry cannot be read.
func (s *Store) Get(ctx context.Context, userID int64) (string, error) {
	raw, ok, err := s.store.Get(ctx, media.CollectionUserLanguage, media.UserLanguageKey(userID))
	if err != nil {
		return media.DefaultLanguage, fmt.Errorf("read language for user %d: %w", userID, err)
	}
	if !ok {
		return media.DefaultLanguage, nil
	}
	var language string
	if err := json.Unmarshal(raw, &language); err != nil || language == "" {
		return media.DefaultLanguage, nil
	}
	return language, nil
}

// Set saves a normalized language for userID and returns it.
func (s *Store) Set(ctx context.Context, userID int64, language string) (string, error) {
	language = media.NormalizeLanguage(language)
	raw, err := json.Marshal(language)
	if err != nil {
		return "", err
	}
	if err := s.store.Put(ctx, media.CollectionUserLanguage, media.UserLanguageKey(userID), raw); err != nil {
		return "", fmt.Errorf("save language for user %d: %w", userID, err)
	}
	return language, nil
}
