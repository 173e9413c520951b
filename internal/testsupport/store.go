package testsupport

import (
	"testing"

	"marquee/internal/config"
	"marquee/internal/mediacache"
)

// MustOpenStore opens the configured cache store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) mediacache.Store {
	t.Helper()

	store, err := mediacache.Open(cfg, nil)
	if err != nil {
		t.Fatalf("mediacache.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
