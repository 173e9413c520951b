package testsupport

import (
	"path/filepath"
	"testing"

	"marquee/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.TMDB.ReadAccessToken = "test-token"
	cfgVal.Paths.DataDir = base
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Cache.Path = filepath.Join(base, "cache.db")
	cfgVal.Cache.Dir = filepath.Join(base, "cache")
	cfgVal.API.Bind = "127.0.0.1:0"
	cfgVal.API.LockPath = filepath.Join(base, "marqueed.lock")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCatalog points the config at a fake catalog server.
func WithCatalog(server *CatalogServer) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.TMDB.BaseURL = server.URL
	}
}

// WithCacheBackend selects the cache backend.
func WithCacheBackend(backend string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Cache.Backend = backend
	}
}

// WithAPIKey switches authentication to the v3 api_key query parameter.
func WithAPIKey(key string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.TMDB.ReadAccessToken = ""
		b.cfg.TMDB.APIKey = key
	}
}

// WithAPIToken requires a bearer token on the daemon's /v1 routes.
func WithAPIToken(token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.API.Token = token
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return cfg.Paths.DataDir
}
