package config

// Cache backends.
const (
	CacheBackendSQLite = "sqlite"
	CacheBackendFile   = "file"
	CacheBackendMemory = "memory"
)

const (
	defaultDataDir             = "~/.local/share/marquee"
	defaultLogDir              = "~/.local/share/marquee/logs"
	defaultTMDBLanguage        = "en-US"
	defaultTMDBBaseURL         = "https://api.themoviedb.org/3"
	defaultTMDBTimeoutSeconds  = 10
	defaultTMDBCastLimit       = 5
	defaultTMDBTrailerLimit    = 1
	defaultCacheBackend        = CacheBackendSQLite
	defaultCachePath           = "~/.local/share/marquee/cache.db"
	defaultCacheDir            = "~/.local/share/marquee/cache"
	defaultAPIBind             = "127.0.0.1:7490"
	defaultAPILockPath         = "~/.local/share/marquee/marqueed.lock"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultLogMaxSizeMB        = 20
	defaultLogMaxBackups       = 5
	defaultLogMaxAgeDays       = 30
	defaultTrailerFallbackLang = "en-US"
)

// DefaultTrailerFallback returns the stock trailer fallback policy: Persian
// requests that find no videos retry in English.
func DefaultTrailerFallback() map[string]string {
	return map[string]string{
		"fa":    defaultTrailerFallbackLang,
		"fa-IR": defaultTrailerFallbackLang,
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		TMDB: TMDB{
			BaseURL:        defaultTMDBBaseURL,
			Language:       defaultTMDBLanguage,
			TimeoutSeconds: defaultTMDBTimeoutSeconds,
			CastLimit:      defaultTMDBCastLimit,
			TrailerLimit:   defaultTMDBTrailerLimit,
		},
		Cache: Cache{
			Backend: defaultCacheBackend,
			Path:    defaultCachePath,
			Dir:     defaultCacheDir,
		},
		Trailers: Trailers{
			Fallback: DefaultTrailerFallback(),
		},
		API: API{
			Bind:     defaultAPIBind,
			LockPath: defaultAPILockPath,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}
