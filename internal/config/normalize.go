package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTMDB()
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeTrailers()
	if err := c.normalizeAPI(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTMDB() {
	c.TMDB.ReadAccessToken = strings.TrimSpace(c.TMDB.ReadAccessToken)
	if c.TMDB.ReadAccessToken == "" {
		if value, ok := os.LookupEnv("TMDB_API_READ_ACCESS_TOKEN"); ok {
			c.TMDB.ReadAccessToken = strings.TrimSpace(value)
		}
	}
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	if c.TMDB.APIKey == "" {
		if value, ok := os.LookupEnv("TMDB_API_KEY"); ok {
			c.TMDB.APIKey = strings.TrimSpace(value)
		}
	}
	c.TMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.BaseURL), "/")
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
	if c.TMDB.Language == "" {
		c.TMDB.Language = defaultTMDBLanguage
	}
	if c.TMDB.TimeoutSeconds <= 0 {
		c.TMDB.TimeoutSeconds = defaultTMDBTimeoutSeconds
	}
	if c.TMDB.CastLimit < 0 {
		c.TMDB.CastLimit = 0
	}
	if c.TMDB.TrailerLimit < 0 {
		c.TMDB.TrailerLimit = 0
	}
}

func (c *Config) normalizeCache() error {
	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	if c.Cache.Backend == "" {
		c.Cache.Backend = defaultCacheBackend
	}
	var err error
	if strings.TrimSpace(c.Cache.Path) == "" {
		c.Cache.Path = defaultCachePath
	}
	if c.Cache.Path, err = expandPath(c.Cache.Path); err != nil {
		return fmt.Errorf("cache.path: %w", err)
	}
	if strings.TrimSpace(c.Cache.Dir) == "" {
		c.Cache.Dir = defaultCacheDir
	}
	if c.Cache.Dir, err = expandPath(c.Cache.Dir); err != nil {
		return fmt.Errorf("cache.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTrailers() {
	if c.Trailers.Fallback == nil {
		c.Trailers.Fallback = DefaultTrailerFallback()
		return
	}
	cleaned := make(map[string]string, len(c.Trailers.Fallback))
	for from, to := range c.Trailers.Fallback {
		from = strings.TrimSpace(from)
		to = strings.TrimSpace(to)
		if from == "" || to == "" {
			continue
		}
		cleaned[from] = to
	}
	c.Trailers.Fallback = cleaned
}

func (c *Config) normalizeAPI() error {
	c.API.Bind = strings.TrimSpace(c.API.Bind)
	c.API.Token = strings.TrimSpace(c.API.Token)
	if c.API.Token == "" {
		if value, ok := os.LookupEnv("MARQUEE_API_TOKEN"); ok {
			c.API.Token = strings.TrimSpace(value)
		}
	}
	if c.API.Bind == "" {
		c.API.Bind = defaultAPIBind
	}
	if strings.TrimSpace(c.API.LockPath) == "" {
		c.API.LockPath = defaultAPILockPath
	}
	var err error
	if c.API.LockPath, err = expandPath(c.API.LockPath); err != nil {
		return fmt.Errorf("api.lock_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format == "" {
		format = defaultLogFormat
	}
	c.Logging.Format = format

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level

	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = 0
	}
	if c.Logging.MaxAgeDays < 0 {
		c.Logging.MaxAgeDays = 0
	}
}
