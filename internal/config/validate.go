package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.ReadAccessToken == "" && c.TMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/marquee/config.toml"
		}
		return fmt.Errorf("tmdb.read_access_token or tmdb.api_key is required. Set TMDB_API_READ_ACCESS_TOKEN or TMDB_API_KEY, or edit %s (create with 'marquee config init')", defaultPath)
	}
	parsed, err := url.Parse(c.TMDB.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("tmdb.base_url %q must be an absolute URL", c.TMDB.BaseURL)
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case CacheBackendSQLite, CacheBackendFile, CacheBackendMemory:
		return nil
	default:
		return fmt.Errorf("cache.backend %q is not supported (use sqlite, file, or memory)", c.Cache.Backend)
	}
}

func (c *Config) validateAPI() error {
	if _, _, err := net.SplitHostPort(c.API.Bind); err != nil {
		return fmt.Errorf("api.bind %q: %w", c.API.Bind, err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	return nil
}
