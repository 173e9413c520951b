package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains data and log directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// TMDB contains configuration for The Movie Database API.
type TMDB struct {
	ReadAccessToken string `toml:"read_access_token"`
	APIKey          string `toml:"api_key"`
	BaseURL         string `toml:"base_url"`
	Language        string `toml:"language"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	CastLimit       int    `toml:"cast_limit"`
	TrailerLimit    int    `toml:"trailer_limit"`
}

// Cache contains configuration for the aggregation cache store.
type Cache struct {
	Backend  string `toml:"backend"` // "sqlite", "file" or "memory"
	Path     string `toml:"path"`    // sqlite database file
	Dir      string `toml:"dir"`     // file backend directory
	Coalesce bool   `toml:"coalesce"`
}

// Trailers contains the trailer language fallback policy.
type Trailers struct {
	// Fallback maps a request language to the language queried when the
	// first lookup returns no videos at all.
	Fallback map[string]string `toml:"fallback"`
}

// API contains configuration for the HTTP boundary.
type API struct {
	Bind     string `toml:"bind"`
	LockPath string `toml:"lock_path"`
	// Token, when set, is required as a bearer token on every request
	// except the health check.
	Token string `toml:"token"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format     string `toml:"format"`
	Level      string `toml:"level"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Config encapsulates all configuration values for Marquee.
//
// Configuration sections by subsystem:
//   - Paths: data and log directories
//   - TMDB: catalog credentials, language and result limits
//   - Cache: aggregation cache backend
//   - Trailers: per-language trailer fallback
//   - API: HTTP bind address and daemon lock
//   - Logging: log format, level, and rotation
type Config struct {
	Paths    Paths    `toml:"paths"`
	TMDB     TMDB     `toml:"tmdb"`
	Cache    Cache    `toml:"cache"`
	Trailers Trailers `toml:"trailers"`
	API      API      `toml:"api"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/marquee/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("marquee.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the data and log directories plus the parent of
// the cache store.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.DataDir, c.Paths.LogDir}
	switch c.Cache.Backend {
	case CacheBackendSQLite:
		dirs = append(dirs, filepath.Dir(c.Cache.Path))
	case CacheBackendFile:
		dirs = append(dirs, c.Cache.Dir)
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// RequestTimeout returns the catalog HTTP timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.TMDB.TimeoutSeconds) * time.Second
}

// LogFilePath returns the rotating log file location, or "" when file logging is off.
func (c *Config) LogFilePath(name string) string {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return ""
	}
	return filepath.Join(c.Paths.LogDir, name)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
