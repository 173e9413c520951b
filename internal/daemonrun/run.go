// Package daemonrun owns the marqueed process runtime: signal handling,
// logger construction, service wiring, and the daemon lifecycle.
package daemonrun

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"marquee/internal/config"
	"marquee/internal/core"
	"marquee/internal/daemon"
	"marquee/internal/logging"
	"marquee/internal/preflight"
)

// LogFileName is the rotating log file written under the log directory.
const LogFileName = "marqueed.log"

// Options configures daemon process runtime behavior.
type Options struct {
	LogLevel string
	// Ready, when set, receives the listening address once the API is up.
	Ready func(addr string)
}

// Run starts the marquee daemon and blocks until ctx is canceled or the
// process receives SIGINT or SIGTERM.
func Run(cmdCtx context.Context, cfg *config.Config, opts Options) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}

	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	logCfg := *cfg
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		logCfg.Logging.Level = level
	}
	logger, err := logging.NewFromConfig(&logCfg, LogFileName)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	logConfigSnapshot(logger, cfg)
	logPreflight(signalCtx, logger, cfg)
	pidPath := filepath.Join(cfg.Paths.DataDir, "marqueed.pid")
	if err := writePIDFile(pidPath); err != nil {
		return fmt.Errorf("write pid file: %w", err)
	}
	defer os.Remove(pidPath)

	services, err := core.Open(cfg, logger)
	if err != nil {
		logger.Error("open services", logging.Error(err))
		return err
	}

	d, err := daemon.New(cfg, services, logger)
	if err != nil {
		_ = services.Close()
		return fmt.Errorf("create daemon: %w", err)
	}
	defer d.Close()

	if err := d.Start(signalCtx); err != nil {
		logging.ErrorWithContext(logger, "daemon start failed", "daemon_start_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the bind address and that no other marqueed is running"),
			logging.String(logging.FieldImpact, "API unavailable"))
		return err
	}
	if opts.Ready != nil {
		opts.Ready(d.Addr())
	}

	<-signalCtx.Done()
	logger.Info("marquee daemon shutting down")
	return nil
}

func writePIDFile(path string) error {
	if path == "" {
		return nil
	}
	value := strconv.Itoa(os.Getpid()) + "\n"
	return os.WriteFile(path, []byte(value), 0o644)
}

func logConfigSnapshot(logger *slog.Logger, cfg *config.Config) {
	if logger == nil || cfg == nil {
		return
	}
	logger.Info("configuration snapshot",
		logging.String(logging.FieldEventType, "config_snapshot"),
		logging.Bool("tmdb_token_present", cfg.TMDB.ReadAccessToken != ""),
		logging.Bool("tmdb_key_present", cfg.TMDB.APIKey != ""),
		logging.String("tmdb_base_url", cfg.TMDB.BaseURL),
		logging.String("default_language", cfg.TMDB.Language),
		logging.String("cache_backend", cfg.Cache.Backend),
		logging.Bool("cache_coalesce", cfg.Cache.Coalesce),
		logging.String("api_bind", cfg.API.Bind),
		logging.Bool("api_token_present", cfg.API.Token != ""),
	)
}

// logPreflight records failed readiness checks. A failed check never stops
// the daemon; cached titles are still served without the catalog.
func logPreflight(ctx context.Context, logger *slog.Logger, cfg *config.Config) {
	for _, result := range preflight.Failed(preflight.RunAll(ctx, cfg)) {
		logging.WarnWithContext(logger, "preflight check failed", "preflight_failed",
			logging.String("check", result.Name),
			logging.String("detail", result.Detail),
			logging.String(logging.FieldErrorHint, "verify directory permissions and tmdb credentials"),
			logging.String(logging.FieldImpact, "uncached lookups may return empty records"))
	}
}
