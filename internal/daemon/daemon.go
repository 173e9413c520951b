package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gofrs/flock"

	"marquee/internal/api"
	"marquee/internal/config"
	"marquee/internal/core"
	"marquee/internal/logging"
)

// ErrAlreadyRunning is returned when another process holds the daemon lock.
var ErrAlreadyRunning = errors.New("another marquee daemon instance is already running")

// Daemon serves the HTTP API and enforces single-instance execution.
type Daemon struct {
	cfg      *config.Config
	logger   *slog.Logger
	services *core.Services

	lockPath string
	lock     *flock.Flock
	api      *apiServer

	running atomic.Bool
	cancel  context.CancelFunc
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, services *core.Services, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || services == nil {
		return nil, errors.New("daemon requires config and services")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	d := &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		services: services,
		lockPath: cfg.API.LockPath,
		lock:     flock.New(cfg.API.LockPath),
	}
	d.api = newAPIServer(cfg, d, logger)
	return d, nil
}

// Start acquires the daemon lock and starts the API server.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	if err := d.api.start(runCtx); err != nil {
		cancel()
		_ = d.lock.Unlock()
		return err
	}
	d.cancel = cancel
	d.running.Store(true)
	d.logger.Info("marquee daemon started",
		logging.String(logging.FieldEventType, "daemon_started"),
		logging.String("lock", d.lockPath),
		logging.String("address", d.Addr()))
	return nil
}

// Stop shuts the API server down and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.api.stop()
	if err := d.lock.Unlock(); err != nil {
		logging.WarnWithContext(d.logger, "failed to release daemon lock", "daemon_unlock_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "remove the lock file if no daemon is running"),
			logging.String(logging.FieldImpact, "next start may report another instance"))
	}
	d.running.Store(false)
	d.logger.Info("marquee daemon stopped", logging.String(logging.FieldEventType, "daemon_stopped"))
}

// Close stops the daemon and releases the services.
func (d *Daemon) Close() error {
	d.Stop()
	return d.services.Close()
}

// Running reports whether Start succeeded and Stop has not been called.
func (d *Daemon) Running() bool {
	return d.running.Load()
}

// Addr returns the address the API server listens on, or "" before Start.
func (d *Daemon) Addr() string {
	return d.api.addr()
}

// Health returns the current daemon status.
func (d *Daemon) Health(ctx context.Context) (api.HealthStatus, error) {
	counts, err := d.services.Counts(ctx)
	if err != nil {
		return api.HealthStatus{}, err
	}
	status := "ok"
	if !d.running.Load() {
		status = "stopped"
	}
	return api.HealthStatus{
		Status:       status,
		Backend:      d.cfg.Cache.Backend,
		LockFilePath: d.lockPath,
		Entries:      counts,
	}, nil
}
