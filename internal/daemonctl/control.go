// Package daemonctl talks to a running marqueed over its HTTP API.
package daemonctl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"marquee/internal/api"
	"marquee/internal/config"
)

// ErrDaemonNotRunning indicates nothing is listening on the API address.
var ErrDaemonNotRunning = errors.New("daemon not running")

// BaseURL returns the HTTP base URL for a bind address. Wildcard hosts are
// dialed on loopback.
func BaseURL(bind string) (string, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(bind))
	if err != nil {
		return "", fmt.Errorf("parse bind address %q: %w", bind, err)
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port), nil
}

// Probe fetches /health from the daemon configured in cfg.
func Probe(ctx context.Context, cfg *config.Config, timeout time.Duration) (api.HealthStatus, error) {
	base, err := BaseURL(cfg.API.Bind)
	if err != nil {
		return api.HealthStatus{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/health", nil)
	if err != nil {
		return api.HealthStatus{}, fmt.Errorf("build request: %w", err)
	}
	if cfg.API.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.API.Token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		if isDaemonUnavailable(err) {
			return api.HealthStatus{}, ErrDaemonNotRunning
		}
		return api.HealthStatus{}, fmt.Errorf("probe daemon: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return api.HealthStatus{}, fmt.Errorf("probe daemon: unexpected status %d", resp.StatusCode)
	}
	var status api.HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return api.HealthStatus{}, fmt.Errorf("decode health: %w", err)
	}
	return status, nil
}

func isDaemonUnavailable(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
