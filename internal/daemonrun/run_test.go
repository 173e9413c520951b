package daemonrun_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"marquee/internal/config"
	"marquee/internal/daemonrun"
	"marquee/internal/testsupport"
)

func TestRunServesUntilCanceled(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCacheBackend(config.CacheBackendMemory))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ready := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- daemonrun.Run(ctx, cfg, daemonrun.Options{
			LogLevel: "debug",
			Ready:    func(addr string) { ready <- addr },
		})
	}()

	var addr string
	select {
	case addr = <-ready:
	case err := <-done:
		t.Fatalf("Run exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("daemon did not become ready")
	}

	resp, err := http.Get("http://" + addr + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status %d", resp.StatusCode)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.DataDir, "marqueed.pid")); err != nil {
		t.Fatalf("pid file missing: %v", err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("daemon did not shut down")
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.LogDir, daemonrun.LogFileName)); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
}
