package preflight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"marquee/internal/config"
	"marquee/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	result := CheckDirectoryAccess("test", t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed || result.Detail == "" {
		t.Fatalf("expected failure with detail, got %+v", result)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckDirectoryAccess("test", f); result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckCatalog_BearerAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/configuration" || r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.TMDB.BaseURL = srv.URL
	cfg.TMDB.ReadAccessToken = "good"
	if result := CheckCatalog(context.Background(), &cfg); !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}

	cfg.TMDB.ReadAccessToken = "bad"
	result := CheckCatalog(context.Background(), &cfg)
	if result.Passed || result.Detail != "auth failed (invalid credentials)" {
		t.Fatalf("expected auth failure, got %+v", result)
	}
}

func TestCheckCatalog_APIKeyQuery(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.TMDB.BaseURL = srv.URL
	cfg.TMDB.ReadAccessToken = ""
	cfg.TMDB.APIKey = "v3key"
	if result := CheckCatalog(context.Background(), &cfg); !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if gotKey != "v3key" {
		t.Fatalf("api_key = %q", gotKey)
	}
}

func TestCheckCatalog_MissingCredentials(t *testing.T) {
	cfg := config.Default()
	cfg.TMDB.ReadAccessToken = ""
	cfg.TMDB.APIKey = ""
	if result := CheckCatalog(context.Background(), &cfg); result.Passed {
		t.Fatal("expected failure without credentials")
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	if results := RunAll(context.Background(), nil); results != nil {
		t.Fatalf("expected nil, got %v", results)
	}
}

func TestRunAll_ReportsCatalogFailure(t *testing.T) {
	catalog := testsupport.NewCatalogServer(t)
	cfg := testsupport.NewConfig(t, testsupport.WithCatalog(catalog))
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}

	results := RunAll(context.Background(), cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %+v", results)
	}
	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "TMDB API" || failed[0].Detail != "check failed (404)" {
		t.Fatalf("unexpected failures %+v", failed)
	}

	catalog.HandleJSON("/configuration", `{"images":{}}`)
	if failed := Failed(RunAll(context.Background(), cfg)); len(failed) != 0 {
		t.Fatalf("expected all checks to pass, got %+v", failed)
	}
}
