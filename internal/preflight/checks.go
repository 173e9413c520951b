package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"marquee/internal/config"
)

const catalogCheckTimeout = 5 * time.Second

// CheckCatalog verifies the catalog API is reachable and accepts the
// configured credentials. It makes one request to /configuration.
func CheckCatalog(ctx context.Context, cfg *config.Config) Result {
	const name = "TMDB API"

	base := strings.TrimRight(strings.TrimSpace(cfg.TMDB.BaseURL), "/")
	if base == "" {
		return Result{Name: name, Detail: "missing base url"}
	}
	token := strings.TrimSpace(cfg.TMDB.ReadAccessToken)
	apiKey := strings.TrimSpace(cfg.TMDB.APIKey)
	if token == "" && apiKey == "" {
		return Result{Name: name, Detail: "missing read access token"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, catalogCheckTimeout)
	defer cancel()

	endpoint := base + "/configuration"
	if token == "" {
		endpoint += "?" + url.Values{"api_key": {apiKey}}.Encode()
	}
	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("check failed (%v)", err)}
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: catalogCheckTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: summarizeTransportError(err)}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return Result{Name: name, Passed: true, Detail: "Reachable"}
	case http.StatusUnauthorized, http.StatusForbidden:
		return Result{Name: name, Detail: "auth failed (invalid credentials)"}
	default:
		return Result{Name: name, Detail: fmt.Sprintf("check failed (%d)", resp.StatusCode)}
	}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

func summarizeTransportError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "check timed out (API unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "check timed out (API unreachable)"
	}
	return fmt.Sprintf("check failed (%v)", err)
}
