package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/services"
)

func TestNewFromConfigWritesRotatingJSONFile(t *testing.T) {
	cfg := config.Default()
	cfg.TMDB.APIKey = "test"
	cfg.Paths.LogDir = t.TempDir()

	logger, err := logging.NewFromConfig(&cfg, "marquee.log")
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("file message", logging.String("k", "v"))

	content, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "marquee.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(content), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", content, err)
	}
	if entry["msg"] != "file message" || entry["k"] != "v" || entry["level"] != "info" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry[logging.FieldService] != logging.ServiceName {
		t.Fatalf("expected service attr, got %v", entry)
	}
	ts, ok := entry["ts"].(string)
	if !ok {
		t.Fatalf("expected ts key, got %v", entry)
	}
	if _, err := time.Parse("2006-01-02T15:04:05.000Z", ts); err != nil {
		t.Fatalf("expected UTC millisecond timestamp, got %q: %v", ts, err)
	}
}

func TestConsoleLoggerTruncatesLongValues(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-long.log")

	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	overview := strings.Repeat("dream", 100)
	logger.Info("long value",
		logging.String("overview", overview),
		logging.String("title", "Inception"),
		logging.String("query", "the dark knight"),
		slog.Any("payload", json.RawMessage(`{"id":27205}`)))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(content)
	if strings.Contains(line, overview) {
		t.Fatalf("expected overview to be truncated, got %q", line)
	}
	if !strings.Contains(line, "overview="+strings.Repeat("dream", 32)+"...") {
		t.Fatalf("unexpected truncation in %q", line)
	}
	if !strings.Contains(line, "title=Inception") || !strings.Contains(line, `query="the dark knight"`) {
		t.Fatalf("unexpected short values in %q", line)
	}
	if !strings.Contains(line, `payload="{\"id\":27205}"`) {
		t.Fatalf("expected raw json payload, got %q", line)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")

	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.NewComponentLogger(logger, "tmdb").Info("message without caller", logging.Int("status", 200))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(content)
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", line)
	}
	if !strings.Contains(line, "INFO tmdb: message without caller status=200") {
		t.Fatalf("unexpected console line %q", line)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-debug.log")

	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message with caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "level.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "invalid", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")

	content, _ := os.ReadFile(logPath)
	if strings.Contains(string(content), "hidden") || !strings.Contains(string(content), "shown") {
		t.Fatalf("expected info level filtering, got %q", content)
	}
}

func TestWithContextAddsFields(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRequestID(ctx, "req-xyz")
	ctx = services.WithUserID(ctx, 42)
	ctx = services.WithLanguage(ctx, "fa-IR")

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logging.WithContext(ctx, logger).Info("contextual log")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry[logging.FieldCorrelationID] != "req-xyz" {
		t.Fatalf("missing correlation id: %v", entry)
	}
	if entry[logging.FieldUserID] != float64(42) {
		t.Fatalf("missing user id: %v", entry)
	}
	if entry[logging.FieldLanguage] != "fa-IR" {
		t.Fatalf("missing language: %v", entry)
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logging.WarnWithContext(logger, "store write failed", "cache_write_failed",
		logging.String(logging.FieldImpact, "value served uncached"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry[logging.FieldEventType] != "cache_write_failed" {
		t.Fatalf("unexpected event type: %v", entry)
	}
	if entry[logging.FieldErrorHint] != "check logs for details" {
		t.Fatalf("expected default hint: %v", entry)
	}
	if entry[logging.FieldImpact] != "value served uncached" {
		t.Fatalf("caller impact should win: %v", entry)
	}
}

func TestTeeLoggerRespectsHandlerLevels(t *testing.T) {
	var infoBuf, debugBuf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	extra := slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug})

	logger := logging.TeeLogger(base, extra).With(logging.String(logging.FieldComponent, "tee"))
	logger.Debug("debug only")
	logger.Info("both")

	if strings.Contains(infoBuf.String(), "debug only") {
		t.Fatalf("info handler received debug record: %q", infoBuf.String())
	}
	if !strings.Contains(debugBuf.String(), "debug only") || !strings.Contains(debugBuf.String(), "both") {
		t.Fatalf("debug handler missing records: %q", debugBuf.String())
	}
	if !strings.Contains(infoBuf.String(), `"component":"tee"`) {
		t.Fatalf("expected attrs to propagate: %q", infoBuf.String())
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "x")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("expected nop logger to be disabled")
	}
}
