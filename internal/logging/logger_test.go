package logging_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skinbridge/internal/config"
	"skinbridge/internal/logging"
)

func newFileLogger(t *testing.T, format, level string) (string, func() string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "test.log")
	logger, err := logging.New(logging.Options{
		Format:           format,
		Level:            level,
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.NewComponentLogger(logger, "converter").Info("converted", logging.Keymode(4))
	return logPath, func() string {
		content, err := os.ReadFile(logPath)
		if err != nil {
			t.Fatalf("read log file: %v", err)
		}
		return string(content)
	}
}

func TestNewFromConfigWritesLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Format = "json"

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("hello")
	if _, err := os.Stat(filepath.Join(cfg.Paths.LogDir, "skinbridge.log")); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	_, read := newFileLogger(t, "console", "info")
	content := read()
	if strings.Contains(content, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
	if !strings.Contains(content, "converter: converted") || !strings.Contains(content, "keymode=4") {
		t.Fatalf("unexpected console line %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	_, read := newFileLogger(t, "console", "debug")
	if content := read(); !strings.Contains(content, ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestAutoFormatUsesJSONForFiles(t *testing.T) {
	_, read := newFileLogger(t, "auto", "info")
	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(read())), &record); err != nil {
		t.Fatalf("expected a JSON line: %v", err)
	}
	if record["msg"] != "converted" || record["level"] != "info" || record[logging.FieldComponent] != "converter" {
		t.Fatalf("unexpected record %v", record)
	}
	if record[logging.FieldKeymode] != "4k" {
		t.Fatalf("expected keymode rendered as 4k, got %v", record[logging.FieldKeymode])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key in %v", record)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "ctx.log")
	logger, err := logging.New(logging.Options{Format: "json", OutputPaths: []string{logPath}, ErrorOutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	id := logging.NewRunID()
	ctx := logging.WithRunID(context.Background(), id)
	logging.WithContext(ctx, logger).Info("contextual log")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(content, &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record[logging.FieldRunID] != id {
		t.Fatalf("run id = %v, want %s", record[logging.FieldRunID], id)
	}
	if got, ok := logging.RunIDFromContext(context.Background()); ok || got != "" {
		t.Fatalf("empty context should carry no run id")
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "x")
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("nop logger should be disabled")
	}
	logging.WarnWithContext(logger, "ignored", "test")
}

func TestJSONNormalizesAssetKeys(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "assets.log")
	logger, err := logging.New(logging.Options{Format: "json", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Warn("missing", logging.Asset(`Arrows\left`), logging.String(logging.FieldRunID, ""), logging.Format("osu"))
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(content, &record); err != nil {
		t.Fatalf("expected a JSON line: %v", err)
	}
	if record[logging.FieldAsset] != "Arrows/left" || record[logging.FieldFormat] != "osu" {
		t.Fatalf("unexpected record %v", record)
	}
	if _, ok := record[logging.FieldRunID]; ok {
		t.Fatalf("empty run id should be dropped: %v", record)
	}
}
