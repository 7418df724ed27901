package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"skinbridge/internal/config"
	"skinbridge/internal/skinerr"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "skinbridge", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path %q want %q", resolved, want)
	}
	if cfg.Logging.Format != "auto" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
	if cfg.Conversion.ReceptorHeight != 128 || cfg.Conversion.OffsetTolerance != 0.1 {
		t.Fatalf("unexpected conversion defaults %+v", cfg.Conversion)
	}
	if cfg.Preview.Width != 1920 || cfg.Preview.StageWidthFraction != 0.85 {
		t.Fatalf("unexpected preview defaults %+v", cfg.Preview)
	}
	if !filepath.IsAbs(cfg.Paths.OutputDir) {
		t.Fatalf("output dir should be absolute, got %q", cfg.Paths.OutputDir)
	}
}

func TestLoadUsesXDGConfigHome(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	path := filepath.Join(base, "skinbridge", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("[preview]\nwidth = 640\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected %q to be used, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Preview.Width != 640 || cfg.Preview.Height != 1080 {
		t.Fatalf("unexpected preview %+v", cfg.Preview)
	}
}

func TestLoadExpandsTildeAndNormalizesLogging(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `[paths]
output_dir = "~/skins"
log_dir = "~/logs"

[logging]
format = " JSON "
level = "Warning"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected explicit config to exist")
	}
	if cfg.Paths.OutputDir != filepath.Join(tempHome, "skins") || cfg.Paths.LogDir != filepath.Join(tempHome, "logs") {
		t.Fatalf("unexpected paths %+v", cfg.Paths)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"format":   "[logging]\nformat = \"xml\"\n",
		"height":   "[conversion]\nreceptor_height = 0\n",
		"fraction": "[preview]\nstage_width_fraction = 1.5\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, _, _, err := config.Load(path); !errors.Is(err, skinerr.ErrConfiguration) {
			t.Fatalf("%s: expected ErrConfiguration, got %v", name, err)
		}
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[preview]\nwidht = 10\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSampleMatchesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var parsed config.Config
	if err := toml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}
	def := config.Default()
	if parsed.Conversion != def.Conversion || parsed.Preview != def.Preview || parsed.Logging != def.Logging {
		t.Fatalf("sample drifted from defaults:\n%+v\n%+v", parsed, def)
	}
}
