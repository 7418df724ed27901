package testsupport

import (
	"path/filepath"
	"testing"

	"skinbridge/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Logs go to JSON so tests never depend on terminal detection.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Logging.Format = "json"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithPreviewSize overrides the preview canvas.
func WithPreviewSize(w, h int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Preview.Width = w
		b.cfg.Preview.Height = h
	}
}

// WithoutOutputLock disables the export lock file.
func WithoutOutputLock() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Conversion.LockOutput = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
