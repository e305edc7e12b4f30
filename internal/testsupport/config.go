package testsupport

import (
	"path/filepath"
	"testing"

	"grocer/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test. The
// input file is not created; use WithInput or WriteInput for that.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.InputFile = filepath.Join(base, "input.txt")
	cfgVal.Paths.BackupFile = filepath.Join(base, "frequency.dat")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "state", "logs")
	cfgVal.Paths.LockFile = filepath.Join(base, "state", "backup.lock")
	cfgVal.History.Path = filepath.Join(base, "state", "history.db")

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

// WithInput writes content to the config's input file.
func WithInput(content string) ConfigOption {
	return func(b *configBuilder) {
		WriteInput(b.t, b.cfg.Paths.InputFile, content)
	}
}

// WithHistoryDisabled turns off run history recording.
func WithHistoryDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// WithSymbol overrides the histogram symbol.
func WithSymbol(symbol string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Histogram.Symbol = symbol
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.InputFile)
}
