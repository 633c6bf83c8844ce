package testsupport

import (
	"path/filepath"
	"testing"

	"bibmerge/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a silent config whose output and log file live in a
// per-test temp directory. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Merge.Silent = true
	cfgVal.Output.Path = filepath.Join(base, config.DefaultOutputFileName)
	cfgVal.Logging.File = filepath.Join(base, "bibmerge.log")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithThreshold enables fuzzy title matching with the given algorithm.
func WithThreshold(threshold float64, algorithm string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Merge.SimilarityThreshold = threshold
		b.cfg.Merge.Algorithm = algorithm
	}
}

// WithInteractive turns off silent mode.
func WithInteractive() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Merge.Silent = false
	}
}

// WithBibLaTeX selects the biblatex output dialect.
func WithBibLaTeX() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = "biblatex"
	}
}

// BaseDir returns the temp directory backing a config built by NewConfig.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Output.Path)
}
