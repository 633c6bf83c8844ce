package config

const (
	defaultConfigPath   = "~/.config/bibmerge/config.toml"
	projectConfigName   = "bibmerge.toml"
	defaultThreshold    = 1.0
	defaultAlgorithm    = "levenshtein"
	defaultOutputFormat = "bibtex"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	logLevelEnv         = "BIBMERGE_LOG_LEVEL"
)

const (
	// OutputPrefix marks files written by bibmerge so discovery can skip them.
	OutputPrefix = "[bibmerge]"
	// DefaultOutputFileName is used when no output path is configured.
	DefaultOutputFileName = OutputPrefix + "bibliography.bib"
	// OutputExtension is required on every output path.
	OutputExtension = ".bib"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Merge: Merge{
			SimilarityThreshold: defaultThreshold,
			Algorithm:           defaultAlgorithm,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Backup: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
