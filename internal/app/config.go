package app

import "errors"

// Config holds everything an App instance needs to run, as assembled from
// the command line.
type Config struct {
	// Basename is the analysis prefix all file names derive from.
	Basename string

	// ConfigPath is the HCL config file. Empty means <Basename>.hcl in
	// the working directory.
	ConfigPath string

	// WorkDir is the directory holding inputs and products.
	WorkDir string

	// Stages restricts the run to an explicit stage subset. Empty means
	// the full preparation sequence.
	Stages []string

	// DryRun renders and logs tool commands without executing anything.
	DryRun bool

	// EnvFile overrides the config file's tool environment file.
	EnvFile string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config assembled by the CLI layer.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Basename == "" {
		return nil, errors.New("a basename is required; see usage")
	}
	return &cfg, nil
}
