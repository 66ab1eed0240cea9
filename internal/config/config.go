// Package config defines the analyzer driver configuration and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - External errors are wrapped via this package's sentinel errors.
package config

import (
	"runtime"
)

// Config contains process configuration for the diagnostics driver. The
// flag thresholds default to the values the matching engine was tuned with;
// override them only when hunting a specific class of mismatch.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// WorkerCount sets the number of concurrent matching workers.
	WorkerCount int `koanf:"worker_count"`

	// MultiSectorThreshold flags skills matching more than this many sectors.
	MultiSectorThreshold int `koanf:"multi_sector_threshold"`

	// HighMatchThreshold flags skills matching more than this many occupations.
	HighMatchThreshold int `koanf:"high_match_threshold"`

	// NormalizationRatio flags raw strings whose normalized key is shorter
	// than this fraction of the raw length.
	NormalizationRatio float64 `koanf:"normalization_ratio"`

	// FoldAccents strips diacritics before normalizing.
	FoldAccents bool `koanf:"fold_accents"`

	// DatasetPath points at the YAML dataset (catalog + profiles) to analyze.
	DatasetPath string `koanf:"dataset_path"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		WorkerCount:          runtime.NumCPU(),
		MultiSectorThreshold: 3,
		HighMatchThreshold:   10,
		NormalizationRatio:   0.7,
		FoldAccents:          false,
		DatasetPath:          "dataset.yaml",
	}
}
