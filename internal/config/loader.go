package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SKILLSCOPE_CONFIG is set
//  3. env (prefix SKILLSCOPE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("SKILLSCOPE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SKILLSCOPE_WORKER_COUNT, SKILLSCOPE_DATASET_PATH, ...
	// Keys map to the flat koanf tags on the struct, underscores preserved.
	envProvider := env.Provider("SKILLSCOPE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "skillscope_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.WorkerCount < 1 {
		return fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	}
	if cfg.MultiSectorThreshold < 1 {
		return fmt.Errorf("%w: multi_sector_threshold must be positive", ErrInvalidConfig)
	}
	if cfg.HighMatchThreshold < 1 {
		return fmt.Errorf("%w: high_match_threshold must be positive", ErrInvalidConfig)
	}
	if cfg.NormalizationRatio <= 0 || cfg.NormalizationRatio > 1 {
		return fmt.Errorf("%w: normalization_ratio must be in (0, 1]", ErrInvalidConfig)
	}
	if cfg.DatasetPath == "" {
		return fmt.Errorf("%w: dataset_path must not be empty", ErrInvalidConfig)
	}
	return nil
}
