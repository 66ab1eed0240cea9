package config_test

import (
	"context"
	"errors"
	"os"
	"runtime"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/talentdir/skillscope/internal/config"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU())
				convey.So(cfg.MultiSectorThreshold, convey.ShouldEqual, 3)
				convey.So(cfg.HighMatchThreshold, convey.ShouldEqual, 10)
				convey.So(cfg.NormalizationRatio, convey.ShouldEqual, 0.7)
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "dataset.yaml")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("SKILLSCOPE_LOG_LEVEL", "debug")
			_ = os.Setenv("SKILLSCOPE_WORKER_COUNT", "8")
			_ = os.Setenv("SKILLSCOPE_MULTI_SECTOR_THRESHOLD", "5")
			_ = os.Setenv("SKILLSCOPE_HIGH_MATCH_THRESHOLD", "20")
			_ = os.Setenv("SKILLSCOPE_NORMALIZATION_RATIO", "0.5")
			_ = os.Setenv("SKILLSCOPE_DATASET_PATH", "corpus.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 8)
				convey.So(cfg.MultiSectorThreshold, convey.ShouldEqual, 5)
				convey.So(cfg.HighMatchThreshold, convey.ShouldEqual, 20)
				convey.So(cfg.NormalizationRatio, convey.ShouldEqual, 0.5)
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "corpus.yaml")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
log_level: warn
worker_count: 12
multi_sector_threshold: 4
high_match_threshold: 15
normalization_ratio: 0.6
dataset_path: fixtures/corpus.yaml
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SKILLSCOPE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 12)
				convey.So(cfg.MultiSectorThreshold, convey.ShouldEqual, 4)
				convey.So(cfg.HighMatchThreshold, convey.ShouldEqual, 15)
				convey.So(cfg.NormalizationRatio, convey.ShouldEqual, 0.6)
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "fixtures/corpus.yaml")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
worker_count: 12
high_match_threshold: 15
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SKILLSCOPE_CONFIG", tmpFile)
			_ = os.Setenv("SKILLSCOPE_WORKER_COUNT", "32")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 32)        // Overridden by env
				convey.So(cfg.HighMatchThreshold, convey.ShouldEqual, 15) // From file
				convey.So(cfg.MultiSectorThreshold, convey.ShouldEqual, 3) // From defaults
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SKILLSCOPE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("SKILLSCOPE_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a zero worker count", func() {
			_ = os.Setenv("SKILLSCOPE_WORKER_COUNT", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "worker_count must be positive")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an out-of-range normalization ratio", func() {
			_ = os.Setenv("SKILLSCOPE_NORMALIZATION_RATIO", "1.5")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an empty dataset path", func() {
			_ = os.Setenv("SKILLSCOPE_DATASET_PATH", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "dataset_path must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with partial YAML file", func() {
			yamlContent := `
worker_count: 6
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SKILLSCOPE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should merge with defaults for missing fields", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 6)          // From file
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")        // From defaults
				convey.So(cfg.MultiSectorThreshold, convey.ShouldEqual, 3) // From defaults
				convey.So(cfg.NormalizationRatio, convey.ShouldEqual, 0.7) // From defaults
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("SKILLSCOPE_WORKER_COUNT", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	envVars := []string{
		"SKILLSCOPE_CONFIG",
		"SKILLSCOPE_LOG_LEVEL",
		"SKILLSCOPE_WORKER_COUNT",
		"SKILLSCOPE_MULTI_SECTOR_THRESHOLD",
		"SKILLSCOPE_HIGH_MATCH_THRESHOLD",
		"SKILLSCOPE_NORMALIZATION_RATIO",
		"SKILLSCOPE_FOLD_ACCENTS",
		"SKILLSCOPE_DATASET_PATH",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "skillscope-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
