package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from an optional YAML file and PAGESIFT_*
// environment variables, layered over the defaults. An empty path skips
// file loading; a missing file at the default search paths is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("pagesift")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("pagesift")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults registers default values so env-only overrides still produce
// a complete configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("min_repeat", DefaultMinRepeat)
	v.SetDefault("max_candidates", DefaultMaxCandidates)
	v.SetDefault("high_confidence_count", DefaultHighConfidenceCount)
	v.SetDefault("count_penalty_threshold", DefaultCountPenaltyThreshold)
	v.SetDefault("chrome_count_threshold", DefaultChromeCountThreshold)
	v.SetDefault("framework_score_floor", DefaultFrameworkScoreFloor)
	v.SetDefault("max_traversal_depth", DefaultMaxTraversalDepth)
	v.SetDefault("preview_sample_count", DefaultPreviewSampleCount)

	v.SetDefault("logger", map[string]any{
		"level":       "info",
		"development": false,
		"encoding":    "json",
	})
}
