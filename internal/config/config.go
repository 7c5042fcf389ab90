// Package config provides configuration for the page analysis pipeline.
// The detection thresholds are empirically chosen values; they are exposed
// here as settings rather than hard constants.
package config

import (
	"errors"
	"fmt"

	"github.com/jonesrussell/pagesift/internal/logger"
)

// Default threshold values.
const (
	// DefaultMinRepeat is the minimum number of structurally similar
	// elements required before a selector is considered a repeating item.
	DefaultMinRepeat = 3
	// DefaultMaxCandidates is the maximum number of item candidates returned.
	DefaultMaxCandidates = 15
	// DefaultHighConfidenceCount is the match count at which a repeated
	// class candidate is promoted from medium to high confidence.
	DefaultHighConfidenceCount = 10
	// DefaultCountPenaltyThreshold is the match count above which counts
	// are halved during ranking, penalizing navigation-sized clusters.
	DefaultCountPenaltyThreshold = 50
	// DefaultChromeCountThreshold is the match count above which a
	// candidate with no sample URL is dropped as navigation/chrome noise.
	DefaultChromeCountThreshold = 100
	// DefaultFrameworkScoreFloor is the minimum score for a framework
	// profile to be reported as the best match.
	DefaultFrameworkScoreFloor = 40
	// DefaultMaxTraversalDepth caps how many ancestor levels the selector
	// builder walks before returning a partial path.
	DefaultMaxTraversalDepth = 15
	// DefaultPreviewSampleCount is the number of sample records returned
	// by a preview call.
	DefaultPreviewSampleCount = 3
)

// Config represents the analyzer configuration settings.
type Config struct {
	// MinRepeat is the minimum repetition count for item detection.
	MinRepeat int `yaml:"min_repeat" mapstructure:"min_repeat"`
	// MaxCandidates is the maximum number of item candidates to return.
	MaxCandidates int `yaml:"max_candidates" mapstructure:"max_candidates"`
	// HighConfidenceCount promotes repeated-class candidates to high confidence.
	HighConfidenceCount int `yaml:"high_confidence_count" mapstructure:"high_confidence_count"`
	// CountPenaltyThreshold halves match counts above this value during ranking.
	CountPenaltyThreshold int `yaml:"count_penalty_threshold" mapstructure:"count_penalty_threshold"`
	// ChromeCountThreshold drops URL-less candidates above this match count.
	ChromeCountThreshold int `yaml:"chrome_count_threshold" mapstructure:"chrome_count_threshold"`
	// FrameworkScoreFloor is the minimum best-match framework score.
	FrameworkScoreFloor int `yaml:"framework_score_floor" mapstructure:"framework_score_floor"`
	// MaxTraversalDepth caps selector builder ancestor traversal.
	MaxTraversalDepth int `yaml:"max_traversal_depth" mapstructure:"max_traversal_depth"`
	// PreviewSampleCount is the number of records returned by previews.
	PreviewSampleCount int `yaml:"preview_sample_count" mapstructure:"preview_sample_count"`
	// Logger holds the logging configuration.
	Logger logger.Config `yaml:"logger" mapstructure:"logger"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MinRepeat < 2 {
		return fmt.Errorf("min_repeat must be at least 2, got %d", c.MinRepeat)
	}

	if c.MaxCandidates < 1 {
		return errors.New("max_candidates must be positive")
	}

	if c.MaxTraversalDepth < 1 {
		return errors.New("max_traversal_depth must be positive")
	}

	if c.PreviewSampleCount < 1 {
		return errors.New("preview_sample_count must be positive")
	}

	if c.FrameworkScoreFloor < 0 || c.FrameworkScoreFloor > 100 {
		return fmt.Errorf("framework_score_floor must be within 0-100, got %d", c.FrameworkScoreFloor)
	}

	return nil
}

// New creates a new configuration with the given options applied on top of
// the defaults.
func New(opts ...Option) *Config {
	cfg := &Config{
		MinRepeat:             DefaultMinRepeat,
		MaxCandidates:         DefaultMaxCandidates,
		HighConfidenceCount:   DefaultHighConfidenceCount,
		CountPenaltyThreshold: DefaultCountPenaltyThreshold,
		ChromeCountThreshold:  DefaultChromeCountThreshold,
		FrameworkScoreFloor:   DefaultFrameworkScoreFloor,
		MaxTraversalDepth:     DefaultMaxTraversalDepth,
		PreviewSampleCount:    DefaultPreviewSampleCount,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Option is a function that configures a Config.
type Option func(*Config)

// WithMinRepeat sets the minimum repetition count.
func WithMinRepeat(n int) Option {
	return func(c *Config) {
		c.MinRepeat = n
	}
}

// WithMaxCandidates sets the maximum candidate count.
func WithMaxCandidates(n int) Option {
	return func(c *Config) {
		c.MaxCandidates = n
	}
}

// WithChromeCountThreshold sets the chrome filter threshold.
func WithChromeCountThreshold(n int) Option {
	return func(c *Config) {
		c.ChromeCountThreshold = n
	}
}

// WithFrameworkScoreFloor sets the framework best-match floor.
func WithFrameworkScoreFloor(n int) Option {
	return func(c *Config) {
		c.FrameworkScoreFloor = n
	}
}

// WithMaxTraversalDepth sets the selector builder traversal cap.
func WithMaxTraversalDepth(n int) Option {
	return func(c *Config) {
		c.MaxTraversalDepth = n
	}
}

// WithLogger sets the logging configuration.
func WithLogger(lc logger.Config) Option {
	return func(c *Config) {
		c.Logger = lc
	}
}
