package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonesrussell/pagesift/internal/config"
	"github.com/jonesrussell/pagesift/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, config.DefaultMinRepeat, cfg.MinRepeat)
	assert.Equal(t, config.DefaultMaxCandidates, cfg.MaxCandidates)
	assert.Equal(t, config.DefaultHighConfidenceCount, cfg.HighConfidenceCount)
	assert.Equal(t, config.DefaultCountPenaltyThreshold, cfg.CountPenaltyThreshold)
	assert.Equal(t, config.DefaultChromeCountThreshold, cfg.ChromeCountThreshold)
	assert.Equal(t, config.DefaultFrameworkScoreFloor, cfg.FrameworkScoreFloor)
	assert.Equal(t, config.DefaultMaxTraversalDepth, cfg.MaxTraversalDepth)
	assert.Equal(t, config.DefaultPreviewSampleCount, cfg.PreviewSampleCount)
	require.NoError(t, cfg.Validate())
}

func TestNew_Options(t *testing.T) {
	cfg := config.New(
		config.WithMinRepeat(4),
		config.WithMaxCandidates(5),
		config.WithChromeCountThreshold(20),
		config.WithFrameworkScoreFloor(60),
		config.WithMaxTraversalDepth(8),
		config.WithLogger(logger.Config{Level: "debug"}),
	)

	assert.Equal(t, 4, cfg.MinRepeat)
	assert.Equal(t, 5, cfg.MaxCandidates)
	assert.Equal(t, 20, cfg.ChromeCountThreshold)
	assert.Equal(t, 60, cfg.FrameworkScoreFloor)
	assert.Equal(t, 8, cfg.MaxTraversalDepth)
	assert.Equal(t, "debug", cfg.Logger.Level)
	require.NoError(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	assert.Error(t, config.New(config.WithMinRepeat(1)).Validate())
	assert.Error(t, config.New(config.WithMaxCandidates(0)).Validate())
	assert.Error(t, config.New(config.WithMaxTraversalDepth(0)).Validate())
	assert.Error(t, config.New(config.WithFrameworkScoreFloor(101)).Validate())
	assert.Error(t, config.New(config.WithFrameworkScoreFloor(-1)).Validate())
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagesift.yml")
	content := []byte("min_repeat: 4\nmax_candidates: 5\nlogger:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.MinRepeat)
	assert.Equal(t, 5, cfg.MaxCandidates)
	assert.Equal(t, "debug", cfg.Logger.Level)
	// Unset keys keep their defaults.
	assert.Equal(t, config.DefaultMaxTraversalDepth, cfg.MaxTraversalDepth)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagesift.yml")
	require.NoError(t, os.WriteFile(path, []byte("min_repeat: 1\n"), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
