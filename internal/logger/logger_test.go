package logger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jonesrussell/pagesift/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NilConfigUsesDefaults(t *testing.T) {
	log, err := logger.New(nil)
	require.NoError(t, err)
	require.NotNil(t, log)

	// Must not panic with arbitrary field shapes.
	log.Info("message", "key", "value", "count", 3)
	log.Debug("suppressed at info level")
}

func TestNew_UnknownLevelFallsBack(t *testing.T) {
	log, err := logger.New(&logger.Config{Level: "chatty", Encoding: "json"})
	require.NoError(t, err)
	require.NotNil(t, log)

	log.Warn("still works")
}

func TestLogger_DerivedLoggers(t *testing.T) {
	log, err := logger.New(&logger.Config{Level: "error"})
	require.NoError(t, err)

	derived := log.WithComponent("scanner").
		WithDocument("https://example.com").
		WithDuration(time.Second).
		WithError(errors.New("boom"))
	assert.NotNil(t, derived)

	derived.Error("derived logger emits")
}

func TestNoOpLogger(t *testing.T) {
	log := logger.NewNoOp()

	log.Debug("ignored")
	log.Info("ignored")
	log.Warn("ignored")
	log.Error("ignored")
	assert.NotNil(t, log.With("key", "value"))
	assert.NotNil(t, log.WithComponent("test"))
}
