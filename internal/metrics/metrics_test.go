package metrics_test

import (
	"testing"

	"github.com/jonesrussell/pagesift/internal/metrics"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordAnalysis(t *testing.T) {
	m := metrics.NewMetrics()

	m.RecordAnalysis(4)
	m.RecordAnalysis(6)

	assert.Equal(t, int64(2), m.GetAnalyzedCount())
	assert.Equal(t, int64(10), m.GetCandidateCount())
	assert.False(t, m.GetLastAnalyzedTime().IsZero())
}

func TestMetrics_RecordEmptyInputAndPreview(t *testing.T) {
	m := metrics.NewMetrics()

	m.RecordEmptyInput()
	m.RecordPreview()
	m.RecordPreview()

	assert.Equal(t, int64(1), m.GetEmptyInputCount())
	assert.Equal(t, int64(2), m.GetPreviewCount())
	assert.Zero(t, m.GetAnalyzedCount())
}

func TestMetrics_Reset(t *testing.T) {
	m := metrics.NewMetrics()

	m.RecordAnalysis(3)
	m.RecordEmptyInput()
	m.RecordPreview()
	m.Reset()

	assert.Zero(t, m.GetAnalyzedCount())
	assert.Zero(t, m.GetCandidateCount())
	assert.Zero(t, m.GetEmptyInputCount())
	assert.Zero(t, m.GetPreviewCount())
	assert.True(t, m.GetLastAnalyzedTime().IsZero())
}
