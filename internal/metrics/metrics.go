// Package metrics provides counters for the analysis pipeline.
package metrics

import (
	"sync"
	"time"
)

// Metrics holds analysis run counters.
type Metrics struct {
	// AnalyzedCount is the number of documents analyzed.
	AnalyzedCount int64
	// EmptyInputCount is the number of empty or whitespace-only inputs.
	EmptyInputCount int64
	// PreviewCount is the number of preview calls served.
	PreviewCount int64
	// CandidateCount is the total number of item candidates emitted.
	CandidateCount int64
	// LastAnalyzedTime is the time of the last completed analysis.
	LastAnalyzedTime time.Time
	// StartTime is when the metrics collection began.
	StartTime time.Time
	// mu protects concurrent access to metrics.
	mu sync.Mutex
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// RecordAnalysis records one completed analysis and its candidate count.
func (m *Metrics) RecordAnalysis(candidates int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AnalyzedCount++
	m.CandidateCount += int64(candidates)
	m.LastAnalyzedTime = time.Now()
}

// RecordEmptyInput records an empty or whitespace-only input.
func (m *Metrics) RecordEmptyInput() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EmptyInputCount++
}

// RecordPreview records one preview call.
func (m *Metrics) RecordPreview() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PreviewCount++
}

// GetAnalyzedCount returns the number of documents analyzed.
func (m *Metrics) GetAnalyzedCount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.AnalyzedCount
}

// GetEmptyInputCount returns the number of empty inputs seen.
func (m *Metrics) GetEmptyInputCount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.EmptyInputCount
}

// GetPreviewCount returns the number of preview calls served.
func (m *Metrics) GetPreviewCount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.PreviewCount
}

// GetCandidateCount returns the total number of candidates emitted.
func (m *Metrics) GetCandidateCount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CandidateCount
}

// GetLastAnalyzedTime returns the time of the last completed analysis.
func (m *Metrics) GetLastAnalyzedTime() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.LastAnalyzedTime
}

// Reset resets all counters to their initial values.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AnalyzedCount = 0
	m.EmptyInputCount = 0
	m.PreviewCount = 0
	m.CandidateCount = 0
	m.LastAnalyzedTime = time.Time{}
}
