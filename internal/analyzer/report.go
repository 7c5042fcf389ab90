// Package analyzer aggregates structural scanning, field inference,
// framework detection, and page metadata into a single analysis report.
package analyzer

import (
	"github.com/jonesrussell/pagesift/internal/fields"
	"github.com/jonesrussell/pagesift/internal/framework"
	"github.com/jonesrussell/pagesift/internal/page"
	"github.com/jonesrussell/pagesift/internal/scanner"
)

// Container is one item candidate enriched with per-field suggestions.
type Container struct {
	scanner.Candidate
	// Fields maps field names to the selector suggestion inferred within
	// the first matching item.
	Fields map[string]fields.Suggestion `json:"fields,omitempty"`
}

// Report is the JSON-serializable result of one analysis call.
type Report struct {
	// ID identifies this analysis run.
	ID string `json:"id"`
	// URL is the source URL supplied by the caller, when known.
	URL string `json:"url,omitempty"`
	// Frameworks lists every framework profile scoring above zero,
	// highest score first.
	Frameworks []framework.Match `json:"frameworks"`
	// Containers lists ranked item candidates with field suggestions.
	Containers []Container `json:"containers"`
	// Metadata holds document-level descriptive tags.
	Metadata page.Metadata `json:"metadata"`
	// Statistics summarizes the document's structural shape.
	Statistics page.Statistics `json:"statistics"`
	// Suggestions is the recommended field-selector set, drawn from the
	// top-ranked container and back-filled from framework hints.
	Suggestions map[string]fields.Suggestion `json:"suggestions,omitempty"`
}

// TopContainer returns the highest-ranked container, or nil when the
// document produced no candidates.
func (r *Report) TopContainer() *Container {
	if len(r.Containers) == 0 {
		return nil
	}
	return &r.Containers[0]
}
