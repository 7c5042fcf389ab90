// Package scanner locates repeated item elements in an HTML document and
// expresses each finding as a ranked selector candidate.
package scanner

// Confidence labels how plausible an item candidate is.
type Confidence string

const (
	// ConfidenceLow marks fallback candidates such as bare anchor selectors.
	ConfidenceLow Confidence = "low"
	// ConfidenceMedium marks candidates backed by a repeated structure.
	ConfidenceMedium Confidence = "medium"
	// ConfidenceHigh marks candidates backed by a strongly repeated structure.
	ConfidenceHigh Confidence = "high"
)

// tier maps a confidence label to its ranking weight.
func (c Confidence) tier() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	default:
		return 1
	}
}

// Candidate is a proposed selector believed to match one instance of a
// repeated content unit on a page. Ordering in a result list is rank.
type Candidate struct {
	// Selector is the CSS selector for the repeated item.
	Selector string `json:"selector"`
	// MatchCount is the number of elements the selector matches in the
	// source document. Re-applying Selector always yields exactly this
	// many elements.
	MatchCount int `json:"match_count"`
	// SampleText is representative text from the first matching element.
	SampleText string `json:"sample_text"`
	// SampleURL is the first link found inside the first matching
	// element, when one exists.
	SampleURL string `json:"sample_url,omitempty"`
	// Confidence labels the candidate's plausibility.
	Confidence Confidence `json:"confidence"`
}

// meaningfulSampleLength is the minimum sample length counted as a real
// title during ranking.
const meaningfulSampleLength = 10

// hasMeaningfulSample reports whether the candidate's sample text reads
// like content rather than a structural placeholder.
func (c Candidate) hasMeaningfulSample() bool {
	return len(c.SampleText) > meaningfulSampleLength && !isStructuralSample(c.SampleText)
}
