package analyzer

// CoherenceIssue records a candidate whose selector no longer matches the
// number of elements its report claims.
type CoherenceIssue struct {
	// Selector is the candidate selector that was re-applied.
	Selector string `json:"selector"`
	// Expected is the match count recorded in the report.
	Expected int `json:"expected"`
	// Actual is the match count observed on re-application.
	Actual int `json:"actual"`
}

// VerifyReport re-applies every container selector in the report to the
// source document and returns any selector/count mismatches. A healthy
// report yields an empty slice.
func (a *Analyzer) VerifyReport(html string, report *Report) []CoherenceIssue {
	if report == nil {
		return nil
	}

	doc, ok := parseDocument(html)
	if !ok {
		if len(report.Containers) == 0 {
			return nil
		}
	}

	var issues []CoherenceIssue
	for _, container := range report.Containers {
		actual := 0
		if doc != nil {
			actual = doc.Find(container.Selector).Length()
		}

		if actual != container.MatchCount {
			issues = append(issues, CoherenceIssue{
				Selector: container.Selector,
				Expected: container.MatchCount,
				Actual:   actual,
			})
		}
	}

	return issues
}
