package scanner

import (
	"sort"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/jonesrussell/pagesift/internal/config"
	"github.com/jonesrussell/pagesift/internal/logger"
)

// Scanner scans a document for repeated item structures. It holds no
// per-document state; a single Scanner is safe for concurrent use on
// independent documents.
type Scanner struct {
	cfg *config.Config
	log logger.Interface
}

// New creates a Scanner. A nil config uses the defaults; a nil logger is
// replaced with a no-op logger.
func New(cfg *config.Config, log logger.Interface) *Scanner {
	if cfg == nil {
		cfg = config.New()
	}
	if log == nil {
		log = logger.NewNoOp()
	}

	return &Scanner{
		cfg: cfg,
		log: log.WithComponent("scanner"),
	}
}

// FindItemCandidates runs all detection strategies over the document and
// returns deduplicated candidates ranked by relevance. The output is
// deterministic: the same tree always produces the same ordered list.
func (s *Scanner) FindItemCandidates(doc *goquery.Document) []Candidate {
	if doc == nil {
		return nil
	}

	var merged []Candidate
	seen := map[string]bool{}
	add := func(candidates []Candidate) {
		for _, candidate := range candidates {
			if seen[candidate.Selector] {
				continue
			}
			seen[candidate.Selector] = true
			merged = append(merged, candidate)
		}
	}

	classCandidates, coveredTokens := s.repeatedClassStrategy(doc)
	add(classCandidates)
	add(s.tagClassPatternStrategy(doc, coveredTokens))
	add(s.semanticTagStrategy(doc, merged))
	add(s.containerChildStrategy(doc, merged))
	add(s.linkPathStrategy(doc))
	add(s.linkDensityStrategy(doc))

	s.rank(merged)

	if len(merged) > s.cfg.MaxCandidates {
		merged = merged[:s.cfg.MaxCandidates]
	}

	filtered := s.dropChromeNoise(merged)

	s.log.Debug("item candidate scan complete",
		"candidates", len(filtered),
		"before_filter", len(merged),
	)

	return filtered
}

// rank sorts candidates by confidence tier, sample quality, and adjusted
// match count. Counts above the penalty threshold are halved before
// comparison so navigation-sized clusters rank below content lists.
func (s *Scanner) rank(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		if at, bt := a.Confidence.tier(), b.Confidence.tier(); at != bt {
			return at > bt
		}

		am, bm := a.hasMeaningfulSample(), b.hasMeaningfulSample()
		if am != bm {
			return am
		}

		return s.adjustedCount(a.MatchCount) > s.adjustedCount(b.MatchCount)
	})
}

// adjustedCount halves counts above the penalty threshold.
func (s *Scanner) adjustedCount(count int) int {
	if count > s.cfg.CountPenaltyThreshold {
		return count / 2
	}
	return count
}

// dropChromeNoise removes candidates that match an implausibly large
// number of elements and carry no sample URL. When the filter would remove
// every candidate, the unfiltered list is returned instead.
func (s *Scanner) dropChromeNoise(candidates []Candidate) []Candidate {
	filtered := make([]Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.MatchCount > s.cfg.ChromeCountThreshold && candidate.SampleURL == "" {
			continue
		}
		filtered = append(filtered, candidate)
	}

	if len(filtered) == 0 {
		return candidates
	}

	return filtered
}

// confidenceForCount maps a match count to a confidence label.
func (s *Scanner) confidenceForCount(count int) Confidence {
	if count >= s.cfg.HighConfidenceCount {
		return ConfidenceHigh
	}
	return ConfidenceMedium
}

// newCandidate builds a candidate for sel, recording the match count and
// sample data from the live document. It returns false when the selector
// is invalid or matches nothing, keeping the selector/count coherence
// invariant trivially true for every emitted candidate.
func (s *Scanner) newCandidate(doc *goquery.Document, sel string) (Candidate, bool) {
	if _, err := cascadia.Parse(sel); err != nil {
		return Candidate{}, false
	}

	matches := doc.Find(sel)
	count := matches.Length()
	if count == 0 {
		return Candidate{}, false
	}

	first := matches.First()

	return Candidate{
		Selector:   sel,
		MatchCount: count,
		SampleText: sampleText(first),
		SampleURL:  sampleURL(first),
	}, true
}
