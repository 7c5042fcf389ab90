// Package framework scores a document against a registry of named
// structural profiles: structured-data conventions, CMS platforms,
// JS and CSS frameworks, and e-commerce stacks. Profile order encodes
// specificity; earlier profiles win ties.
package framework

import (
	"sort"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonesrussell/pagesift/internal/config"
	"github.com/jonesrussell/pagesift/internal/logger"
)

// Profile is a named bundle of detection signals with optional
// field-selector hints for items on pages built with that profile.
type Profile struct {
	// ID identifies the profile in reports.
	ID string
	// Score rates the document (and optionally a discovered item element)
	// against this profile on a 0-100 scale.
	Score func(doc *goquery.Document, item *goquery.Selection) int
	// Version extracts a version string when the page exposes one.
	Version func(doc *goquery.Document) string
	// Hints maps field types to selector hints conventional for this
	// profile.
	Hints map[string]string
}

// Match is one scored profile result.
type Match struct {
	// ProfileID identifies the matched profile.
	ProfileID string `json:"profile_id"`
	// Score is the profile's confidence on a 0-100 scale.
	Score int `json:"score"`
	// Version is the platform version when the page exposes one.
	Version string `json:"version,omitempty"`
	// Hints carries the profile's field-selector hints.
	Hints map[string]string `json:"hints,omitempty"`
}

// Matcher scores documents against the profile registry. The registry is
// read-only after construction; a Matcher is safe for concurrent use.
type Matcher struct {
	registry []Profile
	floor    int
	log      logger.Interface
}

// NewMatcher creates a Matcher over the default registry. A nil config
// uses the defaults; a nil logger is replaced with a no-op logger.
func NewMatcher(cfg *config.Config, log logger.Interface) *Matcher {
	if cfg == nil {
		cfg = config.New()
	}
	if log == nil {
		log = logger.NewNoOp()
	}

	return &Matcher{
		registry: defaultRegistry,
		floor:    cfg.FrameworkScoreFloor,
		log:      log.WithComponent("framework"),
	}
}

// Detect returns every profile scoring above zero, sorted by score
// descending. Ties preserve registry order, so more specific profiles
// surface first.
func (m *Matcher) Detect(doc *goquery.Document, item *goquery.Selection) []Match {
	if doc == nil {
		return nil
	}

	var matches []Match
	for _, profile := range m.registry {
		score := profile.Score(doc, item)
		if score <= 0 {
			continue
		}

		match := Match{
			ProfileID: profile.ID,
			Score:     clampScore(score),
			Hints:     profile.Hints,
		}
		if profile.Version != nil {
			match.Version = profile.Version(doc)
		}
		matches = append(matches, match)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// Best returns the highest-scoring profile when its score clears the
// configured floor. Registry order breaks score ties.
func (m *Matcher) Best(doc *goquery.Document, item *goquery.Selection) (Match, bool) {
	matches := m.Detect(doc, item)
	if len(matches) == 0 || matches[0].Score < m.floor {
		return Match{}, false
	}

	m.log.Debug("framework detected",
		"profile", matches[0].ProfileID,
		"score", matches[0].Score,
	)

	return matches[0], true
}

// maxScore caps profile scores.
const maxScore = 100

// clampScore bounds a score to the 0-100 reporting scale.
func clampScore(score int) int {
	if score > maxScore {
		return maxScore
	}
	if score < 0 {
		return 0
	}
	return score
}
