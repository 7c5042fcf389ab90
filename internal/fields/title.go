package fields

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonesrussell/pagesift/internal/dom"
)

// titleDataAttributes carry an explicit title value.
var titleDataAttributes = []string{"data-title", "data-name", "data-heading"}

// titleSemanticSelectors are structured-data markers for a title.
var titleSemanticSelectors = []string{
	"[itemprop='name']",
	"[itemprop='headline']",
	"[role='heading']",
}

// titleTextTags are the tags considered when hunting for the longest text
// block inside an item.
var titleTextTags = "a, p, span, div, strong, em, b, td, dt"

const (
	// minTitleTextLength is the minimum text length for the longest-text
	// strategy.
	minTitleTextLength = 10
	// deepTitleLevels is the depth at which a raw class selector is
	// abandoned in favor of a built path.
	deepTitleLevels = 5
)

// inferTitle runs the title cascade: headings, data attributes, semantic
// markers, longest text block, then scored anchors.
func (inf *Inferencer) inferTitle(item *goquery.Selection) *Suggestion {
	if s := inf.titleFromHeading(item); s != nil {
		return s
	}
	if s := inf.titleFromDataAttribute(item); s != nil {
		return s
	}
	if s := inf.titleFromSemanticMarker(item); s != nil {
		return s
	}
	if s := inf.titleFromLongestText(item); s != nil {
		return s
	}
	return inf.titleFromScoredAnchor(item)
}

// titleFromHeading returns the first non-empty heading inside the item.
func (inf *Inferencer) titleFromHeading(item *goquery.Selection) *Suggestion {
	var found *Suggestion

	item.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		text := dom.Text(heading)
		if text == "" {
			return true
		}

		found = inf.suggestion(item, TypeTitle, dom.TagName(heading), text)
		return false
	})

	return found
}

// titleFromDataAttribute returns the first element carrying a title data
// attribute.
func (inf *Inferencer) titleFromDataAttribute(item *goquery.Selection) *Suggestion {
	for _, attr := range titleDataAttributes {
		sel := "[" + attr + "]"
		match := item.Find(sel).First()
		if match.Length() == 0 {
			continue
		}

		value, _ := match.Attr(attr)
		if strings.TrimSpace(value) == "" {
			continue
		}

		return inf.suggestion(item, TypeTitle, sel+attrMarker+attr, value)
	}

	return nil
}

// titleFromSemanticMarker returns the first element with a structured-data
// title marker.
func (inf *Inferencer) titleFromSemanticMarker(item *goquery.Selection) *Suggestion {
	for _, sel := range titleSemanticSelectors {
		match := item.Find(sel).First()
		if match.Length() == 0 {
			continue
		}

		text := dom.Text(match)
		if text == "" {
			continue
		}

		return inf.suggestion(item, TypeTitle, sel, text)
	}

	return nil
}

// titleFromLongestText picks the element with the longest direct text among
// common inline and container tags. Elements whose direct text is short
// fall back to their combined descendant text. Deeply nested winners are
// expressed through the path builder rather than a raw class selector.
func (inf *Inferencer) titleFromLongestText(item *goquery.Selection) *Suggestion {
	var best *goquery.Selection
	bestText := ""

	item.Find(titleTextTags).Each(func(_ int, el *goquery.Selection) {
		text := dom.DirectText(el)
		if len(text) < minTitleTextLength {
			text = dom.Text(el)
		}

		if len(text) > len(bestText) {
			best = el
			bestText = text
		}
	})

	if best == nil || len(bestText) <= minTitleTextLength {
		return nil
	}

	var sel string
	if levels := dom.LevelsBelow(best, item); levels >= deepTitleLevels {
		sel = inf.builder.Build(best, item)
	} else {
		sel = inf.selectorFor(item, best)
	}
	if sel == "" {
		return nil
	}

	return inf.suggestion(item, TypeTitle, sel, bestText)
}

// Anchor scoring weights for the final title strategy.
const (
	anchorTextScoreCap       = 100
	anchorShortTextPenalty   = 50
	anchorBookmarkBonus      = 20
	anchorDataAttributeBonus = 15
	anchorActionPenalty      = 30
	anchorTinyAsciiPenalty   = 20
	anchorShortTextLength    = 3
)

// anchorActionKeywords mark anchors that are interaction chrome, not titles.
var anchorActionKeywords = []string{"vote", "reply", "share", "button", "comment", "flag", "hide"}

// titleFromScoredAnchor scores every anchor in the item and expresses the
// best one as a selector: its own class when stable, else a parent-scoped
// descendant selector, else a bare anchor.
func (inf *Inferencer) titleFromScoredAnchor(item *goquery.Selection) *Suggestion {
	var best *goquery.Selection
	bestScore := 0

	item.Find("a").Each(func(_ int, a *goquery.Selection) {
		score := scoreAnchor(a)
		if best == nil || score > bestScore {
			best = a
			bestScore = score
		}
	})

	if best == nil {
		return nil
	}

	sel := "a"
	if cls := stableClass(best); cls != "" {
		sel = "a." + cls
	} else if parentCls := stableClass(best.Parent()); parentCls != "" {
		sel = "." + parentCls + " a"
	}

	return inf.suggestion(item, TypeTitle, sel, dom.Text(best))
}

// scoreAnchor rates how title-like a single anchor is.
func scoreAnchor(a *goquery.Selection) int {
	text := dom.Text(a)
	score := min(len(text), anchorTextScoreCap)

	if len(text) <= anchorShortTextLength && isASCII(text) {
		score -= anchorShortTextPenalty
	}

	if rel, _ := a.Attr("rel"); rel == "bookmark" {
		score += anchorBookmarkBonus
	}
	if itemprop, _ := a.Attr("itemprop"); strings.Contains(itemprop, "name") {
		score += anchorBookmarkBonus
	}

	if _, ok := hasAnyDataAttribute(a, titleDataAttributes); ok {
		score += anchorDataAttributeBonus
	}

	if classContainsAny(a, anchorActionKeywords) || textContainsAny(text, anchorActionKeywords) {
		score -= anchorActionPenalty
	}

	if len(text) < 2 && isASCII(text) {
		score -= anchorTinyAsciiPenalty
	}

	return score
}

// textContainsAny reports whether text contains one of the keywords,
// case-insensitively.
func textContainsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// isASCII reports whether text contains no characters above the ASCII range.
func isASCII(text string) bool {
	for _, r := range text {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
