package fields

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonesrussell/pagesift/internal/dom"
)

// smallTextTags are the tags considered when scoring date, author, and
// score candidates.
var smallTextTags = "span, div, p, td, small, em, abbr, a, b, i"

// Date detection patterns.
var (
	isoDatePattern       = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}`)
	relativeTimePattern  = regexp.MustCompile(`(?i)\b\d+\s+(?:second|minute|hour|day|week|month|year)s?\s+ago\b`)
	delimitedDatePattern = regexp.MustCompile(`\b\d{1,4}[/.-]\d{1,2}[/.-]\d{1,4}\b`)
	countedUnitPattern   = regexp.MustCompile(`(?i)\b\d+\s*(?:point|vote|upvote|like|star)s?\b`)
	numericTextPattern   = regexp.MustCompile(`^\d+$`)
)

// Date scoring weights.
const (
	dateClassBonus     = 30
	dateDataAttrBonus  = 25
	dateISOBonus       = 20
	dateRelativeBonus  = 15
	dateDelimitedBonus = 15
)

var (
	dateClassKeywords   = []string{"date", "time", "timestamp", "posted", "published", "ago", "updated"}
	dateDataAttributes  = []string{"data-date", "data-time", "data-timestamp", "data-published"}
	dateAttrNameMarkers = []string{"date", "time", "stamp", "publish"}
)

// inferDate runs the date cascade: a time element, date data attributes, a
// datetime attribute, then scored small text elements.
func (inf *Inferencer) inferDate(item *goquery.Selection) *Suggestion {
	if t := item.Find("time").First(); t.Length() > 0 {
		sample := dom.Text(t)
		sel := "time"
		if datetime, exists := t.Attr("datetime"); exists {
			sel += attrMarker + "datetime"
			sample = datetime
		}
		return inf.suggestion(item, TypeDate, sel, sample)
	}

	for _, attr := range dateDataAttributes {
		sel := "[" + attr + "]"
		match := item.Find(sel).First()
		if match.Length() == 0 {
			continue
		}
		value, _ := match.Attr(attr)
		return inf.suggestion(item, TypeDate, sel+attrMarker+attr, value)
	}

	if match := item.Find("[datetime]").First(); match.Length() > 0 {
		value, _ := match.Attr("datetime")
		return inf.suggestion(item, TypeDate, "[datetime]"+attrMarker+"datetime", value)
	}

	return inf.scoredSuggestion(item, TypeDate, scoreDateElement)
}

// scoreDateElement rates how date-like a single element is.
func scoreDateElement(el *goquery.Selection, text string) int {
	score := 0

	if classContainsAny(el, dateClassKeywords) {
		score += dateClassBonus
	}
	if hasDateLikeDataAttribute(el) {
		score += dateDataAttrBonus
	}
	if isoDatePattern.MatchString(text) {
		score += dateISOBonus
	}
	if relativeTimePattern.MatchString(text) {
		score += dateRelativeBonus
	}
	if delimitedDatePattern.MatchString(text) {
		score += dateDelimitedBonus
	}

	return score
}

// hasDateLikeDataAttribute reports whether el carries any data attribute
// whose name suggests a date value.
func hasDateLikeDataAttribute(el *goquery.Selection) bool {
	if len(el.Nodes) == 0 {
		return false
	}

	for _, attr := range el.Nodes[0].Attr {
		if !strings.HasPrefix(attr.Key, "data-") {
			continue
		}
		for _, marker := range dateAttrNameMarkers {
			if strings.Contains(attr.Key, marker) {
				return true
			}
		}
	}

	return false
}

// Author scoring weights.
const (
	authorClassBonus     = 30
	authorDataAttrBonus  = 25
	authorPrefixBonus    = 15
	authorLongPenalty    = 10
	authorShortPenalty   = 20
	authorLongTextLength = 50
)

var (
	authorSemanticSelectors = []string{
		"[itemprop='author']",
		"[rel='author']",
		"[data-author]",
		"[data-user]",
	}
	authorClassKeywords  = []string{"author", "user", "username", "by", "posted-by", "submitter", "creator", "writer"}
	authorDataAttributes = []string{"data-author", "data-user"}
)

// inferAuthor runs the author cascade: structured-data markers, then scored
// small text elements.
func (inf *Inferencer) inferAuthor(item *goquery.Selection) *Suggestion {
	for _, sel := range authorSemanticSelectors {
		match := item.Find(sel).First()
		if match.Length() == 0 {
			continue
		}

		sample := dom.Text(match)
		if sample == "" {
			if attr, ok := hasAnyDataAttribute(match, authorDataAttributes); ok {
				sample, _ = match.Attr(attr)
			}
		}

		return inf.suggestion(item, TypeAuthor, sel, sample)
	}

	return inf.scoredSuggestion(item, TypeAuthor, scoreAuthorElement)
}

// scoreAuthorElement rates how author-like a single element is.
func scoreAuthorElement(el *goquery.Selection, text string) int {
	score := 0

	if classContainsAny(el, authorClassKeywords) {
		score += authorClassBonus
	}
	if _, ok := hasAnyDataAttribute(el, authorDataAttributes); ok {
		score += authorDataAttrBonus
	}

	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "by ") || strings.HasPrefix(text, "@") {
		score += authorPrefixBonus
	}

	if len(text) > authorLongTextLength {
		score -= authorLongPenalty
	}
	if len(text) < 2 {
		score -= authorShortPenalty
	}

	return score
}

// Score (points/votes) scoring weights.
const (
	scoreClassBonus   = 30
	scorePatternBonus = 20
	scoreNumericBonus = 5
)

var (
	scoreDataAttributes = []string{"data-score", "data-points", "data-votes", "data-rating"}
	scoreClassKeywords  = []string{"score", "points", "votes", "upvotes", "rating", "karma", "likes"}
)

// inferScore runs the score cascade: score data attributes, then scored
// small text elements.
func (inf *Inferencer) inferScore(item *goquery.Selection) *Suggestion {
	for _, attr := range scoreDataAttributes {
		sel := "[" + attr + "]"
		match := item.Find(sel).First()
		if match.Length() == 0 {
			continue
		}
		value, _ := match.Attr(attr)
		return inf.suggestion(item, TypeScore, sel+attrMarker+attr, value)
	}

	return inf.scoredSuggestion(item, TypeScore, scoreScoreElement)
}

// scoreScoreElement rates how score-like a single element is.
func scoreScoreElement(el *goquery.Selection, text string) int {
	score := 0

	if classContainsAny(el, scoreClassKeywords) {
		score += scoreClassBonus
	}
	if countedUnitPattern.MatchString(text) {
		score += scorePatternBonus
	}
	if numericTextPattern.MatchString(strings.TrimSpace(text)) {
		score += scoreNumericBonus
	}

	return score
}

// scoredSuggestion applies a scoring function to every small text-bearing
// element in the item and returns the highest-scoring one, or nil when no
// element scores above zero.
func (inf *Inferencer) scoredSuggestion(
	item *goquery.Selection,
	field Type,
	score func(el *goquery.Selection, text string) int,
) *Suggestion {
	var best *goquery.Selection
	bestText := ""
	bestScore := 0

	item.Find(smallTextTags).Each(func(_ int, el *goquery.Selection) {
		text := dom.Text(el)
		if text == "" {
			return
		}

		if s := score(el, text); s > bestScore {
			best = el
			bestText = text
			bestScore = s
		}
	})

	if best == nil {
		return nil
	}

	sel := inf.selectorFor(item, best)
	if sel == "" {
		return nil
	}

	return inf.suggestion(item, field, sel, bestText)
}
