package scanner

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonesrussell/pagesift/internal/dom"
	"github.com/jonesrussell/pagesift/internal/selector"
)

// classTokenPattern matches class tokens that are safe to embed in a CSS
// selector without escaping. Tokens outside this shape (Tailwind arbitrary
// values, BEM with slashes) are skipped rather than emitted as selectors
// that would not re-select coherently.
var classTokenPattern = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

// validClassToken reports whether token can appear verbatim in a selector.
func validClassToken(token string) bool {
	return classTokenPattern.MatchString(token)
}

// semanticItemTags are tags that commonly wrap one repeated content unit.
var semanticItemTags = []string{"article", "li", "tr"}

// containerTags are tags whose direct children commonly form item lists.
var containerTags = []string{"ul", "ol", "tbody", "div"}

// skippedDensityTags are excluded from link-density clustering.
var skippedDensityTags = map[string]bool{
	"html":   true,
	"head":   true,
	"body":   true,
	"script": true,
	"style":  true,
}

const (
	// maxLinkAncestorLevels bounds the upward walk from a clustered anchor.
	maxLinkAncestorLevels = 5
	// maxAnchorSamples bounds how many anchors per path segment are walked.
	maxAnchorSamples = 5
	// maxDensityAnchors is the upper anchor count for link-density clusters.
	maxDensityAnchors = 3
	// minDensityTextLength is the minimum text length for density clusters.
	minDensityTextLength = 10
)

// repeatedClassStrategy counts every class token across the document and
// emits ".token" for tokens meeting the repeat threshold. It returns the
// emitted tokens so the tag+class strategy can skip them.
func (s *Scanner) repeatedClassStrategy(doc *goquery.Document) (candidates []Candidate, covered map[string]bool) {
	counts := map[string]int{}
	var order []string

	doc.Find("*").Each(func(_ int, el *goquery.Selection) {
		seenInElement := map[string]bool{}
		for _, token := range dom.ClassTokens(el) {
			if seenInElement[token] {
				continue
			}
			seenInElement[token] = true

			if counts[token] == 0 {
				order = append(order, token)
			}
			counts[token]++
		}
	})

	covered = map[string]bool{}
	for _, token := range order {
		if counts[token] < s.cfg.MinRepeat || !validClassToken(token) {
			continue
		}

		candidate, ok := s.newCandidate(doc, "."+token)
		if !ok {
			continue
		}
		candidate.Confidence = s.confidenceForCount(candidate.MatchCount)
		candidates = append(candidates, candidate)
		covered[token] = true
	}

	return candidates, covered
}

// tagClassPatternStrategy repeats the class-count pass keyed on the
// "tag.firstClass" signature, skipping classes already emitted by the
// repeated-class strategy.
func (s *Scanner) tagClassPatternStrategy(doc *goquery.Document, covered map[string]bool) []Candidate {
	counts := map[string]int{}
	var order []string

	doc.Find("*").Each(func(_ int, el *goquery.Selection) {
		first := dom.FirstClass(el)
		if first == "" || covered[first] || !validClassToken(first) {
			return
		}

		signature := dom.TagName(el) + "." + first
		if counts[signature] == 0 {
			order = append(order, signature)
		}
		counts[signature]++
	})

	var candidates []Candidate
	for _, signature := range order {
		if counts[signature] < s.cfg.MinRepeat {
			continue
		}

		candidate, ok := s.newCandidate(doc, signature)
		if !ok {
			continue
		}
		candidate.Confidence = s.confidenceForCount(candidate.MatchCount)
		candidates = append(candidates, candidate)
	}

	return candidates
}

// semanticTagStrategy emits bare semantic tags that repeat often enough and
// are not already referenced by an earlier candidate.
func (s *Scanner) semanticTagStrategy(doc *goquery.Document, existing []Candidate) []Candidate {
	var candidates []Candidate

	for _, tag := range semanticItemTags {
		if doc.Find(tag).Length() < s.cfg.MinRepeat {
			continue
		}
		if referencesTag(existing, tag) || referencesTag(candidates, tag) {
			continue
		}

		candidate, ok := s.newCandidate(doc, tag)
		if !ok {
			continue
		}
		candidate.Confidence = s.confidenceForCount(candidate.MatchCount)
		candidates = append(candidates, candidate)
	}

	return candidates
}

// containerChildStrategy inspects list-like containers and emits
// "parent > child" selectors for child tags that repeat within a single
// container instance.
func (s *Scanner) containerChildStrategy(doc *goquery.Document, existing []Candidate) []Candidate {
	var candidates []Candidate
	emitted := map[string]bool{}

	for _, parentTag := range containerTags {
		doc.Find(parentTag).Each(func(_ int, parent *goquery.Selection) {
			childCounts := map[string]int{}
			var childOrder []string

			parent.Children().Each(func(_ int, child *goquery.Selection) {
				tag := dom.TagName(child)
				if tag == "" {
					return
				}
				if childCounts[tag] == 0 {
					childOrder = append(childOrder, tag)
				}
				childCounts[tag]++
			})

			for _, childTag := range childOrder {
				if childCounts[childTag] < s.cfg.MinRepeat {
					continue
				}

				sel := parentTag + " > " + childTag
				if emitted[sel] || referencesTag(existing, childTag) || referencesTag(candidates, childTag) {
					continue
				}

				candidate, ok := s.newCandidate(doc, sel)
				if !ok {
					continue
				}
				candidate.Confidence = s.confidenceForCount(candidate.MatchCount)
				candidates = append(candidates, candidate)
				emitted[sel] = true
			}
		})
	}

	return candidates
}

// linkPathStrategy clusters anchors by the first segment of their href
// path and walks up from a sample of the dominant cluster to the nearest
// semantic or classed container.
func (s *Scanner) linkPathStrategy(doc *goquery.Document) []Candidate {
	segmentCounts := map[string]int{}
	segmentAnchors := map[string][]*goquery.Selection{}
	var segmentOrder []string

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !usableHref(href) {
			return
		}

		segment := firstPathSegment(href)
		if segment == "" {
			return
		}

		if segmentCounts[segment] == 0 {
			segmentOrder = append(segmentOrder, segment)
		}
		segmentCounts[segment]++
		if len(segmentAnchors[segment]) < maxAnchorSamples {
			segmentAnchors[segment] = append(segmentAnchors[segment], a)
		}
	})

	best := ""
	for _, segment := range segmentOrder {
		if segmentCounts[segment] < s.cfg.MinRepeat {
			continue
		}
		if best == "" || segmentCounts[segment] > segmentCounts[best] {
			best = segment
		}
	}
	if best == "" {
		return nil
	}

	if sel := s.dominantAnchorContainer(segmentAnchors[best]); sel != "" {
		candidate, ok := s.newCandidate(doc, sel)
		if ok {
			candidate.Confidence = s.confidenceForCount(candidate.MatchCount)
			return []Candidate{candidate}
		}
	}

	// No container emerged; fall back to a bare anchor-attribute selector.
	fallback := "a[href*='/" + best + "/']"
	candidate, ok := s.newCandidate(doc, fallback)
	if !ok {
		return nil
	}
	candidate.Confidence = ConfidenceLow
	return []Candidate{candidate}
}

// dominantAnchorContainer walks up from each sampled anchor to the nearest
// semantic tag or stably classed ancestor and returns the most frequent
// such signature, preferring classed containers over bare tags.
func (s *Scanner) dominantAnchorContainer(anchors []*goquery.Selection) string {
	counts := map[string]int{}
	var order []string

	for _, a := range anchors {
		sig := nearestContainerSignature(a)
		if sig == "" {
			continue
		}
		if counts[sig] == 0 {
			order = append(order, sig)
		}
		counts[sig]++
	}

	best := ""
	for _, sig := range order {
		if best == "" {
			best = sig
			continue
		}
		if counts[sig] > counts[best] {
			best = sig
			continue
		}
		if counts[sig] == counts[best] && isClassSignature(sig) && !isClassSignature(best) {
			best = sig
		}
	}

	return best
}

// nearestContainerSignature returns the signature of the closest ancestor
// that is either a semantic tag or carries a stable class.
func nearestContainerSignature(a *goquery.Selection) string {
	current := a.Parent()
	for level := 0; level < maxLinkAncestorLevels && len(current.Nodes) > 0; level++ {
		tag := dom.TagName(current)
		if tag == "" || tag == "body" || tag == "html" {
			break
		}

		if cls := stableClassToken(current); cls != "" {
			return "." + cls
		}
		if dom.IsSemanticTag(tag) || tag == "li" || tag == "tr" {
			return tag
		}

		current = current.Parent()
	}

	return ""
}

// stableClassToken returns the first selector-safe, non-dynamic class
// token of el, or "".
func stableClassToken(el *goquery.Selection) string {
	for _, token := range dom.ClassTokens(el) {
		if validClassToken(token) && !selector.LooksDynamic(token) {
			return token
		}
	}
	return ""
}

// isClassSignature reports whether a signature anchors on a class.
func isClassSignature(sig string) bool {
	return strings.HasPrefix(sig, ".")
}

// linkDensityStrategy finds elements holding a small number of links plus
// real text and clusters them by tag.firstClass signature.
func (s *Scanner) linkDensityStrategy(doc *goquery.Document) []Candidate {
	counts := map[string]int{}
	var order []string

	doc.Find("*").Each(func(_ int, el *goquery.Selection) {
		tag := dom.TagName(el)
		if tag == "" || skippedDensityTags[tag] {
			return
		}

		anchors := el.Find("a").Length()
		if anchors < 1 || anchors > maxDensityAnchors {
			return
		}
		if len(dom.Text(el)) <= minDensityTextLength {
			return
		}

		sig := densitySignature(el, tag)
		if counts[sig] == 0 {
			order = append(order, sig)
		}
		counts[sig]++
	})

	var candidates []Candidate
	for _, sig := range order {
		if counts[sig] < s.cfg.MinRepeat {
			continue
		}

		candidate, ok := s.newCandidate(doc, sig)
		if !ok {
			continue
		}
		candidate.Confidence = s.confidenceForCount(candidate.MatchCount)
		candidates = append(candidates, candidate)
	}

	return candidates
}

// densitySignature groups an element by tag plus first selector-safe
// class, falling back to the bare tag.
func densitySignature(el *goquery.Selection, tag string) string {
	first := dom.FirstClass(el)
	if first != "" && validClassToken(first) {
		return tag + "." + first
	}
	return tag
}

// referencesTag reports whether any candidate selector already anchors on
// the given tag name.
func referencesTag(candidates []Candidate, tag string) bool {
	for _, candidate := range candidates {
		for _, part := range strings.Fields(candidate.Selector) {
			if part == tag ||
				strings.HasPrefix(part, tag+".") ||
				strings.HasPrefix(part, tag+":") ||
				strings.HasPrefix(part, tag+"[") {
				return true
			}
		}
	}
	return false
}

// firstPathSegment extracts the first path component of an href, handling
// absolute and relative URLs alike.
func firstPathSegment(href string) string {
	path := href
	if parsed, err := url.Parse(href); err == nil && parsed.Path != "" {
		path = parsed.Path
	}

	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			return segment
		}
	}

	return ""
}
