// Package selector builds resilient CSS selector paths from DOM elements.
// Paths are assembled from stable markers only, so that selectors survive
// sibling churn and regenerated build-tool class names.
package selector

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonesrussell/pagesift/internal/dom"
)

// MarkerKind classifies the identifying fragment chosen for one element.
type MarkerKind int

const (
	// MarkerNone means the element contributes nothing to the path.
	MarkerNone MarkerKind = iota
	// MarkerID is a non-dynamic id attribute.
	MarkerID
	// MarkerSemanticTag is a semantic HTML5 tag, optionally with a class.
	MarkerSemanticTag
	// MarkerStableClass is a class token judged non-dynamic.
	MarkerStableClass
	// MarkerPositional is a tag:nth-of-type(k) fallback.
	MarkerPositional
	// MarkerTag is a bare tag name.
	MarkerTag
)

// Marker is the identifying fragment selected for a single ancestor level.
type Marker struct {
	// Kind classifies the marker.
	Kind MarkerKind
	// Token is the CSS fragment for this level.
	Token string
	// Stable indicates the marker is strong enough to anchor the path on
	// its own, allowing the upward walk to stop early.
	Stable bool
}

// semanticClassKeywords are substrings that mark a class token as authored
// content vocabulary. Tokens containing one are preferred over arbitrary
// stable classes.
var semanticClassKeywords = []string{
	"title",
	"headline",
	"heading",
	"content",
	"item",
	"card",
	"post",
	"entry",
	"story",
	"article",
	"author",
	"byline",
	"date",
	"summary",
	"teaser",
	"name",
	"link",
	"list",
	"row",
	"media",
	"thumb",
}

// positionalTags are the tags eligible for the nth-of-type fallback.
var positionalTags = map[string]bool{
	"article": true,
	"li":      true,
	"p":       true,
	"section": true,
	"td":      true,
	"th":      true,
	"tr":      true,
}

// Builder builds selector paths with a bounded ancestor traversal.
type Builder struct {
	maxDepth int
}

// NewBuilder creates a Builder with the given traversal depth cap.
func NewBuilder(maxDepth int) *Builder {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return &Builder{maxDepth: maxDepth}
}

// Build returns a selector path from root (or the document root when root
// is nil) down to el. A non-dynamic id short-circuits the walk; without an
// explicit root the walk also stops at the first stable marker, preferring
// short selectors over exhaustive paths. If the root is not reached within
// the depth cap, the partial path built so far is returned.
func (b *Builder) Build(el, root *goquery.Selection) string {
	if el == nil || len(el.Nodes) == 0 {
		return ""
	}

	var parts []string
	current := el

	for depth := 0; depth < b.maxDepth; depth++ {
		if len(current.Nodes) == 0 {
			break
		}

		tag := dom.TagName(current)
		if tag == "" || tag == "html" || tag == "body" || tag == "#document" {
			break
		}

		if root != nil && dom.SameNode(current, root) {
			break
		}

		marker := markerFor(current, depth == 0)
		if marker.Kind == MarkerID {
			return joinPath(append([]string{marker.Token}, parts...))
		}

		if marker.Token != "" {
			parts = append([]string{marker.Token}, parts...)
		}

		if marker.Stable && root == nil {
			break
		}

		current = current.Parent()
	}

	return joinPath(parts)
}

// markerFor picks the most stable identifying fragment for one element.
// Leaf elements always contribute a fragment; generic containers higher up
// are omitted unless they carry a qualifying marker.
func markerFor(s *goquery.Selection, leaf bool) Marker {
	tag := dom.TagName(s)

	if id, exists := s.Attr("id"); exists && id != "" && !LooksDynamic(id) {
		return Marker{Kind: MarkerID, Token: "#" + id, Stable: true}
	}

	stable := stableClass(s)

	if dom.IsSemanticTag(tag) {
		if stable != "" {
			return Marker{Kind: MarkerSemanticTag, Token: tag + "." + stable, Stable: true}
		}
		return Marker{Kind: MarkerSemanticTag, Token: tag}
	}

	if stable != "" {
		token := tag + "." + stable
		if dom.IsGenericTag(tag) {
			token = "." + stable
		}
		return Marker{
			Kind:   MarkerStableClass,
			Token:  token,
			Stable: hasSemanticKeyword(stable),
		}
	}

	if dom.IsGenericTag(tag) && !leaf {
		return Marker{Kind: MarkerNone}
	}

	if positionalTags[tag] {
		if k := sameTagPosition(s, tag); k > 0 {
			return Marker{
				Kind:  MarkerPositional,
				Token: fmt.Sprintf("%s:nth-of-type(%d)", tag, k),
			}
		}
	}

	return Marker{Kind: MarkerTag, Token: tag}
}

// stableClass returns the best non-dynamic class token of s, preferring
// tokens that contain a semantic keyword, or "" when none qualifies.
func stableClass(s *goquery.Selection) string {
	var fallback string

	for _, token := range dom.ClassTokens(s) {
		if LooksDynamic(token) {
			continue
		}
		if hasSemanticKeyword(token) {
			return token
		}
		if fallback == "" {
			fallback = token
		}
	}

	return fallback
}

// hasSemanticKeyword reports whether a class token contains content
// vocabulary.
func hasSemanticKeyword(token string) bool {
	lower := strings.ToLower(token)
	for _, keyword := range semanticClassKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// sameTagPosition returns the 1-based position of s among same-tag
// siblings, or 0 when s has no same-tag siblings.
func sameTagPosition(s *goquery.Selection, tag string) int {
	if s.Siblings().Filter(tag).Length() == 0 {
		return 0
	}
	return s.PrevAll().Filter(tag).Length() + 1
}

// joinPath joins level fragments with descendant combinators.
func joinPath(parts []string) string {
	return strings.Join(parts, " ")
}
