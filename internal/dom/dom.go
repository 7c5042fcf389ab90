// Package dom provides read-only helpers over goquery selections used by
// the selector builder, scanner, and field inference. Nothing here mutates
// the parsed document.
package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// semanticTags are tags that carry structural meaning on their own and make
// good selector anchors.
var semanticTags = map[string]bool{
	"article": true,
	"aside":   true,
	"figure":  true,
	"footer":  true,
	"header":  true,
	"main":    true,
	"nav":     true,
	"section": true,
	"time":    true,
}

// genericTags are layout containers that add no selector value.
var genericTags = map[string]bool{
	"div":  true,
	"span": true,
}

// IsSemanticTag reports whether tag is a semantic HTML5 tag.
func IsSemanticTag(tag string) bool {
	return semanticTags[tag]
}

// IsGenericTag reports whether tag is a generic layout container.
func IsGenericTag(tag string) bool {
	return genericTags[tag]
}

// TagName returns the lowercase tag name of the first node in s, or "" for
// an empty selection.
func TagName(s *goquery.Selection) string {
	return goquery.NodeName(s)
}

// ClassTokens returns the ordered class tokens of the first node in s.
func ClassTokens(s *goquery.Selection) []string {
	class, exists := s.Attr("class")
	if !exists {
		return nil
	}
	return strings.Fields(class)
}

// FirstClass returns the first class token of the first node in s, or "".
func FirstClass(s *goquery.Selection) string {
	tokens := ClassTokens(s)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

// Signature returns "tag.firstClass" when the element has a class, else the
// bare tag name. Used to group structurally similar elements.
func Signature(s *goquery.Selection) string {
	tag := TagName(s)
	if tag == "" {
		return ""
	}

	if first := FirstClass(s); first != "" {
		return tag + "." + first
	}

	return tag
}

// Text returns the trimmed combined text of s and its descendants.
func Text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

// DirectText returns the trimmed text held directly by the first node of s,
// excluding descendant element text.
func DirectText(s *goquery.Selection) string {
	if len(s.Nodes) == 0 {
		return ""
	}

	var builder strings.Builder
	for child := s.Nodes[0].FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			builder.WriteString(child.Data)
		}
	}

	return strings.TrimSpace(builder.String())
}

// LevelsBelow returns the number of ancestor levels between el and ancestor.
// It returns -1 if ancestor is not an ancestor of el.
func LevelsBelow(el, ancestor *goquery.Selection) int {
	if len(el.Nodes) == 0 || len(ancestor.Nodes) == 0 {
		return -1
	}

	target := ancestor.Nodes[0]
	levels := 0
	for node := el.Nodes[0].Parent; node != nil; node = node.Parent {
		levels++
		if node == target {
			return levels
		}
	}

	return -1
}

// SameNode reports whether two selections refer to the same first node.
func SameNode(a, b *goquery.Selection) bool {
	return len(a.Nodes) > 0 && len(b.Nodes) > 0 && a.Nodes[0] == b.Nodes[0]
}

// DistinctChildTags returns the distinct tag names of the direct element
// children of s, in document order.
func DistinctChildTags(s *goquery.Selection) []string {
	seen := map[string]bool{}
	var tags []string

	s.Children().Each(func(_ int, child *goquery.Selection) {
		tag := TagName(child)
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	})

	return tags
}
