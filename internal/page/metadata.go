// Package page extracts document-level metadata and structural statistics
// from a parsed HTML page.
package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Metadata holds document-level descriptive tags.
type Metadata struct {
	// Title is the page title, preferring <title> with og:title fallback.
	Title string `json:"title,omitempty"`
	// Description is the meta description, with og:description fallback.
	Description string `json:"description,omitempty"`
	// Language is the document language from the html lang attribute.
	Language string `json:"language,omitempty"`
	// Canonical is the canonical URL from the canonical link tag.
	Canonical string `json:"canonical,omitempty"`
	// OpenGraph maps og:* property suffixes to their content.
	OpenGraph map[string]string `json:"open_graph,omitempty"`
	// Twitter maps twitter:* name suffixes to their content.
	Twitter map[string]string `json:"twitter,omitempty"`
}

// ExtractMetadata extracts document metadata. Missing tags degrade to
// empty fields, never errors.
func ExtractMetadata(doc *goquery.Document) Metadata {
	meta := Metadata{
		Title:       extractTitle(doc),
		Description: extractDescription(doc),
		OpenGraph:   extractPrefixedMeta(doc, "meta[property^='og:']", "property", "og:"),
		Twitter:     extractPrefixedMeta(doc, "meta[name^='twitter:']", "name", "twitter:"),
	}

	if lang, exists := doc.Find("html").First().Attr("lang"); exists {
		meta.Language = strings.TrimSpace(lang)
	}

	if canonical, exists := doc.Find("link[rel='canonical']").First().Attr("href"); exists {
		meta.Canonical = strings.TrimSpace(canonical)
	}

	return meta
}

// extractTitle extracts the page title, preferring <title> then og:title.
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}

	if ogTitle, exists := doc.Find("meta[property='og:title']").Attr("content"); exists {
		return strings.TrimSpace(ogTitle)
	}

	return ""
}

// extractDescription extracts the description from meta tags.
func extractDescription(doc *goquery.Document) string {
	if desc, exists := doc.Find("meta[name='description']").Attr("content"); exists {
		return strings.TrimSpace(desc)
	}

	if ogDesc, exists := doc.Find("meta[property='og:description']").Attr("content"); exists {
		return strings.TrimSpace(ogDesc)
	}

	return ""
}

// extractPrefixedMeta collects meta tags sharing a property prefix into a
// map keyed by the suffix after the prefix.
func extractPrefixedMeta(doc *goquery.Document, sel, keyAttr, prefix string) map[string]string {
	var tags map[string]string

	doc.Find(sel).Each(func(_ int, meta *goquery.Selection) {
		key, _ := meta.Attr(keyAttr)
		content, exists := meta.Attr("content")
		if !exists {
			return
		}

		suffix := strings.TrimPrefix(key, prefix)
		if suffix == "" {
			return
		}

		if tags == nil {
			tags = map[string]string{}
		}
		if _, seen := tags[suffix]; !seen {
			tags[suffix] = strings.TrimSpace(content)
		}
	})

	return tags
}
