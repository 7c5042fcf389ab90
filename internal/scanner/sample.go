package scanner

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonesrussell/pagesift/internal/dom"
)

const (
	// maxSampleLength caps sample text attached to a candidate.
	maxSampleLength = 100
	// minAnchorSampleLength is the shortest anchor text used as a sample.
	minAnchorSampleLength = 3
)

// structuralSamplePrefix marks samples synthesized from element structure
// rather than taken from page text. Flagged samples never count as
// meaningful titles during ranking.
const structuralSamplePrefix = "["

// shortSampleLength is the trimmed-text length at or below which a sample
// is flagged as too short to be a title.
const shortSampleLength = 10

// isStructuralSample reports whether sample carries a flag prefix instead
// of plain page text.
func isStructuralSample(sample string) bool {
	return strings.HasPrefix(sample, structuralSamplePrefix)
}

// sampleText derives representative text for the first element matching a
// candidate: the first heading inside it, else the first anchor with more
// than three characters of text, else the element's own trimmed text
// (flagged when at most ten characters), else a synthesized structural
// description.
func sampleText(el *goquery.Selection) string {
	if heading := dom.Text(el.Find("h1, h2, h3, h4, h5, h6").First()); heading != "" {
		return truncateSample(heading)
	}

	anchorText := ""
	el.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if text := dom.Text(a); len(text) > minAnchorSampleLength {
			anchorText = text
			return false
		}
		return true
	})
	if anchorText != "" {
		return truncateSample(anchorText)
	}

	if text := dom.Text(el); text != "" {
		if len(text) <= shortSampleLength {
			return fmt.Sprintf("%sshort: %s]", structuralSamplePrefix, text)
		}
		return truncateSample(text)
	}

	return structuralSample(el)
}

// structuralSample builds a placeholder description from the element's tag,
// distinct child tags, and link count.
func structuralSample(el *goquery.Selection) string {
	childTags := dom.DistinctChildTags(el)
	linkCount := el.Find("a").Length()

	description := dom.TagName(el)
	if len(childTags) > 0 {
		description += ": " + strings.Join(childTags, ", ")
	}

	return fmt.Sprintf("%s%s; %d links]", structuralSamplePrefix, description, linkCount)
}

// sampleURL returns the first usable link inside el, or "".
func sampleURL(el *goquery.Selection) string {
	href := ""
	el.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		value, _ := a.Attr("href")
		if usableHref(value) {
			href = value
			return false
		}
		return true
	})

	// The element may itself be the anchor.
	if href == "" && dom.TagName(el) == "a" {
		if value, exists := el.Attr("href"); exists && usableHref(value) {
			href = value
		}
	}

	return href
}

// usableHref reports whether an href points at content rather than a
// fragment or script invocation.
func usableHref(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(href), "javascript:")
}

// truncateSample bounds sample text to maxSampleLength.
func truncateSample(text string) string {
	if len(text) <= maxSampleLength {
		return text
	}
	return text[:maxSampleLength] + "..."
}
