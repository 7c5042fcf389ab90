package page

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonesrussell/pagesift/internal/dom"
)

// NameCount pairs a tag or class name with its occurrence count.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Statistics summarizes the structural shape of a document.
type Statistics struct {
	Elements   int            `json:"elements"`
	Links      int            `json:"links"`
	Images     int            `json:"images"`
	Forms      int            `json:"forms"`
	Tables     int            `json:"tables"`
	Lists      int            `json:"lists"`
	Headings   map[string]int `json:"headings,omitempty"`
	TextLength int            `json:"text_length"`
	WordCount  int            `json:"word_count"`
	TopTags    []NameCount    `json:"top_tags,omitempty"`
	TopClasses []NameCount    `json:"top_classes,omitempty"`
}

// topEntryLimit caps the most-common tag and class listings.
const topEntryLimit = 10

// ExtractStatistics computes structural statistics for a document.
func ExtractStatistics(doc *goquery.Document) Statistics {
	stats := Statistics{
		Links:  doc.Find("a").Length(),
		Images: doc.Find("img").Length(),
		Forms:  doc.Find("form").Length(),
		Tables: doc.Find("table").Length(),
		Lists:  doc.Find("ul, ol, dl").Length(),
	}

	tagCounts := map[string]int{}
	classCounts := map[string]int{}

	doc.Find("*").Each(func(_ int, el *goquery.Selection) {
		stats.Elements++
		tagCounts[dom.TagName(el)]++
		for _, token := range dom.ClassTokens(el) {
			classCounts[token]++
		}
	})

	for _, heading := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
		if count := tagCounts[heading]; count > 0 {
			if stats.Headings == nil {
				stats.Headings = map[string]int{}
			}
			stats.Headings[heading] = count
		}
	}

	text := strings.TrimSpace(doc.Find("body").Text())
	stats.TextLength = len(text)
	stats.WordCount = len(strings.Fields(text))

	stats.TopTags = topEntries(tagCounts)
	stats.TopClasses = topEntries(classCounts)

	return stats
}

// topEntries returns the most common names sorted by count descending,
// with name order breaking ties for deterministic output.
func topEntries(counts map[string]int) []NameCount {
	if len(counts) == 0 {
		return nil
	}

	entries := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, NameCount{Name: name, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})

	if len(entries) > topEntryLimit {
		entries = entries[:topEntryLimit]
	}

	return entries
}
