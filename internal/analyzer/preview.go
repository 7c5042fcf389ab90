package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/jonesrussell/pagesift/internal/fields"
)

// ExtractionFailed is the sentinel value substituted for a field whose
// selector fails during preview evaluation.
const ExtractionFailed = "[extraction failed]"

// Record is one extracted sample record, keyed by field name.
type Record map[string]string

// Preview applies a caller-supplied selector set to the document and
// returns up to the configured number of sample records. Empty input, an
// invalid item selector, or an unmatched item selector all yield an empty
// list; a field selector that fails during evaluation surfaces as the
// ExtractionFailed sentinel in each record.
func (a *Analyzer) Preview(html, itemSelector string, fieldSelectors map[string]string) []Record {
	a.metrics.RecordPreview()

	doc, ok := parseDocument(html)
	if !ok {
		return []Record{}
	}

	if _, err := cascadia.Parse(itemSelector); err != nil {
		a.log.WithError(err).Debug("invalid item selector in preview", "selector", itemSelector)
		return []Record{}
	}

	items := doc.Find(itemSelector)
	if items.Length() == 0 {
		return []Record{}
	}

	records := make([]Record, 0, a.cfg.PreviewSampleCount)
	items.EachWithBreak(func(i int, item *goquery.Selection) bool {
		if i >= a.cfg.PreviewSampleCount {
			return false
		}

		record := Record{}
		for name, sel := range fieldSelectors {
			record[name] = evaluateField(item, sel)
		}
		records = append(records, record)

		return true
	})

	return records
}

// evaluateField extracts one field value from an item. A selector that
// cannot be parsed or panics during evaluation yields the sentinel.
func evaluateField(item *goquery.Selection, sel string) (value string) {
	defer func() {
		if recover() != nil {
			value = ExtractionFailed
		}
	}()

	base, attr := fields.SplitAttrMarker(sel)
	if strings.TrimSpace(base) == "" {
		return ExtractionFailed
	}

	if _, err := cascadia.Parse(base); err != nil {
		return ExtractionFailed
	}

	match := item.Find(base).First()
	if match.Length() == 0 {
		return ""
	}

	if attr != "" {
		attrValue, _ := match.Attr(attr)
		return strings.TrimSpace(attrValue)
	}

	// Meta tags carry their value in the content attribute.
	if strings.HasPrefix(base, "meta[") {
		content, _ := match.Attr("content")
		return strings.TrimSpace(content)
	}

	return strings.TrimSpace(match.Text())
}
