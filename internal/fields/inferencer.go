package fields

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonesrussell/pagesift/internal/config"
	"github.com/jonesrussell/pagesift/internal/dom"
	"github.com/jonesrussell/pagesift/internal/logger"
	"github.com/jonesrussell/pagesift/internal/selector"
)

// Inferencer proposes field selectors within a single item element. All
// inference is a pure function of the item subtree.
type Inferencer struct {
	builder *selector.Builder
	log     logger.Interface
}

// NewInferencer creates an Inferencer. A nil config uses the defaults; a
// nil logger is replaced with a no-op logger.
func NewInferencer(cfg *config.Config, log logger.Interface) *Inferencer {
	if cfg == nil {
		cfg = config.New()
	}
	if log == nil {
		log = logger.NewNoOp()
	}

	return &Inferencer{
		builder: selector.NewBuilder(cfg.MaxTraversalDepth),
		log:     log.WithComponent("fields"),
	}
}

// Infer proposes a selector for one field type within the item element.
// It returns (nil, nil) when no heuristic produces a signal; an error is
// returned only for programmatic misuse.
func (inf *Inferencer) Infer(item *goquery.Selection, field Type) (*Suggestion, error) {
	if item == nil || len(item.Nodes) == 0 {
		return nil, ErrNilItem
	}

	switch field {
	case TypeTitle:
		return inf.inferTitle(item), nil
	case TypeURL:
		return inf.inferURL(item), nil
	case TypeDate:
		return inf.inferDate(item), nil
	case TypeAuthor:
		return inf.inferAuthor(item), nil
	case TypeScore:
		return inf.inferScore(item), nil
	case TypeImage:
		return inf.inferImage(item), nil
	default:
		return nil, ErrUnsupportedType
	}
}

// InferAll runs every supported field type against the item and returns
// the suggestions that produced a signal, keyed by field name.
func (inf *Inferencer) InferAll(item *goquery.Selection) map[string]Suggestion {
	suggestions := make(map[string]Suggestion, len(Types))

	for _, field := range Types {
		suggestion, err := inf.Infer(item, field)
		if err != nil || suggestion == nil {
			continue
		}
		suggestions[string(field)] = *suggestion
	}

	return suggestions
}

// urlDataAttributes are attributes that carry an item link directly.
var urlDataAttributes = []string{"data-url", "data-href", "data-link"}

// inferURL proposes a link selector: a link-bearing data attribute when one
// exists, else the title selector with an href extraction marker appended.
func (inf *Inferencer) inferURL(item *goquery.Selection) *Suggestion {
	for _, attr := range urlDataAttributes {
		sel := "[" + attr + "]"
		match := item.Find(sel).First()
		if match.Length() == 0 {
			continue
		}

		value, _ := match.Attr(attr)
		return inf.suggestion(item, TypeURL, sel+attrMarker+attr, value)
	}

	title := inf.inferTitle(item)
	if title == nil {
		return nil
	}

	sel := title.Selector
	if !strings.Contains(sel, attrMarker) {
		sel += attrMarker + "href"
	}

	base, attr := SplitAttrMarker(sel)
	sample := ""
	if match := item.Find(base).First(); match.Length() > 0 {
		sample, _ = match.Attr(attr)
	}

	return inf.suggestion(item, TypeURL, sel, sample)
}

// inferImage proposes the first image element, scoped by its first class
// when that class is usable.
func (inf *Inferencer) inferImage(item *goquery.Selection) *Suggestion {
	img := item.Find("img").First()
	if img.Length() == 0 {
		return nil
	}

	sel := "img"
	if first := dom.FirstClass(img); first != "" && !selector.LooksDynamic(first) {
		sel = "img." + first
	}

	src, _ := img.Attr("src")
	return inf.suggestion(item, TypeImage, sel+attrMarker+"src", src)
}

// suggestion assembles a Suggestion, recording how many elements the
// selector matches within the item subtree.
func (inf *Inferencer) suggestion(item *goquery.Selection, field Type, sel, sample string) *Suggestion {
	base, _ := SplitAttrMarker(sel)

	return &Suggestion{
		FieldName:  string(field),
		Selector:   sel,
		Sample:     truncateSample(strings.TrimSpace(sample)),
		MatchCount: item.Find(base).Length(),
	}
}

// selectorFor expresses a single descendant element relative to the item,
// preferring its stable class and delegating deep or unclassed elements to
// the path builder.
func (inf *Inferencer) selectorFor(item, el *goquery.Selection) string {
	tag := dom.TagName(el)

	if cls := stableClass(el); cls != "" {
		if dom.IsGenericTag(tag) {
			return "." + cls
		}
		return tag + "." + cls
	}

	if built := inf.builder.Build(el, item); built != "" {
		return built
	}

	return tag
}

// stableClass returns the first non-dynamic class token of el, or "".
func stableClass(el *goquery.Selection) string {
	for _, token := range dom.ClassTokens(el) {
		if !selector.LooksDynamic(token) {
			return token
		}
	}
	return ""
}

// truncateSample bounds a sample value to a readable length.
func truncateSample(text string) string {
	const maxSampleLength = 100
	if len(text) <= maxSampleLength {
		return text
	}
	return text[:maxSampleLength] + "..."
}

// classContainsAny reports whether any class token of el contains one of
// the keywords.
func classContainsAny(el *goquery.Selection, keywords []string) bool {
	for _, token := range dom.ClassTokens(el) {
		lower := strings.ToLower(token)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}

// hasAnyDataAttribute reports whether el carries one of the attributes and
// returns the first match.
func hasAnyDataAttribute(el *goquery.Selection, attributes []string) (string, bool) {
	for _, attr := range attributes {
		if _, exists := el.Attr(attr); exists {
			return attr, true
		}
	}
	return "", false
}
