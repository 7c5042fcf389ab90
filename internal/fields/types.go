// Package fields infers per-field selectors inside a discovered item
// element. Each field type runs an ordered cascade of heuristics; the
// first strategy producing a signal wins.
package fields

import (
	"errors"
	"strings"
)

// Type identifies a semantic content role within an item.
type Type string

const (
	// TypeTitle is the item's main title text.
	TypeTitle Type = "title"
	// TypeURL is the item's primary link.
	TypeURL Type = "url"
	// TypeDate is the item's publication or posting date.
	TypeDate Type = "date"
	// TypeAuthor is the item's author or submitter.
	TypeAuthor Type = "author"
	// TypeScore is the item's vote count, points, or rating.
	TypeScore Type = "score"
	// TypeImage is the item's representative image.
	TypeImage Type = "image"
)

// Types lists all supported field types in presentation order.
var Types = []Type{TypeTitle, TypeURL, TypeDate, TypeAuthor, TypeScore, TypeImage}

// ErrUnsupportedType is returned when Infer is called with a field type it
// does not know.
var ErrUnsupportedType = errors.New("unsupported field type")

// ErrNilItem is returned when Infer is called without an item element.
var ErrNilItem = errors.New("nil item element")

// Suggestion is a proposed selector for one field within an item.
type Suggestion struct {
	// FieldName is the field type the selector targets.
	FieldName string `json:"field_name"`
	// Selector locates the field relative to the item element. A trailing
	// "@attr" marker requests attribute extraction instead of text.
	Selector string `json:"selector"`
	// Sample is the value the selector extracts from this item.
	Sample string `json:"sample"`
	// MatchCount is the number of elements the selector matches within
	// the item subtree.
	MatchCount int `json:"match_count"`
}

// attrMarker separates a selector from a requested attribute name.
const attrMarker = "@"

// SplitAttrMarker splits "sel@attr" into its selector and attribute parts.
// The attribute is "" when the selector carries no marker.
func SplitAttrMarker(sel string) (string, string) {
	if idx := strings.LastIndex(sel, attrMarker); idx >= 0 {
		return sel[:idx], sel[idx+1:]
	}
	return sel, ""
}
