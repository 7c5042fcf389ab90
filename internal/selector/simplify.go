package selector

import "strings"

// Simplify strips generic container tokens from a selector path, folding
// "div.class" and "span.class" into ".class" and dropping bare "div"/"span"
// components along with child combinators. The pass is purely textual; the
// document is not re-inspected.
func Simplify(sel string) string {
	fields := strings.Fields(sel)
	simplified := make([]string, 0, len(fields))

	for _, part := range fields {
		if part == ">" {
			continue
		}

		if part == "div" || part == "span" {
			continue
		}

		if rest, ok := strings.CutPrefix(part, "div."); ok {
			simplified = append(simplified, "."+rest)
			continue
		}
		if rest, ok := strings.CutPrefix(part, "span."); ok {
			simplified = append(simplified, "."+rest)
			continue
		}

		simplified = append(simplified, part)
	}

	// Never simplify a selector away entirely.
	if len(simplified) == 0 {
		return strings.TrimSpace(sel)
	}

	return strings.Join(simplified, " ")
}
