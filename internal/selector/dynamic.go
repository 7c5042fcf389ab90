package selector

import (
	"regexp"
	"strings"
)

// minStableTokenLength is the shortest class or id token that can be
// trusted as a stable marker.
const minStableTokenLength = 3

// generatedPrefixes are prefixes emitted by CSS-in-JS and build tooling.
// Tokens starting with one of these are hashed output, not authored names.
var generatedPrefixes = []string{
	"css-",
	"jss",
	"sc-",
	"styled-",
	"styled__",
	"emotion-",
	"chakra-",
	"makeStyles-",
	"jsx-",
	"svelte-",
	"astro-",
}

var (
	// hexRunPattern matches a run of six or more hex characters that
	// includes at least one digit, typical of content hashes.
	hexRunPattern = regexp.MustCompile(`[0-9a-fA-F]*[0-9][0-9a-fA-F]*`)
	// uuidPattern matches a standard dashed UUID.
	uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	// numericSuffixPattern matches a trailing run of eight or more digits.
	numericSuffixPattern = regexp.MustCompile(`[0-9]{8,}$`)
)

// hexRunThreshold is the minimum hex-looking run length treated as a hash.
const hexRunThreshold = 6

// LooksDynamic reports whether a class or id token looks like generated
// build output rather than an authored name. The heuristic is deterministic
// and pure; false positives and negatives are tolerated.
func LooksDynamic(token string) bool {
	if len(token) < minStableTokenLength {
		return true
	}

	for _, prefix := range generatedPrefixes {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}

	if uuidPattern.MatchString(token) {
		return true
	}

	if numericSuffixPattern.MatchString(token) {
		return true
	}

	for _, run := range hexRunPattern.FindAllString(token, -1) {
		if len(run) >= hexRunThreshold {
			return true
		}
	}

	return hasHashSegment(token)
}

// hashSegmentMinLength and hashSegmentMinShifts define when a token segment
// is treated as a letter/digit hash (e.g. "x7f3a9").
const (
	hashSegmentMinLength = 5
	hashSegmentMinShifts = 3
)

// hasHashSegment reports whether any dash- or underscore-delimited segment
// of the token alternates between letters and digits often enough to look
// like a short hash.
func hasHashSegment(token string) bool {
	for _, segment := range strings.FieldsFunc(token, func(r rune) bool {
		return r == '-' || r == '_'
	}) {
		if len(segment) < hashSegmentMinLength {
			continue
		}

		shifts := 0
		prevDigit := false
		for i, r := range segment {
			isDigit := r >= '0' && r <= '9'
			if i > 0 && isDigit != prevDigit {
				shifts++
			}
			prevDigit = isDigit
		}

		if shifts >= hashSegmentMinShifts {
			return true
		}
	}

	return false
}
