package demo

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// HashString folds a string into a non-negative seed with a rolling
// 31-multiplier hash over UTF-16 code units. The accumulator wraps at 32
// bits, so the same input maps to the same seed on every call and across
// restarts. An empty string hashes to 0.
func HashString(value string) int {
	var h int32
	for _, unit := range utf16.Encode([]rune(value)) {
		h = h*31 + int32(unit)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// SlugifyID lowercases a name and collapses non-alphanumeric runs into
// single dashes, producing stable ids for generated menu items.
func SlugifyID(value string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(value), "-")
	return strings.Trim(slug, "-")
}

// rotate returns items shifted left by shiftBy, wrapping around. Negative
// shifts rotate right. The input slice is not modified.
func rotate[T any](items []T, shiftBy int) []T {
	if len(items) == 0 {
		return items
	}
	shift := ((shiftBy % len(items)) + len(items)) % len(items)
	out := make([]T, 0, len(items))
	out = append(out, items[shift:]...)
	out = append(out, items[:shift]...)
	return out
}
