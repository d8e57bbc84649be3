// Package slug turns arbitrary names into URL-friendly identifiers.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make lowercases the input, strips diacritics and collapses every run of
// characters outside [a-z0-9] into a single dash. Leading and trailing
// dashes are trimmed, so Make("  Home & Garden! ") returns "home-garden".
func Make(input string) string {
	if input == "" {
		return ""
	}

	folded, _, err := transform.String(stripMarks, input)
	if err != nil {
		folded = input
	}
	folded = strings.ToLower(strings.TrimSpace(folded))

	var b strings.Builder
	b.Grow(len(folded))
	pendingDash := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
