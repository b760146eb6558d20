// Package textfold normalizes user-entered Spanish text for comparisons:
// surrounding whitespace trimmed, letters lowercased, diacritics stripped
// ("Almacén" → "almacen").
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the comparison form of s. The transform chain carries
// internal buffers and is not safe for concurrent use, so it is built per
// call: Fold runs concurrently from API handlers and the refresh goroutine.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(stripper, s); err == nil {
		s = folded
	}
	return strings.ToLower(s)
}

// Equal reports whether a and b fold to the same form.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
