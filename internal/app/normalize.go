package app

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// unknownSentinel is the literal the Canary open-data portal uses for
// "value unknown". Cleared during cleaning, never during parsing.
const unknownSentinel = "_U"

// NFD, drop combining marks, recompose. Turns "Océano" into "Oceano".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeForSearch strips diacritics, lower-cases and collapses runs of
// whitespace to single spaces. Idempotent: normalizing an already
// normalized string is a no-op.
func normalizeForSearch(s string) string {
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// cleanCell trims a raw cell value and strips a stray byte-order mark.
func cleanCell(s string) string {
	return strings.TrimSpace(strings.TrimPrefix(s, "\uFEFF"))
}

// cleanValue additionally clears the portal's unknown-value sentinel.
func cleanValue(s string) string {
	v := cleanCell(s)
	if v == unknownSentinel {
		return ""
	}
	return v
}
