package highlighter

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticsStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// StripDiacritics is a Sanitize function that removes combining marks, so
// "café" matches the term "cafe" and vice versa.
//
// Removing a mark shortens the string, so byte offsets reported against a
// stripped haystack drift past the first accented character. Use it when the
// haystack itself is plain ASCII and only the terms may carry accents, or
// when approximate highlight placement is acceptable.
func StripDiacritics(s string) string {
	out, _, err := transform.String(diacriticsStripper, s)
	if err != nil {
		return s
	}
	return out
}
