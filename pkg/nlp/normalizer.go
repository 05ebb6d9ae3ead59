package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize strips diacritics, lower-cases and trims surrounding whitespace.
// It is the comparison form used everywhere a user string meets a catalog string.
func Normalize(text string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		result = text
	}

	return strings.TrimSpace(strings.ToLower(result))
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
