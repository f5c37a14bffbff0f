package render

import (
	"regexp"
	"strings"
	"unicode"
)

// hmmSuffix matches the "_<n>_<type>" tail of HMM profile names such as
// "Cas9_1_II".
var hmmSuffix = regexp.MustCompile(`_[0-9]*_.*`)

// CleanLabel strips the HMM profile suffix from a gene label.
func CleanLabel(s string) string {
	return hmmSuffix.ReplaceAllString(s, "")
}

// TitleCase upper-cases every letter that follows a non-letter and
// lower-cases the rest, so "cas9a" becomes "Cas9A".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, c := range s {
		switch {
		case !unicode.IsLetter(c):
			prevLetter = false
		case prevLetter:
			c = unicode.ToLower(c)
		default:
			c = unicode.ToUpper(c)
			prevLetter = true
		}
		b.WriteRune(c)
	}
	return b.String()
}
