package domain

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// parenthetical matches optional-segment markers embedded in surface
// forms, e.g. the movable final sigma in "οὕτω(ς)".
var parenthetical = regexp.MustCompile(`\([^)]+\)`)

// NormalizeGreek produces the canonical lookup key for a Greek surface
// form:
//   - parenthetical segments are removed
//   - the text is decomposed to NFD
//   - combining marks (category Mn) are dropped, removing all accents,
//     breathing marks and iota subscripts
//   - the result is lowercased
//
// The function is total and idempotent; an empty input yields the empty
// key, which matches nothing.
func NormalizeGreek(text string) string {
	if text == "" {
		return ""
	}
	text = parenthetical.ReplaceAllString(text, "")
	decomposed := norm.NFD.String(text)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// CollapseWhitespace replaces every run of whitespace with a single
// space and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
