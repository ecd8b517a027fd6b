package verses

import "regexp"

// awkwardPatterns are surface patterns diagnostic of word-for-word
// interlinear renderings. Order matters only for readability; the
// first match is sufficient and there is no scoring.
var awkwardPatterns = []*regexp.Regexp{
	// Irregular capitalization run mid-sentence.
	regexp.MustCompile(`\b[A-Z][a-z]+\s+[a-z]+\s+[A-Z]`),
	// Lowercase text continuing after a sentence-final period.
	regexp.MustCompile(`\.\s*[a-z]`),
	// Capitalized word, lowercase word, then "And".
	regexp.MustCompile(`^[A-Z][a-z]+\s+[a-z]+\s+And\b`),
	// Article or preposition dangling before the terminal period.
	regexp.MustCompile(`\b(the|a|an|of|in|to)\s+\.$`),
	// Possessive "His" glued to a lowercase word.
	regexp.MustCompile(`\bHis\s+[a-z]`),
}

// IsAwkwardTranslation reports whether a translation reads like an
// interlinear word-for-word rendering and should be replaced. An empty
// translation always qualifies. The decision only gates whether the
// fetch collaborator is consulted; it performs no fetch itself.
func IsAwkwardTranslation(translation string) bool {
	if translation == "" {
		return true
	}
	for _, p := range awkwardPatterns {
		if p.MatchString(translation) {
			return true
		}
	}
	return false
}
