package lexicon

import (
	"strings"

	"github.com/koinevocab/curator/internal/domain"
)

// MorphTables holds the closed code-to-label tables used to decode
// compact morphology codes. Tables are injected at construction so
// callers never share mutable globals.
type MorphTables struct {
	Types      map[string]string
	Genders    map[byte]string
	Categories map[string]string
}

// DefaultMorphTables returns the decode tables for the TBESG code set.
func DefaultMorphTables() MorphTables {
	return MorphTables{
		Types: map[string]string{
			"N":     "noun",
			"V":     "verb",
			"A":     "adjective",
			"ADV":   "adverb",
			"ART":   "article",
			"T":     "article", // alternate code
			"COND":  "conditional",
			"CONJ":  "conjunction",
			"COR":   "correlative",
			"D":     "demonstrative",
			"DEMP":  "demonstrative pronoun",
			"IMPP":  "impersonal pronoun",
			"INTG":  "interrogative",
			"INJ":   "interjection",
			"NEG":   "negative",
			"P":     "pronoun",
			"PART":  "particle",
			"PRT":   "particle", // alternate code
			"PRT-N": "negative particle",
			"PREP":  "preposition",
			"PERP":  "personal pronoun",
			"POSP":  "possessive pronoun",
			"REFP":  "reflexive pronoun",
			"RELP":  "relative pronoun",
			"A-NUI": "numeral adjective",
		},
		Genders: map[byte]string{
			'M': "masculine",
			'F': "feminine",
			'N': "neuter",
			'C': "common",
		},
		Categories: map[string]string{
			"P":  "person",
			"L":  "location",
			"T":  "title",
			"LI": "indeclinable",
		},
	}
}

// ParseMorphCode decodes a compact morphology code of the form
// Language:Type-Gender-Extra into structured attributes.
//
// The decode is pure and total: an empty code, the "-" placeholder, or
// anything that does not split into at least two ":"-parts yields nil
// ("no morphology") rather than an error. Unknown type codes pass
// through lowercased; unknown category codes yield no category.
func (t MorphTables) ParseMorphCode(code string) *domain.Morphology {
	if code == "" || code == "-" {
		return nil
	}

	parts := strings.SplitN(code, ":", 2)
	if len(parts) < 2 {
		return nil
	}

	m := &domain.Morphology{Language: parts[0]}
	components := strings.Split(parts[1], "-")

	if len(components) > 0 {
		typeCode := strings.ToUpper(components[0])
		if label, ok := t.Types[typeCode]; ok {
			m.Type = label
		} else {
			m.Type = strings.ToLower(typeCode)
		}
	}

	if len(components) > 1 {
		genderCode := strings.ToUpper(components[1])
		if genderCode != "" {
			if label, ok := t.Genders[genderCode[0]]; ok {
				m.Gender = label
			}
		}
		// Number marks can ride alongside the gender letter. The
		// plural check runs last so "P" wins if both are present.
		if strings.Contains(genderCode, "S") {
			m.Number = "singular"
		}
		if strings.Contains(genderCode, "P") {
			m.Number = "plural"
		}
	}

	if len(components) > 2 {
		if label, ok := t.Categories[strings.ToUpper(components[2])]; ok {
			m.Category = label
		}
	}

	return m
}
