package opengnt

import "github.com/koinevocab/curator/internal/domain"

// BookMap translates the numeric book codes used by the keyedFeatures
// export (40–66 for the New Testament) into store book descriptors.
type BookMap map[int]domain.BookDescriptor

// DefaultBookMap returns the NT book codes.
func DefaultBookMap() BookMap {
	return BookMap{
		40: {ID: "matt", Name: "Matthew"},
		41: {ID: "mark", Name: "Mark"},
		42: {ID: "luke", Name: "Luke"},
		43: {ID: "john", Name: "John"},
		44: {ID: "acts", Name: "Acts"},
		45: {ID: "rom", Name: "Romans"},
		46: {ID: "1cor", Name: "1 Corinthians"},
		47: {ID: "2cor", Name: "2 Corinthians"},
		48: {ID: "gal", Name: "Galatians"},
		49: {ID: "eph", Name: "Ephesians"},
		50: {ID: "phil", Name: "Philippians"},
		51: {ID: "col", Name: "Colossians"},
		52: {ID: "1thess", Name: "1 Thessalonians"},
		53: {ID: "2thess", Name: "2 Thessalonians"},
		54: {ID: "1tim", Name: "1 Timothy"},
		55: {ID: "2tim", Name: "2 Timothy"},
		56: {ID: "titus", Name: "Titus"},
		57: {ID: "phlm", Name: "Philemon"},
		58: {ID: "heb", Name: "Hebrews"},
		59: {ID: "jas", Name: "James"},
		60: {ID: "1pet", Name: "1 Peter"},
		61: {ID: "2pet", Name: "2 Peter"},
		62: {ID: "1john", Name: "1 John"},
		63: {ID: "2john", Name: "2 John"},
		64: {ID: "3john", Name: "3 John"},
		65: {ID: "jude", Name: "Jude"},
		66: {ID: "rev", Name: "Revelation"},
	}
}

// Lookup returns the descriptor for a numeric code, or the "unknown"
// placeholder for codes outside the map.
func (m BookMap) Lookup(code int) domain.BookDescriptor {
	if b, ok := m[code]; ok {
		return b
	}
	return domain.BookDescriptor{ID: "unknown", Name: "Unknown"}
}
