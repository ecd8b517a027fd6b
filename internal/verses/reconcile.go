package verses

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/koinevocab/curator/internal/domain"
)

// unknownBookOrder sorts verses from unrecognized books after every
// known book.
const unknownBookOrder = 1 << 30

// DefaultBookAliases maps long-form and already-short book identifiers
// to the canonical short code. Unrecognized identifiers pass through
// the normalizer unchanged.
func DefaultBookAliases() map[string]string {
	return map[string]string{
		"matthew":         "matt",
		"mark":            "mark",
		"luke":            "luke",
		"john":            "john",
		"acts":            "acts",
		"romans":          "rom",
		"1corinthians":    "1cor",
		"2corinthians":    "2cor",
		"galatians":       "gal",
		"ephesians":       "eph",
		"philippians":     "phil",
		"colossians":      "col",
		"1thessalonians":  "1thess",
		"2thessalonians":  "2thess",
		"1timothy":        "1tim",
		"2timothy":        "2tim",
		"titus":           "titus",
		"philemon":        "phlm",
		"hebrews":         "heb",
		"james":           "jas",
		"1peter":          "1pet",
		"2peter":          "2pet",
		"1john":           "1john",
		"2john":           "2john",
		"3john":           "3john",
		"jude":            "jude",
		"revelation":      "rev",
		// Short forms map to themselves so mixed sources agree.
		"matt":   "matt",
		"rom":    "rom",
		"1cor":   "1cor",
		"2cor":   "2cor",
		"gal":    "gal",
		"eph":    "eph",
		"phil":   "phil",
		"col":    "col",
		"1thess": "1thess",
		"2thess": "2thess",
		"1tim":   "1tim",
		"2tim":   "2tim",
		"phlm":   "phlm",
		"heb":    "heb",
		"jas":    "jas",
		"1pet":   "1pet",
		"2pet":   "2pet",
	}
}

var (
	orphanedPunct = regexp.MustCompile(`\s+([,;:.!?])`)
	afterPeriod   = regexp.MustCompile(`\. [a-z]`)
)

// CleanTranslation tidies an interlinear translation assembled from
// word-for-word fragments: whitespace runs collapse to single spaces,
// space before punctuation is removed, the letter after a sentence
// period is uppercased, and so is the very first letter.
func CleanTranslation(s string) string {
	s = domain.CollapseWhitespace(s)
	s = orphanedPunct.ReplaceAllString(s, "$1")
	s = afterPeriod.ReplaceAllStringFunc(s, strings.ToUpper)

	runes := []rune(s)
	if len(runes) > 0 && unicode.IsLower(runes[0]) {
		runes[0] = unicode.ToUpper(runes[0])
		s = string(runes)
	}
	return s
}

// Reconciler merges verse collections with existing-wins precedence.
type Reconciler struct {
	aliases map[string]string
}

// NewReconciler builds a reconciler with the given book alias table.
func NewReconciler(aliases map[string]string) *Reconciler {
	return &Reconciler{aliases: aliases}
}

// NormalizeBookID maps a book identifier through the alias table;
// unknown identifiers pass through unchanged.
func (r *Reconciler) NormalizeBookID(id string) string {
	if short, ok := r.aliases[strings.ToLower(id)]; ok {
		return short
	}
	return id
}

// normalizeVerse rewrites a verse into canonical shape: alias-resolved
// book id and cleaned translation. Tier defaults to 2 for records that
// never went through the aggregator.
func (r *Reconciler) normalizeVerse(v domain.Verse) domain.Verse {
	v.Book = r.NormalizeBookID(v.Book)
	v.ReferenceTranslation = CleanTranslation(v.ReferenceTranslation)
	if v.Tier == 0 {
		v.Tier = 2
	}
	if v.KeyTerms == nil {
		v.KeyTerms = []string{}
	}
	return v
}

// MergeStats reports the outcome of a merge pass.
type MergeStats struct {
	Existing int
	Added    int
	Skipped  int
}

// Merge combines the existing canonical collection with incoming
// verses. Existing entries always win ties: an incoming verse whose
// VerseKey is already present is discarded. The merged collection is
// stable-sorted by (book order, chapter, verse) with unknown books
// after all known ones; ties keep their original relative order.
func (r *Reconciler) Merge(existing, incoming []domain.Verse, books []domain.BookDescriptor) ([]domain.Verse, MergeStats) {
	seen := make(map[domain.VerseKey]bool, len(existing))
	merged := make([]domain.Verse, 0, len(existing)+len(incoming))
	var stats MergeStats

	for _, v := range existing {
		nv := r.normalizeVerse(v)
		seen[nv.Key()] = true
		merged = append(merged, nv)
	}
	stats.Existing = len(merged)

	for _, v := range incoming {
		nv := r.normalizeVerse(v)
		key := nv.Key()
		if seen[key] {
			stats.Skipped++
			continue
		}
		seen[key] = true
		merged = append(merged, nv)
		stats.Added++
	}

	order := make(map[string]int, len(books))
	for i, b := range books {
		order[b.ID] = i
	}
	bookOrder := func(id string) int {
		if n, ok := order[id]; ok {
			return n
		}
		return unknownBookOrder
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if bookOrder(a.Book) != bookOrder(b.Book) {
			return bookOrder(a.Book) < bookOrder(b.Book)
		}
		if a.Chapter != b.Chapter {
			return a.Chapter < b.Chapter
		}
		return a.Verse < b.Verse
	})

	return merged, stats
}
