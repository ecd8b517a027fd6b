package vocab

import (
	"github.com/koinevocab/curator/internal/domain"
	"github.com/koinevocab/curator/internal/lexicon"
)

// Strategy names, in attempt order. Reported match counts are keyed by
// these.
const (
	StrategyOverride = "override"
	StrategyStrongs  = "strongs"
	StrategyGreek    = "greek"
	StrategyDerived  = "derived"
)

// DefaultOverrides maps surface forms whose lexicon headword differs
// irregularly from the vocabulary form to the correct canonical
// Strong's number. The table is closed and hand-curated; overrides
// exist specifically to correct known-bad identifiers, so they take
// precedence over every automatic strategy.
func DefaultOverrides() map[string]string {
	return map[string]string{
		"οὕτω(ς)":    "G3779", // οὕτως in TBESG
		"ἀπόλλυμι":   "G622",  // ἀπολλύω in TBESG
		"εὐαγγελίζω": "G2097", // εὐαγγελίζομαι in TBESG
		"δείκνυμι":   "G1166", // δεικνύω in TBESG
	}
}

// activeFormRules rewrites a middle/passive verb ending into its active
// lexical ending. Longest suffix first; only the first matching rule is
// applied. This is a best-effort heuristic, not morphology: do not
// extend the rule set without linguistic evidence for each addition.
var activeFormRules = []struct {
	suffix      string
	replacement string
}{
	{"εομαι", "εω"},
	{"ομαι", "ω"},
	{"μαι", "μι"},
}

// DeriveActiveForm applies the first matching suffix rewrite, returning
// "" when no rule applies.
func DeriveActiveForm(form string) string {
	if form == "" {
		return ""
	}
	for _, rule := range activeFormRules {
		if tail := len(form) - len(rule.suffix); tail >= 0 && form[tail:] == rule.suffix {
			return form[:tail] + rule.replacement
		}
	}
	return ""
}

// UnmatchedWord identifies a vocabulary word no strategy could resolve.
type UnmatchedWord struct {
	Identifier string
	Greek      string
}

// Report aggregates the outcome of a resolution pass.
type Report struct {
	Matched   map[string]int // strategy name → hits
	Unmatched []UnmatchedWord
}

// TotalMatched sums the hits across all strategies.
func (r Report) TotalMatched() int {
	total := 0
	for _, n := range r.Matched {
		total += n
	}
	return total
}

// strategy is one step of the resolution chain. resolve mutates the
// word's identifier on a hit where the strategy calls for it and
// returns the matched entry, or nil.
type strategy struct {
	name    string
	resolve func(w *domain.VocabularyWord) *lexicon.Entry
}

// Resolver resolves vocabulary words to lexicon entries through an
// ordered chain of strategies with early termination. The order is a
// design contract: the manual override must win even over a valid
// identifier match.
type Resolver struct {
	index      *lexicon.Index
	overrides  map[string]string
	strategies []strategy
}

// NewResolver builds a resolver over the given read-only index.
// overrides may be nil for none.
func NewResolver(index *lexicon.Index, overrides map[string]string) *Resolver {
	r := &Resolver{index: index, overrides: overrides}
	r.strategies = []strategy{
		{StrategyOverride, r.resolveOverride},
		{StrategyStrongs, r.resolveStrongs},
		{StrategyGreek, r.resolveGreek},
		{StrategyDerived, r.resolveDerived},
	}
	return r
}

func (r *Resolver) resolveOverride(w *domain.VocabularyWord) *lexicon.Entry {
	strongs, ok := r.overrides[w.Greek]
	if !ok {
		return nil
	}
	entry := r.index.ByStrongs[strongs]
	if entry == nil {
		return nil
	}
	w.Strongs = strongs
	return entry
}

func (r *Resolver) resolveStrongs(w *domain.VocabularyWord) *lexicon.Entry {
	return r.index.ByStrongs[w.Identifier()]
}

func (r *Resolver) resolveGreek(w *domain.VocabularyWord) *lexicon.Entry {
	entry := r.index.ByGreek[domain.NormalizeGreek(w.Greek)]
	if entry == nil {
		return nil
	}
	w.Strongs = entry.Strongs
	return entry
}

func (r *Resolver) resolveDerived(w *domain.VocabularyWord) *lexicon.Entry {
	// Override-listed forms are never guessed at, even when the
	// override target was absent from the lexicon.
	if _, claimed := r.overrides[w.Greek]; claimed {
		return nil
	}
	active := DeriveActiveForm(w.Greek)
	if active == "" {
		return nil
	}
	entry := r.index.ByGreek[domain.NormalizeGreek(active)]
	if entry == nil {
		return nil
	}
	w.Strongs = entry.Strongs
	return entry
}

// Resolve runs the strategy chain for a single word, stopping at the
// first hit. On success the matched entry's morphology (when present)
// is copied onto the word. Returns the strategy name that matched.
func (r *Resolver) Resolve(w *domain.VocabularyWord) (string, bool) {
	for _, s := range r.strategies {
		entry := s.resolve(w)
		if entry == nil {
			continue
		}
		if entry.Morph != nil {
			m := *entry.Morph
			w.Morphology = &m
		}
		return s.name, true
	}
	return "", false
}

// ResolveAll runs the chain over every word, mutating words in place,
// and returns the aggregate report. Misses are recorded, never errors.
func (r *Resolver) ResolveAll(words []*domain.VocabularyWord) Report {
	report := Report{Matched: make(map[string]int)}
	for _, w := range words {
		if name, ok := r.Resolve(w); ok {
			report.Matched[name]++
			continue
		}
		report.Unmatched = append(report.Unmatched, UnmatchedWord{
			Identifier: w.Identifier(),
			Greek:      w.Greek,
		})
	}
	return report
}
