// Package lexicon parses the TBESG lexicon export into a dual-keyed
// lookup index. Pure functions: file path in, index out. No store
// dependencies.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/koinevocab/curator/internal/domain"
)

// dataSentinel marks the header row after which the data section begins.
const dataSentinel = "eStrong\t"

// strongsPattern matches raw identifiers of qualifying records:
// language tag G followed by digits, optionally letter-suffixed.
var strongsPattern = regexp.MustCompile(`^(G\d+)`)

// Entry is a single authoritative lexicon record.
type Entry struct {
	EStrong         string
	Strongs         string // canonical id: base number, leading zeros dropped
	Greek           string
	Transliteration string
	MorphCode       string
	Morph           *domain.Morphology
	Gloss           string
}

// Index holds the two lookup mappings built from the lexicon source.
// Both mappings are first-write-wins: a later entry with a colliding key
// is discarded, never overwritten. The index is built once per run and
// read-only afterwards.
type Index struct {
	ByStrongs map[string]*Entry
	ByGreek   map[string]*Entry
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		ByStrongs: make(map[string]*Entry),
		ByGreek:   make(map[string]*Entry),
	}
}

// insertStrongs records e under its canonical Strong's number unless the
// key is already taken.
func (ix *Index) insertStrongs(e *Entry) {
	if _, exists := ix.ByStrongs[e.Strongs]; !exists {
		ix.ByStrongs[e.Strongs] = e
	}
}

// insertGreek records e under a normalized Greek key unless the key is
// empty or already taken.
func (ix *Index) insertGreek(key string, e *Entry) {
	if key == "" {
		return
	}
	if _, exists := ix.ByGreek[key]; !exists {
		ix.ByGreek[key] = e
	}
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	SkippedLines int
	Entries      int
	GreekKeys    int
}

// CanonicalStrongs reduces a raw lexicon identifier to its canonical
// Strong's number: the leading G-and-digits prefix with redundant
// leading zeros removed, so differently-suffixed variants such as
// "G0846" and "G846A" collapse to "G846". Returns "" for identifiers
// that do not qualify.
func CanonicalStrongs(raw string) string {
	m := strongsPattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	n, err := strconv.Atoi(m[1][1:])
	if err != nil {
		return ""
	}
	return "G" + strconv.Itoa(n)
}

// Parse reads a TBESG export and builds the lexicon index.
//
// Lines before the header sentinel, blank lines and comment lines
// (starting with "$" or "-") are ignored. Data lines are tab-separated
// with at least 7 fields; anything shorter is skipped and counted.
func Parse(path string, tables MorphTables) (*Index, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	ix := NewIndex()
	var stats Stats

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	inData := false

	for sc.Scan() {
		stats.TotalLines++
		line := strings.TrimSpace(sc.Text())

		if strings.HasPrefix(line, dataSentinel) {
			inData = true
			continue
		}
		if !inData {
			continue
		}
		if line == "" || strings.HasPrefix(line, "$") || strings.HasPrefix(line, "-") {
			stats.SkippedLines++
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 7 {
			stats.SkippedLines++
			continue
		}

		rawID := strings.TrimSpace(fields[0])
		strongs := CanonicalStrongs(rawID)
		if strongs == "" {
			stats.SkippedLines++
			continue
		}

		greek := strings.TrimSpace(fields[3])
		morphCode := strings.TrimSpace(fields[5])

		entry := &Entry{
			EStrong:         rawID,
			Strongs:         strongs,
			Greek:           greek,
			Transliteration: strings.TrimSpace(fields[4]),
			MorphCode:       morphCode,
			Morph:           tables.ParseMorphCode(morphCode),
			Gloss:           strings.TrimSpace(fields[6]),
		}

		ix.insertStrongs(entry)

		// The surface-form field may carry comma-separated alternate
		// forms, e.g. "α, Ἄλφα"; each is indexed independently.
		for _, form := range strings.Split(greek, ",") {
			ix.insertGreek(domain.NormalizeGreek(strings.TrimSpace(form)), entry)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("scan lexicon: %w", err)
	}

	stats.Entries = len(ix.ByStrongs)
	stats.GreekKeys = len(ix.ByGreek)
	return ix, stats, nil
}
