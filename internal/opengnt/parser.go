// Package opengnt aggregates the token-level keyedFeatures export into
// per-verse Greek text and interlinear translation fragments.
package opengnt

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/koinevocab/curator/internal/domain"
	"github.com/koinevocab/curator/internal/verses"
)

// Composite sub-fields are wrapped in fullwidth lenticular brackets and
// separated by a fullwidth vertical bar.
const (
	bracketOpen  = "〔"
	bracketClose = "〕"
	subSeparator = "｜"
)

// Column indexes of a keyedFeatures row (tab-separated, ≥11 fields).
const (
	colReference    = 4  // 〔book｜chapter｜verse〕
	colTANTT        = 7  // 〔sigla=Word=Strongs=Parsing;...〕
	colTranslations = 10 // 〔TBESG｜IT｜LT｜ST｜Español〕
	minFields       = 11
)

// literalTranslationIdx selects the LT (literal translation) sub-part
// of the translations field.
const literalTranslationIdx = 2

// RefKey identifies a verse by the numeric codes used in the export.
type RefKey struct {
	Book    int
	Chapter int
	Verse   int
}

// VerseFeatures accumulates the per-verse fragments in row order.
type VerseFeatures struct {
	GreekWords   []string
	Translations []string
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalRows   int
	SkippedRows int
	Verses      int
}

// splitBracketField strips the wrapping brackets and splits on the
// sub-field separator.
func splitBracketField(s string) []string {
	s = strings.TrimPrefix(s, bracketOpen)
	s = strings.TrimSuffix(s, bracketClose)
	return strings.Split(s, subSeparator)
}

// greekWord extracts the surface form from a TANTT field: the second
// "="-delimited segment of the first sub-field, e.g.
// "BIMNRSTWH=Βίβλος=G0976=N-NSF;" → "Βίβλος".
func greekWord(tantt string) string {
	tantt = strings.TrimPrefix(tantt, bracketOpen)
	tantt = strings.TrimSuffix(tantt, bracketClose)
	parts := strings.Split(tantt, "=")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// parseRef decodes the composite reference field into a RefKey.
func parseRef(field string) (RefKey, error) {
	parts := splitBracketField(field)
	if len(parts) < 3 {
		return RefKey{}, fmt.Errorf("reference field %q: want 3 parts", field)
	}
	book, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return RefKey{}, fmt.Errorf("book %q: %w", parts[0], err)
	}
	chapter, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return RefKey{}, fmt.Errorf("chapter %q: %w", parts[1], err)
	}
	verse, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return RefKey{}, fmt.Errorf("verse %q: %w", parts[2], err)
	}
	return RefKey{Book: book, Chapter: chapter, Verse: verse}, nil
}

// Parse reads a keyedFeatures export and aggregates rows by verse.
// The first line is the header. Rows that fail numeric parsing or lack
// the required fields are skipped and counted, never fatal. A verse
// with no accumulated data is absent from the result.
func Parse(path string) (map[RefKey]*VerseFeatures, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open keyed features: %w", err)
	}
	defer f.Close()

	result := make(map[RefKey]*VerseFeatures)
	var stats Stats

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	header := true

	for sc.Scan() {
		line := sc.Text()
		if header {
			header = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		stats.TotalRows++

		fields := strings.Split(line, "\t")
		if len(fields) < minFields {
			stats.SkippedRows++
			continue
		}

		key, err := parseRef(fields[colReference])
		if err != nil {
			stats.SkippedRows++
			continue
		}

		word := greekWord(fields[colTANTT])

		var translation string
		if parts := splitBracketField(fields[colTranslations]); len(parts) > literalTranslationIdx {
			translation = parts[literalTranslationIdx]
			translation = strings.ReplaceAll(translation, "[", "")
			translation = strings.ReplaceAll(translation, "]", "")
		}

		if word == "" && (translation == "" || translation == "-") {
			continue
		}

		features := result[key]
		if features == nil {
			features = &VerseFeatures{}
			result[key] = features
		}
		if word != "" {
			features.GreekWords = append(features.GreekWords, word)
		}
		if translation != "" && translation != "-" {
			features.Translations = append(features.Translations, translation)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("scan keyed features: %w", err)
	}

	stats.Verses = len(result)
	return result, stats, nil
}

// BuildVerses materializes verses from aggregated features. selection
// limits the output to the listed refs; nil or empty means all. The
// result order follows the selection when given, otherwise it is
// unspecified (the reconciler sorts on merge).
func BuildVerses(features map[RefKey]*VerseFeatures, selection []RefKey, books BookMap) []domain.Verse {
	keys := selection
	if len(keys) == 0 {
		keys = make([]RefKey, 0, len(features))
		for key := range features {
			keys = append(keys, key)
		}
	}

	out := make([]domain.Verse, 0, len(keys))
	for _, key := range keys {
		f, ok := features[key]
		if !ok {
			continue
		}
		book := books.Lookup(key.Book)
		greek := domain.CollapseWhitespace(strings.Join(f.GreekWords, " "))
		translation := domain.CollapseWhitespace(strings.Join(f.Translations, " "))
		tier := verses.TierForWordCount(len(strings.Fields(greek)))

		out = append(out, domain.Verse{
			Book:                 book.ID,
			Chapter:              key.Chapter,
			Verse:                key.Verse,
			Reference:            fmt.Sprintf("%s %d:%d", book.Name, key.Chapter, key.Verse),
			Greek:                greek,
			ReferenceTranslation: translation,
			KeyTerms:             []string{},
			Tier:                 tier,
		})
	}
	return out
}

// LoadSelection reads a verse selection file: one "book chapter verse"
// numeric triple per line, "#" comments and blank lines ignored.
// Malformed lines are skipped.
func LoadSelection(path string) ([]RefKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open selection: %w", err)
	}
	defer f.Close()

	var keys []RefKey
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}
		book, err1 := strconv.Atoi(parts[0])
		chapter, err2 := strconv.Atoi(parts[1])
		verse, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		keys = append(keys, RefKey{Book: book, Chapter: chapter, Verse: verse})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan selection: %w", err)
	}
	return keys, nil
}
