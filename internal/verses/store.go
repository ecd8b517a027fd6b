package verses

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/koinevocab/curator/internal/domain"
)

// Document is the on-disk shape of the canonical verse store. The
// books sequence is the sort-order authority for merges.
type Document struct {
	Books  []domain.BookDescriptor `json:"books"`
	Verses []domain.Verse          `json:"verses"`
}

// verseJSON is the wire form of a verse. The id is derived on save and
// ignored on load; difficulty mirrors tier for older store readers.
type verseJSON struct {
	ID                   string   `json:"id"`
	Book                 string   `json:"book"`
	Chapter              int      `json:"chapter"`
	Verse                int      `json:"verse"`
	Reference            string   `json:"reference"`
	Greek                string   `json:"greek"`
	Transliteration      string   `json:"transliteration"`
	ReferenceTranslation string   `json:"referenceTranslation"`
	KeyTerms             []string `json:"keyTerms"`
	Difficulty           int      `json:"difficulty"`
	Notes                string   `json:"notes"`
	Tier                 int      `json:"tier"`
}

func toWire(v domain.Verse) verseJSON {
	keyTerms := v.KeyTerms
	if keyTerms == nil {
		keyTerms = []string{}
	}
	return verseJSON{
		ID:                   v.ID(),
		Book:                 v.Book,
		Chapter:              v.Chapter,
		Verse:                v.Verse,
		Reference:            v.Reference,
		Greek:                v.Greek,
		Transliteration:      v.Transliteration,
		ReferenceTranslation: v.ReferenceTranslation,
		KeyTerms:             keyTerms,
		Difficulty:           v.Tier,
		Notes:                v.Notes,
		Tier:                 v.Tier,
	}
}

func fromWire(w verseJSON) domain.Verse {
	tier := w.Tier
	if tier == 0 {
		tier = w.Difficulty
	}
	return domain.Verse{
		Book:                 w.Book,
		Chapter:              w.Chapter,
		Verse:                w.Verse,
		Reference:            w.Reference,
		Greek:                w.Greek,
		Transliteration:      w.Transliteration,
		ReferenceTranslation: w.ReferenceTranslation,
		KeyTerms:             w.KeyTerms,
		Notes:                w.Notes,
		Tier:                 tier,
	}
}

type documentJSON struct {
	Books  []domain.BookDescriptor `json:"books"`
	Verses []verseJSON             `json:"verses"`
}

// Load reads the canonical verse store from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read verses: %w", err)
	}
	var wire documentJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode verses: %w", err)
	}
	doc := &Document{Books: wire.Books}
	for _, w := range wire.Verses {
		doc.Verses = append(doc.Verses, fromWire(w))
	}
	return doc, nil
}

// Save rewrites the canonical verse store at path.
func Save(path string, doc *Document) error {
	wire := documentJSON{Books: doc.Books, Verses: make([]verseJSON, 0, len(doc.Verses))}
	for _, v := range doc.Verses {
		wire.Verses = append(wire.Verses, toWire(v))
	}
	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return fmt.Errorf("encode verses: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write verses: %w", err)
	}
	return nil
}

// LoadNew reads an intermediate verse list (the output of the
// aggregation phase) from path.
func LoadNew(path string) ([]domain.Verse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read new verses: %w", err)
	}
	var wire []verseJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode new verses: %w", err)
	}
	out := make([]domain.Verse, 0, len(wire))
	for _, w := range wire {
		out = append(out, fromWire(w))
	}
	return out, nil
}

// SaveNew writes an intermediate verse list to path.
func SaveNew(path string, list []domain.Verse) error {
	wire := make([]verseJSON, 0, len(list))
	for _, v := range list {
		wire = append(wire, toWire(v))
	}
	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return fmt.Errorf("encode new verses: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write new verses: %w", err)
	}
	return nil
}
