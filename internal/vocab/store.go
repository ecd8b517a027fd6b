// Package vocab owns the vocabulary store document and the resolution
// of vocabulary words against the lexicon index.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/koinevocab/curator/internal/domain"
)

// Document is the on-disk shape of the vocabulary store.
type Document struct {
	Words []*domain.VocabularyWord `json:"words"`
}

// Load reads the vocabulary document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode vocabulary: %w", err)
	}
	return &doc, nil
}

// Save writes the document back to path with two-space indentation.
func Save(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vocabulary: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write vocabulary: %w", err)
	}
	return nil
}
