package verses

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/koinevocab/curator/internal/domain"
)

func TestSaveDerivesIDAndMirrorsDifficulty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verses.json")
	doc := &Document{
		Books: []domain.BookDescriptor{{ID: "john", Name: "John"}},
		Verses: []domain.Verse{
			{Book: "john", Chapter: 3, Verse: 16, Reference: "John 3:16", Greek: "Οὕτως γὰρ", Tier: 2},
		},
	}

	if err := Save(path, doc); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var raw struct {
		Verses []map[string]any `json:"verses"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(raw.Verses) != 1 {
		t.Fatalf("got %d verses", len(raw.Verses))
	}
	if got := raw.Verses[0]["id"]; got != "john-3-16" {
		t.Errorf("id = %v, want john-3-16", got)
	}
	if got := raw.Verses[0]["difficulty"]; got != float64(2) {
		t.Errorf("difficulty = %v, want 2", got)
	}
	if got := raw.Verses[0]["keyTerms"]; got == nil {
		t.Error("keyTerms should serialize as an empty array, not null")
	}
}

func TestLoadFallsBackToDifficulty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verses.json")
	legacy := `{
		"books": [{"id": "matt", "name": "Matthew"}],
		"verses": [
			{"id": "matt-5-3", "book": "matt", "chapter": 5, "verse": 3,
			 "reference": "Matthew 5:3", "greek": "Μακάριοι", "difficulty": 3}
		]
	}`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(doc.Verses) != 1 {
		t.Fatalf("got %d verses", len(doc.Verses))
	}
	if doc.Verses[0].Tier != 3 {
		t.Errorf("Tier = %d, want 3 (from difficulty)", doc.Verses[0].Tier)
	}
}

func TestNewVersesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new_verses.json")
	in := []domain.Verse{
		{Book: "matt", Chapter: 5, Verse: 3, Reference: "Matthew 5:3",
			Greek: "Μακάριοι οἱ πτωχοὶ", ReferenceTranslation: "Blessed are the poor",
			KeyTerms: []string{}, Tier: 1},
	}

	if err := SaveNew(path, in); err != nil {
		t.Fatalf("SaveNew() error: %v", err)
	}
	out, err := LoadNew(path)
	if err != nil {
		t.Fatalf("LoadNew() error: %v", err)
	}

	if len(out) != 1 {
		t.Fatalf("got %d verses", len(out))
	}
	if out[0].Key() != in[0].Key() {
		t.Errorf("Key = %+v, want %+v", out[0].Key(), in[0].Key())
	}
	if out[0].Greek != in[0].Greek || out[0].Tier != in[0].Tier {
		t.Errorf("round trip mismatch: %+v", out[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing store")
	}
}
