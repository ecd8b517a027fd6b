package curator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/koinevocab/curator/internal/provider"
	"github.com/koinevocab/curator/internal/verses"
	"github.com/koinevocab/curator/internal/vocab"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockFetcher records fetch calls and returns a fixed translation.
type mockFetcher struct {
	calls []string
	text  string
	err   error
}

func (m *mockFetcher) FetchVerse(_ context.Context, bookName string, chapter, verse int) (*provider.TranslationResult, error) {
	m.calls = append(m.calls, fmt.Sprintf("%s %d:%d", bookName, chapter, verse))
	if m.err != nil {
		return nil, m.err
	}
	if m.text == "" {
		return nil, nil
	}
	return &provider.TranslationResult{Text: m.text, Source: "mock"}, nil
}

const lexiconFixture = "Tyndale Brief lexicon of Extended Strongs for Greek\n" +
	"\n" +
	"eStrong\tdStrong\tuStrong\tGreek\tTransliteration\tMorph\tGloss\n" +
	"G3056\tG3056\tG3056\tλόγος\tlogos\tG:N-M\tword, message\n" +
	"G0026\tG0026\tG0026\tἀγάπη\tagape\tG:N-F\tlove\n"

const vocabFixture = `{
  "words": [
    {"id": "w1", "greek": "λόγος", "gloss": "word"},
    {"id": "w2", "greek": "ἀγάπη", "gloss": "love"},
    {"id": "w3", "greek": "ζζζ", "gloss": "unknown thing"}
  ]
}`

const versesFixture = `{
  "books": [
    {"id": "matt", "name": "Matthew"},
    {"id": "john", "name": "John"}
  ],
  "verses": [
    {"id": "john-1-1", "book": "john", "chapter": 1, "verse": 1,
     "reference": "John 1:1", "greek": "Ἐν ἀρχῇ",
     "referenceTranslation": "Beginning was He the Word with God", "tier": 1}
  ]
}`

var keyedFeaturesFixture = strings.Join([]string{
	strings.Join([]string{"id", "a", "b", "c", "〔Book｜Chapter｜Verse〕", "d", "e", "〔TANTT〕", "f", "g", "〔Translations〕"}, "\t"),
	strings.Join([]string{"1", "a", "b", "c", "〔40｜5｜3〕", "d", "e", "〔B=Μακάριοι=G3107=A-NPM;〕", "f", "g", "〔blessed｜blessed｜Blessed｜blessed｜x〕"}, "\t"),
	strings.Join([]string{"2", "a", "b", "c", "〔40｜5｜3〕", "d", "e", "〔B=πτωχοὶ=G4434=A-NPM;〕", "f", "g", "〔poor｜poor｜[the] poor｜poor｜x〕"}, "\t"),
}, "\n") + "\n"

// newTestConfig lays out a working dataset in a temp dir.
func newTestConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	return Config{
		VocabPath:         write("vocabulary.json", vocabFixture),
		LexiconPath:       write("TBESG.txt", lexiconFixture),
		KeyedFeaturesPath: write("keyedFeatures.tsv", keyedFeaturesFixture),
		VersesPath:        write("verses.json", versesFixture),
		NewVersesPath:     filepath.Join(dir, "new_verses.json"),
		MaxUpdates:        250,
	}
}

func TestPipelineRunAllPhases(t *testing.T) {
	cfg := newTestConfig(t)
	fetcher := &mockFetcher{text: "In the beginning was the Word."}
	p := NewPipeline(newTestLogger(), fetcher, cfg)

	if err := p.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if p.HasErrors() {
		t.Fatalf("HasErrors() = true: %+v", p.Results())
	}

	results := p.Results()
	if len(results) != 5 {
		t.Fatalf("got %d phase results, want 5", len(results))
	}

	if r := results["morphology"]; r.Updated != 2 || r.Skipped != 1 {
		t.Errorf("morphology = %+v, want 2 updated, 1 skipped", r)
	}
	if r := results["categories"]; r.Updated != 3 {
		t.Errorf("categories = %+v, want 3 updated", r)
	}
	if r := results["verses"]; r.Inserted != 1 {
		t.Errorf("verses = %+v, want 1 inserted", r)
	}
	if r := results["merge"]; r.Inserted != 1 {
		t.Errorf("merge = %+v, want 1 inserted", r)
	}
	if r := results["translations"]; r.Updated != 1 {
		t.Errorf("translations = %+v, want 1 updated", r)
	}

	// The vocabulary store now carries resolved Strong's numbers and categories.
	doc, err := vocab.Load(cfg.VocabPath)
	if err != nil {
		t.Fatalf("load vocabulary: %v", err)
	}
	if doc.Words[0].Strongs != "G3056" {
		t.Errorf("Words[0].Strongs = %q, want G3056", doc.Words[0].Strongs)
	}
	if doc.Words[0].SemanticCategory == "" {
		t.Error("Words[0].SemanticCategory not set")
	}
	if doc.Words[2].Strongs != "" {
		t.Errorf("Words[2].Strongs = %q, want unmatched", doc.Words[2].Strongs)
	}

	// The verse store gained the merged verse and a repaired translation.
	vdoc, err := verses.Load(cfg.VersesPath)
	if err != nil {
		t.Fatalf("load verses: %v", err)
	}
	if len(vdoc.Verses) != 2 {
		t.Fatalf("got %d verses, want 2", len(vdoc.Verses))
	}
	if vdoc.Verses[0].Book != "matt" || vdoc.Verses[1].Book != "john" {
		t.Errorf("verse order: %s, %s", vdoc.Verses[0].Book, vdoc.Verses[1].Book)
	}
	if got := vdoc.Verses[1].ReferenceTranslation; got != "In the beginning was the Word." {
		t.Errorf("repaired translation = %q", got)
	}

	if len(fetcher.calls) != 1 || fetcher.calls[0] != "John 1:1" {
		t.Errorf("fetcher calls = %v, want [John 1:1]", fetcher.calls)
	}
}

func TestPipelineDryRun(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.DryRun = true
	before, err := os.ReadFile(cfg.VocabPath)
	if err != nil {
		t.Fatal(err)
	}

	fetcher := &mockFetcher{text: "anything"}
	p := NewPipeline(newTestLogger(), fetcher, cfg)
	if err := p.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	after, err := os.ReadFile(cfg.VocabPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("dry run must not modify the vocabulary store")
	}
	if _, err := os.Stat(cfg.NewVersesPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("dry run must not write the intermediate verse file")
	}
	if len(fetcher.calls) != 0 {
		t.Errorf("dry run must not fetch, got %v", fetcher.calls)
	}
}

func TestPipelinePhaseFilter(t *testing.T) {
	cfg := newTestConfig(t)
	p := NewPipeline(newTestLogger(), nil, cfg)

	if err := p.Run(context.Background(), []string{"categories"}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	results := p.Results()
	if len(results) != 1 {
		t.Fatalf("got %d phase results, want 1: %v", len(results), results)
	}
	if _, ok := results["categories"]; !ok {
		t.Error("categories phase did not run")
	}
}

func TestPipelineFetchErrorCounted(t *testing.T) {
	cfg := newTestConfig(t)
	fetcher := &mockFetcher{err: errors.New("boom")}
	p := NewPipeline(newTestLogger(), fetcher, cfg)

	if err := p.Run(context.Background(), []string{"translations"}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if r := p.Results()["translations"]; r.Errors != 1 {
		t.Errorf("translations = %+v, want 1 error", r)
	}
	if !p.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestPipelineMaxUpdates(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.MaxUpdates = 0 // unlimited
	fetcher := &mockFetcher{text: "Clean text."}
	p := NewPipeline(newTestLogger(), fetcher, cfg)

	if err := p.Run(context.Background(), []string{"translations"}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if r := p.Results()["translations"]; r.Updated != 1 {
		t.Errorf("translations = %+v", r)
	}
}

func TestPipelineMissingLexicon(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.LexiconPath = ""
	p := NewPipeline(newTestLogger(), nil, cfg)

	if err := p.Run(context.Background(), []string{"morphology"}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if r := p.Results()["morphology"]; r.Err == nil {
		t.Error("expected phase error for missing lexicon path")
	}
}
