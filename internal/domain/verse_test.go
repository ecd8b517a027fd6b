package domain

import "testing"

func TestVerseID(t *testing.T) {
	v := Verse{Book: "john", Chapter: 3, Verse: 16}
	if got := v.ID(); got != "john-3-16" {
		t.Errorf("ID() = %q, want %q", got, "john-3-16")
	}
}

func TestVerseKey(t *testing.T) {
	a := Verse{Book: "matt", Chapter: 5, Verse: 3, Greek: "some text"}
	b := Verse{Book: "matt", Chapter: 5, Verse: 3, Greek: "other text"}
	if a.Key() != b.Key() {
		t.Error("verses with equal (book, chapter, verse) must share a key")
	}
	c := Verse{Book: "matt", Chapter: 5, Verse: 4}
	if a.Key() == c.Key() {
		t.Error("verses with different verse numbers must not share a key")
	}
}

func TestVocabularyWordIdentifier(t *testing.T) {
	tests := []struct {
		name string
		word VocabularyWord
		want string
	}{
		{"strongs set", VocabularyWord{ID: "w1", Strongs: "G846"}, "G846"},
		{"legacy id only", VocabularyWord{ID: "w1"}, "w1"},
		{"neither", VocabularyWord{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.word.Identifier(); got != tt.want {
				t.Errorf("Identifier() = %q, want %q", got, tt.want)
			}
		})
	}
}
