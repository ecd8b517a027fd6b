// Package domain holds the core data model of the learning corpus:
// vocabulary words, verses and the normalization rules shared by every
// pipeline phase. No store or transport dependencies.
package domain

import "fmt"

// Verse is a single Greek verse with its study metadata. Identity is
// the (book, chapter, verse) triple; the store id is derived, never
// authored.
type Verse struct {
	Book                 string
	Chapter              int
	Verse                int
	Reference            string
	Greek                string
	Transliteration      string
	ReferenceTranslation string
	KeyTerms             []string
	Notes                string
	Tier                 int
}

// VerseKey is the dedup identity of a verse.
type VerseKey struct {
	Book    string
	Chapter int
	Verse   int
}

// ID returns the derived store identifier, e.g. "john-3-16".
func (v Verse) ID() string {
	return fmt.Sprintf("%s-%d-%d", v.Book, v.Chapter, v.Verse)
}

// Key returns the dedup identity of the verse.
func (v Verse) Key() VerseKey {
	return VerseKey{Book: v.Book, Chapter: v.Chapter, Verse: v.Verse}
}

// BookDescriptor pairs a store book id with its display name. The
// order of the store's book list defines canonical verse ordering.
type BookDescriptor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
