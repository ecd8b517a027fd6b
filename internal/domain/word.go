package domain

// VocabularyWord is a single entry of the vocabulary store.
type VocabularyWord struct {
	ID               string      `json:"id"`
	Greek            string      `json:"greek"`
	Strongs          string      `json:"strongs,omitempty"`
	Transliteration  string      `json:"transliteration,omitempty"`
	Gloss            string      `json:"gloss"`
	Definition       string      `json:"definition,omitempty"`
	PartOfSpeech     string      `json:"partOfSpeech,omitempty"`
	SemanticCategory string      `json:"semanticCategory,omitempty"`
	Morphology       *Morphology `json:"morphology,omitempty"`
}

// Identifier returns the word's preferred lookup identity: the
// canonical Strong's number when resolved, the legacy store id
// otherwise.
func (w VocabularyWord) Identifier() string {
	if w.Strongs != "" {
		return w.Strongs
	}
	return w.ID
}

// Morphology holds the decoded attributes of a lexicon morphology code.
type Morphology struct {
	Language string `json:"language,omitempty"`
	Type     string `json:"type,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Number   string `json:"number,omitempty"`
	Category string `json:"category,omitempty"`
}
