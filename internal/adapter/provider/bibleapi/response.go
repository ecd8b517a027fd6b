package bibleapi

// apiResponse is the bible-api.com response shape.
type apiResponse struct {
	Reference       string     `json:"reference"`
	Verses          []apiVerse `json:"verses"`
	Text            string     `json:"text"`
	TranslationID   string     `json:"translation_id"`
	TranslationName string     `json:"translation_name"`
}

type apiVerse struct {
	BookID   string `json:"book_id"`
	BookName string `json:"book_name"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Text     string `json:"text"`
}
