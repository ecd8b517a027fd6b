package curator

import "time"

// Config holds pipeline run settings. Paths point at the dataset files
// the phases read and rewrite in place.
type Config struct {
	VocabPath         string
	LexiconPath       string
	KeyedFeaturesPath string
	VersesPath        string
	NewVersesPath     string
	SelectionPath     string

	FetchDelay time.Duration
	MaxUpdates int

	DryRun bool
}
