// Package provider defines the result types returned by external
// translation providers.
package provider

// TranslationResult is a fetched English rendering of a single verse.
type TranslationResult struct {
	Reference   string
	Text        string
	Translation string
	Source      string
}
