// Package verses reconciles verse collections: book id normalization,
// translation cleanup, deduplicating merge, difficulty tiering and the
// interlinear-translation quality heuristic.
package verses

// Difficulty tier thresholds, inclusive.
const (
	tier1MaxWords = 10
	tier2MaxWords = 20
)

// TierForWordCount assigns a difficulty tier from a verse's word count:
// tier 1 up to 10 words, tier 2 up to 20, tier 3 beyond.
func TierForWordCount(n int) int {
	switch {
	case n <= tier1MaxWords:
		return 1
	case n <= tier2MaxWords:
		return 2
	default:
		return 3
	}
}
