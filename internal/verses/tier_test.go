package verses

import "testing"

func TestTierForWordCount(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 1},
		{1, 1},
		{10, 1}, // inclusive boundary
		{11, 2},
		{20, 2}, // inclusive boundary
		{21, 3},
		{100, 3},
	}
	for _, tt := range tests {
		if got := TierForWordCount(tt.words); got != tt.want {
			t.Errorf("TierForWordCount(%d) = %d, want %d", tt.words, got, tt.want)
		}
	}
}
