package lexicon

import (
	"reflect"
	"testing"

	"github.com/koinevocab/curator/internal/domain"
)

func TestParseMorphCode(t *testing.T) {
	tables := DefaultMorphTables()

	tests := []struct {
		name string
		code string
		want *domain.Morphology
	}{
		{"empty", "", nil},
		{"dash placeholder", "-", nil},
		{"no colon", "N-F", nil},
		{"greek noun feminine", "G:N-F", &domain.Morphology{Language: "G", Type: "noun", Gender: "feminine"}},
		{"greek verb", "G:V", &domain.Morphology{Language: "G", Type: "verb"}},
		{"name noun masculine person", "N:N-M-P", &domain.Morphology{Language: "N", Type: "noun", Gender: "masculine", Category: "person"}},
		{"location", "N:N-F-L", &domain.Morphology{Language: "N", Type: "noun", Gender: "feminine", Category: "location"}},
		{"title", "N:N-M-T", &domain.Morphology{Language: "N", Type: "noun", Gender: "masculine", Category: "title"}},
		{"indeclinable", "N:N-M-LI", &domain.Morphology{Language: "N", Type: "noun", Gender: "masculine", Category: "indeclinable"}},
		{"unknown category dropped", "N:N-M-X", &domain.Morphology{Language: "N", Type: "noun", Gender: "masculine"}},
		{"alternate article code", "G:T", &domain.Morphology{Language: "G", Type: "article"}},
		{"particle with gender letter", "G:PRT-N", &domain.Morphology{Language: "G", Type: "particle", Gender: "neuter"}},
		{"unknown type lowercased", "G:XYZ", &domain.Morphology{Language: "G", Type: "xyz"}},
		{"lowercase type code", "G:n-f", &domain.Morphology{Language: "G", Type: "noun", Gender: "feminine"}},
		{"singular mark", "G:N-FS", &domain.Morphology{Language: "G", Type: "noun", Gender: "feminine", Number: "singular"}},
		{"plural mark", "G:N-MP", &domain.Morphology{Language: "G", Type: "noun", Gender: "masculine", Number: "plural"}},
		{"both marks plural wins", "G:N-MSP", &domain.Morphology{Language: "G", Type: "noun", Gender: "masculine", Number: "plural"}},
		{"empty gender component", "G:N--P", &domain.Morphology{Language: "G", Type: "noun", Category: "person"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tables.ParseMorphCode(tt.code)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseMorphCode(%q) = %+v, want %+v", tt.code, got, tt.want)
			}
		})
	}
}
