package textproc

import (
	"reflect"
	"testing"
)

func TestExpandSynonyms(t *testing.T) {
	tests := []struct {
		name     string
		in       []string
		contains []string
	}{
		{"expands hunger to food", []string{"hungry"}, []string{"hungry", "food", "meal", "faim"}},
		{"bilingual expansion", []string{"faim"}, []string{"faim", "food", "hungry"}},
		{"misspelling recovery", []string{"sucide"}, []string{"sucide", "suicide", "crisis"}},
		{"unknown token passes through", []string{"zamboni"}, []string{"zamboni"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandSynonyms(tt.in)
			for _, want := range tt.contains {
				found := false
				for _, tok := range got {
					if tok == want {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("ExpandSynonyms(%v) = %v, missing %q", tt.in, got, want)
				}
			}
		})
	}
}

func TestExpandSynonyms_OriginalsFirstAndDeduplicated(t *testing.T) {
	got := ExpandSynonyms([]string{"hungry", "food", "hungry"})
	if got[0] != "hungry" || got[1] != "food" {
		t.Errorf("originals should come first: %v", got)
	}
	seen := make(map[string]int)
	for _, tok := range got {
		seen[tok]++
	}
	for tok, n := range seen {
		if n > 1 {
			t.Errorf("token %q appears %d times, expansion must deduplicate", tok, n)
		}
	}
}

func TestExpandSynonyms_Empty(t *testing.T) {
	if got := ExpandSynonyms(nil); len(got) != 0 {
		t.Errorf("expected empty expansion, got %v", got)
	}
	if got := ExpandSynonyms([]string{}); !reflect.DeepEqual(got, []string{}) {
		t.Errorf("expected empty slice, got %v", got)
	}
}
