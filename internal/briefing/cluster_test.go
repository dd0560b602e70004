package briefing

import (
	"strings"
	"testing"

	"github.com/abhisek/polski/internal/catalog"
)

func TestSplitByCategory(t *testing.T) {
	grammar, vocab := SplitByCategory(testConcepts())
	if len(grammar) != 4 {
		t.Errorf("grammar = %d, want 4", len(grammar))
	}
	if len(vocab) != 2 {
		t.Errorf("vocabulary = %d, want 2", len(vocab))
	}
	if grammar[0].ID != "gen" {
		t.Errorf("grammar[0] = %s, want gen (input order kept)", grammar[0].ID)
	}
}

func TestSessionObjectives(t *testing.T) {
	gen := catalog.Concept{Name: "Genitive", Category: catalog.CategoryGrammar}
	acc := catalog.Concept{Name: "Accusative", Category: catalog.CategoryGrammar}
	food := catalog.Concept{Name: "Food", Category: catalog.CategoryVocabulary}
	drinks := catalog.Concept{Name: "Drinks", Category: catalog.CategoryVocabulary}

	tests := []struct {
		name     string
		concepts []catalog.Concept
		wantLen  int
		contains string
	}{
		{"none", nil, 0, ""},
		{"single grammar", []catalog.Concept{gen}, 1, "mastery"},
		{"single vocabulary", []catalog.Concept{food}, 1, "recall"},
		{"mixed", []catalog.Concept{gen, food}, 2, "using the vocabulary"},
		{"multi grammar", []catalog.Concept{gen, acc}, 2, "Distinguish"},
		{"multi vocabulary", []catalog.Concept{food, drinks}, 2, "together in context"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SessionObjectives(tt.concepts)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d: %v", len(got), tt.wantLen, got)
			}
			if tt.wantLen > 0 && !strings.Contains(got[0], tt.contains) {
				t.Errorf("objective %q does not contain %q", got[0], tt.contains)
			}
			if tt.wantLen > 1 && !strings.Contains(got[1], "Interleave") {
				t.Errorf("missing interleaving objective: %v", got)
			}
		})
	}
}
