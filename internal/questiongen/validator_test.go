package questiongen

import (
	"strings"
	"testing"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/questionbank"
)

func TestValidators(t *testing.T) {
	base := func(t questionbank.QuestionType, q, a string, opts ...string) Generated {
		return Generated{Question: q, CorrectAnswer: a, Type: t, Difficulty: catalog.LevelA1, Options: opts}
	}
	tests := []struct {
		name      string
		q         Generated
		req       Request
		validator string // empty means valid
	}{
		{"valid cloze", base(questionbank.TypeBasicCloze, "To jest ___.", "kot"), Request{}, ""},
		{"empty question", base(questionbank.TypeBasicCloze, " ", "kot"), Request{}, "structural"},
		{"empty answer", base(questionbank.TypeBasicCloze, "To jest ___.", ""), Request{}, "structural"},
		{"too long", base(questionbank.TypeTranslationENPL, strings.Repeat("ż", maxQuestionRunes+1), "x"), Request{}, "structural"},
		{"type mismatch", base(questionbank.TypeBasicCloze, "To jest ___.", "kot"), Request{Type: questionbank.TypeMultiCloze}, "structural"},
		{"unknown type", base("ESSAY", "Napisz.", "x"), Request{}, "structural"},
		{"bad level", Generated{Question: "a ___", CorrectAnswer: "b", Type: questionbank.TypeBasicCloze, Difficulty: "D1"}, Request{}, "structural"},
		{"cloze without blank", base(questionbank.TypeBasicCloze, "To jest kot.", "kot"), Request{}, "cloze"},
		{"cloze two blanks", base(questionbank.TypeBasicCloze, "___ jest ___.", "kot"), Request{}, "cloze"},
		{"multi cloze", base(questionbank.TypeMultiCloze, "Nie mam ___ ani ___.", "kota; psa"), Request{}, ""},
		{"multi cloze count mismatch", base(questionbank.TypeMultiCloze, "Nie mam ___ ani ___.", "kota"), Request{}, "cloze"},
		{"choice ok", base(questionbank.TypeVocabChoice, "cat?", "Kot", "kot", "pies"), Request{}, ""},
		{"choice one option", base(questionbank.TypeVocabChoice, "cat?", "kot", "kot"), Request{}, "choice"},
		{"choice blank options", base(questionbank.TypeSynonymChoice, "cat?", "kot", "kot", " "), Request{}, "choice"},
		{"choice answer missing", base(questionbank.TypeVocabChoice, "cat?", "koń", "kot", "pies"), Request{}, "choice"},
		{"choice duplicate", base(questionbank.TypeVocabChoice, "cat?", "kot", "kot", "KOT"), Request{}, "choice"},
		{"multi select", base(questionbank.TypeMultiSelect, "animals?", "kot;pies", "kot", "pies", "dom"), Request{}, ""},
		{"multi select missing", base(questionbank.TypeMultiSelect, "animals?", "kot;koń", "kot", "pies", "dom"), Request{}, "choice"},
		{"non-choice ignores options", base(questionbank.TypeTranslationPLEN, "Kot", "cat"), Request{}, ""},
	}
	validators := DefaultConfig().Validators
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.q, tt.req, validators...)
			if tt.validator == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected %s failure", tt.validator)
			}
			if err.Validator != tt.validator {
				t.Fatalf("failed in %q, want %q: %v", err.Validator, tt.validator, err)
			}
		})
	}
}

func TestHasEnoughOptions(t *testing.T) {
	if err := HasEnoughOptions(questionbank.TypeMultiSelect, []string{"a"}); err == nil {
		t.Error("MULTI_SELECT with one option should fail")
	}
	if err := HasEnoughOptions(questionbank.TypeBasicCloze, nil); err != nil {
		t.Errorf("cloze needs no options: %v", err)
	}
}
