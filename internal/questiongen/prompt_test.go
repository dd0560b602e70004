package questiongen

import (
	"strings"
	"testing"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/questionbank"
)

func TestBuildUserMessage(t *testing.T) {
	req := Request{
		Type:                questionbank.TypeMultiSelect,
		Difficulty:          catalog.LevelB1,
		Quantity:            3,
		SpecialInstructions: "Use only feminine nouns.",
		PriorQuestions:      []string{"Q1", "Q2", "Q3"},
	}
	cfg := DefaultConfig()
	cfg.MaxPriorQuestions = 2

	msg := buildUserMessage(req, "BRIEF", cfg)

	for _, want := range []string{
		"BRIEF\n\n",
		"Question type: MULTI_SELECT",
		"Format: Several options are correct",
		"Difficulty: B1",
		"Number of questions: 3",
		"Special instructions:\nUse only feminine nouns.",
		"1. Q2\n2. Q3",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "Q1") {
		t.Error("oldest prior question should be trimmed")
	}
}

func TestBuildDedup_None(t *testing.T) {
	if got := buildDedup(nil, 5); got != "None" {
		t.Errorf("buildDedup(nil) = %q", got)
	}
}
