package questiongen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/llm"
	"github.com/abhisek/polski/internal/questionbank"
)

func genitive() catalog.Concept {
	return catalog.Concept{
		ID:          "c-gen",
		Name:        "Genitive after negation",
		Category:    catalog.CategoryGrammar,
		Description: "Direct objects take the genitive case after a negated verb.",
		Examples:    []string{"Nie mam kota.", "Nie widzę samochodu."},
		Difficulty:  catalog.LevelA2,
		Active:      true,
	}
}

func animals() catalog.Concept {
	return catalog.Concept{
		ID:         "c-animals",
		Name:       "Animals",
		Category:   catalog.CategoryVocabulary,
		Difficulty: catalog.LevelA1,
		Active:     true,
	}
}

func item(question, answer string, t questionbank.QuestionType, options ...string) map[string]any {
	if options == nil {
		options = []string{}
	}
	return map[string]any{
		"question":       question,
		"correct_answer": answer,
		"type":           string(t),
		"difficulty":     "A2",
		"options":        options,
		"explanation":    "Negation takes the genitive.",
	}
}

func batch(items ...map[string]any) llm.MockResponse {
	return llm.MockJSON(map[string]any{"questions": items})
}

type stubBriefer struct {
	text string
	err  error
	ids  []string
}

func (s *stubBriefer) Build(_ context.Context, ids []string) (string, error) {
	s.ids = ids
	return s.text, s.err
}

func TestGenerate_Cloze(t *testing.T) {
	mock := llm.NewMockProvider(batch(
		item("Nie mam ___ (kot).", "kota", questionbank.TypeBasicCloze),
		item("Nie widzę ___ (pies).", "psa", questionbank.TypeBasicCloze),
	))
	brief := &stubBriefer{text: "Target concepts:\n1. Genitive after negation"}
	gen := New(mock, brief, DefaultConfig(), nil)

	out, err := gen.Generate(context.Background(), Request{
		Concepts:   []catalog.Concept{genitive(), animals()},
		Type:       questionbank.TypeBasicCloze,
		Difficulty: catalog.LevelA2,
		Quantity:   2,
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "kota", out[0].CorrectAnswer)
	assert.Equal(t, catalog.LevelA2, out[0].Difficulty)
	assert.Equal(t, []string{"c-gen", "c-animals"}, out[0].TargetConcepts)
	assert.Equal(t, []string{"c-gen", "c-animals"}, brief.ids)

	require.Len(t, mock.Calls, 1)
	call := mock.Calls[0]
	assert.Equal(t, QuestionSchema, call.Schema)
	assert.Contains(t, call.Messages[0].Content, "Target concepts:")
	assert.Contains(t, call.Messages[0].Content, "Question type: BASIC_CLOZE")
	assert.Contains(t, call.Messages[0].Content, "Number of questions: 2")
}

func TestGenerate_DropsChoiceWithoutOptions(t *testing.T) {
	mock := llm.NewMockProvider(batch(
		item("Który wyraz oznacza 'cat'?", "kot", questionbank.TypeVocabChoice, "kot"),
		item("Który wyraz oznacza 'dog'?", "pies", questionbank.TypeVocabChoice, "kot", "pies", "koń"),
	))
	gen := New(mock, nil, DefaultConfig(), nil)

	out, err := gen.Generate(context.Background(), Request{
		Concepts: []catalog.Concept{animals()},
		Type:     questionbank.TypeVocabChoice,
		Quantity: 2,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "pies", out[0].CorrectAnswer)
}

func TestGenerate_CapsAtQuantity(t *testing.T) {
	mock := llm.NewMockProvider(batch(
		item("Nie mam ___.", "kota", questionbank.TypeBasicCloze),
		item("Nie ma ___.", "psa", questionbank.TypeBasicCloze),
		item("Nie lubię ___.", "mleka", questionbank.TypeBasicCloze),
	))
	gen := New(mock, nil, DefaultConfig(), nil)

	out, err := gen.Generate(context.Background(), Request{
		Concepts: []catalog.Concept{genitive()},
		Type:     questionbank.TypeBasicCloze,
		Quantity: 2,
	})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestGenerate_DefaultsDifficultyToHighestConcept(t *testing.T) {
	mock := llm.NewMockProvider(batch(item("Nie mam ___.", "kota", questionbank.TypeBasicCloze)))
	gen := New(mock, nil, DefaultConfig(), nil)

	_, err := gen.Generate(context.Background(), Request{
		Concepts: []catalog.Concept{animals(), genitive()},
		Type:     questionbank.TypeBasicCloze,
	})
	require.NoError(t, err)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Difficulty: A2")
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Number of questions: 1")
}

func TestGenerate_BrieferFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(batch(item("Nie mam ___.", "kota", questionbank.TypeBasicCloze)))
	gen := New(mock, &stubBriefer{err: errors.New("db down")}, DefaultConfig(), nil)

	_, err := gen.Generate(context.Background(), Request{
		Concepts: []catalog.Concept{genitive()},
		Type:     questionbank.TypeBasicCloze,
	})
	require.NoError(t, err)
	msg := mock.Calls[0].Messages[0].Content
	assert.True(t, strings.HasPrefix(msg, "Target concepts:"))
	assert.Contains(t, msg, "Nie mam kota.")
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	gen := New(mock, nil, DefaultConfig(), nil)

	_, err := gen.Generate(context.Background(), Request{
		Concepts: []catalog.Concept{genitive()},
		Type:     questionbank.TypeBasicCloze,
	})
	var unavail *llm.ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavail))
}

func TestGenerate_RejectsBadRequests(t *testing.T) {
	gen := New(llm.NewMockProvider(), nil, DefaultConfig(), nil)

	_, err := gen.Generate(context.Background(), Request{Type: questionbank.TypeBasicCloze})
	assert.Error(t, err)

	_, err = gen.Generate(context.Background(), Request{Concepts: []catalog.Concept{genitive()}, Type: "ESSAY"})
	assert.Error(t, err)
}
