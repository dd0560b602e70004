package briefing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/catalog/catalogtest"
)

func testConcepts() []catalog.Concept {
	return []catalog.Concept{
		{ID: "gen", Name: "Genitive case", Category: catalog.CategoryGrammar, Difficulty: catalog.LevelA2, Active: true,
			Description: "Used after negation and quantities",
			Examples:    []string{"Nie mam kota.", "Dużo ludzi.", "Szklanka wody.", "Bez cukru."}},
		{ID: "acc", Name: "Accusative case", Category: catalog.CategoryGrammar, Difficulty: catalog.LevelA1, Active: true},
		{ID: "ins", Name: "Instrumental case", Category: catalog.CategoryGrammar, Difficulty: catalog.LevelA2, Active: true},
		{ID: "food", Name: "Food vocabulary", Category: catalog.CategoryVocabulary, Difficulty: catalog.LevelA1, Active: true},
		{ID: "drinks", Name: "Drinks", Category: catalog.CategoryVocabulary, Difficulty: catalog.LevelA1, Active: true},
		{ID: "old", Name: "Retired concept", Category: catalog.CategoryGrammar, Difficulty: catalog.LevelA1, Active: false},
	}
}

func TestBuild_GroupContextPreferred(t *testing.T) {
	concepts := &catalogtest.Concepts{Items: testConcepts()}
	groups := &catalogtest.Groups{Items: []catalog.ConceptGroup{
		{ID: "g1", Name: "At the cafe", MemberConcepts: []string{"gen", "drinks", "old"}, Active: true},
	}}
	b := NewBuilder(concepts, groups, DefaultConfig(), nil)

	text, err := b.Build(context.Background(), []string{"gen"})
	require.NoError(t, err)

	assert.Contains(t, text, "1. Genitive case (GRAMMAR, A2)")
	assert.Contains(t, text, "Examples: Nie mam kota.; Dużo ludzi.; Szklanka wody.")
	assert.NotContains(t, text, "Bez cukru.")
	assert.Contains(t, text, "- Drinks (VOCABULARY)")
	assert.NotContains(t, text, "Retired concept")
	assert.NotContains(t, text, "Interleaving:")
}

func TestBuild_CategoryFallback(t *testing.T) {
	concepts := &catalogtest.Concepts{Items: testConcepts()}
	b := NewBuilder(concepts, &catalogtest.Groups{}, Config{MaxContextConcepts: 3, MaxExamples: 3, Seed: 7}, nil)

	text, err := b.Build(context.Background(), []string{"gen"})
	require.NoError(t, err)

	related := relatedSection(text)
	assert.Contains(t, related, "Accusative case")
	assert.Contains(t, related, "Instrumental case")
	assert.NotContains(t, related, "Food vocabulary")
	assert.NotContains(t, related, "Genitive case")
}

func TestBuild_GroupLookupFailureFallsBack(t *testing.T) {
	concepts := &catalogtest.Concepts{Items: testConcepts()}
	groups := &catalogtest.Groups{Err: errors.New("groups unavailable")}
	b := NewBuilder(concepts, groups, Config{MaxContextConcepts: 1, MaxExamples: 3, Seed: 1}, nil)

	text, err := b.Build(context.Background(), []string{"food"})
	require.NoError(t, err)
	assert.Contains(t, relatedSection(text), "Drinks")
}

func TestBuild_MultiConcept(t *testing.T) {
	concepts := &catalogtest.Concepts{Items: testConcepts()}
	b := NewBuilder(concepts, nil, DefaultConfig(), nil)

	text, err := b.Build(context.Background(), []string{"gen", "food"})
	require.NoError(t, err)
	assert.Contains(t, text, "Interleaving:")
	assert.Contains(t, text, `Apply "Genitive case" using the vocabulary of "Food vocabulary"`)
}

func TestBuild_NoConcepts(t *testing.T) {
	b := NewBuilder(&catalogtest.Concepts{Items: testConcepts()}, nil, DefaultConfig(), nil)

	_, err := b.Build(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoConcepts)

	_, err = b.Build(context.Background(), []string{"nope"})
	assert.ErrorIs(t, err, ErrNoConcepts)
}

func relatedSection(text string) string {
	start := strings.Index(text, "Context concepts")
	if start < 0 {
		return ""
	}
	end := strings.Index(text[start:], "Session objectives")
	return text[start : start+end]
}
