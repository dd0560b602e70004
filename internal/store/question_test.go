package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/questionbank"
)

func entry(id string, src questionbank.Source, used int, rate float64, created time.Time, targets ...string) questionbank.Entry {
	return questionbank.Entry{
		ID:             id,
		Question:       "Uzupełnij: ___ kot.",
		CorrectAnswer:  "To",
		Type:           questionbank.TypeBasicCloze,
		TargetConcepts: targets,
		Difficulty:     catalog.LevelA1,
		TimesUsed:      used,
		SuccessRate:    rate,
		CreatedAt:      created,
		Active:         true,
		Source:         src,
	}
}

func seedQuestions(t *testing.T, r *QuestionRepo, entries ...questionbank.Entry) {
	t.Helper()
	for _, e := range entries {
		_, err := r.Create(context.Background(), e)
		require.NoError(t, err)
	}
}

func entryIDs(entries []questionbank.Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func TestQuestionRepo_CreateRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	in := questionbank.Entry{
		Question:       "Który wyraz oznacza 'cat'?",
		CorrectAnswer:  "kot",
		Type:           questionbank.TypeVocabChoice,
		TargetConcepts: []string{"c-kot"},
		Difficulty:     catalog.LevelA1,
		Active:         true,
		Source:         questionbank.SourceManual,
		Options:        []string{"kot", "pies", "dom"},
		Media:          []string{"audio/kot.mp3"},
	}
	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, in.Options, got.Options)
	assert.Equal(t, in.Media, got.Media)
	assert.Equal(t, in.TargetConcepts, got.TargetConcepts)
	assert.Nil(t, got.LastUsed)

	missing, err := repo.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestQuestionRepo_FindOrders(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	seedQuestions(t, repo,
		entry("q-mom", questionbank.SourceMomentary, 0, 0, base.Add(4*time.Hour), "c-kot"),
		entry("q-gen", questionbank.SourceGenerated, 1, 0.5, base.Add(3*time.Hour), "c-kot"),
		entry("q-man-busy", questionbank.SourceManual, 9, 0.9, base.Add(2*time.Hour), "c-kot"),
		entry("q-man-fresh", questionbank.SourceManual, 0, 0, base.Add(1*time.Hour), "c-kot"),
	)

	got, err := repo.Find(ctx, questionbank.Filter{}, questionbank.OrderQuality, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"q-man-fresh", "q-man-busy", "q-gen", "q-mom"}, entryIDs(got))

	got, err = repo.Find(ctx, questionbank.Filter{}, questionbank.OrderNewest, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"q-mom", "q-gen"}, entryIDs(got))

	used := base.Add(24 * time.Hour)
	require.NoError(t, repo.UpdateOne(ctx, "q-gen", questionbank.Patch{LastUsed: &used}))
	earlier := base.Add(12 * time.Hour)
	require.NoError(t, repo.UpdateOne(ctx, "q-man-busy", questionbank.Patch{LastUsed: &earlier}))

	got, err = repo.Find(ctx, questionbank.Filter{}, questionbank.OrderRecentlyUsed, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"q-gen", "q-man-busy"}, entryIDs(got))
}

func TestQuestionRepo_Filters(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	inactive := entry("q-off", questionbank.SourceManual, 3, 1, base, "c-kot")
	inactive.Active = false
	seedQuestions(t, repo,
		entry("q-kot", questionbank.SourceManual, 2, 1, base.Add(3*time.Hour), "c-kot"),
		entry("q-both", questionbank.SourceGenerated, 0, 0, base.Add(2*time.Hour), "c-kot", "c-dom"),
		entry("q-dom", questionbank.SourceMomentary, 1, 0, base.Add(1*time.Hour), "c-dom"),
		entry("q-none", questionbank.SourceManual, 0, 0, base),
		inactive,
	)

	tests := []struct {
		name   string
		filter questionbank.Filter
		want   []string
	}{
		{"concepts any", questionbank.Filter{ConceptsAny: []string{"c-kot"}, ActiveOnly: true}, []string{"q-kot", "q-both"}},
		{"concepts any several", questionbank.Filter{ConceptsAny: []string{"c-kot", "c-dom"}, ActiveOnly: true}, []string{"q-kot", "q-both", "q-dom"}},
		{"durable sources", questionbank.Filter{Sources: []questionbank.Source{questionbank.SourceManual, questionbank.SourceGenerated}, ActiveOnly: true}, []string{"q-kot", "q-both", "q-none"}},
		{"used only", questionbank.Filter{UsedOnly: true}, []string{"q-kot", "q-dom", "q-off"}},
		{"ids", questionbank.Filter{IDs: []string{"q-dom", "q-none"}}, []string{"q-dom", "q-none"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Find(ctx, tt.filter, questionbank.OrderNewest, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, entryIDs(got))

			n, err := repo.Count(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), n)
		})
	}
}

func TestQuestionRepo_UpdateOne(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()
	seedQuestions(t, repo, entry("q-1", questionbank.SourceManual, 0, 0, time.Now(), "c-kot"))

	times, rate, off := 3, 0.67, false
	require.NoError(t, repo.UpdateOne(ctx, "q-1", questionbank.Patch{TimesUsed: &times, SuccessRate: &rate, Active: &off}))

	got, err := repo.FindByID(ctx, "q-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.TimesUsed)
	assert.InDelta(t, 0.67, got.SuccessRate, 1e-9)
	assert.False(t, got.Active)

	err = repo.UpdateOne(ctx, "q-missing", questionbank.Patch{TimesUsed: &times})
	assert.ErrorIs(t, err, questionbank.ErrNotFound)
}

func TestQuestionRepo_WorksWithUpdater(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()
	seedQuestions(t, repo, entry("q-1", questionbank.SourceManual, 1, 1, time.Now(), "c-kot"))

	u := questionbank.NewUpdater(repo, nil)
	require.NoError(t, u.UpdateQuestionPerformance(ctx, "q-1", false))

	got, err := repo.FindByID(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.TimesUsed)
	assert.InDelta(t, 0.5, got.SuccessRate, 1e-9)
	assert.NotNil(t, got.LastUsed)
}
