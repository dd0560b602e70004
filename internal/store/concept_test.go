package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/polski/internal/catalog"
)

func seedConcepts(t *testing.T, r *ConceptRepo, concepts ...catalog.Concept) {
	t.Helper()
	for _, c := range concepts {
		_, err := r.Create(context.Background(), c)
		require.NoError(t, err)
	}
}

func TestConceptRepo_CreateAndFind(t *testing.T) {
	s := openTestStore(t)
	repo := s.ConceptRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, catalog.Concept{
		Name:       "Genitive after negation",
		Category:   catalog.CategoryGrammar,
		Examples:   []string{"Nie mam czasu.", "Nie ma mleka."},
		Difficulty: catalog.LevelA2,
		Tags:       []string{"cases"},
		Active:     true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repo.Find(ctx, catalog.ConceptFilter{IDs: []string{created.ID}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, created, got[0])
}

func TestConceptRepo_Filters(t *testing.T) {
	s := openTestStore(t)
	repo := s.ConceptRepo()
	ctx := context.Background()

	seedConcepts(t, repo,
		catalog.Concept{ID: "c-kot", Name: "kot", Category: catalog.CategoryVocabulary, Difficulty: catalog.LevelA1, Active: true},
		catalog.Concept{ID: "c-aspect", Name: "aspect pairs", Category: catalog.CategoryGrammar, Difficulty: catalog.LevelB1, Active: true},
		catalog.Concept{ID: "c-old", Name: "archaic dual", Category: catalog.CategoryGrammar, Difficulty: catalog.LevelC2, Active: false},
		catalog.Concept{ID: "c-dom", Name: "dom", Category: catalog.CategoryVocabulary, Difficulty: catalog.LevelA1, Active: true},
	)

	tests := []struct {
		name   string
		filter catalog.ConceptFilter
		want   []string
	}{
		{"all ordered by name", catalog.ConceptFilter{}, []string{"c-old", "c-aspect", "c-dom", "c-kot"}},
		{"active only", catalog.ConceptFilter{ActiveOnly: true}, []string{"c-aspect", "c-dom", "c-kot"}},
		{"category", catalog.ConceptFilter{Category: catalog.CategoryGrammar}, []string{"c-old", "c-aspect"}},
		{"difficulty", catalog.ConceptFilter{Difficulty: catalog.LevelA1}, []string{"c-dom", "c-kot"}},
		{"exclude", catalog.ConceptFilter{ActiveOnly: true, ExcludeIDs: []string{"c-dom"}}, []string{"c-aspect", "c-kot"}},
		{"limit", catalog.ConceptFilter{ActiveOnly: true, Limit: 1}, []string{"c-aspect"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Find(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, catalog.IDs(got))
		})
	}
}

func TestConceptRepo_FindByName(t *testing.T) {
	s := openTestStore(t)
	repo := s.ConceptRepo()
	ctx := context.Background()
	seedConcepts(t, repo, catalog.Concept{ID: "c-kot", Name: "kot", Category: catalog.CategoryVocabulary, Difficulty: catalog.LevelA1, Active: true})

	c, err := repo.FindByName(ctx, "kot")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "c-kot", c.ID)

	c, err = repo.FindByName(ctx, "pies")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestGroupRepo_UpsertMergesMembers(t *testing.T) {
	s := openTestStore(t)
	repo := s.GroupRepo()
	ctx := context.Background()

	g, err := repo.Upsert(ctx, catalog.ConceptGroup{Name: "Animals", MemberConcepts: []string{"c-kot", "c-pies"}, Active: true})
	require.NoError(t, err)
	require.NotEmpty(t, g.ID)

	again, err := repo.Upsert(ctx, catalog.ConceptGroup{Name: "Animals", MemberConcepts: []string{"c-pies", "c-ryba"}})
	require.NoError(t, err)
	assert.Equal(t, g.ID, again.ID)
	assert.Equal(t, []string{"c-kot", "c-pies", "c-ryba"}, again.MemberConcepts)
	assert.True(t, again.Active, "upsert keeps the existing active flag")

	one, err := repo.FindOne(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, again, *one)

	missing, err := repo.FindOne(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGroupRepo_FindContainingAny(t *testing.T) {
	s := openTestStore(t)
	repo := s.GroupRepo()
	ctx := context.Background()

	_, err := repo.Upsert(ctx, catalog.ConceptGroup{ID: "g-animals", Name: "Animals", MemberConcepts: []string{"c-kot", "c-pies"}, Active: true})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, catalog.ConceptGroup{ID: "g-home", Name: "Home", MemberConcepts: []string{"c-dom"}, Active: true})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, catalog.ConceptGroup{ID: "g-old", Name: "Old pets", MemberConcepts: []string{"c-kot"}, Active: false})
	require.NoError(t, err)

	got, err := repo.Find(ctx, catalog.GroupFilter{ContainingAny: []string{"c-kot", "c-dom"}, ActiveOnly: true})
	require.NoError(t, err)
	ids := make([]string, len(got))
	for i, g := range got {
		ids[i] = g.ID
	}
	assert.Equal(t, []string{"g-animals", "g-home"}, ids)

	got, err = repo.Find(ctx, catalog.GroupFilter{ContainingAny: []string{"c-ryba"}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCourseRepo_OrderedByConfidence(t *testing.T) {
	s := openTestStore(t)
	repo := s.CourseRepo()
	ctx := context.Background()

	for _, cc := range []catalog.CourseConcept{
		{CourseID: "pl-101", ConceptID: "c-a", Confidence: 0.4, Active: true},
		{CourseID: "pl-101", ConceptID: "c-b", Confidence: 0.9, Active: true},
		{CourseID: "pl-101", ConceptID: "c-c", Confidence: 0.7, Active: false},
		{CourseID: "pl-202", ConceptID: "c-d", Confidence: 1.0, Active: true},
	} {
		require.NoError(t, repo.Create(ctx, cc))
	}

	got, err := repo.Find(ctx, catalog.CourseFilter{CourseIDs: []string{"pl-101"}, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c-b", got[0].ConceptID)
	assert.Equal(t, "c-a", got[1].ConceptID)

	// Re-importing a mapping refreshes it instead of failing.
	require.NoError(t, repo.Create(ctx, catalog.CourseConcept{CourseID: "pl-101", ConceptID: "c-a", Confidence: 0.95, Active: true}))
	got, err = repo.Find(ctx, catalog.CourseFilter{CourseIDs: []string{"pl-101"}, ActiveOnly: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c-a", got[0].ConceptID)
	assert.InDelta(t, 0.95, got[0].Confidence, 1e-9)
}
