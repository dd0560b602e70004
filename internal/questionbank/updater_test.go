package questionbank

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	entries   map[string]Entry
	updates   int
	updateErr error
}

func newFakeRepo(entries ...Entry) *fakeRepo {
	r := &fakeRepo{entries: make(map[string]Entry)}
	for _, e := range entries {
		r.entries[e.ID] = e
	}
	return r
}

func (r *fakeRepo) Find(_ context.Context, f Filter, order Order, limit int) ([]Entry, error) {
	var out []Entry
	for _, e := range r.entries {
		if f.Matches(&e) {
			out = append(out, e)
		}
	}
	SortEntries(out, order)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*Entry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *fakeRepo) Create(_ context.Context, e Entry) (Entry, error) {
	r.entries[e.ID] = e
	return e, nil
}

func (r *fakeRepo) UpdateOne(_ context.Context, id string, p Patch) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	e, ok := r.entries[id]
	if !ok {
		return ErrNotFound
	}
	if p.TimesUsed != nil {
		e.TimesUsed = *p.TimesUsed
	}
	if p.SuccessRate != nil {
		e.SuccessRate = *p.SuccessRate
	}
	if p.LastUsed != nil {
		e.LastUsed = p.LastUsed
	}
	if p.Active != nil {
		e.Active = *p.Active
	}
	r.entries[id] = e
	r.updates++
	return nil
}

func (r *fakeRepo) Count(ctx context.Context, f Filter) (int, error) {
	out, _ := r.Find(ctx, f, OrderNewest, 0)
	return len(out), nil
}

var testNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestUpdater(repo Repo) *Updater {
	u := NewUpdater(repo, nil)
	u.Now = func() time.Time { return testNow }
	return u
}

func TestUpdateQuestionPerformance_ExactMean(t *testing.T) {
	repo := newFakeRepo(Entry{ID: "q1", Active: true, Source: SourceManual})
	u := newTestUpdater(repo)
	ctx := context.Background()

	answers := []bool{true, true, false, true, false, false, false, true, true, true, false, true, true}
	correct := 0
	for _, a := range answers {
		require.NoError(t, u.UpdateQuestionPerformance(ctx, "q1", a))
		if a {
			correct++
		}
	}

	e := repo.entries["q1"]
	assert.Equal(t, len(answers), e.TimesUsed)
	assert.InDelta(t, float64(correct)/float64(len(answers)), e.SuccessRate, 1e-12)
	require.NotNil(t, e.LastUsed)
	assert.True(t, e.LastUsed.Equal(testNow))
}

func TestUpdateQuestionPerformance_FirstAnswer(t *testing.T) {
	repo := newFakeRepo(Entry{ID: "q1"})
	u := newTestUpdater(repo)

	require.NoError(t, u.UpdateQuestionPerformance(context.Background(), "q1", false))
	assert.Equal(t, 1, repo.entries["q1"].TimesUsed)
	assert.Equal(t, 0.0, repo.entries["q1"].SuccessRate)
}

func TestUpdateQuestionPerformance_UnknownQuestionIgnored(t *testing.T) {
	repo := newFakeRepo()
	u := newTestUpdater(repo)

	assert.NoError(t, u.UpdateQuestionPerformance(context.Background(), "missing", true))
	assert.Zero(t, repo.updates)
}

func TestUpdateQuestionPerformance_StoreError(t *testing.T) {
	repo := newFakeRepo(Entry{ID: "q1"})
	repo.updateErr = errors.New("write failed")
	u := newTestUpdater(repo)

	assert.Error(t, u.UpdateQuestionPerformance(context.Background(), "q1", true))
}

func TestSortEntries_Quality(t *testing.T) {
	entries := []Entry{
		{ID: "mom", Source: SourceMomentary},
		{ID: "gen-used", Source: SourceGenerated, TimesUsed: 4},
		{ID: "man-weak", Source: SourceManual, TimesUsed: 2, SuccessRate: 0.2},
		{ID: "man-strong", Source: SourceManual, TimesUsed: 2, SuccessRate: 0.9},
		{ID: "man-new", Source: SourceManual},
		{ID: "gen-new", Source: SourceGenerated},
	}
	SortEntries(entries, OrderQuality)

	var ids []string
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"man-new", "man-strong", "man-weak", "gen-new", "gen-used", "mom"}, ids)
}

func TestFilter_Matches(t *testing.T) {
	e := Entry{ID: "q1", TargetConcepts: []string{"c1", "c2"}, Source: SourceMomentary, Active: true}
	untargeted := Entry{ID: "q2", Active: true}

	assert.True(t, Filter{ConceptsAny: []string{"c2", "c9"}}.Matches(&e))
	assert.False(t, Filter{ConceptsAny: []string{"c9"}}.Matches(&e))
	assert.False(t, Filter{ConceptsAny: []string{"c1"}}.Matches(&untargeted))
	assert.False(t, Filter{Sources: []Source{SourceManual, SourceGenerated}}.Matches(&e))
	assert.False(t, Filter{UsedOnly: true}.Matches(&e))
	assert.True(t, Filter{ActiveOnly: true, IDs: []string{"q1"}}.Matches(&e))
}

func TestQuestionType(t *testing.T) {
	assert.Len(t, AllTypes, 18)
	for _, qt := range MomentaryTypes {
		assert.True(t, qt.Valid(), qt)
	}
	assert.True(t, TypeVocabChoice.SingleAnswer())
	assert.True(t, TypeMultiSelect.ChoiceBased())
	assert.False(t, TypeMultiSelect.SingleAnswer())
	assert.False(t, TypeBasicCloze.ChoiceBased())
	assert.False(t, QuestionType("ESSAY").Valid())
}
