package srs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProgressRepo is an in-memory ProgressRepo for tests.
type fakeProgressRepo struct {
	rows    map[string]Progress
	nextID  int
	saves   int
	findErr error
}

func newFakeProgressRepo(rows ...Progress) *fakeProgressRepo {
	r := &fakeProgressRepo{rows: make(map[string]Progress)}
	for _, p := range rows {
		_, _ = r.Save(context.Background(), p)
	}
	r.saves = 0
	return r
}

// Rows returns the stored records in no particular order.
func (r *fakeProgressRepo) Rows() []Progress {
	out := make([]Progress, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out
}

func (r *fakeProgressRepo) FindOne(_ context.Context, userID, conceptID string) (*Progress, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, p := range r.rows {
		if p.UserID == userID && p.ConceptID == conceptID {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakeProgressRepo) Find(_ context.Context, f ProgressFilter) ([]Progress, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []Progress
	for _, p := range r.rows {
		if f.UserID != "" && p.UserID != f.UserID {
			continue
		}
		if f.ActiveOnly && !p.Active {
			continue
		}
		if len(f.ConceptIDs) > 0 && !contains(f.ConceptIDs, p.ConceptID) {
			continue
		}
		if !f.NextReviewBefore.IsZero() && !p.NextReview.Before(f.NextReviewBefore) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NextReview.Before(out[j].NextReview) })
	return out, nil
}

func (r *fakeProgressRepo) Save(_ context.Context, p Progress) (Progress, error) {
	if p.ID == "" {
		r.nextID++
		p.ID = fmt.Sprintf("p%d", r.nextID)
	}
	r.rows[p.ID] = p
	r.saves++
	return p, nil
}

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func newTestScheduler(repo ProgressRepo) *Scheduler {
	s := NewScheduler(repo, nil)
	s.Now = func() time.Time { return testNow }
	return s
}

func TestUpdateConceptProgress_CreatesOnFirstAnswer(t *testing.T) {
	repo := newFakeProgressRepo()
	s := newTestScheduler(repo)

	p, err := s.UpdateConceptProgress(context.Background(), "u1", "c1", Outcome{Correct: true, ResponseTimeMs: 8000})
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 1, p.TotalAttempts)
	assert.Equal(t, 1.0, p.SuccessRate)
	assert.InDelta(t, 0.1, p.MasteryLevel, 1e-9)
	assert.Equal(t, 1, p.ConsecutiveCorrect)
	assert.Equal(t, 1, p.IntervalDays)
	require.NotNil(t, p.LastPracticed)
	assert.True(t, p.LastPracticed.Equal(testNow))
	assert.True(t, p.NextReview.Equal(testNow.AddDate(0, 0, 1)))
	assert.Len(t, repo.rows, 1)
}

func TestUpdateConceptProgress_ThreeWrongResets(t *testing.T) {
	seed := NewProgress("u1", "c1", testNow)
	seed.ConsecutiveCorrect = 6
	seed.IntervalDays = 120
	seed.MasteryLevel = 0.9
	seed.TotalAttempts = 10
	seed.SuccessRate = 0.9
	repo := newFakeProgressRepo(seed)
	s := newTestScheduler(repo)

	var p *Progress
	var err error
	for i := 0; i < 3; i++ {
		p, err = s.UpdateConceptProgress(context.Background(), "u1", "c1", Outcome{ResponseTimeMs: 3000})
		require.NoError(t, err)
	}
	assert.Equal(t, 0, p.ConsecutiveCorrect)
	assert.Equal(t, 1, p.IntervalDays)
	assert.InDelta(t, 0.3, p.MasteryLevel, 1e-9)
	assert.Equal(t, 13, p.TotalAttempts)
	assert.InDelta(t, 9.0/13.0, p.SuccessRate, 1e-9)
}

func TestUpdateConceptProgress_MasteryClamped(t *testing.T) {
	repo := newFakeProgressRepo()
	s := newTestScheduler(repo)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		p, err := s.UpdateConceptProgress(ctx, "u1", "c1", Outcome{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.MasteryLevel, 0.0)
	}
	for i := 0; i < 15; i++ {
		p, err := s.UpdateConceptProgress(ctx, "u1", "c1", Outcome{Correct: true})
		require.NoError(t, err)
		assert.LessOrEqual(t, p.MasteryLevel, 1.0)
	}
}

func TestUpdateConceptProgress_SuccessRateExact(t *testing.T) {
	repo := newFakeProgressRepo()
	s := newTestScheduler(repo)
	pattern := []bool{true, false, true, true, false, false, true, true, true, false, true}

	var p *Progress
	correct := 0
	for _, c := range pattern {
		var err error
		p, err = s.UpdateConceptProgress(context.Background(), "u1", "c1", Outcome{Correct: c})
		require.NoError(t, err)
		if c {
			correct++
		}
	}
	assert.InDelta(t, float64(correct)/float64(len(pattern)), p.SuccessRate, 1e-12)
}

func TestUpdateConceptProgress_LoadError(t *testing.T) {
	repo := newFakeProgressRepo()
	repo.findErr = errors.New("store down")
	s := newTestScheduler(repo)

	_, err := s.UpdateConceptProgress(context.Background(), "u1", "c1", Outcome{Correct: true})
	require.Error(t, err)
	assert.Zero(t, repo.saves)
}

func TestDueAndOverdue(t *testing.T) {
	mk := func(concept string, next time.Time, active bool) Progress {
		p := NewProgress("u1", concept, next)
		p.Active = active
		return p
	}
	repo := newFakeProgressRepo(
		mk("today", time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC), true),
		mk("week-ago", testNow.AddDate(0, 0, -7), true),
		mk("yesterday", testNow.AddDate(0, 0, -1), true),
		mk("tomorrow", testNow.AddDate(0, 0, 1), true),
		mk("inactive", testNow.AddDate(0, 0, -3), false),
	)
	other := NewProgress("u2", "today", testNow)
	_, _ = repo.Save(context.Background(), other)
	s := newTestScheduler(repo)

	due, err := s.DueForReview(context.Background(), "u1", testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"week-ago", "yesterday", "today"}, conceptIDs(due))

	overdue, err := s.Overdue(context.Background(), "u1", testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"week-ago", "yesterday"}, conceptIDs(overdue))
}

func TestInitConcepts(t *testing.T) {
	existing := NewProgress("u1", "c2", testNow.AddDate(0, 0, -10))
	existing.MasteryLevel = 0.4
	repo := newFakeProgressRepo(existing)
	s := newTestScheduler(repo)

	got, err := s.InitConcepts(context.Background(), "u1", []string{"c1", "c2", "c3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2", "c3"}, conceptIDs(got))
	assert.Equal(t, 2, repo.saves)
	assert.Equal(t, 0.4, got[1].MasteryLevel)
	assert.True(t, got[0].NextReview.Equal(testNow))
}

func TestDeactivate_KeepsRecordsInactive(t *testing.T) {
	seasoned := NewProgress("u1", "c1", testNow.AddDate(0, 0, -2))
	seasoned.MasteryLevel = 0.7
	seasoned.TotalAttempts = 12
	repo := newFakeProgressRepo(
		seasoned,
		NewProgress("u1", "c2", testNow),
		NewProgress("u2", "c1", testNow),
	)
	s := newTestScheduler(repo)

	n, err := s.Deactivate(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, repo.rows, 3, "deactivation never removes records")

	for _, p := range repo.rows {
		assert.Equal(t, p.UserID == "u2", p.Active, "%s/%s", p.UserID, p.ConceptID)
	}
	due, err := s.DueForReview(context.Background(), "u1", testNow)
	require.NoError(t, err)
	assert.Empty(t, due)

	_, err = s.Deactivate(context.Background(), "")
	assert.Error(t, err)
}

func TestUpdateConceptProgress_InactiveRestartsFromDefaults(t *testing.T) {
	old := NewProgress("u1", "c1", testNow.AddDate(0, 0, -30))
	old.Active = false
	old.MasteryLevel = 0.9
	old.TotalAttempts = 20
	old.SuccessRate = 0.5
	old.ConsecutiveCorrect = 4
	old.EasinessFactor = 1.4
	old.IntervalDays = 90
	repo := newFakeProgressRepo(old)
	oldID := repo.Rows()[0].ID
	s := newTestScheduler(repo)

	p, err := s.UpdateConceptProgress(context.Background(), "u1", "c1", Outcome{Correct: true, ResponseTimeMs: 8000})
	require.NoError(t, err)

	assert.Equal(t, oldID, p.ID, "the stored row is reused")
	assert.True(t, p.Active)
	assert.Equal(t, 1, p.TotalAttempts)
	assert.Equal(t, 1.0, p.SuccessRate)
	assert.InDelta(t, 0.1, p.MasteryLevel, 1e-9)
	assert.Equal(t, 1, p.ConsecutiveCorrect)
	assert.Equal(t, DefaultEase, p.EasinessFactor)
	assert.Equal(t, 1, p.IntervalDays)
	assert.Len(t, repo.rows, 1)
}

func TestInitConcepts_ReactivatesFromDefaults(t *testing.T) {
	old := NewProgress("u1", "c1", testNow.AddDate(0, 0, -30))
	old.Active = false
	old.MasteryLevel = 0.6
	old.TotalAttempts = 7
	repo := newFakeProgressRepo(old)
	s := newTestScheduler(repo)

	got, err := s.InitConcepts(context.Background(), "u1", []string{"c1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Active)
	assert.Zero(t, got[0].MasteryLevel)
	assert.Zero(t, got[0].TotalAttempts)
	assert.True(t, got[0].NextReview.Equal(testNow))
	assert.Len(t, repo.rows, 1)
}

func conceptIDs(ps []Progress) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ConceptID
	}
	return out
}
