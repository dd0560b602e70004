package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/polski/internal/srs"
)

func TestProgressRepo_SaveInsertsThenUpdates(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	p, err := repo.Save(ctx, srs.NewProgress("u1", "c-kot", now))
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)

	got, err := repo.FindOne(ctx, "u1", "c-kot")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.LastPracticed)
	assert.True(t, got.NextReview.Equal(now))

	p.MasteryLevel = 0.1
	p.TotalAttempts = 1
	p.SuccessRate = 1
	p.ConsecutiveCorrect = 1
	p.LastPracticed = &now
	p.NextReview = now.AddDate(0, 0, 1)
	_, err = repo.Save(ctx, p)
	require.NoError(t, err)

	got, err = repo.FindOne(ctx, "u1", "c-kot")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.ID, got.ID)
	assert.InDelta(t, 0.1, got.MasteryLevel, 1e-9)
	assert.Equal(t, 1, got.TotalAttempts)
	require.NotNil(t, got.LastPracticed)
	assert.True(t, got.LastPracticed.Equal(now))

	missing, err := repo.FindOne(ctx, "u2", "c-kot")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProgressRepo_Find(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	save := func(user, concept string, next time.Time, active bool) {
		p := srs.NewProgress(user, concept, next)
		p.Active = active
		_, err := repo.Save(ctx, p)
		require.NoError(t, err)
	}
	save("u1", "c-late", now.AddDate(0, 0, 5), true)
	save("u1", "c-early", now.AddDate(0, 0, -2), true)
	save("u1", "c-mid", now, true)
	save("u1", "c-off", now.AddDate(0, 0, -9), false)
	save("u2", "c-early", now.AddDate(0, 0, -3), true)

	all, err := repo.Find(ctx, srs.ProgressFilter{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c-off", "c-early", "c-mid", "c-late"}, conceptIDs(all))

	due, err := repo.Find(ctx, srs.ProgressFilter{UserID: "u1", ActiveOnly: true, NextReviewBefore: now.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Equal(t, []string{"c-early", "c-mid"}, conceptIDs(due))

	some, err := repo.Find(ctx, srs.ProgressFilter{UserID: "u1", ConceptIDs: []string{"c-late", "c-mid"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"c-mid", "c-late"}, conceptIDs(some))
}

func TestProgressRepo_ResetKeepsRowsInactive(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	sched := srs.NewScheduler(repo, nil)
	sched.Now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		_, err := sched.UpdateConceptProgress(ctx, "u1", "c-kot", srs.Outcome{Correct: true, ResponseTimeMs: 8000})
		require.NoError(t, err)
	}
	_, err := sched.UpdateConceptProgress(ctx, "u2", "c-kot", srs.Outcome{Correct: true, ResponseTimeMs: 8000})
	require.NoError(t, err)
	before, err := repo.FindOne(ctx, "u1", "c-kot")
	require.NoError(t, err)
	require.NotNil(t, before)

	n, err := sched.Deactivate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := repo.Find(ctx, srs.ProgressFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2, "reset keeps every row")
	kept, err := repo.FindOne(ctx, "u1", "c-kot")
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.False(t, kept.Active)
	assert.Equal(t, 3, kept.TotalAttempts)
	other, err := repo.FindOne(ctx, "u2", "c-kot")
	require.NoError(t, err)
	require.NotNil(t, other)
	assert.True(t, other.Active)

	p, err := sched.UpdateConceptProgress(ctx, "u1", "c-kot", srs.Outcome{Correct: false, ResponseTimeMs: 8000})
	require.NoError(t, err)
	assert.Equal(t, before.ID, p.ID)
	assert.True(t, p.Active)
	assert.Equal(t, 1, p.TotalAttempts)
	assert.Zero(t, p.SuccessRate)
	assert.Zero(t, p.MasteryLevel)
	assert.Equal(t, 1, p.IntervalDays)
}

func TestProgressRepo_WorksWithScheduler(t *testing.T) {
	s := openTestStore(t)
	sched := srs.NewScheduler(s.ProgressRepo(), nil)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	sched.Now = func() time.Time { return now }
	ctx := context.Background()

	p, err := sched.UpdateConceptProgress(ctx, "u1", "c-kot", srs.Outcome{Correct: true, ResponseTimeMs: 3000})
	require.NoError(t, err)
	require.NotNil(t, p)

	stored, err := s.ProgressRepo().FindOne(ctx, "u1", "c-kot")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 1, stored.TotalAttempts)
	assert.Equal(t, p.IntervalDays, stored.IntervalDays)
}

func conceptIDs(rows []srs.Progress) []string {
	ids := make([]string, len(rows))
	for i, p := range rows {
		ids[i] = p.ConceptID
	}
	return ids
}
