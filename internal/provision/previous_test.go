package provision

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/polski/internal/questionbank"
	"github.com/abhisek/polski/internal/srs"
)

func served(e questionbank.Entry, ago time.Duration) questionbank.Entry {
	t := testNow.Add(-ago)
	e.LastUsed = &t
	if e.TimesUsed == 0 {
		e.TimesUsed = 1
	}
	return e
}

func TestPrevious_RequestedConceptsFirst(t *testing.T) {
	f := newFixture(
		served(entry("gen-old", questionbank.SourceManual, 1, 1, "gen"), 48*time.Hour),
		served(entry("gen-new", questionbank.SourceManual, 1, 1, "gen"), time.Hour),
		served(entry("food", questionbank.SourceManual, 1, 1, "food"), time.Minute),
		entry("unused", questionbank.SourceManual, 0, 0, "gen"),
	)

	out := f.p.Provision(context.Background(), Request{UserID: "u", ConceptIDs: []string{"gen"}, Mode: ModePrevious, MaxQuestions: 2})

	assert.Equal(t, []string{"gen-new", "gen-old"}, ids(out))
	assert.Empty(t, f.gen.requests, "previous mode never generates")
}

func TestPrevious_FallsThroughTiers(t *testing.T) {
	f := newFixture(
		served(entry("due", questionbank.SourceManual, 1, 1, "food"), 72*time.Hour),
		served(entry("practiced", questionbank.SourceManual, 1, 1, "asp"), 24*time.Hour),
		entry("fresh", questionbank.SourceManual, 0, 0, "gen"),
	)
	due := srs.NewProgress("u", "food", testNow.AddDate(0, 0, -3))
	due.TotalAttempts = 2
	later := srs.NewProgress("u", "asp", testNow)
	later.NextReview = testNow.AddDate(0, 0, 5)
	later.TotalAttempts = 1
	for _, p := range []srs.Progress{due, later} {
		_, _ = f.progress.Save(context.Background(), p)
	}

	out := f.p.Provision(context.Background(), Request{UserID: "u", Mode: ModePrevious, MaxQuestions: 5})

	assert.Equal(t, []string{"due", "practiced", "fresh"}, ids(out))
}

func TestPrevious_ProgressFailureStillServes(t *testing.T) {
	f := newFixture(served(entry("any", questionbank.SourceManual, 1, 1, "gen"), time.Hour))
	f.progress.Err = assert.AnError

	out := f.p.Provision(context.Background(), Request{UserID: "u", ConceptIDs: []string{"asp"}, Mode: ModePrevious, MaxQuestions: 3})

	assert.Equal(t, []string{"any"}, ids(out))
}
