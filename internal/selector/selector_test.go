package selector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/catalog/catalogtest"
	"github.com/abhisek/polski/internal/observability/observabilitytest"
	"github.com/abhisek/polski/internal/srs"
	"github.com/abhisek/polski/internal/srs/srstest"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

const user = "user-1"

func concept(id, name string, level catalog.Level) catalog.Concept {
	return catalog.Concept{ID: id, Name: name, Category: catalog.CategoryGrammar, Difficulty: level, Active: true}
}

func testCatalog() *catalogtest.Concepts {
	return &catalogtest.Concepts{Items: []catalog.Concept{
		concept("nom", "Nominative", catalog.LevelA1),
		concept("acc", "Accusative", catalog.LevelA1),
		concept("gen", "Genitive", catalog.LevelA2),
		concept("ins", "Instrumental", catalog.LevelA2),
		concept("asp", "Verb aspect", catalog.LevelB1),
		{ID: "old", Name: "Archaic dual", Difficulty: catalog.LevelA1, Active: false},
	}}
}

type fixture struct {
	concepts *catalogtest.Concepts
	groups   *catalogtest.Groups
	courses  *catalogtest.Courses
	progress *srstest.Progress
	sel      *Selector
}

func newFixture(rows ...srs.Progress) *fixture {
	f := &fixture{
		concepts: testCatalog(),
		groups:   &catalogtest.Groups{},
		courses:  &catalogtest.Courses{},
		progress: srstest.NewProgress(rows...),
	}
	sched := srs.NewScheduler(f.progress, nil)
	sched.Now = func() time.Time { return testNow }
	f.sel = New(f.concepts, f.groups, f.courses, sched, DefaultConfig(), nil)
	f.sel.Now = func() time.Time { return testNow }
	return f
}

func progress(conceptID string, nextReview time.Time, mastery, success float64, attempts int) srs.Progress {
	p := srs.NewProgress(user, conceptID, testNow.AddDate(0, -1, 0))
	p.NextReview = nextReview
	p.MasteryLevel = mastery
	p.SuccessRate = success
	p.TotalAttempts = attempts
	return p
}

func TestAdaptive_NewUserBootstrap(t *testing.T) {
	f := newFixture()

	sel := f.sel.SelectPracticeConcepts(context.Background(), user, 5)

	assert.Equal(t, []string{"acc", "nom"}, sel.IDs(), "only active A1 concepts, by name")
	assert.Contains(t, sel.Rationale, "starting with 2 A1 concepts")
	assert.NotContains(t, sel.Rationale, "new", "nothing was excluded, so nothing is called new")

	rows := f.progress.Rows()
	require.Len(t, rows, 2)
	for _, p := range rows {
		assert.Equal(t, 0.0, p.MasteryLevel)
		assert.True(t, p.NextReview.Equal(testNow))
		assert.Equal(t, srs.DefaultEase, p.EasinessFactor)
	}
	assert.Len(t, sel.Priorities, 2)
}

func TestAdaptive_BootstrapFallsBackToAnyLevel(t *testing.T) {
	f := newFixture()
	f.concepts.Items = []catalog.Concept{concept("gen", "Genitive", catalog.LevelA2), concept("asp", "Aspect", catalog.LevelB1)}

	sel := f.sel.SelectPracticeConcepts(context.Background(), user, 1)

	assert.Equal(t, []string{"asp"}, sel.IDs())
	assert.Len(t, f.progress.Rows(), 1)
}

func TestAdaptive_BootstrapSkipsSeenConcepts(t *testing.T) {
	f := newFixture(progress("nom", testNow.AddDate(0, 0, 5), 0.5, 0.5, 2))

	sel := f.sel.SelectPracticeConcepts(context.Background(), user, 5)

	assert.Equal(t, []string{"acc"}, sel.IDs())
	assert.Contains(t, sel.Rationale, "introducing 1 new A1 concepts")
}

func TestAdaptive_RanksDueByPriority(t *testing.T) {
	f := newFixture(
		progress("nom", testNow.AddDate(0, 0, -1), 0.9, 0.9, 10), // due, strong
		progress("gen", testNow.AddDate(0, 0, -6), 0.2, 0.3, 10), // long overdue, weak
		progress("acc", testNow.Add(2*time.Hour), 0.5, 0.5, 4),   // due later today
		progress("ins", testNow.AddDate(0, 0, 3), 0.0, 0.0, 1),   // scheduled
	)

	sel := f.sel.SelectPracticeConcepts(context.Background(), user, 2)

	assert.Equal(t, []string{"gen", "acc"}, sel.IDs())
	assert.Greater(t, sel.Priorities["gen"], sel.Priorities["acc"])
	assert.NotContains(t, sel.Priorities, "nom")
	assert.Contains(t, sel.Rationale, "3 concepts due")
	assert.Contains(t, sel.Rationale, "2 overdue")
	assert.Len(t, f.progress.Rows(), 4, "no records created for a learner with due work")
}

func TestAdaptive_SkipsInactiveConcepts(t *testing.T) {
	f := newFixture(
		progress("old", testNow.AddDate(0, 0, -30), 0, 0, 5),
		progress("nom", testNow.AddDate(0, 0, -1), 0.5, 0.5, 5),
	)

	sel := f.sel.SelectPracticeConcepts(context.Background(), user, 1)

	assert.Equal(t, []string{"nom"}, sel.IDs())
}

func TestAdaptive_AnnotatesGroups(t *testing.T) {
	f := newFixture(
		progress("gen", testNow.AddDate(0, 0, -2), 0.2, 0.2, 5),
		progress("acc", testNow.AddDate(0, 0, -1), 0.4, 0.4, 5),
		progress("asp", testNow.AddDate(0, 0, -1), 0.6, 0.6, 5),
	)
	f.groups.Items = []catalog.ConceptGroup{
		{ID: "g1", Name: "Cases", MemberConcepts: []string{"nom", "acc", "gen"}, Active: true},
	}

	sel := f.sel.SelectPracticeConcepts(context.Background(), user, 5)

	require.Len(t, sel.Groups, 1)
	assert.Equal(t, "Cases", sel.Groups[0].Group.Name)
	assert.ElementsMatch(t, []string{"acc", "gen"}, sel.Groups[0].ConceptIDs)
	assert.Equal(t, []string{"asp"}, sel.Ungrouped)
	assert.Len(t, sel.Concepts, 3, "annotation never changes the selection")
}

func TestAdaptive_GroupFailureKeepsSelection(t *testing.T) {
	f := newFixture(progress("gen", testNow.AddDate(0, 0, -2), 0.2, 0.2, 5))
	f.groups.Err = errors.New("groups down")

	sel := f.sel.SelectPracticeConcepts(context.Background(), user, 5)

	assert.Equal(t, []string{"gen"}, sel.IDs())
	assert.Equal(t, []string{"gen"}, sel.Ungrouped)
}

func TestAdaptive_StoreFailureIsSafeEmpty(t *testing.T) {
	f := newFixture()
	f.progress.Err = errors.New("db down")
	rec := observabilitytest.Record(t)

	sel := f.sel.SelectPracticeConcepts(context.Background(), user, 5)

	assert.True(t, sel.Empty())
	assert.NotNil(t, sel.Priorities)
	assert.NotEmpty(t, sel.Rationale)

	span := observabilitytest.Ended(t, rec, "selector.adaptive")
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "db down", span.Status().Description)
}

func TestAdaptive_BootstrapFailureMarksSpan(t *testing.T) {
	f := newFixture()
	f.concepts.Err = errors.New("catalog gone")
	rec := observabilitytest.Record(t)

	sel := f.sel.SelectPracticeConcepts(context.Background(), user, 5)

	assert.True(t, sel.Empty())
	assert.Equal(t, "catalog gone", observabilitytest.Ended(t, rec, "selector.adaptive").Status().Description)
}

func TestAdaptive_SpanOKOnSuccess(t *testing.T) {
	f := newFixture()
	rec := observabilitytest.Record(t)

	f.sel.SelectPracticeConcepts(context.Background(), user, 5)

	assert.Equal(t, codes.Unset, observabilitytest.Ended(t, rec, "selector.adaptive").Status().Code)
}

func TestCourse_ByConfidence(t *testing.T) {
	f := newFixture()
	f.courses.Items = []catalog.CourseConcept{
		{CourseID: "pl-101", ConceptID: "nom", Confidence: 0.6, Active: true},
		{CourseID: "pl-101", ConceptID: "gen", Confidence: 0.95, Active: true},
		{CourseID: "pl-101", ConceptID: "acc", Confidence: 0.8, Active: true},
		{CourseID: "pl-101", ConceptID: "ins", Confidence: 0.99, Active: false},
		{CourseID: "pl-201", ConceptID: "asp", Confidence: 1, Active: true},
	}

	sel := f.sel.SelectFromCourse(context.Background(), "pl-101", 2)

	assert.Equal(t, []string{"gen", "acc"}, sel.IDs())
	assert.Equal(t, map[string]float64{"gen": 0.95, "acc": 0.8}, sel.Priorities)
}

func TestCourse_EmptyMapping(t *testing.T) {
	f := newFixture()

	sel := f.sel.SelectFromCourse(context.Background(), "pl-404", 5)

	assert.True(t, sel.Empty())
	assert.Empty(t, sel.Priorities)
	assert.Contains(t, sel.Rationale, "pl-404")
}

func TestCourse_StoreFailureMarksSpan(t *testing.T) {
	f := newFixture()
	f.courses.Err = errors.New("db down")
	rec := observabilitytest.Record(t)

	sel := f.sel.SelectFromCourse(context.Background(), "pl-101", 5)

	assert.True(t, sel.Empty())
	span := observabilitytest.Ended(t, rec, "selector.course")
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "db down", span.Status().Description)
}

func TestParseDrillMode(t *testing.T) {
	m, ok := ParseDrillMode(" Weakness ")
	assert.True(t, ok)
	assert.Equal(t, DrillWeakness, m)
	_, ok = ParseDrillMode("random")
	assert.False(t, ok)
}
