package selector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/observability/observabilitytest"
)

func TestDrillWeakness_UnpracticedFirst(t *testing.T) {
	f := newFixture(
		progress("nom", testNow.AddDate(0, 0, 4), 0.9, 0.9, 10),
		progress("acc", testNow.AddDate(0, 0, 4), 0.1, 0.2, 10),
		progress("gen", testNow.AddDate(0, 0, 4), 0.5, 0.5, 4),
	)

	sel := f.sel.SelectDrill(context.Background(), DrillRequest{Mode: DrillWeakness, UserID: user})

	assert.Equal(t, []string{"asp", "ins", "acc", "gen", "nom"}, sel.IDs())
	for _, id := range sel.IDs() {
		assert.Equal(t, 1.0, sel.Priorities[id])
	}
	assert.Contains(t, sel.Rationale, "2 not yet practiced")
}

func TestDrillWeakness_Capped(t *testing.T) {
	f := newFixture()

	sel := f.sel.SelectDrill(context.Background(), DrillRequest{Mode: DrillWeakness, UserID: user, Max: 2})

	assert.Len(t, sel.Concepts, 2)
}

func TestDrillWeakness_ProgressFailure(t *testing.T) {
	f := newFixture()
	f.progress.Err = errors.New("db down")
	rec := observabilitytest.Record(t)

	sel := f.sel.SelectDrill(context.Background(), DrillRequest{Mode: DrillWeakness, UserID: user})

	assert.True(t, sel.Empty())
	assert.NotEmpty(t, sel.Rationale)
	span := observabilitytest.Ended(t, rec, "selector.drill")
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "db down", span.Status().Description)
}

func TestDrillWeakness_RequiresUser(t *testing.T) {
	f := newFixture(progress("nom", testNow, 0.9, 0.9, 10))

	sel := f.sel.SelectDrill(context.Background(), DrillRequest{Mode: DrillWeakness})

	assert.True(t, sel.Empty())
	assert.Equal(t, "No learner was given for the weakness drill.", sel.Rationale)
	assert.Empty(t, sel.Priorities)
}

func TestDrillCourse_UniformPriority(t *testing.T) {
	f := newFixture()
	f.courses.Items = []catalog.CourseConcept{
		{CourseID: "pl-101", ConceptID: "nom", Confidence: 0.2, Active: true},
		{CourseID: "pl-101", ConceptID: "gen", Confidence: 0.9, Active: true},
	}

	sel := f.sel.SelectDrill(context.Background(), DrillRequest{Mode: DrillCourse, CourseID: "pl-101"})

	assert.Equal(t, []string{"gen", "nom"}, sel.IDs())
	assert.Equal(t, map[string]float64{"gen": 1, "nom": 1}, sel.Priorities)
}

func TestDrillGroup(t *testing.T) {
	f := newFixture()
	f.groups.Items = []catalog.ConceptGroup{
		{ID: "cases", Name: "Cases", MemberConcepts: []string{"gen", "nom", "old"}, Active: true},
		{ID: "verbs", Name: "Verbs", MemberConcepts: []string{"asp", "gen"}, Active: true},
		{ID: "hidden", Name: "Hidden", MemberConcepts: []string{"ins"}, Active: false},
	}

	sel := f.sel.SelectDrill(context.Background(), DrillRequest{Mode: DrillGroup, GroupIDs: []string{"cases", "verbs"}})
	assert.Equal(t, []string{"gen", "nom"}, sel.IDs(), "group mode uses the first group, inactive members dropped")

	sel = f.sel.SelectDrill(context.Background(), DrillRequest{Mode: DrillGroups, GroupIDs: []string{"verbs", "cases", "hidden"}})
	assert.Equal(t, []string{"asp", "gen", "nom"}, sel.IDs(), "union in group order without duplicates")
	require.NotEmpty(t, sel.Groups)

	sel = f.sel.SelectDrill(context.Background(), DrillRequest{Mode: DrillGroups, GroupIDs: []string{"verbs", "cases"}, Max: 1})
	assert.Equal(t, []string{"asp"}, sel.IDs())
}

func TestDrill_EmptyResults(t *testing.T) {
	f := newFixture()
	f.groups.Items = []catalog.ConceptGroup{{ID: "empty", Name: "Empty", Active: true}}

	for _, req := range []DrillRequest{
		{Mode: DrillGroup},
		{Mode: DrillGroup, GroupIDs: []string{"missing"}},
		{Mode: DrillGroup, GroupIDs: []string{"empty"}},
		{Mode: DrillCourse},
		{Mode: DrillCourse, CourseID: "none"},
		{Mode: "speed"},
	} {
		sel := f.sel.SelectDrill(context.Background(), req)
		assert.True(t, sel.Empty(), "%+v", req)
		assert.NotNil(t, sel.Priorities, "%+v", req)
		assert.NotEmpty(t, sel.Rationale, "%+v", req)
	}
}

func TestDrill_IgnoresReviewUrgency(t *testing.T) {
	f := newFixture(progress("nom", testNow.AddDate(0, 0, -30), 0, 0, 10))
	f.groups.Items = []catalog.ConceptGroup{{ID: "g", Name: "G", MemberConcepts: []string{"acc", "nom"}, Active: true}}

	sel := f.sel.SelectDrill(context.Background(), DrillRequest{Mode: DrillGroup, GroupIDs: []string{"g"}})

	assert.Equal(t, []string{"acc", "nom"}, sel.IDs())
	assert.Equal(t, sel.Priorities["acc"], sel.Priorities["nom"])
}
