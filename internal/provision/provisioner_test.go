package provision

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/catalog/catalogtest"
	"github.com/abhisek/polski/internal/observability/observabilitytest"
	"github.com/abhisek/polski/internal/questionbank"
	"github.com/abhisek/polski/internal/questionbank/questionbanktest"
	"github.com/abhisek/polski/internal/questiongen"
	"github.com/abhisek/polski/internal/srs"
	"github.com/abhisek/polski/internal/srs/srstest"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

// fakeGenerator returns quantity questions per call unless the type is
// listed in fail. It records every request.
type fakeGenerator struct {
	mu       sync.Mutex
	requests []questiongen.Request
	fail     map[questionbank.QuestionType]bool
	// noOptions makes choice-based questions come back without options.
	noOptions bool
}

func (g *fakeGenerator) Generate(_ context.Context, req questiongen.Request) ([]questiongen.Generated, error) {
	g.mu.Lock()
	g.requests = append(g.requests, req)
	g.mu.Unlock()
	if g.fail[req.Type] {
		return nil, errors.New("model unavailable")
	}
	out := make([]questiongen.Generated, req.Quantity)
	for i := range out {
		out[i] = questiongen.Generated{
			Question:      fmt.Sprintf("%s #%d", req.Type, i+1),
			CorrectAnswer: "kota",
			Type:          req.Type,
			Difficulty:    req.Difficulty,
		}
		if req.Type.ChoiceBased() && !g.noOptions {
			out[i].Options = []string{"kota", "kot", "kotem"}
		}
	}
	return out, nil
}

func (g *fakeGenerator) totalRequested() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, r := range g.requests {
		n += r.Quantity
	}
	return n
}

func entry(id string, src questionbank.Source, used int, success float64, targets ...string) questionbank.Entry {
	return questionbank.Entry{
		ID:             id,
		Question:       "question " + id,
		CorrectAnswer:  "a",
		Type:           questionbank.TypeBasicCloze,
		TargetConcepts: targets,
		Difficulty:     catalog.LevelA1,
		TimesUsed:      used,
		SuccessRate:    success,
		CreatedAt:      testNow.Add(-time.Duration(len(id)) * time.Hour),
		Active:         true,
		Source:         src,
	}
}

type fixture struct {
	questions *questionbanktest.Repo
	concepts  *catalogtest.Concepts
	progress  *srstest.Progress
	gen       *fakeGenerator
	p         *Provisioner
}

func newFixture(entries ...questionbank.Entry) *fixture {
	f := &fixture{
		questions: questionbanktest.New(entries...),
		concepts: &catalogtest.Concepts{Items: []catalog.Concept{
			{ID: "gen", Name: "Genitive", Category: catalog.CategoryGrammar, Difficulty: catalog.LevelA2, Active: true},
			{ID: "food", Name: "Food", Category: catalog.CategoryVocabulary, Difficulty: catalog.LevelA1, Active: true},
			{ID: "asp", Name: "Aspect", Category: catalog.CategoryGrammar, Difficulty: catalog.LevelB2, Active: true},
		}},
		progress: srstest.NewProgress(),
		gen:      &fakeGenerator{},
	}
	sched := srs.NewScheduler(f.progress, nil)
	f.p = New(f.questions, f.concepts, sched, f.gen, DefaultConfig(), nil)
	f.p.Now = func() time.Time { return testNow }
	return f
}

func ids(entries []questionbank.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestNormal_CuratedFirstThenMomentaryThenGenerated(t *testing.T) {
	var entries []questionbank.Entry
	entries = append(entries,
		entry("m1", questionbank.SourceManual, 3, 0.5, "gen"),
		entry("m2", questionbank.SourceManual, 1, 0.9, "gen"),
		entry("g1", questionbank.SourceGenerated, 0, 0, "gen"),
		entry("g2", questionbank.SourceGenerated, 0, 0, "food"),
	)
	for i := 0; i < 20; i++ {
		entries = append(entries, entry(fmt.Sprintf("mo%02d", i), questionbank.SourceMomentary, i%5, float64(i%3)/3, "gen"))
	}
	f := newFixture(entries...)

	out := f.p.Provision(context.Background(), Request{ConceptIDs: []string{"gen"}, Mode: ModeNormal, MaxQuestions: 10})

	require.Len(t, out, 10)
	assert.Equal(t, []string{"m2", "m1", "g1"}, ids(out[:3]), "curated, by source then least used")
	for _, e := range out[3:] {
		assert.Equal(t, questionbank.SourceMomentary, e.Source)
	}
	// Momentary padding is the least used, best success first.
	assert.Equal(t, 0, out[3].TimesUsed)
	assert.Empty(t, f.gen.requests, "no generation when the bank covers the request")
}

func TestNormal_ScenarioC(t *testing.T) {
	var entries []questionbank.Entry
	for i := 0; i < 4; i++ {
		entries = append(entries, entry(fmt.Sprintf("d%d", i), questionbank.SourceManual, i, 0.5, "gen"))
	}
	for i := 0; i < 20; i++ {
		entries = append(entries, entry(fmt.Sprintf("mo%02d", i), questionbank.SourceMomentary, 20-i, 0.5, "gen"))
	}
	f := newFixture(entries...)

	out := f.p.Provision(context.Background(), Request{ConceptIDs: []string{"gen"}, Mode: ModeNormal, MaxQuestions: 10})

	require.Len(t, out, 10)
	assert.Equal(t, []string{"d0", "d1", "d2", "d3"}, ids(out[:4]))
	assert.Equal(t, []string{"mo19", "mo18", "mo17", "mo16", "mo15", "mo14"}, ids(out[4:]))
}

func TestNormal_GeneratesShortfall(t *testing.T) {
	f := newFixture(entry("m1", questionbank.SourceManual, 0, 0, "gen"))

	out := f.p.Provision(context.Background(), Request{ConceptIDs: []string{"gen", "food"}, Mode: ModeNormal, MaxQuestions: 7})

	require.Len(t, out, 7)
	assert.Equal(t, "m1", out[0].ID)
	assert.Equal(t, 6, f.gen.totalRequested())

	byType := map[questionbank.QuestionType]int{}
	for _, r := range f.gen.requests {
		byType[r.Type] = r.Quantity
		assert.Equal(t, catalog.LevelA2, r.Difficulty, "hardest concept level")
		assert.Equal(t, []string{"question m1"}, r.PriorQuestions)
	}
	assert.Equal(t, map[questionbank.QuestionType]int{
		questionbank.TypeBasicCloze:  2,
		questionbank.TypeMultiCloze:  2,
		questionbank.TypeVocabChoice: 1,
		questionbank.TypeMultiSelect: 1,
	}, byType)

	require.Len(t, f.questions.Created, 6)
	for _, e := range f.questions.Created {
		assert.Equal(t, questionbank.SourceMomentary, e.Source)
		assert.Equal(t, 0, e.TimesUsed)
		assert.Equal(t, 0.0, e.SuccessRate)
		assert.True(t, e.Active)
		assert.ElementsMatch(t, []string{"gen", "food"}, e.TargetConcepts)
	}
}

func TestNormal_GenerationFailureIsIsolated(t *testing.T) {
	f := newFixture(entry("m1", questionbank.SourceManual, 0, 0, "gen"))
	f.gen.fail = map[questionbank.QuestionType]bool{questionbank.TypeBasicCloze: true}
	rec := observabilitytest.Record(t)

	out := f.p.Provision(context.Background(), Request{ConceptIDs: []string{"gen"}, Mode: ModeNormal, MaxQuestions: 5})

	// 4 missing: cloze (1) fails, the other three types deliver 1 each.
	assert.Len(t, out, 4)
	assert.Equal(t, "m1", out[0].ID)
	assert.Equal(t, codes.Error, observabilitytest.Ended(t, rec, "provision.questions").Status().Code,
		"a failed generation marks the span even though questions were served")
}

func TestNormal_DropsChoiceQuestionsWithoutOptions(t *testing.T) {
	f := newFixture()
	f.gen.noOptions = true

	out := f.p.Provision(context.Background(), Request{ConceptIDs: []string{"gen"}, Mode: ModeNormal, MaxQuestions: 4})

	require.Len(t, out, 2)
	for _, e := range out {
		assert.False(t, e.Type.ChoiceBased())
	}
	assert.Len(t, f.questions.Created, 2)
}

func TestNormal_NoConceptsFallsBackToNewest(t *testing.T) {
	old := entry("old", questionbank.SourceManual, 0, 0, "gen")
	old.CreatedAt = testNow.AddDate(0, -1, 0)
	fresh := entry("fresh", questionbank.SourceMomentary, 0, 0, "food")
	fresh.CreatedAt = testNow
	inactive := entry("inactive", questionbank.SourceManual, 0, 0, "gen")
	inactive.Active = false
	f := newFixture(old, fresh, inactive)

	out := f.p.Provision(context.Background(), Request{Mode: ModeNormal, MaxQuestions: 5})

	assert.Equal(t, []string{"fresh", "old"}, ids(out))
	assert.Empty(t, f.gen.requests)
}

func TestNormal_StoreFailureReturnsEmpty(t *testing.T) {
	f := newFixture()
	f.questions.FindErr = errors.New("db down")
	rec := observabilitytest.Record(t)

	out := f.p.Provision(context.Background(), Request{ConceptIDs: []string{"gen"}, Mode: ModeNormal})

	assert.NotNil(t, out)
	assert.Empty(t, out)
	assert.Empty(t, f.gen.requests)

	span := observabilitytest.Ended(t, rec, "provision.questions")
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "db down", span.Status().Description)
}

func TestNormal_SaveFailureSkipsQuestion(t *testing.T) {
	f := newFixture()
	f.questions.CreateErr = errors.New("disk full")

	out := f.p.Provision(context.Background(), Request{ConceptIDs: []string{"gen"}, Mode: ModeNormal, MaxQuestions: 3})

	assert.Empty(t, out)
}

func TestNormal_NoGenerator(t *testing.T) {
	f := newFixture(entry("m1", questionbank.SourceManual, 0, 0, "gen"))
	f.p.generator = nil
	rec := observabilitytest.Record(t)

	out := f.p.Provision(context.Background(), Request{ConceptIDs: []string{"gen"}, Mode: ModeNormal, MaxQuestions: 3})

	assert.Equal(t, []string{"m1"}, ids(out))
	assert.Equal(t, codes.Unset, observabilitytest.Ended(t, rec, "provision.questions").Status().Code)
}

func TestDrill_EmptyConceptsReturnsNothing(t *testing.T) {
	f := newFixture(entry("m1", questionbank.SourceManual, 0, 0, "gen"))

	out := f.p.Provision(context.Background(), Request{Mode: ModeDrill, MaxQuestions: 5})

	assert.NotNil(t, out)
	assert.Empty(t, out)
	assert.Empty(t, f.gen.requests)
}

func TestDrill_NeverServesUnrelatedQuestions(t *testing.T) {
	f := newFixture(
		entry("on", questionbank.SourceManual, 0, 0, "gen", "food"),
		entry("off", questionbank.SourceManual, 0, 0, "asp"),
		entry("none", questionbank.SourceManual, 0, 0),
	)
	f.p.generator = nil

	out := f.p.Provision(context.Background(), Request{ConceptIDs: []string{"gen"}, Mode: ModeDrill, MaxQuestions: 5})

	assert.Equal(t, []string{"on"}, ids(out))
}

func TestDrill_SingleConceptPrefersFocus(t *testing.T) {
	f := newFixture(
		entry("wide", questionbank.SourceManual, 0, 0, "gen", "food", "asp"),
		entry("pair", questionbank.SourceManual, 0, 0, "gen", "food"),
		entry("solo", questionbank.SourceMomentary, 0, 0, "gen"),
	)

	out := f.p.Provision(context.Background(), Request{ConceptIDs: []string{"gen"}, Mode: ModeDrill, MaxQuestions: 3})

	assert.Equal(t, []string{"solo", "pair", "wide"}, ids(out))
}

func TestDrill_MultiConceptPrefersBreadth(t *testing.T) {
	f := newFixture(
		entry("one", questionbank.SourceManual, 0, 0, "gen"),
		entry("both", questionbank.SourceManual, 0, 0, "gen", "food"),
		entry("both-plus", questionbank.SourceManual, 0, 0, "gen", "food", "asp"),
		entry("other", questionbank.SourceManual, 0, 0, "food"),
	)

	out := f.p.Provision(context.Background(), Request{ConceptIDs: []string{"gen", "food"}, Mode: ModeDrill, MaxQuestions: 3})

	assert.Equal(t, []string{"both-plus", "both", "one"}, ids(out))
}

func TestDrill_GeneratesForExactConceptSet(t *testing.T) {
	f := newFixture(entry("one", questionbank.SourceManual, 0, 0, "gen", "asp"))

	out := f.p.Provision(context.Background(), Request{ConceptIDs: []string{"gen", "asp", "gen"}, Mode: ModeDrill, MaxQuestions: 5})

	require.Len(t, out, 5)
	for _, e := range out[1:] {
		assert.Equal(t, []string{"gen", "asp"}, e.TargetConcepts)
	}
	for _, r := range f.gen.requests {
		assert.Equal(t, catalog.LevelB2, r.Difficulty)
		got := catalog.IDs(r.Concepts)
		slices.Sort(got)
		assert.Equal(t, []string{"asp", "gen"}, got)
	}
}

func TestInferDifficulty(t *testing.T) {
	assert.Equal(t, catalog.LevelC1, InferDifficulty([]catalog.Concept{
		{Difficulty: catalog.LevelA2}, {Difficulty: catalog.LevelC1}, {Difficulty: catalog.LevelB1},
	}))
	assert.Equal(t, catalog.LevelA1, InferDifficulty(nil))
}

func TestSpread(t *testing.T) {
	assert.Equal(t, []int{2, 2, 1, 1}, spread(6, 4))
	assert.Equal(t, []int{1, 0, 0, 0}, spread(1, 4))
	assert.Equal(t, []int{3, 3}, spread(6, 2))
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode("drill")
	assert.True(t, ok)
	assert.Equal(t, ModeDrill, m)
	_, ok = ParseMode("exam")
	assert.False(t, ok)
}
