package practice

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
	"github.com/abhisek/polski/internal/provision"
	"github.com/abhisek/polski/internal/questionbank"
	"github.com/abhisek/polski/internal/questionbank/questionbanktest"
	"github.com/abhisek/polski/internal/selector"
	"github.com/abhisek/polski/internal/srs"
	"github.com/abhisek/polski/internal/srs/srstest"
	"github.com/abhisek/polski/internal/store"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

const user = "user-1"

type answerLog struct {
	events []store.AnswerEventData
	err    error
}

func (l *answerLog) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	l.events = append(l.events, data)
	return l.err
}

func (l *answerLog) AnswerTally(_ context.Context, userID string) (store.AnswerTally, error) {
	var t store.AnswerTally
	for _, e := range l.events {
		if e.UserID != userID {
			continue
		}
		t.Total++
		if e.Correct {
			t.Correct++
		}
	}
	return t, l.err
}

// flakyProgress fails saves for one concept.
type flakyProgress struct {
	*srstest.Progress
	failFor string
}

func (r *flakyProgress) Save(ctx context.Context, p srs.Progress) (srs.Progress, error) {
	if p.ConceptID == r.failFor {
		return srs.Progress{}, errors.New("disk full")
	}
	return r.Progress.Save(ctx, p)
}

type fixture struct {
	concepts  *catalogtest.Concepts
	progress  *srstest.Progress
	questions *questionbanktest.Repo
	events    *answerLog
	engine    *Engine
}

func newFixture(t *testing.T, progressRepo srs.ProgressRepo) *fixture {
	t.Helper()
	f := &fixture{
		concepts: &catalogtest.Concepts{Items: []catalog.Concept{
			{ID: "nom", Name: "Nominative", Category: catalog.CategoryGrammar, Difficulty: catalog.LevelA1, Active: true},
			{ID: "acc", Name: "Accusative", Category: catalog.CategoryGrammar, Difficulty: catalog.LevelA1, Active: true},
			{ID: "kot", Name: "kot", Category: catalog.CategoryVocabulary, Difficulty: catalog.LevelA1, Active: true},
		}},
		progress: srstest.NewProgress(),
		questions: questionbanktest.New(
			questionbank.Entry{ID: "q-1", Question: "To jest ___ kot.", CorrectAnswer: "mój", Type: questionbank.TypeBasicCloze,
				TargetConcepts: []string{"nom", "kot"}, Difficulty: catalog.LevelA1, Active: true, Source: questionbank.SourceManual,
				CreatedAt: testNow.AddDate(0, 0, -3)},
			questionbank.Entry{ID: "q-2", Question: "Widzę ___.", CorrectAnswer: "kota", Type: questionbank.TypeBasicCloze,
				TargetConcepts: []string{"acc", "kot"}, Difficulty: catalog.LevelA1, Active: true, Source: questionbank.SourceGenerated,
				CreatedAt: testNow.AddDate(0, 0, -2)},
		),
		events: &answerLog{},
	}
	if progressRepo == nil {
		progressRepo = f.progress
	}
	f.engine = New(Repos{
		Concepts:  f.concepts,
		Groups:    &catalogtest.Groups{},
		Courses:   &catalogtest.Courses{},
		Progress:  progressRepo,
		Questions: f.questions,
		Events:    f.events,
	}, nil, DefaultConfig(), nil)
	f.engine.SetClock(func() time.Time { return testNow })
	return f
}

func TestRecordAnswer_UpdatesQuestionAndEveryConcept(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	res, err := f.engine.RecordAnswer(ctx, Answer{
		UserID: user, QuestionID: "q-1", Correct: true, ResponseTimeMs: 3000, Mode: provision.ModeNormal,
	})
	require.NoError(t, err)
	assert.True(t, res.OK())
	require.Len(t, res.Progress, 2)
	assert.Equal(t, 1, res.Progress["nom"].TotalAttempts)
	assert.Equal(t, 1, res.Progress["kot"].TotalAttempts)
	assert.InDelta(t, 0.1, res.Progress["kot"].MasteryLevel, 1e-9)

	q, ok := f.questions.Get("q-1")
	require.True(t, ok)
	assert.Equal(t, 1, q.TimesUsed)
	assert.Equal(t, 1.0, q.SuccessRate)

	require.Len(t, f.events.events, 1)
	ev := f.events.events[0]
	assert.Equal(t, []string{"nom", "kot"}, ev.ConceptIDs)
	assert.Equal(t, "NORMAL", ev.Mode)
	assert.Equal(t, int64(3000), ev.ResponseTimeMs)
}

func TestRecordAnswer_ConceptFailureIsolated(t *testing.T) {
	repo := &flakyProgress{Progress: srstest.NewProgress(), failFor: "nom"}
	f := newFixture(t, repo)

	res, err := f.engine.RecordAnswer(context.Background(), Answer{UserID: user, QuestionID: "q-1", Correct: false, ResponseTimeMs: 20000})
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Contains(t, res.ConceptErrs, "nom")
	assert.Contains(t, res.Progress, "kot", "other concepts still update")
	assert.NoError(t, res.QuestionErr)

	q, _ := f.questions.Get("q-1")
	assert.Equal(t, 1, q.TimesUsed, "question update is not rolled back")
	assert.Equal(t, 0.0, q.SuccessRate)
}

func TestRecordAnswer_UnknownQuestion(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.engine.RecordAnswer(context.Background(), Answer{UserID: user, QuestionID: "q-missing", Correct: true})
	assert.ErrorIs(t, err, ErrUnknownQuestion)
	assert.Empty(t, f.progress.Rows())
	assert.Empty(t, f.events.events)
}

func TestRecordAnswer_EventFailureIgnored(t *testing.T) {
	f := newFixture(t, nil)
	f.events.err = errors.New("locked")

	res, err := f.engine.RecordAnswer(context.Background(), Answer{UserID: user, QuestionID: "q-2", Correct: true, ResponseTimeMs: 4000})
	require.NoError(t, err)
	assert.True(t, res.OK())
}

func TestStats(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	empty := f.engine.Stats(ctx, user)
	assert.Equal(t, Stats{ActiveConcepts: 3, QuestionBankSize: 2}, empty)

	_, err := f.engine.RecordAnswer(ctx, Answer{UserID: user, QuestionID: "q-1", Correct: true, ResponseTimeMs: 3000})
	require.NoError(t, err)
	_, err = f.engine.RecordAnswer(ctx, Answer{UserID: user, QuestionID: "q-2", Correct: false, ResponseTimeMs: 3000})
	require.NoError(t, err)

	// nom: mastered and overdue; acc: untouched since wrong answer, due tomorrow.
	p, err := f.progress.FindOne(ctx, user, "nom")
	require.NoError(t, err)
	p.MasteryLevel = 0.9
	p.NextReview = testNow.AddDate(0, 0, -2)
	_, err = f.progress.Save(ctx, *p)
	require.NoError(t, err)

	st := f.engine.Stats(ctx, user)
	assert.Equal(t, 3, st.ActiveConcepts)
	assert.Equal(t, 3, st.TrackedConcepts)
	assert.Equal(t, 3, st.PracticedConcepts)
	assert.Equal(t, 1, st.MasteredConcepts)
	assert.Equal(t, 1, st.Overdue)
	assert.Equal(t, 2, st.QuestionBankSize)
	assert.Equal(t, 2, st.Answers)
	assert.InDelta(t, 0.5, st.Accuracy, 1e-9)
	assert.Greater(t, st.AverageMastery, 0.0)
}

func TestStats_StoreFailureYieldsZero(t *testing.T) {
	f := newFixture(t, nil)
	f.progress.Err = errors.New("db gone")
	rec := observabilitytest.Record(t)

	assert.Equal(t, Stats{}, f.engine.Stats(context.Background(), user))

	span := observabilitytest.Ended(t, rec, "practice.stats")
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "db gone", span.Status().Description)
}

func TestStats_SpanOKOnSuccess(t *testing.T) {
	f := newFixture(t, nil)
	rec := observabilitytest.Record(t)

	f.engine.Stats(context.Background(), user)

	assert.Equal(t, codes.Unset, observabilitytest.Ended(t, rec, "practice.stats").Status().Code)
}

func TestStartSession_NewLearner(t *testing.T) {
	f := newFixture(t, nil)

	s := f.engine.StartSession(context.Background(), SelectRequest{UserID: user, Max: 5}, 10)
	assert.Equal(t, provision.ModeNormal, s.Mode)
	assert.ElementsMatch(t, []string{"acc", "kot", "nom"}, s.Selection.IDs())
	assert.ElementsMatch(t, []string{"q-1", "q-2"}, questionIDs(s.Questions))
}

func TestStartSession_Drill(t *testing.T) {
	f := newFixture(t, nil)

	s := f.engine.StartSession(context.Background(), SelectRequest{UserID: user, Drill: selector.DrillWeakness, Max: 1}, 10)
	assert.Equal(t, provision.ModeDrill, s.Mode)
	require.Len(t, s.Selection.Concepts, 1)
	for _, q := range s.Questions {
		assert.True(t, q.Targets(s.Selection.Concepts[0].ID))
	}
}

func TestSelectConcepts_Course(t *testing.T) {
	f := newFixture(t, nil)
	courses := &catalogtest.Courses{Items: []catalog.CourseConcept{
		{CourseID: "pl-101", ConceptID: "acc", Confidence: 0.9, Active: true},
		{CourseID: "pl-101", ConceptID: "kot", Confidence: 0.4, Active: true},
	}}
	f.engine = New(Repos{
		Concepts:  f.concepts,
		Courses:   courses,
		Progress:  f.progress,
		Questions: f.questions,
	}, nil, DefaultConfig(), nil)

	sel := f.engine.SelectConcepts(context.Background(), SelectRequest{CourseID: "pl-101", Max: 5})
	assert.Equal(t, []string{"acc", "kot"}, sel.IDs())
	assert.InDelta(t, 0.9, sel.Priorities["acc"], 1e-9)
}

func TestProvisionQuestions_Previous(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.engine.RecordAnswer(ctx, Answer{UserID: user, QuestionID: "q-1", Correct: true, ResponseTimeMs: 3000})
	require.NoError(t, err)

	got := f.engine.ProvisionQuestions(ctx, provision.Request{UserID: user, ConceptIDs: []string{"nom"}, Mode: provision.ModePrevious, MaxQuestions: 1})
	assert.Equal(t, []string{"q-1"}, questionIDs(got), "served questions on the concept come first")
}

func questionIDs(entries []questionbank.Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
