package practice

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/polski/internal/observability"
	"github.com/abhisek/polski/internal/provision"
	"github.com/abhisek/polski/internal/srs"
	"github.com/abhisek/polski/internal/store"
)

// ErrUnknownQuestion is returned when an answer names a question that is
// not in the bank.
var ErrUnknownQuestion = errors.New("unknown question")

// Answer is a learner's response to one served question.
type Answer struct {
	UserID         string
	QuestionID     string
	Correct        bool
	ResponseTimeMs int

	// DifficultyRating is the optional 1-5 self-rating; zero means none.
	DifficultyRating int

	// Mode is the provisioning mode the question was served in.
	Mode provision.Mode
}

// AnswerResult reports what RecordAnswer changed. Failures are per part:
// a failed concept update does not undo the question update or the other
// concept updates.
type AnswerResult struct {
	QuestionID string

	// Progress holds the updated records, keyed by concept id.
	Progress map[string]srs.Progress

	// QuestionErr is set when the question's performance could not be saved.
	QuestionErr error

	// ConceptErrs holds concepts whose progress could not be saved.
	ConceptErrs map[string]error
}

// OK reports whether every update succeeded.
func (r AnswerResult) OK() bool {
	return r.QuestionErr == nil && len(r.ConceptErrs) == 0
}

// RecordAnswer folds an answer into the question's performance and into
// the progress of every concept the question targets, then appends an
// answer event. Only a failure to load the question is returned as an
// error.
func (e *Engine) RecordAnswer(ctx context.Context, a Answer) (res AnswerResult, err error) {
	ctx, span := observability.Start(ctx, "practice.record_answer",
		observability.UserID(a.UserID), observability.QuestionID(a.QuestionID))
	defer func() { observability.End(span, err) }()

	q, err := e.repos.Questions.FindByID(ctx, a.QuestionID)
	if err != nil {
		return AnswerResult{}, fmt.Errorf("load question %s: %w", a.QuestionID, err)
	}
	if q == nil {
		return AnswerResult{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, a.QuestionID)
	}

	res = AnswerResult{
		QuestionID:  a.QuestionID,
		Progress:    make(map[string]srs.Progress, len(q.TargetConcepts)),
		ConceptErrs: make(map[string]error),
	}
	log := e.log.With("user_id", a.UserID, "question_id", a.QuestionID)

	if err := e.updater.UpdateQuestionPerformance(ctx, a.QuestionID, a.Correct); err != nil {
		log.Error("question performance update failed", "error", err)
		res.QuestionErr = err
	}

	outcome := srs.Outcome{
		Correct:          a.Correct,
		ResponseTimeMs:   a.ResponseTimeMs,
		DifficultyRating: a.DifficultyRating,
	}
	for _, conceptID := range q.TargetConcepts {
		p, err := e.scheduler.UpdateConceptProgress(ctx, a.UserID, conceptID, outcome)
		if err != nil {
			log.Error("concept progress update failed", "concept_id", conceptID, "error", err)
			res.ConceptErrs[conceptID] = err
			continue
		}
		res.Progress[conceptID] = *p
	}

	if e.repos.Events != nil {
		err := e.repos.Events.AppendAnswerEvent(ctx, store.AnswerEventData{
			UserID:         a.UserID,
			QuestionID:     a.QuestionID,
			ConceptIDs:     q.TargetConcepts,
			Mode:           string(a.Mode),
			Correct:        a.Correct,
			ResponseTimeMs: int64(a.ResponseTimeMs),
		})
		if err != nil {
			log.Warn("answer event not recorded", "error", err)
		}
	}

	log.Info("answer recorded",
		"correct", a.Correct,
		"concepts", len(q.TargetConcepts),
		"failed", len(res.ConceptErrs),
	)
	return res, nil
}
