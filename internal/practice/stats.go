package practice

import (
	"context"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/observability"
	"github.com/abhisek/polski/internal/questionbank"
	"github.com/abhisek/polski/internal/srs"
)

// MasteredThreshold is the mastery level from which a concept counts as mastered.
const MasteredThreshold = 0.8

// Stats summarizes a learner's standing.
type Stats struct {
	ActiveConcepts    int
	TrackedConcepts   int // concepts with a progress record
	PracticedConcepts int // tracked concepts answered at least once
	DueToday          int // due later today, excluding overdue
	Overdue           int
	AverageMastery    float64
	MasteredConcepts  int
	QuestionBankSize  int

	Answers  int
	Accuracy float64
}

// Stats returns the learner's progress summary. A store failure yields
// the zero Stats.
func (e *Engine) Stats(ctx context.Context, userID string) Stats {
	var spanErr error
	ctx, span := observability.Start(ctx, "practice.stats", observability.UserID(userID))
	defer func() { observability.End(span, spanErr) }()

	log := e.log.With("user_id", userID)

	concepts, err := e.repos.Concepts.Find(ctx, catalog.ConceptFilter{ActiveOnly: true})
	if err != nil {
		log.Error("stats: load concepts failed", "error", err)
		spanErr = err
		return Stats{}
	}
	records, err := e.scheduler.All(ctx, userID)
	if err != nil {
		log.Error("stats: load progress failed", "error", err)
		spanErr = err
		return Stats{}
	}
	bank, err := e.repos.Questions.Count(ctx, questionbank.Filter{ActiveOnly: true})
	if err != nil {
		log.Error("stats: count questions failed", "error", err)
		spanErr = err
		return Stats{}
	}

	st := Stats{ActiveConcepts: len(concepts), QuestionBankSize: bank}
	now := e.now()
	var masterySum float64
	for _, p := range records {
		if !p.Active {
			continue
		}
		st.TrackedConcepts++
		if p.TotalAttempts > 0 {
			st.PracticedConcepts++
		}
		masterySum += p.MasteryLevel
		if p.MasteryLevel >= MasteredThreshold {
			st.MasteredConcepts++
		}
		switch p.Status(now) {
		case srs.ReviewOverdue:
			st.Overdue++
		case srs.ReviewDueToday:
			st.DueToday++
		}
	}
	if st.TrackedConcepts > 0 {
		st.AverageMastery = masterySum / float64(st.TrackedConcepts)
	}

	if e.repos.Events != nil {
		tally, err := e.repos.Events.AnswerTally(ctx, userID)
		if err != nil {
			log.Warn("stats: answer tally failed", "error", err)
			spanErr = err
		} else {
			st.Answers = tally.Total
			st.Accuracy = tally.Accuracy()
		}
	}
	return st
}
