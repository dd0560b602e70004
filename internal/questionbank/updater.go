package questionbank

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/polski/internal/logger"
	"github.com/abhisek/polski/internal/observability"
)

// Updater feeds answer outcomes back into question usage statistics.
type Updater struct {
	repo Repo
	log  *logger.Logger

	// Now is the clock used for LastUsed. Defaults to time.Now.
	Now func() time.Time
}

// NewUpdater creates an Updater.
func NewUpdater(repo Repo, log *logger.Logger) *Updater {
	return &Updater{
		repo: repo,
		log:  logger.OrNop(log).With("component", "questionbank"),
		Now:  time.Now,
	}
}

// UpdateQuestionPerformance counts one more use of the question and folds
// the outcome into its success rate as an exact running mean. An unknown
// question id is logged and ignored.
func (u *Updater) UpdateQuestionPerformance(ctx context.Context, questionID string, correct bool) (err error) {
	ctx, span := observability.Start(ctx, "questionbank.update_performance", observability.QuestionID(questionID))
	defer func() { observability.End(span, err) }()

	e, err := u.repo.FindByID(ctx, questionID)
	if err != nil {
		return fmt.Errorf("load question %s: %w", questionID, err)
	}
	if e == nil {
		u.log.Warn("performance update for unknown question", "question_id", questionID)
		return nil
	}

	timesUsed := e.TimesUsed + 1
	hit := 0.0
	if correct {
		hit = 1
	}
	successRate := (e.SuccessRate*float64(e.TimesUsed) + hit) / float64(timesUsed)
	now := u.Now()

	err = u.repo.UpdateOne(ctx, questionID, Patch{
		TimesUsed:   &timesUsed,
		SuccessRate: &successRate,
		LastUsed:    &now,
	})
	if errors.Is(err, ErrNotFound) {
		u.log.Warn("question vanished before performance update", "question_id", questionID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("update question %s: %w", questionID, err)
	}
	return nil
}
