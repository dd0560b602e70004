package srs

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/polski/internal/logger"
	"github.com/abhisek/polski/internal/observability"
)

// ProgressFilter narrows a progress query. Zero-valued fields do not filter.
type ProgressFilter struct {
	UserID     string
	ConceptIDs []string
	ActiveOnly bool

	// NextReviewBefore keeps records whose NextReview is strictly earlier.
	NextReviewBefore time.Time
}

// ProgressRepo persists ConceptProgress records.
type ProgressRepo interface {
	// FindOne returns the record for the user and concept, or nil if none exists.
	FindOne(ctx context.Context, userID, conceptID string) (*Progress, error)

	// Find returns records matching the filter ordered by NextReview, oldest first.
	Find(ctx context.Context, f ProgressFilter) ([]Progress, error)

	// Save inserts the record when ID is empty and replaces it otherwise.
	Save(ctx context.Context, p Progress) (Progress, error)
}

// Scheduler owns every mutation of ConceptProgress and answers due/overdue queries.
type Scheduler struct {
	repo   ProgressRepo
	params Params
	log    *logger.Logger

	// Now is the clock used for updates. Defaults to time.Now.
	Now func() time.Time
}

// NewScheduler creates a scheduler with the default parameters.
func NewScheduler(repo ProgressRepo, log *logger.Logger) *Scheduler {
	return &Scheduler{
		repo:   repo,
		params: DefaultParams(),
		log:    logger.OrNop(log).With("component", "srs"),
		Now:    time.Now,
	}
}

// WithParams replaces the scheduling parameters.
func (s *Scheduler) WithParams(p Params) *Scheduler {
	s.params = p
	return s
}

// UpdateConceptProgress records an answer against a concept, creating the
// progress record on first exposure. An inactive record restarts from the
// defaults under its existing id. Apart from Deactivate this is the only
// code path that changes a stored Progress.
func (s *Scheduler) UpdateConceptProgress(ctx context.Context, userID, conceptID string, o Outcome) (_ *Progress, err error) {
	ctx, span := observability.Start(ctx, "srs.update_progress", observability.UserID(userID))
	defer func() { observability.End(span, err) }()

	now := s.Now()
	existing, err := s.repo.FindOne(ctx, userID, conceptID)
	if err != nil {
		return nil, fmt.Errorf("load progress %s/%s: %w", userID, conceptID, err)
	}
	p := restart(existing, userID, conceptID, now)

	r := s.params.NextReview(p, o, now)

	correctSoFar := p.SuccessRate * float64(p.TotalAttempts)
	if o.Correct {
		correctSoFar++
	}
	p.TotalAttempts++
	p.SuccessRate = correctSoFar / float64(p.TotalAttempts)
	p.MasteryLevel = clampFloat(p.MasteryLevel+r.MasteryLevelChange, 0, 1)
	p.ConsecutiveCorrect = r.ConsecutiveCorrect
	p.EasinessFactor = r.EasinessFactor
	p.IntervalDays = r.IntervalDays
	p.NextReview = r.NextReview
	p.LastPracticed = &now
	p.Active = true

	saved, err := s.repo.Save(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("save progress %s/%s: %w", userID, conceptID, err)
	}
	s.log.Debug("progress updated",
		"user_id", userID,
		"concept_id", conceptID,
		"correct", o.Correct,
		"interval_days", saved.IntervalDays,
		"ease", saved.EasinessFactor,
		"mastery", saved.MasteryLevel,
	)
	return &saved, nil
}

// DueForReview returns active records due at any point today, oldest due first.
// Overdue records are included.
func (s *Scheduler) DueForReview(ctx context.Context, userID string, now time.Time) ([]Progress, error) {
	return s.query(ctx, userID, startOfDay(now).AddDate(0, 0, 1))
}

// Overdue returns active records whose review date fell before today, oldest due first.
func (s *Scheduler) Overdue(ctx context.Context, userID string, now time.Time) ([]Progress, error) {
	return s.query(ctx, userID, startOfDay(now))
}

func (s *Scheduler) query(ctx context.Context, userID string, before time.Time) ([]Progress, error) {
	records, err := s.repo.Find(ctx, ProgressFilter{
		UserID:           userID,
		ActiveOnly:       true,
		NextReviewBefore: before,
	})
	if err != nil {
		return nil, fmt.Errorf("query progress for %s: %w", userID, err)
	}
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].NextReview.Equal(records[j].NextReview) {
			return records[i].NextReview.Before(records[j].NextReview)
		}
		return records[i].ConceptID < records[j].ConceptID
	})
	return records, nil
}

// Progress returns the user's records for the given concepts. Concepts the
// user has never seen are absent from the result.
func (s *Scheduler) Progress(ctx context.Context, userID string, conceptIDs []string) (map[string]Progress, error) {
	records, err := s.repo.Find(ctx, ProgressFilter{UserID: userID, ConceptIDs: conceptIDs})
	if err != nil {
		return nil, fmt.Errorf("query progress for %s: %w", userID, err)
	}
	out := make(map[string]Progress, len(records))
	for _, p := range records {
		out[p.ConceptID] = p
	}
	return out, nil
}

// All returns every active record of the user.
func (s *Scheduler) All(ctx context.Context, userID string) ([]Progress, error) {
	records, err := s.repo.Find(ctx, ProgressFilter{UserID: userID, ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("query progress for %s: %w", userID, err)
	}
	return records, nil
}

// InitConcepts creates default records for concepts the user has not seen
// yet, reactivates deactivated ones from the defaults, and returns the
// records for all of them in input order.
func (s *Scheduler) InitConcepts(ctx context.Context, userID string, conceptIDs []string) ([]Progress, error) {
	existing, err := s.Progress(ctx, userID, conceptIDs)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	out := make([]Progress, 0, len(conceptIDs))
	for _, id := range conceptIDs {
		p, ok := existing[id]
		if ok && p.Active {
			out = append(out, p)
			continue
		}
		var prev *Progress
		if ok {
			prev = &p
		}
		saved, err := s.repo.Save(ctx, restart(prev, userID, id, now))
		if err != nil {
			return nil, fmt.Errorf("init progress %s/%s: %w", userID, id, err)
		}
		out = append(out, saved)
	}
	return out, nil
}

// Deactivate retires every active record of the user. Records are kept
// for history; the next answer or bootstrap starts them over from the
// defaults. It returns how many records were deactivated.
func (s *Scheduler) Deactivate(ctx context.Context, userID string) (n int, err error) {
	ctx, span := observability.Start(ctx, "srs.deactivate", observability.UserID(userID))
	defer func() { observability.End(span, err) }()

	if userID == "" {
		return 0, fmt.Errorf("deactivate progress: empty user id")
	}
	records, err := s.All(ctx, userID)
	if err != nil {
		return 0, err
	}
	for _, p := range records {
		p.Active = false
		if _, err := s.repo.Save(ctx, p); err != nil {
			return n, fmt.Errorf("deactivate progress %s/%s: %w", userID, p.ConceptID, err)
		}
		n++
	}
	s.log.Info("progress deactivated", "user_id", userID, "records", n)
	return n, nil
}

// restart returns the record an update builds on: the stored one while it
// is active, otherwise a fresh default that reuses the stored id.
func restart(existing *Progress, userID, conceptID string, now time.Time) Progress {
	if existing != nil && existing.Active {
		return *existing
	}
	p := NewProgress(userID, conceptID, now)
	if existing != nil {
		p.ID = existing.ID
	}
	return p
}
