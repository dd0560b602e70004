package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/polski/ent"
	"github.com/abhisek/polski/ent/conceptprogress"
	"github.com/abhisek/polski/internal/srs"
)

// ProgressRepo implements srs.ProgressRepo.
type ProgressRepo struct {
	client *ent.Client
}

var _ srs.ProgressRepo = (*ProgressRepo)(nil)

func (r *ProgressRepo) FindOne(ctx context.Context, userID, conceptID string) (*srs.Progress, error) {
	p, err := r.client.ConceptProgress.Query().
		Where(
			conceptprogress.UserID(userID),
			conceptprogress.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find progress %s/%s: %w", userID, conceptID, err)
	}
	out := toProgress(p)
	return &out, nil
}

func (r *ProgressRepo) Find(ctx context.Context, f srs.ProgressFilter) ([]srs.Progress, error) {
	q := r.client.ConceptProgress.Query()
	if f.UserID != "" {
		q = q.Where(conceptprogress.UserID(f.UserID))
	}
	if len(f.ConceptIDs) > 0 {
		q = q.Where(conceptprogress.ConceptIDIn(f.ConceptIDs...))
	}
	if f.ActiveOnly {
		q = q.Where(conceptprogress.Active(true))
	}
	if !f.NextReviewBefore.IsZero() {
		q = q.Where(conceptprogress.NextReviewLT(f.NextReviewBefore))
	}

	rows, err := q.
		Order(ent.Asc(conceptprogress.FieldNextReview), ent.Asc(conceptprogress.FieldConceptID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	out := make([]srs.Progress, len(rows))
	for i, p := range rows {
		out[i] = toProgress(p)
	}
	return out, nil
}

func (r *ProgressRepo) Save(ctx context.Context, p srs.Progress) (srs.Progress, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
		_, err := r.client.ConceptProgress.Create().
			SetID(p.ID).
			SetUserID(p.UserID).
			SetConceptID(p.ConceptID).
			SetMasteryLevel(p.MasteryLevel).
			SetSuccessRate(p.SuccessRate).
			SetTotalAttempts(p.TotalAttempts).
			SetConsecutiveCorrect(p.ConsecutiveCorrect).
			SetEasinessFactor(p.EasinessFactor).
			SetIntervalDays(p.IntervalDays).
			SetNillableLastPracticed(p.LastPracticed).
			SetNextReview(p.NextReview).
			SetActive(p.Active).
			Save(ctx)
		if err != nil {
			return srs.Progress{}, fmt.Errorf("create progress %s/%s: %w", p.UserID, p.ConceptID, err)
		}
		return p, nil
	}

	upd := r.client.ConceptProgress.UpdateOneID(p.ID).
		SetMasteryLevel(p.MasteryLevel).
		SetSuccessRate(p.SuccessRate).
		SetTotalAttempts(p.TotalAttempts).
		SetConsecutiveCorrect(p.ConsecutiveCorrect).
		SetEasinessFactor(p.EasinessFactor).
		SetIntervalDays(p.IntervalDays).
		SetNextReview(p.NextReview).
		SetActive(p.Active)
	if p.LastPracticed != nil {
		upd = upd.SetLastPracticed(*p.LastPracticed)
	} else {
		upd = upd.ClearLastPracticed()
	}
	if _, err := upd.Save(ctx); err != nil {
		return srs.Progress{}, fmt.Errorf("update progress %s: %w", p.ID, err)
	}
	return p, nil
}

func toProgress(p *ent.ConceptProgress) srs.Progress {
	return srs.Progress{
		ID:                 p.ID,
		UserID:             p.UserID,
		ConceptID:          p.ConceptID,
		MasteryLevel:       p.MasteryLevel,
		SuccessRate:        p.SuccessRate,
		TotalAttempts:      p.TotalAttempts,
		ConsecutiveCorrect: p.ConsecutiveCorrect,
		EasinessFactor:     p.EasinessFactor,
		IntervalDays:       p.IntervalDays,
		LastPracticed:      p.LastPracticed,
		NextReview:         p.NextReview,
		Active:             p.Active,
	}
}
