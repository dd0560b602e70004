// Package srstest provides an in-memory progress repository for tests.
package srstest

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/abhisek/polski/internal/srs"
)

// Progress is an in-memory srs.ProgressRepo. Err, when set, is returned by every call.
type Progress struct {
	mu     sync.Mutex
	rows   []srs.Progress
	nextID int

	Err   error
	Saves int
}

// NewProgress returns a repo seeded with rows. Seeding does not count as saves.
func NewProgress(rows ...srs.Progress) *Progress {
	r := &Progress{}
	for _, p := range rows {
		_, _ = r.Save(context.Background(), p)
	}
	r.Saves = 0
	return r
}

func (r *Progress) FindOne(_ context.Context, userID, conceptID string) (*srs.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, p := range r.rows {
		if p.UserID == userID && p.ConceptID == conceptID {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *Progress) Find(_ context.Context, f srs.ProgressFilter) ([]srs.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []srs.Progress
	for _, p := range r.rows {
		switch {
		case f.UserID != "" && p.UserID != f.UserID:
		case f.ActiveOnly && !p.Active:
		case len(f.ConceptIDs) > 0 && !slices.Contains(f.ConceptIDs, p.ConceptID):
		case !f.NextReviewBefore.IsZero() && !p.NextReview.Before(f.NextReviewBefore):
		default:
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].NextReview.Before(out[j].NextReview) })
	return out, nil
}

func (r *Progress) Save(_ context.Context, p srs.Progress) (srs.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return srs.Progress{}, r.Err
	}
	r.Saves++
	if p.ID == "" {
		r.nextID++
		p.ID = fmt.Sprintf("progress-%d", r.nextID)
		r.rows = append(r.rows, p)
		return p, nil
	}
	for i := range r.rows {
		if r.rows[i].ID == p.ID {
			r.rows[i] = p
			return p, nil
		}
	}
	r.rows = append(r.rows, p)
	return p, nil
}

// Rows returns a copy of every stored record.
func (r *Progress) Rows() []srs.Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.rows)
}
