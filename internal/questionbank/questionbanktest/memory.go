// Package questionbanktest provides an in-memory question repository for tests.
package questionbanktest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/polski/internal/questionbank"
)

// Repo is an in-memory questionbank.Repo safe for concurrent use.
// FindErr and CreateErr, when set, fail the matching calls.
type Repo struct {
	mu      sync.Mutex
	entries []questionbank.Entry
	nextID  int

	FindErr   error
	CreateErr error

	// Created records entries passed to Create, in call order.
	Created []questionbank.Entry
}

// New returns a repo seeded with entries. Seeding does not count as Created.
func New(entries ...questionbank.Entry) *Repo {
	return &Repo{entries: append([]questionbank.Entry(nil), entries...)}
}

func (r *Repo) Find(_ context.Context, f questionbank.Filter, order questionbank.Order, limit int) ([]questionbank.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FindErr != nil {
		return nil, r.FindErr
	}
	var out []questionbank.Entry
	for i := range r.entries {
		if f.Matches(&r.entries[i]) {
			out = append(out, r.entries[i])
		}
	}
	questionbank.SortEntries(out, order)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *Repo) FindByID(_ context.Context, id string) (*questionbank.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FindErr != nil {
		return nil, r.FindErr
	}
	for _, e := range r.entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (r *Repo) Create(_ context.Context, e questionbank.Entry) (questionbank.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return questionbank.Entry{}, r.CreateErr
	}
	if e.ID == "" {
		r.nextID++
		e.ID = fmt.Sprintf("q-new-%d", r.nextID)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	r.entries = append(r.entries, e)
	r.Created = append(r.Created, e)
	return e, nil
}

func (r *Repo) UpdateOne(_ context.Context, id string, p questionbank.Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		e := &r.entries[i]
		if e.ID != id {
			continue
		}
		if p.TimesUsed != nil {
			e.TimesUsed = *p.TimesUsed
		}
		if p.SuccessRate != nil {
			e.SuccessRate = *p.SuccessRate
		}
		if p.LastUsed != nil {
			t := *p.LastUsed
			e.LastUsed = &t
		}
		if p.Active != nil {
			e.Active = *p.Active
		}
		return nil
	}
	return questionbank.ErrNotFound
}

func (r *Repo) Count(ctx context.Context, f questionbank.Filter) (int, error) {
	entries, err := r.Find(ctx, f, questionbank.OrderNewest, 0)
	return len(entries), err
}

// Get returns the stored entry by id.
func (r *Repo) Get(id string) (questionbank.Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.ID == id {
			return e, true
		}
	}
	return questionbank.Entry{}, false
}
