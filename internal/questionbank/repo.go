package questionbank

import (
	"context"
	"errors"
	"sort"
	"time"
)

// ErrNotFound is returned by UpdateOne when the question does not exist.
var ErrNotFound = errors.New("question not found")

// Filter narrows a question query. Zero-valued fields do not filter.
type Filter struct {
	IDs []string

	// ConceptsAny keeps entries targeting at least one of these concepts.
	// Entries with no target concepts never match.
	ConceptsAny []string

	Sources    []Source
	ActiveOnly bool

	// UsedOnly keeps entries that have been served at least once.
	UsedOnly bool
}

// Order selects the result ordering of Find.
type Order int

const (
	// OrderNewest sorts by creation time, newest first.
	OrderNewest Order = iota

	// OrderQuality sorts by source rank, then least used, then best success rate.
	OrderQuality

	// OrderRecentlyUsed sorts by last use, most recent first.
	OrderRecentlyUsed
)

// Patch lists the fields UpdateOne changes. Nil fields are left alone.
type Patch struct {
	TimesUsed   *int
	SuccessRate *float64
	LastUsed    *time.Time
	Active      *bool
}

// Repo persists question bank entries.
type Repo interface {
	// Find returns up to limit entries (all when limit <= 0) in the given order.
	Find(ctx context.Context, f Filter, order Order, limit int) ([]Entry, error)

	// FindByID returns the entry or nil if it does not exist.
	FindByID(ctx context.Context, id string) (*Entry, error)

	// Create inserts the entry. An empty ID is assigned by the store.
	Create(ctx context.Context, e Entry) (Entry, error)

	// UpdateOne applies the patch, returning ErrNotFound for unknown ids.
	UpdateOne(ctx context.Context, id string, p Patch) error

	// Count returns the number of entries matching the filter.
	Count(ctx context.Context, f Filter) (int, error)
}

// SortEntries orders entries in place.
func SortEntries(entries []Entry, order Order) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := &entries[i], &entries[j]
		switch order {
		case OrderQuality:
			if a.Source.Rank() != b.Source.Rank() {
				return a.Source.Rank() < b.Source.Rank()
			}
			if a.TimesUsed != b.TimesUsed {
				return a.TimesUsed < b.TimesUsed
			}
			return a.SuccessRate > b.SuccessRate
		case OrderRecentlyUsed:
			return timeOrZero(a.LastUsed).After(timeOrZero(b.LastUsed))
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

// Matches reports whether e satisfies the filter.
func (f Filter) Matches(e *Entry) bool {
	if len(f.IDs) > 0 && !containsString(f.IDs, e.ID) {
		return false
	}
	if f.ActiveOnly && !e.Active {
		return false
	}
	if f.UsedOnly && e.TimesUsed == 0 {
		return false
	}
	if len(f.Sources) > 0 {
		ok := false
		for _, s := range f.Sources {
			if e.Source == s {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(f.ConceptsAny) > 0 {
		ok := false
		for _, c := range f.ConceptsAny {
			if e.Targets(c) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
