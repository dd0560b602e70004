// Package catalogtest provides in-memory catalog repositories for tests.
package catalogtest

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/abhisek/polski/internal/catalog"
)

// Concepts is an in-memory catalog.ConceptRepo. Err, when set, is returned by every call.
type Concepts struct {
	Items []catalog.Concept
	Err   error
}

func (r *Concepts) Find(_ context.Context, f catalog.ConceptFilter) ([]catalog.Concept, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	var out []catalog.Concept
	for _, c := range r.Items {
		if len(f.IDs) > 0 && !slices.Contains(f.IDs, c.ID) {
			continue
		}
		if slices.Contains(f.ExcludeIDs, c.ID) {
			continue
		}
		if f.Category != "" && c.Category != f.Category {
			continue
		}
		if f.Difficulty != "" && c.Difficulty != f.Difficulty {
			continue
		}
		if f.ActiveOnly && !c.Active {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *Concepts) Create(_ context.Context, c catalog.Concept) (catalog.Concept, error) {
	if r.Err != nil {
		return catalog.Concept{}, r.Err
	}
	if c.ID == "" {
		c.ID = fmt.Sprintf("concept-%d", len(r.Items)+1)
	}
	r.Items = append(r.Items, c)
	return c, nil
}

// Groups is an in-memory catalog.GroupRepo.
type Groups struct {
	Items []catalog.ConceptGroup
	Err   error
}

func (r *Groups) Find(_ context.Context, f catalog.GroupFilter) ([]catalog.ConceptGroup, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	var out []catalog.ConceptGroup
	for _, g := range r.Items {
		if len(f.IDs) > 0 && !slices.Contains(f.IDs, g.ID) {
			continue
		}
		if f.ActiveOnly && !g.Active {
			continue
		}
		if len(f.ContainingAny) > 0 && !slices.ContainsFunc(f.ContainingAny, func(id string) bool {
			return slices.Contains(g.MemberConcepts, id)
		}) {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (r *Groups) FindOne(_ context.Context, id string) (*catalog.ConceptGroup, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	for _, g := range r.Items {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, nil
}

func (r *Groups) Upsert(_ context.Context, g catalog.ConceptGroup) (catalog.ConceptGroup, error) {
	if r.Err != nil {
		return catalog.ConceptGroup{}, r.Err
	}
	for i, existing := range r.Items {
		if existing.Name == g.Name {
			for _, id := range g.MemberConcepts {
				if !slices.Contains(existing.MemberConcepts, id) {
					existing.MemberConcepts = append(existing.MemberConcepts, id)
				}
			}
			r.Items[i] = existing
			return existing, nil
		}
	}
	if g.ID == "" {
		g.ID = fmt.Sprintf("group-%d", len(r.Items)+1)
	}
	r.Items = append(r.Items, g)
	return g, nil
}

// Courses is an in-memory catalog.CourseRepo.
type Courses struct {
	Items []catalog.CourseConcept
	Err   error
}

func (r *Courses) Find(_ context.Context, f catalog.CourseFilter) ([]catalog.CourseConcept, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	var out []catalog.CourseConcept
	for _, cc := range r.Items {
		if len(f.CourseIDs) > 0 && !slices.Contains(f.CourseIDs, cc.CourseID) {
			continue
		}
		if f.ActiveOnly && !cc.Active {
			continue
		}
		out = append(out, cc)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *Courses) Create(_ context.Context, cc catalog.CourseConcept) error {
	if r.Err != nil {
		return r.Err
	}
	r.Items = append(r.Items, cc)
	return nil
}

// FindByName returns the first concept with the exact name, or nil.
func (r *Concepts) FindByName(_ context.Context, name string) (*catalog.Concept, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	for _, c := range r.Items {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}
