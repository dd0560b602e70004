package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"

	"github.com/abhisek/polski/ent"
	"github.com/abhisek/polski/ent/concept"
	"github.com/abhisek/polski/ent/conceptgroup"
	"github.com/abhisek/polski/ent/courseconcept"
	"github.com/abhisek/polski/ent/predicate"
	"github.com/abhisek/polski/internal/catalog"
)

// ConceptRepo implements catalog.ConceptRepo.
type ConceptRepo struct {
	client *ent.Client
}

var _ catalog.ConceptRepo = (*ConceptRepo)(nil)

func (r *ConceptRepo) Find(ctx context.Context, f catalog.ConceptFilter) ([]catalog.Concept, error) {
	q := r.client.Concept.Query()
	if len(f.IDs) > 0 {
		q = q.Where(concept.IDIn(f.IDs...))
	}
	if len(f.ExcludeIDs) > 0 {
		q = q.Where(concept.IDNotIn(f.ExcludeIDs...))
	}
	if f.Category != "" {
		q = q.Where(concept.Category(string(f.Category)))
	}
	if f.Difficulty != "" {
		q = q.Where(concept.Difficulty(string(f.Difficulty)))
	}
	if f.ActiveOnly {
		q = q.Where(concept.Active(true))
	}
	q = q.Order(ent.Asc(concept.FieldName), ent.Asc(concept.FieldID))
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}
	out := make([]catalog.Concept, len(rows))
	for i, c := range rows {
		out[i] = toConcept(c)
	}
	return out, nil
}

func (r *ConceptRepo) Create(ctx context.Context, c catalog.Concept) (catalog.Concept, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := r.client.Concept.Create().
		SetID(c.ID).
		SetName(c.Name).
		SetCategory(string(c.Category)).
		SetDescription(c.Description).
		SetExamples(c.Examples).
		SetDifficulty(string(c.Difficulty)).
		SetTags(c.Tags).
		SetActive(c.Active).
		Save(ctx)
	if err != nil {
		return catalog.Concept{}, fmt.Errorf("create concept %q: %w", c.Name, err)
	}
	return c, nil
}

// FindByName returns the first concept with the exact name, or nil.
func (r *ConceptRepo) FindByName(ctx context.Context, name string) (*catalog.Concept, error) {
	c, err := r.client.Concept.Query().
		Where(concept.Name(name)).
		Order(ent.Asc(concept.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find concept %q: %w", name, err)
	}
	out := toConcept(c)
	return &out, nil
}

func toConcept(c *ent.Concept) catalog.Concept {
	return catalog.Concept{
		ID:          c.ID,
		Name:        c.Name,
		Category:    catalog.Category(c.Category),
		Description: c.Description,
		Examples:    c.Examples,
		Difficulty:  catalog.Level(c.Difficulty),
		Tags:        c.Tags,
		Active:      c.Active,
	}
}

// GroupRepo implements catalog.GroupRepo.
type GroupRepo struct {
	client *ent.Client
}

var _ catalog.GroupRepo = (*GroupRepo)(nil)

func (r *GroupRepo) Find(ctx context.Context, f catalog.GroupFilter) ([]catalog.ConceptGroup, error) {
	q := r.client.ConceptGroup.Query()
	if len(f.IDs) > 0 {
		q = q.Where(conceptgroup.IDIn(f.IDs...))
	}
	if len(f.ContainingAny) > 0 {
		q = q.Where(jsonContainsAny[predicate.ConceptGroup](conceptgroup.FieldMemberConcepts, f.ContainingAny))
	}
	if f.ActiveOnly {
		q = q.Where(conceptgroup.Active(true))
	}

	rows, err := q.Order(ent.Asc(conceptgroup.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concept groups: %w", err)
	}
	out := make([]catalog.ConceptGroup, len(rows))
	for i, g := range rows {
		out[i] = toGroup(g)
	}
	return out, nil
}

func (r *GroupRepo) FindOne(ctx context.Context, id string) (*catalog.ConceptGroup, error) {
	g, err := r.client.ConceptGroup.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get concept group %s: %w", id, err)
	}
	out := toGroup(g)
	return &out, nil
}

func (r *GroupRepo) Upsert(ctx context.Context, g catalog.ConceptGroup) (catalog.ConceptGroup, error) {
	existing, err := r.client.ConceptGroup.Query().
		Where(conceptgroup.Name(g.Name)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return catalog.ConceptGroup{}, fmt.Errorf("find concept group %q: %w", g.Name, err)
	}

	if existing == nil {
		if g.ID == "" {
			g.ID = uuid.NewString()
		}
		members := mergeMembers(nil, g.MemberConcepts)
		_, err := r.client.ConceptGroup.Create().
			SetID(g.ID).
			SetName(g.Name).
			SetMemberConcepts(members).
			SetActive(g.Active).
			Save(ctx)
		if err != nil {
			return catalog.ConceptGroup{}, fmt.Errorf("create concept group %q: %w", g.Name, err)
		}
		g.MemberConcepts = members
		return g, nil
	}

	members := mergeMembers(existing.MemberConcepts, g.MemberConcepts)
	updated, err := existing.Update().
		SetMemberConcepts(members).
		Save(ctx)
	if err != nil {
		return catalog.ConceptGroup{}, fmt.Errorf("update concept group %q: %w", g.Name, err)
	}
	return toGroup(updated), nil
}

// mergeMembers appends ids not already present, keeping first-seen order.
func mergeMembers(have, add []string) []string {
	seen := make(map[string]bool, len(have)+len(add))
	out := make([]string, 0, len(have)+len(add))
	for _, id := range append(append([]string{}, have...), add...) {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func toGroup(g *ent.ConceptGroup) catalog.ConceptGroup {
	return catalog.ConceptGroup{
		ID:             g.ID,
		Name:           g.Name,
		MemberConcepts: g.MemberConcepts,
		Active:         g.Active,
	}
}

// CourseRepo implements catalog.CourseRepo.
type CourseRepo struct {
	client *ent.Client
}

var _ catalog.CourseRepo = (*CourseRepo)(nil)

func (r *CourseRepo) Find(ctx context.Context, f catalog.CourseFilter) ([]catalog.CourseConcept, error) {
	q := r.client.CourseConcept.Query()
	if len(f.CourseIDs) > 0 {
		q = q.Where(courseconcept.CourseIDIn(f.CourseIDs...))
	}
	if f.ActiveOnly {
		q = q.Where(courseconcept.Active(true))
	}
	q = q.Order(ent.Desc(courseconcept.FieldConfidence), ent.Asc(courseconcept.FieldConceptID))
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query course concepts: %w", err)
	}
	out := make([]catalog.CourseConcept, len(rows))
	for i, cc := range rows {
		out[i] = catalog.CourseConcept{
			CourseID:   cc.CourseID,
			ConceptID:  cc.ConceptID,
			Confidence: cc.Confidence,
			Active:     cc.Active,
		}
	}
	return out, nil
}

// Create adds the mapping, or refreshes confidence and active flag if the
// course already maps the concept.
func (r *CourseRepo) Create(ctx context.Context, cc catalog.CourseConcept) error {
	n, err := r.client.CourseConcept.Update().
		Where(courseconcept.CourseID(cc.CourseID), courseconcept.ConceptID(cc.ConceptID)).
		SetConfidence(cc.Confidence).
		SetActive(cc.Active).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update course concept: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.CourseConcept.Create().
		SetCourseID(cc.CourseID).
		SetConceptID(cc.ConceptID).
		SetConfidence(cc.Confidence).
		SetActive(cc.Active).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create course concept: %w", err)
	}
	return nil
}

// jsonContainsAny matches rows whose JSON string array column holds at
// least one of the values. Rows with an empty or null array never match.
func jsonContainsAny[P ~func(*sql.Selector)](column string, values []string) P {
	return P(func(s *sql.Selector) {
		preds := make([]*sql.Predicate, len(values))
		for i, v := range values {
			preds[i] = sqljson.ValueContains(s.C(column), v)
		}
		s.Where(sql.Or(preds...))
	})
}
