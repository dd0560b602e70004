package catalog

import "context"

// ConceptFilter narrows a concept query. Zero-valued fields do not filter.
type ConceptFilter struct {
	IDs        []string
	Category   Category
	Difficulty Level
	ActiveOnly bool
	// ExcludeIDs drops the listed concepts from the result.
	ExcludeIDs []string
	Limit      int
}

// ConceptRepo reads and writes the concept catalog.
type ConceptRepo interface {
	// Find returns concepts matching the filter, ordered by name.
	Find(ctx context.Context, f ConceptFilter) ([]Concept, error)

	// Create inserts a concept. An empty ID is assigned by the store.
	Create(ctx context.Context, c Concept) (Concept, error)
}

// GroupFilter narrows a concept group query.
type GroupFilter struct {
	IDs []string
	// ContainingAny keeps groups whose members include at least one of these concepts.
	ContainingAny []string
	ActiveOnly    bool
}

// GroupRepo reads and writes concept groups.
type GroupRepo interface {
	Find(ctx context.Context, f GroupFilter) ([]ConceptGroup, error)

	// FindOne returns the group or nil if it does not exist.
	FindOne(ctx context.Context, id string) (*ConceptGroup, error)

	// Upsert creates the group by name or appends members to an existing one.
	Upsert(ctx context.Context, g ConceptGroup) (ConceptGroup, error)
}

// CourseFilter narrows a course mapping query.
type CourseFilter struct {
	CourseIDs  []string
	ActiveOnly bool
	Limit      int
}

// CourseRepo reads and writes course/concept mappings.
type CourseRepo interface {
	// Find returns mappings ordered by confidence, highest first.
	Find(ctx context.Context, f CourseFilter) ([]CourseConcept, error)

	Create(ctx context.Context, cc CourseConcept) error
}
