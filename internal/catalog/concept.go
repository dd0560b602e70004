package catalog

import "strings"

// Category is the kind of language knowledge a concept describes.
type Category string

const (
	CategoryGrammar    Category = "GRAMMAR"
	CategoryVocabulary Category = "VOCABULARY"
)

// ParseCategory maps user input (any case) to a Category.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryGrammar:
		return CategoryGrammar, true
	case CategoryVocabulary:
		return CategoryVocabulary, true
	}
	return "", false
}

// Concept is a single unit of Polish grammar or vocabulary that questions
// target and progress is tracked against.
type Concept struct {
	ID          string
	Name        string
	Category    Category
	Description string
	Examples    []string
	Difficulty  Level
	Tags        []string
	Active      bool
}

// ConceptGroup is a curated bundle of concepts practiced together.
type ConceptGroup struct {
	ID             string
	Name           string
	MemberConcepts []string
	Active         bool
}

// CourseConcept maps a concept to a course. Confidence comes from the
// extraction workflow and doubles as a priority weight.
type CourseConcept struct {
	CourseID   string
	ConceptID  string
	Confidence float64
	Active     bool
}

// IDs returns the ids of concepts in order.
func IDs(concepts []Concept) []string {
	ids := make([]string, len(concepts))
	for i, c := range concepts {
		ids[i] = c.ID
	}
	return ids
}

// ByID indexes concepts by id.
func ByID(concepts []Concept) map[string]Concept {
	m := make(map[string]Concept, len(concepts))
	for _, c := range concepts {
		m[c.ID] = c
	}
	return m
}
