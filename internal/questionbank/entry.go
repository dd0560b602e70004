package questionbank

import (
	"time"

	"github.com/abhisek/polski/internal/catalog"
)

// Entry is a stored question that can be served to a learner.
type Entry struct {
	ID            string
	Question      string
	CorrectAnswer string
	Type          QuestionType

	// TargetConcepts are the concept ids the question exercises. Empty
	// only for malformed entries, which drills never serve.
	TargetConcepts []string

	Difficulty catalog.Level

	TimesUsed   int
	SuccessRate float64 // correct answers / TimesUsed
	LastUsed    *time.Time
	CreatedAt   time.Time
	Active      bool
	Source      Source

	// Options holds the answer choices for choice-based types.
	Options []string

	// Media lists audio or image references attached to the question.
	Media []string
}

// Targets reports whether the entry exercises the concept.
func (e *Entry) Targets(conceptID string) bool {
	for _, id := range e.TargetConcepts {
		if id == conceptID {
			return true
		}
	}
	return false
}

// Source records where a question came from.
type Source string

const (
	// SourceManual entries were authored by a person.
	SourceManual Source = "manual"

	// SourceGenerated entries came from a reviewed batch generation run.
	SourceGenerated Source = "generated"

	// SourceMomentary entries were generated on demand to fill a shortfall.
	SourceMomentary Source = "momentary"
)

// Rank orders sources by preference, lowest first.
func (s Source) Rank() int {
	switch s {
	case SourceManual:
		return 0
	case SourceGenerated:
		return 1
	case SourceMomentary:
		return 2
	}
	return 3
}

// Durable reports whether the source is a curated, long-lived one.
func (s Source) Durable() bool {
	return s == SourceManual || s == SourceGenerated
}

// ParseSource validates a stored source string.
func ParseSource(v string) (Source, bool) {
	switch s := Source(v); s {
	case SourceManual, SourceGenerated, SourceMomentary:
		return s, true
	}
	return "", false
}
