package provision

import "strings"

// Mode selects how strictly questions must match the requested concepts.
type Mode string

const (
	// ModeNormal prefers curated questions and generates to fill gaps.
	ModeNormal Mode = "NORMAL"

	// ModePrevious replays questions the learner has already seen and
	// never generates.
	ModePrevious Mode = "PREVIOUS"

	// ModeDrill serves only questions on the drilled concepts and never
	// broadens the pool.
	ModeDrill Mode = "DRILL"
)

// ParseMode maps user input (any case) to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(strings.ToUpper(strings.TrimSpace(s))); m {
	case ModeNormal, ModePrevious, ModeDrill:
		return m, true
	}
	return "", false
}

// Request asks for questions on a set of concepts.
type Request struct {
	UserID     string
	ConceptIDs []string
	Mode       Mode

	// MaxQuestions <= 0 uses the configured default.
	MaxQuestions int
}
