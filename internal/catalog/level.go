package catalog

import "strings"

// Level is a CEFR proficiency level.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels lists all CEFR levels from easiest to hardest.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// Rank returns the position of l in Levels (A1 = 0), or -1 if l is unknown.
func (l Level) Rank() int {
	for i, v := range Levels {
		if v == l {
			return i
		}
	}
	return -1
}

// Valid reports whether l is one of the six CEFR levels.
func (l Level) Valid() bool { return l.Rank() >= 0 }

// ParseLevel normalizes s ("b2", " B2 ") to a Level.
func ParseLevel(s string) (Level, bool) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	return l, l.Valid()
}

// Highest returns the hardest level among concepts. Unknown levels are
// ignored; A1 is returned when nothing valid is present.
func Highest(concepts []Concept) Level {
	best := LevelA1
	for _, c := range concepts {
		if c.Difficulty.Rank() > best.Rank() {
			best = c.Difficulty
		}
	}
	return best
}
