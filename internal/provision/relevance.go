package provision

import (
	"sort"

	"github.com/abhisek/polski/internal/questionbank"
)

// scored is a drill candidate with its relevance to the drill set.
type scored struct {
	entry     questionbank.Entry
	matched   int
	relevance float64
}

// rankDrill orders drill candidates by relevance. A multi-concept drill
// rewards breadth (matched / drill size) and prefers questions covering
// more concepts; a single-concept drill rewards focus (matched / concepts
// on the question) and prefers questions with fewer concepts. Candidates
// with no overlap are dropped.
func rankDrill(entries []questionbank.Entry, drillIDs []string) []questionbank.Entry {
	drill := make(map[string]bool, len(drillIDs))
	for _, id := range drillIDs {
		drill[id] = true
	}
	broad := len(drill) > 1

	candidates := make([]scored, 0, len(entries))
	for _, e := range entries {
		matched := 0
		for _, id := range e.TargetConcepts {
			if drill[id] {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		s := scored{entry: e, matched: matched}
		if broad {
			s.relevance = float64(matched) / float64(len(drill))
		} else {
			s.relevance = float64(matched) / float64(len(e.TargetConcepts))
		}
		candidates = append(candidates, s)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.relevance != b.relevance {
			return a.relevance > b.relevance
		}
		if a.matched != b.matched {
			return a.matched > b.matched
		}
		na, nb := len(a.entry.TargetConcepts), len(b.entry.TargetConcepts)
		if na != nb {
			if broad {
				return na > nb
			}
			return na < nb
		}
		return a.entry.ID < b.entry.ID
	})

	out := make([]questionbank.Entry, len(candidates))
	for i, c := range candidates {
		out[i] = c.entry
	}
	return out
}
