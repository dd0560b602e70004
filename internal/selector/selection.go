package selector

import (
	"fmt"
	"strings"

	"github.com/abhisek/polski/internal/catalog"
)

// Selection is the result of every selection policy. An empty selection
// is a valid result and always carries a Rationale.
type Selection struct {
	// Concepts are ordered most important first.
	Concepts []catalog.Concept

	// Priorities maps concept id to the score that ordered it.
	Priorities map[string]float64

	// Rationale explains the choice to the learner. Never empty.
	Rationale string

	// Groups lists the concept groups the selected concepts belong to.
	// Ungrouped holds selected concepts that belong to no group.
	Groups    []GroupMembers
	Ungrouped []string
}

// GroupMembers is a concept group with the selected concepts it contains.
type GroupMembers struct {
	Group      catalog.ConceptGroup
	ConceptIDs []string
}

// IDs returns the ids of the selected concepts in order.
func (s Selection) IDs() []string {
	return catalog.IDs(s.Concepts)
}

// Empty reports whether nothing was selected.
func (s Selection) Empty() bool {
	return len(s.Concepts) == 0
}

func empty(format string, args ...any) Selection {
	return Selection{
		Concepts:   []catalog.Concept{},
		Priorities: map[string]float64{},
		Rationale:  fmt.Sprintf(format, args...),
	}
}

// annotateGroups splits the selection into grouped and ungrouped concepts.
// Membership is presentational only; it never changes Concepts.
func annotateGroups(sel *Selection, groups []catalog.ConceptGroup) {
	selected := make(map[string]bool, len(sel.Concepts))
	for _, c := range sel.Concepts {
		selected[c.ID] = true
	}
	grouped := make(map[string]bool)
	for _, g := range groups {
		var members []string
		for _, id := range g.MemberConcepts {
			if selected[id] {
				members = append(members, id)
				grouped[id] = true
			}
		}
		if len(members) > 0 {
			sel.Groups = append(sel.Groups, GroupMembers{Group: g, ConceptIDs: members})
		}
	}
	for _, c := range sel.Concepts {
		if !grouped[c.ID] {
			sel.Ungrouped = append(sel.Ungrouped, c.ID)
		}
	}
}

func groupSummary(sel Selection) string {
	if len(sel.Groups) == 0 {
		return ""
	}
	names := make([]string, len(sel.Groups))
	for i, g := range sel.Groups {
		names[i] = g.Group.Name
	}
	return fmt.Sprintf(" Groups: %s; %d ungrouped.", strings.Join(names, ", "), len(sel.Ungrouped))
}

func conceptNames(concepts []catalog.Concept) string {
	names := make([]string, len(concepts))
	for i, c := range concepts {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}
