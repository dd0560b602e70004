package selector

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/observability"
	"github.com/abhisek/polski/internal/srs"
)

// DrillMode selects the concept source of a drill.
type DrillMode string

const (
	DrillWeakness DrillMode = "weakness"
	DrillCourse   DrillMode = "course"
	DrillGroup    DrillMode = "group"
	DrillGroups   DrillMode = "groups"
)

// ParseDrillMode validates a drill mode name.
func ParseDrillMode(s string) (DrillMode, bool) {
	switch m := DrillMode(strings.ToLower(strings.TrimSpace(s))); m {
	case DrillWeakness, DrillCourse, DrillGroup, DrillGroups:
		return m, true
	}
	return "", false
}

// DrillRequest describes a user-directed drill.
type DrillRequest struct {
	Mode DrillMode

	// UserID is required for weakness drills.
	UserID string
	// CourseID is required for course drills.
	CourseID string
	// GroupIDs holds one group for group drills and any number for groups drills.
	GroupIDs []string

	// Max caps the selection; <= 0 means unlimited.
	Max int
}

// drillPriority is assigned to every drilled concept.
const drillPriority = 1.0

// SelectDrill returns the concepts of an explicit drill. Every concept has
// priority 1: drills ignore review urgency.
func (s *Selector) SelectDrill(ctx context.Context, req DrillRequest) (sel Selection) {
	var spanErr error
	ctx, span := observability.Start(ctx, "selector.drill",
		observability.UserID(req.UserID), observability.Mode(string(req.Mode)))
	defer func() {
		span.SetAttributes(observability.ConceptCount(len(sel.Concepts)))
		observability.End(span, spanErr)
	}()

	switch req.Mode {
	case DrillWeakness:
		sel, spanErr = s.drillWeakness(ctx, req)
	case DrillCourse:
		sel, spanErr = s.drillCourse(ctx, req)
	case DrillGroup:
		if len(req.GroupIDs) == 0 {
			return empty("No concept group was chosen for the drill.")
		}
		sel, spanErr = s.drillGroups(ctx, req.GroupIDs[:1], req.Max)
	case DrillGroups:
		sel, spanErr = s.drillGroups(ctx, req.GroupIDs, req.Max)
	default:
		return empty("Unknown drill mode %q.", req.Mode)
	}
	if !sel.Empty() {
		s.annotate(ctx, &sel)
		sel.Rationale += groupSummary(sel)
	}
	s.log.Info("drill selection", "mode", req.Mode, "user_id", req.UserID, "selected", len(sel.Concepts))
	return sel
}

// drillWeakness ranks every active concept by weakness. Concepts never
// practiced outrank everything with history. The drill helpers return the
// failure behind an empty selection, if any.
func (s *Selector) drillWeakness(ctx context.Context, req DrillRequest) (Selection, error) {
	// An empty user would match every learner's progress.
	if req.UserID == "" {
		return empty("No learner was given for the weakness drill."), nil
	}
	concepts, err := s.concepts.Find(ctx, catalog.ConceptFilter{ActiveOnly: true})
	if err != nil {
		s.log.Error("load concepts for weakness drill", "error", err)
		return empty("Could not load concepts for the weakness drill."), err
	}
	if len(concepts) == 0 {
		return empty("The concept catalog is empty."), nil
	}
	records, err := s.progress.All(ctx, req.UserID)
	if err != nil {
		s.log.Error("load progress for weakness drill", "user_id", req.UserID, "error", err)
		return empty("Could not load your progress for the weakness drill."), err
	}
	byConcept := make(map[string]*srs.Progress, len(records))
	for i := range records {
		byConcept[records[i].ConceptID] = &records[i]
	}

	scores := make(map[string]float64, len(concepts))
	ids := make([]string, len(concepts))
	unseen := 0
	for i, c := range concepts {
		p := byConcept[c.ID]
		if p == nil {
			unseen++
		}
		scores[c.ID] = srs.WeaknessScore(p, s.config.Weakness)
		ids[i] = c.ID
	}
	sortByScore(ids, scores)
	if req.Max > 0 && len(ids) > req.Max {
		ids = ids[:req.Max]
	}

	byID := catalog.ByID(concepts)
	selected := make([]catalog.Concept, len(ids))
	for i, id := range ids {
		selected[i] = byID[id]
	}
	return Selection{
		Concepts:   selected,
		Priorities: uniform(selected),
		Rationale: fmt.Sprintf("Weakest %d of %d concepts (%d not yet practiced).",
			len(selected), len(concepts), unseen),
	}, nil
}

func (s *Selector) drillCourse(ctx context.Context, req DrillRequest) (Selection, error) {
	if req.CourseID == "" {
		return empty("No course was chosen for the drill."), nil
	}
	concepts, _, err := s.courseConcepts(ctx, req.CourseID, req.Max)
	if err != nil {
		s.log.Error("load course concepts", "course_id", req.CourseID, "error", err)
		return empty("Could not load concepts for course %q.", req.CourseID), err
	}
	if len(concepts) == 0 {
		return empty("Course %q has no concepts mapped to it yet.", req.CourseID), nil
	}
	return Selection{
		Concepts:   concepts,
		Priorities: uniform(concepts),
		Rationale:  fmt.Sprintf("Drilling %d concepts of course %q.", len(concepts), req.CourseID),
	}, nil
}

// drillGroups drills the union of the groups' members, in group order,
// without duplicates.
func (s *Selector) drillGroups(ctx context.Context, groupIDs []string, max int) (Selection, error) {
	if s.groups == nil || len(groupIDs) == 0 {
		return empty("No concept groups were chosen for the drill."), nil
	}
	groups, err := s.loadGroups(ctx, groupIDs)
	if err != nil {
		s.log.Error("load drill groups", "group_ids", groupIDs, "error", err)
		return empty("Could not load the chosen concept groups."), err
	}
	if len(groups) == 0 {
		return empty("The chosen concept groups do not exist."), nil
	}

	seen := make(map[string]bool)
	var ids []string
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
		for _, id := range g.MemberConcepts {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	concepts, err := s.resolve(ctx, ids)
	if err != nil {
		s.log.Error("load group concepts", "error", err)
		return empty("Could not load the concepts of %s.", strings.Join(names, ", ")), err
	}
	if len(concepts) == 0 {
		return empty("%s has no active concepts.", strings.Join(names, ", ")), nil
	}
	if max > 0 && len(concepts) > max {
		concepts = concepts[:max]
	}
	return Selection{
		Concepts:   concepts,
		Priorities: uniform(concepts),
		Rationale:  fmt.Sprintf("Drilling %d concepts from %s.", len(concepts), strings.Join(names, ", ")),
	}, nil
}

// loadGroups returns the active groups in the order of ids.
func (s *Selector) loadGroups(ctx context.Context, ids []string) ([]catalog.ConceptGroup, error) {
	if len(ids) == 1 {
		g, err := s.groups.FindOne(ctx, ids[0])
		if err != nil || g == nil || !g.Active {
			return nil, err
		}
		return []catalog.ConceptGroup{*g}, nil
	}
	found, err := s.groups.Find(ctx, catalog.GroupFilter{IDs: ids, ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]catalog.ConceptGroup, len(found))
	for _, g := range found {
		byID[g.ID] = g
	}
	out := make([]catalog.ConceptGroup, 0, len(found))
	for _, id := range ids {
		if g, ok := byID[id]; ok {
			out = append(out, g)
			delete(byID, id)
		}
	}
	return out, nil
}

func uniform(concepts []catalog.Concept) map[string]float64 {
	out := make(map[string]float64, len(concepts))
	for _, c := range concepts {
		out[c.ID] = drillPriority
	}
	return out
}
