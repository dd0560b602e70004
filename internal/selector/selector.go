package selector

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/logger"
	"github.com/abhisek/polski/internal/observability"
	"github.com/abhisek/polski/internal/srs"
)

// ProgressSource is the slice of the SRS scheduler the selector needs.
// *srs.Scheduler satisfies it.
type ProgressSource interface {
	DueForReview(ctx context.Context, userID string, now time.Time) ([]srs.Progress, error)
	All(ctx context.Context, userID string) ([]srs.Progress, error)
	InitConcepts(ctx context.Context, userID string, conceptIDs []string) ([]srs.Progress, error)
}

// Config tunes the selection policies.
type Config struct {
	// DefaultMax applies when a caller passes max <= 0 to the adaptive
	// and course policies.
	DefaultMax int `yaml:"default_max"`

	// BootstrapLevel is the level new learners start at.
	BootstrapLevel catalog.Level `yaml:"bootstrap_level"`

	Priority srs.PriorityWeights `yaml:"priority"`
	Weakness srs.WeaknessWeights `yaml:"weakness"`
}

// DefaultConfig returns the standard selection settings.
func DefaultConfig() Config {
	return Config{
		DefaultMax:     5,
		BootstrapLevel: catalog.LevelA1,
		Priority:       srs.DefaultPriorityWeights(),
		Weakness:       srs.DefaultWeaknessWeights(),
	}
}

// Selector picks the concepts of a practice session.
type Selector struct {
	concepts catalog.ConceptRepo
	groups   catalog.GroupRepo
	courses  catalog.CourseRepo
	progress ProgressSource
	config   Config
	log      *logger.Logger

	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// New creates a Selector. groups may be nil, which disables group
// annotation and group drills.
func New(concepts catalog.ConceptRepo, groups catalog.GroupRepo, courses catalog.CourseRepo,
	progress ProgressSource, cfg Config, log *logger.Logger) *Selector {
	return &Selector{
		concepts: concepts,
		groups:   groups,
		courses:  courses,
		progress: progress,
		config:   cfg,
		log:      logger.OrNop(log).With("component", "selector"),
		Now:      time.Now,
	}
}

// SelectPracticeConcepts is the adaptive policy: the most urgent due and
// overdue concepts, or a starter set for a learner with nothing due.
func (s *Selector) SelectPracticeConcepts(ctx context.Context, userID string, max int) (sel Selection) {
	var spanErr error
	ctx, span := observability.Start(ctx, "selector.adaptive", observability.UserID(userID))
	defer func() {
		span.SetAttributes(observability.ConceptCount(len(sel.Concepts)))
		observability.End(span, spanErr)
	}()

	if max <= 0 {
		max = s.config.DefaultMax
	}
	now := s.Now()

	due, err := s.progress.DueForReview(ctx, userID, now)
	if err != nil {
		s.log.Error("load due concepts", "user_id", userID, "error", err)
		spanErr = err
		return empty("Could not load your review schedule.")
	}
	if len(due) == 0 {
		sel, spanErr = s.bootstrap(ctx, userID, max)
		return sel
	}

	priorities := make(map[string]float64, len(due))
	overdue := 0
	for _, p := range due {
		priorities[p.ConceptID] = srs.CalculatePriority(p, now, s.config.Priority)
		if p.IsOverdue(now) {
			overdue++
		}
	}
	ids := make([]string, 0, len(due))
	for _, p := range due {
		ids = append(ids, p.ConceptID)
	}
	sortByScore(ids, priorities)

	// Resolve every due id so inactive concepts do not shrink the session.
	concepts, err := s.resolve(ctx, ids)
	if err != nil {
		s.log.Error("load due concepts", "user_id", userID, "error", err)
		spanErr = err
		return empty("Could not load the concepts due for review.")
	}
	if len(concepts) == 0 {
		return empty("No active concepts are due for review.")
	}
	concepts = concepts[:min(max, len(concepts))]

	sel = Selection{Concepts: concepts, Priorities: pick(priorities, concepts)}
	s.annotate(ctx, &sel)
	sel.Rationale = fmt.Sprintf("%d concepts due for review (%d overdue); practicing the %d most urgent.",
		len(due), overdue, len(concepts)) + groupSummary(sel)

	s.log.Info("adaptive selection", "user_id", userID, "due", len(due), "overdue", overdue, "selected", len(concepts))
	return sel
}

// bootstrap starts a learner on concepts they have not seen, preferring
// the bootstrap level, and creates their progress records. The error is
// the failure behind an empty selection, if any.
func (s *Selector) bootstrap(ctx context.Context, userID string, max int) (Selection, error) {
	var seen []string
	if all, err := s.progress.All(ctx, userID); err != nil {
		s.log.Warn("load progress for bootstrap", "user_id", userID, "error", err)
	} else {
		for _, p := range all {
			seen = append(seen, p.ConceptID)
		}
	}

	concepts, err := s.concepts.Find(ctx, catalog.ConceptFilter{
		Difficulty: s.config.BootstrapLevel,
		ActiveOnly: true,
		ExcludeIDs: seen,
		Limit:      max,
	})
	level := string(s.config.BootstrapLevel) + " "
	if err == nil && len(concepts) == 0 {
		level = ""
		concepts, err = s.concepts.Find(ctx, catalog.ConceptFilter{ActiveOnly: true, ExcludeIDs: seen, Limit: max})
	}
	if err != nil {
		s.log.Error("load starter concepts", "user_id", userID, "error", err)
		return empty("Could not load starter concepts."), err
	}
	if len(concepts) == 0 {
		if len(seen) > 0 {
			return empty("Nothing is due for review and every concept has been introduced. Come back later."), nil
		}
		return empty("The concept catalog is empty."), nil
	}

	records, err := s.progress.InitConcepts(ctx, userID, catalog.IDs(concepts))
	if err != nil {
		s.log.Error("init progress", "user_id", userID, "error", err)
		return empty("Could not start tracking new concepts."), err
	}
	now := s.Now()
	priorities := make(map[string]float64, len(records))
	for _, p := range records {
		priorities[p.ConceptID] = srs.CalculatePriority(p, now, s.config.Priority)
	}

	sel := Selection{Concepts: concepts, Priorities: priorities}
	s.annotate(ctx, &sel)
	// "new" only holds when earlier concepts were excluded.
	if len(seen) > 0 {
		sel.Rationale = fmt.Sprintf("Nothing due for review; introducing %d new %sconcepts: %s.",
			len(concepts), level, conceptNames(concepts))
	} else {
		sel.Rationale = fmt.Sprintf("Nothing due for review; starting with %d %sconcepts: %s.",
			len(concepts), level, conceptNames(concepts))
	}
	sel.Rationale += groupSummary(sel)
	s.log.Info("bootstrap selection", "user_id", userID, "selected", len(concepts), "seen", len(seen))
	return sel, nil
}

// SelectFromCourse returns the concepts mapped to a course, highest
// extraction confidence first. Priorities are the confidences.
func (s *Selector) SelectFromCourse(ctx context.Context, courseID string, max int) (sel Selection) {
	var spanErr error
	ctx, span := observability.Start(ctx, "selector.course")
	defer func() {
		span.SetAttributes(observability.ConceptCount(len(sel.Concepts)))
		observability.End(span, spanErr)
	}()

	if max <= 0 {
		max = s.config.DefaultMax
	}
	concepts, confidences, err := s.courseConcepts(ctx, courseID, max)
	if err != nil {
		s.log.Error("load course concepts", "course_id", courseID, "error", err)
		spanErr = err
		return empty("Could not load concepts for course %q.", courseID)
	}
	if len(concepts) == 0 {
		return empty("Course %q has no concepts mapped to it yet.", courseID)
	}

	sel = Selection{Concepts: concepts, Priorities: confidences}
	s.annotate(ctx, &sel)
	sel.Rationale = fmt.Sprintf("Top %d concepts of course %q by extraction confidence.", len(concepts), courseID) +
		groupSummary(sel)
	return sel
}

// courseConcepts returns active concepts of a course in confidence order
// with their confidences, capped at max when max > 0.
func (s *Selector) courseConcepts(ctx context.Context, courseID string, max int) ([]catalog.Concept, map[string]float64, error) {
	mappings, err := s.courses.Find(ctx, catalog.CourseFilter{CourseIDs: []string{courseID}, ActiveOnly: true})
	if err != nil {
		return nil, nil, err
	}
	confidences := make(map[string]float64, len(mappings))
	ids := make([]string, 0, len(mappings))
	for _, m := range mappings {
		if _, dup := confidences[m.ConceptID]; dup {
			continue
		}
		confidences[m.ConceptID] = m.Confidence
		ids = append(ids, m.ConceptID)
	}
	concepts, err := s.resolve(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	if max > 0 && len(concepts) > max {
		concepts = concepts[:max]
	}
	return concepts, pick(confidences, concepts), nil
}

// resolve loads the active concepts for ids, preserving the order of ids.
func (s *Selector) resolve(ctx context.Context, ids []string) ([]catalog.Concept, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.concepts.Find(ctx, catalog.ConceptFilter{IDs: ids, ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	byID := catalog.ByID(found)
	out := make([]catalog.Concept, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			out = append(out, c)
			delete(byID, id)
		}
	}
	return out, nil
}

// annotate attaches group membership. Failures only lose the annotation.
func (s *Selector) annotate(ctx context.Context, sel *Selection) {
	if s.groups == nil || len(sel.Concepts) == 0 {
		sel.Ungrouped = sel.IDs()
		return
	}
	groups, err := s.groups.Find(ctx, catalog.GroupFilter{ContainingAny: sel.IDs(), ActiveOnly: true})
	if err != nil {
		s.log.Warn("load concept groups", "error", err)
		sel.Ungrouped = sel.IDs()
		return
	}
	annotateGroups(sel, groups)
}

// sortByScore orders ids by score descending, then by id.
func sortByScore(ids []string, scores map[string]float64) {
	sort.SliceStable(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
}

// pick restricts scores to the given concepts.
func pick(scores map[string]float64, concepts []catalog.Concept) map[string]float64 {
	out := make(map[string]float64, len(concepts))
	for _, c := range concepts {
		out[c.ID] = scores[c.ID]
	}
	return out
}
