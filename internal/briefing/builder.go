package briefing

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/logger"
)

// ErrNoConcepts is returned when none of the requested concepts exist.
var ErrNoConcepts = errors.New("no target concepts found")

// Config bounds the size of a briefing.
type Config struct {
	MaxContextConcepts int `yaml:"max_context_concepts"`
	MaxExamples        int `yaml:"max_examples"`

	// Seed fixes the category-fallback sampling. Zero picks a random seed per build.
	Seed uint64 `yaml:"-"`
}

// DefaultConfig returns the standard briefing limits.
func DefaultConfig() Config {
	return Config{MaxContextConcepts: 3, MaxExamples: 3}
}

// Builder assembles the text briefing handed to the question generator.
type Builder struct {
	concepts catalog.ConceptRepo
	groups   catalog.GroupRepo
	cfg      Config
	log      *logger.Logger
}

// NewBuilder creates a Builder. groups may be nil, in which case context
// concepts always come from the same-category fallback.
func NewBuilder(concepts catalog.ConceptRepo, groups catalog.GroupRepo, cfg Config, log *logger.Logger) *Builder {
	return &Builder{
		concepts: concepts,
		groups:   groups,
		cfg:      cfg,
		log:      logger.OrNop(log).With("component", "briefing"),
	}
}

// Build returns the briefing for the given target concepts.
func (b *Builder) Build(ctx context.Context, conceptIDs []string) (string, error) {
	if len(conceptIDs) == 0 {
		return "", ErrNoConcepts
	}
	targets, err := b.concepts.Find(ctx, catalog.ConceptFilter{IDs: conceptIDs})
	if err != nil {
		return "", fmt.Errorf("load target concepts: %w", err)
	}
	if len(targets) == 0 {
		return "", ErrNoConcepts
	}
	related := b.contextConcepts(ctx, targets)
	return Render(targets, related, b.cfg.MaxExamples), nil
}

// contextConcepts prefers concepts sharing a group with the targets and
// falls back to sampling the targets' categories. Lookup failures are
// logged and degrade to the fallback.
func (b *Builder) contextConcepts(ctx context.Context, targets []catalog.Concept) []catalog.Concept {
	limit := b.cfg.MaxContextConcepts
	if limit <= 0 {
		return nil
	}
	targetIDs := catalog.IDs(targets)

	if b.groups != nil {
		related, err := b.fromGroups(ctx, targetIDs, limit)
		if err != nil {
			b.log.Warn("group lookup failed, using category fallback", "error", err)
		} else if len(related) > 0 {
			return related
		}
	}

	related, err := b.fromCategories(ctx, targets, limit)
	if err != nil {
		b.log.Warn("category fallback failed, building without context concepts", "error", err)
		return nil
	}
	return related
}

func (b *Builder) fromGroups(ctx context.Context, targetIDs []string, limit int) ([]catalog.Concept, error) {
	groups, err := b.groups.Find(ctx, catalog.GroupFilter{ContainingAny: targetIDs, ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	exclude := toSet(targetIDs)
	var memberIDs []string
	for _, g := range groups {
		for _, id := range g.MemberConcepts {
			if _, skip := exclude[id]; skip {
				continue
			}
			exclude[id] = struct{}{}
			memberIDs = append(memberIDs, id)
		}
	}
	if len(memberIDs) == 0 {
		return nil, nil
	}
	related, err := b.concepts.Find(ctx, catalog.ConceptFilter{IDs: memberIDs, ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	return related[:min(limit, len(related))], nil
}

func (b *Builder) fromCategories(ctx context.Context, targets []catalog.Concept, limit int) ([]catalog.Concept, error) {
	seed := b.cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))
	targetIDs := catalog.IDs(targets)

	var pool []catalog.Concept
	for _, cat := range categoriesOf(targets) {
		found, err := b.concepts.Find(ctx, catalog.ConceptFilter{
			Category:   cat,
			ActiveOnly: true,
			ExcludeIDs: targetIDs,
		})
		if err != nil {
			return nil, err
		}
		pool = append(pool, found...)
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:min(limit, len(pool))], nil
}

// Render formats the briefing text. Each concept lists at most maxExamples examples.
func Render(targets, related []catalog.Concept, maxExamples int) string {
	var sb strings.Builder

	sb.WriteString("Target concepts:\n")
	for i, c := range targets {
		fmt.Fprintf(&sb, "%d. %s (%s, %s)\n", i+1, c.Name, c.Category, c.Difficulty)
		if c.Description != "" {
			fmt.Fprintf(&sb, "   %s\n", c.Description)
		}
		if ex := limitExamples(c.Examples, maxExamples); len(ex) > 0 {
			fmt.Fprintf(&sb, "   Examples: %s\n", strings.Join(ex, "; "))
		}
	}

	if len(related) > 0 {
		sb.WriteString("\nContext concepts (may appear, must not be tested):\n")
		for _, c := range related {
			fmt.Fprintf(&sb, "- %s (%s)", c.Name, c.Category)
			if c.Description != "" {
				fmt.Fprintf(&sb, ": %s", c.Description)
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\nSession objectives:\n")
	for _, o := range SessionObjectives(targets) {
		fmt.Fprintf(&sb, "- %s\n", o)
	}

	if len(targets) > 1 {
		sb.WriteString("\nInterleaving:\n")
		sb.WriteString("Mix the target concepts within and across questions. Do not group questions by concept. ")
		sb.WriteString("Where natural, make a single question require telling two target concepts apart.\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

func limitExamples(examples []string, max int) []string {
	if max >= 0 && len(examples) > max {
		return examples[:max]
	}
	return examples
}

func categoriesOf(concepts []catalog.Concept) []catalog.Category {
	seen := make(map[catalog.Category]bool)
	var out []catalog.Category
	for _, c := range concepts {
		if !seen[c.Category] {
			seen[c.Category] = true
			out = append(out, c.Category)
		}
	}
	return out
}

func toSet(ids []string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}
