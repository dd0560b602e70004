package provision

import (
	"context"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/questionbank"
)

// tier is one step of the PREVIOUS fallback chain.
type tier struct {
	name   string
	filter func(ctx context.Context) (questionbank.Filter, bool)
	order  questionbank.Order
}

// previous replays questions the learner has seen. Tiers are tried in
// order and their results accumulated until max is reached:
// the requested concepts, due concepts, concepts with progress, any
// active concept, every served question, and finally every active one.
func (p *Provisioner) previous(ctx context.Context, c *call, userID string, ids []string, max int) []questionbank.Entry {
	used := func(concepts []string) (questionbank.Filter, bool) {
		return questionbank.Filter{ConceptsAny: concepts, ActiveOnly: true, UsedOnly: true}, len(concepts) > 0
	}
	tiers := []tier{
		{"requested", func(context.Context) (questionbank.Filter, bool) { return used(ids) }, questionbank.OrderRecentlyUsed},
		{"due", func(ctx context.Context) (questionbank.Filter, bool) {
			return used(p.dueConcepts(ctx, c, userID))
		}, questionbank.OrderRecentlyUsed},
		{"practiced", func(ctx context.Context) (questionbank.Filter, bool) {
			return used(p.practicedConcepts(ctx, c, userID))
		}, questionbank.OrderRecentlyUsed},
		{"active-concepts", func(ctx context.Context) (questionbank.Filter, bool) {
			return used(p.activeConcepts(ctx, c))
		}, questionbank.OrderRecentlyUsed},
		{"all-previous", func(context.Context) (questionbank.Filter, bool) {
			return questionbank.Filter{ActiveOnly: true, UsedOnly: true}, true
		}, questionbank.OrderRecentlyUsed},
		{"all-available", func(context.Context) (questionbank.Filter, bool) {
			return questionbank.Filter{ActiveOnly: true}, true
		}, questionbank.OrderNewest},
	}

	out := []questionbank.Entry{}
	seen := make(map[string]bool)
	for _, t := range tiers {
		if len(out) >= max {
			break
		}
		f, ok := t.filter(ctx)
		if !ok {
			continue
		}
		found, err := p.questions.Find(ctx, f, t.order, 0)
		if err != nil {
			c.warn("previous-question tier failed", err, "tier", t.name)
			continue
		}
		added := 0
		for _, e := range found {
			if len(out) >= max {
				break
			}
			if !seen[e.ID] {
				seen[e.ID] = true
				out = append(out, e)
				added++
			}
		}
		c.log.Debug("previous-question tier", "tier", t.name, "found", len(found), "added", added)
	}
	return out
}

func (p *Provisioner) dueConcepts(ctx context.Context, c *call, userID string) []string {
	if p.progress == nil || userID == "" {
		return nil
	}
	due, err := p.progress.DueForReview(ctx, userID, p.Now())
	if err != nil {
		c.warn("load due concepts", err)
		return nil
	}
	ids := make([]string, len(due))
	for i, r := range due {
		ids[i] = r.ConceptID
	}
	return ids
}

func (p *Provisioner) practicedConcepts(ctx context.Context, c *call, userID string) []string {
	if p.progress == nil || userID == "" {
		return nil
	}
	all, err := p.progress.All(ctx, userID)
	if err != nil {
		c.warn("load progress", err)
		return nil
	}
	ids := make([]string, 0, len(all))
	for _, r := range all {
		if r.TotalAttempts > 0 {
			ids = append(ids, r.ConceptID)
		}
	}
	return ids
}

func (p *Provisioner) activeConcepts(ctx context.Context, c *call) []string {
	concepts, err := p.concepts.Find(ctx, catalog.ConceptFilter{ActiveOnly: true})
	if err != nil {
		c.warn("load active concepts", err)
		return nil
	}
	return catalog.IDs(concepts)
}
