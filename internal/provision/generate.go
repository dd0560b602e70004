package provision

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/questionbank"
	"github.com/abhisek/polski/internal/questiongen"
)

// fill generates up to n momentary questions targeting exactly ids and
// persists the ones that pass the option check. Failures of one type or
// one question are logged and skipped.
func (p *Provisioner) fill(ctx context.Context, c *call, ids []string, n int, have []questionbank.Entry) []questionbank.Entry {
	if p.generator == nil || n <= 0 || len(p.config.GenerationTypes) == 0 {
		return nil
	}
	concepts, err := p.concepts.Find(ctx, catalog.ConceptFilter{IDs: ids, ActiveOnly: true})
	if err != nil {
		c.error("load concepts for generation", err)
		return nil
	}
	if len(concepts) == 0 {
		c.log.Warn("no active concepts to generate for", "concept_ids", ids)
		return nil
	}
	difficulty := InferDifficulty(concepts)

	prior := make([]string, len(have))
	for i, e := range have {
		prior[i] = e.Question
	}

	types := p.config.GenerationTypes
	counts := spread(n, len(types))
	batches := make([][]questiongen.Generated, len(types))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.config.MaxParallel, 1))
	for i, t := range types {
		if counts[i] == 0 {
			continue
		}
		g.Go(func() error {
			qs, err := p.generator.Generate(gctx, questiongen.Request{
				Concepts:       concepts,
				Type:           t,
				Difficulty:     difficulty,
				Quantity:       counts[i],
				PriorQuestions: prior,
			})
			if err != nil {
				c.warn("question generation failed", err, "type", t, "quantity", counts[i])
				return nil
			}
			batches[i] = qs
			return nil
		})
	}
	_ = g.Wait()

	now := p.Now()
	var out []questionbank.Entry
	for i, qs := range batches {
		for j, q := range qs {
			if j >= counts[i] || len(out) >= n {
				break
			}
			if err := questiongen.HasEnoughOptions(q.Type, q.Options); err != nil {
				c.log.Debug("discarding generated question", "type", q.Type, "reason", err)
				continue
			}
			saved, err := p.questions.Create(ctx, questionbank.Entry{
				Question:       q.Question,
				CorrectAnswer:  q.CorrectAnswer,
				Type:           q.Type,
				TargetConcepts: append([]string(nil), ids...),
				Difficulty:     q.Difficulty,
				CreatedAt:      now,
				Active:         true,
				Source:         questionbank.SourceMomentary,
				Options:        q.Options,
				Media:          q.Media,
			})
			if err != nil {
				c.warn("save generated question", err, "type", q.Type)
				continue
			}
			out = append(out, saved)
		}
	}
	c.log.Info("filled shortfall", "wanted", n, "generated", len(out))
	return out
}

// spread divides n across k buckets as evenly as possible, earlier
// buckets taking the remainder.
func spread(n, k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = n / k
		if i < n%k {
			out[i]++
		}
	}
	return out
}
