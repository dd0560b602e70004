package provision

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/logger"
	"github.com/abhisek/polski/internal/observability"
	"github.com/abhisek/polski/internal/questionbank"
	"github.com/abhisek/polski/internal/questiongen"
	"github.com/abhisek/polski/internal/srs"
)

// ProgressSource is the slice of the SRS scheduler PREVIOUS mode needs.
// *srs.Scheduler satisfies it.
type ProgressSource interface {
	DueForReview(ctx context.Context, userID string, now time.Time) ([]srs.Progress, error)
	All(ctx context.Context, userID string) ([]srs.Progress, error)
}

// Config tunes provisioning.
type Config struct {
	DefaultMaxQuestions int `yaml:"default_max_questions"`

	// GenerationTypes are the question types used to fill a shortfall.
	// The shortfall is spread evenly across them.
	GenerationTypes []questionbank.QuestionType `yaml:"generation_types"`

	// MaxParallel bounds concurrent generation calls.
	MaxParallel int `yaml:"max_parallel"`
}

// DefaultConfig returns the standard provisioning settings.
func DefaultConfig() Config {
	return Config{
		DefaultMaxQuestions: 10,
		GenerationTypes:     questionbank.MomentaryTypes,
		MaxParallel:         4,
	}
}

// Provisioner returns questions for a practice session, reusing stored
// questions first and generating only the shortfall.
type Provisioner struct {
	questions questionbank.Repo
	concepts  catalog.ConceptRepo
	progress  ProgressSource
	generator questiongen.Generator
	config    Config
	log       *logger.Logger

	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// New creates a Provisioner. generator may be nil, in which case
// shortfalls are left unfilled.
func New(questions questionbank.Repo, concepts catalog.ConceptRepo, progress ProgressSource,
	generator questiongen.Generator, cfg Config, log *logger.Logger) *Provisioner {
	return &Provisioner{
		questions: questions,
		concepts:  concepts,
		progress:  progress,
		generator: generator,
		config:    cfg,
		log:       logger.OrNop(log).With("component", "provision"),
		Now:       time.Now,
	}
}

// InferDifficulty returns the hardest CEFR level among the concepts, so
// generated questions are never easier than the hardest target.
func InferDifficulty(concepts []catalog.Concept) catalog.Level {
	return catalog.Highest(concepts)
}

// Provision returns up to MaxQuestions entries. It never fails: store and
// generation errors are logged and whatever was gathered is returned.
func (p *Provisioner) Provision(ctx context.Context, req Request) (out []questionbank.Entry) {
	ids := dedup(req.ConceptIDs)
	ctx, span := observability.Start(ctx, "provision.questions",
		observability.UserID(req.UserID),
		observability.Mode(string(req.Mode)),
		observability.ConceptCount(len(ids)),
	)
	c := &call{log: p.log.With("user_id", req.UserID, "mode", req.Mode)}
	defer func() {
		span.SetAttributes(observability.QuestionCount(len(out)))
		observability.End(span, c.firstErr())
	}()

	max := req.MaxQuestions
	if max <= 0 {
		max = p.config.DefaultMaxQuestions
	}

	switch req.Mode {
	case ModeDrill:
		if len(ids) == 0 {
			c.log.Info("drill without concepts, returning nothing")
			return []questionbank.Entry{}
		}
		out = p.drill(ctx, c, ids, max)
	case ModePrevious:
		out = p.previous(ctx, c, req.UserID, ids, max)
	default:
		if len(ids) == 0 {
			out = p.anyActive(ctx, c, max)
			break
		}
		out = p.normal(ctx, c, ids, max)
	}
	if out == nil {
		out = []questionbank.Entry{}
	}

	c.log.Info("provisioned questions", "concepts", len(ids), "requested", max, "returned", len(out))
	return out
}

// normal prefers manual and generated entries, pads with momentary ones,
// then generates whatever is still missing.
func (p *Provisioner) normal(ctx context.Context, c *call, ids []string, max int) []questionbank.Entry {
	durable, err := p.questions.Find(ctx, questionbank.Filter{
		ConceptsAny: ids,
		Sources:     []questionbank.Source{questionbank.SourceManual, questionbank.SourceGenerated},
		ActiveOnly:  true,
	}, questionbank.OrderQuality, max)
	if err != nil {
		c.error("load curated questions", err)
		return []questionbank.Entry{}
	}
	out := durable
	if len(out) < max {
		momentary, err := p.questions.Find(ctx, questionbank.Filter{
			ConceptsAny: ids,
			Sources:     []questionbank.Source{questionbank.SourceMomentary},
			ActiveOnly:  true,
		}, questionbank.OrderQuality, max-len(out))
		if err != nil {
			c.error("load momentary questions", err)
			return out
		}
		out = append(out, momentary...)
	}
	if len(out) < max {
		out = append(out, p.fill(ctx, c, ids, max-len(out), out)...)
	}
	return out
}

// drill serves only questions overlapping the drill set, most relevant
// first, and generates for the exact drill set.
func (p *Provisioner) drill(ctx context.Context, c *call, ids []string, max int) []questionbank.Entry {
	pool, err := p.questions.Find(ctx, questionbank.Filter{ConceptsAny: ids, ActiveOnly: true},
		questionbank.OrderNewest, 0)
	if err != nil {
		c.error("load drill questions", err)
		return []questionbank.Entry{}
	}
	out := rankDrill(pool, ids)
	if len(out) >= max {
		return out[:max]
	}
	return append(out, p.fill(ctx, c, ids, max-len(out), out)...)
}

func (p *Provisioner) anyActive(ctx context.Context, c *call, max int) []questionbank.Entry {
	out, err := p.questions.Find(ctx, questionbank.Filter{ActiveOnly: true}, questionbank.OrderNewest, max)
	if err != nil {
		c.error("load questions", err)
		return []questionbank.Entry{}
	}
	return out
}

// call is one Provision request: its logger and the first failure logged
// while serving it, which ends up on the span.
type call struct {
	log *logger.Logger

	mu  sync.Mutex
	err error
}

func (c *call) error(msg string, err error, keysAndValues ...any) {
	c.log.Error(msg, append(keysAndValues, "error", err)...)
	c.keep(err)
}

func (c *call) warn(msg string, err error, keysAndValues ...any) {
	c.log.Warn(msg, append(keysAndValues, "error", err)...)
	c.keep(err)
}

func (c *call) keep(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		c.err = err
	}
}

func (c *call) firstErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func dedup(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
