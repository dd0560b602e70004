package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/polski/internal/briefing"
	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/llm"
	"github.com/abhisek/polski/internal/logger"
	"github.com/abhisek/polski/internal/questionbank"
)

// Briefer renders the concept briefing that heads every prompt.
// *briefing.Builder satisfies it.
type Briefer interface {
	Build(ctx context.Context, conceptIDs []string) (string, error)
}

// LLMGenerator implements Generator on top of an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	briefer  Briefer
	config   Config
	log      *logger.Logger
}

// New creates an LLMGenerator. briefer may be nil, in which case the
// briefing is rendered from the request's concepts alone.
func New(provider llm.Provider, briefer Briefer, cfg Config, log *logger.Logger) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		briefer:  briefer,
		config:   cfg,
		log:      logger.OrNop(log).With("component", "questiongen"),
	}
}

type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	Type          string   `json:"type"`
	Difficulty    string   `json:"difficulty"`
	Options       []string `json:"options"`
	Explanation   string   `json:"explanation"`
}

// Generate asks the model for a batch of questions and returns the ones
// that pass every validator.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) ([]Generated, error) {
	if len(req.Concepts) == 0 {
		return nil, errors.New("no concepts to generate for")
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("unknown question type %q", req.Type)
	}
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	if g.config.MaxQuantity > 0 {
		quantity = min(quantity, g.config.MaxQuantity)
	}
	req.Quantity = quantity
	if !req.Difficulty.Valid() {
		req.Difficulty = catalog.Highest(req.Concepts)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(req, g.brief(ctx, req), g.config)}},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	targets := catalog.IDs(req.Concepts)
	out := make([]Generated, 0, len(raw.Questions))
	for _, item := range raw.Questions {
		if len(out) == quantity {
			break
		}
		q := Generated{
			Question:       item.Question,
			CorrectAnswer:  item.CorrectAnswer,
			Type:           questionbank.QuestionType(item.Type),
			Difficulty:     catalog.Level(item.Difficulty),
			Options:        item.Options,
			Explanation:    item.Explanation,
			TargetConcepts: targets,
		}
		if verr := Validate(&q, req, g.config.Validators...); verr != nil {
			g.log.Debug("dropping generated question", "type", req.Type, "reason", verr.Error())
			continue
		}
		out = append(out, q)
	}
	g.log.Debug("generated questions", "type", req.Type, "requested", quantity,
		"returned", len(raw.Questions), "accepted", len(out))
	return out, nil
}

// brief returns the concept briefing, falling back to a local rendering
// when the builder fails or is absent.
func (g *LLMGenerator) brief(ctx context.Context, req Request) string {
	if g.briefer != nil {
		text, err := g.briefer.Build(ctx, catalog.IDs(req.Concepts))
		if err == nil {
			return text
		}
		g.log.Warn("briefing failed, using target concepts only", "error", err)
	}
	return briefing.Render(req.Concepts, nil, g.config.MaxExamples)
}
