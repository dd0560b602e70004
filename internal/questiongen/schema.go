package questiongen

import (
	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/llm"
	"github.com/abhisek/polski/internal/questionbank"
)

// QuestionSchema is the structured output the model must return.
var QuestionSchema = &llm.Schema{
	Name:        "polish-questions",
	Description: "A batch of Polish language practice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "Prompt shown to the learner. Cloze gaps are written as ___",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct answer. Multiple answers are separated by ;",
						},
						"type": map[string]any{
							"type": "string",
							"enum": enumOf(questionbank.AllTypes),
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": enumOf(catalog.Levels),
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Choices for choice-based types, empty otherwise",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences on why the answer is correct, in English",
						},
					},
					"required":             []any{"question", "correct_answer", "type", "difficulty", "options", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

func enumOf[T ~string](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
