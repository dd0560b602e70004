package questiongen

import "github.com/abhisek/polski/internal/briefing"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated item. The first failure
	// drops the item.
	Validators []Validator

	MaxTokens   int
	Temperature float64

	// MaxQuantity caps the number of questions asked for in one call.
	MaxQuantity int

	// MaxPriorQuestions limits the dedup list in the prompt.
	MaxPriorQuestions int

	// MaxExamples limits examples per concept when the briefing is
	// rendered locally.
	MaxExamples int
}

// DefaultConfig returns the standard validator chain and defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ClozeValidator{},
			&ChoiceValidator{},
		},
		MaxTokens:         2048,
		Temperature:       0.7,
		MaxQuantity:       10,
		MaxPriorQuestions: 8,
		MaxExamples:       briefing.DefaultConfig().MaxExamples,
	}
}
