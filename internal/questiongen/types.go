package questiongen

import (
	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/questionbank"
)

// Request describes one batch of questions to generate.
type Request struct {
	// Concepts are the targets. Every generated question targets exactly
	// this set.
	Concepts []catalog.Concept

	Type       questionbank.QuestionType
	Difficulty catalog.Level
	Quantity   int

	// SpecialInstructions is appended to the prompt verbatim.
	SpecialInstructions string

	// PriorQuestions are question texts the learner has already seen;
	// the model is asked not to repeat them.
	PriorQuestions []string
}

// Generated is a question produced by the model, not yet persisted.
type Generated struct {
	Question      string
	CorrectAnswer string
	Type          questionbank.QuestionType
	Difficulty    catalog.Level

	// Options holds the choices of choice-based types.
	Options []string
	// Media holds optional references to audio or image assets.
	Media []string

	Explanation    string
	TargetConcepts []string
}

// AnswerSeparator joins the answers of MULTI_CLOZE and MULTI_SELECT
// questions in CorrectAnswer.
const AnswerSeparator = ";"
