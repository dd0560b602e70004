package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/polski/internal/questionbank"
)

const systemPrompt = `You are a Polish language teacher writing practice questions for adult learners.

Rules:
- Write questions in Polish. Instructions and explanations may be in English.
- Test only the target concepts. Context concepts may appear in the sentences but must not be what is tested.
- Match the requested CEFR difficulty in vocabulary and sentence length.
- Use correct Polish orthography with diacritics (ą, ć, ę, ł, ń, ó, ś, ź, ż).
- Mark every cloze gap with ___ (three underscores) and give the base form in parentheses where it helps.
- For choice-based types give 3 to 5 options. Distractors should be plausible forms a learner would confuse, such as the wrong case or aspect.
- When a question has several answers, separate them with ; in the order they appear.
- Do not repeat any question from the "already asked" list.`

var typeInstructions = map[questionbank.QuestionType]string{
	questionbank.TypeBasicCloze:  "One sentence with a single ___ gap.",
	questionbank.TypeMultiCloze:  "One or two sentences with two to four ___ gaps.",
	questionbank.TypeVocabChoice: "Ask for the word that fits; exactly one option is correct.",
	questionbank.TypeMultiSelect: "Several options are correct; list all of them in correct_answer.",
}

// buildUserMessage assembles the user turn from the concept briefing and
// the batch parameters.
func buildUserMessage(req Request, brief string, cfg Config) string {
	var b strings.Builder

	b.WriteString(brief)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Question type: %s\n", req.Type)
	if hint, ok := typeInstructions[req.Type]; ok {
		fmt.Fprintf(&b, "Format: %s\n", hint)
	}
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", req.Quantity)

	if req.SpecialInstructions != "" {
		fmt.Fprintf(&b, "\nSpecial instructions:\n%s\n", req.SpecialInstructions)
	}

	b.WriteString("\nAlready asked:\n")
	b.WriteString(buildDedup(req.PriorQuestions, cfg.MaxPriorQuestions))
	return b.String()
}

// buildDedup lists the most recent prior questions, or "None".
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}
	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
