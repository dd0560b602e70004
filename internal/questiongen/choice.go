package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/polski/internal/questionbank"
)

// ClozeValidator checks that cloze questions carry one blank per answer.
type ClozeValidator struct{}

// Blank marks a gap in a cloze question.
const Blank = "___"

func (v *ClozeValidator) Name() string { return "cloze" }

func (v *ClozeValidator) Validate(q *Generated, _ Request) *ValidationError {
	blanks := strings.Count(q.Question, Blank)
	switch q.Type {
	case questionbank.TypeBasicCloze:
		if blanks != 1 {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("expected 1 blank, found %d", blanks)}
		}
	case questionbank.TypeMultiCloze:
		answers := splitAnswers(q.CorrectAnswer)
		if blanks < 2 || blanks != len(answers) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("%d blanks but %d answers", blanks, len(answers)),
			}
		}
	}
	return nil
}

// ChoiceValidator checks the options of choice-based questions: at least
// two distinct options, and every correct answer among them.
type ChoiceValidator struct{}

func (v *ChoiceValidator) Name() string { return "choice" }

func (v *ChoiceValidator) Validate(q *Generated, _ Request) *ValidationError {
	if !q.Type.ChoiceBased() {
		return nil
	}
	if err := HasEnoughOptions(q.Type, q.Options); err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}

	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		key := normalize(o)
		if seen[key] {
			return &ValidationError{Validator: v.Name(), Message: "duplicate option " + o}
		}
		seen[key] = true
	}

	answers := []string{q.CorrectAnswer}
	if !q.Type.SingleAnswer() {
		answers = splitAnswers(q.CorrectAnswer)
	}
	for _, a := range answers {
		if !seen[normalize(a)] {
			return &ValidationError{Validator: v.Name(), Message: "answer " + a + " is not among the options"}
		}
	}
	return nil
}

// HasEnoughOptions reports an error when a choice-based question has fewer
// than two options. Other types always pass.
func HasEnoughOptions(t questionbank.QuestionType, options []string) error {
	if !t.ChoiceBased() {
		return nil
	}
	n := 0
	for _, o := range options {
		if strings.TrimSpace(o) != "" {
			n++
		}
	}
	if n < 2 {
		return fmt.Errorf("%s needs at least 2 options, got %d", t, n)
	}
	return nil
}

func splitAnswers(s string) []string {
	var out []string
	for _, part := range strings.Split(s, AnswerSeparator) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
