package questiongen

import (
	"strings"
	"unicode/utf8"
)

const (
	maxQuestionRunes    = 600
	maxExplanationRunes = 1000
)

// StructuralValidator checks required fields, lengths and enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Generated, req Request) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}
	switch {
	case strings.TrimSpace(q.Question) == "":
		return fail("question is empty")
	case utf8.RuneCountInString(q.Question) > maxQuestionRunes:
		return fail("question is too long")
	case strings.TrimSpace(q.CorrectAnswer) == "":
		return fail("correct_answer is empty")
	case utf8.RuneCountInString(q.Explanation) > maxExplanationRunes:
		return fail("explanation is too long")
	case !q.Type.Valid():
		return fail("unknown question type " + string(q.Type))
	case req.Type != "" && q.Type != req.Type:
		return fail("type " + string(q.Type) + " does not match requested " + string(req.Type))
	case !q.Difficulty.Valid():
		return fail("difficulty must be a CEFR level")
	}
	return nil
}
