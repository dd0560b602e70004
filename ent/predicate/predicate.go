// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// Concept is the predicate function for concept builders.
type Concept func(*sql.Selector)

// ConceptGroup is the predicate function for conceptgroup builders.
type ConceptGroup func(*sql.Selector)

// ConceptProgress is the predicate function for conceptprogress builders.
type ConceptProgress func(*sql.Selector)

// CourseConcept is the predicate function for courseconcept builders.
type CourseConcept func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuestionBankEntry is the predicate function for questionbankentry builders.
type QuestionBankEntry func(*sql.Selector)
