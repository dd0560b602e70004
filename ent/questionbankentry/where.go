// Code generated by ent, DO NOT EDIT.

package questionbankentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/polski/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldContainsFold(FieldID, id))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldQuestion, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldCorrectAnswer, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldType, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldDifficulty, v))
}

// TimesUsed applies equality check predicate on the "times_used" field. It's identical to TimesUsedEQ.
func TimesUsed(v int) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldTimesUsed, v))
}

// SuccessRate applies equality check predicate on the "success_rate" field. It's identical to SuccessRateEQ.
func SuccessRate(v float64) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldSuccessRate, v))
}

// LastUsed applies equality check predicate on the "last_used" field. It's identical to LastUsedEQ.
func LastUsed(v time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldLastUsed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldActive, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldSource, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldContainsFold(FieldQuestion, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldContainsFold(FieldType, v))
}

// TargetConceptsIsNil applies the IsNil predicate on the "target_concepts" field.
func TargetConceptsIsNil() predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldIsNull(FieldTargetConcepts))
}

// TargetConceptsNotNil applies the NotNil predicate on the "target_concepts" field.
func TargetConceptsNotNil() predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNotNull(FieldTargetConcepts))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldContainsFold(FieldDifficulty, v))
}

// TimesUsedEQ applies the EQ predicate on the "times_used" field.
func TimesUsedEQ(v int) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldTimesUsed, v))
}

// TimesUsedNEQ applies the NEQ predicate on the "times_used" field.
func TimesUsedNEQ(v int) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNEQ(FieldTimesUsed, v))
}

// TimesUsedIn applies the In predicate on the "times_used" field.
func TimesUsedIn(vs ...int) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldIn(FieldTimesUsed, vs...))
}

// TimesUsedNotIn applies the NotIn predicate on the "times_used" field.
func TimesUsedNotIn(vs ...int) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNotIn(FieldTimesUsed, vs...))
}

// TimesUsedGT applies the GT predicate on the "times_used" field.
func TimesUsedGT(v int) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGT(FieldTimesUsed, v))
}

// TimesUsedGTE applies the GTE predicate on the "times_used" field.
func TimesUsedGTE(v int) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGTE(FieldTimesUsed, v))
}

// TimesUsedLT applies the LT predicate on the "times_used" field.
func TimesUsedLT(v int) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLT(FieldTimesUsed, v))
}

// TimesUsedLTE applies the LTE predicate on the "times_used" field.
func TimesUsedLTE(v int) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLTE(FieldTimesUsed, v))
}

// SuccessRateEQ applies the EQ predicate on the "success_rate" field.
func SuccessRateEQ(v float64) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldSuccessRate, v))
}

// SuccessRateNEQ applies the NEQ predicate on the "success_rate" field.
func SuccessRateNEQ(v float64) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNEQ(FieldSuccessRate, v))
}

// SuccessRateIn applies the In predicate on the "success_rate" field.
func SuccessRateIn(vs ...float64) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldIn(FieldSuccessRate, vs...))
}

// SuccessRateNotIn applies the NotIn predicate on the "success_rate" field.
func SuccessRateNotIn(vs ...float64) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNotIn(FieldSuccessRate, vs...))
}

// SuccessRateGT applies the GT predicate on the "success_rate" field.
func SuccessRateGT(v float64) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGT(FieldSuccessRate, v))
}

// SuccessRateGTE applies the GTE predicate on the "success_rate" field.
func SuccessRateGTE(v float64) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGTE(FieldSuccessRate, v))
}

// SuccessRateLT applies the LT predicate on the "success_rate" field.
func SuccessRateLT(v float64) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLT(FieldSuccessRate, v))
}

// SuccessRateLTE applies the LTE predicate on the "success_rate" field.
func SuccessRateLTE(v float64) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLTE(FieldSuccessRate, v))
}

// LastUsedEQ applies the EQ predicate on the "last_used" field.
func LastUsedEQ(v time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldLastUsed, v))
}

// LastUsedNEQ applies the NEQ predicate on the "last_used" field.
func LastUsedNEQ(v time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNEQ(FieldLastUsed, v))
}

// LastUsedIn applies the In predicate on the "last_used" field.
func LastUsedIn(vs ...time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldIn(FieldLastUsed, vs...))
}

// LastUsedNotIn applies the NotIn predicate on the "last_used" field.
func LastUsedNotIn(vs ...time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNotIn(FieldLastUsed, vs...))
}

// LastUsedGT applies the GT predicate on the "last_used" field.
func LastUsedGT(v time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGT(FieldLastUsed, v))
}

// LastUsedGTE applies the GTE predicate on the "last_used" field.
func LastUsedGTE(v time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGTE(FieldLastUsed, v))
}

// LastUsedLT applies the LT predicate on the "last_used" field.
func LastUsedLT(v time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLT(FieldLastUsed, v))
}

// LastUsedLTE applies the LTE predicate on the "last_used" field.
func LastUsedLTE(v time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLTE(FieldLastUsed, v))
}

// LastUsedIsNil applies the IsNil predicate on the "last_used" field.
func LastUsedIsNil() predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldIsNull(FieldLastUsed))
}

// LastUsedNotNil applies the NotNil predicate on the "last_used" field.
func LastUsedNotNil() predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNotNull(FieldLastUsed))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNEQ(FieldActive, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldContainsFold(FieldSource, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNotNull(FieldOptions))
}

// MediaIsNil applies the IsNil predicate on the "media" field.
func MediaIsNil() predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldIsNull(FieldMedia))
}

// MediaNotNil applies the NotNil predicate on the "media" field.
func MediaNotNil() predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.FieldNotNull(FieldMedia))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionBankEntry) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionBankEntry) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionBankEntry) predicate.QuestionBankEntry {
	return predicate.QuestionBankEntry(sql.NotPredicates(p))
}
