// Code generated by ent, DO NOT EDIT.

package conceptprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/polski/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldUserID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldConceptID, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldMasteryLevel, v))
}

// SuccessRate applies equality check predicate on the "success_rate" field. It's identical to SuccessRateEQ.
func SuccessRate(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldSuccessRate, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldTotalAttempts, v))
}

// ConsecutiveCorrect applies equality check predicate on the "consecutive_correct" field. It's identical to ConsecutiveCorrectEQ.
func ConsecutiveCorrect(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldConsecutiveCorrect, v))
}

// EasinessFactor applies equality check predicate on the "easiness_factor" field. It's identical to EasinessFactorEQ.
func EasinessFactor(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldEasinessFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldIntervalDays, v))
}

// LastPracticed applies equality check predicate on the "last_practiced" field. It's identical to LastPracticedEQ.
func LastPracticed(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldLastPracticed, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldNextReview, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldActive, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContainsFold(FieldUserID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldContainsFold(FieldConceptID, v))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldMasteryLevel, v))
}

// SuccessRateEQ applies the EQ predicate on the "success_rate" field.
func SuccessRateEQ(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldSuccessRate, v))
}

// SuccessRateNEQ applies the NEQ predicate on the "success_rate" field.
func SuccessRateNEQ(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldSuccessRate, v))
}

// SuccessRateIn applies the In predicate on the "success_rate" field.
func SuccessRateIn(vs ...float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldSuccessRate, vs...))
}

// SuccessRateNotIn applies the NotIn predicate on the "success_rate" field.
func SuccessRateNotIn(vs ...float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldSuccessRate, vs...))
}

// SuccessRateGT applies the GT predicate on the "success_rate" field.
func SuccessRateGT(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldSuccessRate, v))
}

// SuccessRateGTE applies the GTE predicate on the "success_rate" field.
func SuccessRateGTE(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldSuccessRate, v))
}

// SuccessRateLT applies the LT predicate on the "success_rate" field.
func SuccessRateLT(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldSuccessRate, v))
}

// SuccessRateLTE applies the LTE predicate on the "success_rate" field.
func SuccessRateLTE(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldSuccessRate, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldTotalAttempts, v))
}

// ConsecutiveCorrectEQ applies the EQ predicate on the "consecutive_correct" field.
func ConsecutiveCorrectEQ(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectNEQ applies the NEQ predicate on the "consecutive_correct" field.
func ConsecutiveCorrectNEQ(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectIn applies the In predicate on the "consecutive_correct" field.
func ConsecutiveCorrectIn(vs ...int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldConsecutiveCorrect, vs...))
}

// ConsecutiveCorrectNotIn applies the NotIn predicate on the "consecutive_correct" field.
func ConsecutiveCorrectNotIn(vs ...int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldConsecutiveCorrect, vs...))
}

// ConsecutiveCorrectGT applies the GT predicate on the "consecutive_correct" field.
func ConsecutiveCorrectGT(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectGTE applies the GTE predicate on the "consecutive_correct" field.
func ConsecutiveCorrectGTE(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectLT applies the LT predicate on the "consecutive_correct" field.
func ConsecutiveCorrectLT(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectLTE applies the LTE predicate on the "consecutive_correct" field.
func ConsecutiveCorrectLTE(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldConsecutiveCorrect, v))
}

// EasinessFactorEQ applies the EQ predicate on the "easiness_factor" field.
func EasinessFactorEQ(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldEasinessFactor, v))
}

// EasinessFactorNEQ applies the NEQ predicate on the "easiness_factor" field.
func EasinessFactorNEQ(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldEasinessFactor, v))
}

// EasinessFactorIn applies the In predicate on the "easiness_factor" field.
func EasinessFactorIn(vs ...float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldEasinessFactor, vs...))
}

// EasinessFactorNotIn applies the NotIn predicate on the "easiness_factor" field.
func EasinessFactorNotIn(vs ...float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldEasinessFactor, vs...))
}

// EasinessFactorGT applies the GT predicate on the "easiness_factor" field.
func EasinessFactorGT(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldEasinessFactor, v))
}

// EasinessFactorGTE applies the GTE predicate on the "easiness_factor" field.
func EasinessFactorGTE(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldEasinessFactor, v))
}

// EasinessFactorLT applies the LT predicate on the "easiness_factor" field.
func EasinessFactorLT(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldEasinessFactor, v))
}

// EasinessFactorLTE applies the LTE predicate on the "easiness_factor" field.
func EasinessFactorLTE(v float64) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldEasinessFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldIntervalDays, v))
}

// LastPracticedEQ applies the EQ predicate on the "last_practiced" field.
func LastPracticedEQ(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldLastPracticed, v))
}

// LastPracticedNEQ applies the NEQ predicate on the "last_practiced" field.
func LastPracticedNEQ(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldLastPracticed, v))
}

// LastPracticedIn applies the In predicate on the "last_practiced" field.
func LastPracticedIn(vs ...time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldLastPracticed, vs...))
}

// LastPracticedNotIn applies the NotIn predicate on the "last_practiced" field.
func LastPracticedNotIn(vs ...time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldLastPracticed, vs...))
}

// LastPracticedGT applies the GT predicate on the "last_practiced" field.
func LastPracticedGT(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldLastPracticed, v))
}

// LastPracticedGTE applies the GTE predicate on the "last_practiced" field.
func LastPracticedGTE(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldLastPracticed, v))
}

// LastPracticedLT applies the LT predicate on the "last_practiced" field.
func LastPracticedLT(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldLastPracticed, v))
}

// LastPracticedLTE applies the LTE predicate on the "last_practiced" field.
func LastPracticedLTE(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldLastPracticed, v))
}

// LastPracticedIsNil applies the IsNil predicate on the "last_practiced" field.
func LastPracticedIsNil() predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIsNull(FieldLastPracticed))
}

// LastPracticedNotNil applies the NotNil predicate on the "last_practiced" field.
func LastPracticedNotNil() predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotNull(FieldLastPracticed))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldLTE(FieldNextReview, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.FieldNEQ(FieldActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConceptProgress) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConceptProgress) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConceptProgress) predicate.ConceptProgress {
	return predicate.ConceptProgress(sql.NotPredicates(p))
}
