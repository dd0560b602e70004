// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/polski/ent/conceptprogress"
	"github.com/abhisek/polski/ent/predicate"
)

// ConceptProgressUpdate is the builder for updating ConceptProgress entities.
type ConceptProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptProgressMutation
}

// Where appends a list predicates to the ConceptProgressUpdate builder.
func (_u *ConceptProgressUpdate) Where(ps ...predicate.ConceptProgress) *ConceptProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ConceptProgressUpdate) SetUserID(v string) *ConceptProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableUserID(v *string) *ConceptProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ConceptProgressUpdate) SetConceptID(v string) *ConceptProgressUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableConceptID(v *string) *ConceptProgressUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *ConceptProgressUpdate) SetMasteryLevel(v float64) *ConceptProgressUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableMasteryLevel(v *float64) *ConceptProgressUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *ConceptProgressUpdate) AddMasteryLevel(v float64) *ConceptProgressUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *ConceptProgressUpdate) SetSuccessRate(v float64) *ConceptProgressUpdate {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableSuccessRate(v *float64) *ConceptProgressUpdate {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *ConceptProgressUpdate) AddSuccessRate(v float64) *ConceptProgressUpdate {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *ConceptProgressUpdate) SetTotalAttempts(v int) *ConceptProgressUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableTotalAttempts(v *int) *ConceptProgressUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *ConceptProgressUpdate) AddTotalAttempts(v int) *ConceptProgressUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_u *ConceptProgressUpdate) SetConsecutiveCorrect(v int) *ConceptProgressUpdate {
	_u.mutation.ResetConsecutiveCorrect()
	_u.mutation.SetConsecutiveCorrect(v)
	return _u
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableConsecutiveCorrect(v *int) *ConceptProgressUpdate {
	if v != nil {
		_u.SetConsecutiveCorrect(*v)
	}
	return _u
}

// AddConsecutiveCorrect adds value to the "consecutive_correct" field.
func (_u *ConceptProgressUpdate) AddConsecutiveCorrect(v int) *ConceptProgressUpdate {
	_u.mutation.AddConsecutiveCorrect(v)
	return _u
}

// SetEasinessFactor sets the "easiness_factor" field.
func (_u *ConceptProgressUpdate) SetEasinessFactor(v float64) *ConceptProgressUpdate {
	_u.mutation.ResetEasinessFactor()
	_u.mutation.SetEasinessFactor(v)
	return _u
}

// SetNillableEasinessFactor sets the "easiness_factor" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableEasinessFactor(v *float64) *ConceptProgressUpdate {
	if v != nil {
		_u.SetEasinessFactor(*v)
	}
	return _u
}

// AddEasinessFactor adds value to the "easiness_factor" field.
func (_u *ConceptProgressUpdate) AddEasinessFactor(v float64) *ConceptProgressUpdate {
	_u.mutation.AddEasinessFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ConceptProgressUpdate) SetIntervalDays(v int) *ConceptProgressUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableIntervalDays(v *int) *ConceptProgressUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ConceptProgressUpdate) AddIntervalDays(v int) *ConceptProgressUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *ConceptProgressUpdate) SetLastPracticed(v time.Time) *ConceptProgressUpdate {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableLastPracticed(v *time.Time) *ConceptProgressUpdate {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (_u *ConceptProgressUpdate) ClearLastPracticed() *ConceptProgressUpdate {
	_u.mutation.ClearLastPracticed()
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ConceptProgressUpdate) SetNextReview(v time.Time) *ConceptProgressUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableNextReview(v *time.Time) *ConceptProgressUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ConceptProgressUpdate) SetActive(v bool) *ConceptProgressUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ConceptProgressUpdate) SetNillableActive(v *bool) *ConceptProgressUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ConceptProgressMutation object of the builder.
func (_u *ConceptProgressUpdate) Mutation() *ConceptProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := conceptprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConceptProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := conceptprogress.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ConceptProgress.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptprogress.Table, conceptprogress.Columns, sqlgraph.NewFieldSpec(conceptprogress.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(conceptprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(conceptprogress.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(conceptprogress.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(conceptprogress.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(conceptprogress.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(conceptprogress.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(conceptprogress.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(conceptprogress.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(conceptprogress.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(conceptprogress.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EasinessFactor(); ok {
		_spec.SetField(conceptprogress.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasinessFactor(); ok {
		_spec.AddField(conceptprogress.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(conceptprogress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(conceptprogress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(conceptprogress.FieldLastPracticed, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedCleared() {
		_spec.ClearField(conceptprogress.FieldLastPracticed, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(conceptprogress.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(conceptprogress.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptProgressUpdateOne is the builder for updating a single ConceptProgress entity.
type ConceptProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *ConceptProgressUpdateOne) SetUserID(v string) *ConceptProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableUserID(v *string) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ConceptProgressUpdateOne) SetConceptID(v string) *ConceptProgressUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableConceptID(v *string) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *ConceptProgressUpdateOne) SetMasteryLevel(v float64) *ConceptProgressUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableMasteryLevel(v *float64) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *ConceptProgressUpdateOne) AddMasteryLevel(v float64) *ConceptProgressUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *ConceptProgressUpdateOne) SetSuccessRate(v float64) *ConceptProgressUpdateOne {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableSuccessRate(v *float64) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *ConceptProgressUpdateOne) AddSuccessRate(v float64) *ConceptProgressUpdateOne {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *ConceptProgressUpdateOne) SetTotalAttempts(v int) *ConceptProgressUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableTotalAttempts(v *int) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *ConceptProgressUpdateOne) AddTotalAttempts(v int) *ConceptProgressUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_u *ConceptProgressUpdateOne) SetConsecutiveCorrect(v int) *ConceptProgressUpdateOne {
	_u.mutation.ResetConsecutiveCorrect()
	_u.mutation.SetConsecutiveCorrect(v)
	return _u
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableConsecutiveCorrect(v *int) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetConsecutiveCorrect(*v)
	}
	return _u
}

// AddConsecutiveCorrect adds value to the "consecutive_correct" field.
func (_u *ConceptProgressUpdateOne) AddConsecutiveCorrect(v int) *ConceptProgressUpdateOne {
	_u.mutation.AddConsecutiveCorrect(v)
	return _u
}

// SetEasinessFactor sets the "easiness_factor" field.
func (_u *ConceptProgressUpdateOne) SetEasinessFactor(v float64) *ConceptProgressUpdateOne {
	_u.mutation.ResetEasinessFactor()
	_u.mutation.SetEasinessFactor(v)
	return _u
}

// SetNillableEasinessFactor sets the "easiness_factor" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableEasinessFactor(v *float64) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetEasinessFactor(*v)
	}
	return _u
}

// AddEasinessFactor adds value to the "easiness_factor" field.
func (_u *ConceptProgressUpdateOne) AddEasinessFactor(v float64) *ConceptProgressUpdateOne {
	_u.mutation.AddEasinessFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ConceptProgressUpdateOne) SetIntervalDays(v int) *ConceptProgressUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableIntervalDays(v *int) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ConceptProgressUpdateOne) AddIntervalDays(v int) *ConceptProgressUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *ConceptProgressUpdateOne) SetLastPracticed(v time.Time) *ConceptProgressUpdateOne {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableLastPracticed(v *time.Time) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (_u *ConceptProgressUpdateOne) ClearLastPracticed() *ConceptProgressUpdateOne {
	_u.mutation.ClearLastPracticed()
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ConceptProgressUpdateOne) SetNextReview(v time.Time) *ConceptProgressUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableNextReview(v *time.Time) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ConceptProgressUpdateOne) SetActive(v bool) *ConceptProgressUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ConceptProgressUpdateOne) SetNillableActive(v *bool) *ConceptProgressUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ConceptProgressMutation object of the builder.
func (_u *ConceptProgressUpdateOne) Mutation() *ConceptProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptProgressUpdate builder.
func (_u *ConceptProgressUpdateOne) Where(ps ...predicate.ConceptProgress) *ConceptProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptProgressUpdateOne) Select(field string, fields ...string) *ConceptProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConceptProgress entity.
func (_u *ConceptProgressUpdateOne) Save(ctx context.Context) (*ConceptProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptProgressUpdateOne) SaveX(ctx context.Context) *ConceptProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := conceptprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConceptProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := conceptprogress.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ConceptProgress.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptProgressUpdateOne) sqlSave(ctx context.Context) (_node *ConceptProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptprogress.Table, conceptprogress.Columns, sqlgraph.NewFieldSpec(conceptprogress.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConceptProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conceptprogress.FieldID)
		for _, f := range fields {
			if !conceptprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conceptprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(conceptprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(conceptprogress.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(conceptprogress.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(conceptprogress.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(conceptprogress.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(conceptprogress.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(conceptprogress.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(conceptprogress.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(conceptprogress.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(conceptprogress.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EasinessFactor(); ok {
		_spec.SetField(conceptprogress.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasinessFactor(); ok {
		_spec.AddField(conceptprogress.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(conceptprogress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(conceptprogress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(conceptprogress.FieldLastPracticed, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedCleared() {
		_spec.ClearField(conceptprogress.FieldLastPracticed, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(conceptprogress.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(conceptprogress.FieldActive, field.TypeBool, value)
	}
	_node = &ConceptProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
