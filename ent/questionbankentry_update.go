// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/polski/ent/predicate"
	"github.com/abhisek/polski/ent/questionbankentry"
)

// QuestionBankEntryUpdate is the builder for updating QuestionBankEntry entities.
type QuestionBankEntryUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionBankEntryMutation
}

// Where appends a list predicates to the QuestionBankEntryUpdate builder.
func (_u *QuestionBankEntryUpdate) Where(ps ...predicate.QuestionBankEntry) *QuestionBankEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QuestionBankEntryUpdate) SetQuestion(v string) *QuestionBankEntryUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuestionBankEntryUpdate) SetNillableQuestion(v *string) *QuestionBankEntryUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionBankEntryUpdate) SetCorrectAnswer(v string) *QuestionBankEntryUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionBankEntryUpdate) SetNillableCorrectAnswer(v *string) *QuestionBankEntryUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *QuestionBankEntryUpdate) SetType(v string) *QuestionBankEntryUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *QuestionBankEntryUpdate) SetNillableType(v *string) *QuestionBankEntryUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTargetConcepts sets the "target_concepts" field.
func (_u *QuestionBankEntryUpdate) SetTargetConcepts(v []string) *QuestionBankEntryUpdate {
	_u.mutation.SetTargetConcepts(v)
	return _u
}

// AppendTargetConcepts appends value to the "target_concepts" field.
func (_u *QuestionBankEntryUpdate) AppendTargetConcepts(v []string) *QuestionBankEntryUpdate {
	_u.mutation.AppendTargetConcepts(v)
	return _u
}

// ClearTargetConcepts clears the value of the "target_concepts" field.
func (_u *QuestionBankEntryUpdate) ClearTargetConcepts() *QuestionBankEntryUpdate {
	_u.mutation.ClearTargetConcepts()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionBankEntryUpdate) SetDifficulty(v string) *QuestionBankEntryUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionBankEntryUpdate) SetNillableDifficulty(v *string) *QuestionBankEntryUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTimesUsed sets the "times_used" field.
func (_u *QuestionBankEntryUpdate) SetTimesUsed(v int) *QuestionBankEntryUpdate {
	_u.mutation.ResetTimesUsed()
	_u.mutation.SetTimesUsed(v)
	return _u
}

// SetNillableTimesUsed sets the "times_used" field if the given value is not nil.
func (_u *QuestionBankEntryUpdate) SetNillableTimesUsed(v *int) *QuestionBankEntryUpdate {
	if v != nil {
		_u.SetTimesUsed(*v)
	}
	return _u
}

// AddTimesUsed adds value to the "times_used" field.
func (_u *QuestionBankEntryUpdate) AddTimesUsed(v int) *QuestionBankEntryUpdate {
	_u.mutation.AddTimesUsed(v)
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *QuestionBankEntryUpdate) SetSuccessRate(v float64) *QuestionBankEntryUpdate {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *QuestionBankEntryUpdate) SetNillableSuccessRate(v *float64) *QuestionBankEntryUpdate {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *QuestionBankEntryUpdate) AddSuccessRate(v float64) *QuestionBankEntryUpdate {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// SetLastUsed sets the "last_used" field.
func (_u *QuestionBankEntryUpdate) SetLastUsed(v time.Time) *QuestionBankEntryUpdate {
	_u.mutation.SetLastUsed(v)
	return _u
}

// SetNillableLastUsed sets the "last_used" field if the given value is not nil.
func (_u *QuestionBankEntryUpdate) SetNillableLastUsed(v *time.Time) *QuestionBankEntryUpdate {
	if v != nil {
		_u.SetLastUsed(*v)
	}
	return _u
}

// ClearLastUsed clears the value of the "last_used" field.
func (_u *QuestionBankEntryUpdate) ClearLastUsed() *QuestionBankEntryUpdate {
	_u.mutation.ClearLastUsed()
	return _u
}

// SetActive sets the "active" field.
func (_u *QuestionBankEntryUpdate) SetActive(v bool) *QuestionBankEntryUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *QuestionBankEntryUpdate) SetNillableActive(v *bool) *QuestionBankEntryUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *QuestionBankEntryUpdate) SetSource(v string) *QuestionBankEntryUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuestionBankEntryUpdate) SetNillableSource(v *string) *QuestionBankEntryUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionBankEntryUpdate) SetOptions(v []string) *QuestionBankEntryUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionBankEntryUpdate) AppendOptions(v []string) *QuestionBankEntryUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuestionBankEntryUpdate) ClearOptions() *QuestionBankEntryUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetMedia sets the "media" field.
func (_u *QuestionBankEntryUpdate) SetMedia(v []string) *QuestionBankEntryUpdate {
	_u.mutation.SetMedia(v)
	return _u
}

// AppendMedia appends value to the "media" field.
func (_u *QuestionBankEntryUpdate) AppendMedia(v []string) *QuestionBankEntryUpdate {
	_u.mutation.AppendMedia(v)
	return _u
}

// ClearMedia clears the value of the "media" field.
func (_u *QuestionBankEntryUpdate) ClearMedia() *QuestionBankEntryUpdate {
	_u.mutation.ClearMedia()
	return _u
}

// Mutation returns the QuestionBankEntryMutation object of the builder.
func (_u *QuestionBankEntryUpdate) Mutation() *QuestionBankEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionBankEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionBankEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionBankEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionBankEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionBankEntryUpdate) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := questionbankentry.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QuestionBankEntry.question": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionBankEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionbankentry.Table, questionbankentry.Columns, sqlgraph.NewFieldSpec(questionbankentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(questionbankentry.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(questionbankentry.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(questionbankentry.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetConcepts(); ok {
		_spec.SetField(questionbankentry.FieldTargetConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionbankentry.FieldTargetConcepts, value)
		})
	}
	if _u.mutation.TargetConceptsCleared() {
		_spec.ClearField(questionbankentry.FieldTargetConcepts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(questionbankentry.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimesUsed(); ok {
		_spec.SetField(questionbankentry.FieldTimesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesUsed(); ok {
		_spec.AddField(questionbankentry.FieldTimesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(questionbankentry.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(questionbankentry.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUsed(); ok {
		_spec.SetField(questionbankentry.FieldLastUsed, field.TypeTime, value)
	}
	if _u.mutation.LastUsedCleared() {
		_spec.ClearField(questionbankentry.FieldLastUsed, field.TypeTime)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(questionbankentry.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(questionbankentry.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(questionbankentry.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionbankentry.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(questionbankentry.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Media(); ok {
		_spec.SetField(questionbankentry.FieldMedia, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedia(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionbankentry.FieldMedia, value)
		})
	}
	if _u.mutation.MediaCleared() {
		_spec.ClearField(questionbankentry.FieldMedia, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionbankentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionBankEntryUpdateOne is the builder for updating a single QuestionBankEntry entity.
type QuestionBankEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionBankEntryMutation
}

// SetQuestion sets the "question" field.
func (_u *QuestionBankEntryUpdateOne) SetQuestion(v string) *QuestionBankEntryUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuestionBankEntryUpdateOne) SetNillableQuestion(v *string) *QuestionBankEntryUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionBankEntryUpdateOne) SetCorrectAnswer(v string) *QuestionBankEntryUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionBankEntryUpdateOne) SetNillableCorrectAnswer(v *string) *QuestionBankEntryUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *QuestionBankEntryUpdateOne) SetType(v string) *QuestionBankEntryUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *QuestionBankEntryUpdateOne) SetNillableType(v *string) *QuestionBankEntryUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTargetConcepts sets the "target_concepts" field.
func (_u *QuestionBankEntryUpdateOne) SetTargetConcepts(v []string) *QuestionBankEntryUpdateOne {
	_u.mutation.SetTargetConcepts(v)
	return _u
}

// AppendTargetConcepts appends value to the "target_concepts" field.
func (_u *QuestionBankEntryUpdateOne) AppendTargetConcepts(v []string) *QuestionBankEntryUpdateOne {
	_u.mutation.AppendTargetConcepts(v)
	return _u
}

// ClearTargetConcepts clears the value of the "target_concepts" field.
func (_u *QuestionBankEntryUpdateOne) ClearTargetConcepts() *QuestionBankEntryUpdateOne {
	_u.mutation.ClearTargetConcepts()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionBankEntryUpdateOne) SetDifficulty(v string) *QuestionBankEntryUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionBankEntryUpdateOne) SetNillableDifficulty(v *string) *QuestionBankEntryUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTimesUsed sets the "times_used" field.
func (_u *QuestionBankEntryUpdateOne) SetTimesUsed(v int) *QuestionBankEntryUpdateOne {
	_u.mutation.ResetTimesUsed()
	_u.mutation.SetTimesUsed(v)
	return _u
}

// SetNillableTimesUsed sets the "times_used" field if the given value is not nil.
func (_u *QuestionBankEntryUpdateOne) SetNillableTimesUsed(v *int) *QuestionBankEntryUpdateOne {
	if v != nil {
		_u.SetTimesUsed(*v)
	}
	return _u
}

// AddTimesUsed adds value to the "times_used" field.
func (_u *QuestionBankEntryUpdateOne) AddTimesUsed(v int) *QuestionBankEntryUpdateOne {
	_u.mutation.AddTimesUsed(v)
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *QuestionBankEntryUpdateOne) SetSuccessRate(v float64) *QuestionBankEntryUpdateOne {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *QuestionBankEntryUpdateOne) SetNillableSuccessRate(v *float64) *QuestionBankEntryUpdateOne {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *QuestionBankEntryUpdateOne) AddSuccessRate(v float64) *QuestionBankEntryUpdateOne {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// SetLastUsed sets the "last_used" field.
func (_u *QuestionBankEntryUpdateOne) SetLastUsed(v time.Time) *QuestionBankEntryUpdateOne {
	_u.mutation.SetLastUsed(v)
	return _u
}

// SetNillableLastUsed sets the "last_used" field if the given value is not nil.
func (_u *QuestionBankEntryUpdateOne) SetNillableLastUsed(v *time.Time) *QuestionBankEntryUpdateOne {
	if v != nil {
		_u.SetLastUsed(*v)
	}
	return _u
}

// ClearLastUsed clears the value of the "last_used" field.
func (_u *QuestionBankEntryUpdateOne) ClearLastUsed() *QuestionBankEntryUpdateOne {
	_u.mutation.ClearLastUsed()
	return _u
}

// SetActive sets the "active" field.
func (_u *QuestionBankEntryUpdateOne) SetActive(v bool) *QuestionBankEntryUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *QuestionBankEntryUpdateOne) SetNillableActive(v *bool) *QuestionBankEntryUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *QuestionBankEntryUpdateOne) SetSource(v string) *QuestionBankEntryUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuestionBankEntryUpdateOne) SetNillableSource(v *string) *QuestionBankEntryUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionBankEntryUpdateOne) SetOptions(v []string) *QuestionBankEntryUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionBankEntryUpdateOne) AppendOptions(v []string) *QuestionBankEntryUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuestionBankEntryUpdateOne) ClearOptions() *QuestionBankEntryUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetMedia sets the "media" field.
func (_u *QuestionBankEntryUpdateOne) SetMedia(v []string) *QuestionBankEntryUpdateOne {
	_u.mutation.SetMedia(v)
	return _u
}

// AppendMedia appends value to the "media" field.
func (_u *QuestionBankEntryUpdateOne) AppendMedia(v []string) *QuestionBankEntryUpdateOne {
	_u.mutation.AppendMedia(v)
	return _u
}

// ClearMedia clears the value of the "media" field.
func (_u *QuestionBankEntryUpdateOne) ClearMedia() *QuestionBankEntryUpdateOne {
	_u.mutation.ClearMedia()
	return _u
}

// Mutation returns the QuestionBankEntryMutation object of the builder.
func (_u *QuestionBankEntryUpdateOne) Mutation() *QuestionBankEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionBankEntryUpdate builder.
func (_u *QuestionBankEntryUpdateOne) Where(ps ...predicate.QuestionBankEntry) *QuestionBankEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionBankEntryUpdateOne) Select(field string, fields ...string) *QuestionBankEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionBankEntry entity.
func (_u *QuestionBankEntryUpdateOne) Save(ctx context.Context) (*QuestionBankEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionBankEntryUpdateOne) SaveX(ctx context.Context) *QuestionBankEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionBankEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionBankEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionBankEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := questionbankentry.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QuestionBankEntry.question": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionBankEntryUpdateOne) sqlSave(ctx context.Context) (_node *QuestionBankEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionbankentry.Table, questionbankentry.Columns, sqlgraph.NewFieldSpec(questionbankentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionBankEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionbankentry.FieldID)
		for _, f := range fields {
			if !questionbankentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionbankentry.FieldID {
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
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(questionbankentry.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(questionbankentry.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(questionbankentry.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetConcepts(); ok {
		_spec.SetField(questionbankentry.FieldTargetConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionbankentry.FieldTargetConcepts, value)
		})
	}
	if _u.mutation.TargetConceptsCleared() {
		_spec.ClearField(questionbankentry.FieldTargetConcepts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(questionbankentry.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimesUsed(); ok {
		_spec.SetField(questionbankentry.FieldTimesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesUsed(); ok {
		_spec.AddField(questionbankentry.FieldTimesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(questionbankentry.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(questionbankentry.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUsed(); ok {
		_spec.SetField(questionbankentry.FieldLastUsed, field.TypeTime, value)
	}
	if _u.mutation.LastUsedCleared() {
		_spec.ClearField(questionbankentry.FieldLastUsed, field.TypeTime)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(questionbankentry.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(questionbankentry.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(questionbankentry.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionbankentry.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(questionbankentry.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Media(); ok {
		_spec.SetField(questionbankentry.FieldMedia, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedia(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionbankentry.FieldMedia, value)
		})
	}
	if _u.mutation.MediaCleared() {
		_spec.ClearField(questionbankentry.FieldMedia, field.TypeJSON)
	}
	_node = &QuestionBankEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionbankentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
