// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/polski/ent/questionbankentry"
)

// QuestionBankEntryCreate is the builder for creating a QuestionBankEntry entity.
type QuestionBankEntryCreate struct {
	config
	mutation *QuestionBankEntryMutation
	hooks    []Hook
}

// SetQuestion sets the "question" field.
func (_c *QuestionBankEntryCreate) SetQuestion(v string) *QuestionBankEntryCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *QuestionBankEntryCreate) SetCorrectAnswer(v string) *QuestionBankEntryCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetType sets the "type" field.
func (_c *QuestionBankEntryCreate) SetType(v string) *QuestionBankEntryCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetTargetConcepts sets the "target_concepts" field.
func (_c *QuestionBankEntryCreate) SetTargetConcepts(v []string) *QuestionBankEntryCreate {
	_c.mutation.SetTargetConcepts(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionBankEntryCreate) SetDifficulty(v string) *QuestionBankEntryCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetTimesUsed sets the "times_used" field.
func (_c *QuestionBankEntryCreate) SetTimesUsed(v int) *QuestionBankEntryCreate {
	_c.mutation.SetTimesUsed(v)
	return _c
}

// SetNillableTimesUsed sets the "times_used" field if the given value is not nil.
func (_c *QuestionBankEntryCreate) SetNillableTimesUsed(v *int) *QuestionBankEntryCreate {
	if v != nil {
		_c.SetTimesUsed(*v)
	}
	return _c
}

// SetSuccessRate sets the "success_rate" field.
func (_c *QuestionBankEntryCreate) SetSuccessRate(v float64) *QuestionBankEntryCreate {
	_c.mutation.SetSuccessRate(v)
	return _c
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_c *QuestionBankEntryCreate) SetNillableSuccessRate(v *float64) *QuestionBankEntryCreate {
	if v != nil {
		_c.SetSuccessRate(*v)
	}
	return _c
}

// SetLastUsed sets the "last_used" field.
func (_c *QuestionBankEntryCreate) SetLastUsed(v time.Time) *QuestionBankEntryCreate {
	_c.mutation.SetLastUsed(v)
	return _c
}

// SetNillableLastUsed sets the "last_used" field if the given value is not nil.
func (_c *QuestionBankEntryCreate) SetNillableLastUsed(v *time.Time) *QuestionBankEntryCreate {
	if v != nil {
		_c.SetLastUsed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionBankEntryCreate) SetCreatedAt(v time.Time) *QuestionBankEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionBankEntryCreate) SetNillableCreatedAt(v *time.Time) *QuestionBankEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *QuestionBankEntryCreate) SetActive(v bool) *QuestionBankEntryCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *QuestionBankEntryCreate) SetNillableActive(v *bool) *QuestionBankEntryCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *QuestionBankEntryCreate) SetSource(v string) *QuestionBankEntryCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *QuestionBankEntryCreate) SetOptions(v []string) *QuestionBankEntryCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetMedia sets the "media" field.
func (_c *QuestionBankEntryCreate) SetMedia(v []string) *QuestionBankEntryCreate {
	_c.mutation.SetMedia(v)
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionBankEntryCreate) SetID(v string) *QuestionBankEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuestionBankEntryMutation object of the builder.
func (_c *QuestionBankEntryCreate) Mutation() *QuestionBankEntryMutation {
	return _c.mutation
}

// Save creates the QuestionBankEntry in the database.
func (_c *QuestionBankEntryCreate) Save(ctx context.Context) (*QuestionBankEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionBankEntryCreate) SaveX(ctx context.Context) *QuestionBankEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionBankEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionBankEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionBankEntryCreate) defaults() {
	if _, ok := _c.mutation.TimesUsed(); !ok {
		v := questionbankentry.DefaultTimesUsed
		_c.mutation.SetTimesUsed(v)
	}
	if _, ok := _c.mutation.SuccessRate(); !ok {
		v := questionbankentry.DefaultSuccessRate
		_c.mutation.SetSuccessRate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionbankentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := questionbankentry.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionBankEntryCreate) check() error {
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "QuestionBankEntry.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := questionbankentry.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QuestionBankEntry.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "QuestionBankEntry.correct_answer"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "QuestionBankEntry.type"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "QuestionBankEntry.difficulty"`)}
	}
	if _, ok := _c.mutation.TimesUsed(); !ok {
		return &ValidationError{Name: "times_used", err: errors.New(`ent: missing required field "QuestionBankEntry.times_used"`)}
	}
	if _, ok := _c.mutation.SuccessRate(); !ok {
		return &ValidationError{Name: "success_rate", err: errors.New(`ent: missing required field "QuestionBankEntry.success_rate"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuestionBankEntry.created_at"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "QuestionBankEntry.active"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "QuestionBankEntry.source"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := questionbankentry.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "QuestionBankEntry.id": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionBankEntryCreate) sqlSave(ctx context.Context) (*QuestionBankEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected QuestionBankEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionBankEntryCreate) createSpec() (*QuestionBankEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionBankEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionbankentry.Table, sqlgraph.NewFieldSpec(questionbankentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(questionbankentry.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(questionbankentry.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(questionbankentry.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.TargetConcepts(); ok {
		_spec.SetField(questionbankentry.FieldTargetConcepts, field.TypeJSON, value)
		_node.TargetConcepts = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(questionbankentry.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.TimesUsed(); ok {
		_spec.SetField(questionbankentry.FieldTimesUsed, field.TypeInt, value)
		_node.TimesUsed = value
	}
	if value, ok := _c.mutation.SuccessRate(); ok {
		_spec.SetField(questionbankentry.FieldSuccessRate, field.TypeFloat64, value)
		_node.SuccessRate = value
	}
	if value, ok := _c.mutation.LastUsed(); ok {
		_spec.SetField(questionbankentry.FieldLastUsed, field.TypeTime, value)
		_node.LastUsed = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionbankentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(questionbankentry.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(questionbankentry.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(questionbankentry.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.Media(); ok {
		_spec.SetField(questionbankentry.FieldMedia, field.TypeJSON, value)
		_node.Media = value
	}
	return _node, _spec
}

// QuestionBankEntryCreateBulk is the builder for creating many QuestionBankEntry entities in bulk.
type QuestionBankEntryCreateBulk struct {
	config
	err      error
	builders []*QuestionBankEntryCreate
}

// Save creates the QuestionBankEntry entities in the database.
func (_c *QuestionBankEntryCreateBulk) Save(ctx context.Context) ([]*QuestionBankEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionBankEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionBankEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestionBankEntryCreateBulk) SaveX(ctx context.Context) []*QuestionBankEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionBankEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionBankEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
