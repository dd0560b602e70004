// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/polski/ent/conceptprogress"
)

// ConceptProgressCreate is the builder for creating a ConceptProgress entity.
type ConceptProgressCreate struct {
	config
	mutation *ConceptProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ConceptProgressCreate) SetUserID(v string) *ConceptProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *ConceptProgressCreate) SetConceptID(v string) *ConceptProgressCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *ConceptProgressCreate) SetMasteryLevel(v float64) *ConceptProgressCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *ConceptProgressCreate) SetNillableMasteryLevel(v *float64) *ConceptProgressCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetSuccessRate sets the "success_rate" field.
func (_c *ConceptProgressCreate) SetSuccessRate(v float64) *ConceptProgressCreate {
	_c.mutation.SetSuccessRate(v)
	return _c
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_c *ConceptProgressCreate) SetNillableSuccessRate(v *float64) *ConceptProgressCreate {
	if v != nil {
		_c.SetSuccessRate(*v)
	}
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *ConceptProgressCreate) SetTotalAttempts(v int) *ConceptProgressCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *ConceptProgressCreate) SetNillableTotalAttempts(v *int) *ConceptProgressCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_c *ConceptProgressCreate) SetConsecutiveCorrect(v int) *ConceptProgressCreate {
	_c.mutation.SetConsecutiveCorrect(v)
	return _c
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_c *ConceptProgressCreate) SetNillableConsecutiveCorrect(v *int) *ConceptProgressCreate {
	if v != nil {
		_c.SetConsecutiveCorrect(*v)
	}
	return _c
}

// SetEasinessFactor sets the "easiness_factor" field.
func (_c *ConceptProgressCreate) SetEasinessFactor(v float64) *ConceptProgressCreate {
	_c.mutation.SetEasinessFactor(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ConceptProgressCreate) SetIntervalDays(v int) *ConceptProgressCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetLastPracticed sets the "last_practiced" field.
func (_c *ConceptProgressCreate) SetLastPracticed(v time.Time) *ConceptProgressCreate {
	_c.mutation.SetLastPracticed(v)
	return _c
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_c *ConceptProgressCreate) SetNillableLastPracticed(v *time.Time) *ConceptProgressCreate {
	if v != nil {
		_c.SetLastPracticed(*v)
	}
	return _c
}

// SetNextReview sets the "next_review" field.
func (_c *ConceptProgressCreate) SetNextReview(v time.Time) *ConceptProgressCreate {
	_c.mutation.SetNextReview(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *ConceptProgressCreate) SetActive(v bool) *ConceptProgressCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ConceptProgressCreate) SetNillableActive(v *bool) *ConceptProgressCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConceptProgressCreate) SetID(v string) *ConceptProgressCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConceptProgressMutation object of the builder.
func (_c *ConceptProgressCreate) Mutation() *ConceptProgressMutation {
	return _c.mutation
}

// Save creates the ConceptProgress in the database.
func (_c *ConceptProgressCreate) Save(ctx context.Context) (*ConceptProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConceptProgressCreate) SaveX(ctx context.Context) *ConceptProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConceptProgressCreate) defaults() {
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := conceptprogress.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.SuccessRate(); !ok {
		v := conceptprogress.DefaultSuccessRate
		_c.mutation.SetSuccessRate(v)
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := conceptprogress.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.ConsecutiveCorrect(); !ok {
		v := conceptprogress.DefaultConsecutiveCorrect
		_c.mutation.SetConsecutiveCorrect(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := conceptprogress.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConceptProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ConceptProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := conceptprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConceptProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "ConceptProgress.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := conceptprogress.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ConceptProgress.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "ConceptProgress.mastery_level"`)}
	}
	if _, ok := _c.mutation.SuccessRate(); !ok {
		return &ValidationError{Name: "success_rate", err: errors.New(`ent: missing required field "ConceptProgress.success_rate"`)}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "ConceptProgress.total_attempts"`)}
	}
	if _, ok := _c.mutation.ConsecutiveCorrect(); !ok {
		return &ValidationError{Name: "consecutive_correct", err: errors.New(`ent: missing required field "ConceptProgress.consecutive_correct"`)}
	}
	if _, ok := _c.mutation.EasinessFactor(); !ok {
		return &ValidationError{Name: "easiness_factor", err: errors.New(`ent: missing required field "ConceptProgress.easiness_factor"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ConceptProgress.interval_days"`)}
	}
	if _, ok := _c.mutation.NextReview(); !ok {
		return &ValidationError{Name: "next_review", err: errors.New(`ent: missing required field "ConceptProgress.next_review"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ConceptProgress.active"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := conceptprogress.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "ConceptProgress.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ConceptProgressCreate) sqlSave(ctx context.Context) (*ConceptProgress, error) {
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
			return nil, fmt.Errorf("unexpected ConceptProgress.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConceptProgressCreate) createSpec() (*ConceptProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &ConceptProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conceptprogress.Table, sqlgraph.NewFieldSpec(conceptprogress.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(conceptprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(conceptprogress.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(conceptprogress.FieldMasteryLevel, field.TypeFloat64, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.SuccessRate(); ok {
		_spec.SetField(conceptprogress.FieldSuccessRate, field.TypeFloat64, value)
		_node.SuccessRate = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(conceptprogress.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(conceptprogress.FieldConsecutiveCorrect, field.TypeInt, value)
		_node.ConsecutiveCorrect = value
	}
	if value, ok := _c.mutation.EasinessFactor(); ok {
		_spec.SetField(conceptprogress.FieldEasinessFactor, field.TypeFloat64, value)
		_node.EasinessFactor = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(conceptprogress.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.LastPracticed(); ok {
		_spec.SetField(conceptprogress.FieldLastPracticed, field.TypeTime, value)
		_node.LastPracticed = &value
	}
	if value, ok := _c.mutation.NextReview(); ok {
		_spec.SetField(conceptprogress.FieldNextReview, field.TypeTime, value)
		_node.NextReview = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(conceptprogress.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// ConceptProgressCreateBulk is the builder for creating many ConceptProgress entities in bulk.
type ConceptProgressCreateBulk struct {
	config
	err      error
	builders []*ConceptProgressCreate
}

// Save creates the ConceptProgress entities in the database.
func (_c *ConceptProgressCreateBulk) Save(ctx context.Context) ([]*ConceptProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConceptProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConceptProgressMutation)
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
func (_c *ConceptProgressCreateBulk) SaveX(ctx context.Context) []*ConceptProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
