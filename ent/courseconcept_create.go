// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/polski/ent/courseconcept"
)

// CourseConceptCreate is the builder for creating a CourseConcept entity.
type CourseConceptCreate struct {
	config
	mutation *CourseConceptMutation
	hooks    []Hook
}

// SetCourseID sets the "course_id" field.
func (_c *CourseConceptCreate) SetCourseID(v string) *CourseConceptCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *CourseConceptCreate) SetConceptID(v string) *CourseConceptCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *CourseConceptCreate) SetConfidence(v float64) *CourseConceptCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *CourseConceptCreate) SetNillableConfidence(v *float64) *CourseConceptCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *CourseConceptCreate) SetActive(v bool) *CourseConceptCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *CourseConceptCreate) SetNillableActive(v *bool) *CourseConceptCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// Mutation returns the CourseConceptMutation object of the builder.
func (_c *CourseConceptCreate) Mutation() *CourseConceptMutation {
	return _c.mutation
}

// Save creates the CourseConcept in the database.
func (_c *CourseConceptCreate) Save(ctx context.Context) (*CourseConcept, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseConceptCreate) SaveX(ctx context.Context) *CourseConcept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseConceptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseConceptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseConceptCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := courseconcept.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := courseconcept.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseConceptCreate) check() error {
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "CourseConcept.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := courseconcept.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "CourseConcept.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "CourseConcept.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := courseconcept.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "CourseConcept.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "CourseConcept.confidence"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "CourseConcept.active"`)}
	}
	return nil
}

func (_c *CourseConceptCreate) sqlSave(ctx context.Context) (*CourseConcept, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CourseConceptCreate) createSpec() (*CourseConcept, *sqlgraph.CreateSpec) {
	var (
		_node = &CourseConcept{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(courseconcept.Table, sqlgraph.NewFieldSpec(courseconcept.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(courseconcept.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(courseconcept.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(courseconcept.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(courseconcept.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// CourseConceptCreateBulk is the builder for creating many CourseConcept entities in bulk.
type CourseConceptCreateBulk struct {
	config
	err      error
	builders []*CourseConceptCreate
}

// Save creates the CourseConcept entities in the database.
func (_c *CourseConceptCreateBulk) Save(ctx context.Context) ([]*CourseConcept, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourseConcept, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseConceptMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *CourseConceptCreateBulk) SaveX(ctx context.Context) []*CourseConcept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseConceptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseConceptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
