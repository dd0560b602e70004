// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/polski/ent/conceptgroup"
)

// ConceptGroupCreate is the builder for creating a ConceptGroup entity.
type ConceptGroupCreate struct {
	config
	mutation *ConceptGroupMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ConceptGroupCreate) SetName(v string) *ConceptGroupCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetMemberConcepts sets the "member_concepts" field.
func (_c *ConceptGroupCreate) SetMemberConcepts(v []string) *ConceptGroupCreate {
	_c.mutation.SetMemberConcepts(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *ConceptGroupCreate) SetActive(v bool) *ConceptGroupCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ConceptGroupCreate) SetNillableActive(v *bool) *ConceptGroupCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConceptGroupCreate) SetID(v string) *ConceptGroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConceptGroupMutation object of the builder.
func (_c *ConceptGroupCreate) Mutation() *ConceptGroupMutation {
	return _c.mutation
}

// Save creates the ConceptGroup in the database.
func (_c *ConceptGroupCreate) Save(ctx context.Context) (*ConceptGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConceptGroupCreate) SaveX(ctx context.Context) *ConceptGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConceptGroupCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := conceptgroup.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConceptGroupCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ConceptGroup.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := conceptgroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ConceptGroup.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ConceptGroup.active"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := conceptgroup.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "ConceptGroup.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ConceptGroupCreate) sqlSave(ctx context.Context) (*ConceptGroup, error) {
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
			return nil, fmt.Errorf("unexpected ConceptGroup.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConceptGroupCreate) createSpec() (*ConceptGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &ConceptGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conceptgroup.Table, sqlgraph.NewFieldSpec(conceptgroup.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(conceptgroup.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.MemberConcepts(); ok {
		_spec.SetField(conceptgroup.FieldMemberConcepts, field.TypeJSON, value)
		_node.MemberConcepts = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(conceptgroup.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// ConceptGroupCreateBulk is the builder for creating many ConceptGroup entities in bulk.
type ConceptGroupCreateBulk struct {
	config
	err      error
	builders []*ConceptGroupCreate
}

// Save creates the ConceptGroup entities in the database.
func (_c *ConceptGroupCreateBulk) Save(ctx context.Context) ([]*ConceptGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConceptGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConceptGroupMutation)
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
func (_c *ConceptGroupCreateBulk) SaveX(ctx context.Context) []*ConceptGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
