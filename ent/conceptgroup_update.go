// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/polski/ent/conceptgroup"
	"github.com/abhisek/polski/ent/predicate"
)

// ConceptGroupUpdate is the builder for updating ConceptGroup entities.
type ConceptGroupUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptGroupMutation
}

// Where appends a list predicates to the ConceptGroupUpdate builder.
func (_u *ConceptGroupUpdate) Where(ps ...predicate.ConceptGroup) *ConceptGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ConceptGroupUpdate) SetName(v string) *ConceptGroupUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConceptGroupUpdate) SetNillableName(v *string) *ConceptGroupUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMemberConcepts sets the "member_concepts" field.
func (_u *ConceptGroupUpdate) SetMemberConcepts(v []string) *ConceptGroupUpdate {
	_u.mutation.SetMemberConcepts(v)
	return _u
}

// AppendMemberConcepts appends value to the "member_concepts" field.
func (_u *ConceptGroupUpdate) AppendMemberConcepts(v []string) *ConceptGroupUpdate {
	_u.mutation.AppendMemberConcepts(v)
	return _u
}

// ClearMemberConcepts clears the value of the "member_concepts" field.
func (_u *ConceptGroupUpdate) ClearMemberConcepts() *ConceptGroupUpdate {
	_u.mutation.ClearMemberConcepts()
	return _u
}

// SetActive sets the "active" field.
func (_u *ConceptGroupUpdate) SetActive(v bool) *ConceptGroupUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ConceptGroupUpdate) SetNillableActive(v *bool) *ConceptGroupUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ConceptGroupMutation object of the builder.
func (_u *ConceptGroupUpdate) Mutation() *ConceptGroupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptGroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptGroupUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := conceptgroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ConceptGroup.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptgroup.Table, conceptgroup.Columns, sqlgraph.NewFieldSpec(conceptgroup.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(conceptgroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MemberConcepts(); ok {
		_spec.SetField(conceptgroup.FieldMemberConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMemberConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conceptgroup.FieldMemberConcepts, value)
		})
	}
	if _u.mutation.MemberConceptsCleared() {
		_spec.ClearField(conceptgroup.FieldMemberConcepts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(conceptgroup.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptGroupUpdateOne is the builder for updating a single ConceptGroup entity.
type ConceptGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptGroupMutation
}

// SetName sets the "name" field.
func (_u *ConceptGroupUpdateOne) SetName(v string) *ConceptGroupUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConceptGroupUpdateOne) SetNillableName(v *string) *ConceptGroupUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMemberConcepts sets the "member_concepts" field.
func (_u *ConceptGroupUpdateOne) SetMemberConcepts(v []string) *ConceptGroupUpdateOne {
	_u.mutation.SetMemberConcepts(v)
	return _u
}

// AppendMemberConcepts appends value to the "member_concepts" field.
func (_u *ConceptGroupUpdateOne) AppendMemberConcepts(v []string) *ConceptGroupUpdateOne {
	_u.mutation.AppendMemberConcepts(v)
	return _u
}

// ClearMemberConcepts clears the value of the "member_concepts" field.
func (_u *ConceptGroupUpdateOne) ClearMemberConcepts() *ConceptGroupUpdateOne {
	_u.mutation.ClearMemberConcepts()
	return _u
}

// SetActive sets the "active" field.
func (_u *ConceptGroupUpdateOne) SetActive(v bool) *ConceptGroupUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ConceptGroupUpdateOne) SetNillableActive(v *bool) *ConceptGroupUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ConceptGroupMutation object of the builder.
func (_u *ConceptGroupUpdateOne) Mutation() *ConceptGroupMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptGroupUpdate builder.
func (_u *ConceptGroupUpdateOne) Where(ps ...predicate.ConceptGroup) *ConceptGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptGroupUpdateOne) Select(field string, fields ...string) *ConceptGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConceptGroup entity.
func (_u *ConceptGroupUpdateOne) Save(ctx context.Context) (*ConceptGroup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptGroupUpdateOne) SaveX(ctx context.Context) *ConceptGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptGroupUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := conceptgroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ConceptGroup.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptGroupUpdateOne) sqlSave(ctx context.Context) (_node *ConceptGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptgroup.Table, conceptgroup.Columns, sqlgraph.NewFieldSpec(conceptgroup.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConceptGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conceptgroup.FieldID)
		for _, f := range fields {
			if !conceptgroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conceptgroup.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(conceptgroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MemberConcepts(); ok {
		_spec.SetField(conceptgroup.FieldMemberConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMemberConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conceptgroup.FieldMemberConcepts, value)
		})
	}
	if _u.mutation.MemberConceptsCleared() {
		_spec.ClearField(conceptgroup.FieldMemberConcepts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(conceptgroup.FieldActive, field.TypeBool, value)
	}
	_node = &ConceptGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
