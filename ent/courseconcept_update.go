// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/polski/ent/courseconcept"
	"github.com/abhisek/polski/ent/predicate"
)

// CourseConceptUpdate is the builder for updating CourseConcept entities.
type CourseConceptUpdate struct {
	config
	hooks    []Hook
	mutation *CourseConceptMutation
}

// Where appends a list predicates to the CourseConceptUpdate builder.
func (_u *CourseConceptUpdate) Where(ps ...predicate.CourseConcept) *CourseConceptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *CourseConceptUpdate) SetCourseID(v string) *CourseConceptUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *CourseConceptUpdate) SetNillableCourseID(v *string) *CourseConceptUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *CourseConceptUpdate) SetConceptID(v string) *CourseConceptUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *CourseConceptUpdate) SetNillableConceptID(v *string) *CourseConceptUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CourseConceptUpdate) SetConfidence(v float64) *CourseConceptUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CourseConceptUpdate) SetNillableConfidence(v *float64) *CourseConceptUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CourseConceptUpdate) AddConfidence(v float64) *CourseConceptUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *CourseConceptUpdate) SetActive(v bool) *CourseConceptUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CourseConceptUpdate) SetNillableActive(v *bool) *CourseConceptUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the CourseConceptMutation object of the builder.
func (_u *CourseConceptUpdate) Mutation() *CourseConceptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseConceptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseConceptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseConceptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseConceptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseConceptUpdate) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := courseconcept.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "CourseConcept.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := courseconcept.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "CourseConcept.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseConceptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courseconcept.Table, courseconcept.Columns, sqlgraph.NewFieldSpec(courseconcept.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(courseconcept.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(courseconcept.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(courseconcept.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(courseconcept.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(courseconcept.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courseconcept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseConceptUpdateOne is the builder for updating a single CourseConcept entity.
type CourseConceptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseConceptMutation
}

// SetCourseID sets the "course_id" field.
func (_u *CourseConceptUpdateOne) SetCourseID(v string) *CourseConceptUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *CourseConceptUpdateOne) SetNillableCourseID(v *string) *CourseConceptUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *CourseConceptUpdateOne) SetConceptID(v string) *CourseConceptUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *CourseConceptUpdateOne) SetNillableConceptID(v *string) *CourseConceptUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CourseConceptUpdateOne) SetConfidence(v float64) *CourseConceptUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CourseConceptUpdateOne) SetNillableConfidence(v *float64) *CourseConceptUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CourseConceptUpdateOne) AddConfidence(v float64) *CourseConceptUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *CourseConceptUpdateOne) SetActive(v bool) *CourseConceptUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CourseConceptUpdateOne) SetNillableActive(v *bool) *CourseConceptUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the CourseConceptMutation object of the builder.
func (_u *CourseConceptUpdateOne) Mutation() *CourseConceptMutation {
	return _u.mutation
}

// Where appends a list predicates to the CourseConceptUpdate builder.
func (_u *CourseConceptUpdateOne) Where(ps ...predicate.CourseConcept) *CourseConceptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseConceptUpdateOne) Select(field string, fields ...string) *CourseConceptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourseConcept entity.
func (_u *CourseConceptUpdateOne) Save(ctx context.Context) (*CourseConcept, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseConceptUpdateOne) SaveX(ctx context.Context) *CourseConcept {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseConceptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseConceptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseConceptUpdateOne) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := courseconcept.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "CourseConcept.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := courseconcept.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "CourseConcept.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseConceptUpdateOne) sqlSave(ctx context.Context) (_node *CourseConcept, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courseconcept.Table, courseconcept.Columns, sqlgraph.NewFieldSpec(courseconcept.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseConcept.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, courseconcept.FieldID)
		for _, f := range fields {
			if !courseconcept.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != courseconcept.FieldID {
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
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(courseconcept.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(courseconcept.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(courseconcept.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(courseconcept.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(courseconcept.FieldActive, field.TypeBool, value)
	}
	_node = &CourseConcept{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courseconcept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
