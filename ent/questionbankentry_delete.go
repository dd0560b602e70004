// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/polski/ent/predicate"
	"github.com/abhisek/polski/ent/questionbankentry"
)

// QuestionBankEntryDelete is the builder for deleting a QuestionBankEntry entity.
type QuestionBankEntryDelete struct {
	config
	hooks    []Hook
	mutation *QuestionBankEntryMutation
}

// Where appends a list predicates to the QuestionBankEntryDelete builder.
func (_d *QuestionBankEntryDelete) Where(ps ...predicate.QuestionBankEntry) *QuestionBankEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *QuestionBankEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuestionBankEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *QuestionBankEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(questionbankentry.Table, sqlgraph.NewFieldSpec(questionbankentry.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// QuestionBankEntryDeleteOne is the builder for deleting a single QuestionBankEntry entity.
type QuestionBankEntryDeleteOne struct {
	_d *QuestionBankEntryDelete
}

// Where appends a list predicates to the QuestionBankEntryDelete builder.
func (_d *QuestionBankEntryDeleteOne) Where(ps ...predicate.QuestionBankEntry) *QuestionBankEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *QuestionBankEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{questionbankentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuestionBankEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
