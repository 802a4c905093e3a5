// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vinciapp/vinci/ent/practicesession"
	"github.com/vinciapp/vinci/ent/predicate"
)

// PracticeSessionDelete is the builder for deleting a PracticeSession entity.
type PracticeSessionDelete struct {
	config
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// Where appends a list predicates to the PracticeSessionDelete builder.
func (_d *PracticeSessionDelete) Where(ps ...predicate.PracticeSession) *PracticeSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PracticeSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PracticeSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PracticeSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(practicesession.Table, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeString))
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

// PracticeSessionDeleteOne is the builder for deleting a single PracticeSession entity.
type PracticeSessionDeleteOne struct {
	_d *PracticeSessionDelete
}

// Where appends a list predicates to the PracticeSessionDelete builder.
func (_d *PracticeSessionDeleteOne) Where(ps ...predicate.PracticeSession) *PracticeSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PracticeSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{practicesession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PracticeSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
