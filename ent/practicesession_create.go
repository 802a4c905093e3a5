// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vinciapp/vinci/ent/practicesession"
)

// PracticeSessionCreate is the builder for creating a PracticeSession entity.
type PracticeSessionCreate struct {
	config
	mutation *PracticeSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PracticeSessionCreate) SetUserID(v string) *PracticeSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableUserID(v *string) *PracticeSessionCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetGrade sets the "grade" field.
func (_c *PracticeSessionCreate) SetGrade(v string) *PracticeSessionCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetSemester sets the "semester" field.
func (_c *PracticeSessionCreate) SetSemester(v string) *PracticeSessionCreate {
	_c.mutation.SetSemester(v)
	return _c
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableSemester(v *string) *PracticeSessionCreate {
	if v != nil {
		_c.SetSemester(*v)
	}
	return _c
}

// SetTotalStudySeconds sets the "total_study_seconds" field.
func (_c *PracticeSessionCreate) SetTotalStudySeconds(v int) *PracticeSessionCreate {
	_c.mutation.SetTotalStudySeconds(v)
	return _c
}

// SetTotalPages sets the "total_pages" field.
func (_c *PracticeSessionCreate) SetTotalPages(v int) *PracticeSessionCreate {
	_c.mutation.SetTotalPages(v)
	return _c
}

// SetConcepts sets the "concepts" field.
func (_c *PracticeSessionCreate) SetConcepts(v []string) *PracticeSessionCreate {
	_c.mutation.SetConcepts(v)
	return _c
}

// SetPages sets the "pages" field.
func (_c *PracticeSessionCreate) SetPages(v json.RawMessage) *PracticeSessionCreate {
	_c.mutation.SetPages(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PracticeSessionCreate) SetCreatedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableCreatedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PracticeSessionCreate) SetUpdatedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableUpdatedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PracticeSessionCreate) SetID(v string) *PracticeSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_c *PracticeSessionCreate) Mutation() *PracticeSessionMutation {
	return _c.mutation
}

// Save creates the PracticeSession in the database.
func (_c *PracticeSessionCreate) Save(ctx context.Context) (*PracticeSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeSessionCreate) SaveX(ctx context.Context) *PracticeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeSessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := practicesession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := practicesession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeSessionCreate) check() error {
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "PracticeSession.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := practicesession.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalStudySeconds(); !ok {
		return &ValidationError{Name: "total_study_seconds", err: errors.New(`ent: missing required field "PracticeSession.total_study_seconds"`)}
	}
	if v, ok := _c.mutation.TotalStudySeconds(); ok {
		if err := practicesession.TotalStudySecondsValidator(v); err != nil {
			return &ValidationError{Name: "total_study_seconds", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.total_study_seconds": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalPages(); !ok {
		return &ValidationError{Name: "total_pages", err: errors.New(`ent: missing required field "PracticeSession.total_pages"`)}
	}
	if v, ok := _c.mutation.TotalPages(); ok {
		if err := practicesession.TotalPagesValidator(v); err != nil {
			return &ValidationError{Name: "total_pages", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.total_pages": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Concepts(); !ok {
		return &ValidationError{Name: "concepts", err: errors.New(`ent: missing required field "PracticeSession.concepts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PracticeSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PracticeSession.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := practicesession.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.id": %w`, err)}
		}
	}
	return nil
}

func (_c *PracticeSessionCreate) sqlSave(ctx context.Context) (*PracticeSession, error) {
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
			return nil, fmt.Errorf("unexpected PracticeSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PracticeSessionCreate) createSpec() (*PracticeSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicesession.Table, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(practicesession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(practicesession.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Semester(); ok {
		_spec.SetField(practicesession.FieldSemester, field.TypeString, value)
		_node.Semester = value
	}
	if value, ok := _c.mutation.TotalStudySeconds(); ok {
		_spec.SetField(practicesession.FieldTotalStudySeconds, field.TypeInt, value)
		_node.TotalStudySeconds = value
	}
	if value, ok := _c.mutation.TotalPages(); ok {
		_spec.SetField(practicesession.FieldTotalPages, field.TypeInt, value)
		_node.TotalPages = value
	}
	if value, ok := _c.mutation.Concepts(); ok {
		_spec.SetField(practicesession.FieldConcepts, field.TypeJSON, value)
		_node.Concepts = value
	}
	if value, ok := _c.mutation.Pages(); ok {
		_spec.SetField(practicesession.FieldPages, field.TypeJSON, value)
		_node.Pages = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(practicesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(practicesession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PracticeSessionCreateBulk is the builder for creating many PracticeSession entities in bulk.
type PracticeSessionCreateBulk struct {
	config
	err      error
	builders []*PracticeSessionCreate
}

// Save creates the PracticeSession entities in the database.
func (_c *PracticeSessionCreateBulk) Save(ctx context.Context) ([]*PracticeSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeSessionMutation)
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
func (_c *PracticeSessionCreateBulk) SaveX(ctx context.Context) []*PracticeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
