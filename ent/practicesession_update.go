// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/vinciapp/vinci/ent/practicesession"
	"github.com/vinciapp/vinci/ent/predicate"
)

// PracticeSessionUpdate is the builder for updating PracticeSession entities.
type PracticeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdate) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PracticeSessionUpdate) SetUserID(v string) *PracticeSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableUserID(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *PracticeSessionUpdate) ClearUserID() *PracticeSessionUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetGrade sets the "grade" field.
func (_u *PracticeSessionUpdate) SetGrade(v string) *PracticeSessionUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableGrade(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetSemester sets the "semester" field.
func (_u *PracticeSessionUpdate) SetSemester(v string) *PracticeSessionUpdate {
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableSemester(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// ClearSemester clears the value of the "semester" field.
func (_u *PracticeSessionUpdate) ClearSemester() *PracticeSessionUpdate {
	_u.mutation.ClearSemester()
	return _u
}

// SetTotalStudySeconds sets the "total_study_seconds" field.
func (_u *PracticeSessionUpdate) SetTotalStudySeconds(v int) *PracticeSessionUpdate {
	_u.mutation.ResetTotalStudySeconds()
	_u.mutation.SetTotalStudySeconds(v)
	return _u
}

// SetNillableTotalStudySeconds sets the "total_study_seconds" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableTotalStudySeconds(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetTotalStudySeconds(*v)
	}
	return _u
}

// AddTotalStudySeconds adds value to the "total_study_seconds" field.
func (_u *PracticeSessionUpdate) AddTotalStudySeconds(v int) *PracticeSessionUpdate {
	_u.mutation.AddTotalStudySeconds(v)
	return _u
}

// SetTotalPages sets the "total_pages" field.
func (_u *PracticeSessionUpdate) SetTotalPages(v int) *PracticeSessionUpdate {
	_u.mutation.ResetTotalPages()
	_u.mutation.SetTotalPages(v)
	return _u
}

// SetNillableTotalPages sets the "total_pages" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableTotalPages(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetTotalPages(*v)
	}
	return _u
}

// AddTotalPages adds value to the "total_pages" field.
func (_u *PracticeSessionUpdate) AddTotalPages(v int) *PracticeSessionUpdate {
	_u.mutation.AddTotalPages(v)
	return _u
}

// SetConcepts sets the "concepts" field.
func (_u *PracticeSessionUpdate) SetConcepts(v []string) *PracticeSessionUpdate {
	_u.mutation.SetConcepts(v)
	return _u
}

// AppendConcepts appends value to the "concepts" field.
func (_u *PracticeSessionUpdate) AppendConcepts(v []string) *PracticeSessionUpdate {
	_u.mutation.AppendConcepts(v)
	return _u
}

// SetPages sets the "pages" field.
func (_u *PracticeSessionUpdate) SetPages(v json.RawMessage) *PracticeSessionUpdate {
	_u.mutation.SetPages(v)
	return _u
}

// AppendPages appends value to the "pages" field.
func (_u *PracticeSessionUpdate) AppendPages(v json.RawMessage) *PracticeSessionUpdate {
	_u.mutation.AppendPages(v)
	return _u
}

// ClearPages clears the value of the "pages" field.
func (_u *PracticeSessionUpdate) ClearPages() *PracticeSessionUpdate {
	_u.mutation.ClearPages()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PracticeSessionUpdate) SetUpdatedAt(v time.Time) *PracticeSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdate) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PracticeSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := practicesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdate) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := practicesession.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalStudySeconds(); ok {
		if err := practicesession.TotalStudySecondsValidator(v); err != nil {
			return &ValidationError{Name: "total_study_seconds", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.total_study_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPages(); ok {
		if err := practicesession.TotalPagesValidator(v); err != nil {
			return &ValidationError{Name: "total_pages", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.total_pages": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(practicesession.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(practicesession.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(practicesession.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(practicesession.FieldSemester, field.TypeString, value)
	}
	if _u.mutation.SemesterCleared() {
		_spec.ClearField(practicesession.FieldSemester, field.TypeString)
	}
	if value, ok := _u.mutation.TotalStudySeconds(); ok {
		_spec.SetField(practicesession.FieldTotalStudySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalStudySeconds(); ok {
		_spec.AddField(practicesession.FieldTotalStudySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPages(); ok {
		_spec.SetField(practicesession.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPages(); ok {
		_spec.AddField(practicesession.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Concepts(); ok {
		_spec.SetField(practicesession.FieldConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldConcepts, value)
		})
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(practicesession.FieldPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldPages, value)
		})
	}
	if _u.mutation.PagesCleared() {
		_spec.ClearField(practicesession.FieldPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(practicesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeSessionUpdateOne is the builder for updating a single PracticeSession entity.
type PracticeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *PracticeSessionUpdateOne) SetUserID(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableUserID(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *PracticeSessionUpdateOne) ClearUserID() *PracticeSessionUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetGrade sets the "grade" field.
func (_u *PracticeSessionUpdateOne) SetGrade(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableGrade(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetSemester sets the "semester" field.
func (_u *PracticeSessionUpdateOne) SetSemester(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableSemester(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// ClearSemester clears the value of the "semester" field.
func (_u *PracticeSessionUpdateOne) ClearSemester() *PracticeSessionUpdateOne {
	_u.mutation.ClearSemester()
	return _u
}

// SetTotalStudySeconds sets the "total_study_seconds" field.
func (_u *PracticeSessionUpdateOne) SetTotalStudySeconds(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetTotalStudySeconds()
	_u.mutation.SetTotalStudySeconds(v)
	return _u
}

// SetNillableTotalStudySeconds sets the "total_study_seconds" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableTotalStudySeconds(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetTotalStudySeconds(*v)
	}
	return _u
}

// AddTotalStudySeconds adds value to the "total_study_seconds" field.
func (_u *PracticeSessionUpdateOne) AddTotalStudySeconds(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddTotalStudySeconds(v)
	return _u
}

// SetTotalPages sets the "total_pages" field.
func (_u *PracticeSessionUpdateOne) SetTotalPages(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetTotalPages()
	_u.mutation.SetTotalPages(v)
	return _u
}

// SetNillableTotalPages sets the "total_pages" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableTotalPages(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetTotalPages(*v)
	}
	return _u
}

// AddTotalPages adds value to the "total_pages" field.
func (_u *PracticeSessionUpdateOne) AddTotalPages(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddTotalPages(v)
	return _u
}

// SetConcepts sets the "concepts" field.
func (_u *PracticeSessionUpdateOne) SetConcepts(v []string) *PracticeSessionUpdateOne {
	_u.mutation.SetConcepts(v)
	return _u
}

// AppendConcepts appends value to the "concepts" field.
func (_u *PracticeSessionUpdateOne) AppendConcepts(v []string) *PracticeSessionUpdateOne {
	_u.mutation.AppendConcepts(v)
	return _u
}

// SetPages sets the "pages" field.
func (_u *PracticeSessionUpdateOne) SetPages(v json.RawMessage) *PracticeSessionUpdateOne {
	_u.mutation.SetPages(v)
	return _u
}

// AppendPages appends value to the "pages" field.
func (_u *PracticeSessionUpdateOne) AppendPages(v json.RawMessage) *PracticeSessionUpdateOne {
	_u.mutation.AppendPages(v)
	return _u
}

// ClearPages clears the value of the "pages" field.
func (_u *PracticeSessionUpdateOne) ClearPages() *PracticeSessionUpdateOne {
	_u.mutation.ClearPages()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PracticeSessionUpdateOne) SetUpdatedAt(v time.Time) *PracticeSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdateOne) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdateOne) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeSessionUpdateOne) Select(field string, fields ...string) *PracticeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeSession entity.
func (_u *PracticeSessionUpdateOne) Save(ctx context.Context) (*PracticeSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) SaveX(ctx context.Context) *PracticeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PracticeSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := practicesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := practicesession.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalStudySeconds(); ok {
		if err := practicesession.TotalStudySecondsValidator(v); err != nil {
			return &ValidationError{Name: "total_study_seconds", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.total_study_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPages(); ok {
		if err := practicesession.TotalPagesValidator(v); err != nil {
			return &ValidationError{Name: "total_pages", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.total_pages": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesession.FieldID)
		for _, f := range fields {
			if !practicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesession.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(practicesession.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(practicesession.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(practicesession.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(practicesession.FieldSemester, field.TypeString, value)
	}
	if _u.mutation.SemesterCleared() {
		_spec.ClearField(practicesession.FieldSemester, field.TypeString)
	}
	if value, ok := _u.mutation.TotalStudySeconds(); ok {
		_spec.SetField(practicesession.FieldTotalStudySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalStudySeconds(); ok {
		_spec.AddField(practicesession.FieldTotalStudySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPages(); ok {
		_spec.SetField(practicesession.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPages(); ok {
		_spec.AddField(practicesession.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Concepts(); ok {
		_spec.SetField(practicesession.FieldConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldConcepts, value)
		})
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(practicesession.FieldPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldPages, value)
		})
	}
	if _u.mutation.PagesCleared() {
		_spec.ClearField(practicesession.FieldPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(practicesession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PracticeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
