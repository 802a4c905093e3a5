// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vinciapp/vinci/ent/practicesession"
	"github.com/vinciapp/vinci/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypePracticeSession = "PracticeSession"
)

// PracticeSessionMutation represents an operation that mutates the PracticeSession nodes in the graph.
type PracticeSessionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	user_id                *string
	grade                  *string
	semester               *string
	total_study_seconds    *int
	addtotal_study_seconds *int
	total_pages            *int
	addtotal_pages         *int
	concepts               *[]string
	appendconcepts         []string
	pages                  *json.RawMessage
	appendpages            json.RawMessage
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*PracticeSession, error)
	predicates             []predicate.PracticeSession
}

var _ ent.Mutation = (*PracticeSessionMutation)(nil)

// practicesessionOption allows management of the mutation configuration using functional options.
type practicesessionOption func(*PracticeSessionMutation)

// newPracticeSessionMutation creates new mutation for the PracticeSession entity.
func newPracticeSessionMutation(c config, op Op, opts ...practicesessionOption) *PracticeSessionMutation {
	m := &PracticeSessionMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeSessionID sets the ID field of the mutation.
func withPracticeSessionID(id string) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeSession
		)
		m.oldValue = func(ctx context.Context) (*PracticeSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeSession sets the old PracticeSession of the mutation.
func withPracticeSession(node *PracticeSession) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		m.oldValue = func(context.Context) (*PracticeSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PracticeSession entities.
func (m *PracticeSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PracticeSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PracticeSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *PracticeSessionMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[practicesession.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *PracticeSessionMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PracticeSessionMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, practicesession.FieldUserID)
}

// SetGrade sets the "grade" field.
func (m *PracticeSessionMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *PracticeSessionMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ResetGrade resets all changes to the "grade" field.
func (m *PracticeSessionMutation) ResetGrade() {
	m.grade = nil
}

// SetSemester sets the "semester" field.
func (m *PracticeSessionMutation) SetSemester(s string) {
	m.semester = &s
}

// Semester returns the value of the "semester" field in the mutation.
func (m *PracticeSessionMutation) Semester() (r string, exists bool) {
	v := m.semester
	if v == nil {
		return
	}
	return *v, true
}

// OldSemester returns the old "semester" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldSemester(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemester is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemester requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemester: %w", err)
	}
	return oldValue.Semester, nil
}

// ClearSemester clears the value of the "semester" field.
func (m *PracticeSessionMutation) ClearSemester() {
	m.semester = nil
	m.clearedFields[practicesession.FieldSemester] = struct{}{}
}

// SemesterCleared returns if the "semester" field was cleared in this mutation.
func (m *PracticeSessionMutation) SemesterCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldSemester]
	return ok
}

// ResetSemester resets all changes to the "semester" field.
func (m *PracticeSessionMutation) ResetSemester() {
	m.semester = nil
	delete(m.clearedFields, practicesession.FieldSemester)
}

// SetTotalStudySeconds sets the "total_study_seconds" field.
func (m *PracticeSessionMutation) SetTotalStudySeconds(i int) {
	m.total_study_seconds = &i
	m.addtotal_study_seconds = nil
}

// TotalStudySeconds returns the value of the "total_study_seconds" field in the mutation.
func (m *PracticeSessionMutation) TotalStudySeconds() (r int, exists bool) {
	v := m.total_study_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalStudySeconds returns the old "total_study_seconds" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldTotalStudySeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalStudySeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalStudySeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalStudySeconds: %w", err)
	}
	return oldValue.TotalStudySeconds, nil
}

// AddTotalStudySeconds adds i to the "total_study_seconds" field.
func (m *PracticeSessionMutation) AddTotalStudySeconds(i int) {
	if m.addtotal_study_seconds != nil {
		*m.addtotal_study_seconds += i
	} else {
		m.addtotal_study_seconds = &i
	}
}

// AddedTotalStudySeconds returns the value that was added to the "total_study_seconds" field in this mutation.
func (m *PracticeSessionMutation) AddedTotalStudySeconds() (r int, exists bool) {
	v := m.addtotal_study_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalStudySeconds resets all changes to the "total_study_seconds" field.
func (m *PracticeSessionMutation) ResetTotalStudySeconds() {
	m.total_study_seconds = nil
	m.addtotal_study_seconds = nil
}

// SetTotalPages sets the "total_pages" field.
func (m *PracticeSessionMutation) SetTotalPages(i int) {
	m.total_pages = &i
	m.addtotal_pages = nil
}

// TotalPages returns the value of the "total_pages" field in the mutation.
func (m *PracticeSessionMutation) TotalPages() (r int, exists bool) {
	v := m.total_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPages returns the old "total_pages" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldTotalPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPages: %w", err)
	}
	return oldValue.TotalPages, nil
}

// AddTotalPages adds i to the "total_pages" field.
func (m *PracticeSessionMutation) AddTotalPages(i int) {
	if m.addtotal_pages != nil {
		*m.addtotal_pages += i
	} else {
		m.addtotal_pages = &i
	}
}

// AddedTotalPages returns the value that was added to the "total_pages" field in this mutation.
func (m *PracticeSessionMutation) AddedTotalPages() (r int, exists bool) {
	v := m.addtotal_pages
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPages resets all changes to the "total_pages" field.
func (m *PracticeSessionMutation) ResetTotalPages() {
	m.total_pages = nil
	m.addtotal_pages = nil
}

// SetConcepts sets the "concepts" field.
func (m *PracticeSessionMutation) SetConcepts(s []string) {
	m.concepts = &s
	m.appendconcepts = nil
}

// Concepts returns the value of the "concepts" field in the mutation.
func (m *PracticeSessionMutation) Concepts() (r []string, exists bool) {
	v := m.concepts
	if v == nil {
		return
	}
	return *v, true
}

// OldConcepts returns the old "concepts" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldConcepts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcepts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcepts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcepts: %w", err)
	}
	return oldValue.Concepts, nil
}

// AppendConcepts adds s to the "concepts" field.
func (m *PracticeSessionMutation) AppendConcepts(s []string) {
	m.appendconcepts = append(m.appendconcepts, s...)
}

// AppendedConcepts returns the list of values that were appended to the "concepts" field in this mutation.
func (m *PracticeSessionMutation) AppendedConcepts() ([]string, bool) {
	if len(m.appendconcepts) == 0 {
		return nil, false
	}
	return m.appendconcepts, true
}

// ResetConcepts resets all changes to the "concepts" field.
func (m *PracticeSessionMutation) ResetConcepts() {
	m.concepts = nil
	m.appendconcepts = nil
}

// SetPages sets the "pages" field.
func (m *PracticeSessionMutation) SetPages(jm json.RawMessage) {
	m.pages = &jm
	m.appendpages = nil
}

// Pages returns the value of the "pages" field in the mutation.
func (m *PracticeSessionMutation) Pages() (r json.RawMessage, exists bool) {
	v := m.pages
	if v == nil {
		return
	}
	return *v, true
}

// OldPages returns the old "pages" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldPages(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPages: %w", err)
	}
	return oldValue.Pages, nil
}

// AppendPages adds jm to the "pages" field.
func (m *PracticeSessionMutation) AppendPages(jm json.RawMessage) {
	m.appendpages = append(m.appendpages, jm...)
}

// AppendedPages returns the list of values that were appended to the "pages" field in this mutation.
func (m *PracticeSessionMutation) AppendedPages() (json.RawMessage, bool) {
	if len(m.appendpages) == 0 {
		return nil, false
	}
	return m.appendpages, true
}

// ClearPages clears the value of the "pages" field.
func (m *PracticeSessionMutation) ClearPages() {
	m.pages = nil
	m.appendpages = nil
	m.clearedFields[practicesession.FieldPages] = struct{}{}
}

// PagesCleared returns if the "pages" field was cleared in this mutation.
func (m *PracticeSessionMutation) PagesCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldPages]
	return ok
}

// ResetPages resets all changes to the "pages" field.
func (m *PracticeSessionMutation) ResetPages() {
	m.pages = nil
	m.appendpages = nil
	delete(m.clearedFields, practicesession.FieldPages)
}

// SetCreatedAt sets the "created_at" field.
func (m *PracticeSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PracticeSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PracticeSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PracticeSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PracticeSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PracticeSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PracticeSessionMutation builder.
func (m *PracticeSessionMutation) Where(ps ...predicate.PracticeSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeSession).
func (m *PracticeSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeSessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, practicesession.FieldUserID)
	}
	if m.grade != nil {
		fields = append(fields, practicesession.FieldGrade)
	}
	if m.semester != nil {
		fields = append(fields, practicesession.FieldSemester)
	}
	if m.total_study_seconds != nil {
		fields = append(fields, practicesession.FieldTotalStudySeconds)
	}
	if m.total_pages != nil {
		fields = append(fields, practicesession.FieldTotalPages)
	}
	if m.concepts != nil {
		fields = append(fields, practicesession.FieldConcepts)
	}
	if m.pages != nil {
		fields = append(fields, practicesession.FieldPages)
	}
	if m.created_at != nil {
		fields = append(fields, practicesession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, practicesession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldUserID:
		return m.UserID()
	case practicesession.FieldGrade:
		return m.Grade()
	case practicesession.FieldSemester:
		return m.Semester()
	case practicesession.FieldTotalStudySeconds:
		return m.TotalStudySeconds()
	case practicesession.FieldTotalPages:
		return m.TotalPages()
	case practicesession.FieldConcepts:
		return m.Concepts()
	case practicesession.FieldPages:
		return m.Pages()
	case practicesession.FieldCreatedAt:
		return m.CreatedAt()
	case practicesession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practicesession.FieldUserID:
		return m.OldUserID(ctx)
	case practicesession.FieldGrade:
		return m.OldGrade(ctx)
	case practicesession.FieldSemester:
		return m.OldSemester(ctx)
	case practicesession.FieldTotalStudySeconds:
		return m.OldTotalStudySeconds(ctx)
	case practicesession.FieldTotalPages:
		return m.OldTotalPages(ctx)
	case practicesession.FieldConcepts:
		return m.OldConcepts(ctx)
	case practicesession.FieldPages:
		return m.OldPages(ctx)
	case practicesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case practicesession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case practicesession.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case practicesession.FieldSemester:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemester(v)
		return nil
	case practicesession.FieldTotalStudySeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalStudySeconds(v)
		return nil
	case practicesession.FieldTotalPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPages(v)
		return nil
	case practicesession.FieldConcepts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcepts(v)
		return nil
	case practicesession.FieldPages:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPages(v)
		return nil
	case practicesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case practicesession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeSessionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_study_seconds != nil {
		fields = append(fields, practicesession.FieldTotalStudySeconds)
	}
	if m.addtotal_pages != nil {
		fields = append(fields, practicesession.FieldTotalPages)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldTotalStudySeconds:
		return m.AddedTotalStudySeconds()
	case practicesession.FieldTotalPages:
		return m.AddedTotalPages()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldTotalStudySeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalStudySeconds(v)
		return nil
	case practicesession.FieldTotalPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPages(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(practicesession.FieldUserID) {
		fields = append(fields, practicesession.FieldUserID)
	}
	if m.FieldCleared(practicesession.FieldSemester) {
		fields = append(fields, practicesession.FieldSemester)
	}
	if m.FieldCleared(practicesession.FieldPages) {
		fields = append(fields, practicesession.FieldPages)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ClearField(name string) error {
	switch name {
	case practicesession.FieldUserID:
		m.ClearUserID()
		return nil
	case practicesession.FieldSemester:
		m.ClearSemester()
		return nil
	case practicesession.FieldPages:
		m.ClearPages()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ResetField(name string) error {
	switch name {
	case practicesession.FieldUserID:
		m.ResetUserID()
		return nil
	case practicesession.FieldGrade:
		m.ResetGrade()
		return nil
	case practicesession.FieldSemester:
		m.ResetSemester()
		return nil
	case practicesession.FieldTotalStudySeconds:
		m.ResetTotalStudySeconds()
		return nil
	case practicesession.FieldTotalPages:
		m.ResetTotalPages()
		return nil
	case practicesession.FieldConcepts:
		m.ResetConcepts()
		return nil
	case practicesession.FieldPages:
		m.ResetPages()
		return nil
	case practicesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case practicesession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeSession edge %s", name)
}
