// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vinciapp/vinci/ent/practicesession"
)

// PracticeSession is the model entity for the PracticeSession schema.
type PracticeSession struct {
	config `json:"-"`
	// ID of the ent.
	// UUID assigned at session creation
	ID string `json:"id,omitempty"`
	// Owner; empty until the session is claimed
	UserID string `json:"user_id,omitempty"`
	// Grade level label, e.g. '3rd Grade'
	Grade string `json:"grade,omitempty"`
	// Optional semester label
	Semester string `json:"semester,omitempty"`
	// Requested total study time
	TotalStudySeconds int `json:"total_study_seconds,omitempty"`
	// Planned number of pages
	TotalPages int `json:"total_pages,omitempty"`
	// Concept ids practiced in this session
	Concepts []string `json:"concepts,omitempty"`
	// Serialized pages with problems and attempts
	Pages json.RawMessage `json:"pages,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicesession.FieldConcepts, practicesession.FieldPages:
			values[i] = new([]byte)
		case practicesession.FieldTotalStudySeconds, practicesession.FieldTotalPages:
			values[i] = new(sql.NullInt64)
		case practicesession.FieldID, practicesession.FieldUserID, practicesession.FieldGrade, practicesession.FieldSemester:
			values[i] = new(sql.NullString)
		case practicesession.FieldCreatedAt, practicesession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeSession fields.
func (_m *PracticeSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicesession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case practicesession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case practicesession.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case practicesession.FieldSemester:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field semester", values[i])
			} else if value.Valid {
				_m.Semester = value.String
			}
		case practicesession.FieldTotalStudySeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_study_seconds", values[i])
			} else if value.Valid {
				_m.TotalStudySeconds = int(value.Int64)
			}
		case practicesession.FieldTotalPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_pages", values[i])
			} else if value.Valid {
				_m.TotalPages = int(value.Int64)
			}
		case practicesession.FieldConcepts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concepts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Concepts); err != nil {
					return fmt.Errorf("unmarshal field concepts: %w", err)
				}
			}
		case practicesession.FieldPages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Pages); err != nil {
					return fmt.Errorf("unmarshal field pages: %w", err)
				}
			}
		case practicesession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case practicesession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeSession.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeSession.
// Note that you need to call PracticeSession.Unwrap() before calling this method if this PracticeSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeSession) Update() *PracticeSessionUpdateOne {
	return NewPracticeSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeSession) Unwrap() *PracticeSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeSession) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("semester=")
	builder.WriteString(_m.Semester)
	builder.WriteString(", ")
	builder.WriteString("total_study_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalStudySeconds))
	builder.WriteString(", ")
	builder.WriteString("total_pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPages))
	builder.WriteString(", ")
	builder.WriteString("concepts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Concepts))
	builder.WriteString(", ")
	builder.WriteString("pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pages))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeSessions is a parsable slice of PracticeSession.
type PracticeSessions []*PracticeSession
