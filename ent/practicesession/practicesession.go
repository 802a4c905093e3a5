// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practicesession type in the database.
	Label = "practice_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldSemester holds the string denoting the semester field in the database.
	FieldSemester = "semester"
	// FieldTotalStudySeconds holds the string denoting the total_study_seconds field in the database.
	FieldTotalStudySeconds = "total_study_seconds"
	// FieldTotalPages holds the string denoting the total_pages field in the database.
	FieldTotalPages = "total_pages"
	// FieldConcepts holds the string denoting the concepts field in the database.
	FieldConcepts = "concepts"
	// FieldPages holds the string denoting the pages field in the database.
	FieldPages = "pages"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the practicesession in the database.
	Table = "practice_sessions"
)

// Columns holds all SQL columns for practicesession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldGrade,
	FieldSemester,
	FieldTotalStudySeconds,
	FieldTotalPages,
	FieldConcepts,
	FieldPages,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	GradeValidator func(string) error
	// TotalStudySecondsValidator is a validator for the "total_study_seconds" field. It is called by the builders before save.
	TotalStudySecondsValidator func(int) error
	// TotalPagesValidator is a validator for the "total_pages" field. It is called by the builders before save.
	TotalPagesValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the PracticeSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// BySemester orders the results by the semester field.
func BySemester(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSemester, opts...).ToFunc()
}

// ByTotalStudySeconds orders the results by the total_study_seconds field.
func ByTotalStudySeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalStudySeconds, opts...).ToFunc()
}

// ByTotalPages orders the results by the total_pages field.
func ByTotalPages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPages, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
