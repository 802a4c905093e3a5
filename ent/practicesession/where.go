// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vinciapp/vinci/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldUserID, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldGrade, v))
}

// Semester applies equality check predicate on the "semester" field. It's identical to SemesterEQ.
func Semester(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSemester, v))
}

// TotalStudySeconds applies equality check predicate on the "total_study_seconds" field. It's identical to TotalStudySecondsEQ.
func TotalStudySeconds(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTotalStudySeconds, v))
}

// TotalPages applies equality check predicate on the "total_pages" field. It's identical to TotalPagesEQ.
func TotalPages(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTotalPages, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldUserID, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldGrade, v))
}

// SemesterEQ applies the EQ predicate on the "semester" field.
func SemesterEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSemester, v))
}

// SemesterNEQ applies the NEQ predicate on the "semester" field.
func SemesterNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldSemester, v))
}

// SemesterIn applies the In predicate on the "semester" field.
func SemesterIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldSemester, vs...))
}

// SemesterNotIn applies the NotIn predicate on the "semester" field.
func SemesterNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldSemester, vs...))
}

// SemesterGT applies the GT predicate on the "semester" field.
func SemesterGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldSemester, v))
}

// SemesterGTE applies the GTE predicate on the "semester" field.
func SemesterGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldSemester, v))
}

// SemesterLT applies the LT predicate on the "semester" field.
func SemesterLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldSemester, v))
}

// SemesterLTE applies the LTE predicate on the "semester" field.
func SemesterLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldSemester, v))
}

// SemesterContains applies the Contains predicate on the "semester" field.
func SemesterContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldSemester, v))
}

// SemesterHasPrefix applies the HasPrefix predicate on the "semester" field.
func SemesterHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldSemester, v))
}

// SemesterHasSuffix applies the HasSuffix predicate on the "semester" field.
func SemesterHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldSemester, v))
}

// SemesterIsNil applies the IsNil predicate on the "semester" field.
func SemesterIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldSemester))
}

// SemesterNotNil applies the NotNil predicate on the "semester" field.
func SemesterNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldSemester))
}

// SemesterEqualFold applies the EqualFold predicate on the "semester" field.
func SemesterEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldSemester, v))
}

// SemesterContainsFold applies the ContainsFold predicate on the "semester" field.
func SemesterContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldSemester, v))
}

// TotalStudySecondsEQ applies the EQ predicate on the "total_study_seconds" field.
func TotalStudySecondsEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTotalStudySeconds, v))
}

// TotalStudySecondsNEQ applies the NEQ predicate on the "total_study_seconds" field.
func TotalStudySecondsNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTotalStudySeconds, v))
}

// TotalStudySecondsIn applies the In predicate on the "total_study_seconds" field.
func TotalStudySecondsIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldTotalStudySeconds, vs...))
}

// TotalStudySecondsNotIn applies the NotIn predicate on the "total_study_seconds" field.
func TotalStudySecondsNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldTotalStudySeconds, vs...))
}

// TotalStudySecondsGT applies the GT predicate on the "total_study_seconds" field.
func TotalStudySecondsGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldTotalStudySeconds, v))
}

// TotalStudySecondsGTE applies the GTE predicate on the "total_study_seconds" field.
func TotalStudySecondsGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldTotalStudySeconds, v))
}

// TotalStudySecondsLT applies the LT predicate on the "total_study_seconds" field.
func TotalStudySecondsLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldTotalStudySeconds, v))
}

// TotalStudySecondsLTE applies the LTE predicate on the "total_study_seconds" field.
func TotalStudySecondsLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldTotalStudySeconds, v))
}

// TotalPagesEQ applies the EQ predicate on the "total_pages" field.
func TotalPagesEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTotalPages, v))
}

// TotalPagesNEQ applies the NEQ predicate on the "total_pages" field.
func TotalPagesNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTotalPages, v))
}

// TotalPagesIn applies the In predicate on the "total_pages" field.
func TotalPagesIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldTotalPages, vs...))
}

// TotalPagesNotIn applies the NotIn predicate on the "total_pages" field.
func TotalPagesNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldTotalPages, vs...))
}

// TotalPagesGT applies the GT predicate on the "total_pages" field.
func TotalPagesGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldTotalPages, v))
}

// TotalPagesGTE applies the GTE predicate on the "total_pages" field.
func TotalPagesGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldTotalPages, v))
}

// TotalPagesLT applies the LT predicate on the "total_pages" field.
func TotalPagesLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldTotalPages, v))
}

// TotalPagesLTE applies the LTE predicate on the "total_pages" field.
func TotalPagesLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldTotalPages, v))
}

// PagesIsNil applies the IsNil predicate on the "pages" field.
func PagesIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldPages))
}

// PagesNotNil applies the NotNil predicate on the "pages" field.
func PagesNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldPages))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.NotPredicates(p))
}
