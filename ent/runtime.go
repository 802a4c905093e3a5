// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/vinciapp/vinci/ent/practicesession"
	"github.com/vinciapp/vinci/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescGrade is the schema descriptor for grade field.
	practicesessionDescGrade := practicesessionFields[2].Descriptor()
	// practicesession.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	practicesession.GradeValidator = practicesessionDescGrade.Validators[0].(func(string) error)
	// practicesessionDescTotalStudySeconds is the schema descriptor for total_study_seconds field.
	practicesessionDescTotalStudySeconds := practicesessionFields[4].Descriptor()
	// practicesession.TotalStudySecondsValidator is a validator for the "total_study_seconds" field. It is called by the builders before save.
	practicesession.TotalStudySecondsValidator = practicesessionDescTotalStudySeconds.Validators[0].(func(int) error)
	// practicesessionDescTotalPages is the schema descriptor for total_pages field.
	practicesessionDescTotalPages := practicesessionFields[5].Descriptor()
	// practicesession.TotalPagesValidator is a validator for the "total_pages" field. It is called by the builders before save.
	practicesession.TotalPagesValidator = practicesessionDescTotalPages.Validators[0].(func(int) error)
	// practicesessionDescCreatedAt is the schema descriptor for created_at field.
	practicesessionDescCreatedAt := practicesessionFields[8].Descriptor()
	// practicesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	practicesession.DefaultCreatedAt = practicesessionDescCreatedAt.Default.(func() time.Time)
	// practicesessionDescUpdatedAt is the schema descriptor for updated_at field.
	practicesessionDescUpdatedAt := practicesessionFields[9].Descriptor()
	// practicesession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	practicesession.DefaultUpdatedAt = practicesessionDescUpdatedAt.Default.(func() time.Time)
	// practicesession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	practicesession.UpdateDefaultUpdatedAt = practicesessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// practicesessionDescID is the schema descriptor for id field.
	practicesessionDescID := practicesessionFields[0].Descriptor()
	// practicesession.IDValidator is a validator for the "id" field. It is called by the builders before save.
	practicesession.IDValidator = practicesessionDescID.Validators[0].(func(string) error)
}
