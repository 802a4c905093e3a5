// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "grade", Type: field.TypeString},
		{Name: "semester", Type: field.TypeString, Nullable: true},
		{Name: "total_study_seconds", Type: field.TypeInt},
		{Name: "total_pages", Type: field.TypeInt},
		{Name: "concepts", Type: field.TypeJSON},
		{Name: "pages", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_user_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[1]},
			},
			{
				Name:    "practicesession_created_at",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PracticeSessionsTable,
	}
)

func init() {
}
