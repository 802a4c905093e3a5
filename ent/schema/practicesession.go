package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeSession persists one study session: its setup parameters and the
// full page/problem/attempt history as a JSON document. Sessions are created
// anonymously and may later be claimed by a user.
type PracticeSession struct {
	ent.Schema
}

func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("UUID assigned at session creation"),
		field.String("user_id").
			Optional().
			Comment("Owner; empty until the session is claimed"),
		field.String("grade").
			NotEmpty().
			Comment("Grade level label, e.g. '3rd Grade'"),
		field.String("semester").
			Optional().
			Comment("Optional semester label"),
		field.Int("total_study_seconds").
			Positive().
			Comment("Requested total study time"),
		field.Int("total_pages").
			Positive().
			Comment("Planned number of pages"),
		field.JSON("concepts", []string{}).
			Comment("Concept ids practiced in this session"),
		field.JSON("pages", json.RawMessage{}).
			Optional().
			Comment("Serialized pages with problems and attempts"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (PracticeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("created_at"),
	}
}
