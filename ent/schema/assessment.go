package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assessment is a completed assessment in the permanent history. The
// summary is stored here in addition to the session record's embedded
// copy; the double write is the crash-recovery strategy for completion.
type Assessment struct {
	ent.Schema
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty().
			Unique().
			Comment("UUID of the assessment"),
		field.String("user_id").
			NotEmpty(),
		field.String("package_id").
			NotEmpty(),
		field.JSON("summary", map[string]any{}).
			Comment("AI-authored synthesis"),
		field.Int("answer_count").
			Default(0),
		field.Int64("duration_secs").
			Default(0),
		field.Time("completed_at").
			Default(time.Now),
	}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("completed_at"),
	}
}
