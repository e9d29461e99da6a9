package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord is the single durable in-progress assessment per user.
// The unique user_id index enforces at-most-one-record-per-user; all
// writes are upserts keyed by it.
type SessionRecord struct {
	ent.Schema
}

// AnswerData is the serialized form of one interview answer.
type AnswerData struct {
	QuestionID    string    `json:"question_id"`
	Title         string    `json:"title,omitempty"`
	Value         string    `json:"value"`
	Complexity    string    `json:"complexity,omitempty"`
	Theme         string    `json:"theme,omitempty"`
	PhaseAtAnswer string    `json:"phase_at_answer,omitempty"`
	AnsweredAt    time.Time `json:"answered_at"`
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Comment("Owner of the record; upsert key"),
		field.String("state").
			NotEmpty().
			Comment("Application state to resume into"),
		field.String("user_name").
			Default("").
			Comment("Display name"),
		field.String("package_id").
			Default("").
			Comment("Selected package, empty before selection"),
		field.String("coaching_style").
			Default(""),
		field.JSON("answers", []AnswerData{}).
			Optional().
			Comment("Full answer list so far"),
		field.JSON("questions", []string{}).
			Optional().
			Comment("Questions asked so far"),
		field.Text("last_prompt").
			Default("").
			Comment("Last AI-authored question, for exact resume"),
		field.String("phase").
			Default("").
			Comment("Phase marker at last save"),
		field.Int("progress_pct").
			Default(0).
			Comment("Last-known progress for display-on-resume"),
		field.Time("started_at").
			Optional().
			Comment("Assessment start date"),
		field.Int64("time_spent_secs").
			Default(0).
			Comment("Cumulative time spent"),
		field.JSON("consent", map[string]any{}).
			Optional().
			Comment("Consent payload"),
		field.JSON("profile", map[string]any{}).
			Optional().
			Comment("Prior-experience profile, if provided"),
		field.JSON("summary", map[string]any{}).
			Optional().
			Comment("Embedded synthesis, set at completion only"),
		field.Time("updated_at").
			Default(time.Now).
			Comment("Freshness check input: records older than the expiry are purged"),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
		index.Fields("updated_at"),
	}
}
