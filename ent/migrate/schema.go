// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentsColumns holds the columns for the "assessments" table.
	AssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "assessment_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "package_id", Type: field.TypeString},
		{Name: "summary", Type: field.TypeJSON},
		{Name: "answer_count", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt64, Default: 0},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// AssessmentsTable holds the schema information for the "assessments" table.
	AssessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    AssessmentsColumns,
		PrimaryKey: []*schema.Column{AssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessment_user_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[2]},
			},
			{
				Name:    "assessment_completed_at",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[7]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
		},
	}
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeString},
		{Name: "user_name", Type: field.TypeString, Default: ""},
		{Name: "package_id", Type: field.TypeString, Default: ""},
		{Name: "coaching_style", Type: field.TypeString, Default: ""},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "questions", Type: field.TypeJSON, Nullable: true},
		{Name: "last_prompt", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "phase", Type: field.TypeString, Default: ""},
		{Name: "progress_pct", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "time_spent_secs", Type: field.TypeInt64, Default: 0},
		{Name: "consent", Type: field.TypeJSON, Nullable: true},
		{Name: "profile", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_user_id",
				Unique:  true,
				Columns: []*schema.Column{SessionRecordsColumns[1]},
			},
			{
				Name:    "sessionrecord_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[16]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentsTable,
		LlmRequestEventsTable,
		SessionRecordsTable,
	}
)

func init() {
}
