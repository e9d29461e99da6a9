// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/bilan/ent/schema"
	"github.com/abhisek/bilan/ent/sessionrecord"
)

// SessionRecord is the model entity for the SessionRecord schema.
type SessionRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owner of the record; upsert key
	UserID string `json:"user_id,omitempty"`
	// Application state to resume into
	State string `json:"state,omitempty"`
	// Display name
	UserName string `json:"user_name,omitempty"`
	// Selected package, empty before selection
	PackageID string `json:"package_id,omitempty"`
	// CoachingStyle holds the value of the "coaching_style" field.
	CoachingStyle string `json:"coaching_style,omitempty"`
	// Full answer list so far
	Answers []schema.AnswerData `json:"answers,omitempty"`
	// Questions asked so far
	Questions []string `json:"questions,omitempty"`
	// Last AI-authored question, for exact resume
	LastPrompt string `json:"last_prompt,omitempty"`
	// Phase marker at last save
	Phase string `json:"phase,omitempty"`
	// Last-known progress for display-on-resume
	ProgressPct int `json:"progress_pct,omitempty"`
	// Assessment start date
	StartedAt time.Time `json:"started_at,omitempty"`
	// Cumulative time spent
	TimeSpentSecs int64 `json:"time_spent_secs,omitempty"`
	// Consent payload
	Consent map[string]interface{} `json:"consent,omitempty"`
	// Prior-experience profile, if provided
	Profile map[string]interface{} `json:"profile,omitempty"`
	// Embedded synthesis, set at completion only
	Summary map[string]interface{} `json:"summary,omitempty"`
	// Freshness check input: records older than the expiry are purged
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionrecord.FieldAnswers, sessionrecord.FieldQuestions, sessionrecord.FieldConsent, sessionrecord.FieldProfile, sessionrecord.FieldSummary:
			values[i] = new([]byte)
		case sessionrecord.FieldID, sessionrecord.FieldProgressPct, sessionrecord.FieldTimeSpentSecs:
			values[i] = new(sql.NullInt64)
		case sessionrecord.FieldUserID, sessionrecord.FieldState, sessionrecord.FieldUserName, sessionrecord.FieldPackageID, sessionrecord.FieldCoachingStyle, sessionrecord.FieldLastPrompt, sessionrecord.FieldPhase:
			values[i] = new(sql.NullString)
		case sessionrecord.FieldStartedAt, sessionrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionRecord fields.
func (_m *SessionRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case sessionrecord.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case sessionrecord.FieldUserName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_name", values[i])
			} else if value.Valid {
				_m.UserName = value.String
			}
		case sessionrecord.FieldPackageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field package_id", values[i])
			} else if value.Valid {
				_m.PackageID = value.String
			}
		case sessionrecord.FieldCoachingStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field coaching_style", values[i])
			} else if value.Valid {
				_m.CoachingStyle = value.String
			}
		case sessionrecord.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case sessionrecord.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case sessionrecord.FieldLastPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_prompt", values[i])
			} else if value.Valid {
				_m.LastPrompt = value.String
			}
		case sessionrecord.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case sessionrecord.FieldProgressPct:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_pct", values[i])
			} else if value.Valid {
				_m.ProgressPct = int(value.Int64)
			}
		case sessionrecord.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case sessionrecord.FieldTimeSpentSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_secs", values[i])
			} else if value.Valid {
				_m.TimeSpentSecs = value.Int64
			}
		case sessionrecord.FieldConsent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field consent", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Consent); err != nil {
					return fmt.Errorf("unmarshal field consent: %w", err)
				}
			}
		case sessionrecord.FieldProfile:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field profile", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Profile); err != nil {
					return fmt.Errorf("unmarshal field profile: %w", err)
				}
			}
		case sessionrecord.FieldSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Summary); err != nil {
					return fmt.Errorf("unmarshal field summary: %w", err)
				}
			}
		case sessionrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SessionRecord.
// This includes values selected through modifiers, order, etc.
func (_m *SessionRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionRecord.
// Note that you need to call SessionRecord.Unwrap() before calling this method if this SessionRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionRecord) Update() *SessionRecordUpdateOne {
	return NewSessionRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionRecord) Unwrap() *SessionRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionRecord) String() string {
	var builder strings.Builder
	builder.WriteString("SessionRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("user_name=")
	builder.WriteString(_m.UserName)
	builder.WriteString(", ")
	builder.WriteString("package_id=")
	builder.WriteString(_m.PackageID)
	builder.WriteString(", ")
	builder.WriteString("coaching_style=")
	builder.WriteString(_m.CoachingStyle)
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("last_prompt=")
	builder.WriteString(_m.LastPrompt)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("progress_pct=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressPct))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("time_spent_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSecs))
	builder.WriteString(", ")
	builder.WriteString("consent=")
	builder.WriteString(fmt.Sprintf("%v", _m.Consent))
	builder.WriteString(", ")
	builder.WriteString("profile=")
	builder.WriteString(fmt.Sprintf("%v", _m.Profile))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.Summary))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionRecords is a parsable slice of SessionRecord.
type SessionRecords []*SessionRecord
