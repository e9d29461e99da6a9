// Code generated by ent, DO NOT EDIT.

package sessionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionrecord type in the database.
	Label = "session_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldUserName holds the string denoting the user_name field in the database.
	FieldUserName = "user_name"
	// FieldPackageID holds the string denoting the package_id field in the database.
	FieldPackageID = "package_id"
	// FieldCoachingStyle holds the string denoting the coaching_style field in the database.
	FieldCoachingStyle = "coaching_style"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldQuestions holds the string denoting the questions field in the database.
	FieldQuestions = "questions"
	// FieldLastPrompt holds the string denoting the last_prompt field in the database.
	FieldLastPrompt = "last_prompt"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldProgressPct holds the string denoting the progress_pct field in the database.
	FieldProgressPct = "progress_pct"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldTimeSpentSecs holds the string denoting the time_spent_secs field in the database.
	FieldTimeSpentSecs = "time_spent_secs"
	// FieldConsent holds the string denoting the consent field in the database.
	FieldConsent = "consent"
	// FieldProfile holds the string denoting the profile field in the database.
	FieldProfile = "profile"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the sessionrecord in the database.
	Table = "session_records"
)

// Columns holds all SQL columns for sessionrecord fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldState,
	FieldUserName,
	FieldPackageID,
	FieldCoachingStyle,
	FieldAnswers,
	FieldQuestions,
	FieldLastPrompt,
	FieldPhase,
	FieldProgressPct,
	FieldStartedAt,
	FieldTimeSpentSecs,
	FieldConsent,
	FieldProfile,
	FieldSummary,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// DefaultUserName holds the default value on creation for the "user_name" field.
	DefaultUserName string
	// DefaultPackageID holds the default value on creation for the "package_id" field.
	DefaultPackageID string
	// DefaultCoachingStyle holds the default value on creation for the "coaching_style" field.
	DefaultCoachingStyle string
	// DefaultLastPrompt holds the default value on creation for the "last_prompt" field.
	DefaultLastPrompt string
	// DefaultPhase holds the default value on creation for the "phase" field.
	DefaultPhase string
	// DefaultProgressPct holds the default value on creation for the "progress_pct" field.
	DefaultProgressPct int
	// DefaultTimeSpentSecs holds the default value on creation for the "time_spent_secs" field.
	DefaultTimeSpentSecs int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SessionRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByUserName orders the results by the user_name field.
func ByUserName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserName, opts...).ToFunc()
}

// ByPackageID orders the results by the package_id field.
func ByPackageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageID, opts...).ToFunc()
}

// ByCoachingStyle orders the results by the coaching_style field.
func ByCoachingStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoachingStyle, opts...).ToFunc()
}

// ByLastPrompt orders the results by the last_prompt field.
func ByLastPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPrompt, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByProgressPct orders the results by the progress_pct field.
func ByProgressPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressPct, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByTimeSpentSecs orders the results by the time_spent_secs field.
func ByTimeSpentSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSecs, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
