// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/bilan/ent/assessment"
	"github.com/abhisek/bilan/ent/llmrequestevent"
	"github.com/abhisek/bilan/ent/schema"
	"github.com/abhisek/bilan/ent/sessionrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentFields := schema.Assessment{}.Fields()
	_ = assessmentFields
	// assessmentDescAssessmentID is the schema descriptor for assessment_id field.
	assessmentDescAssessmentID := assessmentFields[0].Descriptor()
	// assessment.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	assessment.AssessmentIDValidator = assessmentDescAssessmentID.Validators[0].(func(string) error)
	// assessmentDescUserID is the schema descriptor for user_id field.
	assessmentDescUserID := assessmentFields[1].Descriptor()
	// assessment.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	assessment.UserIDValidator = assessmentDescUserID.Validators[0].(func(string) error)
	// assessmentDescPackageID is the schema descriptor for package_id field.
	assessmentDescPackageID := assessmentFields[2].Descriptor()
	// assessment.PackageIDValidator is a validator for the "package_id" field. It is called by the builders before save.
	assessment.PackageIDValidator = assessmentDescPackageID.Validators[0].(func(string) error)
	// assessmentDescAnswerCount is the schema descriptor for answer_count field.
	assessmentDescAnswerCount := assessmentFields[4].Descriptor()
	// assessment.DefaultAnswerCount holds the default value on creation for the answer_count field.
	assessment.DefaultAnswerCount = assessmentDescAnswerCount.Default.(int)
	// assessmentDescDurationSecs is the schema descriptor for duration_secs field.
	assessmentDescDurationSecs := assessmentFields[5].Descriptor()
	// assessment.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	assessment.DefaultDurationSecs = assessmentDescDurationSecs.Default.(int64)
	// assessmentDescCompletedAt is the schema descriptor for completed_at field.
	assessmentDescCompletedAt := assessmentFields[6].Descriptor()
	// assessment.DefaultCompletedAt holds the default value on creation for the completed_at field.
	assessment.DefaultCompletedAt = assessmentDescCompletedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescCostUsd is the schema descriptor for cost_usd field.
	llmrequesteventDescCostUsd := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultCostUsd holds the default value on creation for the cost_usd field.
	llmrequestevent.DefaultCostUsd = llmrequesteventDescCostUsd.Default.(float64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescUserID is the schema descriptor for user_id field.
	sessionrecordDescUserID := sessionrecordFields[0].Descriptor()
	// sessionrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionrecord.UserIDValidator = sessionrecordDescUserID.Validators[0].(func(string) error)
	// sessionrecordDescState is the schema descriptor for state field.
	sessionrecordDescState := sessionrecordFields[1].Descriptor()
	// sessionrecord.StateValidator is a validator for the "state" field. It is called by the builders before save.
	sessionrecord.StateValidator = sessionrecordDescState.Validators[0].(func(string) error)
	// sessionrecordDescUserName is the schema descriptor for user_name field.
	sessionrecordDescUserName := sessionrecordFields[2].Descriptor()
	// sessionrecord.DefaultUserName holds the default value on creation for the user_name field.
	sessionrecord.DefaultUserName = sessionrecordDescUserName.Default.(string)
	// sessionrecordDescPackageID is the schema descriptor for package_id field.
	sessionrecordDescPackageID := sessionrecordFields[3].Descriptor()
	// sessionrecord.DefaultPackageID holds the default value on creation for the package_id field.
	sessionrecord.DefaultPackageID = sessionrecordDescPackageID.Default.(string)
	// sessionrecordDescCoachingStyle is the schema descriptor for coaching_style field.
	sessionrecordDescCoachingStyle := sessionrecordFields[4].Descriptor()
	// sessionrecord.DefaultCoachingStyle holds the default value on creation for the coaching_style field.
	sessionrecord.DefaultCoachingStyle = sessionrecordDescCoachingStyle.Default.(string)
	// sessionrecordDescLastPrompt is the schema descriptor for last_prompt field.
	sessionrecordDescLastPrompt := sessionrecordFields[7].Descriptor()
	// sessionrecord.DefaultLastPrompt holds the default value on creation for the last_prompt field.
	sessionrecord.DefaultLastPrompt = sessionrecordDescLastPrompt.Default.(string)
	// sessionrecordDescPhase is the schema descriptor for phase field.
	sessionrecordDescPhase := sessionrecordFields[8].Descriptor()
	// sessionrecord.DefaultPhase holds the default value on creation for the phase field.
	sessionrecord.DefaultPhase = sessionrecordDescPhase.Default.(string)
	// sessionrecordDescProgressPct is the schema descriptor for progress_pct field.
	sessionrecordDescProgressPct := sessionrecordFields[9].Descriptor()
	// sessionrecord.DefaultProgressPct holds the default value on creation for the progress_pct field.
	sessionrecord.DefaultProgressPct = sessionrecordDescProgressPct.Default.(int)
	// sessionrecordDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	sessionrecordDescTimeSpentSecs := sessionrecordFields[11].Descriptor()
	// sessionrecord.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	sessionrecord.DefaultTimeSpentSecs = sessionrecordDescTimeSpentSecs.Default.(int64)
	// sessionrecordDescUpdatedAt is the schema descriptor for updated_at field.
	sessionrecordDescUpdatedAt := sessionrecordFields[15].Descriptor()
	// sessionrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionrecord.DefaultUpdatedAt = sessionrecordDescUpdatedAt.Default.(func() time.Time)
}
