// Code generated by ent, DO NOT EDIT.

package sessionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/bilan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldUserID, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldState, v))
}

// UserName applies equality check predicate on the "user_name" field. It's identical to UserNameEQ.
func UserName(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldUserName, v))
}

// PackageID applies equality check predicate on the "package_id" field. It's identical to PackageIDEQ.
func PackageID(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldPackageID, v))
}

// CoachingStyle applies equality check predicate on the "coaching_style" field. It's identical to CoachingStyleEQ.
func CoachingStyle(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldCoachingStyle, v))
}

// LastPrompt applies equality check predicate on the "last_prompt" field. It's identical to LastPromptEQ.
func LastPrompt(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldLastPrompt, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldPhase, v))
}

// ProgressPct applies equality check predicate on the "progress_pct" field. It's identical to ProgressPctEQ.
func ProgressPct(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldProgressPct, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldStartedAt, v))
}

// TimeSpentSecs applies equality check predicate on the "time_spent_secs" field. It's identical to TimeSpentSecsEQ.
func TimeSpentSecs(v int64) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContainsFold(FieldUserID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContainsFold(FieldState, v))
}

// UserNameEQ applies the EQ predicate on the "user_name" field.
func UserNameEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldUserName, v))
}

// UserNameNEQ applies the NEQ predicate on the "user_name" field.
func UserNameNEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldUserName, v))
}

// UserNameIn applies the In predicate on the "user_name" field.
func UserNameIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldUserName, vs...))
}

// UserNameNotIn applies the NotIn predicate on the "user_name" field.
func UserNameNotIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldUserName, vs...))
}

// UserNameGT applies the GT predicate on the "user_name" field.
func UserNameGT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldUserName, v))
}

// UserNameGTE applies the GTE predicate on the "user_name" field.
func UserNameGTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldUserName, v))
}

// UserNameLT applies the LT predicate on the "user_name" field.
func UserNameLT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldUserName, v))
}

// UserNameLTE applies the LTE predicate on the "user_name" field.
func UserNameLTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldUserName, v))
}

// UserNameContains applies the Contains predicate on the "user_name" field.
func UserNameContains(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContains(FieldUserName, v))
}

// UserNameHasPrefix applies the HasPrefix predicate on the "user_name" field.
func UserNameHasPrefix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasPrefix(FieldUserName, v))
}

// UserNameHasSuffix applies the HasSuffix predicate on the "user_name" field.
func UserNameHasSuffix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasSuffix(FieldUserName, v))
}

// UserNameEqualFold applies the EqualFold predicate on the "user_name" field.
func UserNameEqualFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEqualFold(FieldUserName, v))
}

// UserNameContainsFold applies the ContainsFold predicate on the "user_name" field.
func UserNameContainsFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContainsFold(FieldUserName, v))
}

// PackageIDEQ applies the EQ predicate on the "package_id" field.
func PackageIDEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldPackageID, v))
}

// PackageIDNEQ applies the NEQ predicate on the "package_id" field.
func PackageIDNEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldPackageID, v))
}

// PackageIDIn applies the In predicate on the "package_id" field.
func PackageIDIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldPackageID, vs...))
}

// PackageIDNotIn applies the NotIn predicate on the "package_id" field.
func PackageIDNotIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldPackageID, vs...))
}

// PackageIDGT applies the GT predicate on the "package_id" field.
func PackageIDGT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldPackageID, v))
}

// PackageIDGTE applies the GTE predicate on the "package_id" field.
func PackageIDGTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldPackageID, v))
}

// PackageIDLT applies the LT predicate on the "package_id" field.
func PackageIDLT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldPackageID, v))
}

// PackageIDLTE applies the LTE predicate on the "package_id" field.
func PackageIDLTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldPackageID, v))
}

// PackageIDContains applies the Contains predicate on the "package_id" field.
func PackageIDContains(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContains(FieldPackageID, v))
}

// PackageIDHasPrefix applies the HasPrefix predicate on the "package_id" field.
func PackageIDHasPrefix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasPrefix(FieldPackageID, v))
}

// PackageIDHasSuffix applies the HasSuffix predicate on the "package_id" field.
func PackageIDHasSuffix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasSuffix(FieldPackageID, v))
}

// PackageIDEqualFold applies the EqualFold predicate on the "package_id" field.
func PackageIDEqualFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEqualFold(FieldPackageID, v))
}

// PackageIDContainsFold applies the ContainsFold predicate on the "package_id" field.
func PackageIDContainsFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContainsFold(FieldPackageID, v))
}

// CoachingStyleEQ applies the EQ predicate on the "coaching_style" field.
func CoachingStyleEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldCoachingStyle, v))
}

// CoachingStyleNEQ applies the NEQ predicate on the "coaching_style" field.
func CoachingStyleNEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldCoachingStyle, v))
}

// CoachingStyleIn applies the In predicate on the "coaching_style" field.
func CoachingStyleIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldCoachingStyle, vs...))
}

// CoachingStyleNotIn applies the NotIn predicate on the "coaching_style" field.
func CoachingStyleNotIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldCoachingStyle, vs...))
}

// CoachingStyleGT applies the GT predicate on the "coaching_style" field.
func CoachingStyleGT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldCoachingStyle, v))
}

// CoachingStyleGTE applies the GTE predicate on the "coaching_style" field.
func CoachingStyleGTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldCoachingStyle, v))
}

// CoachingStyleLT applies the LT predicate on the "coaching_style" field.
func CoachingStyleLT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldCoachingStyle, v))
}

// CoachingStyleLTE applies the LTE predicate on the "coaching_style" field.
func CoachingStyleLTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldCoachingStyle, v))
}

// CoachingStyleContains applies the Contains predicate on the "coaching_style" field.
func CoachingStyleContains(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContains(FieldCoachingStyle, v))
}

// CoachingStyleHasPrefix applies the HasPrefix predicate on the "coaching_style" field.
func CoachingStyleHasPrefix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasPrefix(FieldCoachingStyle, v))
}

// CoachingStyleHasSuffix applies the HasSuffix predicate on the "coaching_style" field.
func CoachingStyleHasSuffix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasSuffix(FieldCoachingStyle, v))
}

// CoachingStyleEqualFold applies the EqualFold predicate on the "coaching_style" field.
func CoachingStyleEqualFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEqualFold(FieldCoachingStyle, v))
}

// CoachingStyleContainsFold applies the ContainsFold predicate on the "coaching_style" field.
func CoachingStyleContainsFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContainsFold(FieldCoachingStyle, v))
}

// AnswersIsNil applies the IsNil predicate on the "answers" field.
func AnswersIsNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIsNull(FieldAnswers))
}

// AnswersNotNil applies the NotNil predicate on the "answers" field.
func AnswersNotNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotNull(FieldAnswers))
}

// QuestionsIsNil applies the IsNil predicate on the "questions" field.
func QuestionsIsNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIsNull(FieldQuestions))
}

// QuestionsNotNil applies the NotNil predicate on the "questions" field.
func QuestionsNotNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotNull(FieldQuestions))
}

// LastPromptEQ applies the EQ predicate on the "last_prompt" field.
func LastPromptEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldLastPrompt, v))
}

// LastPromptNEQ applies the NEQ predicate on the "last_prompt" field.
func LastPromptNEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldLastPrompt, v))
}

// LastPromptIn applies the In predicate on the "last_prompt" field.
func LastPromptIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldLastPrompt, vs...))
}

// LastPromptNotIn applies the NotIn predicate on the "last_prompt" field.
func LastPromptNotIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldLastPrompt, vs...))
}

// LastPromptGT applies the GT predicate on the "last_prompt" field.
func LastPromptGT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldLastPrompt, v))
}

// LastPromptGTE applies the GTE predicate on the "last_prompt" field.
func LastPromptGTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldLastPrompt, v))
}

// LastPromptLT applies the LT predicate on the "last_prompt" field.
func LastPromptLT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldLastPrompt, v))
}

// LastPromptLTE applies the LTE predicate on the "last_prompt" field.
func LastPromptLTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldLastPrompt, v))
}

// LastPromptContains applies the Contains predicate on the "last_prompt" field.
func LastPromptContains(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContains(FieldLastPrompt, v))
}

// LastPromptHasPrefix applies the HasPrefix predicate on the "last_prompt" field.
func LastPromptHasPrefix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasPrefix(FieldLastPrompt, v))
}

// LastPromptHasSuffix applies the HasSuffix predicate on the "last_prompt" field.
func LastPromptHasSuffix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasSuffix(FieldLastPrompt, v))
}

// LastPromptEqualFold applies the EqualFold predicate on the "last_prompt" field.
func LastPromptEqualFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEqualFold(FieldLastPrompt, v))
}

// LastPromptContainsFold applies the ContainsFold predicate on the "last_prompt" field.
func LastPromptContainsFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContainsFold(FieldLastPrompt, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContainsFold(FieldPhase, v))
}

// ProgressPctEQ applies the EQ predicate on the "progress_pct" field.
func ProgressPctEQ(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldProgressPct, v))
}

// ProgressPctNEQ applies the NEQ predicate on the "progress_pct" field.
func ProgressPctNEQ(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldProgressPct, v))
}

// ProgressPctIn applies the In predicate on the "progress_pct" field.
func ProgressPctIn(vs ...int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldProgressPct, vs...))
}

// ProgressPctNotIn applies the NotIn predicate on the "progress_pct" field.
func ProgressPctNotIn(vs ...int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldProgressPct, vs...))
}

// ProgressPctGT applies the GT predicate on the "progress_pct" field.
func ProgressPctGT(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldProgressPct, v))
}

// ProgressPctGTE applies the GTE predicate on the "progress_pct" field.
func ProgressPctGTE(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldProgressPct, v))
}

// ProgressPctLT applies the LT predicate on the "progress_pct" field.
func ProgressPctLT(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldProgressPct, v))
}

// ProgressPctLTE applies the LTE predicate on the "progress_pct" field.
func ProgressPctLTE(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldProgressPct, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotNull(FieldStartedAt))
}

// TimeSpentSecsEQ applies the EQ predicate on the "time_spent_secs" field.
func TimeSpentSecsEQ(v int64) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsNEQ applies the NEQ predicate on the "time_spent_secs" field.
func TimeSpentSecsNEQ(v int64) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsIn applies the In predicate on the "time_spent_secs" field.
func TimeSpentSecsIn(vs ...int64) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsNotIn applies the NotIn predicate on the "time_spent_secs" field.
func TimeSpentSecsNotIn(vs ...int64) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsGT applies the GT predicate on the "time_spent_secs" field.
func TimeSpentSecsGT(v int64) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsGTE applies the GTE predicate on the "time_spent_secs" field.
func TimeSpentSecsGTE(v int64) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLT applies the LT predicate on the "time_spent_secs" field.
func TimeSpentSecsLT(v int64) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLTE applies the LTE predicate on the "time_spent_secs" field.
func TimeSpentSecsLTE(v int64) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldTimeSpentSecs, v))
}

// ConsentIsNil applies the IsNil predicate on the "consent" field.
func ConsentIsNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIsNull(FieldConsent))
}

// ConsentNotNil applies the NotNil predicate on the "consent" field.
func ConsentNotNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotNull(FieldConsent))
}

// ProfileIsNil applies the IsNil predicate on the "profile" field.
func ProfileIsNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIsNull(FieldProfile))
}

// ProfileNotNil applies the NotNil predicate on the "profile" field.
func ProfileNotNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotNull(FieldProfile))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotNull(FieldSummary))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionRecord) predicate.SessionRecord {
	return predicate.SessionRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionRecord) predicate.SessionRecord {
	return predicate.SessionRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionRecord) predicate.SessionRecord {
	return predicate.SessionRecord(sql.NotPredicates(p))
}
