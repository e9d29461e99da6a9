// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bilan/ent/predicate"
	"github.com/abhisek/bilan/ent/schema"
	"github.com/abhisek/bilan/ent/sessionrecord"
)

// SessionRecordUpdate is the builder for updating SessionRecord entities.
type SessionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRecordMutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdate) Where(ps ...predicate.SessionRecord) *SessionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionRecordUpdate) SetUserID(v string) *SessionRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableUserID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *SessionRecordUpdate) SetState(v string) *SessionRecordUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableState(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *SessionRecordUpdate) SetUserName(v string) *SessionRecordUpdate {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableUserName(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetPackageID sets the "package_id" field.
func (_u *SessionRecordUpdate) SetPackageID(v string) *SessionRecordUpdate {
	_u.mutation.SetPackageID(v)
	return _u
}

// SetNillablePackageID sets the "package_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillablePackageID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetPackageID(*v)
	}
	return _u
}

// SetCoachingStyle sets the "coaching_style" field.
func (_u *SessionRecordUpdate) SetCoachingStyle(v string) *SessionRecordUpdate {
	_u.mutation.SetCoachingStyle(v)
	return _u
}

// SetNillableCoachingStyle sets the "coaching_style" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableCoachingStyle(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetCoachingStyle(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *SessionRecordUpdate) SetAnswers(v []schema.AnswerData) *SessionRecordUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *SessionRecordUpdate) AppendAnswers(v []schema.AnswerData) *SessionRecordUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *SessionRecordUpdate) ClearAnswers() *SessionRecordUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *SessionRecordUpdate) SetQuestions(v []string) *SessionRecordUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *SessionRecordUpdate) AppendQuestions(v []string) *SessionRecordUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *SessionRecordUpdate) ClearQuestions() *SessionRecordUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// SetLastPrompt sets the "last_prompt" field.
func (_u *SessionRecordUpdate) SetLastPrompt(v string) *SessionRecordUpdate {
	_u.mutation.SetLastPrompt(v)
	return _u
}

// SetNillableLastPrompt sets the "last_prompt" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableLastPrompt(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetLastPrompt(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *SessionRecordUpdate) SetPhase(v string) *SessionRecordUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillablePhase(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetProgressPct sets the "progress_pct" field.
func (_u *SessionRecordUpdate) SetProgressPct(v int) *SessionRecordUpdate {
	_u.mutation.ResetProgressPct()
	_u.mutation.SetProgressPct(v)
	return _u
}

// SetNillableProgressPct sets the "progress_pct" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableProgressPct(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetProgressPct(*v)
	}
	return _u
}

// AddProgressPct adds value to the "progress_pct" field.
func (_u *SessionRecordUpdate) AddProgressPct(v int) *SessionRecordUpdate {
	_u.mutation.AddProgressPct(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionRecordUpdate) SetStartedAt(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableStartedAt(v *time.Time) *SessionRecordUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SessionRecordUpdate) ClearStartedAt() *SessionRecordUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *SessionRecordUpdate) SetTimeSpentSecs(v int64) *SessionRecordUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableTimeSpentSecs(v *int64) *SessionRecordUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *SessionRecordUpdate) AddTimeSpentSecs(v int64) *SessionRecordUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetConsent sets the "consent" field.
func (_u *SessionRecordUpdate) SetConsent(v map[string]interface{}) *SessionRecordUpdate {
	_u.mutation.SetConsent(v)
	return _u
}

// ClearConsent clears the value of the "consent" field.
func (_u *SessionRecordUpdate) ClearConsent() *SessionRecordUpdate {
	_u.mutation.ClearConsent()
	return _u
}

// SetProfile sets the "profile" field.
func (_u *SessionRecordUpdate) SetProfile(v map[string]interface{}) *SessionRecordUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// ClearProfile clears the value of the "profile" field.
func (_u *SessionRecordUpdate) ClearProfile() *SessionRecordUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionRecordUpdate) SetSummary(v map[string]interface{}) *SessionRecordUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SessionRecordUpdate) ClearSummary() *SessionRecordUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionRecordUpdate) SetUpdatedAt(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableUpdatedAt(v *time.Time) *SessionRecordUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdate) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := sessionrecord.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.state": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(sessionrecord.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(sessionrecord.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PackageID(); ok {
		_spec.SetField(sessionrecord.FieldPackageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoachingStyle(); ok {
		_spec.SetField(sessionrecord.FieldCoachingStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(sessionrecord.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(sessionrecord.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(sessionrecord.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(sessionrecord.FieldQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastPrompt(); ok {
		_spec.SetField(sessionrecord.FieldLastPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(sessionrecord.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgressPct(); ok {
		_spec.SetField(sessionrecord.FieldProgressPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPct(); ok {
		_spec.AddField(sessionrecord.FieldProgressPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionrecord.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(sessionrecord.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(sessionrecord.FieldTimeSpentSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(sessionrecord.FieldTimeSpentSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Consent(); ok {
		_spec.SetField(sessionrecord.FieldConsent, field.TypeJSON, value)
	}
	if _u.mutation.ConsentCleared() {
		_spec.ClearField(sessionrecord.FieldConsent, field.TypeJSON)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(sessionrecord.FieldProfile, field.TypeJSON, value)
	}
	if _u.mutation.ProfileCleared() {
		_spec.ClearField(sessionrecord.FieldProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(sessionrecord.FieldSummary, field.TypeJSON, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(sessionrecord.FieldSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRecordUpdateOne is the builder for updating a single SessionRecord entity.
type SessionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *SessionRecordUpdateOne) SetUserID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableUserID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *SessionRecordUpdateOne) SetState(v string) *SessionRecordUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableState(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *SessionRecordUpdateOne) SetUserName(v string) *SessionRecordUpdateOne {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableUserName(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetPackageID sets the "package_id" field.
func (_u *SessionRecordUpdateOne) SetPackageID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetPackageID(v)
	return _u
}

// SetNillablePackageID sets the "package_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillablePackageID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetPackageID(*v)
	}
	return _u
}

// SetCoachingStyle sets the "coaching_style" field.
func (_u *SessionRecordUpdateOne) SetCoachingStyle(v string) *SessionRecordUpdateOne {
	_u.mutation.SetCoachingStyle(v)
	return _u
}

// SetNillableCoachingStyle sets the "coaching_style" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableCoachingStyle(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetCoachingStyle(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *SessionRecordUpdateOne) SetAnswers(v []schema.AnswerData) *SessionRecordUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *SessionRecordUpdateOne) AppendAnswers(v []schema.AnswerData) *SessionRecordUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *SessionRecordUpdateOne) ClearAnswers() *SessionRecordUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *SessionRecordUpdateOne) SetQuestions(v []string) *SessionRecordUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *SessionRecordUpdateOne) AppendQuestions(v []string) *SessionRecordUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *SessionRecordUpdateOne) ClearQuestions() *SessionRecordUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// SetLastPrompt sets the "last_prompt" field.
func (_u *SessionRecordUpdateOne) SetLastPrompt(v string) *SessionRecordUpdateOne {
	_u.mutation.SetLastPrompt(v)
	return _u
}

// SetNillableLastPrompt sets the "last_prompt" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableLastPrompt(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetLastPrompt(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *SessionRecordUpdateOne) SetPhase(v string) *SessionRecordUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillablePhase(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetProgressPct sets the "progress_pct" field.
func (_u *SessionRecordUpdateOne) SetProgressPct(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetProgressPct()
	_u.mutation.SetProgressPct(v)
	return _u
}

// SetNillableProgressPct sets the "progress_pct" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableProgressPct(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetProgressPct(*v)
	}
	return _u
}

// AddProgressPct adds value to the "progress_pct" field.
func (_u *SessionRecordUpdateOne) AddProgressPct(v int) *SessionRecordUpdateOne {
	_u.mutation.AddProgressPct(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionRecordUpdateOne) SetStartedAt(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableStartedAt(v *time.Time) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SessionRecordUpdateOne) ClearStartedAt() *SessionRecordUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *SessionRecordUpdateOne) SetTimeSpentSecs(v int64) *SessionRecordUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableTimeSpentSecs(v *int64) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *SessionRecordUpdateOne) AddTimeSpentSecs(v int64) *SessionRecordUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetConsent sets the "consent" field.
func (_u *SessionRecordUpdateOne) SetConsent(v map[string]interface{}) *SessionRecordUpdateOne {
	_u.mutation.SetConsent(v)
	return _u
}

// ClearConsent clears the value of the "consent" field.
func (_u *SessionRecordUpdateOne) ClearConsent() *SessionRecordUpdateOne {
	_u.mutation.ClearConsent()
	return _u
}

// SetProfile sets the "profile" field.
func (_u *SessionRecordUpdateOne) SetProfile(v map[string]interface{}) *SessionRecordUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// ClearProfile clears the value of the "profile" field.
func (_u *SessionRecordUpdateOne) ClearProfile() *SessionRecordUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionRecordUpdateOne) SetSummary(v map[string]interface{}) *SessionRecordUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SessionRecordUpdateOne) ClearSummary() *SessionRecordUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionRecordUpdateOne) SetUpdatedAt(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableUpdatedAt(v *time.Time) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdateOne) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdateOne) Where(ps ...predicate.SessionRecord) *SessionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRecordUpdateOne) Select(field string, fields ...string) *SessionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRecord entity.
func (_u *SessionRecordUpdateOne) Save(ctx context.Context) (*SessionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) SaveX(ctx context.Context) *SessionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := sessionrecord.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.state": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdateOne) sqlSave(ctx context.Context) (_node *SessionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrecord.FieldID)
		for _, f := range fields {
			if !sessionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(sessionrecord.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(sessionrecord.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PackageID(); ok {
		_spec.SetField(sessionrecord.FieldPackageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoachingStyle(); ok {
		_spec.SetField(sessionrecord.FieldCoachingStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(sessionrecord.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(sessionrecord.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(sessionrecord.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(sessionrecord.FieldQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastPrompt(); ok {
		_spec.SetField(sessionrecord.FieldLastPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(sessionrecord.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgressPct(); ok {
		_spec.SetField(sessionrecord.FieldProgressPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPct(); ok {
		_spec.AddField(sessionrecord.FieldProgressPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionrecord.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(sessionrecord.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(sessionrecord.FieldTimeSpentSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(sessionrecord.FieldTimeSpentSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Consent(); ok {
		_spec.SetField(sessionrecord.FieldConsent, field.TypeJSON, value)
	}
	if _u.mutation.ConsentCleared() {
		_spec.ClearField(sessionrecord.FieldConsent, field.TypeJSON)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(sessionrecord.FieldProfile, field.TypeJSON, value)
	}
	if _u.mutation.ProfileCleared() {
		_spec.ClearField(sessionrecord.FieldProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(sessionrecord.FieldSummary, field.TypeJSON, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(sessionrecord.FieldSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SessionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
