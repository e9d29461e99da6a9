// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bilan/ent/schema"
	"github.com/abhisek/bilan/ent/sessionrecord"
)

// SessionRecordCreate is the builder for creating a SessionRecord entity.
type SessionRecordCreate struct {
	config
	mutation *SessionRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SessionRecordCreate) SetUserID(v string) *SessionRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *SessionRecordCreate) SetState(v string) *SessionRecordCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetUserName sets the "user_name" field.
func (_c *SessionRecordCreate) SetUserName(v string) *SessionRecordCreate {
	_c.mutation.SetUserName(v)
	return _c
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableUserName(v *string) *SessionRecordCreate {
	if v != nil {
		_c.SetUserName(*v)
	}
	return _c
}

// SetPackageID sets the "package_id" field.
func (_c *SessionRecordCreate) SetPackageID(v string) *SessionRecordCreate {
	_c.mutation.SetPackageID(v)
	return _c
}

// SetNillablePackageID sets the "package_id" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillablePackageID(v *string) *SessionRecordCreate {
	if v != nil {
		_c.SetPackageID(*v)
	}
	return _c
}

// SetCoachingStyle sets the "coaching_style" field.
func (_c *SessionRecordCreate) SetCoachingStyle(v string) *SessionRecordCreate {
	_c.mutation.SetCoachingStyle(v)
	return _c
}

// SetNillableCoachingStyle sets the "coaching_style" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableCoachingStyle(v *string) *SessionRecordCreate {
	if v != nil {
		_c.SetCoachingStyle(*v)
	}
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *SessionRecordCreate) SetAnswers(v []schema.AnswerData) *SessionRecordCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *SessionRecordCreate) SetQuestions(v []string) *SessionRecordCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetLastPrompt sets the "last_prompt" field.
func (_c *SessionRecordCreate) SetLastPrompt(v string) *SessionRecordCreate {
	_c.mutation.SetLastPrompt(v)
	return _c
}

// SetNillableLastPrompt sets the "last_prompt" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableLastPrompt(v *string) *SessionRecordCreate {
	if v != nil {
		_c.SetLastPrompt(*v)
	}
	return _c
}

// SetPhase sets the "phase" field.
func (_c *SessionRecordCreate) SetPhase(v string) *SessionRecordCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillablePhase(v *string) *SessionRecordCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetProgressPct sets the "progress_pct" field.
func (_c *SessionRecordCreate) SetProgressPct(v int) *SessionRecordCreate {
	_c.mutation.SetProgressPct(v)
	return _c
}

// SetNillableProgressPct sets the "progress_pct" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableProgressPct(v *int) *SessionRecordCreate {
	if v != nil {
		_c.SetProgressPct(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionRecordCreate) SetStartedAt(v time.Time) *SessionRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableStartedAt(v *time.Time) *SessionRecordCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *SessionRecordCreate) SetTimeSpentSecs(v int64) *SessionRecordCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableTimeSpentSecs(v *int64) *SessionRecordCreate {
	if v != nil {
		_c.SetTimeSpentSecs(*v)
	}
	return _c
}

// SetConsent sets the "consent" field.
func (_c *SessionRecordCreate) SetConsent(v map[string]interface{}) *SessionRecordCreate {
	_c.mutation.SetConsent(v)
	return _c
}

// SetProfile sets the "profile" field.
func (_c *SessionRecordCreate) SetProfile(v map[string]interface{}) *SessionRecordCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *SessionRecordCreate) SetSummary(v map[string]interface{}) *SessionRecordCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionRecordCreate) SetUpdatedAt(v time.Time) *SessionRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableUpdatedAt(v *time.Time) *SessionRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_c *SessionRecordCreate) Mutation() *SessionRecordMutation {
	return _c.mutation
}

// Save creates the SessionRecord in the database.
func (_c *SessionRecordCreate) Save(ctx context.Context) (*SessionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionRecordCreate) SaveX(ctx context.Context) *SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionRecordCreate) defaults() {
	if _, ok := _c.mutation.UserName(); !ok {
		v := sessionrecord.DefaultUserName
		_c.mutation.SetUserName(v)
	}
	if _, ok := _c.mutation.PackageID(); !ok {
		v := sessionrecord.DefaultPackageID
		_c.mutation.SetPackageID(v)
	}
	if _, ok := _c.mutation.CoachingStyle(); !ok {
		v := sessionrecord.DefaultCoachingStyle
		_c.mutation.SetCoachingStyle(v)
	}
	if _, ok := _c.mutation.LastPrompt(); !ok {
		v := sessionrecord.DefaultLastPrompt
		_c.mutation.SetLastPrompt(v)
	}
	if _, ok := _c.mutation.Phase(); !ok {
		v := sessionrecord.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.ProgressPct(); !ok {
		v := sessionrecord.DefaultProgressPct
		_c.mutation.SetProgressPct(v)
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		v := sessionrecord.DefaultTimeSpentSecs
		_c.mutation.SetTimeSpentSecs(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := sessionrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "SessionRecord.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := sessionrecord.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserName(); !ok {
		return &ValidationError{Name: "user_name", err: errors.New(`ent: missing required field "SessionRecord.user_name"`)}
	}
	if _, ok := _c.mutation.PackageID(); !ok {
		return &ValidationError{Name: "package_id", err: errors.New(`ent: missing required field "SessionRecord.package_id"`)}
	}
	if _, ok := _c.mutation.CoachingStyle(); !ok {
		return &ValidationError{Name: "coaching_style", err: errors.New(`ent: missing required field "SessionRecord.coaching_style"`)}
	}
	if _, ok := _c.mutation.LastPrompt(); !ok {
		return &ValidationError{Name: "last_prompt", err: errors.New(`ent: missing required field "SessionRecord.last_prompt"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "SessionRecord.phase"`)}
	}
	if _, ok := _c.mutation.ProgressPct(); !ok {
		return &ValidationError{Name: "progress_pct", err: errors.New(`ent: missing required field "SessionRecord.progress_pct"`)}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "SessionRecord.time_spent_secs"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionRecord.updated_at"`)}
	}
	return nil
}

func (_c *SessionRecordCreate) sqlSave(ctx context.Context) (*SessionRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionRecordCreate) createSpec() (*SessionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionrecord.Table, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sessionrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(sessionrecord.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.UserName(); ok {
		_spec.SetField(sessionrecord.FieldUserName, field.TypeString, value)
		_node.UserName = value
	}
	if value, ok := _c.mutation.PackageID(); ok {
		_spec.SetField(sessionrecord.FieldPackageID, field.TypeString, value)
		_node.PackageID = value
	}
	if value, ok := _c.mutation.CoachingStyle(); ok {
		_spec.SetField(sessionrecord.FieldCoachingStyle, field.TypeString, value)
		_node.CoachingStyle = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(sessionrecord.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(sessionrecord.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.LastPrompt(); ok {
		_spec.SetField(sessionrecord.FieldLastPrompt, field.TypeString, value)
		_node.LastPrompt = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(sessionrecord.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.ProgressPct(); ok {
		_spec.SetField(sessionrecord.FieldProgressPct, field.TypeInt, value)
		_node.ProgressPct = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(sessionrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(sessionrecord.FieldTimeSpentSecs, field.TypeInt64, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := _c.mutation.Consent(); ok {
		_spec.SetField(sessionrecord.FieldConsent, field.TypeJSON, value)
		_node.Consent = value
	}
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(sessionrecord.FieldProfile, field.TypeJSON, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(sessionrecord.FieldSummary, field.TypeJSON, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SessionRecordCreateBulk is the builder for creating many SessionRecord entities in bulk.
type SessionRecordCreateBulk struct {
	config
	err      error
	builders []*SessionRecordCreate
}

// Save creates the SessionRecord entities in the database.
func (_c *SessionRecordCreateBulk) Save(ctx context.Context) ([]*SessionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionRecordCreateBulk) SaveX(ctx context.Context) []*SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
