// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bilan/ent/assessment"
	"github.com/abhisek/bilan/ent/predicate"
)

// AssessmentUpdate is the builder for updating Assessment entities.
type AssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentMutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdate) Where(ps ...predicate.Assessment) *AssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentUpdate) SetAssessmentID(v string) *AssessmentUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableAssessmentID(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssessmentUpdate) SetUserID(v string) *AssessmentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableUserID(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPackageID sets the "package_id" field.
func (_u *AssessmentUpdate) SetPackageID(v string) *AssessmentUpdate {
	_u.mutation.SetPackageID(v)
	return _u
}

// SetNillablePackageID sets the "package_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillablePackageID(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetPackageID(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AssessmentUpdate) SetSummary(v map[string]interface{}) *AssessmentUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetAnswerCount sets the "answer_count" field.
func (_u *AssessmentUpdate) SetAnswerCount(v int) *AssessmentUpdate {
	_u.mutation.ResetAnswerCount()
	_u.mutation.SetAnswerCount(v)
	return _u
}

// SetNillableAnswerCount sets the "answer_count" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableAnswerCount(v *int) *AssessmentUpdate {
	if v != nil {
		_u.SetAnswerCount(*v)
	}
	return _u
}

// AddAnswerCount adds value to the "answer_count" field.
func (_u *AssessmentUpdate) AddAnswerCount(v int) *AssessmentUpdate {
	_u.mutation.AddAnswerCount(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentUpdate) SetDurationSecs(v int64) *AssessmentUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableDurationSecs(v *int64) *AssessmentUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentUpdate) AddDurationSecs(v int64) *AssessmentUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AssessmentUpdate) SetCompletedAt(v time.Time) *AssessmentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableCompletedAt(v *time.Time) *AssessmentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdate) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessment.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := assessment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PackageID(); ok {
		if err := assessment.PackageIDValidator(v); err != nil {
			return &ValidationError{Name: "package_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.package_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessment.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assessment.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PackageID(); ok {
		_spec.SetField(assessment.FieldPackageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(assessment.FieldSummary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AnswerCount(); ok {
		_spec.SetField(assessment.FieldAnswerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswerCount(); ok {
		_spec.AddField(assessment.FieldAnswerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessment.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessment.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(assessment.FieldCompletedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentUpdateOne is the builder for updating a single Assessment entity.
type AssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentUpdateOne) SetAssessmentID(v string) *AssessmentUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableAssessmentID(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssessmentUpdateOne) SetUserID(v string) *AssessmentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableUserID(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPackageID sets the "package_id" field.
func (_u *AssessmentUpdateOne) SetPackageID(v string) *AssessmentUpdateOne {
	_u.mutation.SetPackageID(v)
	return _u
}

// SetNillablePackageID sets the "package_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillablePackageID(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetPackageID(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AssessmentUpdateOne) SetSummary(v map[string]interface{}) *AssessmentUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetAnswerCount sets the "answer_count" field.
func (_u *AssessmentUpdateOne) SetAnswerCount(v int) *AssessmentUpdateOne {
	_u.mutation.ResetAnswerCount()
	_u.mutation.SetAnswerCount(v)
	return _u
}

// SetNillableAnswerCount sets the "answer_count" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableAnswerCount(v *int) *AssessmentUpdateOne {
	if v != nil {
		_u.SetAnswerCount(*v)
	}
	return _u
}

// AddAnswerCount adds value to the "answer_count" field.
func (_u *AssessmentUpdateOne) AddAnswerCount(v int) *AssessmentUpdateOne {
	_u.mutation.AddAnswerCount(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentUpdateOne) SetDurationSecs(v int64) *AssessmentUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableDurationSecs(v *int64) *AssessmentUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentUpdateOne) AddDurationSecs(v int64) *AssessmentUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AssessmentUpdateOne) SetCompletedAt(v time.Time) *AssessmentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableCompletedAt(v *time.Time) *AssessmentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdateOne) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdateOne) Where(ps ...predicate.Assessment) *AssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentUpdateOne) Select(field string, fields ...string) *AssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assessment entity.
func (_u *AssessmentUpdateOne) Save(ctx context.Context) (*Assessment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdateOne) SaveX(ctx context.Context) *Assessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessment.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := assessment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PackageID(); ok {
		if err := assessment.PackageIDValidator(v); err != nil {
			return &ValidationError{Name: "package_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.package_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdateOne) sqlSave(ctx context.Context) (_node *Assessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessment.FieldID)
		for _, f := range fields {
			if !assessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessment.FieldID {
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
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessment.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assessment.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PackageID(); ok {
		_spec.SetField(assessment.FieldPackageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(assessment.FieldSummary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AnswerCount(); ok {
		_spec.SetField(assessment.FieldAnswerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswerCount(); ok {
		_spec.AddField(assessment.FieldAnswerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessment.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessment.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(assessment.FieldCompletedAt, field.TypeTime, value)
	}
	_node = &Assessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
