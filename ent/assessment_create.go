// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bilan/ent/assessment"
)

// AssessmentCreate is the builder for creating a Assessment entity.
type AssessmentCreate struct {
	config
	mutation *AssessmentMutation
	hooks    []Hook
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *AssessmentCreate) SetAssessmentID(v string) *AssessmentCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AssessmentCreate) SetUserID(v string) *AssessmentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPackageID sets the "package_id" field.
func (_c *AssessmentCreate) SetPackageID(v string) *AssessmentCreate {
	_c.mutation.SetPackageID(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *AssessmentCreate) SetSummary(v map[string]interface{}) *AssessmentCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetAnswerCount sets the "answer_count" field.
func (_c *AssessmentCreate) SetAnswerCount(v int) *AssessmentCreate {
	_c.mutation.SetAnswerCount(v)
	return _c
}

// SetNillableAnswerCount sets the "answer_count" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableAnswerCount(v *int) *AssessmentCreate {
	if v != nil {
		_c.SetAnswerCount(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *AssessmentCreate) SetDurationSecs(v int64) *AssessmentCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableDurationSecs(v *int64) *AssessmentCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AssessmentCreate) SetCompletedAt(v time.Time) *AssessmentCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableCompletedAt(v *time.Time) *AssessmentCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the AssessmentMutation object of the builder.
func (_c *AssessmentCreate) Mutation() *AssessmentMutation {
	return _c.mutation
}

// Save creates the Assessment in the database.
func (_c *AssessmentCreate) Save(ctx context.Context) (*Assessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentCreate) SaveX(ctx context.Context) *Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentCreate) defaults() {
	if _, ok := _c.mutation.AnswerCount(); !ok {
		v := assessment.DefaultAnswerCount
		_c.mutation.SetAnswerCount(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := assessment.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := assessment.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentCreate) check() error {
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "Assessment.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := assessment.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Assessment.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := assessment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PackageID(); !ok {
		return &ValidationError{Name: "package_id", err: errors.New(`ent: missing required field "Assessment.package_id"`)}
	}
	if v, ok := _c.mutation.PackageID(); ok {
		if err := assessment.PackageIDValidator(v); err != nil {
			return &ValidationError{Name: "package_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.package_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "Assessment.summary"`)}
	}
	if _, ok := _c.mutation.AnswerCount(); !ok {
		return &ValidationError{Name: "answer_count", err: errors.New(`ent: missing required field "Assessment.answer_count"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "Assessment.duration_secs"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "Assessment.completed_at"`)}
	}
	return nil
}

func (_c *AssessmentCreate) sqlSave(ctx context.Context) (*Assessment, error) {
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

func (_c *AssessmentCreate) createSpec() (*Assessment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessment.Table, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(assessment.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(assessment.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PackageID(); ok {
		_spec.SetField(assessment.FieldPackageID, field.TypeString, value)
		_node.PackageID = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(assessment.FieldSummary, field.TypeJSON, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.AnswerCount(); ok {
		_spec.SetField(assessment.FieldAnswerCount, field.TypeInt, value)
		_node.AnswerCount = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(assessment.FieldDurationSecs, field.TypeInt64, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(assessment.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// AssessmentCreateBulk is the builder for creating many Assessment entities in bulk.
type AssessmentCreateBulk struct {
	config
	err      error
	builders []*AssessmentCreate
}

// Save creates the Assessment entities in the database.
func (_c *AssessmentCreateBulk) Save(ctx context.Context) ([]*Assessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentMutation)
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
func (_c *AssessmentCreateBulk) SaveX(ctx context.Context) []*Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
