// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avyukth/medsim/ent/diagnosisevent"
)

// DiagnosisEventCreate is the builder for creating a DiagnosisEvent entity.
type DiagnosisEventCreate struct {
	config
	mutation *DiagnosisEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DiagnosisEventCreate) SetSequence(v int64) *DiagnosisEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DiagnosisEventCreate) SetTimestamp(v time.Time) *DiagnosisEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DiagnosisEventCreate) SetNillableTimestamp(v *time.Time) *DiagnosisEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *DiagnosisEventCreate) SetSessionID(v string) *DiagnosisEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSubmittedDiagnosis sets the "submitted_diagnosis" field.
func (_c *DiagnosisEventCreate) SetSubmittedDiagnosis(v string) *DiagnosisEventCreate {
	_c.mutation.SetSubmittedDiagnosis(v)
	return _c
}

// SetActualDiagnosis sets the "actual_diagnosis" field.
func (_c *DiagnosisEventCreate) SetActualDiagnosis(v string) *DiagnosisEventCreate {
	_c.mutation.SetActualDiagnosis(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *DiagnosisEventCreate) SetCorrect(v bool) *DiagnosisEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *DiagnosisEventCreate) SetScore(v int) *DiagnosisEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *DiagnosisEventCreate) SetFeedback(v string) *DiagnosisEventCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *DiagnosisEventCreate) SetNillableFeedback(v *string) *DiagnosisEventCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_c *DiagnosisEventCreate) SetQuestionsAsked(v int) *DiagnosisEventCreate {
	_c.mutation.SetQuestionsAsked(v)
	return _c
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_c *DiagnosisEventCreate) SetNillableQuestionsAsked(v *int) *DiagnosisEventCreate {
	if v != nil {
		_c.SetQuestionsAsked(*v)
	}
	return _c
}

// SetExamsPerformed sets the "exams_performed" field.
func (_c *DiagnosisEventCreate) SetExamsPerformed(v int) *DiagnosisEventCreate {
	_c.mutation.SetExamsPerformed(v)
	return _c
}

// SetNillableExamsPerformed sets the "exams_performed" field if the given value is not nil.
func (_c *DiagnosisEventCreate) SetNillableExamsPerformed(v *int) *DiagnosisEventCreate {
	if v != nil {
		_c.SetExamsPerformed(*v)
	}
	return _c
}

// SetVitalsChecked sets the "vitals_checked" field.
func (_c *DiagnosisEventCreate) SetVitalsChecked(v bool) *DiagnosisEventCreate {
	_c.mutation.SetVitalsChecked(v)
	return _c
}

// SetNillableVitalsChecked sets the "vitals_checked" field if the given value is not nil.
func (_c *DiagnosisEventCreate) SetNillableVitalsChecked(v *bool) *DiagnosisEventCreate {
	if v != nil {
		_c.SetVitalsChecked(*v)
	}
	return _c
}

// SetDurationMins sets the "duration_mins" field.
func (_c *DiagnosisEventCreate) SetDurationMins(v float64) *DiagnosisEventCreate {
	_c.mutation.SetDurationMins(v)
	return _c
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_c *DiagnosisEventCreate) SetNillableDurationMins(v *float64) *DiagnosisEventCreate {
	if v != nil {
		_c.SetDurationMins(*v)
	}
	return _c
}

// Mutation returns the DiagnosisEventMutation object of the builder.
func (_c *DiagnosisEventCreate) Mutation() *DiagnosisEventMutation {
	return _c.mutation
}

// Save creates the DiagnosisEvent in the database.
func (_c *DiagnosisEventCreate) Save(ctx context.Context) (*DiagnosisEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiagnosisEventCreate) SaveX(ctx context.Context) *DiagnosisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosisEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosisEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiagnosisEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := diagnosisevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		v := diagnosisevent.DefaultFeedback
		_c.mutation.SetFeedback(v)
	}
	if _, ok := _c.mutation.QuestionsAsked(); !ok {
		v := diagnosisevent.DefaultQuestionsAsked
		_c.mutation.SetQuestionsAsked(v)
	}
	if _, ok := _c.mutation.ExamsPerformed(); !ok {
		v := diagnosisevent.DefaultExamsPerformed
		_c.mutation.SetExamsPerformed(v)
	}
	if _, ok := _c.mutation.VitalsChecked(); !ok {
		v := diagnosisevent.DefaultVitalsChecked
		_c.mutation.SetVitalsChecked(v)
	}
	if _, ok := _c.mutation.DurationMins(); !ok {
		v := diagnosisevent.DefaultDurationMins
		_c.mutation.SetDurationMins(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiagnosisEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DiagnosisEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DiagnosisEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DiagnosisEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := diagnosisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmittedDiagnosis(); !ok {
		return &ValidationError{Name: "submitted_diagnosis", err: errors.New(`ent: missing required field "DiagnosisEvent.submitted_diagnosis"`)}
	}
	if v, ok := _c.mutation.SubmittedDiagnosis(); ok {
		if err := diagnosisevent.SubmittedDiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "submitted_diagnosis", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.submitted_diagnosis": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActualDiagnosis(); !ok {
		return &ValidationError{Name: "actual_diagnosis", err: errors.New(`ent: missing required field "DiagnosisEvent.actual_diagnosis"`)}
	}
	if v, ok := _c.mutation.ActualDiagnosis(); ok {
		if err := diagnosisevent.ActualDiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "actual_diagnosis", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.actual_diagnosis": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "DiagnosisEvent.correct"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "DiagnosisEvent.score"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "DiagnosisEvent.feedback"`)}
	}
	if _, ok := _c.mutation.QuestionsAsked(); !ok {
		return &ValidationError{Name: "questions_asked", err: errors.New(`ent: missing required field "DiagnosisEvent.questions_asked"`)}
	}
	if _, ok := _c.mutation.ExamsPerformed(); !ok {
		return &ValidationError{Name: "exams_performed", err: errors.New(`ent: missing required field "DiagnosisEvent.exams_performed"`)}
	}
	if _, ok := _c.mutation.VitalsChecked(); !ok {
		return &ValidationError{Name: "vitals_checked", err: errors.New(`ent: missing required field "DiagnosisEvent.vitals_checked"`)}
	}
	if _, ok := _c.mutation.DurationMins(); !ok {
		return &ValidationError{Name: "duration_mins", err: errors.New(`ent: missing required field "DiagnosisEvent.duration_mins"`)}
	}
	return nil
}

func (_c *DiagnosisEventCreate) sqlSave(ctx context.Context) (*DiagnosisEvent, error) {
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

func (_c *DiagnosisEventCreate) createSpec() (*DiagnosisEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DiagnosisEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diagnosisevent.Table, sqlgraph.NewFieldSpec(diagnosisevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(diagnosisevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(diagnosisevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(diagnosisevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SubmittedDiagnosis(); ok {
		_spec.SetField(diagnosisevent.FieldSubmittedDiagnosis, field.TypeString, value)
		_node.SubmittedDiagnosis = value
	}
	if value, ok := _c.mutation.ActualDiagnosis(); ok {
		_spec.SetField(diagnosisevent.FieldActualDiagnosis, field.TypeString, value)
		_node.ActualDiagnosis = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(diagnosisevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(diagnosisevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(diagnosisevent.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.QuestionsAsked(); ok {
		_spec.SetField(diagnosisevent.FieldQuestionsAsked, field.TypeInt, value)
		_node.QuestionsAsked = value
	}
	if value, ok := _c.mutation.ExamsPerformed(); ok {
		_spec.SetField(diagnosisevent.FieldExamsPerformed, field.TypeInt, value)
		_node.ExamsPerformed = value
	}
	if value, ok := _c.mutation.VitalsChecked(); ok {
		_spec.SetField(diagnosisevent.FieldVitalsChecked, field.TypeBool, value)
		_node.VitalsChecked = value
	}
	if value, ok := _c.mutation.DurationMins(); ok {
		_spec.SetField(diagnosisevent.FieldDurationMins, field.TypeFloat64, value)
		_node.DurationMins = value
	}
	return _node, _spec
}

// DiagnosisEventCreateBulk is the builder for creating many DiagnosisEvent entities in bulk.
type DiagnosisEventCreateBulk struct {
	config
	err      error
	builders []*DiagnosisEventCreate
}

// Save creates the DiagnosisEvent entities in the database.
func (_c *DiagnosisEventCreateBulk) Save(ctx context.Context) ([]*DiagnosisEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiagnosisEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiagnosisEventMutation)
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
func (_c *DiagnosisEventCreateBulk) SaveX(ctx context.Context) []*DiagnosisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosisEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosisEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
