// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avyukth/medsim/ent/diagnosisevent"
	"github.com/avyukth/medsim/ent/predicate"
)

// DiagnosisEventUpdate is the builder for updating DiagnosisEvent entities.
type DiagnosisEventUpdate struct {
	config
	hooks    []Hook
	mutation *DiagnosisEventMutation
}

// Where appends a list predicates to the DiagnosisEventUpdate builder.
func (_u *DiagnosisEventUpdate) Where(ps ...predicate.DiagnosisEvent) *DiagnosisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DiagnosisEventUpdate) SetSessionID(v string) *DiagnosisEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableSessionID(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSubmittedDiagnosis sets the "submitted_diagnosis" field.
func (_u *DiagnosisEventUpdate) SetSubmittedDiagnosis(v string) *DiagnosisEventUpdate {
	_u.mutation.SetSubmittedDiagnosis(v)
	return _u
}

// SetNillableSubmittedDiagnosis sets the "submitted_diagnosis" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableSubmittedDiagnosis(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetSubmittedDiagnosis(*v)
	}
	return _u
}

// SetActualDiagnosis sets the "actual_diagnosis" field.
func (_u *DiagnosisEventUpdate) SetActualDiagnosis(v string) *DiagnosisEventUpdate {
	_u.mutation.SetActualDiagnosis(v)
	return _u
}

// SetNillableActualDiagnosis sets the "actual_diagnosis" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableActualDiagnosis(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetActualDiagnosis(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *DiagnosisEventUpdate) SetCorrect(v bool) *DiagnosisEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableCorrect(v *bool) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *DiagnosisEventUpdate) SetScore(v int) *DiagnosisEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableScore(v *int) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *DiagnosisEventUpdate) AddScore(v int) *DiagnosisEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *DiagnosisEventUpdate) SetFeedback(v string) *DiagnosisEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableFeedback(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *DiagnosisEventUpdate) SetQuestionsAsked(v int) *DiagnosisEventUpdate {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableQuestionsAsked(v *int) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *DiagnosisEventUpdate) AddQuestionsAsked(v int) *DiagnosisEventUpdate {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetExamsPerformed sets the "exams_performed" field.
func (_u *DiagnosisEventUpdate) SetExamsPerformed(v int) *DiagnosisEventUpdate {
	_u.mutation.ResetExamsPerformed()
	_u.mutation.SetExamsPerformed(v)
	return _u
}

// SetNillableExamsPerformed sets the "exams_performed" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableExamsPerformed(v *int) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetExamsPerformed(*v)
	}
	return _u
}

// AddExamsPerformed adds value to the "exams_performed" field.
func (_u *DiagnosisEventUpdate) AddExamsPerformed(v int) *DiagnosisEventUpdate {
	_u.mutation.AddExamsPerformed(v)
	return _u
}

// SetVitalsChecked sets the "vitals_checked" field.
func (_u *DiagnosisEventUpdate) SetVitalsChecked(v bool) *DiagnosisEventUpdate {
	_u.mutation.SetVitalsChecked(v)
	return _u
}

// SetNillableVitalsChecked sets the "vitals_checked" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableVitalsChecked(v *bool) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetVitalsChecked(*v)
	}
	return _u
}

// SetDurationMins sets the "duration_mins" field.
func (_u *DiagnosisEventUpdate) SetDurationMins(v float64) *DiagnosisEventUpdate {
	_u.mutation.ResetDurationMins()
	_u.mutation.SetDurationMins(v)
	return _u
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableDurationMins(v *float64) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetDurationMins(*v)
	}
	return _u
}

// AddDurationMins adds value to the "duration_mins" field.
func (_u *DiagnosisEventUpdate) AddDurationMins(v float64) *DiagnosisEventUpdate {
	_u.mutation.AddDurationMins(v)
	return _u
}

// Mutation returns the DiagnosisEventMutation object of the builder.
func (_u *DiagnosisEventUpdate) Mutation() *DiagnosisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := diagnosisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmittedDiagnosis(); ok {
		if err := diagnosisevent.SubmittedDiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "submitted_diagnosis", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.submitted_diagnosis": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActualDiagnosis(); ok {
		if err := diagnosisevent.ActualDiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "actual_diagnosis", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.actual_diagnosis": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosisevent.Table, diagnosisevent.Columns, sqlgraph.NewFieldSpec(diagnosisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(diagnosisevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmittedDiagnosis(); ok {
		_spec.SetField(diagnosisevent.FieldSubmittedDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActualDiagnosis(); ok {
		_spec.SetField(diagnosisevent.FieldActualDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(diagnosisevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(diagnosisevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(diagnosisevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(diagnosisevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(diagnosisevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(diagnosisevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamsPerformed(); ok {
		_spec.SetField(diagnosisevent.FieldExamsPerformed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExamsPerformed(); ok {
		_spec.AddField(diagnosisevent.FieldExamsPerformed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VitalsChecked(); ok {
		_spec.SetField(diagnosisevent.FieldVitalsChecked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMins(); ok {
		_spec.SetField(diagnosisevent.FieldDurationMins, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationMins(); ok {
		_spec.AddField(diagnosisevent.FieldDurationMins, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosisEventUpdateOne is the builder for updating a single DiagnosisEvent entity.
type DiagnosisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosisEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DiagnosisEventUpdateOne) SetSessionID(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableSessionID(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSubmittedDiagnosis sets the "submitted_diagnosis" field.
func (_u *DiagnosisEventUpdateOne) SetSubmittedDiagnosis(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetSubmittedDiagnosis(v)
	return _u
}

// SetNillableSubmittedDiagnosis sets the "submitted_diagnosis" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableSubmittedDiagnosis(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetSubmittedDiagnosis(*v)
	}
	return _u
}

// SetActualDiagnosis sets the "actual_diagnosis" field.
func (_u *DiagnosisEventUpdateOne) SetActualDiagnosis(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetActualDiagnosis(v)
	return _u
}

// SetNillableActualDiagnosis sets the "actual_diagnosis" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableActualDiagnosis(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetActualDiagnosis(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *DiagnosisEventUpdateOne) SetCorrect(v bool) *DiagnosisEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableCorrect(v *bool) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *DiagnosisEventUpdateOne) SetScore(v int) *DiagnosisEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableScore(v *int) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *DiagnosisEventUpdateOne) AddScore(v int) *DiagnosisEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *DiagnosisEventUpdateOne) SetFeedback(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableFeedback(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *DiagnosisEventUpdateOne) SetQuestionsAsked(v int) *DiagnosisEventUpdateOne {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableQuestionsAsked(v *int) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *DiagnosisEventUpdateOne) AddQuestionsAsked(v int) *DiagnosisEventUpdateOne {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetExamsPerformed sets the "exams_performed" field.
func (_u *DiagnosisEventUpdateOne) SetExamsPerformed(v int) *DiagnosisEventUpdateOne {
	_u.mutation.ResetExamsPerformed()
	_u.mutation.SetExamsPerformed(v)
	return _u
}

// SetNillableExamsPerformed sets the "exams_performed" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableExamsPerformed(v *int) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetExamsPerformed(*v)
	}
	return _u
}

// AddExamsPerformed adds value to the "exams_performed" field.
func (_u *DiagnosisEventUpdateOne) AddExamsPerformed(v int) *DiagnosisEventUpdateOne {
	_u.mutation.AddExamsPerformed(v)
	return _u
}

// SetVitalsChecked sets the "vitals_checked" field.
func (_u *DiagnosisEventUpdateOne) SetVitalsChecked(v bool) *DiagnosisEventUpdateOne {
	_u.mutation.SetVitalsChecked(v)
	return _u
}

// SetNillableVitalsChecked sets the "vitals_checked" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableVitalsChecked(v *bool) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetVitalsChecked(*v)
	}
	return _u
}

// SetDurationMins sets the "duration_mins" field.
func (_u *DiagnosisEventUpdateOne) SetDurationMins(v float64) *DiagnosisEventUpdateOne {
	_u.mutation.ResetDurationMins()
	_u.mutation.SetDurationMins(v)
	return _u
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableDurationMins(v *float64) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetDurationMins(*v)
	}
	return _u
}

// AddDurationMins adds value to the "duration_mins" field.
func (_u *DiagnosisEventUpdateOne) AddDurationMins(v float64) *DiagnosisEventUpdateOne {
	_u.mutation.AddDurationMins(v)
	return _u
}

// Mutation returns the DiagnosisEventMutation object of the builder.
func (_u *DiagnosisEventUpdateOne) Mutation() *DiagnosisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagnosisEventUpdate builder.
func (_u *DiagnosisEventUpdateOne) Where(ps ...predicate.DiagnosisEvent) *DiagnosisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosisEventUpdateOne) Select(field string, fields ...string) *DiagnosisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagnosisEvent entity.
func (_u *DiagnosisEventUpdateOne) Save(ctx context.Context) (*DiagnosisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisEventUpdateOne) SaveX(ctx context.Context) *DiagnosisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := diagnosisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmittedDiagnosis(); ok {
		if err := diagnosisevent.SubmittedDiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "submitted_diagnosis", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.submitted_diagnosis": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActualDiagnosis(); ok {
		if err := diagnosisevent.ActualDiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "actual_diagnosis", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.actual_diagnosis": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisEventUpdateOne) sqlSave(ctx context.Context) (_node *DiagnosisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosisevent.Table, diagnosisevent.Columns, sqlgraph.NewFieldSpec(diagnosisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiagnosisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosisevent.FieldID)
		for _, f := range fields {
			if !diagnosisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagnosisevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(diagnosisevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmittedDiagnosis(); ok {
		_spec.SetField(diagnosisevent.FieldSubmittedDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActualDiagnosis(); ok {
		_spec.SetField(diagnosisevent.FieldActualDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(diagnosisevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(diagnosisevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(diagnosisevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(diagnosisevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(diagnosisevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(diagnosisevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamsPerformed(); ok {
		_spec.SetField(diagnosisevent.FieldExamsPerformed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExamsPerformed(); ok {
		_spec.AddField(diagnosisevent.FieldExamsPerformed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VitalsChecked(); ok {
		_spec.SetField(diagnosisevent.FieldVitalsChecked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMins(); ok {
		_spec.SetField(diagnosisevent.FieldDurationMins, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationMins(); ok {
		_spec.AddField(diagnosisevent.FieldDurationMins, field.TypeFloat64, value)
	}
	_node = &DiagnosisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
