// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avyukth/medsim/ent/predicate"
	"github.com/avyukth/medsim/ent/questionevent"
)

// QuestionEventUpdate is the builder for updating QuestionEvent entities.
type QuestionEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionEventMutation
}

// Where appends a list predicates to the QuestionEventUpdate builder.
func (_u *QuestionEventUpdate) Where(ps ...predicate.QuestionEvent) *QuestionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuestionEventUpdate) SetSessionID(v string) *QuestionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuestionEventUpdate) SetNillableSessionID(v *string) *QuestionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QuestionEventUpdate) SetQuestion(v string) *QuestionEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuestionEventUpdate) SetNillableQuestion(v *string) *QuestionEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuestionEventUpdate) SetAnswer(v string) *QuestionEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuestionEventUpdate) SetNillableAnswer(v *string) *QuestionEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetTone sets the "tone" field.
func (_u *QuestionEventUpdate) SetTone(v string) *QuestionEventUpdate {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *QuestionEventUpdate) SetNillableTone(v *string) *QuestionEventUpdate {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// Mutation returns the QuestionEventMutation object of the builder.
func (_u *QuestionEventUpdate) Mutation() *QuestionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := questionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := questionevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := questionevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionevent.Table, questionevent.Columns, sqlgraph.NewFieldSpec(questionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(questionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(questionevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(questionevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(questionevent.FieldTone, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionEventUpdateOne is the builder for updating a single QuestionEvent entity.
type QuestionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuestionEventUpdateOne) SetSessionID(v string) *QuestionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuestionEventUpdateOne) SetNillableSessionID(v *string) *QuestionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QuestionEventUpdateOne) SetQuestion(v string) *QuestionEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuestionEventUpdateOne) SetNillableQuestion(v *string) *QuestionEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuestionEventUpdateOne) SetAnswer(v string) *QuestionEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuestionEventUpdateOne) SetNillableAnswer(v *string) *QuestionEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetTone sets the "tone" field.
func (_u *QuestionEventUpdateOne) SetTone(v string) *QuestionEventUpdateOne {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *QuestionEventUpdateOne) SetNillableTone(v *string) *QuestionEventUpdateOne {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// Mutation returns the QuestionEventMutation object of the builder.
func (_u *QuestionEventUpdateOne) Mutation() *QuestionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionEventUpdate builder.
func (_u *QuestionEventUpdateOne) Where(ps ...predicate.QuestionEvent) *QuestionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionEventUpdateOne) Select(field string, fields ...string) *QuestionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionEvent entity.
func (_u *QuestionEventUpdateOne) Save(ctx context.Context) (*QuestionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionEventUpdateOne) SaveX(ctx context.Context) *QuestionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := questionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := questionevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := questionevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionEventUpdateOne) sqlSave(ctx context.Context) (_node *QuestionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionevent.Table, questionevent.Columns, sqlgraph.NewFieldSpec(questionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionevent.FieldID)
		for _, f := range fields {
			if !questionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionevent.FieldID {
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
		_spec.SetField(questionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(questionevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(questionevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(questionevent.FieldTone, field.TypeString, value)
	}
	_node = &QuestionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
