// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avyukth/medsim/ent/questionevent"
)

// QuestionEventCreate is the builder for creating a QuestionEvent entity.
type QuestionEventCreate struct {
	config
	mutation *QuestionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuestionEventCreate) SetSequence(v int64) *QuestionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuestionEventCreate) SetTimestamp(v time.Time) *QuestionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuestionEventCreate) SetNillableTimestamp(v *time.Time) *QuestionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QuestionEventCreate) SetSessionID(v string) *QuestionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *QuestionEventCreate) SetQuestion(v string) *QuestionEventCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *QuestionEventCreate) SetAnswer(v string) *QuestionEventCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetTone sets the "tone" field.
func (_c *QuestionEventCreate) SetTone(v string) *QuestionEventCreate {
	_c.mutation.SetTone(v)
	return _c
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_c *QuestionEventCreate) SetNillableTone(v *string) *QuestionEventCreate {
	if v != nil {
		_c.SetTone(*v)
	}
	return _c
}

// Mutation returns the QuestionEventMutation object of the builder.
func (_c *QuestionEventCreate) Mutation() *QuestionEventMutation {
	return _c.mutation
}

// Save creates the QuestionEvent in the database.
func (_c *QuestionEventCreate) Save(ctx context.Context) (*QuestionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionEventCreate) SaveX(ctx context.Context) *QuestionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := questionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Tone(); !ok {
		v := questionevent.DefaultTone
		_c.mutation.SetTone(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuestionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuestionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuestionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := questionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "QuestionEvent.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := questionevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "QuestionEvent.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := questionevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tone(); !ok {
		return &ValidationError{Name: "tone", err: errors.New(`ent: missing required field "QuestionEvent.tone"`)}
	}
	return nil
}

func (_c *QuestionEventCreate) sqlSave(ctx context.Context) (*QuestionEvent, error) {
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

func (_c *QuestionEventCreate) createSpec() (*QuestionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionevent.Table, sqlgraph.NewFieldSpec(questionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(questionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(questionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(questionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(questionevent.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(questionevent.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Tone(); ok {
		_spec.SetField(questionevent.FieldTone, field.TypeString, value)
		_node.Tone = value
	}
	return _node, _spec
}

// QuestionEventCreateBulk is the builder for creating many QuestionEvent entities in bulk.
type QuestionEventCreateBulk struct {
	config
	err      error
	builders []*QuestionEventCreate
}

// Save creates the QuestionEvent entities in the database.
func (_c *QuestionEventCreateBulk) Save(ctx context.Context) ([]*QuestionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionEventMutation)
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
func (_c *QuestionEventCreateBulk) SaveX(ctx context.Context) []*QuestionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
