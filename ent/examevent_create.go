// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avyukth/medsim/ent/examevent"
)

// ExamEventCreate is the builder for creating a ExamEvent entity.
type ExamEventCreate struct {
	config
	mutation *ExamEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ExamEventCreate) SetSequence(v int64) *ExamEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExamEventCreate) SetTimestamp(v time.Time) *ExamEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableTimestamp(v *time.Time) *ExamEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExamEventCreate) SetSessionID(v string) *ExamEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetArea sets the "area" field.
func (_c *ExamEventCreate) SetArea(v string) *ExamEventCreate {
	_c.mutation.SetArea(v)
	return _c
}

// SetFindings sets the "findings" field.
func (_c *ExamEventCreate) SetFindings(v string) *ExamEventCreate {
	_c.mutation.SetFindings(v)
	return _c
}

// Mutation returns the ExamEventMutation object of the builder.
func (_c *ExamEventCreate) Mutation() *ExamEventMutation {
	return _c.mutation
}

// Save creates the ExamEvent in the database.
func (_c *ExamEventCreate) Save(ctx context.Context) (*ExamEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamEventCreate) SaveX(ctx context.Context) *ExamEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := examevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExamEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExamEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExamEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := examevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Area(); !ok {
		return &ValidationError{Name: "area", err: errors.New(`ent: missing required field "ExamEvent.area"`)}
	}
	if v, ok := _c.mutation.Area(); ok {
		if err := examevent.AreaValidator(v); err != nil {
			return &ValidationError{Name: "area", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.area": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Findings(); !ok {
		return &ValidationError{Name: "findings", err: errors.New(`ent: missing required field "ExamEvent.findings"`)}
	}
	if v, ok := _c.mutation.Findings(); ok {
		if err := examevent.FindingsValidator(v); err != nil {
			return &ValidationError{Name: "findings", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.findings": %w`, err)}
		}
	}
	return nil
}

func (_c *ExamEventCreate) sqlSave(ctx context.Context) (*ExamEvent, error) {
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

func (_c *ExamEventCreate) createSpec() (*ExamEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examevent.Table, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(examevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(examevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(examevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Area(); ok {
		_spec.SetField(examevent.FieldArea, field.TypeString, value)
		_node.Area = value
	}
	if value, ok := _c.mutation.Findings(); ok {
		_spec.SetField(examevent.FieldFindings, field.TypeString, value)
		_node.Findings = value
	}
	return _node, _spec
}

// ExamEventCreateBulk is the builder for creating many ExamEvent entities in bulk.
type ExamEventCreateBulk struct {
	config
	err      error
	builders []*ExamEventCreate
}

// Save creates the ExamEvent entities in the database.
func (_c *ExamEventCreateBulk) Save(ctx context.Context) ([]*ExamEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamEventMutation)
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
func (_c *ExamEventCreateBulk) SaveX(ctx context.Context) []*ExamEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
