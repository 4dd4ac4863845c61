// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avyukth/medsim/ent/examevent"
	"github.com/avyukth/medsim/ent/predicate"
)

// ExamEventUpdate is the builder for updating ExamEvent entities.
type ExamEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExamEventMutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdate) Where(ps ...predicate.ExamEvent) *ExamEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExamEventUpdate) SetSessionID(v string) *ExamEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableSessionID(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetArea sets the "area" field.
func (_u *ExamEventUpdate) SetArea(v string) *ExamEventUpdate {
	_u.mutation.SetArea(v)
	return _u
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableArea(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetArea(*v)
	}
	return _u
}

// SetFindings sets the "findings" field.
func (_u *ExamEventUpdate) SetFindings(v string) *ExamEventUpdate {
	_u.mutation.SetFindings(v)
	return _u
}

// SetNillableFindings sets the "findings" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableFindings(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetFindings(*v)
	}
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdate) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := examevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Area(); ok {
		if err := examevent.AreaValidator(v); err != nil {
			return &ValidationError{Name: "area", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.area": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Findings(); ok {
		if err := examevent.FindingsValidator(v); err != nil {
			return &ValidationError{Name: "findings", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.findings": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(examevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Area(); ok {
		_spec.SetField(examevent.FieldArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(examevent.FieldFindings, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamEventUpdateOne is the builder for updating a single ExamEvent entity.
type ExamEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ExamEventUpdateOne) SetSessionID(v string) *ExamEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableSessionID(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetArea sets the "area" field.
func (_u *ExamEventUpdateOne) SetArea(v string) *ExamEventUpdateOne {
	_u.mutation.SetArea(v)
	return _u
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableArea(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetArea(*v)
	}
	return _u
}

// SetFindings sets the "findings" field.
func (_u *ExamEventUpdateOne) SetFindings(v string) *ExamEventUpdateOne {
	_u.mutation.SetFindings(v)
	return _u
}

// SetNillableFindings sets the "findings" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableFindings(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetFindings(*v)
	}
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdateOne) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdateOne) Where(ps ...predicate.ExamEvent) *ExamEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamEventUpdateOne) Select(field string, fields ...string) *ExamEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamEvent entity.
func (_u *ExamEventUpdateOne) Save(ctx context.Context) (*ExamEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdateOne) SaveX(ctx context.Context) *ExamEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := examevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Area(); ok {
		if err := examevent.AreaValidator(v); err != nil {
			return &ValidationError{Name: "area", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.area": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Findings(); ok {
		if err := examevent.FindingsValidator(v); err != nil {
			return &ValidationError{Name: "findings", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.findings": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdateOne) sqlSave(ctx context.Context) (_node *ExamEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examevent.FieldID)
		for _, f := range fields {
			if !examevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examevent.FieldID {
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
		_spec.SetField(examevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Area(); ok {
		_spec.SetField(examevent.FieldArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(examevent.FieldFindings, field.TypeString, value)
	}
	_node = &ExamEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
