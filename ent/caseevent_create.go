// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avyukth/medsim/ent/caseevent"
)

// CaseEventCreate is the builder for creating a CaseEvent entity.
type CaseEventCreate struct {
	config
	mutation *CaseEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CaseEventCreate) SetSequence(v int64) *CaseEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CaseEventCreate) SetTimestamp(v time.Time) *CaseEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CaseEventCreate) SetNillableTimestamp(v *time.Time) *CaseEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *CaseEventCreate) SetSessionID(v string) *CaseEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *CaseEventCreate) SetTopic(v string) *CaseEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *CaseEventCreate) SetNillableTopic(v *string) *CaseEventCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *CaseEventCreate) SetPatientName(v string) *CaseEventCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetPatientAge sets the "patient_age" field.
func (_c *CaseEventCreate) SetPatientAge(v int) *CaseEventCreate {
	_c.mutation.SetPatientAge(v)
	return _c
}

// SetPatientGender sets the "patient_gender" field.
func (_c *CaseEventCreate) SetPatientGender(v string) *CaseEventCreate {
	_c.mutation.SetPatientGender(v)
	return _c
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_c *CaseEventCreate) SetChiefComplaint(v string) *CaseEventCreate {
	_c.mutation.SetChiefComplaint(v)
	return _c
}

// SetDiagnosis sets the "diagnosis" field.
func (_c *CaseEventCreate) SetDiagnosis(v string) *CaseEventCreate {
	_c.mutation.SetDiagnosis(v)
	return _c
}

// Mutation returns the CaseEventMutation object of the builder.
func (_c *CaseEventCreate) Mutation() *CaseEventMutation {
	return _c.mutation
}

// Save creates the CaseEvent in the database.
func (_c *CaseEventCreate) Save(ctx context.Context) (*CaseEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaseEventCreate) SaveX(ctx context.Context) *CaseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaseEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := caseevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := caseevent.DefaultTopic
		_c.mutation.SetTopic(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaseEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CaseEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CaseEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CaseEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := caseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "CaseEvent.topic"`)}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`ent: missing required field "CaseEvent.patient_name"`)}
	}
	if v, ok := _c.mutation.PatientName(); ok {
		if err := caseevent.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.patient_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientAge(); !ok {
		return &ValidationError{Name: "patient_age", err: errors.New(`ent: missing required field "CaseEvent.patient_age"`)}
	}
	if _, ok := _c.mutation.PatientGender(); !ok {
		return &ValidationError{Name: "patient_gender", err: errors.New(`ent: missing required field "CaseEvent.patient_gender"`)}
	}
	if v, ok := _c.mutation.PatientGender(); ok {
		if err := caseevent.PatientGenderValidator(v); err != nil {
			return &ValidationError{Name: "patient_gender", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.patient_gender": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChiefComplaint(); !ok {
		return &ValidationError{Name: "chief_complaint", err: errors.New(`ent: missing required field "CaseEvent.chief_complaint"`)}
	}
	if v, ok := _c.mutation.ChiefComplaint(); ok {
		if err := caseevent.ChiefComplaintValidator(v); err != nil {
			return &ValidationError{Name: "chief_complaint", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.chief_complaint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Diagnosis(); !ok {
		return &ValidationError{Name: "diagnosis", err: errors.New(`ent: missing required field "CaseEvent.diagnosis"`)}
	}
	if v, ok := _c.mutation.Diagnosis(); ok {
		if err := caseevent.DiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "diagnosis", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.diagnosis": %w`, err)}
		}
	}
	return nil
}

func (_c *CaseEventCreate) sqlSave(ctx context.Context) (*CaseEvent, error) {
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

func (_c *CaseEventCreate) createSpec() (*CaseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CaseEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(caseevent.Table, sqlgraph.NewFieldSpec(caseevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(caseevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(caseevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(caseevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(caseevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(caseevent.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.PatientAge(); ok {
		_spec.SetField(caseevent.FieldPatientAge, field.TypeInt, value)
		_node.PatientAge = value
	}
	if value, ok := _c.mutation.PatientGender(); ok {
		_spec.SetField(caseevent.FieldPatientGender, field.TypeString, value)
		_node.PatientGender = value
	}
	if value, ok := _c.mutation.ChiefComplaint(); ok {
		_spec.SetField(caseevent.FieldChiefComplaint, field.TypeString, value)
		_node.ChiefComplaint = value
	}
	if value, ok := _c.mutation.Diagnosis(); ok {
		_spec.SetField(caseevent.FieldDiagnosis, field.TypeString, value)
		_node.Diagnosis = value
	}
	return _node, _spec
}

// CaseEventCreateBulk is the builder for creating many CaseEvent entities in bulk.
type CaseEventCreateBulk struct {
	config
	err      error
	builders []*CaseEventCreate
}

// Save creates the CaseEvent entities in the database.
func (_c *CaseEventCreateBulk) Save(ctx context.Context) ([]*CaseEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaseEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaseEventMutation)
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
func (_c *CaseEventCreateBulk) SaveX(ctx context.Context) []*CaseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
