// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avyukth/medsim/ent/caseevent"
	"github.com/avyukth/medsim/ent/predicate"
)

// CaseEventUpdate is the builder for updating CaseEvent entities.
type CaseEventUpdate struct {
	config
	hooks    []Hook
	mutation *CaseEventMutation
}

// Where appends a list predicates to the CaseEventUpdate builder.
func (_u *CaseEventUpdate) Where(ps ...predicate.CaseEvent) *CaseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CaseEventUpdate) SetSessionID(v string) *CaseEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CaseEventUpdate) SetNillableSessionID(v *string) *CaseEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *CaseEventUpdate) SetTopic(v string) *CaseEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *CaseEventUpdate) SetNillableTopic(v *string) *CaseEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *CaseEventUpdate) SetPatientName(v string) *CaseEventUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *CaseEventUpdate) SetNillablePatientName(v *string) *CaseEventUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientAge sets the "patient_age" field.
func (_u *CaseEventUpdate) SetPatientAge(v int) *CaseEventUpdate {
	_u.mutation.ResetPatientAge()
	_u.mutation.SetPatientAge(v)
	return _u
}

// SetNillablePatientAge sets the "patient_age" field if the given value is not nil.
func (_u *CaseEventUpdate) SetNillablePatientAge(v *int) *CaseEventUpdate {
	if v != nil {
		_u.SetPatientAge(*v)
	}
	return _u
}

// AddPatientAge adds value to the "patient_age" field.
func (_u *CaseEventUpdate) AddPatientAge(v int) *CaseEventUpdate {
	_u.mutation.AddPatientAge(v)
	return _u
}

// SetPatientGender sets the "patient_gender" field.
func (_u *CaseEventUpdate) SetPatientGender(v string) *CaseEventUpdate {
	_u.mutation.SetPatientGender(v)
	return _u
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_u *CaseEventUpdate) SetNillablePatientGender(v *string) *CaseEventUpdate {
	if v != nil {
		_u.SetPatientGender(*v)
	}
	return _u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_u *CaseEventUpdate) SetChiefComplaint(v string) *CaseEventUpdate {
	_u.mutation.SetChiefComplaint(v)
	return _u
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_u *CaseEventUpdate) SetNillableChiefComplaint(v *string) *CaseEventUpdate {
	if v != nil {
		_u.SetChiefComplaint(*v)
	}
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *CaseEventUpdate) SetDiagnosis(v string) *CaseEventUpdate {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *CaseEventUpdate) SetNillableDiagnosis(v *string) *CaseEventUpdate {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// Mutation returns the CaseEventMutation object of the builder.
func (_u *CaseEventUpdate) Mutation() *CaseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := caseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientName(); ok {
		if err := caseevent.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientGender(); ok {
		if err := caseevent.PatientGenderValidator(v); err != nil {
			return &ValidationError{Name: "patient_gender", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.patient_gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChiefComplaint(); ok {
		if err := caseevent.ChiefComplaintValidator(v); err != nil {
			return &ValidationError{Name: "chief_complaint", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.chief_complaint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Diagnosis(); ok {
		if err := caseevent.DiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "diagnosis", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.diagnosis": %w`, err)}
		}
	}
	return nil
}

func (_u *CaseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caseevent.Table, caseevent.Columns, sqlgraph.NewFieldSpec(caseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(caseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(caseevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(caseevent.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientAge(); ok {
		_spec.SetField(caseevent.FieldPatientAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatientAge(); ok {
		_spec.AddField(caseevent.FieldPatientAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PatientGender(); ok {
		_spec.SetField(caseevent.FieldPatientGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChiefComplaint(); ok {
		_spec.SetField(caseevent.FieldChiefComplaint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(caseevent.FieldDiagnosis, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseEventUpdateOne is the builder for updating a single CaseEvent entity.
type CaseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *CaseEventUpdateOne) SetSessionID(v string) *CaseEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CaseEventUpdateOne) SetNillableSessionID(v *string) *CaseEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *CaseEventUpdateOne) SetTopic(v string) *CaseEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *CaseEventUpdateOne) SetNillableTopic(v *string) *CaseEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *CaseEventUpdateOne) SetPatientName(v string) *CaseEventUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *CaseEventUpdateOne) SetNillablePatientName(v *string) *CaseEventUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientAge sets the "patient_age" field.
func (_u *CaseEventUpdateOne) SetPatientAge(v int) *CaseEventUpdateOne {
	_u.mutation.ResetPatientAge()
	_u.mutation.SetPatientAge(v)
	return _u
}

// SetNillablePatientAge sets the "patient_age" field if the given value is not nil.
func (_u *CaseEventUpdateOne) SetNillablePatientAge(v *int) *CaseEventUpdateOne {
	if v != nil {
		_u.SetPatientAge(*v)
	}
	return _u
}

// AddPatientAge adds value to the "patient_age" field.
func (_u *CaseEventUpdateOne) AddPatientAge(v int) *CaseEventUpdateOne {
	_u.mutation.AddPatientAge(v)
	return _u
}

// SetPatientGender sets the "patient_gender" field.
func (_u *CaseEventUpdateOne) SetPatientGender(v string) *CaseEventUpdateOne {
	_u.mutation.SetPatientGender(v)
	return _u
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_u *CaseEventUpdateOne) SetNillablePatientGender(v *string) *CaseEventUpdateOne {
	if v != nil {
		_u.SetPatientGender(*v)
	}
	return _u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_u *CaseEventUpdateOne) SetChiefComplaint(v string) *CaseEventUpdateOne {
	_u.mutation.SetChiefComplaint(v)
	return _u
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_u *CaseEventUpdateOne) SetNillableChiefComplaint(v *string) *CaseEventUpdateOne {
	if v != nil {
		_u.SetChiefComplaint(*v)
	}
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *CaseEventUpdateOne) SetDiagnosis(v string) *CaseEventUpdateOne {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *CaseEventUpdateOne) SetNillableDiagnosis(v *string) *CaseEventUpdateOne {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// Mutation returns the CaseEventMutation object of the builder.
func (_u *CaseEventUpdateOne) Mutation() *CaseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CaseEventUpdate builder.
func (_u *CaseEventUpdateOne) Where(ps ...predicate.CaseEvent) *CaseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseEventUpdateOne) Select(field string, fields ...string) *CaseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseEvent entity.
func (_u *CaseEventUpdateOne) Save(ctx context.Context) (*CaseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseEventUpdateOne) SaveX(ctx context.Context) *CaseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := caseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientName(); ok {
		if err := caseevent.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientGender(); ok {
		if err := caseevent.PatientGenderValidator(v); err != nil {
			return &ValidationError{Name: "patient_gender", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.patient_gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChiefComplaint(); ok {
		if err := caseevent.ChiefComplaintValidator(v); err != nil {
			return &ValidationError{Name: "chief_complaint", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.chief_complaint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Diagnosis(); ok {
		if err := caseevent.DiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "diagnosis", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.diagnosis": %w`, err)}
		}
	}
	return nil
}

func (_u *CaseEventUpdateOne) sqlSave(ctx context.Context) (_node *CaseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caseevent.Table, caseevent.Columns, sqlgraph.NewFieldSpec(caseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, caseevent.FieldID)
		for _, f := range fields {
			if !caseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != caseevent.FieldID {
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
		_spec.SetField(caseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(caseevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(caseevent.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientAge(); ok {
		_spec.SetField(caseevent.FieldPatientAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatientAge(); ok {
		_spec.AddField(caseevent.FieldPatientAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PatientGender(); ok {
		_spec.SetField(caseevent.FieldPatientGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChiefComplaint(); ok {
		_spec.SetField(caseevent.FieldChiefComplaint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(caseevent.FieldDiagnosis, field.TypeString, value)
	}
	_node = &CaseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
