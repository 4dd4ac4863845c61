// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avyukth/medsim/ent/caseevent"
)

// CaseEvent is the model entity for the CaseEvent schema.
type CaseEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing position in the event log
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a session
	SessionID string `json:"session_id,omitempty"`
	// Requested topic, empty when randomly drawn
	Topic string `json:"topic,omitempty"`
	// PatientName holds the value of the "patient_name" field.
	PatientName string `json:"patient_name,omitempty"`
	// PatientAge holds the value of the "patient_age" field.
	PatientAge int `json:"patient_age,omitempty"`
	// PatientGender holds the value of the "patient_gender" field.
	PatientGender string `json:"patient_gender,omitempty"`
	// ChiefComplaint holds the value of the "chief_complaint" field.
	ChiefComplaint string `json:"chief_complaint,omitempty"`
	// The hidden diagnosis for this case
	Diagnosis    string `json:"diagnosis,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaseEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case caseevent.FieldID, caseevent.FieldSequence, caseevent.FieldPatientAge:
			values[i] = new(sql.NullInt64)
		case caseevent.FieldSessionID, caseevent.FieldTopic, caseevent.FieldPatientName, caseevent.FieldPatientGender, caseevent.FieldChiefComplaint, caseevent.FieldDiagnosis:
			values[i] = new(sql.NullString)
		case caseevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaseEvent fields.
func (_m *CaseEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case caseevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case caseevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case caseevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case caseevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case caseevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case caseevent.FieldPatientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_name", values[i])
			} else if value.Valid {
				_m.PatientName = value.String
			}
		case caseevent.FieldPatientAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field patient_age", values[i])
			} else if value.Valid {
				_m.PatientAge = int(value.Int64)
			}
		case caseevent.FieldPatientGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_gender", values[i])
			} else if value.Valid {
				_m.PatientGender = value.String
			}
		case caseevent.FieldChiefComplaint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chief_complaint", values[i])
			} else if value.Valid {
				_m.ChiefComplaint = value.String
			}
		case caseevent.FieldDiagnosis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagnosis", values[i])
			} else if value.Valid {
				_m.Diagnosis = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CaseEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CaseEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CaseEvent.
// Note that you need to call CaseEvent.Unwrap() before calling this method if this CaseEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaseEvent) Update() *CaseEventUpdateOne {
	return NewCaseEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaseEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaseEvent) Unwrap() *CaseEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaseEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaseEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CaseEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("patient_name=")
	builder.WriteString(_m.PatientName)
	builder.WriteString(", ")
	builder.WriteString("patient_age=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientAge))
	builder.WriteString(", ")
	builder.WriteString("patient_gender=")
	builder.WriteString(_m.PatientGender)
	builder.WriteString(", ")
	builder.WriteString("chief_complaint=")
	builder.WriteString(_m.ChiefComplaint)
	builder.WriteString(", ")
	builder.WriteString("diagnosis=")
	builder.WriteString(_m.Diagnosis)
	builder.WriteByte(')')
	return builder.String()
}

// CaseEvents is a parsable slice of CaseEvent.
type CaseEvents []*CaseEvent
