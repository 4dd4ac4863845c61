// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avyukth/medsim/ent/diagnosisevent"
)

// DiagnosisEvent is the model entity for the DiagnosisEvent schema.
type DiagnosisEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing position in the event log
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// SubmittedDiagnosis holds the value of the "submitted_diagnosis" field.
	SubmittedDiagnosis string `json:"submitted_diagnosis,omitempty"`
	// ActualDiagnosis holds the value of the "actual_diagnosis" field.
	ActualDiagnosis string `json:"actual_diagnosis,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// 0-100 evaluation score
	Score int `json:"score,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback string `json:"feedback,omitempty"`
	// QuestionsAsked holds the value of the "questions_asked" field.
	QuestionsAsked int `json:"questions_asked,omitempty"`
	// ExamsPerformed holds the value of the "exams_performed" field.
	ExamsPerformed int `json:"exams_performed,omitempty"`
	// VitalsChecked holds the value of the "vitals_checked" field.
	VitalsChecked bool `json:"vitals_checked,omitempty"`
	// Encounter duration in fractional minutes
	DurationMins float64 `json:"duration_mins,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiagnosisEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagnosisevent.FieldCorrect, diagnosisevent.FieldVitalsChecked:
			values[i] = new(sql.NullBool)
		case diagnosisevent.FieldDurationMins:
			values[i] = new(sql.NullFloat64)
		case diagnosisevent.FieldID, diagnosisevent.FieldSequence, diagnosisevent.FieldScore, diagnosisevent.FieldQuestionsAsked, diagnosisevent.FieldExamsPerformed:
			values[i] = new(sql.NullInt64)
		case diagnosisevent.FieldSessionID, diagnosisevent.FieldSubmittedDiagnosis, diagnosisevent.FieldActualDiagnosis, diagnosisevent.FieldFeedback:
			values[i] = new(sql.NullString)
		case diagnosisevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiagnosisEvent fields.
func (_m *DiagnosisEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagnosisevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case diagnosisevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case diagnosisevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case diagnosisevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case diagnosisevent.FieldSubmittedDiagnosis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_diagnosis", values[i])
			} else if value.Valid {
				_m.SubmittedDiagnosis = value.String
			}
		case diagnosisevent.FieldActualDiagnosis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actual_diagnosis", values[i])
			} else if value.Valid {
				_m.ActualDiagnosis = value.String
			}
		case diagnosisevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case diagnosisevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case diagnosisevent.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		case diagnosisevent.FieldQuestionsAsked:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_asked", values[i])
			} else if value.Valid {
				_m.QuestionsAsked = int(value.Int64)
			}
		case diagnosisevent.FieldExamsPerformed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exams_performed", values[i])
			} else if value.Valid {
				_m.ExamsPerformed = int(value.Int64)
			}
		case diagnosisevent.FieldVitalsChecked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field vitals_checked", values[i])
			} else if value.Valid {
				_m.VitalsChecked = value.Bool
			}
		case diagnosisevent.FieldDurationMins:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_mins", values[i])
			} else if value.Valid {
				_m.DurationMins = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiagnosisEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DiagnosisEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DiagnosisEvent.
// Note that you need to call DiagnosisEvent.Unwrap() before calling this method if this DiagnosisEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiagnosisEvent) Update() *DiagnosisEventUpdateOne {
	return NewDiagnosisEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiagnosisEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiagnosisEvent) Unwrap() *DiagnosisEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiagnosisEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiagnosisEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DiagnosisEvent(")
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
	builder.WriteString("submitted_diagnosis=")
	builder.WriteString(_m.SubmittedDiagnosis)
	builder.WriteString(", ")
	builder.WriteString("actual_diagnosis=")
	builder.WriteString(_m.ActualDiagnosis)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteString(", ")
	builder.WriteString("questions_asked=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAsked))
	builder.WriteString(", ")
	builder.WriteString("exams_performed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExamsPerformed))
	builder.WriteString(", ")
	builder.WriteString("vitals_checked=")
	builder.WriteString(fmt.Sprintf("%v", _m.VitalsChecked))
	builder.WriteString(", ")
	builder.WriteString("duration_mins=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMins))
	builder.WriteByte(')')
	return builder.String()
}

// DiagnosisEvents is a parsable slice of DiagnosisEvent.
type DiagnosisEvents []*DiagnosisEvent
