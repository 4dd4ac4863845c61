// Code generated by ent, DO NOT EDIT.

package caseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the caseevent type in the database.
	Label = "case_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldPatientName holds the string denoting the patient_name field in the database.
	FieldPatientName = "patient_name"
	// FieldPatientAge holds the string denoting the patient_age field in the database.
	FieldPatientAge = "patient_age"
	// FieldPatientGender holds the string denoting the patient_gender field in the database.
	FieldPatientGender = "patient_gender"
	// FieldChiefComplaint holds the string denoting the chief_complaint field in the database.
	FieldChiefComplaint = "chief_complaint"
	// FieldDiagnosis holds the string denoting the diagnosis field in the database.
	FieldDiagnosis = "diagnosis"
	// Table holds the table name of the caseevent in the database.
	Table = "case_events"
)

// Columns holds all SQL columns for caseevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldTopic,
	FieldPatientName,
	FieldPatientAge,
	FieldPatientGender,
	FieldChiefComplaint,
	FieldDiagnosis,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	PatientNameValidator func(string) error
	// PatientGenderValidator is a validator for the "patient_gender" field. It is called by the builders before save.
	PatientGenderValidator func(string) error
	// ChiefComplaintValidator is a validator for the "chief_complaint" field. It is called by the builders before save.
	ChiefComplaintValidator func(string) error
	// DiagnosisValidator is a validator for the "diagnosis" field. It is called by the builders before save.
	DiagnosisValidator func(string) error
)

// OrderOption defines the ordering options for the CaseEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByPatientName orders the results by the patient_name field.
func ByPatientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientName, opts...).ToFunc()
}

// ByPatientAge orders the results by the patient_age field.
func ByPatientAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientAge, opts...).ToFunc()
}

// ByPatientGender orders the results by the patient_gender field.
func ByPatientGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientGender, opts...).ToFunc()
}

// ByChiefComplaint orders the results by the chief_complaint field.
func ByChiefComplaint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChiefComplaint, opts...).ToFunc()
}

// ByDiagnosis orders the results by the diagnosis field.
func ByDiagnosis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagnosis, opts...).ToFunc()
}
