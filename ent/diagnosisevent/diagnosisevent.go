// Code generated by ent, DO NOT EDIT.

package diagnosisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the diagnosisevent type in the database.
	Label = "diagnosis_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSubmittedDiagnosis holds the string denoting the submitted_diagnosis field in the database.
	FieldSubmittedDiagnosis = "submitted_diagnosis"
	// FieldActualDiagnosis holds the string denoting the actual_diagnosis field in the database.
	FieldActualDiagnosis = "actual_diagnosis"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldFeedback holds the string denoting the feedback field in the database.
	FieldFeedback = "feedback"
	// FieldQuestionsAsked holds the string denoting the questions_asked field in the database.
	FieldQuestionsAsked = "questions_asked"
	// FieldExamsPerformed holds the string denoting the exams_performed field in the database.
	FieldExamsPerformed = "exams_performed"
	// FieldVitalsChecked holds the string denoting the vitals_checked field in the database.
	FieldVitalsChecked = "vitals_checked"
	// FieldDurationMins holds the string denoting the duration_mins field in the database.
	FieldDurationMins = "duration_mins"
	// Table holds the table name of the diagnosisevent in the database.
	Table = "diagnosis_events"
)

// Columns holds all SQL columns for diagnosisevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldSubmittedDiagnosis,
	FieldActualDiagnosis,
	FieldCorrect,
	FieldScore,
	FieldFeedback,
	FieldQuestionsAsked,
	FieldExamsPerformed,
	FieldVitalsChecked,
	FieldDurationMins,
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
	// SubmittedDiagnosisValidator is a validator for the "submitted_diagnosis" field. It is called by the builders before save.
	SubmittedDiagnosisValidator func(string) error
	// ActualDiagnosisValidator is a validator for the "actual_diagnosis" field. It is called by the builders before save.
	ActualDiagnosisValidator func(string) error
	// DefaultFeedback holds the default value on creation for the "feedback" field.
	DefaultFeedback string
	// DefaultQuestionsAsked holds the default value on creation for the "questions_asked" field.
	DefaultQuestionsAsked int
	// DefaultExamsPerformed holds the default value on creation for the "exams_performed" field.
	DefaultExamsPerformed int
	// DefaultVitalsChecked holds the default value on creation for the "vitals_checked" field.
	DefaultVitalsChecked bool
	// DefaultDurationMins holds the default value on creation for the "duration_mins" field.
	DefaultDurationMins float64
)

// OrderOption defines the ordering options for the DiagnosisEvent queries.
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

// BySubmittedDiagnosis orders the results by the submitted_diagnosis field.
func BySubmittedDiagnosis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedDiagnosis, opts...).ToFunc()
}

// ByActualDiagnosis orders the results by the actual_diagnosis field.
func ByActualDiagnosis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualDiagnosis, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByFeedback orders the results by the feedback field.
func ByFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedback, opts...).ToFunc()
}

// ByQuestionsAsked orders the results by the questions_asked field.
func ByQuestionsAsked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAsked, opts...).ToFunc()
}

// ByExamsPerformed orders the results by the exams_performed field.
func ByExamsPerformed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamsPerformed, opts...).ToFunc()
}

// ByVitalsChecked orders the results by the vitals_checked field.
func ByVitalsChecked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVitalsChecked, opts...).ToFunc()
}

// ByDurationMins orders the results by the duration_mins field.
func ByDurationMins(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMins, opts...).ToFunc()
}
