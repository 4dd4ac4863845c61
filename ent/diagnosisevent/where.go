// Code generated by ent, DO NOT EDIT.

package diagnosisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/avyukth/medsim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSessionID, v))
}

// SubmittedDiagnosis applies equality check predicate on the "submitted_diagnosis" field. It's identical to SubmittedDiagnosisEQ.
func SubmittedDiagnosis(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSubmittedDiagnosis, v))
}

// ActualDiagnosis applies equality check predicate on the "actual_diagnosis" field. It's identical to ActualDiagnosisEQ.
func ActualDiagnosis(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldActualDiagnosis, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldCorrect, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldScore, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldFeedback, v))
}

// QuestionsAsked applies equality check predicate on the "questions_asked" field. It's identical to QuestionsAskedEQ.
func QuestionsAsked(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldQuestionsAsked, v))
}

// ExamsPerformed applies equality check predicate on the "exams_performed" field. It's identical to ExamsPerformedEQ.
func ExamsPerformed(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldExamsPerformed, v))
}

// VitalsChecked applies equality check predicate on the "vitals_checked" field. It's identical to VitalsCheckedEQ.
func VitalsChecked(v bool) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldVitalsChecked, v))
}

// DurationMins applies equality check predicate on the "duration_mins" field. It's identical to DurationMinsEQ.
func DurationMins(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldDurationMins, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// SubmittedDiagnosisEQ applies the EQ predicate on the "submitted_diagnosis" field.
func SubmittedDiagnosisEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSubmittedDiagnosis, v))
}

// SubmittedDiagnosisNEQ applies the NEQ predicate on the "submitted_diagnosis" field.
func SubmittedDiagnosisNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldSubmittedDiagnosis, v))
}

// SubmittedDiagnosisIn applies the In predicate on the "submitted_diagnosis" field.
func SubmittedDiagnosisIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldSubmittedDiagnosis, vs...))
}

// SubmittedDiagnosisNotIn applies the NotIn predicate on the "submitted_diagnosis" field.
func SubmittedDiagnosisNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldSubmittedDiagnosis, vs...))
}

// SubmittedDiagnosisGT applies the GT predicate on the "submitted_diagnosis" field.
func SubmittedDiagnosisGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldSubmittedDiagnosis, v))
}

// SubmittedDiagnosisGTE applies the GTE predicate on the "submitted_diagnosis" field.
func SubmittedDiagnosisGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldSubmittedDiagnosis, v))
}

// SubmittedDiagnosisLT applies the LT predicate on the "submitted_diagnosis" field.
func SubmittedDiagnosisLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldSubmittedDiagnosis, v))
}

// SubmittedDiagnosisLTE applies the LTE predicate on the "submitted_diagnosis" field.
func SubmittedDiagnosisLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldSubmittedDiagnosis, v))
}

// SubmittedDiagnosisContains applies the Contains predicate on the "submitted_diagnosis" field.
func SubmittedDiagnosisContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldSubmittedDiagnosis, v))
}

// SubmittedDiagnosisHasPrefix applies the HasPrefix predicate on the "submitted_diagnosis" field.
func SubmittedDiagnosisHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldSubmittedDiagnosis, v))
}

// SubmittedDiagnosisHasSuffix applies the HasSuffix predicate on the "submitted_diagnosis" field.
func SubmittedDiagnosisHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldSubmittedDiagnosis, v))
}

// SubmittedDiagnosisEqualFold applies the EqualFold predicate on the "submitted_diagnosis" field.
func SubmittedDiagnosisEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldSubmittedDiagnosis, v))
}

// SubmittedDiagnosisContainsFold applies the ContainsFold predicate on the "submitted_diagnosis" field.
func SubmittedDiagnosisContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldSubmittedDiagnosis, v))
}

// ActualDiagnosisEQ applies the EQ predicate on the "actual_diagnosis" field.
func ActualDiagnosisEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldActualDiagnosis, v))
}

// ActualDiagnosisNEQ applies the NEQ predicate on the "actual_diagnosis" field.
func ActualDiagnosisNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldActualDiagnosis, v))
}

// ActualDiagnosisIn applies the In predicate on the "actual_diagnosis" field.
func ActualDiagnosisIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldActualDiagnosis, vs...))
}

// ActualDiagnosisNotIn applies the NotIn predicate on the "actual_diagnosis" field.
func ActualDiagnosisNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldActualDiagnosis, vs...))
}

// ActualDiagnosisGT applies the GT predicate on the "actual_diagnosis" field.
func ActualDiagnosisGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldActualDiagnosis, v))
}

// ActualDiagnosisGTE applies the GTE predicate on the "actual_diagnosis" field.
func ActualDiagnosisGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldActualDiagnosis, v))
}

// ActualDiagnosisLT applies the LT predicate on the "actual_diagnosis" field.
func ActualDiagnosisLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldActualDiagnosis, v))
}

// ActualDiagnosisLTE applies the LTE predicate on the "actual_diagnosis" field.
func ActualDiagnosisLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldActualDiagnosis, v))
}

// ActualDiagnosisContains applies the Contains predicate on the "actual_diagnosis" field.
func ActualDiagnosisContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldActualDiagnosis, v))
}

// ActualDiagnosisHasPrefix applies the HasPrefix predicate on the "actual_diagnosis" field.
func ActualDiagnosisHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldActualDiagnosis, v))
}

// ActualDiagnosisHasSuffix applies the HasSuffix predicate on the "actual_diagnosis" field.
func ActualDiagnosisHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldActualDiagnosis, v))
}

// ActualDiagnosisEqualFold applies the EqualFold predicate on the "actual_diagnosis" field.
func ActualDiagnosisEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldActualDiagnosis, v))
}

// ActualDiagnosisContainsFold applies the ContainsFold predicate on the "actual_diagnosis" field.
func ActualDiagnosisContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldActualDiagnosis, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldCorrect, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldScore, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldFeedback, v))
}

// QuestionsAskedEQ applies the EQ predicate on the "questions_asked" field.
func QuestionsAskedEQ(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldQuestionsAsked, v))
}

// QuestionsAskedNEQ applies the NEQ predicate on the "questions_asked" field.
func QuestionsAskedNEQ(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldQuestionsAsked, v))
}

// QuestionsAskedIn applies the In predicate on the "questions_asked" field.
func QuestionsAskedIn(vs ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldQuestionsAsked, vs...))
}

// QuestionsAskedNotIn applies the NotIn predicate on the "questions_asked" field.
func QuestionsAskedNotIn(vs ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldQuestionsAsked, vs...))
}

// QuestionsAskedGT applies the GT predicate on the "questions_asked" field.
func QuestionsAskedGT(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldQuestionsAsked, v))
}

// QuestionsAskedGTE applies the GTE predicate on the "questions_asked" field.
func QuestionsAskedGTE(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldQuestionsAsked, v))
}

// QuestionsAskedLT applies the LT predicate on the "questions_asked" field.
func QuestionsAskedLT(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldQuestionsAsked, v))
}

// QuestionsAskedLTE applies the LTE predicate on the "questions_asked" field.
func QuestionsAskedLTE(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldQuestionsAsked, v))
}

// ExamsPerformedEQ applies the EQ predicate on the "exams_performed" field.
func ExamsPerformedEQ(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldExamsPerformed, v))
}

// ExamsPerformedNEQ applies the NEQ predicate on the "exams_performed" field.
func ExamsPerformedNEQ(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldExamsPerformed, v))
}

// ExamsPerformedIn applies the In predicate on the "exams_performed" field.
func ExamsPerformedIn(vs ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldExamsPerformed, vs...))
}

// ExamsPerformedNotIn applies the NotIn predicate on the "exams_performed" field.
func ExamsPerformedNotIn(vs ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldExamsPerformed, vs...))
}

// ExamsPerformedGT applies the GT predicate on the "exams_performed" field.
func ExamsPerformedGT(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldExamsPerformed, v))
}

// ExamsPerformedGTE applies the GTE predicate on the "exams_performed" field.
func ExamsPerformedGTE(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldExamsPerformed, v))
}

// ExamsPerformedLT applies the LT predicate on the "exams_performed" field.
func ExamsPerformedLT(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldExamsPerformed, v))
}

// ExamsPerformedLTE applies the LTE predicate on the "exams_performed" field.
func ExamsPerformedLTE(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldExamsPerformed, v))
}

// VitalsCheckedEQ applies the EQ predicate on the "vitals_checked" field.
func VitalsCheckedEQ(v bool) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldVitalsChecked, v))
}

// VitalsCheckedNEQ applies the NEQ predicate on the "vitals_checked" field.
func VitalsCheckedNEQ(v bool) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldVitalsChecked, v))
}

// DurationMinsEQ applies the EQ predicate on the "duration_mins" field.
func DurationMinsEQ(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldDurationMins, v))
}

// DurationMinsNEQ applies the NEQ predicate on the "duration_mins" field.
func DurationMinsNEQ(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldDurationMins, v))
}

// DurationMinsIn applies the In predicate on the "duration_mins" field.
func DurationMinsIn(vs ...float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldDurationMins, vs...))
}

// DurationMinsNotIn applies the NotIn predicate on the "duration_mins" field.
func DurationMinsNotIn(vs ...float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldDurationMins, vs...))
}

// DurationMinsGT applies the GT predicate on the "duration_mins" field.
func DurationMinsGT(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldDurationMins, v))
}

// DurationMinsGTE applies the GTE predicate on the "duration_mins" field.
func DurationMinsGTE(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldDurationMins, v))
}

// DurationMinsLT applies the LT predicate on the "duration_mins" field.
func DurationMinsLT(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldDurationMins, v))
}

// DurationMinsLTE applies the LTE predicate on the "duration_mins" field.
func DurationMinsLTE(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldDurationMins, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.NotPredicates(p))
}
