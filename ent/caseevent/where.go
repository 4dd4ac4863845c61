// Code generated by ent, DO NOT EDIT.

package caseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/avyukth/medsim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldSessionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldTopic, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldPatientName, v))
}

// PatientAge applies equality check predicate on the "patient_age" field. It's identical to PatientAgeEQ.
func PatientAge(v int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldPatientAge, v))
}

// PatientGender applies equality check predicate on the "patient_gender" field. It's identical to PatientGenderEQ.
func PatientGender(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldPatientGender, v))
}

// ChiefComplaint applies equality check predicate on the "chief_complaint" field. It's identical to ChiefComplaintEQ.
func ChiefComplaint(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldChiefComplaint, v))
}

// Diagnosis applies equality check predicate on the "diagnosis" field. It's identical to DiagnosisEQ.
func Diagnosis(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldDiagnosis, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContainsFold(FieldTopic, v))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContainsFold(FieldPatientName, v))
}

// PatientAgeEQ applies the EQ predicate on the "patient_age" field.
func PatientAgeEQ(v int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldPatientAge, v))
}

// PatientAgeNEQ applies the NEQ predicate on the "patient_age" field.
func PatientAgeNEQ(v int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldPatientAge, v))
}

// PatientAgeIn applies the In predicate on the "patient_age" field.
func PatientAgeIn(vs ...int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldPatientAge, vs...))
}

// PatientAgeNotIn applies the NotIn predicate on the "patient_age" field.
func PatientAgeNotIn(vs ...int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldPatientAge, vs...))
}

// PatientAgeGT applies the GT predicate on the "patient_age" field.
func PatientAgeGT(v int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldPatientAge, v))
}

// PatientAgeGTE applies the GTE predicate on the "patient_age" field.
func PatientAgeGTE(v int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldPatientAge, v))
}

// PatientAgeLT applies the LT predicate on the "patient_age" field.
func PatientAgeLT(v int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldPatientAge, v))
}

// PatientAgeLTE applies the LTE predicate on the "patient_age" field.
func PatientAgeLTE(v int) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldPatientAge, v))
}

// PatientGenderEQ applies the EQ predicate on the "patient_gender" field.
func PatientGenderEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldPatientGender, v))
}

// PatientGenderNEQ applies the NEQ predicate on the "patient_gender" field.
func PatientGenderNEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldPatientGender, v))
}

// PatientGenderIn applies the In predicate on the "patient_gender" field.
func PatientGenderIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldPatientGender, vs...))
}

// PatientGenderNotIn applies the NotIn predicate on the "patient_gender" field.
func PatientGenderNotIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldPatientGender, vs...))
}

// PatientGenderGT applies the GT predicate on the "patient_gender" field.
func PatientGenderGT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldPatientGender, v))
}

// PatientGenderGTE applies the GTE predicate on the "patient_gender" field.
func PatientGenderGTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldPatientGender, v))
}

// PatientGenderLT applies the LT predicate on the "patient_gender" field.
func PatientGenderLT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldPatientGender, v))
}

// PatientGenderLTE applies the LTE predicate on the "patient_gender" field.
func PatientGenderLTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldPatientGender, v))
}

// PatientGenderContains applies the Contains predicate on the "patient_gender" field.
func PatientGenderContains(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContains(FieldPatientGender, v))
}

// PatientGenderHasPrefix applies the HasPrefix predicate on the "patient_gender" field.
func PatientGenderHasPrefix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasPrefix(FieldPatientGender, v))
}

// PatientGenderHasSuffix applies the HasSuffix predicate on the "patient_gender" field.
func PatientGenderHasSuffix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasSuffix(FieldPatientGender, v))
}

// PatientGenderEqualFold applies the EqualFold predicate on the "patient_gender" field.
func PatientGenderEqualFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEqualFold(FieldPatientGender, v))
}

// PatientGenderContainsFold applies the ContainsFold predicate on the "patient_gender" field.
func PatientGenderContainsFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContainsFold(FieldPatientGender, v))
}

// ChiefComplaintEQ applies the EQ predicate on the "chief_complaint" field.
func ChiefComplaintEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldChiefComplaint, v))
}

// ChiefComplaintNEQ applies the NEQ predicate on the "chief_complaint" field.
func ChiefComplaintNEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldChiefComplaint, v))
}

// ChiefComplaintIn applies the In predicate on the "chief_complaint" field.
func ChiefComplaintIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldChiefComplaint, vs...))
}

// ChiefComplaintNotIn applies the NotIn predicate on the "chief_complaint" field.
func ChiefComplaintNotIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldChiefComplaint, vs...))
}

// ChiefComplaintGT applies the GT predicate on the "chief_complaint" field.
func ChiefComplaintGT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldChiefComplaint, v))
}

// ChiefComplaintGTE applies the GTE predicate on the "chief_complaint" field.
func ChiefComplaintGTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldChiefComplaint, v))
}

// ChiefComplaintLT applies the LT predicate on the "chief_complaint" field.
func ChiefComplaintLT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldChiefComplaint, v))
}

// ChiefComplaintLTE applies the LTE predicate on the "chief_complaint" field.
func ChiefComplaintLTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldChiefComplaint, v))
}

// ChiefComplaintContains applies the Contains predicate on the "chief_complaint" field.
func ChiefComplaintContains(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContains(FieldChiefComplaint, v))
}

// ChiefComplaintHasPrefix applies the HasPrefix predicate on the "chief_complaint" field.
func ChiefComplaintHasPrefix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasPrefix(FieldChiefComplaint, v))
}

// ChiefComplaintHasSuffix applies the HasSuffix predicate on the "chief_complaint" field.
func ChiefComplaintHasSuffix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasSuffix(FieldChiefComplaint, v))
}

// ChiefComplaintEqualFold applies the EqualFold predicate on the "chief_complaint" field.
func ChiefComplaintEqualFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEqualFold(FieldChiefComplaint, v))
}

// ChiefComplaintContainsFold applies the ContainsFold predicate on the "chief_complaint" field.
func ChiefComplaintContainsFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContainsFold(FieldChiefComplaint, v))
}

// DiagnosisEQ applies the EQ predicate on the "diagnosis" field.
func DiagnosisEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldDiagnosis, v))
}

// DiagnosisNEQ applies the NEQ predicate on the "diagnosis" field.
func DiagnosisNEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldDiagnosis, v))
}

// DiagnosisIn applies the In predicate on the "diagnosis" field.
func DiagnosisIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldDiagnosis, vs...))
}

// DiagnosisNotIn applies the NotIn predicate on the "diagnosis" field.
func DiagnosisNotIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldDiagnosis, vs...))
}

// DiagnosisGT applies the GT predicate on the "diagnosis" field.
func DiagnosisGT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldDiagnosis, v))
}

// DiagnosisGTE applies the GTE predicate on the "diagnosis" field.
func DiagnosisGTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldDiagnosis, v))
}

// DiagnosisLT applies the LT predicate on the "diagnosis" field.
func DiagnosisLT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldDiagnosis, v))
}

// DiagnosisLTE applies the LTE predicate on the "diagnosis" field.
func DiagnosisLTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldDiagnosis, v))
}

// DiagnosisContains applies the Contains predicate on the "diagnosis" field.
func DiagnosisContains(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContains(FieldDiagnosis, v))
}

// DiagnosisHasPrefix applies the HasPrefix predicate on the "diagnosis" field.
func DiagnosisHasPrefix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasPrefix(FieldDiagnosis, v))
}

// DiagnosisHasSuffix applies the HasSuffix predicate on the "diagnosis" field.
func DiagnosisHasSuffix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasSuffix(FieldDiagnosis, v))
}

// DiagnosisEqualFold applies the EqualFold predicate on the "diagnosis" field.
func DiagnosisEqualFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEqualFold(FieldDiagnosis, v))
}

// DiagnosisContainsFold applies the ContainsFold predicate on the "diagnosis" field.
func DiagnosisContainsFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContainsFold(FieldDiagnosis, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CaseEvent) predicate.CaseEvent {
	return predicate.CaseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CaseEvent) predicate.CaseEvent {
	return predicate.CaseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CaseEvent) predicate.CaseEvent {
	return predicate.CaseEvent(sql.NotPredicates(p))
}
