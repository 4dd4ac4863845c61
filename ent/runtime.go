// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/avyukth/medsim/ent/caseevent"
	"github.com/avyukth/medsim/ent/diagnosisevent"
	"github.com/avyukth/medsim/ent/examevent"
	"github.com/avyukth/medsim/ent/hintevent"
	"github.com/avyukth/medsim/ent/llmrequestevent"
	"github.com/avyukth/medsim/ent/questionevent"
	"github.com/avyukth/medsim/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	caseeventMixin := schema.CaseEvent{}.Mixin()
	caseeventMixinFields0 := caseeventMixin[0].Fields()
	_ = caseeventMixinFields0
	caseeventFields := schema.CaseEvent{}.Fields()
	_ = caseeventFields
	// caseeventDescTimestamp is the schema descriptor for timestamp field.
	caseeventDescTimestamp := caseeventMixinFields0[1].Descriptor()
	// caseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	caseevent.DefaultTimestamp = caseeventDescTimestamp.Default.(func() time.Time)
	// caseeventDescSessionID is the schema descriptor for session_id field.
	caseeventDescSessionID := caseeventFields[0].Descriptor()
	// caseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	caseevent.SessionIDValidator = caseeventDescSessionID.Validators[0].(func(string) error)
	// caseeventDescTopic is the schema descriptor for topic field.
	caseeventDescTopic := caseeventFields[1].Descriptor()
	// caseevent.DefaultTopic holds the default value on creation for the topic field.
	caseevent.DefaultTopic = caseeventDescTopic.Default.(string)
	// caseeventDescPatientName is the schema descriptor for patient_name field.
	caseeventDescPatientName := caseeventFields[2].Descriptor()
	// caseevent.PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	caseevent.PatientNameValidator = caseeventDescPatientName.Validators[0].(func(string) error)
	// caseeventDescPatientGender is the schema descriptor for patient_gender field.
	caseeventDescPatientGender := caseeventFields[4].Descriptor()
	// caseevent.PatientGenderValidator is a validator for the "patient_gender" field. It is called by the builders before save.
	caseevent.PatientGenderValidator = caseeventDescPatientGender.Validators[0].(func(string) error)
	// caseeventDescChiefComplaint is the schema descriptor for chief_complaint field.
	caseeventDescChiefComplaint := caseeventFields[5].Descriptor()
	// caseevent.ChiefComplaintValidator is a validator for the "chief_complaint" field. It is called by the builders before save.
	caseevent.ChiefComplaintValidator = caseeventDescChiefComplaint.Validators[0].(func(string) error)
	// caseeventDescDiagnosis is the schema descriptor for diagnosis field.
	caseeventDescDiagnosis := caseeventFields[6].Descriptor()
	// caseevent.DiagnosisValidator is a validator for the "diagnosis" field. It is called by the builders before save.
	caseevent.DiagnosisValidator = caseeventDescDiagnosis.Validators[0].(func(string) error)
	diagnosiseventMixin := schema.DiagnosisEvent{}.Mixin()
	diagnosiseventMixinFields0 := diagnosiseventMixin[0].Fields()
	_ = diagnosiseventMixinFields0
	diagnosiseventFields := schema.DiagnosisEvent{}.Fields()
	_ = diagnosiseventFields
	// diagnosiseventDescTimestamp is the schema descriptor for timestamp field.
	diagnosiseventDescTimestamp := diagnosiseventMixinFields0[1].Descriptor()
	// diagnosisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	diagnosisevent.DefaultTimestamp = diagnosiseventDescTimestamp.Default.(func() time.Time)
	// diagnosiseventDescSessionID is the schema descriptor for session_id field.
	diagnosiseventDescSessionID := diagnosiseventFields[0].Descriptor()
	// diagnosisevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	diagnosisevent.SessionIDValidator = diagnosiseventDescSessionID.Validators[0].(func(string) error)
	// diagnosiseventDescSubmittedDiagnosis is the schema descriptor for submitted_diagnosis field.
	diagnosiseventDescSubmittedDiagnosis := diagnosiseventFields[1].Descriptor()
	// diagnosisevent.SubmittedDiagnosisValidator is a validator for the "submitted_diagnosis" field. It is called by the builders before save.
	diagnosisevent.SubmittedDiagnosisValidator = diagnosiseventDescSubmittedDiagnosis.Validators[0].(func(string) error)
	// diagnosiseventDescActualDiagnosis is the schema descriptor for actual_diagnosis field.
	diagnosiseventDescActualDiagnosis := diagnosiseventFields[2].Descriptor()
	// diagnosisevent.ActualDiagnosisValidator is a validator for the "actual_diagnosis" field. It is called by the builders before save.
	diagnosisevent.ActualDiagnosisValidator = diagnosiseventDescActualDiagnosis.Validators[0].(func(string) error)
	// diagnosiseventDescFeedback is the schema descriptor for feedback field.
	diagnosiseventDescFeedback := diagnosiseventFields[5].Descriptor()
	// diagnosisevent.DefaultFeedback holds the default value on creation for the feedback field.
	diagnosisevent.DefaultFeedback = diagnosiseventDescFeedback.Default.(string)
	// diagnosiseventDescQuestionsAsked is the schema descriptor for questions_asked field.
	diagnosiseventDescQuestionsAsked := diagnosiseventFields[6].Descriptor()
	// diagnosisevent.DefaultQuestionsAsked holds the default value on creation for the questions_asked field.
	diagnosisevent.DefaultQuestionsAsked = diagnosiseventDescQuestionsAsked.Default.(int)
	// diagnosiseventDescExamsPerformed is the schema descriptor for exams_performed field.
	diagnosiseventDescExamsPerformed := diagnosiseventFields[7].Descriptor()
	// diagnosisevent.DefaultExamsPerformed holds the default value on creation for the exams_performed field.
	diagnosisevent.DefaultExamsPerformed = diagnosiseventDescExamsPerformed.Default.(int)
	// diagnosiseventDescVitalsChecked is the schema descriptor for vitals_checked field.
	diagnosiseventDescVitalsChecked := diagnosiseventFields[8].Descriptor()
	// diagnosisevent.DefaultVitalsChecked holds the default value on creation for the vitals_checked field.
	diagnosisevent.DefaultVitalsChecked = diagnosiseventDescVitalsChecked.Default.(bool)
	// diagnosiseventDescDurationMins is the schema descriptor for duration_mins field.
	diagnosiseventDescDurationMins := diagnosiseventFields[9].Descriptor()
	// diagnosisevent.DefaultDurationMins holds the default value on creation for the duration_mins field.
	diagnosisevent.DefaultDurationMins = diagnosiseventDescDurationMins.Default.(float64)
	exameventMixin := schema.ExamEvent{}.Mixin()
	exameventMixinFields0 := exameventMixin[0].Fields()
	_ = exameventMixinFields0
	exameventFields := schema.ExamEvent{}.Fields()
	_ = exameventFields
	// exameventDescTimestamp is the schema descriptor for timestamp field.
	exameventDescTimestamp := exameventMixinFields0[1].Descriptor()
	// examevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	examevent.DefaultTimestamp = exameventDescTimestamp.Default.(func() time.Time)
	// exameventDescSessionID is the schema descriptor for session_id field.
	exameventDescSessionID := exameventFields[0].Descriptor()
	// examevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	examevent.SessionIDValidator = exameventDescSessionID.Validators[0].(func(string) error)
	// exameventDescArea is the schema descriptor for area field.
	exameventDescArea := exameventFields[1].Descriptor()
	// examevent.AreaValidator is a validator for the "area" field. It is called by the builders before save.
	examevent.AreaValidator = exameventDescArea.Validators[0].(func(string) error)
	// exameventDescFindings is the schema descriptor for findings field.
	exameventDescFindings := exameventFields[2].Descriptor()
	// examevent.FindingsValidator is a validator for the "findings" field. It is called by the builders before save.
	examevent.FindingsValidator = exameventDescFindings.Validators[0].(func(string) error)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescHintText is the schema descriptor for hint_text field.
	hinteventDescHintText := hinteventFields[1].Descriptor()
	// hintevent.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hintevent.HintTextValidator = hinteventDescHintText.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questioneventMixin := schema.QuestionEvent{}.Mixin()
	questioneventMixinFields0 := questioneventMixin[0].Fields()
	_ = questioneventMixinFields0
	questioneventFields := schema.QuestionEvent{}.Fields()
	_ = questioneventFields
	// questioneventDescTimestamp is the schema descriptor for timestamp field.
	questioneventDescTimestamp := questioneventMixinFields0[1].Descriptor()
	// questionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	questionevent.DefaultTimestamp = questioneventDescTimestamp.Default.(func() time.Time)
	// questioneventDescSessionID is the schema descriptor for session_id field.
	questioneventDescSessionID := questioneventFields[0].Descriptor()
	// questionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	questionevent.SessionIDValidator = questioneventDescSessionID.Validators[0].(func(string) error)
	// questioneventDescQuestion is the schema descriptor for question field.
	questioneventDescQuestion := questioneventFields[1].Descriptor()
	// questionevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	questionevent.QuestionValidator = questioneventDescQuestion.Validators[0].(func(string) error)
	// questioneventDescAnswer is the schema descriptor for answer field.
	questioneventDescAnswer := questioneventFields[2].Descriptor()
	// questionevent.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	questionevent.AnswerValidator = questioneventDescAnswer.Validators[0].(func(string) error)
	// questioneventDescTone is the schema descriptor for tone field.
	questioneventDescTone := questioneventFields[3].Descriptor()
	// questionevent.DefaultTone holds the default value on creation for the tone field.
	questionevent.DefaultTone = questioneventDescTone.Default.(string)
}
