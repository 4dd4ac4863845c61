// Code generated by ent, DO NOT EDIT.

package questionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/avyukth/medsim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldSessionID, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldQuestion, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldAnswer, v))
}

// Tone applies equality check predicate on the "tone" field. It's identical to ToneEQ.
func Tone(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldTone, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContainsFold(FieldQuestion, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContainsFold(FieldAnswer, v))
}

// ToneEQ applies the EQ predicate on the "tone" field.
func ToneEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldTone, v))
}

// ToneNEQ applies the NEQ predicate on the "tone" field.
func ToneNEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldTone, v))
}

// ToneIn applies the In predicate on the "tone" field.
func ToneIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldTone, vs...))
}

// ToneNotIn applies the NotIn predicate on the "tone" field.
func ToneNotIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldTone, vs...))
}

// ToneGT applies the GT predicate on the "tone" field.
func ToneGT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldTone, v))
}

// ToneGTE applies the GTE predicate on the "tone" field.
func ToneGTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldTone, v))
}

// ToneLT applies the LT predicate on the "tone" field.
func ToneLT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldTone, v))
}

// ToneLTE applies the LTE predicate on the "tone" field.
func ToneLTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldTone, v))
}

// ToneContains applies the Contains predicate on the "tone" field.
func ToneContains(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContains(FieldTone, v))
}

// ToneHasPrefix applies the HasPrefix predicate on the "tone" field.
func ToneHasPrefix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasPrefix(FieldTone, v))
}

// ToneHasSuffix applies the HasSuffix predicate on the "tone" field.
func ToneHasSuffix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasSuffix(FieldTone, v))
}

// ToneEqualFold applies the EqualFold predicate on the "tone" field.
func ToneEqualFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEqualFold(FieldTone, v))
}

// ToneContainsFold applies the ContainsFold predicate on the "tone" field.
func ToneContainsFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContainsFold(FieldTone, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionEvent) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionEvent) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionEvent) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.NotPredicates(p))
}
