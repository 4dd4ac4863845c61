// Code generated by ent, DO NOT EDIT.

package examevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/avyukth/medsim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldSessionID, v))
}

// Area applies equality check predicate on the "area" field. It's identical to AreaEQ.
func Area(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldArea, v))
}

// Findings applies equality check predicate on the "findings" field. It's identical to FindingsEQ.
func Findings(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldFindings, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// AreaEQ applies the EQ predicate on the "area" field.
func AreaEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldArea, v))
}

// AreaNEQ applies the NEQ predicate on the "area" field.
func AreaNEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldArea, v))
}

// AreaIn applies the In predicate on the "area" field.
func AreaIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldArea, vs...))
}

// AreaNotIn applies the NotIn predicate on the "area" field.
func AreaNotIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldArea, vs...))
}

// AreaGT applies the GT predicate on the "area" field.
func AreaGT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldArea, v))
}

// AreaGTE applies the GTE predicate on the "area" field.
func AreaGTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldArea, v))
}

// AreaLT applies the LT predicate on the "area" field.
func AreaLT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldArea, v))
}

// AreaLTE applies the LTE predicate on the "area" field.
func AreaLTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldArea, v))
}

// AreaContains applies the Contains predicate on the "area" field.
func AreaContains(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContains(FieldArea, v))
}

// AreaHasPrefix applies the HasPrefix predicate on the "area" field.
func AreaHasPrefix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasPrefix(FieldArea, v))
}

// AreaHasSuffix applies the HasSuffix predicate on the "area" field.
func AreaHasSuffix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasSuffix(FieldArea, v))
}

// AreaEqualFold applies the EqualFold predicate on the "area" field.
func AreaEqualFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEqualFold(FieldArea, v))
}

// AreaContainsFold applies the ContainsFold predicate on the "area" field.
func AreaContainsFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContainsFold(FieldArea, v))
}

// FindingsEQ applies the EQ predicate on the "findings" field.
func FindingsEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldFindings, v))
}

// FindingsNEQ applies the NEQ predicate on the "findings" field.
func FindingsNEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldFindings, v))
}

// FindingsIn applies the In predicate on the "findings" field.
func FindingsIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldFindings, vs...))
}

// FindingsNotIn applies the NotIn predicate on the "findings" field.
func FindingsNotIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldFindings, vs...))
}

// FindingsGT applies the GT predicate on the "findings" field.
func FindingsGT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldFindings, v))
}

// FindingsGTE applies the GTE predicate on the "findings" field.
func FindingsGTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldFindings, v))
}

// FindingsLT applies the LT predicate on the "findings" field.
func FindingsLT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldFindings, v))
}

// FindingsLTE applies the LTE predicate on the "findings" field.
func FindingsLTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldFindings, v))
}

// FindingsContains applies the Contains predicate on the "findings" field.
func FindingsContains(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContains(FieldFindings, v))
}

// FindingsHasPrefix applies the HasPrefix predicate on the "findings" field.
func FindingsHasPrefix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasPrefix(FieldFindings, v))
}

// FindingsHasSuffix applies the HasSuffix predicate on the "findings" field.
func FindingsHasSuffix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasSuffix(FieldFindings, v))
}

// FindingsEqualFold applies the EqualFold predicate on the "findings" field.
func FindingsEqualFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEqualFold(FieldFindings, v))
}

// FindingsContainsFold applies the ContainsFold predicate on the "findings" field.
func FindingsContainsFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContainsFold(FieldFindings, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExamEvent) predicate.ExamEvent {
	return predicate.ExamEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExamEvent) predicate.ExamEvent {
	return predicate.ExamEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExamEvent) predicate.ExamEvent {
	return predicate.ExamEvent(sql.NotPredicates(p))
}
