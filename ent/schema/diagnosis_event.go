package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagnosisEvent records a diagnosis submission and its evaluation.
// This is the terminal event of an encounter.
type DiagnosisEvent struct {
	ent.Schema
}

func (DiagnosisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DiagnosisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("submitted_diagnosis").NotEmpty(),
		field.String("actual_diagnosis").NotEmpty(),
		field.Bool("correct"),
		field.Int("score").
			Comment("0-100 evaluation score"),
		field.Text("feedback").
			Default(""),
		field.Int("questions_asked").
			Default(0),
		field.Int("exams_performed").
			Default(0),
		field.Bool("vitals_checked").
			Default(false),
		field.Float("duration_mins").
			Default(0).
			Comment("Encounter duration in fractional minutes"),
	}
}

func (DiagnosisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
	}
}
