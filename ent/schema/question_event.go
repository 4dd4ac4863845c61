package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionEvent records one interview exchange with the patient.
type QuestionEvent struct {
	ent.Schema
}

func (QuestionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuestionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.Text("question").NotEmpty(),
		field.Text("answer").NotEmpty(),
		field.String("tone").
			Default("").
			Comment("Patient tone: calm, anxious, irritable, confused, in-pain"),
	}
}

func (QuestionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
