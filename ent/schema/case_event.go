package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CaseEvent records the start of a patient encounter. The hidden diagnosis
// is stored so past encounters can be reviewed after the fact.
type CaseEvent struct {
	ent.Schema
}

func (CaseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CaseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("topic").
			Default("").
			Comment("Requested topic, empty when randomly drawn"),
		field.String("patient_name").NotEmpty(),
		field.Int("patient_age"),
		field.String("patient_gender").NotEmpty(),
		field.String("chief_complaint").NotEmpty(),
		field.String("diagnosis").
			NotEmpty().
			Comment("The hidden diagnosis for this case"),
	}
}

func (CaseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
