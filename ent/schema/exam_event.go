package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamEvent records a physical exam request and the findings returned.
type ExamEvent struct {
	ent.Schema
}

func (ExamEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("area").
			NotEmpty().
			Comment("Requested exam area, e.g. cardiovascular, respiratory"),
		field.Text("findings").NotEmpty(),
	}
}

func (ExamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("area"),
	}
}
