package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TutoringEvent records one turn of a tutoring session: the session
// starting, or a student message and the state transition it caused.
type TutoringEvent struct {
	ent.Schema
}

func (TutoringEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TutoringEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Tutoring session the turn belongs to"),
		field.String("document_id").
			Default("").
			Comment("Document being tutored"),
		field.String("action").
			NotEmpty().
			Comment("start, message, section_complete, or document_complete"),
		field.String("state_from").
			Default("").
			Comment("Conversation state before the turn"),
		field.String("state_to").
			Default("").
			Comment("Conversation state after the turn"),
		field.Int("section_index").
			Default(0).
			Comment("Section the student was on after the turn"),
	}
}

func (TutoringEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
