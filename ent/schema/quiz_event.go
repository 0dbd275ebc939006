package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records a single quiz answer within a tutoring session.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to TutoringEvent"),
		field.String("document_id").
			Default("").
			Comment("Document being tutored"),
		field.Int("section_index").
			Comment("Section the quiz covered"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("correct_letter").
			NotEmpty().
			Comment("Letter of the correct option: A, B, C, or D"),
		field.String("user_answer").
			NotEmpty().
			Comment("Letter the student selected"),
		field.Bool("correct").
			Comment("Whether the selection was correct"),
		field.Int("attempt").
			Default(1).
			Comment("1 for the first try at this question, then counting up"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
	}
}
