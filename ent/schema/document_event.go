package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocumentEvent records a document entering or leaving the library.
type DocumentEvent struct {
	ent.Schema
}

func (DocumentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DocumentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("document_id").
			NotEmpty().
			Comment("Stable document identifier"),
		field.String("action").
			NotEmpty().
			Comment("ingested or deleted"),
		field.String("title").
			Default("").
			Comment("Display title, usually the source filename"),
		field.String("source_type").
			Default("").
			Comment("File extension of the source: txt, md, pdf, docx"),
		field.Int("section_count").
			Default(0).
			Comment("Sections identified during processing"),
		field.Int("chunk_count").
			Default(0).
			Comment("Chunks indexed for retrieval"),
		field.Int("char_count").
			Default(0).
			Comment("Characters of extracted text"),
	}
}

func (DocumentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("action"),
	}
}
