// Code generated by ent, DO NOT EDIT.

package documentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/docent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldDocumentID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldAction, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldTitle, v))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSourceType, v))
}

// SectionCount applies equality check predicate on the "section_count" field. It's identical to SectionCountEQ.
func SectionCount(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSectionCount, v))
}

// ChunkCount applies equality check predicate on the "chunk_count" field. It's identical to ChunkCountEQ.
func ChunkCount(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldChunkCount, v))
}

// CharCount applies equality check predicate on the "char_count" field. It's identical to CharCountEQ.
func CharCount(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldCharCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContainsFold(FieldDocumentID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContainsFold(FieldAction, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContainsFold(FieldTitle, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContainsFold(FieldSourceType, v))
}

// SectionCountEQ applies the EQ predicate on the "section_count" field.
func SectionCountEQ(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSectionCount, v))
}

// SectionCountNEQ applies the NEQ predicate on the "section_count" field.
func SectionCountNEQ(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldSectionCount, v))
}

// SectionCountIn applies the In predicate on the "section_count" field.
func SectionCountIn(vs ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldSectionCount, vs...))
}

// SectionCountNotIn applies the NotIn predicate on the "section_count" field.
func SectionCountNotIn(vs ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldSectionCount, vs...))
}

// SectionCountGT applies the GT predicate on the "section_count" field.
func SectionCountGT(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldSectionCount, v))
}

// SectionCountGTE applies the GTE predicate on the "section_count" field.
func SectionCountGTE(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldSectionCount, v))
}

// SectionCountLT applies the LT predicate on the "section_count" field.
func SectionCountLT(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldSectionCount, v))
}

// SectionCountLTE applies the LTE predicate on the "section_count" field.
func SectionCountLTE(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldSectionCount, v))
}

// ChunkCountEQ applies the EQ predicate on the "chunk_count" field.
func ChunkCountEQ(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldChunkCount, v))
}

// ChunkCountNEQ applies the NEQ predicate on the "chunk_count" field.
func ChunkCountNEQ(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldChunkCount, v))
}

// ChunkCountIn applies the In predicate on the "chunk_count" field.
func ChunkCountIn(vs ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldChunkCount, vs...))
}

// ChunkCountNotIn applies the NotIn predicate on the "chunk_count" field.
func ChunkCountNotIn(vs ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldChunkCount, vs...))
}

// ChunkCountGT applies the GT predicate on the "chunk_count" field.
func ChunkCountGT(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldChunkCount, v))
}

// ChunkCountGTE applies the GTE predicate on the "chunk_count" field.
func ChunkCountGTE(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldChunkCount, v))
}

// ChunkCountLT applies the LT predicate on the "chunk_count" field.
func ChunkCountLT(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldChunkCount, v))
}

// ChunkCountLTE applies the LTE predicate on the "chunk_count" field.
func ChunkCountLTE(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldChunkCount, v))
}

// CharCountEQ applies the EQ predicate on the "char_count" field.
func CharCountEQ(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldCharCount, v))
}

// CharCountNEQ applies the NEQ predicate on the "char_count" field.
func CharCountNEQ(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldCharCount, v))
}

// CharCountIn applies the In predicate on the "char_count" field.
func CharCountIn(vs ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldCharCount, vs...))
}

// CharCountNotIn applies the NotIn predicate on the "char_count" field.
func CharCountNotIn(vs ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldCharCount, vs...))
}

// CharCountGT applies the GT predicate on the "char_count" field.
func CharCountGT(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldCharCount, v))
}

// CharCountGTE applies the GTE predicate on the "char_count" field.
func CharCountGTE(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldCharCount, v))
}

// CharCountLT applies the LT predicate on the "char_count" field.
func CharCountLT(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldCharCount, v))
}

// CharCountLTE applies the LTE predicate on the "char_count" field.
func CharCountLTE(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldCharCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentEvent) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentEvent) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentEvent) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.NotPredicates(p))
}
