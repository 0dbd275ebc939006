// Code generated by ent, DO NOT EDIT.

package tutoringevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/docent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldSessionID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldDocumentID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldAction, v))
}

// StateFrom applies equality check predicate on the "state_from" field. It's identical to StateFromEQ.
func StateFrom(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldStateFrom, v))
}

// StateTo applies equality check predicate on the "state_to" field. It's identical to StateToEQ.
func StateTo(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldStateTo, v))
}

// SectionIndex applies equality check predicate on the "section_index" field. It's identical to SectionIndexEQ.
func SectionIndex(v int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldSectionIndex, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldContainsFold(FieldDocumentID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldContainsFold(FieldAction, v))
}

// StateFromEQ applies the EQ predicate on the "state_from" field.
func StateFromEQ(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldStateFrom, v))
}

// StateFromNEQ applies the NEQ predicate on the "state_from" field.
func StateFromNEQ(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNEQ(FieldStateFrom, v))
}

// StateFromIn applies the In predicate on the "state_from" field.
func StateFromIn(vs ...string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldIn(FieldStateFrom, vs...))
}

// StateFromNotIn applies the NotIn predicate on the "state_from" field.
func StateFromNotIn(vs ...string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNotIn(FieldStateFrom, vs...))
}

// StateFromGT applies the GT predicate on the "state_from" field.
func StateFromGT(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGT(FieldStateFrom, v))
}

// StateFromGTE applies the GTE predicate on the "state_from" field.
func StateFromGTE(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGTE(FieldStateFrom, v))
}

// StateFromLT applies the LT predicate on the "state_from" field.
func StateFromLT(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLT(FieldStateFrom, v))
}

// StateFromLTE applies the LTE predicate on the "state_from" field.
func StateFromLTE(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLTE(FieldStateFrom, v))
}

// StateFromContains applies the Contains predicate on the "state_from" field.
func StateFromContains(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldContains(FieldStateFrom, v))
}

// StateFromHasPrefix applies the HasPrefix predicate on the "state_from" field.
func StateFromHasPrefix(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldHasPrefix(FieldStateFrom, v))
}

// StateFromHasSuffix applies the HasSuffix predicate on the "state_from" field.
func StateFromHasSuffix(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldHasSuffix(FieldStateFrom, v))
}

// StateFromEqualFold applies the EqualFold predicate on the "state_from" field.
func StateFromEqualFold(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEqualFold(FieldStateFrom, v))
}

// StateFromContainsFold applies the ContainsFold predicate on the "state_from" field.
func StateFromContainsFold(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldContainsFold(FieldStateFrom, v))
}

// StateToEQ applies the EQ predicate on the "state_to" field.
func StateToEQ(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldStateTo, v))
}

// StateToNEQ applies the NEQ predicate on the "state_to" field.
func StateToNEQ(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNEQ(FieldStateTo, v))
}

// StateToIn applies the In predicate on the "state_to" field.
func StateToIn(vs ...string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldIn(FieldStateTo, vs...))
}

// StateToNotIn applies the NotIn predicate on the "state_to" field.
func StateToNotIn(vs ...string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNotIn(FieldStateTo, vs...))
}

// StateToGT applies the GT predicate on the "state_to" field.
func StateToGT(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGT(FieldStateTo, v))
}

// StateToGTE applies the GTE predicate on the "state_to" field.
func StateToGTE(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGTE(FieldStateTo, v))
}

// StateToLT applies the LT predicate on the "state_to" field.
func StateToLT(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLT(FieldStateTo, v))
}

// StateToLTE applies the LTE predicate on the "state_to" field.
func StateToLTE(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLTE(FieldStateTo, v))
}

// StateToContains applies the Contains predicate on the "state_to" field.
func StateToContains(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldContains(FieldStateTo, v))
}

// StateToHasPrefix applies the HasPrefix predicate on the "state_to" field.
func StateToHasPrefix(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldHasPrefix(FieldStateTo, v))
}

// StateToHasSuffix applies the HasSuffix predicate on the "state_to" field.
func StateToHasSuffix(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldHasSuffix(FieldStateTo, v))
}

// StateToEqualFold applies the EqualFold predicate on the "state_to" field.
func StateToEqualFold(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEqualFold(FieldStateTo, v))
}

// StateToContainsFold applies the ContainsFold predicate on the "state_to" field.
func StateToContainsFold(v string) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldContainsFold(FieldStateTo, v))
}

// SectionIndexEQ applies the EQ predicate on the "section_index" field.
func SectionIndexEQ(v int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldEQ(FieldSectionIndex, v))
}

// SectionIndexNEQ applies the NEQ predicate on the "section_index" field.
func SectionIndexNEQ(v int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNEQ(FieldSectionIndex, v))
}

// SectionIndexIn applies the In predicate on the "section_index" field.
func SectionIndexIn(vs ...int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldIn(FieldSectionIndex, vs...))
}

// SectionIndexNotIn applies the NotIn predicate on the "section_index" field.
func SectionIndexNotIn(vs ...int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldNotIn(FieldSectionIndex, vs...))
}

// SectionIndexGT applies the GT predicate on the "section_index" field.
func SectionIndexGT(v int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGT(FieldSectionIndex, v))
}

// SectionIndexGTE applies the GTE predicate on the "section_index" field.
func SectionIndexGTE(v int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldGTE(FieldSectionIndex, v))
}

// SectionIndexLT applies the LT predicate on the "section_index" field.
func SectionIndexLT(v int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLT(FieldSectionIndex, v))
}

// SectionIndexLTE applies the LTE predicate on the "section_index" field.
func SectionIndexLTE(v int) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.FieldLTE(FieldSectionIndex, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TutoringEvent) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TutoringEvent) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TutoringEvent) predicate.TutoringEvent {
	return predicate.TutoringEvent(sql.NotPredicates(p))
}
