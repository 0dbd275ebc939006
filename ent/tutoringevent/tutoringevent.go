// Code generated by ent, DO NOT EDIT.

package tutoringevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tutoringevent type in the database.
	Label = "tutoring_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldStateFrom holds the string denoting the state_from field in the database.
	FieldStateFrom = "state_from"
	// FieldStateTo holds the string denoting the state_to field in the database.
	FieldStateTo = "state_to"
	// FieldSectionIndex holds the string denoting the section_index field in the database.
	FieldSectionIndex = "section_index"
	// Table holds the table name of the tutoringevent in the database.
	Table = "tutoring_events"
)

// Columns holds all SQL columns for tutoringevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldDocumentID,
	FieldAction,
	FieldStateFrom,
	FieldStateTo,
	FieldSectionIndex,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultDocumentID holds the default value on creation for the "document_id" field.
	DefaultDocumentID string
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultStateFrom holds the default value on creation for the "state_from" field.
	DefaultStateFrom string
	// DefaultStateTo holds the default value on creation for the "state_to" field.
	DefaultStateTo string
	// DefaultSectionIndex holds the default value on creation for the "section_index" field.
	DefaultSectionIndex int
)

// OrderOption defines the ordering options for the TutoringEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByStateFrom orders the results by the state_from field.
func ByStateFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateFrom, opts...).ToFunc()
}

// ByStateTo orders the results by the state_to field.
func ByStateTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateTo, opts...).ToFunc()
}

// BySectionIndex orders the results by the section_index field.
func BySectionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionIndex, opts...).ToFunc()
}
