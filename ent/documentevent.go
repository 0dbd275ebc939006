// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/docent/ent/documentevent"
)

// DocumentEvent is the model entity for the DocumentEvent schema.
type DocumentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Stable document identifier
	DocumentID string `json:"document_id,omitempty"`
	// ingested or deleted
	Action string `json:"action,omitempty"`
	// Display title, usually the source filename
	Title string `json:"title,omitempty"`
	// File extension of the source: txt, md, pdf, docx
	SourceType string `json:"source_type,omitempty"`
	// Sections identified during processing
	SectionCount int `json:"section_count,omitempty"`
	// Chunks indexed for retrieval
	ChunkCount int `json:"chunk_count,omitempty"`
	// Characters of extracted text
	CharCount    int `json:"char_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentevent.FieldID, documentevent.FieldSequence, documentevent.FieldSectionCount, documentevent.FieldChunkCount, documentevent.FieldCharCount:
			values[i] = new(sql.NullInt64)
		case documentevent.FieldDocumentID, documentevent.FieldAction, documentevent.FieldTitle, documentevent.FieldSourceType:
			values[i] = new(sql.NullString)
		case documentevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentEvent fields.
func (_m *DocumentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case documentevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case documentevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case documentevent.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case documentevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case documentevent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case documentevent.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = value.String
			}
		case documentevent.FieldSectionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field section_count", values[i])
			} else if value.Valid {
				_m.SectionCount = int(value.Int64)
			}
		case documentevent.FieldChunkCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_count", values[i])
			} else if value.Valid {
				_m.ChunkCount = int(value.Int64)
			}
		case documentevent.FieldCharCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field char_count", values[i])
			} else if value.Valid {
				_m.CharCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DocumentEvent.
// Note that you need to call DocumentEvent.Unwrap() before calling this method if this DocumentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentEvent) Update() *DocumentEventUpdateOne {
	return NewDocumentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentEvent) Unwrap() *DocumentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(_m.SourceType)
	builder.WriteString(", ")
	builder.WriteString("section_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SectionCount))
	builder.WriteString(", ")
	builder.WriteString("chunk_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkCount))
	builder.WriteString(", ")
	builder.WriteString("char_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CharCount))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentEvents is a parsable slice of DocumentEvent.
type DocumentEvents []*DocumentEvent
