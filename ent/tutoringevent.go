// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/docent/ent/tutoringevent"
)

// TutoringEvent is the model entity for the TutoringEvent schema.
type TutoringEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Tutoring session the turn belongs to
	SessionID string `json:"session_id,omitempty"`
	// Document being tutored
	DocumentID string `json:"document_id,omitempty"`
	// start, message, section_complete, or document_complete
	Action string `json:"action,omitempty"`
	// Conversation state before the turn
	StateFrom string `json:"state_from,omitempty"`
	// Conversation state after the turn
	StateTo string `json:"state_to,omitempty"`
	// Section the student was on after the turn
	SectionIndex int `json:"section_index,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TutoringEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tutoringevent.FieldID, tutoringevent.FieldSequence, tutoringevent.FieldSectionIndex:
			values[i] = new(sql.NullInt64)
		case tutoringevent.FieldSessionID, tutoringevent.FieldDocumentID, tutoringevent.FieldAction, tutoringevent.FieldStateFrom, tutoringevent.FieldStateTo:
			values[i] = new(sql.NullString)
		case tutoringevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TutoringEvent fields.
func (_m *TutoringEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tutoringevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case tutoringevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case tutoringevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case tutoringevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case tutoringevent.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case tutoringevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case tutoringevent.FieldStateFrom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_from", values[i])
			} else if value.Valid {
				_m.StateFrom = value.String
			}
		case tutoringevent.FieldStateTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_to", values[i])
			} else if value.Valid {
				_m.StateTo = value.String
			}
		case tutoringevent.FieldSectionIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field section_index", values[i])
			} else if value.Valid {
				_m.SectionIndex = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TutoringEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TutoringEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TutoringEvent.
// Note that you need to call TutoringEvent.Unwrap() before calling this method if this TutoringEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TutoringEvent) Update() *TutoringEventUpdateOne {
	return NewTutoringEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TutoringEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TutoringEvent) Unwrap() *TutoringEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TutoringEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TutoringEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TutoringEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("state_from=")
	builder.WriteString(_m.StateFrom)
	builder.WriteString(", ")
	builder.WriteString("state_to=")
	builder.WriteString(_m.StateTo)
	builder.WriteString(", ")
	builder.WriteString("section_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.SectionIndex))
	builder.WriteByte(')')
	return builder.String()
}

// TutoringEvents is a parsable slice of TutoringEvent.
type TutoringEvents []*TutoringEvent
