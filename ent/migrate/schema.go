// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentEventsColumns holds the columns for the "document_events" table.
	DocumentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "source_type", Type: field.TypeString, Default: ""},
		{Name: "section_count", Type: field.TypeInt, Default: 0},
		{Name: "chunk_count", Type: field.TypeInt, Default: 0},
		{Name: "char_count", Type: field.TypeInt, Default: 0},
	}
	// DocumentEventsTable holds the schema information for the "document_events" table.
	DocumentEventsTable = &schema.Table{
		Name:       "document_events",
		Columns:    DocumentEventsColumns,
		PrimaryKey: []*schema.Column{DocumentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "documentevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DocumentEventsColumns[1]},
			},
			{
				Name:    "documentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DocumentEventsColumns[2]},
			},
			{
				Name:    "documentevent_document_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentEventsColumns[3]},
			},
			{
				Name:    "documentevent_action",
				Unique:  false,
				Columns: []*schema.Column{DocumentEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuizEventsColumns holds the columns for the "quiz_events" table.
	QuizEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString, Default: ""},
		{Name: "section_index", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString},
		{Name: "correct_letter", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
	}
	// QuizEventsTable holds the schema information for the "quiz_events" table.
	QuizEventsTable = &schema.Table{
		Name:       "quiz_events",
		Columns:    QuizEventsColumns,
		PrimaryKey: []*schema.Column{QuizEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[1]},
			},
			{
				Name:    "quizevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[2]},
			},
			{
				Name:    "quizevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[3]},
			},
			{
				Name:    "quizevent_correct",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[9]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// TutoringEventsColumns holds the columns for the "tutoring_events" table.
	TutoringEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString, Default: ""},
		{Name: "action", Type: field.TypeString},
		{Name: "state_from", Type: field.TypeString, Default: ""},
		{Name: "state_to", Type: field.TypeString, Default: ""},
		{Name: "section_index", Type: field.TypeInt, Default: 0},
	}
	// TutoringEventsTable holds the schema information for the "tutoring_events" table.
	TutoringEventsTable = &schema.Table{
		Name:       "tutoring_events",
		Columns:    TutoringEventsColumns,
		PrimaryKey: []*schema.Column{TutoringEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutoringevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TutoringEventsColumns[1]},
			},
			{
				Name:    "tutoringevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TutoringEventsColumns[2]},
			},
			{
				Name:    "tutoringevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TutoringEventsColumns[3]},
			},
			{
				Name:    "tutoringevent_action",
				Unique:  false,
				Columns: []*schema.Column{TutoringEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentEventsTable,
		LlmRequestEventsTable,
		QuizEventsTable,
		SnapshotsTable,
		TutoringEventsTable,
	}
)

func init() {
}
