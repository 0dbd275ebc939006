package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// StoredSection is the serialized form of a document section.
type StoredSection struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// StoredDocument is the serialized form of an ingested document. The
// server keeps its document library in memory and persists it through
// snapshots, so tutoring can resume after a restart without
// re-ingesting the source file.
type StoredDocument struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	SourceType string          `json:"source_type"`
	Sections   []StoredSection `json:"sections"`
	FullText   string          `json:"full_text"`
	FilePath   string          `json:"file_path,omitempty"`
	FileName   string          `json:"file_name,omitempty"`
	ChunkCount int             `json:"chunk_count"`
	CharCount  int             `json:"char_count"`
	IngestedAt time.Time       `json:"ingested_at"`
}

// SnapshotData captures the document library at a point in time.
type SnapshotData struct {
	Version   int                       `json:"version"`
	Documents map[string]StoredDocument `json:"documents"`
}

// Snapshot represents a point-in-time capture of the document library.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages document library snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event as returned by queries.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// TutoringEventData captures one turn of a tutoring session.
type TutoringEventData struct {
	SessionID    string
	DocumentID   string
	Action       string // start, message, section_complete, document_complete
	StateFrom    string
	StateTo      string
	SectionIndex int
}

// TutoringStats aggregates tutoring activity across all sessions.
type TutoringStats struct {
	Sessions          int
	Messages          int
	SectionsCompleted int
	DocumentsComplete int
}

// QuizEventData captures a single quiz answer.
type QuizEventData struct {
	SessionID     string
	DocumentID    string
	SectionIndex  int
	QuestionText  string
	CorrectLetter string
	UserAnswer    string
	Correct       bool
	Attempt       int
}

// QuizStats aggregates quiz answers across all sessions.
type QuizStats struct {
	Answers  int
	Correct  int
	Accuracy float64
}

// DocumentEventData captures a document entering or leaving the library.
type DocumentEventData struct {
	DocumentID   string
	Action       string // ingested or deleted
	Title        string
	SourceType   string
	SectionCount int
	ChunkCount   int
	CharCount    int
}

// DocumentEvent is a stored document event as returned by queries.
type DocumentEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	DocumentEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if it doesn't exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendTutoringEvent records one turn of a tutoring session.
	AppendTutoringEvent(ctx context.Context, data TutoringEventData) error

	// TutoringStats aggregates tutoring activity across all sessions.
	TutoringStats(ctx context.Context) (*TutoringStats, error)

	// AppendQuizEvent records a quiz answer.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// QuizStats aggregates quiz answers across all sessions.
	QuizStats(ctx context.Context) (*QuizStats, error)

	// AppendDocumentEvent records a document entering or leaving the library.
	AppendDocumentEvent(ctx context.Context, data DocumentEventData) error

	// QueryDocumentEvents returns document events, newest first.
	QueryDocumentEvents(ctx context.Context, opts QueryOpts) ([]DocumentEvent, error)
}
