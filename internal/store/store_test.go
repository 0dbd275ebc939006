package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot holding one document.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Documents: map[string]StoredDocument{
				"doc_1": {
					ID:    "doc_1",
					Title: "notes.md",
					Sections: []StoredSection{
						{Title: "Introduction", Text: "Some text."},
					},
					FullText:   "Some text.",
					ChunkCount: 3,
					CharCount:  10,
					IngestedAt: now,
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	doc, ok := snap.Data.Documents["doc_1"]
	if !ok {
		t.Fatal("expected document doc_1 in snapshot")
	}
	if doc.Title != "notes.md" {
		t.Errorf("title = %q, want 'notes.md'", doc.Title)
	}
	if len(doc.Sections) != 1 || doc.Sections[0].Title != "Introduction" {
		t.Errorf("sections round-trip broken: %+v", doc.Sections)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"tutor-quiz-gen", "tutor-qna", "tutor-qna"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-sonnet-4-20250514",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    800,
			Success:      true,
			RequestBody:  "prompt text",
			ResponseBody: "completion text",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d",
			events[0].Sequence, events[1].Sequence)
	}
	if events[0].ResponseBody != "completion text" {
		t.Errorf("response body = %q", events[0].ResponseBody)
	}

	// Fetch one by ID.
	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.ID != events[0].ID {
		t.Fatalf("get returned %+v", e)
	}

	// Missing ID returns nil without error.
	e, err = repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if e != nil {
		t.Errorf("expected nil for missing event, got %+v", e)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []struct {
		purpose string
		in, out int
	}{
		{"tutor-qna", 100, 40},
		{"tutor-qna", 200, 60},
		{"tutor-quiz-gen", 300, 80},
	}
	for _, a := range appends {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "openai",
			Model:        "gpt-4o",
			Purpose:      a.purpose,
			InputTokens:  a.in,
			OutputTokens: a.out,
			LatencyMs:    500,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}

	byPurpose := make(map[string]PurposeUsage)
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}
	qna := byPurpose["tutor-qna"]
	if qna.Calls != 2 {
		t.Errorf("tutor-qna calls = %d, want 2", qna.Calls)
	}
	if qna.InputTokens != 300 {
		t.Errorf("tutor-qna input tokens = %d, want 300", qna.InputTokens)
	}
	if qna.OutputTokens != 100 {
		t.Errorf("tutor-qna output tokens = %d, want 100", qna.OutputTokens)
	}

	models, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(models) != 1 || models[0].Model != "gpt-4o" || models[0].Calls != 3 {
		t.Errorf("model usage = %+v", models)
	}
}

func TestTutoringEventsAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	turns := []TutoringEventData{
		{SessionID: "tutoring_ab12cd34", DocumentID: "doc_1", Action: TutoringActionStart, StateTo: "introduction"},
		{SessionID: "tutoring_ab12cd34", DocumentID: "doc_1", Action: TutoringActionMessage, StateFrom: "introduction", StateTo: "section_qna"},
		{SessionID: "tutoring_ab12cd34", DocumentID: "doc_1", Action: TutoringActionSectionComplete, StateFrom: "quiz_complete", StateTo: "section_qna", SectionIndex: 1},
		{SessionID: "tutoring_ab12cd34", DocumentID: "doc_1", Action: TutoringActionDocumentComplete, StateFrom: "quiz_complete", StateTo: "complete", SectionIndex: 1},
	}
	for i, turn := range turns {
		if err := repo.AppendTutoringEvent(ctx, turn); err != nil {
			t.Fatalf("append turn %d: %v", i, err)
		}
	}

	stats, err := repo.TutoringStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Sessions != 1 {
		t.Errorf("sessions = %d, want 1", stats.Sessions)
	}
	if stats.Messages != 3 {
		t.Errorf("messages = %d, want 3", stats.Messages)
	}
	if stats.SectionsCompleted != 1 {
		t.Errorf("sections completed = %d, want 1", stats.SectionsCompleted)
	}
	if stats.DocumentsComplete != 1 {
		t.Errorf("documents complete = %d, want 1", stats.DocumentsComplete)
	}
}

func TestQuizEventsAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []QuizEventData{
		{SessionID: "tutoring_ab12cd34", SectionIndex: 0, QuestionText: "Q1", CorrectLetter: "B", UserAnswer: "B", Correct: true, Attempt: 1},
		{SessionID: "tutoring_ab12cd34", SectionIndex: 0, QuestionText: "Q2", CorrectLetter: "A", UserAnswer: "C", Correct: false, Attempt: 1},
		{SessionID: "tutoring_ab12cd34", SectionIndex: 0, QuestionText: "Q2", CorrectLetter: "A", UserAnswer: "A", Correct: true, Attempt: 2},
		{SessionID: "tutoring_ab12cd34", SectionIndex: 1, QuestionText: "Q3", CorrectLetter: "D", UserAnswer: "D", Correct: true, Attempt: 1},
	}
	for i, a := range answers {
		if err := repo.AppendQuizEvent(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	stats, err := repo.QuizStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Answers != 4 {
		t.Errorf("answers = %d, want 4", stats.Answers)
	}
	if stats.Correct != 3 {
		t.Errorf("correct = %d, want 3", stats.Correct)
	}
	if stats.Accuracy != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", stats.Accuracy)
	}
}

func TestDocumentEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendDocumentEvent(ctx, DocumentEventData{
		DocumentID:   "doc_1",
		Action:       DocumentActionIngested,
		Title:        "photosynthesis.md",
		SourceType:   "md",
		SectionCount: 4,
		ChunkCount:   12,
		CharCount:    5800,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendDocumentEvent(ctx, DocumentEventData{
		DocumentID: "doc_1",
		Action:     DocumentActionDeleted,
	})
	if err != nil {
		t.Fatalf("append delete: %v", err)
	}

	events, err := repo.QueryDocumentEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first: the delete.
	if events[0].Action != DocumentActionDeleted {
		t.Errorf("first action = %q, want deleted", events[0].Action)
	}
	if events[1].SectionCount != 4 || events[1].ChunkCount != 12 {
		t.Errorf("ingest counts = %d/%d, want 4/12", events[1].SectionCount, events[1].ChunkCount)
	}
}

func TestGlobalSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendTutoringEvent(ctx, TutoringEventData{
		SessionID: "tutoring_ab12cd34", Action: TutoringActionStart,
	}); err != nil {
		t.Fatalf("append tutoring: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-sonnet-4-20250514",
		Purpose: "tutor-intro", Success: true,
	}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendQuizEvent(ctx, QuizEventData{
		SessionID: "tutoring_ab12cd34", QuestionText: "Q", CorrectLetter: "A",
		UserAnswer: "A", Correct: true, Attempt: 1,
	}); err != nil {
		t.Fatalf("append quiz: %v", err)
	}

	// Each append consumed one global sequence number.
	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}
	if len(llmEvents) != 1 {
		t.Fatalf("got %d llm events, want 1", len(llmEvents))
	}
	if llmEvents[0].Sequence != 2 {
		t.Errorf("llm event sequence = %d, want 2", llmEvents[0].Sequence)
	}
}
