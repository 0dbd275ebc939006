package library

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/docent/internal/store"
	"github.com/abhisek/docent/internal/tutor"
)

// fakeSnapshotRepo implements store.SnapshotRepo for testing.
type fakeSnapshotRepo struct {
	snapshots []*store.Snapshot
	pruneKeep []int
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	f.snapshots = append(f.snapshots, snap)
	return nil
}

func (f *fakeSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(f.snapshots) == 0 {
		return nil, nil
	}
	return f.snapshots[len(f.snapshots)-1], nil
}

func (f *fakeSnapshotRepo) Prune(_ context.Context, keep int) error {
	f.pruneKeep = append(f.pruneKeep, keep)
	return nil
}

// fakeEventRepo implements store.EventRepo and records document events.
type fakeEventRepo struct {
	docEvents []store.DocumentEventData
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (f *fakeEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (f *fakeEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}
func (f *fakeEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}
func (f *fakeEventRepo) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}
func (f *fakeEventRepo) AppendTutoringEvent(_ context.Context, _ store.TutoringEventData) error {
	return nil
}
func (f *fakeEventRepo) TutoringStats(_ context.Context) (*store.TutoringStats, error) {
	return &store.TutoringStats{}, nil
}
func (f *fakeEventRepo) AppendQuizEvent(_ context.Context, _ store.QuizEventData) error {
	return nil
}
func (f *fakeEventRepo) QuizStats(_ context.Context) (*store.QuizStats, error) {
	return &store.QuizStats{}, nil
}
func (f *fakeEventRepo) AppendDocumentEvent(_ context.Context, data store.DocumentEventData) error {
	f.docEvents = append(f.docEvents, data)
	return nil
}
func (f *fakeEventRepo) QueryDocumentEvents(_ context.Context, _ store.QueryOpts) ([]store.DocumentEvent, error) {
	return nil, nil
}

func testDocument(id string) Document {
	return Document{
		ID:         id,
		Title:      "physics-notes.txt",
		SourceType: "txt",
		Text:       "Energy cannot be created or destroyed.",
		Sections: []tutor.Section{
			{Title: "Conservation", Text: "Energy cannot be created or destroyed."},
		},
		ChunkCount: 1,
	}
}

func TestAddAndGet(t *testing.T) {
	lib := New(nil, nil)
	if err := lib.Add(context.Background(), testDocument("doc-1")); err != nil {
		t.Fatalf("add: %v", err)
	}

	doc, ok := lib.Get("doc-1")
	if !ok {
		t.Fatal("document not found after add")
	}
	if doc.Title != "physics-notes.txt" {
		t.Errorf("title = %q, want physics-notes.txt", doc.Title)
	}
	if doc.CharCount != len(doc.Text) {
		t.Errorf("char count = %d, want %d", doc.CharCount, len(doc.Text))
	}
	if doc.IngestedAt.IsZero() {
		t.Error("ingested time was not set")
	}

	if _, ok := lib.Get("missing"); ok {
		t.Error("Get returned true for unknown document")
	}
}

func TestAddRequiresID(t *testing.T) {
	lib := New(nil, nil)
	doc := testDocument("doc-1")
	doc.ID = ""
	if err := lib.Add(context.Background(), doc); err == nil {
		t.Fatal("expected error for empty document id")
	}
}

func TestAddPersistsSnapshot(t *testing.T) {
	snaps := &fakeSnapshotRepo{}
	lib := New(snaps, nil)
	if err := lib.Add(context.Background(), testDocument("doc-1")); err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(snaps.snapshots) != 1 {
		t.Fatalf("saved %d snapshots, want 1", len(snaps.snapshots))
	}
	snap := snaps.snapshots[0]
	if snap.Data.Version != snapshotVersion {
		t.Errorf("snapshot version = %d, want %d", snap.Data.Version, snapshotVersion)
	}
	sd, ok := snap.Data.Documents["doc-1"]
	if !ok {
		t.Fatal("snapshot missing doc-1")
	}
	if sd.FullText != "Energy cannot be created or destroyed." {
		t.Errorf("stored text = %q", sd.FullText)
	}
	if len(sd.Sections) != 1 || sd.Sections[0].Title != "Conservation" {
		t.Errorf("stored sections = %+v", sd.Sections)
	}

	if len(snaps.pruneKeep) != 1 || snaps.pruneKeep[0] != keepSnapshots {
		t.Errorf("prune calls = %v, want one call keeping %d", snaps.pruneKeep, keepSnapshots)
	}
}

func TestLoadRestoresDocuments(t *testing.T) {
	ingested := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	snaps := &fakeSnapshotRepo{snapshots: []*store.Snapshot{{
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version: snapshotVersion,
			Documents: map[string]store.StoredDocument{
				"doc-9": {
					ID:         "doc-9",
					Title:      "biology.md",
					SourceType: "md",
					Sections:   []store.StoredSection{{Title: "Cells", Text: "All life is cellular."}},
					FullText:   "All life is cellular.",
					ChunkCount: 3,
					CharCount:  21,
					IngestedAt: ingested,
				},
			},
		},
	}}}

	lib := New(snaps, nil)
	if err := lib.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	doc, ok := lib.Get("doc-9")
	if !ok {
		t.Fatal("doc-9 not restored")
	}
	if doc.Title != "biology.md" || doc.ChunkCount != 3 {
		t.Errorf("restored doc = %+v", doc)
	}
	if len(doc.Sections) != 1 || doc.Sections[0].Title != "Cells" {
		t.Errorf("restored sections = %+v", doc.Sections)
	}
	if !doc.IngestedAt.Equal(ingested) {
		t.Errorf("ingested at = %v, want %v", doc.IngestedAt, ingested)
	}
}

func TestLoadWithoutSnapshot(t *testing.T) {
	lib := New(&fakeSnapshotRepo{}, nil)
	if err := lib.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if lib.Len() != 0 {
		t.Errorf("library has %d documents, want 0", lib.Len())
	}
}

func TestRemove(t *testing.T) {
	snaps := &fakeSnapshotRepo{}
	lib := New(snaps, nil)
	if err := lib.Add(context.Background(), testDocument("doc-1")); err != nil {
		t.Fatalf("add: %v", err)
	}

	doc, ok, err := lib.Remove(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !ok {
		t.Fatal("remove reported document missing")
	}
	if doc.ID != "doc-1" {
		t.Errorf("removed doc id = %q", doc.ID)
	}
	if _, ok := lib.Get("doc-1"); ok {
		t.Error("document still present after remove")
	}

	// Add then remove means two snapshots, the latest one empty.
	if len(snaps.snapshots) != 2 {
		t.Fatalf("saved %d snapshots, want 2", len(snaps.snapshots))
	}
	if n := len(snaps.snapshots[1].Data.Documents); n != 0 {
		t.Errorf("latest snapshot has %d documents, want 0", n)
	}

	_, ok, err = lib.Remove(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if ok {
		t.Error("second remove reported document present")
	}
}

func TestDocumentEvents(t *testing.T) {
	events := &fakeEventRepo{}
	lib := New(nil, events)
	ctx := context.Background()

	if err := lib.Add(ctx, testDocument("doc-1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, _, err := lib.Remove(ctx, "doc-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if len(events.docEvents) != 2 {
		t.Fatalf("recorded %d events, want 2", len(events.docEvents))
	}
	ingest := events.docEvents[0]
	if ingest.Action != "ingested" || ingest.DocumentID != "doc-1" {
		t.Errorf("first event = %+v", ingest)
	}
	if ingest.SectionCount != 1 || ingest.ChunkCount != 1 {
		t.Errorf("ingest counts = %+v", ingest)
	}
	if del := events.docEvents[1]; del.Action != "deleted" {
		t.Errorf("second event action = %q, want deleted", del.Action)
	}
}

func TestListNewestFirst(t *testing.T) {
	lib := New(nil, nil)
	ctx := context.Background()

	older := testDocument("doc-old")
	older.IngestedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := testDocument("doc-new")
	newer.IngestedAt = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	if err := lib.Add(ctx, older); err != nil {
		t.Fatalf("add older: %v", err)
	}
	if err := lib.Add(ctx, newer); err != nil {
		t.Fatalf("add newer: %v", err)
	}

	docs := lib.List()
	if len(docs) != 2 {
		t.Fatalf("list returned %d documents, want 2", len(docs))
	}
	if docs[0].ID != "doc-new" || docs[1].ID != "doc-old" {
		t.Errorf("list order = [%s, %s], want [doc-new, doc-old]", docs[0].ID, docs[1].ID)
	}
}

func TestUpdateReplacesDocument(t *testing.T) {
	snaps := &fakeSnapshotRepo{}
	lib := New(snaps, nil)
	ctx := context.Background()

	if err := lib.Add(ctx, testDocument("doc-1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	updated := testDocument("doc-1")
	updated.Title = "physics-notes-v2.txt"
	updated.ChunkCount = 7
	if err := lib.Add(ctx, updated); err != nil {
		t.Fatalf("re-add: %v", err)
	}

	if lib.Len() != 1 {
		t.Errorf("library has %d documents, want 1", lib.Len())
	}
	doc, _ := lib.Get("doc-1")
	if doc.Title != "physics-notes-v2.txt" || doc.ChunkCount != 7 {
		t.Errorf("updated doc = %+v", doc)
	}
}
