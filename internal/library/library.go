// Package library keeps the processed documents available for tutoring.
// The working set lives in memory; every change is snapshotted so the
// library survives restarts without re-ingesting source files.
package library

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/abhisek/docent/internal/store"
	"github.com/abhisek/docent/internal/tutor"
)

const (
	snapshotVersion = 1
	keepSnapshots   = 5
)

// Document is one ingested document with its identified sections.
// FilePath and FileName point at the saved upload when the document
// arrived over HTTP; CLI-ingested documents carry the source path.
type Document struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	SourceType string          `json:"source_type"`
	Text       string          `json:"text"`
	Sections   []tutor.Section `json:"sections"`
	FilePath   string          `json:"file_path,omitempty"`
	FileName   string          `json:"file_name,omitempty"`
	ChunkCount int             `json:"chunk_count"`
	CharCount  int             `json:"char_count"`
	IngestedAt time.Time       `json:"ingested_at"`
}

// Library is the in-memory document collection with snapshot persistence.
type Library struct {
	mu        sync.RWMutex
	docs      map[string]Document
	snapshots store.SnapshotRepo
	events    store.EventRepo
}

// New creates an empty library. snapshots and events may be nil, in which
// case the library is memory-only.
func New(snapshots store.SnapshotRepo, events store.EventRepo) *Library {
	return &Library{
		docs:      make(map[string]Document),
		snapshots: snapshots,
		events:    events,
	}
}

// Load restores the library from the most recent snapshot.
func (l *Library) Load(ctx context.Context) error {
	if l.snapshots == nil {
		return nil
	}
	snap, err := l.snapshots.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load library snapshot: %w", err)
	}
	if snap == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.docs = make(map[string]Document, len(snap.Data.Documents))
	for id, sd := range snap.Data.Documents {
		l.docs[id] = fromStored(sd)
	}
	return nil
}

// Add puts a document into the library, snapshots, and records the
// ingestion event.
func (l *Library) Add(ctx context.Context, doc Document) error {
	if doc.ID == "" {
		return fmt.Errorf("document id is required")
	}
	if doc.IngestedAt.IsZero() {
		doc.IngestedAt = time.Now()
	}
	if doc.CharCount == 0 {
		doc.CharCount = len(doc.Text)
	}

	l.mu.Lock()
	l.docs[doc.ID] = doc
	l.mu.Unlock()

	if err := l.persist(ctx); err != nil {
		return err
	}

	if l.events != nil {
		_ = l.events.AppendDocumentEvent(ctx, store.DocumentEventData{
			DocumentID:   doc.ID,
			Action:       "ingested",
			Title:        doc.Title,
			SourceType:   doc.SourceType,
			SectionCount: len(doc.Sections),
			ChunkCount:   doc.ChunkCount,
			CharCount:    doc.CharCount,
		})
	}
	return nil
}

// Remove deletes a document. Reports whether it was present.
func (l *Library) Remove(ctx context.Context, id string) (Document, bool, error) {
	l.mu.Lock()
	doc, ok := l.docs[id]
	if ok {
		delete(l.docs, id)
	}
	l.mu.Unlock()

	if !ok {
		return Document{}, false, nil
	}

	if err := l.persist(ctx); err != nil {
		return doc, true, err
	}

	if l.events != nil {
		_ = l.events.AppendDocumentEvent(ctx, store.DocumentEventData{
			DocumentID:   doc.ID,
			Action:       "deleted",
			Title:        doc.Title,
			SourceType:   doc.SourceType,
			SectionCount: len(doc.Sections),
			ChunkCount:   doc.ChunkCount,
			CharCount:    doc.CharCount,
		})
	}
	return doc, true, nil
}

// Get returns the document with the given ID.
func (l *Library) Get(id string) (Document, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	doc, ok := l.docs[id]
	return doc, ok
}

// List returns all documents, newest first.
func (l *Library) List() []Document {
	l.mu.RLock()
	docs := make([]Document, 0, len(l.docs))
	for _, d := range l.docs {
		docs = append(docs, d)
	}
	l.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].IngestedAt.Equal(docs[j].IngestedAt) {
			return docs[i].IngestedAt.After(docs[j].IngestedAt)
		}
		return docs[i].ID < docs[j].ID
	})
	return docs
}

// Len returns the number of documents.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.docs)
}

func (l *Library) persist(ctx context.Context) error {
	if l.snapshots == nil {
		return nil
	}

	l.mu.RLock()
	data := store.SnapshotData{
		Version:   snapshotVersion,
		Documents: make(map[string]store.StoredDocument, len(l.docs)),
	}
	for id, doc := range l.docs {
		data.Documents[id] = toStored(doc)
	}
	l.mu.RUnlock()

	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data:      data,
	}
	if err := l.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("save library snapshot: %w", err)
	}
	_ = l.snapshots.Prune(ctx, keepSnapshots)
	return nil
}

func toStored(doc Document) store.StoredDocument {
	sections := make([]store.StoredSection, len(doc.Sections))
	for i, s := range doc.Sections {
		sections[i] = store.StoredSection{Title: s.Title, Text: s.Text}
	}
	return store.StoredDocument{
		ID:         doc.ID,
		Title:      doc.Title,
		SourceType: doc.SourceType,
		Sections:   sections,
		FullText:   doc.Text,
		FilePath:   doc.FilePath,
		FileName:   doc.FileName,
		ChunkCount: doc.ChunkCount,
		CharCount:  doc.CharCount,
		IngestedAt: doc.IngestedAt,
	}
}

func fromStored(sd store.StoredDocument) Document {
	sections := make([]tutor.Section, len(sd.Sections))
	for i, s := range sd.Sections {
		sections[i] = tutor.Section{Title: s.Title, Text: s.Text}
	}
	return Document{
		ID:         sd.ID,
		Title:      sd.Title,
		SourceType: sd.SourceType,
		Text:       sd.FullText,
		Sections:   sections,
		FilePath:   sd.FilePath,
		FileName:   sd.FileName,
		ChunkCount: sd.ChunkCount,
		CharCount:  sd.CharCount,
		IngestedAt: sd.IngestedAt,
	}
}
