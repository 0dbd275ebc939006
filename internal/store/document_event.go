package store

import (
	"context"
	"fmt"

	"github.com/abhisek/docent/ent"
	"github.com/abhisek/docent/ent/documentevent"
)

// Document event actions.
const (
	DocumentActionIngested = "ingested"
	DocumentActionDeleted  = "deleted"
)

func (r *eventRepo) AppendDocumentEvent(ctx context.Context, data DocumentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DocumentEvent.Create().
		SetSequence(seqNum).
		SetDocumentID(data.DocumentID).
		SetAction(data.Action).
		SetTitle(data.Title).
		SetSourceType(data.SourceType).
		SetSectionCount(data.SectionCount).
		SetChunkCount(data.ChunkCount).
		SetCharCount(data.CharCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save document event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryDocumentEvents(ctx context.Context, opts QueryOpts) ([]DocumentEvent, error) {
	q := r.client.DocumentEvent.Query().
		Order(ent.Desc(documentevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(documentevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(documentevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(documentevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(documentevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query document events: %w", err)
	}

	events := make([]DocumentEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, DocumentEvent{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			DocumentEventData: DocumentEventData{
				DocumentID:   row.DocumentID,
				Action:       row.Action,
				Title:        row.Title,
				SourceType:   row.SourceType,
				SectionCount: row.SectionCount,
				ChunkCount:   row.ChunkCount,
				CharCount:    row.CharCount,
			},
		})
	}
	return events, nil
}
