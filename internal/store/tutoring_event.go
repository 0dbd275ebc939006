package store

import (
	"context"
	"fmt"

	"github.com/abhisek/docent/ent/tutoringevent"
)

// Tutoring event actions. A turn that advances past a section or
// finishes the document is still a message turn; the more specific
// action wins so progress can be counted from events alone.
const (
	TutoringActionStart            = "start"
	TutoringActionMessage          = "message"
	TutoringActionSectionComplete  = "section_complete"
	TutoringActionDocumentComplete = "document_complete"
)

func (r *eventRepo) AppendTutoringEvent(ctx context.Context, data TutoringEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TutoringEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetDocumentID(data.DocumentID).
		SetAction(data.Action).
		SetStateFrom(data.StateFrom).
		SetStateTo(data.StateTo).
		SetSectionIndex(data.SectionIndex).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save tutoring event: %w", err)
	}
	return nil
}

func (r *eventRepo) TutoringStats(ctx context.Context) (*TutoringStats, error) {
	sessions, err := r.client.TutoringEvent.Query().
		Where(tutoringevent.Action(TutoringActionStart)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	messages, err := r.client.TutoringEvent.Query().
		Where(tutoringevent.ActionNEQ(TutoringActionStart)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count messages: %w", err)
	}

	sections, err := r.client.TutoringEvent.Query().
		Where(tutoringevent.Action(TutoringActionSectionComplete)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count completed sections: %w", err)
	}

	docs, err := r.client.TutoringEvent.Query().
		Where(tutoringevent.Action(TutoringActionDocumentComplete)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count completed documents: %w", err)
	}

	return &TutoringStats{
		Sessions:          sessions,
		Messages:          messages,
		SectionsCompleted: sections,
		DocumentsComplete: docs,
	}, nil
}
