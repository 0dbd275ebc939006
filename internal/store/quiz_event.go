package store

import (
	"context"
	"fmt"

	"github.com/abhisek/docent/ent/quizevent"
)

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetDocumentID(data.DocumentID).
		SetSectionIndex(data.SectionIndex).
		SetQuestionText(data.QuestionText).
		SetCorrectLetter(data.CorrectLetter).
		SetUserAnswer(data.UserAnswer).
		SetCorrect(data.Correct).
		SetAttempt(data.Attempt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizStats(ctx context.Context) (*QuizStats, error) {
	answers, err := r.client.QuizEvent.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count quiz answers: %w", err)
	}

	correct, err := r.client.QuizEvent.Query().
		Where(quizevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count correct answers: %w", err)
	}

	stats := &QuizStats{Answers: answers, Correct: correct}
	if answers > 0 {
		stats.Accuracy = float64(correct) / float64(answers)
	}
	return stats, nil
}
