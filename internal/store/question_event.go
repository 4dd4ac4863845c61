package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendQuestionEvent(ctx context.Context, data QuestionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuestionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestion(data.Question).
		SetAnswer(data.Answer).
		SetTone(data.Tone).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save question event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendExamEvent(ctx context.Context, data ExamEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ExamEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetArea(data.Area).
		SetFindings(data.Findings).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exam event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendHintEvent(ctx context.Context, data HintEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.HintEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetHintText(data.HintText).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}
