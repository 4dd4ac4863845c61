package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendDiagnosisEvent(ctx context.Context, data DiagnosisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DiagnosisEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSubmittedDiagnosis(data.SubmittedDiagnosis).
		SetActualDiagnosis(data.ActualDiagnosis).
		SetCorrect(data.Correct).
		SetScore(data.Score).
		SetFeedback(data.Feedback).
		SetQuestionsAsked(data.QuestionsAsked).
		SetExamsPerformed(data.ExamsPerformed).
		SetVitalsChecked(data.VitalsChecked).
		SetDurationMins(data.DurationMins).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save diagnosis event: %w", err)
	}
	return nil
}
