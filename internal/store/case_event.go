package store

import (
	"context"
	"fmt"

	"github.com/avyukth/medsim/ent"
	"github.com/avyukth/medsim/ent/caseevent"
	"github.com/avyukth/medsim/ent/diagnosisevent"
)

func (r *eventRepo) AppendCaseEvent(ctx context.Context, data CaseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CaseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetPatientName(data.PatientName).
		SetPatientAge(data.PatientAge).
		SetPatientGender(data.PatientGender).
		SetChiefComplaint(data.ChiefComplaint).
		SetDiagnosis(data.Diagnosis).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save case event: %w", err)
	}
	return nil
}

func (r *eventRepo) EncounterSummaries(ctx context.Context, limit int) ([]EncounterSummary, error) {
	q := r.client.CaseEvent.Query().
		Order(ent.Desc(caseevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	cases, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query case events: %w", err)
	}

	out := make([]EncounterSummary, 0, len(cases))
	for _, c := range cases {
		summary := EncounterSummary{
			SessionID:      c.SessionID,
			StartedAt:      c.Timestamp,
			Topic:          c.Topic,
			PatientName:    c.PatientName,
			PatientAge:     c.PatientAge,
			ChiefComplaint: c.ChiefComplaint,
			Diagnosis:      c.Diagnosis,
		}

		d, err := r.client.DiagnosisEvent.Query().
			Where(diagnosisevent.SessionID(c.SessionID)).
			Order(ent.Desc(diagnosisevent.FieldSequence)).
			First(ctx)
		if err != nil {
			if !ent.IsNotFound(err) {
				return nil, fmt.Errorf("query diagnosis for session %s: %w", c.SessionID, err)
			}
		} else {
			summary.Completed = true
			summary.SubmittedDiagnosis = d.SubmittedDiagnosis
			summary.Correct = d.Correct
			summary.Score = d.Score
			summary.QuestionsAsked = d.QuestionsAsked
			summary.ExamsPerformed = d.ExamsPerformed
			summary.DurationMins = d.DurationMins
		}

		out = append(out, summary)
	}
	return out, nil
}
