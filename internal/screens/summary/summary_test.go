package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/avyukth/medsim/internal/evaluate"
	"github.com/avyukth/medsim/internal/session"
)

func testReport() *session.Report {
	return &session.Report{
		CorrectDiagnosis:   "Acute myocardial infarction",
		Differentials:      []string{"unstable angina", "aortic dissection"},
		SubmittedDiagnosis: "heart attack",
		Reasoning:          "classic presentation",
		Evaluation: &evaluate.Evaluation{
			Correct:        true,
			Score:          82,
			Feedback:       "You reached the right diagnosis efficiently.",
			Strengths:      []string{"focused cardiac questioning"},
			Improvements:   []string{"ask about medications"},
			MissedFindings: []string{"family history of early cardiac death"},
		},
		Stats: session.Stats{
			QuestionsAsked:  5,
			VitalsChecked:   true,
			ExamsPerformed:  []string{"cardiovascular"},
			DurationMinutes: 12.5,
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testReport())
	if s.Title() != "Encounter Report" {
		t.Errorf("Title = %q, want %q", s.Title(), "Encounter Report")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testReport())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty report view")
	}
	for _, want := range []string{
		"Acute myocardial infarction",
		"heart attack",
		"82/100",
		"focused cardiac questioning",
		"family history of early cardiac death",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testReport())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testReport())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testReport())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
