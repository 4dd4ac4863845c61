package encounter

import (
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/avyukth/medsim/internal/evaluate"
	"github.com/avyukth/medsim/internal/interview"
	"github.com/avyukth/medsim/internal/llm"
	"github.com/avyukth/medsim/internal/patient"
	"github.com/avyukth/medsim/internal/router"
	"github.com/avyukth/medsim/internal/screens/summary"
	"github.com/avyukth/medsim/internal/session"
)

const caseJSON = `{
	"name": "Margaret Chen",
	"age": 62,
	"gender": "female",
	"chief_complaint": "It feels like an elephant is sitting on my chest",
	"history": "Crushing substernal chest pain for 2 hours.",
	"past_conditions": ["hypertension"],
	"medications": ["lisinopril 10mg daily"],
	"allergies": [],
	"family_history": [],
	"social_history": "Former smoker.",
	"vitals": {
		"temperature": "37.0 C",
		"heart_rate": "104 bpm",
		"blood_pressure": "152/94 mmHg",
		"respiratory_rate": "22/min",
		"oxygen_saturation": "94% on room air"
	},
	"exam_findings": "Diaphoretic. Tachycardic, S4 gallop.",
	"diagnosis": "Acute myocardial infarction",
	"differentials": ["unstable angina"],
	"recommended_tests": ["12-lead ECG"],
	"red_flags": ["diaphoresis"],
	"personality": "anxious"
}`

const evaluationJSON = `{
	"correct": true,
	"score": 82,
	"feedback": "Solid reasoning.",
	"strengths": ["focused questioning"],
	"improvements": [],
	"missed_findings": []
}`

// newActiveScreen returns a screen with the case already generated.
func newActiveScreen(t *testing.T, extra ...llm.MockResponse) (*EncounterScreen, *llm.MockProvider) {
	t.Helper()
	responses := append([]llm.MockResponse{
		{Content: json.RawMessage(caseJSON)},
	}, extra...)
	mock := llm.NewMockProvider(responses...)
	mgr := session.NewManager(session.Options{
		Provider:        mock,
		Rand:            rand.New(rand.NewPCG(1, 2)),
		PatientConfig:   patient.DefaultConfig(),
		InterviewConfig: interview.DefaultConfig(),
		EvaluateConfig:  evaluate.DefaultConfig(),
	})
	s := New(mgr, "chest pain")
	s.pending = true

	msg := s.startCase()()
	updated, _ := s.Update(msg)
	s = updated.(*EncounterScreen)
	if s.errMsg != "" {
		t.Fatalf("case generation failed: %s", s.errMsg)
	}
	return s, mock
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func TestCaseReady_ShowsChiefComplaint(t *testing.T) {
	s, _ := newActiveScreen(t)

	if s.pending {
		t.Error("expected pending cleared after case ready")
	}
	if s.PatientName() != "Margaret Chen" {
		t.Errorf("patient name = %q", s.PatientName())
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "elephant") {
		t.Error("view missing chief complaint")
	}
	if strings.Contains(view, "myocardial infarction") {
		t.Error("view must not reveal the diagnosis")
	}
}

func TestCaseReady_Failure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	mgr := session.NewManager(session.Options{
		Provider:        mock,
		PatientConfig:   patient.DefaultConfig(),
		InterviewConfig: interview.DefaultConfig(),
		EvaluateConfig:  evaluate.DefaultConfig(),
	})
	s := New(mgr, "chest pain")

	msg := s.startCase()()
	updated, _ := s.Update(msg)
	s = updated.(*EncounterScreen)

	if s.errMsg == "" {
		t.Fatal("expected error message")
	}
	// Any key leaves the broken screen.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestAskQuestion_GoesPending(t *testing.T) {
	s, _ := newActiveScreen(t)

	s.input.Model.SetValue("When did the pain start?")
	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*EncounterScreen)

	if !s.pending {
		t.Error("expected pending while waiting for the patient")
	}
	if cmd == nil {
		t.Error("expected an ask command")
	}
	last := s.log[len(s.log)-1]
	if last.kind != entryQuestion || last.text != "When did the pain start?" {
		t.Errorf("last entry = %+v", last)
	}
	if s.input.Value() != "" {
		t.Error("expected input cleared after asking")
	}
}

func TestAskQuestion_EmptyIgnored(t *testing.T) {
	s, _ := newActiveScreen(t)

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*EncounterScreen)
	if s.pending {
		t.Error("empty question should not go pending")
	}
}

func TestAnswerReady_AppendsToTranscript(t *testing.T) {
	s, _ := newActiveScreen(t)

	s.pending = true
	turn := &interview.Turn{Question: "q", Answer: "Two hours ago.", Tone: "anxious"}
	updated, _ := s.Update(answerReadyMsg{Turn: turn})
	s = updated.(*EncounterScreen)

	if s.pending {
		t.Error("expected pending cleared")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Two hours ago.") {
		t.Error("view missing patient answer")
	}
	if !strings.Contains(view, "anxious") {
		t.Error("view missing tone label")
	}
}

func TestVitals_Shortcut(t *testing.T) {
	s, _ := newActiveScreen(t)

	updated, _ := s.Update(ctrlKey('v'))
	s = updated.(*EncounterScreen)

	view := s.View(100, 30)
	if !strings.Contains(view, "104 bpm") {
		t.Error("view missing vitals")
	}
}

func TestExamPicker_Flow(t *testing.T) {
	s, _ := newActiveScreen(t)

	updated, _ := s.Update(ctrlKey('e'))
	s = updated.(*EncounterScreen)
	if s.mode != modeExamPicker {
		t.Fatal("expected exam picker mode")
	}

	// Move to the second area and examine it.
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s = updated.(*EncounterScreen)
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*EncounterScreen)

	if s.mode != modeInterview {
		t.Error("expected interview mode after exam")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "respiratory exam:") {
		t.Error("view missing exam findings")
	}
	if !strings.Contains(view, "S4 gallop") {
		t.Error("view missing findings text")
	}
}

func TestHint_Shortcut(t *testing.T) {
	s, _ := newActiveScreen(t)

	updated, _ := s.Update(ctrlKey('h'))
	s = updated.(*EncounterScreen)

	view := s.View(100, 30)
	if !strings.Contains(view, "Hint:") {
		t.Error("view missing hint")
	}
}

func TestDiagnosis_SubmitReplacesWithSummary(t *testing.T) {
	s, _ := newActiveScreen(t, llm.MockResponse{Content: json.RawMessage(evaluationJSON)})

	updated, _ := s.Update(ctrlKey('d'))
	s = updated.(*EncounterScreen)
	if s.mode != modeDiagnosis {
		t.Fatal("expected diagnosis mode")
	}

	msg := s.submitDiagnosis("heart attack", "classic presentation")()
	updated, cmd := s.Update(msg)
	s = updated.(*EncounterScreen)

	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	nav, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := nav.Screen.(*summary.SummaryScreen); !ok {
		t.Error("expected summary screen")
	}
}

func TestDiagnosis_FailureStaysInEncounter(t *testing.T) {
	s, _ := newActiveScreen(t, llm.MockResponse{Err: &llm.ErrRateLimit{}})

	updated, _ := s.Update(ctrlKey('d'))
	s = updated.(*EncounterScreen)

	msg := s.submitDiagnosis("heart attack", "")()
	updated, _ = s.Update(msg)
	s = updated.(*EncounterScreen)

	if s.mode != modeInterview {
		t.Error("expected interview mode after failed evaluation")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Evaluation failed") {
		t.Error("view missing failure notice")
	}
}

func TestQuitConfirm(t *testing.T) {
	s, _ := newActiveScreen(t)

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = updated.(*EncounterScreen)
	if !s.showingQuit {
		t.Fatal("expected quit confirmation")
	}

	// N stays.
	updated, _ = s.Update(tea.KeyPressMsg{Code: 'n'})
	s = updated.(*EncounterScreen)
	if s.showingQuit {
		t.Error("expected confirmation dismissed")
	}

	// Y leaves.
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = updated.(*EncounterScreen)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'y'})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestKeyHints_ByMode(t *testing.T) {
	s, _ := newActiveScreen(t)

	hints := s.KeyHints()
	if len(hints) == 0 {
		t.Fatal("expected interview key hints")
	}

	updated, _ := s.Update(ctrlKey('e'))
	s = updated.(*EncounterScreen)
	if len(s.KeyHints()) != 3 {
		t.Errorf("exam picker hints = %d, want 3", len(s.KeyHints()))
	}
}
