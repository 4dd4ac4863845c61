package encounter

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/avyukth/medsim/internal/router"
	"github.com/avyukth/medsim/internal/screen"
	"github.com/avyukth/medsim/internal/screens/summary"
	"github.com/avyukth/medsim/internal/session"
	"github.com/avyukth/medsim/internal/ui/components"
	"github.com/avyukth/medsim/internal/ui/layout"
)

// examAreas are the physical exam regions the student can request.
var examAreas = [8]string{
	"cardiovascular",
	"respiratory",
	"abdominal",
	"neurological",
	"musculoskeletal",
	"HEENT",
	"skin",
	"general",
}

// mode selects which input surface is active.
type mode int

const (
	modeInterview mode = iota
	modeExamPicker
	modeDiagnosis
)

// entryKind tags a transcript line for rendering.
type entryKind int

const (
	entryQuestion entryKind = iota
	entryAnswer
	entryVitals
	entryExam
	entryHint
	entryNotice
)

type entry struct {
	kind entryKind
	text string
	tone string
}

// EncounterScreen drives one patient encounter: interview, vitals, exams,
// hints, and the final diagnosis form.
type EncounterScreen struct {
	mgr   *session.Manager
	topic string

	mode         mode
	input        components.TextInput
	examSelected int
	dxInput      components.TextInput
	reasonInput  components.TextInput
	dxFocus      int // 0 diagnosis, 1 reasoning

	log          []entry
	pending      bool
	pendingLabel string
	spinnerFrame int
	showingQuit  bool
	errMsg       string
}

var _ screen.Screen = (*EncounterScreen)(nil)
var _ screen.KeyHintProvider = (*EncounterScreen)(nil)
var _ screen.PatientProvider = (*EncounterScreen)(nil)

// New creates an encounter screen. An empty topic asks for a random case.
func New(mgr *session.Manager, topic string) *EncounterScreen {
	return &EncounterScreen{
		mgr:         mgr,
		topic:       topic,
		input:       components.NewTextInput("Ask the patient...", 200),
		dxInput:     components.NewTextInput("Your diagnosis...", 120),
		reasonInput: components.NewTextInput("Your reasoning (optional)...", 300),
	}
}

func (s *EncounterScreen) Init() tea.Cmd {
	s.pending = true
	s.pendingLabel = "Preparing your patient..."
	return tea.Batch(s.startCase(), spinnerTick(), s.input.Init())
}

func (s *EncounterScreen) Title() string {
	return "Encounter"
}

// PatientName feeds the header once a case is active.
func (s *EncounterScreen) PatientName() string {
	c := s.mgr.Case()
	if c == nil {
		return ""
	}
	return c.Name
}

func (s *EncounterScreen) KeyHints() []layout.KeyHint {
	if s.showingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave patient"},
			{Key: "N", Description: "Stay"},
		}
	}
	switch s.mode {
	case modeExamPicker:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Area"},
			{Key: "Enter", Description: "Examine"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeDiagnosis:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ask"},
			{Key: "Ctrl+V", Description: "Vitals"},
			{Key: "Ctrl+E", Description: "Exam"},
			{Key: "Ctrl+H", Description: "Hint"},
			{Key: "Ctrl+D", Description: "Diagnose"},
			{Key: "Esc", Description: "Leave"},
		}
	}
}

func (s *EncounterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case caseReadyMsg:
		return s.handleCaseReady(msg)

	case answerReadyMsg:
		return s.handleAnswerReady(msg)

	case reportReadyMsg:
		return s.handleReportReady(msg)

	case spinnerTickMsg:
		if !s.pending {
			return s, nil
		}
		s.spinnerFrame++
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.pending && s.mode == modeInterview {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *EncounterScreen) handleCaseReady(msg caseReadyMsg) (screen.Screen, tea.Cmd) {
	s.pending = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	c := msg.Case
	s.log = append(s.log, entry{
		kind: entryNotice,
		text: "Patient presents: \"" + c.ChiefComplaint + "\"",
	})
	return s, nil
}

func (s *EncounterScreen) handleAnswerReady(msg answerReadyMsg) (screen.Screen, tea.Cmd) {
	s.pending = false
	if msg.Err != nil {
		s.log = append(s.log, entry{kind: entryNotice, text: "The patient didn't respond: " + msg.Err.Error()})
		return s, nil
	}
	s.log = append(s.log, entry{kind: entryAnswer, text: msg.Turn.Answer, tone: msg.Turn.Tone})
	return s, nil
}

func (s *EncounterScreen) handleReportReady(msg reportReadyMsg) (screen.Screen, tea.Cmd) {
	s.pending = false
	if msg.Err != nil {
		s.mode = modeInterview
		s.log = append(s.log, entry{kind: entryNotice, text: "Evaluation failed: " + msg.Err.Error()})
		return s, nil
	}
	report := msg.Report
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(report)}
	}
}

func (s *EncounterScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Fatal error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuit {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuit = false
		}
		return s, nil
	}

	if s.pending {
		return s, nil
	}

	switch s.mode {
	case modeExamPicker:
		return s.handleExamKey(key)
	case modeDiagnosis:
		return s.handleDiagnosisKey(msg, key)
	}

	switch key {
	case "esc":
		s.showingQuit = true
		return s, nil
	case "enter":
		return s.askQuestion()
	case "ctrl+v":
		return s.checkVitals()
	case "ctrl+e":
		s.mode = modeExamPicker
		s.examSelected = 0
		return s, nil
	case "ctrl+h":
		return s.takeHint()
	case "ctrl+d":
		s.mode = modeDiagnosis
		s.dxFocus = 0
		s.reasonInput.Blur()
		return s, s.dxInput.Focus()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *EncounterScreen) handleExamKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		s.mode = modeInterview
	case "up", "k":
		if s.examSelected > 0 {
			s.examSelected--
		}
	case "down", "j":
		if s.examSelected < len(examAreas)-1 {
			s.examSelected++
		}
	case "enter":
		area := examAreas[s.examSelected]
		s.mode = modeInterview
		findings, err := s.mgr.PerformExam(context.Background(), area)
		if err != nil {
			s.log = append(s.log, entry{kind: entryNotice, text: err.Error()})
			return s, nil
		}
		s.log = append(s.log, entry{kind: entryExam, text: area + " exam: " + findings})
	}
	return s, nil
}

func (s *EncounterScreen) handleDiagnosisKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		s.mode = modeInterview
		return s, nil
	case "tab", "shift+tab", "up", "down":
		if s.dxFocus == 0 {
			s.dxFocus = 1
			s.dxInput.Blur()
			return s, s.reasonInput.Focus()
		}
		s.dxFocus = 0
		s.reasonInput.Blur()
		return s, s.dxInput.Focus()
	case "enter":
		diagnosis := strings.TrimSpace(s.dxInput.Value())
		if diagnosis == "" {
			return s, nil
		}
		reasoning := strings.TrimSpace(s.reasonInput.Value())
		s.pending = true
		s.pendingLabel = "The attending is reviewing your workup..."
		return s, tea.Batch(s.submitDiagnosis(diagnosis, reasoning), spinnerTick())
	}

	var cmd tea.Cmd
	if s.dxFocus == 0 {
		s.dxInput, cmd = s.dxInput.Update(msg)
	} else {
		s.reasonInput, cmd = s.reasonInput.Update(msg)
	}
	return s, cmd
}

func (s *EncounterScreen) askQuestion() (screen.Screen, tea.Cmd) {
	question := strings.TrimSpace(s.input.Value())
	if question == "" {
		return s, nil
	}
	s.input.Reset()
	s.log = append(s.log, entry{kind: entryQuestion, text: question})
	s.pending = true
	s.pendingLabel = "The patient is thinking..."

	mgr := s.mgr
	ask := func() tea.Msg {
		turn, err := mgr.AskQuestion(context.Background(), question)
		return answerReadyMsg{Turn: turn, Err: err}
	}
	return s, tea.Batch(ask, spinnerTick())
}

func (s *EncounterScreen) checkVitals() (screen.Screen, tea.Cmd) {
	vitals, err := s.mgr.VitalSigns()
	if err != nil {
		s.log = append(s.log, entry{kind: entryNotice, text: err.Error()})
		return s, nil
	}
	text := "Vitals — Temp " + vitals.Temperature +
		", HR " + vitals.HeartRate +
		", BP " + vitals.BloodPressure +
		", RR " + vitals.RespiratoryRate +
		", SpO2 " + vitals.OxygenSaturation
	s.log = append(s.log, entry{kind: entryVitals, text: text})
	return s, nil
}

func (s *EncounterScreen) takeHint() (screen.Screen, tea.Cmd) {
	hint, err := s.mgr.Hint(context.Background())
	if err != nil {
		s.log = append(s.log, entry{kind: entryNotice, text: err.Error()})
		return s, nil
	}
	s.log = append(s.log, entry{kind: entryHint, text: "Hint: " + hint})
	return s, nil
}

func (s *EncounterScreen) startCase() tea.Cmd {
	mgr := s.mgr
	topic := s.topic
	return func() tea.Msg {
		c, err := mgr.StartCase(context.Background(), topic)
		return caseReadyMsg{Case: c, Err: err}
	}
}

func (s *EncounterScreen) submitDiagnosis(diagnosis, reasoning string) tea.Cmd {
	mgr := s.mgr
	return func() tea.Msg {
		report, err := mgr.SubmitDiagnosis(context.Background(), diagnosis, reasoning)
		return reportReadyMsg{Report: report, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
