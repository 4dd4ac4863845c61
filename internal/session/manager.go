package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avyukth/medsim/internal/evaluate"
	"github.com/avyukth/medsim/internal/interview"
	"github.com/avyukth/medsim/internal/llm"
	"github.com/avyukth/medsim/internal/patient"
	"github.com/avyukth/medsim/internal/store"
)

// State is the encounter lifecycle position.
type State int

const (
	// StateNoCase means no patient has been generated yet.
	StateNoCase State = iota

	// StateCaseActive means an encounter is in progress.
	StateCaseActive

	// StateDiagnosisSubmitted means the encounter is graded. Only a hint
	// or a new case is valid from here.
	StateDiagnosisSubmitted
)

func (s State) String() string {
	switch s {
	case StateNoCase:
		return "no-case"
	case StateCaseActive:
		return "case-active"
	case StateDiagnosisSubmitted:
		return "diagnosis-submitted"
	default:
		return "unknown"
	}
}

// Meta tracks what the student has done with the active case. It resets
// when a new case starts.
type Meta struct {
	StartedAt     time.Time
	VitalsChecked bool

	// ExamsPerformed keeps requested areas in order, duplicates included.
	ExamsPerformed []string

	// QuestionsAsked keeps every question in order, duplicates included.
	QuestionsAsked []string
}

// Stats summarizes the encounter for the end-of-case report.
type Stats struct {
	QuestionsAsked  int
	VitalsChecked   bool
	ExamsPerformed  []string
	DurationMinutes float64
	RevealedFacts   []string
}

// Report bundles everything revealed at diagnosis submission.
type Report struct {
	CorrectDiagnosis   string
	Differentials      []string
	SubmittedDiagnosis string
	Reasoning          string
	Evaluation         *evaluate.Evaluation
	Stats              Stats
}

// Options configures a Manager.
type Options struct {
	// Provider is the LLM provider all three call sites share.
	Provider llm.Provider

	// EventRepo receives telemetry events. Nil disables event logging.
	EventRepo store.EventRepo

	// Rand drives hint and fallback-topic draws. Nil uses a default
	// source; tests pass a seeded one.
	Rand *rand.Rand

	PatientConfig   patient.Config
	InterviewConfig interview.Config
	EvaluateConfig  evaluate.Config
}

// Manager owns one student's session: the active case, its interview, and
// the encounter metadata. All state is in memory and dies with the process.
// Methods are safe for concurrent use.
type Manager struct {
	// opMu serializes the LLM-backed lifecycle operations (StartCase,
	// AskQuestion, SubmitDiagnosis) end to end, including the LLM call.
	// Of two concurrent submissions, the loser re-checks state after the
	// winner commits and is rejected without an LLM call.
	opMu sync.Mutex

	// mu guards session state. Never held across an LLM call, so
	// accessors and the quick operations stay responsive.
	mu sync.Mutex

	id        string
	state     State
	rng       *rand.Rand
	eventRepo store.EventRepo

	provider     llm.Provider
	generator    *patient.Generator
	evaluator    *evaluate.Evaluator
	interviewCfg interview.Config

	current   *patient.Case
	handler   *interview.Handler
	meta      Meta
	lastEval  *evaluate.Evaluation
}

// NewManager creates a session manager in StateNoCase.
func NewManager(opts Options) *Manager {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Manager{
		id:           uuid.New().String(),
		state:        StateNoCase,
		rng:          rng,
		eventRepo:    opts.EventRepo,
		provider:     opts.Provider,
		generator:    patient.NewGenerator(opts.Provider, opts.PatientConfig),
		evaluator:    evaluate.NewEvaluator(opts.Provider, opts.EvaluateConfig),
		interviewCfg: opts.InterviewConfig,
	}
}

// ID returns the session UUID.
func (m *Manager) ID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Case returns the active case, or nil.
func (m *Manager) Case() *patient.Case {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Turns returns the interview transcript for the active case.
func (m *Manager) Turns() []interview.Turn {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.handler == nil {
		return nil
	}
	return m.handler.Turns()
}

// Evaluation returns the grading result, or nil before submission.
func (m *Manager) Evaluation() *evaluate.Evaluation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastEval
}

// StartCase generates a new patient and begins an encounter. Valid from
// StateNoCase or StateDiagnosisSubmitted. An empty topic draws one
// uniformly from the fallback pool. On any failure the previous state is
// left untouched.
func (m *Manager) StartCase(ctx context.Context, topic string) (*patient.Case, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	if m.state == StateCaseActive {
		m.mu.Unlock()
		return nil, ErrCaseActive
	}
	if topic == "" {
		topic = patient.RandomTopic(m.rng)
	}
	m.mu.Unlock()

	// The LLM call runs outside mu; generation can take seconds.
	c, err := m.generator.Generate(ctx, topic)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = c
	m.handler = interview.NewHandler(m.provider, c, m.interviewCfg)
	m.meta = Meta{StartedAt: time.Now()}
	m.lastEval = nil
	m.state = StateCaseActive

	m.logEvent(ctx, func(repo store.EventRepo) error {
		return repo.AppendCaseEvent(ctx, store.CaseEventData{
			SessionID:      m.id,
			Topic:          topic,
			PatientName:    c.Name,
			PatientAge:     c.Age,
			PatientGender:  c.Gender,
			ChiefComplaint: c.ChiefComplaint,
			Diagnosis:      c.Diagnosis,
		})
	})

	return c, nil
}

// AskQuestion puts one question to the simulated patient. CaseActive only.
// The question is recorded even when it repeats an earlier one.
func (m *Manager) AskQuestion(ctx context.Context, question string) (*interview.Turn, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	if err := m.requireActive(); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	handler := m.handler
	m.mu.Unlock()

	turn, err := handler.Ask(ctx, question)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.meta.QuestionsAsked = append(m.meta.QuestionsAsked, question)

	m.logEvent(ctx, func(repo store.EventRepo) error {
		return repo.AppendQuestionEvent(ctx, store.QuestionEventData{
			SessionID: m.id,
			Question:  turn.Question,
			Answer:    turn.Answer,
			Tone:      turn.Tone,
		})
	})

	return turn, nil
}

// VitalSigns returns the case's vitals. CaseActive only. The values are
// fixed at generation time; every call returns the same ones.
func (m *Manager) VitalSigns() (patient.VitalSigns, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireActive(); err != nil {
		return patient.VitalSigns{}, err
	}
	m.meta.VitalsChecked = true
	return m.current.Vitals, nil
}

// PerformExam records an exam of the given area and returns the case's
// exam findings. The findings text does not vary by area.
func (m *Manager) PerformExam(ctx context.Context, area string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireActive(); err != nil {
		return "", err
	}
	m.meta.ExamsPerformed = append(m.meta.ExamsPerformed, area)
	findings := m.current.ExamFindings

	m.logEvent(ctx, func(repo store.EventRepo) error {
		return repo.AppendExamEvent(ctx, store.ExamEventData{
			SessionID: m.id,
			Area:      area,
			Findings:  findings,
		})
	})

	return findings, nil
}

// SubmitDiagnosis grades the encounter and transitions to
// StateDiagnosisSubmitted. CaseActive only; out-of-state submissions are
// rejected before any LLM call. On evaluation failure the encounter stays
// active.
func (m *Manager) SubmitDiagnosis(ctx context.Context, diagnosis, reasoning string) (*Report, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	if err := m.requireActive(); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	c := m.current
	in := evaluate.Input{
		ActualDiagnosis:    c.Diagnosis,
		Differentials:      c.Differentials,
		VitalsSummary:      vitalsSummary(c.Vitals),
		History:            c.History,
		ExamFindings:       c.ExamFindings,
		QuestionsAsked:     append([]string(nil), m.meta.QuestionsAsked...),
		ExamsPerformed:     append([]string(nil), m.meta.ExamsPerformed...),
		VitalsChecked:      m.meta.VitalsChecked,
		SubmittedDiagnosis: diagnosis,
		Reasoning:          reasoning,
	}
	m.mu.Unlock()

	ev, err := m.evaluator.Evaluate(ctx, in)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastEval = ev
	m.state = StateDiagnosisSubmitted

	duration := time.Since(m.meta.StartedAt).Minutes()
	report := &Report{
		CorrectDiagnosis:   c.Diagnosis,
		Differentials:      c.Differentials,
		SubmittedDiagnosis: diagnosis,
		Reasoning:          reasoning,
		Evaluation:         ev,
		Stats: Stats{
			QuestionsAsked:  len(m.meta.QuestionsAsked),
			VitalsChecked:   m.meta.VitalsChecked,
			ExamsPerformed:  append([]string(nil), m.meta.ExamsPerformed...),
			DurationMinutes: duration,
			RevealedFacts:   m.handler.RevealedFacts(),
		},
	}

	m.logEvent(ctx, func(repo store.EventRepo) error {
		return repo.AppendDiagnosisEvent(ctx, store.DiagnosisEventData{
			SessionID:          m.id,
			SubmittedDiagnosis: diagnosis,
			ActualDiagnosis:    c.Diagnosis,
			Correct:            ev.Correct,
			Score:              ev.Score,
			Feedback:           ev.Feedback,
			QuestionsAsked:     len(m.meta.QuestionsAsked),
			ExamsPerformed:     len(m.meta.ExamsPerformed),
			VitalsChecked:      m.meta.VitalsChecked,
			DurationMins:       duration,
		})
	})

	return report, nil
}

// Hint returns one general interviewing prompt. Valid any time after a
// case has existed, including after submission.
func (m *Manager) Hint(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateNoCase {
		return "", ErrNoActiveCase
	}
	hint := drawHint(m.rng)

	m.logEvent(ctx, func(repo store.EventRepo) error {
		return repo.AppendHintEvent(ctx, store.HintEventData{
			SessionID: m.id,
			HintText:  hint,
		})
	})

	return hint, nil
}

// Meta returns a copy of the encounter metadata.
func (m *Manager) Meta() Meta {
	m.mu.Lock()
	defer m.mu.Unlock()
	meta := m.meta
	meta.ExamsPerformed = append([]string(nil), m.meta.ExamsPerformed...)
	meta.QuestionsAsked = append([]string(nil), m.meta.QuestionsAsked...)
	return meta
}

// requireActive must be called with the lock held.
func (m *Manager) requireActive() error {
	switch m.state {
	case StateCaseActive:
		return nil
	case StateDiagnosisSubmitted:
		return ErrDiagnosisSubmitted
	default:
		return ErrNoActiveCase
	}
}

// logEvent records telemetry best-effort: a logging failure never fails
// the operation.
func (m *Manager) logEvent(_ context.Context, fn func(store.EventRepo) error) {
	if m.eventRepo == nil {
		return
	}
	if err := fn(m.eventRepo); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log session event: %v\n", err)
	}
}

func vitalsSummary(v patient.VitalSigns) string {
	return fmt.Sprintf("T %s, HR %s, BP %s, RR %s, SpO2 %s",
		v.Temperature, v.HeartRate, v.BloodPressure, v.RespiratoryRate, v.OxygenSaturation)
}
