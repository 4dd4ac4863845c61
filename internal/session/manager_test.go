package session

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/avyukth/medsim/internal/evaluate"
	"github.com/avyukth/medsim/internal/interview"
	"github.com/avyukth/medsim/internal/llm"
	"github.com/avyukth/medsim/internal/patient"
	"github.com/avyukth/medsim/internal/store"
)

const caseJSON = `{
	"name": "Margaret Chen",
	"age": 62,
	"gender": "female",
	"chief_complaint": "It feels like an elephant is sitting on my chest",
	"history": "Crushing substernal chest pain for 2 hours, radiating to the left arm.",
	"past_conditions": ["hypertension", "type 2 diabetes"],
	"medications": ["lisinopril 10mg daily"],
	"allergies": [],
	"family_history": ["father died of heart attack at 58"],
	"social_history": "Former smoker, quit 10 years ago.",
	"vitals": {
		"temperature": "37.0 C",
		"heart_rate": "104 bpm",
		"blood_pressure": "152/94 mmHg",
		"respiratory_rate": "22/min",
		"oxygen_saturation": "94% on room air"
	},
	"exam_findings": "Diaphoretic. Tachycardic, regular rhythm, S4 gallop.",
	"diagnosis": "Acute myocardial infarction",
	"differentials": ["unstable angina", "aortic dissection"],
	"recommended_tests": ["12-lead ECG", "troponin"],
	"red_flags": ["radiation to arm", "diaphoresis"],
	"personality": "anxious, answers quickly"
}`

const replyJSON = `{
	"response": "It started about two hours ago while I was gardening.",
	"revealed_facts": ["onset 2 hours ago"],
	"tone": "anxious"
}`

const evaluationJSON = `{
	"correct": true,
	"score": 82,
	"feedback": "You reached the right diagnosis efficiently.",
	"strengths": ["focused cardiac questioning"],
	"improvements": ["ask about medications"],
	"missed_findings": ["family history of early cardiac death"]
}`

func caseResponse() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(caseJSON)}
}

func replyResponse() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(replyJSON)}
}

func evaluationResponse() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(evaluationJSON)}
}

func newTestManager(responses ...llm.MockResponse) (*Manager, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	m := NewManager(Options{
		Provider:        mock,
		Rand:            rand.New(rand.NewPCG(1, 2)),
		PatientConfig:   patient.DefaultConfig(),
		InterviewConfig: interview.DefaultConfig(),
		EvaluateConfig:  evaluate.DefaultConfig(),
	})
	return m, mock
}

func TestNewManager_StartsEmpty(t *testing.T) {
	m, _ := newTestManager()

	if m.State() != StateNoCase {
		t.Errorf("state = %v, want StateNoCase", m.State())
	}
	if m.ID() == "" {
		t.Error("expected a session ID")
	}
	if m.Case() != nil {
		t.Error("expected no case before StartCase")
	}
	if m.Evaluation() != nil {
		t.Error("expected no evaluation before submission")
	}
}

func TestStartCase_Transitions(t *testing.T) {
	m, _ := newTestManager(caseResponse())

	c, err := m.StartCase(context.Background(), "chest pain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Margaret Chen" {
		t.Errorf("name = %q", c.Name)
	}
	if m.State() != StateCaseActive {
		t.Errorf("state = %v, want StateCaseActive", m.State())
	}
	if m.Case() != c {
		t.Error("Case() should return the started case")
	}
}

func TestStartCase_RejectedWhileActive(t *testing.T) {
	m, mock := newTestManager(caseResponse())

	if _, err := m.StartCase(context.Background(), "chest pain"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := m.StartCase(context.Background(), "headache")
	if !errors.Is(err, ErrCaseActive) {
		t.Fatalf("expected ErrCaseActive, got: %v", err)
	}
	// The rejection happens before any generation attempt.
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 LLM call, got %d", mock.CallCount())
	}
}

func TestStartCase_EmptyTopicDrawsFallback(t *testing.T) {
	m, mock := newTestManager(caseResponse())

	if _, err := m.StartCase(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	if msg == "" {
		t.Fatal("expected a generation prompt")
	}
	// The drawn topic must come from the fallback pool; a seeded twin
	// source tells us which one it was.
	want := patient.RandomTopic(rand.New(rand.NewPCG(1, 2)))
	if !strings.Contains(msg, want) {
		t.Errorf("prompt %q missing drawn topic %q", msg, want)
	}
}

func TestStartCase_FailureLeavesStateUntouched(t *testing.T) {
	m, _ := newTestManager(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	_, err := m.StartCase(context.Background(), "chest pain")
	if err == nil {
		t.Fatal("expected error")
	}
	if m.State() != StateNoCase {
		t.Errorf("state = %v, want StateNoCase", m.State())
	}
	if m.Case() != nil {
		t.Error("expected no case after failed generation")
	}
}

func TestAskQuestion_RequiresActiveCase(t *testing.T) {
	m, mock := newTestManager()

	_, err := m.AskQuestion(context.Background(), "When did it start?")
	if !errors.Is(err, ErrNoActiveCase) {
		t.Fatalf("expected ErrNoActiveCase, got: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls, got %d", mock.CallCount())
	}
}

func TestAskQuestion_RecordsDuplicates(t *testing.T) {
	m, _ := newTestManager(caseResponse(), replyResponse(), replyResponse())

	if _, err := m.StartCase(context.Background(), "chest pain"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := m.AskQuestion(context.Background(), "When did it start?"); err != nil {
			t.Fatalf("ask %d: %v", i, err)
		}
	}

	meta := m.Meta()
	if len(meta.QuestionsAsked) != 2 {
		t.Fatalf("questions asked = %d, want 2 (duplicates kept)", len(meta.QuestionsAsked))
	}
	if len(m.Turns()) != 2 {
		t.Errorf("transcript length = %d, want 2", len(m.Turns()))
	}
}

func TestVitalSigns_StableAcrossCalls(t *testing.T) {
	m, _ := newTestManager(caseResponse())

	if _, err := m.StartCase(context.Background(), "chest pain"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := m.VitalSigns()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := m.VitalSigns()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("vitals changed between reads: %+v vs %+v", first, second)
	}
	if first.HeartRate != "104 bpm" {
		t.Errorf("heart rate = %q", first.HeartRate)
	}
	if !m.Meta().VitalsChecked {
		t.Error("expected VitalsChecked after reading vitals")
	}
}

func TestVitalSigns_RequiresActiveCase(t *testing.T) {
	m, _ := newTestManager()

	if _, err := m.VitalSigns(); !errors.Is(err, ErrNoActiveCase) {
		t.Fatalf("expected ErrNoActiveCase, got: %v", err)
	}
}

func TestPerformExam_AreaIndependentFindings(t *testing.T) {
	m, _ := newTestManager(caseResponse())

	if _, err := m.StartCase(context.Background(), "chest pain"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cardiac, err := m.PerformExam(context.Background(), "cardiovascular")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	neuro, err := m.PerformExam(context.Background(), "neurological")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cardiac != neuro {
		t.Error("findings should not vary by area")
	}

	meta := m.Meta()
	if len(meta.ExamsPerformed) != 2 {
		t.Fatalf("exams performed = %v", meta.ExamsPerformed)
	}
	if meta.ExamsPerformed[0] != "cardiovascular" || meta.ExamsPerformed[1] != "neurological" {
		t.Errorf("exam order = %v", meta.ExamsPerformed)
	}
}

func TestSubmitDiagnosis_RejectedWithoutCase(t *testing.T) {
	m, mock := newTestManager()

	_, err := m.SubmitDiagnosis(context.Background(), "heart attack", "classic presentation")
	if !errors.Is(err, ErrNoActiveCase) {
		t.Fatalf("expected ErrNoActiveCase, got: %v", err)
	}
	// No evaluation call may happen for an out-of-state submission.
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls, got %d", mock.CallCount())
	}
}

func TestSubmitDiagnosis_Transitions(t *testing.T) {
	m, _ := newTestManager(caseResponse(), evaluationResponse())

	if _, err := m.StartCase(context.Background(), "chest pain"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, err := m.SubmitDiagnosis(context.Background(), "heart attack", "classic presentation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.State() != StateDiagnosisSubmitted {
		t.Errorf("state = %v, want StateDiagnosisSubmitted", m.State())
	}
	if report.CorrectDiagnosis != "Acute myocardial infarction" {
		t.Errorf("correct diagnosis = %q", report.CorrectDiagnosis)
	}
	if report.Evaluation == nil || report.Evaluation.Score != 82 {
		t.Errorf("evaluation = %+v", report.Evaluation)
	}
	if !report.Evaluation.Correct {
		t.Error("expected a correct verdict")
	}
	if report.Stats.DurationMinutes < 0 {
		t.Errorf("duration = %f", report.Stats.DurationMinutes)
	}
	if m.Evaluation() != report.Evaluation {
		t.Error("Evaluation() should return the submitted result")
	}
}

func TestSubmitDiagnosis_SecondSubmissionRejected(t *testing.T) {
	m, mock := newTestManager(caseResponse(), evaluationResponse())

	if _, err := m.StartCase(context.Background(), "chest pain"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.SubmitDiagnosis(context.Background(), "heart attack", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := m.SubmitDiagnosis(context.Background(), "angina", "")
	if !errors.Is(err, ErrDiagnosisSubmitted) {
		t.Fatalf("expected ErrDiagnosisSubmitted, got: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 LLM calls, got %d", mock.CallCount())
	}
}

func TestSubmitDiagnosis_FailureKeepsCaseActive(t *testing.T) {
	m, _ := newTestManager(
		caseResponse(),
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
	)

	if _, err := m.StartCase(context.Background(), "chest pain"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := m.SubmitDiagnosis(context.Background(), "heart attack", "")
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %v", err)
	}
	if m.State() != StateCaseActive {
		t.Errorf("state = %v, want StateCaseActive after failed evaluation", m.State())
	}
	if m.Evaluation() != nil {
		t.Error("expected no evaluation after failure")
	}
}

func TestSubmitDiagnosis_NewCaseAfterSubmission(t *testing.T) {
	m, _ := newTestManager(caseResponse(), evaluationResponse(), caseResponse())

	if _, err := m.StartCase(context.Background(), "chest pain"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.SubmitDiagnosis(context.Background(), "heart attack", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.StartCase(context.Background(), "abdominal pain"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.State() != StateCaseActive {
		t.Errorf("state = %v, want StateCaseActive", m.State())
	}
	if m.Evaluation() != nil {
		t.Error("expected evaluation cleared by the new case")
	}
	if len(m.Turns()) != 0 {
		t.Errorf("transcript carried over: %d turns", len(m.Turns()))
	}
	if m.Meta().VitalsChecked || len(m.Meta().QuestionsAsked) != 0 {
		t.Error("expected encounter metadata reset")
	}
}

func TestHint_ValidAfterSubmission(t *testing.T) {
	m, _ := newTestManager(caseResponse(), evaluationResponse())

	if _, err := m.StartCase(context.Background(), "chest pain"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.SubmitDiagnosis(context.Background(), "heart attack", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hint, err := m.Hint(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hint == "" {
		t.Error("expected a hint after submission")
	}
}

func TestHint_RejectedWithoutCase(t *testing.T) {
	m, _ := newTestManager()

	if _, err := m.Hint(context.Background()); !errors.Is(err, ErrNoActiveCase) {
		t.Fatalf("expected ErrNoActiveCase, got: %v", err)
	}
}

func TestHint_UniformOverPool(t *testing.T) {
	responses := []llm.MockResponse{caseResponse()}
	m, _ := newTestManager(responses...)

	if _, err := m.StartCase(context.Background(), "chest pain"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := map[string]int{}
	const draws = 8000
	for i := 0; i < draws; i++ {
		hint, err := m.Hint(context.Background())
		if err != nil {
			t.Fatalf("hint %d: %v", i, err)
		}
		seen[hint]++
	}

	if len(seen) != HintCount() {
		t.Fatalf("saw %d distinct hints, want %d", len(seen), HintCount())
	}
	expected := draws / HintCount()
	for hint, n := range seen {
		if n < expected/2 || n > expected*2 {
			t.Errorf("hint %q drawn %d times, expected near %d", hint, n, expected)
		}
	}
}

func TestManager_EventLogRecordsEncounter(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "medsim.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	mock := llm.NewMockProvider(caseResponse(), replyResponse(), evaluationResponse())
	m := NewManager(Options{
		Provider:        mock,
		EventRepo:       s.EventRepo(),
		Rand:            rand.New(rand.NewPCG(1, 2)),
		PatientConfig:   patient.DefaultConfig(),
		InterviewConfig: interview.DefaultConfig(),
		EvaluateConfig:  evaluate.DefaultConfig(),
	})

	ctx := context.Background()
	if _, err := m.StartCase(ctx, "chest pain"); err != nil {
		t.Fatalf("start case: %v", err)
	}
	if _, err := m.AskQuestion(ctx, "When did it start?"); err != nil {
		t.Fatalf("ask: %v", err)
	}
	if _, err := m.VitalSigns(); err != nil {
		t.Fatalf("vitals: %v", err)
	}
	if _, err := m.PerformExam(ctx, "cardiovascular"); err != nil {
		t.Fatalf("exam: %v", err)
	}
	report, err := m.SubmitDiagnosis(ctx, "heart attack", "classic presentation")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if report.Stats.QuestionsAsked != 1 {
		t.Errorf("questions asked = %d, want 1", report.Stats.QuestionsAsked)
	}
	if !report.Stats.VitalsChecked {
		t.Error("expected VitalsChecked in the report")
	}

	summaries, err := s.EventRepo().EncounterSummaries(ctx, 0)
	if err != nil {
		t.Fatalf("encounter summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(summaries))
	}
	got := summaries[0]
	if got.SessionID != m.ID() {
		t.Errorf("session id = %q, want %q", got.SessionID, m.ID())
	}
	if !got.Completed {
		t.Error("expected a completed encounter")
	}
	if got.Score != 82 {
		t.Errorf("score = %d, want 82", got.Score)
	}
	if got.Diagnosis != "Acute myocardial infarction" {
		t.Errorf("diagnosis = %q", got.Diagnosis)
	}
}

// gatedProvider delegates to a mock but, once armed, parks each Generate
// call until released. Lets a test hold an LLM call in flight.
type gatedProvider struct {
	inner *llm.MockProvider

	mu      sync.Mutex
	armed   bool
	entered chan struct{}
	release chan struct{}
}

func newGatedProvider(responses ...llm.MockResponse) *gatedProvider {
	return &gatedProvider{
		inner:   llm.NewMockProvider(responses...),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (p *gatedProvider) arm() {
	p.mu.Lock()
	p.armed = true
	p.mu.Unlock()
}

func (p *gatedProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	p.mu.Lock()
	armed := p.armed
	p.mu.Unlock()
	if armed {
		p.entered <- struct{}{}
		<-p.release
	}
	return p.inner.Generate(ctx, req)
}

func (p *gatedProvider) ModelID() string { return p.inner.ModelID() }

func TestAskQuestion_ConcurrentCallsRecorded(t *testing.T) {
	const workers = 4
	responses := []llm.MockResponse{caseResponse()}
	for i := 0; i < workers; i++ {
		responses = append(responses, replyResponse())
	}
	m, _ := newTestManager(responses...)

	if _, err := m.StartCase(context.Background(), "chest pain"); err != nil {
		t.Fatalf("start case: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.AskQuestion(context.Background(), "Where does it hurt?")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("ask question: %v", err)
		}
	}

	if got := len(m.Turns()); got != workers {
		t.Errorf("transcript has %d turns, want %d", got, workers)
	}
	if got := len(m.Meta().QuestionsAsked); got != workers {
		t.Errorf("recorded %d questions, want %d", got, workers)
	}
}

func TestSubmitDiagnosis_ConcurrentSecondRejected(t *testing.T) {
	provider := newGatedProvider(caseResponse(), evaluationResponse())
	m := NewManager(Options{
		Provider:        provider,
		Rand:            rand.New(rand.NewPCG(1, 2)),
		PatientConfig:   patient.DefaultConfig(),
		InterviewConfig: interview.DefaultConfig(),
		EvaluateConfig:  evaluate.DefaultConfig(),
	})

	if _, err := m.StartCase(context.Background(), "chest pain"); err != nil {
		t.Fatalf("start case: %v", err)
	}
	provider.arm()

	type result struct {
		report *Report
		err    error
	}
	results := make(chan result, 2)

	go func() {
		r, err := m.SubmitDiagnosis(context.Background(), "heart attack", "classic presentation")
		results <- result{r, err}
	}()
	// Wait until the first submission is inside its LLM call.
	<-provider.entered

	go func() {
		r, err := m.SubmitDiagnosis(context.Background(), "anxiety attack", "second guess")
		results <- result{r, err}
	}()
	close(provider.release)

	var succeeded, rejected int
	for i := 0; i < 2; i++ {
		r := <-results
		switch {
		case r.err == nil && r.report != nil:
			succeeded++
		case errors.Is(r.err, ErrDiagnosisSubmitted):
			rejected++
		default:
			t.Fatalf("unexpected outcome: report=%v err=%v", r.report, r.err)
		}
	}
	if succeeded != 1 || rejected != 1 {
		t.Fatalf("succeeded=%d rejected=%d, want exactly one of each", succeeded, rejected)
	}

	// One case generation plus exactly one evaluation.
	if got := provider.inner.CallCount(); got != 2 {
		t.Errorf("LLM called %d times, want 2", got)
	}
	if m.State() != StateDiagnosisSubmitted {
		t.Errorf("state = %v, want StateDiagnosisSubmitted", m.State())
	}
}
