package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is the query-side view of a recorded LLM request.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// CaseEventData records the start of a patient encounter.
type CaseEventData struct {
	SessionID      string
	Topic          string
	PatientName    string
	PatientAge     int
	PatientGender  string
	ChiefComplaint string
	Diagnosis      string
}

// QuestionEventData records one interview exchange.
type QuestionEventData struct {
	SessionID string
	Question  string
	Answer    string
	Tone      string
}

// ExamEventData records a physical exam and its findings.
type ExamEventData struct {
	SessionID string
	Area      string
	Findings  string
}

// HintEventData records a study hint shown to the learner.
type HintEventData struct {
	SessionID string
	HintText  string
}

// DiagnosisEventData records a diagnosis submission and its evaluation.
type DiagnosisEventData struct {
	SessionID          string
	SubmittedDiagnosis string
	ActualDiagnosis    string
	Correct            bool
	Score              int
	Feedback           string
	QuestionsAsked     int
	ExamsPerformed     int
	VitalsChecked      bool
	DurationMins       float64
}

// EncounterSummary is the query-side view of one completed or abandoned
// encounter, joined from case and diagnosis events by session ID.
type EncounterSummary struct {
	SessionID      string
	StartedAt      time.Time
	Topic          string
	PatientName    string
	PatientAge     int
	ChiefComplaint string
	Diagnosis      string

	// Outcome fields are zero-valued until a diagnosis event exists.
	Completed          bool
	SubmittedDiagnosis string
	Correct            bool
	Score              int
	QuestionsAsked     int
	ExamsPerformed     int
	DurationMins       float64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendCaseEvent records the start of an encounter.
	AppendCaseEvent(ctx context.Context, data CaseEventData) error

	// AppendQuestionEvent records one interview exchange.
	AppendQuestionEvent(ctx context.Context, data QuestionEventData) error

	// AppendExamEvent records a physical exam.
	AppendExamEvent(ctx context.Context, data ExamEventData) error

	// AppendHintEvent records a hint shown to the learner.
	AppendHintEvent(ctx context.Context, data HintEventData) error

	// AppendDiagnosisEvent records a diagnosis submission and evaluation.
	AppendDiagnosisEvent(ctx context.Context, data DiagnosisEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// EncounterSummaries returns past encounters, newest first.
	EncounterSummaries(ctx context.Context, limit int) ([]EncounterSummary, error)
}
