package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing with no gaps.
	for i := 1; i < len(seqs); i++ {
		if seqs[i] != seqs[i-1]+1 {
			t.Errorf("seq[%d] = %d, want %d", i, seqs[i], seqs[i-1]+1)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "case-gen", InputTokens: 100, OutputTokens: 400, LatencyMs: 900, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "interview", InputTokens: 200, OutputTokens: 50, LatencyMs: 400, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "interview", InputTokens: 220, OutputTokens: 60, LatencyMs: 500, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	// Newest first.
	if got[0].Purpose != "interview" || got[0].Success {
		t.Errorf("newest event = %+v, want failed interview event", got[0])
	}
	if got[2].Purpose != "case-gen" {
		t.Errorf("oldest event purpose = %q, want case-gen", got[2].Purpose)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "evaluation",
		Success:      true,
		RequestBody:  "[system]\nYou are an attending physician.",
		ResponseBody: `{"score":85}`,
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}
	if e.RequestBody != data.RequestBody {
		t.Errorf("request body = %q, want %q", e.RequestBody, data.RequestBody)
	}
	if e.ResponseBody != data.ResponseBody {
		t.Errorf("response body = %q, want %q", e.ResponseBody, data.ResponseBody)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "interview",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "case-gen",
		InputTokens: 300, OutputTokens: 900, LatencyMs: 1500, Success: true,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 purpose rows, got %d", len(stats))
	}

	byPurpose := map[string]PurposeUsage{}
	for _, u := range stats {
		byPurpose[u.Purpose] = u
	}
	if u := byPurpose["interview"]; u.Calls != 2 || u.InputTokens != 200 || u.OutputTokens != 100 {
		t.Errorf("interview usage = %+v", u)
	}
	if u := byPurpose["case-gen"]; u.Calls != 1 || u.InputTokens != 300 {
		t.Errorf("case-gen usage = %+v", u)
	}
}

func TestEncounterSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// First encounter completes with a diagnosis.
	if err := repo.AppendCaseEvent(ctx, CaseEventData{
		SessionID:      "sess-1",
		Topic:          "chest pain",
		PatientName:    "Margaret Chen",
		PatientAge:     62,
		PatientGender:  "female",
		ChiefComplaint: "crushing chest pain for 2 hours",
		Diagnosis:      "Acute myocardial infarction",
	}); err != nil {
		t.Fatalf("append case 1: %v", err)
	}
	if err := repo.AppendDiagnosisEvent(ctx, DiagnosisEventData{
		SessionID:          "sess-1",
		SubmittedDiagnosis: "heart attack",
		ActualDiagnosis:    "Acute myocardial infarction",
		Correct:            true,
		Score:              85,
		QuestionsAsked:     6,
		ExamsPerformed:     2,
		VitalsChecked:      true,
		DurationMins:       12.5,
	}); err != nil {
		t.Fatalf("append diagnosis 1: %v", err)
	}

	// Second encounter is abandoned.
	if err := repo.AppendCaseEvent(ctx, CaseEventData{
		SessionID:      "sess-2",
		PatientName:    "Tom Okafor",
		PatientAge:     8,
		PatientGender:  "male",
		ChiefComplaint: "tummy hurts",
		Diagnosis:      "Acute appendicitis",
	}); err != nil {
		t.Fatalf("append case 2: %v", err)
	}

	summaries, err := repo.EncounterSummaries(ctx, 10)
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	// Newest first: sess-2 then sess-1.
	if summaries[0].SessionID != "sess-2" {
		t.Errorf("first summary = %q, want sess-2", summaries[0].SessionID)
	}
	if summaries[0].Completed {
		t.Error("sess-2 should not be completed")
	}
	if !summaries[1].Completed {
		t.Error("sess-1 should be completed")
	}
	if summaries[1].Score != 85 || !summaries[1].Correct {
		t.Errorf("sess-1 outcome = %+v", summaries[1])
	}
	if summaries[1].DurationMins != 12.5 {
		t.Errorf("sess-1 duration = %v, want 12.5", summaries[1].DurationMins)
	}
}

func TestAppendQuestionExamHintEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendQuestionEvent(ctx, QuestionEventData{
		SessionID: "sess-1",
		Question:  "When did the pain start?",
		Answer:    "About two hours ago, while I was gardening.",
		Tone:      "anxious",
	}); err != nil {
		t.Fatalf("append question: %v", err)
	}
	if err := repo.AppendExamEvent(ctx, ExamEventData{
		SessionID: "sess-1",
		Area:      "cardiovascular",
		Findings:  "Regular rhythm, no murmurs. S4 gallop present.",
	}); err != nil {
		t.Fatalf("append exam: %v", err)
	}
	if err := repo.AppendHintEvent(ctx, HintEventData{
		SessionID: "sess-1",
		HintText:  "Consider asking about what makes the symptoms better or worse.",
	}); err != nil {
		t.Fatalf("append hint: %v", err)
	}

	// Every append consumed a sequence number.
	count, err := s.Client().QuestionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("question events = %d, want 1", count)
	}
}
