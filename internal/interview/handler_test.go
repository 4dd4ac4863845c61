package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/avyukth/medsim/internal/llm"
	"github.com/avyukth/medsim/internal/patient"
)

func testCase() *patient.Case {
	return &patient.Case{
		ID:             "case-1",
		Name:           "Margaret Chen",
		Age:            62,
		Gender:         "female",
		ChiefComplaint: "It feels like an elephant is sitting on my chest",
		History:        "Crushing substernal chest pain for 2 hours.",
		PastConditions: []string{"hypertension"},
		SocialHistory:  "Former smoker.",
		Diagnosis:      "Acute myocardial infarction",
		Personality:    "anxious, answers quickly",
	}
}

func reply(text string, facts ...string) llm.MockResponse {
	out := replyOutput{Response: text, RevealedFacts: facts, Tone: "anxious"}
	if out.RevealedFacts == nil {
		out.RevealedFacts = []string{}
	}
	raw, _ := json.Marshal(out)
	return llm.MockResponse{Content: raw}
}

func TestAsk_AppendsTurn(t *testing.T) {
	mock := llm.NewMockProvider(
		reply("It started about two hours ago.", "onset 2 hours ago"),
	)
	h := NewHandler(mock, testCase(), DefaultConfig())

	turn, err := h.Ask(context.Background(), "When did the pain start?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if turn.Answer != "It started about two hours ago." {
		t.Errorf("answer = %q", turn.Answer)
	}
	if turn.Tone != "anxious" {
		t.Errorf("tone = %q", turn.Tone)
	}
	if len(h.Turns()) != 1 {
		t.Fatalf("transcript length = %d, want 1", len(h.Turns()))
	}
}

func TestAsk_TranscriptAppendOnly(t *testing.T) {
	mock := llm.NewMockProvider()
	const n = 5
	for i := 0; i < n; i++ {
		mock.AddResponse(reply(fmt.Sprintf("answer %d", i)))
	}
	h := NewHandler(mock, testCase(), DefaultConfig())

	for i := 0; i < n; i++ {
		if _, err := h.Ask(context.Background(), fmt.Sprintf("question %d", i)); err != nil {
			t.Fatalf("ask %d: %v", i, err)
		}
	}

	turns := h.Turns()
	if len(turns) != n {
		t.Fatalf("transcript length = %d, want %d", len(turns), n)
	}
	for i, turn := range turns {
		if turn.Question != fmt.Sprintf("question %d", i) {
			t.Errorf("turn %d question = %q", i, turn.Question)
		}
	}
}

func TestAsk_WindowCapsAtThreeTurns(t *testing.T) {
	mock := llm.NewMockProvider()
	for i := 0; i < 6; i++ {
		mock.AddResponse(reply(fmt.Sprintf("answer %d", i)))
	}
	h := NewHandler(mock, testCase(), DefaultConfig())

	for i := 0; i < 6; i++ {
		if _, err := h.Ask(context.Background(), fmt.Sprintf("question %d", i)); err != nil {
			t.Fatalf("ask %d: %v", i, err)
		}
	}

	// The sixth call saw turns 2,3,4 as context plus the new question:
	// 3 prior turns * 2 messages + 1 = 7 messages.
	last := mock.Calls[5]
	if len(last.Messages) != HistoryWindow*2+1 {
		t.Fatalf("message count = %d, want %d", len(last.Messages), HistoryWindow*2+1)
	}
	if last.Messages[0].Content != "question 2" {
		t.Errorf("oldest windowed question = %q, want question 2", last.Messages[0].Content)
	}
	if last.Messages[len(last.Messages)-1].Content != "question 5" {
		t.Errorf("newest message = %q, want question 5", last.Messages[len(last.Messages)-1].Content)
	}
}

func TestAsk_RevealedFactsUnionFirstSeenOrder(t *testing.T) {
	mock := llm.NewMockProvider(
		reply("a", "onset 2 hours ago", "radiates to left arm"),
		reply("b", "radiates to left arm", "diaphoresis"),
		reply("c"),
	)
	h := NewHandler(mock, testCase(), DefaultConfig())

	for i := 0; i < 3; i++ {
		if _, err := h.Ask(context.Background(), "q"); err != nil {
			t.Fatalf("ask %d: %v", i, err)
		}
	}

	got := h.RevealedFacts()
	want := []string{"onset 2 hours ago", "radiates to left arm", "diaphoresis"}
	if len(got) != len(want) {
		t.Fatalf("revealed facts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fact %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAsk_ErrorLeavesTranscriptUnchanged(t *testing.T) {
	mock := llm.NewMockProvider(
		reply("fine answer"),
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	h := NewHandler(mock, testCase(), DefaultConfig())

	if _, err := h.Ask(context.Background(), "first"); err != nil {
		t.Fatalf("first ask: %v", err)
	}
	if _, err := h.Ask(context.Background(), "second"); err == nil {
		t.Fatal("expected error on second ask")
	}
	if len(h.Turns()) != 1 {
		t.Fatalf("transcript length = %d after failed ask, want 1", len(h.Turns()))
	}
}

func TestPersonaPrompt_AdultRegister(t *testing.T) {
	p := buildPersonaPrompt(testCase())
	if !strings.Contains(p, "Margaret Chen") || !strings.Contains(p, "62-year-old") {
		t.Errorf("persona prompt missing demographics: %q", p)
	}
	if !strings.Contains(p, "everyday adult language") {
		t.Error("adult case should use the adult register")
	}
	if strings.Contains(p, "You are a minor") {
		t.Error("adult case must not use the minor register")
	}
}

func TestPersonaPrompt_MinorRegister(t *testing.T) {
	c := testCase()
	c.Age = 8
	p := buildPersonaPrompt(c)
	if !strings.Contains(p, "You are a minor") {
		t.Error("child case should use the minor register")
	}
}

func TestPersonaPrompt_BoundaryAge(t *testing.T) {
	c := testCase()
	c.Age = adultAge
	if p := buildPersonaPrompt(c); strings.Contains(p, "You are a minor") {
		t.Errorf("age %d should already use the adult register", adultAge)
	}
	c.Age = adultAge - 1
	if p := buildPersonaPrompt(c); !strings.Contains(p, "You are a minor") {
		t.Errorf("age %d should use the minor register", adultAge-1)
	}
}
