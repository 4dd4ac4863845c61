package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/avyukth/medsim/internal/llm"
)

func testInput() Input {
	return Input{
		ActualDiagnosis:    "Acute myocardial infarction",
		Differentials:      []string{"unstable angina", "aortic dissection"},
		VitalsSummary:      "T 37.0 C, HR 104 bpm, BP 152/94 mmHg, RR 22/min, SpO2 94%",
		History:            "Crushing substernal chest pain for 2 hours, radiating to the left arm.",
		ExamFindings:       "Diaphoretic. Tachycardic, regular rhythm, S4 gallop.",
		QuestionsAsked:     []string{"When did the pain start?", "Does it radiate anywhere?"},
		ExamsPerformed:     []string{"cardiovascular"},
		VitalsChecked:      true,
		SubmittedDiagnosis: "heart attack",
		Reasoning:          "Classic presentation with risk factors.",
	}
}

const validEvaluationJSON = `{
	"correct": true,
	"score": 82,
	"feedback": "You reached the right diagnosis efficiently. Your questioning covered onset and radiation but skipped the medication history.",
	"strengths": ["focused cardiac questioning", "checked vitals early"],
	"improvements": ["ask about medications and allergies"],
	"missed_findings": ["family history of early cardiac death"]
}`

func TestEvaluate_ParsesResult(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validEvaluationJSON)},
	)
	ev := NewEvaluator(mock, DefaultConfig())

	result, err := ev.Evaluate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Correct {
		t.Error("expected correct = true")
	}
	if result.Score != 82 {
		t.Errorf("score = %d, want 82", result.Score)
	}
	if len(result.Strengths) != 2 || len(result.MissedFindings) != 1 {
		t.Errorf("lists = %+v", result)
	}
}

func TestEvaluate_PromptCarriesFullQuestionList(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validEvaluationJSON)},
	)
	ev := NewEvaluator(mock, DefaultConfig())

	in := testInput()
	for i := 0; i < 20; i++ {
		in.QuestionsAsked = append(in.QuestionsAsked, "Extra question about symptom number "+strings.Repeat("x", i))
	}
	if _, err := ev.Evaluate(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, q := range in.QuestionsAsked {
		if !strings.Contains(msg, q) {
			t.Fatalf("prompt missing question %q", q)
		}
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "diagnosis-evaluation" {
		t.Error("expected the diagnosis-evaluation schema on the request")
	}
}

func TestEvaluate_TruncatesNarratives(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validEvaluationJSON)},
	)
	ev := NewEvaluator(mock, DefaultConfig())

	in := testInput()
	in.History = strings.Repeat("h", 500)
	in.ExamFindings = strings.Repeat("e", 500)
	if _, err := ev.Evaluate(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if strings.Contains(msg, strings.Repeat("h", excerptLen+1)) {
		t.Error("history not truncated")
	}
	if !strings.Contains(msg, strings.Repeat("h", excerptLen)+"...") {
		t.Error("expected truncated history with ellipsis")
	}
	if strings.Contains(msg, strings.Repeat("e", excerptLen+1)) {
		t.Error("exam findings not truncated")
	}
}

func TestEvaluate_ProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("schema validation failed")}},
	)
	ev := NewEvaluator(mock, DefaultConfig())

	_, err := ev.Evaluate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error")
	}
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected exactly 1 LLM call, got %d", mock.CallCount())
	}
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short ascii untouched", "chest pain", 20, "chest pain"},
		{"ascii cut at limit", "abcdef", 3, "abc..."},
		{"multibyte rune not split", "abécd", 3, "ab..."},
		{"cut lands on rune boundary", "abécd", 4, "abé..."},
		{"cjk narrative", "痛みが胸に", 7, "痛み..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.max)
			}
		})
	}
}
