package patient

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/avyukth/medsim/internal/llm"
)

const validCaseJSON = `{
	"name": "Margaret Chen",
	"age": 62,
	"gender": "female",
	"chief_complaint": "It feels like an elephant is sitting on my chest",
	"history": "Crushing substernal chest pain for 2 hours, radiating to the left arm, began while gardening. Associated diaphoresis and nausea. Not relieved by rest.",
	"past_conditions": ["hypertension", "type 2 diabetes"],
	"medications": ["lisinopril 10mg daily", "metformin 500mg twice daily"],
	"allergies": [],
	"family_history": ["father died of heart attack at 58"],
	"social_history": "Former smoker, quit 10 years ago. Retired teacher, lives with husband.",
	"vitals": {
		"temperature": "37.0 C",
		"heart_rate": "104 bpm",
		"blood_pressure": "152/94 mmHg",
		"respiratory_rate": "22/min",
		"oxygen_saturation": "94% on room air"
	},
	"exam_findings": "Diaphoretic and anxious. Heart: tachycardic, regular rhythm, S4 gallop. Lungs: bibasilar crackles. No peripheral edema.",
	"diagnosis": "Acute myocardial infarction",
	"differentials": ["unstable angina", "aortic dissection", "pulmonary embolism"],
	"recommended_tests": ["12-lead ECG", "troponin", "chest X-ray"],
	"red_flags": ["radiation to arm", "diaphoresis", "cardiac risk factors"],
	"personality": "anxious, answers questions quickly and asks if she is going to die"
}`

func TestGenerate_ValidCase(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validCaseJSON)},
	)
	gen := NewGenerator(mock, DefaultConfig())

	c, err := gen.Generate(context.Background(), "chest pain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID == "" {
		t.Error("expected a generated case ID")
	}
	if c.Name != "Margaret Chen" {
		t.Errorf("name = %q", c.Name)
	}
	if c.Age != 62 {
		t.Errorf("age = %d, want 62", c.Age)
	}
	if c.Diagnosis != "Acute myocardial infarction" {
		t.Errorf("diagnosis = %q", c.Diagnosis)
	}
	if c.Vitals.HeartRate != "104 bpm" {
		t.Errorf("heart rate = %q", c.Vitals.HeartRate)
	}
	if len(c.Differentials) != 3 {
		t.Errorf("differentials = %v", c.Differentials)
	}
}

func TestGenerate_TopicInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validCaseJSON)},
	)
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), "severe headache")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "severe headache") {
		t.Errorf("prompt missing topic: %q", msg)
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "patient-case" {
		t.Error("expected the patient-case schema on the request")
	}
}

func TestGenerate_ProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), "chest pain")
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %v", err)
	}
	// One attempt only.
	if mock.CallCount() != 1 {
		t.Fatalf("expected exactly 1 LLM call, got %d", mock.CallCount())
	}
}

func TestGenerate_InvalidSchemaFails(t *testing.T) {
	// Missing almost every required field.
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("schema validation failed")}},
	)
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), "chest pain")
	if err == nil {
		t.Fatal("expected error for invalid response")
	}
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestRandomTopic_Uniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	seen := map[string]int{}
	const draws = 12000
	for i := 0; i < draws; i++ {
		seen[RandomTopic(rng)]++
	}

	if len(seen) != TopicCount() {
		t.Fatalf("saw %d distinct topics, want %d", len(seen), TopicCount())
	}
	expected := draws / TopicCount()
	for topic, n := range seen {
		if n < expected/2 || n > expected*2 {
			t.Errorf("topic %q drawn %d times, expected near %d", topic, n, expected)
		}
	}
}

func TestRandomTopic_Deterministic(t *testing.T) {
	a := rand.New(rand.NewPCG(7, 7))
	b := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 50; i++ {
		if ta, tb := RandomTopic(a), RandomTopic(b); ta != tb {
			t.Fatalf("draw %d diverged: %q vs %q", i, ta, tb)
		}
	}
}
