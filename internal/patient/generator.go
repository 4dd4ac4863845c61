package patient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/avyukth/medsim/internal/llm"
)

// Generator produces patient cases using the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// caseOutput is the raw LLM response before it becomes a Case.
type caseOutput struct {
	Name             string     `json:"name"`
	Age              int        `json:"age"`
	Gender           string     `json:"gender"`
	ChiefComplaint   string     `json:"chief_complaint"`
	History          string     `json:"history"`
	PastConditions   []string   `json:"past_conditions"`
	Medications      []string   `json:"medications"`
	Allergies        []string   `json:"allergies"`
	FamilyHistory    []string   `json:"family_history"`
	SocialHistory    string     `json:"social_history"`
	Vitals           VitalSigns `json:"vitals"`
	ExamFindings     string     `json:"exam_findings"`
	Diagnosis        string     `json:"diagnosis"`
	Differentials    []string   `json:"differentials"`
	RecommendedTests []string   `json:"recommended_tests"`
	RedFlags         []string   `json:"red_flags"`
	Personality      string     `json:"personality"`
}

// Generate produces a single patient case for the given topic. A schema
// validation failure is a generation failure; there is no retry or repair.
func (g *Generator) Generate(ctx context.Context, topic string) (*Case, error) {
	ctx = llm.WithPurpose(ctx, "case-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCaseMessage(topic)},
		},
		Schema:      CaseSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("case generation failed: %w", err)
	}

	var raw caseOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse case response: %w", err)
	}

	return &Case{
		ID:               uuid.New().String(),
		Name:             raw.Name,
		Age:              raw.Age,
		Gender:           raw.Gender,
		ChiefComplaint:   raw.ChiefComplaint,
		History:          raw.History,
		PastConditions:   raw.PastConditions,
		Medications:      raw.Medications,
		Allergies:        raw.Allergies,
		FamilyHistory:    raw.FamilyHistory,
		SocialHistory:    raw.SocialHistory,
		Vitals:           raw.Vitals,
		ExamFindings:     raw.ExamFindings,
		Diagnosis:        raw.Diagnosis,
		Differentials:    raw.Differentials,
		RecommendedTests: raw.RecommendedTests,
		RedFlags:         raw.RedFlags,
		Personality:      raw.Personality,
	}, nil
}
