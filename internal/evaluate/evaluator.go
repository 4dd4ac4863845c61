package evaluate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avyukth/medsim/internal/llm"
)

// Config holds configuration for the Evaluator.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Grading runs cool so identical
// encounters grade consistently.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}

// Evaluator grades diagnosis submissions. It is stateless; every call
// carries the full encounter in the Input.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewEvaluator creates an Evaluator with the given provider and config.
func NewEvaluator(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// Evaluate grades one submitted diagnosis against the encounter.
func (e *Evaluator) Evaluate(ctx context.Context, in Input) (*Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "evaluation")

	userMsg, err := buildEvaluationMessage(in)
	if err != nil {
		return nil, fmt.Errorf("build evaluation prompt: %w", err)
	}

	req := llm.Request{
		System: evaluationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM evaluation failed: %w", err)
	}

	var ev Evaluation
	if err := json.Unmarshal(resp.Content, &ev); err != nil {
		return nil, fmt.Errorf("parse evaluation response: %w", err)
	}

	return &ev, nil
}
