package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/avyukth/medsim/internal/llm"
	"github.com/avyukth/medsim/internal/patient"
)

// Handler runs the patient interview for one case. The transcript is
// append-only; revealed facts accumulate as a deduplicated union in
// first-seen order. A new case gets a new Handler. Methods are safe for
// concurrent use.
type Handler struct {
	provider llm.Provider
	config   Config
	patient  *patient.Case

	mu          sync.Mutex
	turns       []Turn
	revealed    []string
	revealedSet map[string]struct{}
}

// NewHandler creates an interview handler for the given case.
func NewHandler(provider llm.Provider, c *patient.Case, cfg Config) *Handler {
	return &Handler{
		provider:    provider,
		config:      cfg,
		patient:     c,
		revealedSet: make(map[string]struct{}),
	}
}

// Ask sends one question to the simulated patient and appends the completed
// turn to the transcript. Only the HistoryWindow most recent prior turns
// are replayed to the LLM.
func (h *Handler) Ask(ctx context.Context, question string) (*Turn, error) {
	ctx = llm.WithPurpose(ctx, "interview")

	h.mu.Lock()
	msgs := h.buildMessages(question)
	h.mu.Unlock()

	req := llm.Request{
		System:      buildPersonaPrompt(h.patient),
		Messages:    msgs,
		Schema:      ResponseSchema,
		MaxTokens:   h.config.MaxTokens,
		Temperature: h.config.Temperature,
	}

	resp, err := h.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("patient reply failed: %w", err)
	}

	var raw replyOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse patient reply: %w", err)
	}

	turn := Turn{
		Question:      question,
		Answer:        raw.Response,
		RevealedFacts: raw.RevealedFacts,
		Tone:          raw.Tone,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = append(h.turns, turn)

	for _, f := range raw.RevealedFacts {
		if _, seen := h.revealedSet[f]; seen {
			continue
		}
		h.revealedSet[f] = struct{}{}
		h.revealed = append(h.revealed, f)
	}

	return &turn, nil
}

// buildMessages assembles the rolling context window plus the new question.
// Callers hold h.mu.
func (h *Handler) buildMessages(question string) []llm.Message {
	window := h.turns
	if len(window) > HistoryWindow {
		window = window[len(window)-HistoryWindow:]
	}

	msgs := make([]llm.Message, 0, len(window)*2+1)
	for _, t := range window {
		msgs = append(msgs,
			llm.Message{Role: llm.RoleUser, Content: t.Question},
			llm.Message{Role: llm.RoleAssistant, Content: t.Answer},
		)
	}
	return append(msgs, llm.Message{Role: llm.RoleUser, Content: question})
}

// Turns returns a copy of the full transcript in order.
func (h *Handler) Turns() []Turn {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Turn(nil), h.turns...)
}

// RevealedFacts returns the deduplicated union of revealed facts in
// first-seen order.
func (h *Handler) RevealedFacts() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.revealed...)
}
