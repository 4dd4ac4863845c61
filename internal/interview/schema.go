package interview

import "github.com/avyukth/medsim/internal/llm"

// ResponseSchema defines the JSON schema for in-character patient replies.
var ResponseSchema = &llm.Schema{
	Name:        "patient-response",
	Description: "One in-character patient reply to an interview question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"response": map[string]any{
				"type":        "string",
				"description": "The patient's spoken reply, in character, first person",
			},
			"revealed_facts": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Clinically relevant facts this reply disclosed. Empty array if none.",
			},
			"tone": map[string]any{
				"type":        "string",
				"enum":        []any{"calm", "anxious", "irritable", "confused", "in-pain"},
				"description": "The patient's emotional register for this reply",
			},
		},
		"required":             []any{"response", "revealed_facts", "tone"},
		"additionalProperties": false,
	},
}
