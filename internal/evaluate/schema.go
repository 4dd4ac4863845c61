package evaluate

import "github.com/avyukth/medsim/internal/llm"

// EvaluationSchema defines the JSON schema for diagnosis evaluation responses.
var EvaluationSchema = &llm.Schema{
	Name:        "diagnosis-evaluation",
	Description: "Structured grading of a student's diagnosis and interview",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the submitted diagnosis matches the actual diagnosis, allowing synonyms and equivalent clinical terms",
			},
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall encounter score: diagnostic accuracy and information gathering quality",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "2-4 sentences of narrative feedback addressed to the student",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "What the student did well. Empty array if nothing stands out.",
			},
			"improvements": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concrete things to do differently next time",
			},
			"missed_findings": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Important findings in the case the student never uncovered",
			},
		},
		"required":             []any{"correct", "score", "feedback", "strengths", "improvements", "missed_findings"},
		"additionalProperties": false,
	},
}
