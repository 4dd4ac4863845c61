package patient

import "github.com/avyukth/medsim/internal/llm"

// CaseSchema defines the JSON schema for LLM case generation responses.
var CaseSchema = &llm.Schema{
	Name:        "patient-case",
	Description: "A complete synthetic patient case for clinical training",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "Full patient name, plausible for the demographics",
			},
			"age": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     100,
				"description": "Patient age in years",
			},
			"gender": map[string]any{
				"type":        "string",
				"enum":        []any{"male", "female"},
				"description": "Patient gender",
			},
			"chief_complaint": map[string]any{
				"type":        "string",
				"description": "Presenting complaint in the patient's own words",
			},
			"history": map[string]any{
				"type":        "string",
				"description": "Narrative history of present illness: onset, character, timing, modifying factors, associated symptoms",
			},
			"past_conditions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Past medical conditions. Empty array if none.",
			},
			"medications": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Current medications with doses. Empty array if none.",
			},
			"allergies": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Known allergies. Empty array if none.",
			},
			"family_history": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Relevant family history. Empty array if none.",
			},
			"social_history": map[string]any{
				"type":        "string",
				"description": "Smoking, alcohol, occupation, living situation",
			},
			"vitals": map[string]any{
				"type":        "object",
				"description": "Vital signs consistent with the diagnosis, as display-ready strings with units",
				"properties": map[string]any{
					"temperature":       map[string]any{"type": "string", "description": "e.g. 38.2 C"},
					"heart_rate":        map[string]any{"type": "string", "description": "e.g. 104 bpm"},
					"blood_pressure":    map[string]any{"type": "string", "description": "e.g. 142/88 mmHg"},
					"respiratory_rate":  map[string]any{"type": "string", "description": "e.g. 22/min"},
					"oxygen_saturation": map[string]any{"type": "string", "description": "e.g. 94% on room air"},
				},
				"required": []any{"temperature", "heart_rate", "blood_pressure", "respiratory_rate", "oxygen_saturation"},
			},
			"exam_findings": map[string]any{
				"type":        "string",
				"description": "Physical exam findings narrative covering the relevant systems",
			},
			"diagnosis": map[string]any{
				"type":        "string",
				"description": "The correct diagnosis, hidden from the student until submission",
			},
			"differentials": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 reasonable differential diagnoses",
			},
			"recommended_tests": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Tests a clinician would order to confirm the diagnosis",
			},
			"red_flags": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Warning signs the student should not miss",
			},
			"personality": map[string]any{
				"type":        "string",
				"description": "How the patient communicates, e.g. 'anxious and talkative'",
			},
		},
		"required": []any{
			"name", "age", "gender", "chief_complaint", "history",
			"past_conditions", "medications", "allergies", "family_history",
			"social_history", "vitals", "exam_findings", "diagnosis",
			"differentials", "recommended_tests", "red_flags", "personality",
		},
		"additionalProperties": false,
	},
}
