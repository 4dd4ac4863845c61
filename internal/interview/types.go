package interview

// Turn is one completed exchange in the patient interview.
type Turn struct {
	Question string
	Answer   string

	// RevealedFacts are the clinically relevant facts this answer
	// disclosed, as labeled by the LLM.
	RevealedFacts []string

	// Tone is the patient's emotional register for this answer:
	// calm, anxious, irritable, confused, or in-pain.
	Tone string
}

// replyOutput is the raw LLM response before it becomes a Turn.
type replyOutput struct {
	Response      string   `json:"response"`
	RevealedFacts []string `json:"revealed_facts"`
	Tone          string   `json:"tone"`
}
