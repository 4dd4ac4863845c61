package patient

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a medical case author creating realistic patient cases for clinical training.

Rules:
- Generate a single, internally consistent patient case for the given condition or topic.
- The history, vitals, and exam findings must all point toward the diagnosis without stating it outright.
- Vitals are display-ready strings with units (e.g. "38.2 C", "104 bpm", "142/88 mmHg").
- Include realistic negatives: not every field should scream the diagnosis.
- The chief complaint is in the patient's own words, not clinical language.
- Demographics must fit the condition (age, gender, risk factors).
- Differentials are conditions a reasonable clinician would consider, not exotic zebras.
- Write exam findings as a clinician would chart them.
- The personality should be specific enough to role-play: temperament plus speaking style.`

// buildCaseMessage constructs the user message for case generation.
func buildCaseMessage(topic string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a patient case for: %s\n", topic)
	b.WriteString("\nRespond with the full case as a single JSON object.")
	return b.String()
}
