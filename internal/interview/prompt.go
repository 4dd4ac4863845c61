package interview

import (
	"fmt"
	"strings"

	"github.com/avyukth/medsim/internal/patient"
)

// adultAge is the single threshold separating the two speech registers.
const adultAge = 18

// buildPersonaPrompt constructs the system prompt that puts the LLM in
// character as the patient. The full case profile rides in the system
// prompt; the conversation window rides in the messages.
func buildPersonaPrompt(c *patient.Case) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are role-playing a patient named %s, a %d-year-old %s, being interviewed by a medical student.\n\n",
		c.Name, c.Age, c.Gender)

	b.WriteString("Your profile:\n")
	fmt.Fprintf(&b, "- Chief complaint: %s\n", c.ChiefComplaint)
	fmt.Fprintf(&b, "- History: %s\n", c.History)
	fmt.Fprintf(&b, "- Past conditions: %s\n", listOrNone(c.PastConditions))
	fmt.Fprintf(&b, "- Medications: %s\n", listOrNone(c.Medications))
	fmt.Fprintf(&b, "- Allergies: %s\n", listOrNone(c.Allergies))
	fmt.Fprintf(&b, "- Family history: %s\n", listOrNone(c.FamilyHistory))
	fmt.Fprintf(&b, "- Social history: %s\n", c.SocialHistory)
	fmt.Fprintf(&b, "- Personality: %s\n", c.Personality)

	b.WriteString(`
Rules:
- Stay in character at all times. Answer in first person as the patient.
- Only share information the question actually asks about. Do not volunteer the whole history at once.
- You do not know your diagnosis. Never name it or use clinical terminology for it.
- If asked something outside your profile, improvise a consistent, unremarkable answer.
- Let your personality and how unwell you feel color every reply.
`)

	if c.Age < adultAge {
		b.WriteString("- You are a minor: use simple, childlike wording and occasionally look to a parent for reassurance.\n")
	} else {
		b.WriteString("- Use everyday adult language, not medical vocabulary.\n")
	}

	return b.String()
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
