package session

import "math/rand/v2"

// studyHints is the fixed pool of general interviewing prompts. Hints are
// deliberately not tailored to the active case; they nudge technique, not
// the answer.
var studyHints = [8]string{
	"Ask about the onset: when did the symptoms start, and what was the patient doing?",
	"Characterize the symptom: quality, severity, location, and radiation.",
	"Ask what makes the symptoms better or worse.",
	"Ask about associated symptoms the patient may not have volunteered.",
	"Review the past medical history and current medications.",
	"Ask about family history of similar or related conditions.",
	"Take a social history: smoking, alcohol, occupation, recent travel.",
	"Check the vital signs and consider what pattern they suggest.",
}

// drawHint returns one hint uniformly at random from the pool.
func drawHint(rng *rand.Rand) string {
	return studyHints[rng.IntN(len(studyHints))]
}

// HintCount reports the size of the hint pool.
func HintCount() int {
	return len(studyHints)
}
