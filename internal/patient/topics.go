package patient

import "math/rand/v2"

// fallbackTopics is the fixed pool drawn from when the student does not
// request a topic. Common presentations across body systems and ages.
var fallbackTopics = []string{
	"chest pain",
	"shortness of breath",
	"abdominal pain",
	"severe headache",
	"fever in a child",
	"joint pain and swelling",
	"dizziness and fainting",
	"persistent cough",
	"unexplained weight loss",
	"back pain",
	"fatigue and weakness",
	"skin rash",
}

// RandomTopic draws a topic uniformly from the fallback pool.
func RandomTopic(rng *rand.Rand) string {
	return fallbackTopics[rng.IntN(len(fallbackTopics))]
}

// TopicCount reports the size of the fallback pool.
func TopicCount() int {
	return len(fallbackTopics)
}
