package interview

// HistoryWindow is the number of most recent turns replayed to the LLM on
// each question. Older turns are dropped outright, never summarized.
const HistoryWindow = 3

// Config controls the behavior of the Handler.
type Config struct {
	// MaxTokens is the token budget for one patient reply.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.7,
	}
}
