package patient

// Config controls the behavior of the Generator.
type Config struct {
	// MaxTokens is the token budget for the LLM response. Cases are
	// long-form, so this is larger than the interview budget.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.8,
	}
}
