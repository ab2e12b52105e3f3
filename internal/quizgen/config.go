package quizgen

// Config tunes the generation pipeline.
type Config struct {
	// QuestionCount is how many questions one request produces.
	QuestionCount int

	// OptionCount is the answer options per question. The prompt contract
	// and validation both enforce this exact cardinality.
	OptionCount int

	// Concurrency bounds the simultaneous image enrichment calls.
	Concurrency int

	// MaxTokens caps the model reply length per call.
	MaxTokens int

	// Temperature for question generation. Feedback always runs at a
	// lower temperature for consistency.
	Temperature float64
}

// DefaultConfig returns the pipeline tuning used in production.
func DefaultConfig() Config {
	return Config{
		QuestionCount: 3,
		OptionCount:   3,
		Concurrency:   4,
		MaxTokens:     2048,
		Temperature:   0.7,
	}
}
