package interview

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions is the maximum number of prior questions
	// to include in the prompt for deduplication.
	MaxPriorQuestions int

	// MaxRecentAnswers is the maximum number of recent answers
	// to include in the prompt for continuity.
	MaxRecentAnswers int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&RepetitionValidator{},
		},
		MaxTokens:         400,
		Temperature:       0.7,
		MaxPriorQuestions: 10,
		MaxRecentAnswers:  3,
	}
}
