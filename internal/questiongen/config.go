package questiongen

// Config controls question generation.
type Config struct {
	// Validators run against each generated question, in order. The first
	// failure rejects the question.
	Validators []Validator

	// MaxAttempts is how many times a single question is regenerated after
	// a retryable validation failure before giving up.
	MaxAttempts int

	// MaxTokens caps the LLM completion size per question.
	MaxTokens int

	// Temperature for the LLM request. Variant generation wants some
	// variety, so the default is above zero.
	Temperature float64
}

// DefaultConfig returns the generation defaults: structural, curriculum and
// image-reference validation, two attempts per question.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&CurriculumValidator{},
			&ImageRefValidator{},
		},
		MaxAttempts: 2,
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}
