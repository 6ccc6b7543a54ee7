package questiongen

import "fmt"

// Validator inspects a generated question and reports the first problem found.
type Validator interface {
	// Name identifies the validator in events and error messages.
	Name() string

	// Validate returns nil when the question passes, or a *ValidationError
	// describing the failure.
	Validate(q *Question, input GenerateInput) error
}

// ValidationError describes a single validation failure.
type ValidationError struct {
	// Validator is the name of the validator that rejected the question.
	Validator string

	// Message describes what was wrong.
	Message string

	// Retryable indicates whether regenerating the question could fix the
	// failure. Structural problems are retryable; a base question with no
	// usable content is not.
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Validator, e.Message)
}
