package questiongen

import (
	"fmt"

	"github.com/abhisek/quizforge/internal/curriculum"
)

// CurriculumValidator checks that the question's subject, unit and topic form
// a known curriculum entry.
type CurriculumValidator struct{}

func (v *CurriculumValidator) Name() string { return "curriculum" }

func (v *CurriculumValidator) Validate(q *Question, _ GenerateInput) error {
	if !curriculum.Contains(q.Subject, q.Unit, q.Topic) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%q > %q > %q is not a curriculum entry", q.Subject, q.Unit, q.Topic),
			Retryable: true,
		}
	}
	return nil
}
