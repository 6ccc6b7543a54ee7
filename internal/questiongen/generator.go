package questiongen

import "context"

// Generator produces one question variant from a base question.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}
