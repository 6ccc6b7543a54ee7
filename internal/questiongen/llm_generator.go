package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/quizforge/internal/llm"
)

// LLMGenerator generates question variants through an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewLLMGenerator creates a generator backed by the given provider.
func NewLLMGenerator(provider llm.Provider, config Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: config}
}

// questionOutput mirrors the JSON schema the LLM responds with.
type questionOutput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Question      string   `json:"question"`
	Instruction   string   `json:"instruction"`
	Difficulty    string   `json:"difficulty"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
	Explanation   string   `json:"explanation"`
	Subject       string   `json:"subject"`
	Unit          string   `json:"unit"`
	Topic         string   `json:"topic"`
	PlusMarks     int      `json:"plus_marks"`
}

// Generate produces one validated question variant. Retryable validation
// failures trigger regeneration up to the configured attempt limit; the last
// failure is returned when all attempts are exhausted.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	attempts := g.config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		q, err := g.generateOnce(ctx, input)
		if err != nil {
			return nil, err
		}

		if err := g.validate(q, input); err != nil {
			lastErr = err
			var vErr *ValidationError
			if errors.As(err, &vErr) && vErr.Retryable {
				continue
			}
			return nil, err
		}
		return q, nil
	}
	return nil, fmt.Errorf("question rejected after %d attempts: %w", attempts, lastErr)
}

func (g *LLMGenerator) generateOnce(ctx context.Context, input GenerateInput) (*Question, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generating question %d: %w", input.Order, err)
	}

	var out questionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parsing question %d: %w", input.Order, err)
	}

	return &Question{
		Title:         out.Title,
		Description:   out.Description,
		Text:          out.Question,
		Instruction:   out.Instruction,
		Difficulty:    Difficulty(out.Difficulty),
		Order:         input.Order,
		Options:       out.Options,
		CorrectOption: out.CorrectOption,
		Explanation:   out.Explanation,
		Subject:       out.Subject,
		Unit:          out.Unit,
		Topic:         out.Topic,
		PlusMarks:     out.PlusMarks,
	}, nil
}

func (g *LLMGenerator) validate(q *Question, input GenerateInput) error {
	for _, v := range g.config.Validators {
		if err := v.Validate(q, input); err != nil {
			return err
		}
	}
	return nil
}
