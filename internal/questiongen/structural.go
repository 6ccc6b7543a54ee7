package questiongen

import (
	"fmt"
	"strings"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 500
	maxQuestionLen    = 4000
	maxExplanationLen = 4000
)

// StructuralValidator checks field presence, option consistency and length
// limits on a generated question.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, input GenerateInput) error {
	if strings.TrimSpace(q.Title) == "" {
		return v.fail("title is empty")
	}
	if strings.TrimSpace(q.Text) == "" {
		return v.fail("question text is empty")
	}
	if strings.TrimSpace(q.Instruction) == "" {
		return v.fail("instruction is empty")
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return v.fail("explanation is empty")
	}

	switch q.Difficulty {
	case DifficultyEasy, DifficultyModerate, DifficultyHard:
	default:
		return v.fail(fmt.Sprintf("unknown difficulty %q", q.Difficulty))
	}

	if len(q.Options) == 0 {
		return v.fail("no options")
	}
	if input.OptionCount > 0 && len(q.Options) != input.OptionCount {
		return v.fail(fmt.Sprintf("expected %d options, got %d", input.OptionCount, len(q.Options)))
	}

	seen := make(map[string]struct{}, len(q.Options))
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return v.fail(fmt.Sprintf("option %d is empty", i+1))
		}
		if _, dup := seen[opt]; dup {
			return v.fail(fmt.Sprintf("duplicate option %q", opt))
		}
		seen[opt] = struct{}{}
	}
	if _, ok := seen[q.CorrectOption]; !ok {
		return v.fail(fmt.Sprintf("correct option %q is not among the options", q.CorrectOption))
	}

	if q.PlusMarks < 1 {
		return v.fail(fmt.Sprintf("plus marks must be at least 1, got %d", q.PlusMarks))
	}

	if len(q.Title) > maxTitleLen {
		return v.fail("title too long")
	}
	if len(q.Description) > maxDescriptionLen {
		return v.fail("description too long")
	}
	if len(q.Text) > maxQuestionLen {
		return v.fail("question text too long")
	}
	if len(q.Explanation) > maxExplanationLen {
		return v.fail("explanation too long")
	}

	return nil
}

func (v *StructuralValidator) fail(msg string) error {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
