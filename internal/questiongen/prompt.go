package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizforge/internal/curriculum"
)

const systemPrompt = `You are an expert educational content creator generating assessment questions.

Rules:
- Generate ONE new question that is exactly the same type as the given base question.
- Do not change the mathematical concept. Only change surface details such as names, objects, and numbers.
- The correct answer's solution method must match the base question's method.
- Keep LaTeX math notation unchanged.
- Preserve any image references in ![](url) format exactly as they appear in the base question.
- Produce exactly the requested number of options, with exactly one correct option, and list the correct option's text verbatim in the correct_option field.
- The subject, unit, and topic fields must each match EXACTLY one line of the curriculum list, split on " > ".
- plus_marks is the score for a correct answer, normally 1.`

// buildUserMessage constructs the user message for one generation request.
func buildUserMessage(input GenerateInput) string {
	optionCount := input.OptionCount
	if optionCount == 0 {
		optionCount = 4
	}

	var b strings.Builder

	b.WriteString("Base Question:\n")
	b.WriteString(strings.TrimSpace(input.Base))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Question number: %d\n", input.Order)
	fmt.Fprintf(&b, "Number of options required: %d\n", optionCount)

	b.WriteString("\nThe subject, unit, and topic must come from this curriculum list:\n")
	b.WriteString(curriculum.PromptList())

	return b.String()
}
