package document

import (
	"strings"
	"testing"

	"github.com/abhisek/quizforge/internal/questiongen"
)

func sampleQuestion() *questiongen.Question {
	return &questiongen.Question{
		Title:         "Unit Rates",
		Description:   "Solve a unit rate word problem",
		Text:          "A machine fills 24 bottles in 3 minutes. How many per minute?\n(A) 6\n(B) 8",
		Instruction:   "Choose the correct option.",
		Difficulty:    questiongen.DifficultyEasy,
		Order:         1,
		Options:       []string{"6", "8"},
		CorrectOption: "8",
		Explanation:   "24 / 3 = 8.",
		Subject:       "Quantitative Math",
		Unit:          "Problem Solving",
		Topic:         "Numbers and Operations",
		PlusMarks:     1,
	}
}

func TestRender(t *testing.T) {
	lines := Render(sampleQuestion())
	text := strings.Join(lines, "\n")

	for _, want := range []string{
		"@title Unit Rates",
		"@description Solve a unit rate word problem",
		"@question A machine fills 24 bottles in 3 minutes. How many per minute?",
		"@instruction Choose the correct option.",
		"@difficulty easy",
		"@Order 1",
		"@option 6",
		"@@option 8",
		"@explanation 24 / 3 = 8.",
		"@subject Quantitative Math",
		"@unit Problem Solving",
		"@topic Numbers and Operations",
		"@plusmarks 1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}

	if strings.Contains(text, "@option 8\n") {
		t.Error("correct option must use @@option, not @option")
	}
}

func TestRender_MultiLineQuestion(t *testing.T) {
	lines := Render(sampleQuestion())

	// The (A)/(B) lines of the stem become their own document lines.
	found := false
	for _, line := range lines {
		if line == "(A) 6" {
			found = true
		}
	}
	if !found {
		t.Error("multi-line question text should split into separate lines")
	}
}
