// Package document renders generated questions into a tagged text form and
// writes them to a DOCX file.
package document

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizforge/internal/questiongen"
)

// Render converts a question into its tagged line representation. Each field
// becomes an @tag line; options use @option, with @@option marking the
// correct one. Multi-line question text keeps its line breaks.
func Render(q *questiongen.Question) []string {
	var lines []string

	lines = append(lines, "@title "+q.Title)
	lines = append(lines, "@description "+q.Description)
	lines = append(lines, "")
	lines = append(lines, "@question "+q.Text)
	lines = append(lines, "@instruction "+q.Instruction)
	lines = append(lines, "@difficulty "+string(q.Difficulty))
	lines = append(lines, fmt.Sprintf("@Order %d", q.Order))

	for _, opt := range q.Options {
		if opt == q.CorrectOption {
			lines = append(lines, "@@option "+opt)
		} else {
			lines = append(lines, "@option "+opt)
		}
	}

	lines = append(lines, "@explanation "+q.Explanation)
	lines = append(lines, "@subject "+q.Subject)
	lines = append(lines, "@unit "+q.Unit)
	lines = append(lines, "@topic "+q.Topic)
	lines = append(lines, fmt.Sprintf("@plusmarks %d", q.PlusMarks))

	// Multi-line tag values become individual document lines.
	var flat []string
	for _, line := range lines {
		flat = append(flat, strings.Split(line, "\n")...)
	}
	return flat
}
