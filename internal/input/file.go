package input

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// questionSeparator splits base questions in an input file.
const questionSeparator = "---"

// ReadFile loads base questions from a text file. Questions are separated by
// a line containing only "---"; blank-only blocks are skipped.
func ReadFile(path string) ([]*BaseQuestion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	questions, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return questions, nil
}

// Parse reads "---"-separated base questions from r.
func Parse(r io.Reader) ([]*BaseQuestion, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var questions []*BaseQuestion
	var block []string

	flush := func() {
		text := strings.TrimSpace(strings.Join(block, "\n"))
		block = nil
		if text != "" {
			questions = append(questions, &BaseQuestion{Text: text})
		}
	}

	for _, line := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == questionSeparator {
			flush()
			continue
		}
		block = append(block, line)
	}
	flush()

	if len(questions) == 0 {
		return nil, fmt.Errorf("no base questions found")
	}
	return questions, nil
}
