// Package input collects base questions, interactively or from a file.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// BaseQuestion is one base question, with optional image references already
// appended to the text.
type BaseQuestion struct {
	Text string
}

// InteractiveReader prompts on out and reads base questions from in, one
// multi-line block at a time.
type InteractiveReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewInteractiveReader creates a reader over the given streams.
func NewInteractiveReader(in io.Reader, out io.Writer) *InteractiveReader {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &InteractiveReader{scanner: sc, out: out}
}

// Read collects one base question. Lines accumulate until a blank line ends
// the block or "done" ends the session. After the question text, the reader
// asks for an optional image URL or file path and appends it as a ![](ref)
// reference. Returns io.EOF when the user is finished.
func (r *InteractiveReader) Read() (*BaseQuestion, error) {
	fmt.Fprintln(r.out, "Enter the base question (finish with a blank line, or type 'done' to stop):")

	var lines []string
	for r.scanner.Scan() {
		line := r.scanner.Text()

		if strings.TrimSpace(strings.ToLower(line)) == "done" {
			if len(lines) == 0 {
				return nil, io.EOF
			}
			break
		}
		if strings.TrimSpace(line) == "" {
			if len(lines) == 0 {
				continue
			}
			break
		}
		lines = append(lines, line)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if len(lines) == 0 {
		return nil, io.EOF
	}

	text := strings.Join(lines, "\n")

	fmt.Fprintln(r.out, "Image URL or file path for this question (blank for none):")
	if r.scanner.Scan() {
		if ref := strings.TrimSpace(r.scanner.Text()); ref != "" {
			text += "\n\n![](" + ref + ")"
		}
	}

	return &BaseQuestion{Text: text}, nil
}
