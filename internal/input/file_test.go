package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	src := `What is 2+2?
(A) 3
(B) 4
---
Solve for x: 3x = 12

![](fig.png)
---
`
	questions, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if !strings.HasPrefix(questions[0].Text, "What is 2+2?") {
		t.Errorf("unexpected first question %q", questions[0].Text)
	}
	if !strings.Contains(questions[1].Text, "![](fig.png)") {
		t.Errorf("image reference lost: %q", questions[1].Text)
	}
}

func TestParse_SingleQuestionNoSeparator(t *testing.T) {
	questions, err := Parse(strings.NewReader("Only one question here"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse(strings.NewReader("\n---\n\n")); err == nil {
		t.Fatal("expected error for input with no questions")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.txt")
	if err := os.WriteFile(path, []byte("Q1\n---\nQ2"), 0o644); err != nil {
		t.Fatal(err)
	}

	questions, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
