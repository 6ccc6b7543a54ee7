package input

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestInteractiveReader_SingleQuestion(t *testing.T) {
	in := strings.NewReader("What is 2+2?\n(A) 3\n(B) 4\n\n\n")
	r := NewInteractiveReader(in, io.Discard)

	q, err := r.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if q.Text != "What is 2+2?\n(A) 3\n(B) 4" {
		t.Errorf("unexpected text %q", q.Text)
	}
}

func TestInteractiveReader_WithImage(t *testing.T) {
	in := strings.NewReader("Look at the figure.\n\nhttps://example.com/fig.png\n")
	r := NewInteractiveReader(in, io.Discard)

	q, err := r.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !strings.HasSuffix(q.Text, "![](https://example.com/fig.png)") {
		t.Errorf("image reference not appended: %q", q.Text)
	}
}

func TestInteractiveReader_Done(t *testing.T) {
	in := strings.NewReader("done\n")
	r := NewInteractiveReader(in, io.Discard)

	_, err := r.Read()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestInteractiveReader_DoneAfterQuestion(t *testing.T) {
	in := strings.NewReader("First question\ndone\n\n")
	r := NewInteractiveReader(in, io.Discard)

	q, err := r.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if q.Text != "First question" {
		t.Errorf("unexpected text %q", q.Text)
	}
}

func TestInteractiveReader_EmptyInput(t *testing.T) {
	r := NewInteractiveReader(strings.NewReader(""), io.Discard)
	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestInteractiveReader_SkipsLeadingBlankLines(t *testing.T) {
	in := strings.NewReader("\n\nActual question\n\n\n")
	r := NewInteractiveReader(in, io.Discard)

	q, err := r.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if q.Text != "Actual question" {
		t.Errorf("unexpected text %q", q.Text)
	}
}
