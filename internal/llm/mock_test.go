package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestMockProvider_EmptyQueue(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestPlaceholderProvider_Synthesizes(t *testing.T) {
	p := NewPlaceholderProvider()

	msg := "Base Question:\nPick one.\n(A) x\n(B) y\n(C) z\n\n" +
		"![](https://example.com/fig.png)\n\n" +
		"Question number: 3\nNumber of options required: 3\n"

	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: msg}},
	})
	if err != nil {
		t.Fatalf("placeholder generation failed: %v", err)
	}

	var out struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectOption string   `json:"correct_option"`
		Subject       string   `json:"subject"`
		PlusMarks     int      `json:"plus_marks"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		t.Fatalf("placeholder content is not valid JSON: %v", err)
	}

	if len(out.Options) != 3 {
		t.Errorf("expected 3 options, got %d", len(out.Options))
	}
	if out.CorrectOption != out.Options[0] {
		t.Errorf("correct option %q not the first option %q", out.CorrectOption, out.Options[0])
	}
	if !strings.Contains(out.Question, "![](https://example.com/fig.png)") {
		t.Error("image reference from the request was not preserved")
	}
	if out.Subject == "" || out.PlusMarks < 1 {
		t.Errorf("placeholder fields incomplete: subject=%q plus_marks=%d", out.Subject, out.PlusMarks)
	}
}

func TestPlaceholderProvider_Defaults(t *testing.T) {
	p := NewPlaceholderProvider()

	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Base Question:\nSolve for x: 3x = 12"}},
	})
	if err != nil {
		t.Fatalf("placeholder generation failed: %v", err)
	}

	var out struct {
		Options []string `json:"options"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Options) != 4 {
		t.Errorf("expected 4 options by default, got %d", len(out.Options))
	}
}

func TestNewProvider_MockGenerates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}

	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Base Question:\nWhat is 2+2?"}},
	})
	if err != nil {
		t.Fatalf("factory-built mock must generate, got %v", err)
	}
	if !json.Valid(resp.Content) {
		t.Error("expected valid JSON content")
	}
}
