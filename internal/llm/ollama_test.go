package llm

import "testing"

func TestNewOllamaProvider_Defaults(t *testing.T) {
	p, err := NewOllamaProvider(OllamaConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "llama3" {
		t.Fatalf("expected default model llama3, got %q", p.ModelID())
	}
}

func TestNewOllamaProvider_CustomModel(t *testing.T) {
	p, err := NewOllamaProvider(OllamaConfig{Model: "mistral"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mistral" {
		t.Fatalf("expected mistral, got %q", p.ModelID())
	}
}
