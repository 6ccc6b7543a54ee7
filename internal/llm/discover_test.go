package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDiscover_OllamaReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Ollama is running"))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Ollama.BaseURL = srv.URL + "/v1"
	cfg.OpenAI.APIKey = "sk-test"

	got := cfg.Discover(context.Background())
	if got.Provider != "ollama" {
		t.Errorf("expected ollama when the server responds, got %q", got.Provider)
	}
}

func TestDiscover_FallsBackToKeyedProvider(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // unreachable

	cfg := DefaultConfig()
	cfg.Ollama.BaseURL = srv.URL + "/v1"
	cfg.Anthropic.APIKey = "sk-ant-test"

	got := cfg.Discover(context.Background())
	if got.Provider != "anthropic" {
		t.Errorf("expected anthropic fallback, got %q", got.Provider)
	}
}

func TestDiscover_NoKeysKeepsOllama(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	cfg := DefaultConfig()
	cfg.Ollama.BaseURL = srv.URL + "/v1"

	got := cfg.Discover(context.Background())
	if got.Provider != "ollama" {
		t.Errorf("expected ollama fallback, got %q", got.Provider)
	}
}
