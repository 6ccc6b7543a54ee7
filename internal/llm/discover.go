package llm

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// probeTimeout bounds the Ollama reachability check. The probe hits the
// server root, which answers instantly when Ollama is up.
const probeTimeout = 2 * time.Second

// Discover picks a provider when none was selected explicitly: the local
// Ollama server if it responds, otherwise the first cloud provider with an
// API key configured. Falls back to ollama so the connection error surfaces
// at request time with a useful message.
func (c Config) Discover(ctx context.Context) Config {
	if ollamaReachable(ctx, c.Ollama.BaseURL) {
		c.Provider = "ollama"
		return c
	}

	switch {
	case c.OpenAI.APIKey != "":
		c.Provider = "openai"
	case c.Anthropic.APIKey != "":
		c.Provider = "anthropic"
	case c.Gemini.APIKey != "":
		c.Provider = "gemini"
	default:
		c.Provider = "ollama"
	}
	return c
}

func ollamaReachable(ctx context.Context, baseURL string) bool {
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	// The OpenAI-compatible endpoint lives under /v1; the health check is
	// the server root.
	root := strings.TrimSuffix(strings.TrimRight(baseURL, "/"), "/v1")

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, root, nil)
	if err != nil {
		return false
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
