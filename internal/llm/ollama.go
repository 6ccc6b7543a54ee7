package llm

const defaultOllamaBaseURL = "http://localhost:11434/v1"

// OllamaProvider targets a locally hosted Ollama server through its
// OpenAI-compatible endpoint, so the underlying SDK is reused. Ollama
// ignores the API key, but the SDK requires one to be set.
type OllamaProvider struct {
	*OpenAIProvider
}

// NewOllamaProvider creates a provider targeting a local Ollama server.
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "llama3"
	}

	oaiCfg := OpenAIConfig{
		APIKey:  "ollama",
		Model:   model,
		BaseURL: baseURL,
	}

	inner, err := newOpenAIProviderRaw(oaiCfg)
	if err != nil {
		return nil, err
	}

	return &OllamaProvider{OpenAIProvider: inner}, nil
}
