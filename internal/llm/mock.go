package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for testing. It also serves as
// the "no AI" placeholder mode of the CLI. It returns canned responses in
// FIFO order and records all requests.
type MockProvider struct {
	mu         sync.Mutex
	responses  []MockResponse
	synthesize bool
	Calls      []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// NewPlaceholderProvider creates a MockProvider for placeholder mode: when
// its queue is empty it synthesizes a deterministic question from the
// request instead of failing, so the pipeline runs without any model.
func NewPlaceholderProvider() *MockProvider {
	return &MockProvider{synthesize: true}
}

// Generate returns the next canned response. With an empty queue it
// synthesizes a placeholder response, or returns ErrProviderUnavailable for
// plain mocks.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		if m.synthesize {
			return placeholderResponse(req), nil
		}
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
