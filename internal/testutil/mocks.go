package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"codeberg.org/snonux/wordexplorer/internal/completion"
)

// MockProvider mocks a completion provider. Responses and Errors are keyed by
// a substring of the prompt; keys used in one test must not overlap.
// It is safe for concurrent use.
type MockProvider struct {
	Responses map[string]string
	Errors    map[string]error
	Delay     time.Duration

	mu    sync.Mutex
	calls []completion.Request
}

// Complete records the request and answers from the configured maps
func (m *MockProvider) Complete(ctx context.Context, req completion.Request) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	for key, err := range m.Errors {
		if strings.Contains(req.Prompt, key) {
			return "", err
		}
	}

	for key, resp := range m.Responses {
		if strings.Contains(req.Prompt, key) {
			return resp, nil
		}
	}

	// Default response
	return fmt.Sprintf("mock response from %s", req.Model), nil
}

// Name returns the provider name
func (m *MockProvider) Name() string {
	return "mock"
}

// Calls returns a copy of all recorded requests
func (m *MockProvider) Calls() []completion.Request {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]completion.Request, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallCount returns the number of recorded requests
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// NewMockClient returns a completion client backed by the mock provider
// with the default configuration and no timeout
func NewMockClient(m *MockProvider) *completion.Client {
	config := completion.DefaultConfig()
	config.Timeout = 0
	return completion.NewClient(m, config)
}
