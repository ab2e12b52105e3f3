package imagegen

import (
	"context"
	"strings"
	"sync"
)

// MockSource is a test double returning scripted results per prompt.
// Unscripted prompts get a tiny placeholder data URI.
type MockSource struct {
	mu      sync.Mutex
	results map[string]string
	errs    map[string]error
	Calls   []string
}

func NewMockSource() *MockSource {
	return &MockSource{
		results: make(map[string]string),
		errs:    make(map[string]error),
	}
}

// SetResult scripts the data URI returned for prompts containing key.
func (m *MockSource) SetResult(key, uri string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[key] = uri
}

// SetError scripts a failure for prompts containing key.
func (m *MockSource) SetError(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[key] = err
}

func (m *MockSource) Generate(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, prompt)
	for key, err := range m.errs {
		if containsFold(prompt, key) {
			return "", err
		}
	}
	for key, uri := range m.results {
		if containsFold(prompt, key) {
			return uri, nil
		}
	}
	return DataURI("image/png", []byte{0x89, 0x50, 0x4E, 0x47}), nil
}

func (m *MockSource) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
