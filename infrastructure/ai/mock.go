package ai

import (
	"context"
	"encoding/json"
	"time"

	domainai "github.com/Nether404/theWebKnot-sub006/domain/ai"
)

// MockProvider is a scriptable ai.Provider for tests.
type MockProvider struct {
	// GenerateFunc is called when Generate is invoked.
	GenerateFunc func(ctx context.Context, req domainai.GenerateRequest) (domainai.GenerateResponse, error)

	// AvailableFunc is called when Available is invoked.
	AvailableFunc func(ctx context.Context) bool

	// Calls counts Generate invocations.
	Calls int
}

// NewMockProvider creates a mock with a canned success response.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		GenerateFunc: func(_ context.Context, req domainai.GenerateRequest) (domainai.GenerateResponse, error) {
			return domainai.GenerateResponse{
				Content: json.RawMessage(`{"mock":true}`),
				Model:   req.Model,
				Usage: domainai.Usage{
					PromptTokens:     10,
					CompletionTokens: 5,
					TotalTokens:      15,
				},
				Latency: 10 * time.Millisecond,
			}, nil
		},
		AvailableFunc: func(_ context.Context) bool { return true },
	}
}

// Name returns the provider identifier.
func (m *MockProvider) Name() string { return "mock" }

// Generate invokes GenerateFunc.
func (m *MockProvider) Generate(ctx context.Context, req domainai.GenerateRequest) (domainai.GenerateResponse, error) {
	m.Calls++
	return m.GenerateFunc(ctx, req)
}

// Available invokes AvailableFunc.
func (m *MockProvider) Available(ctx context.Context) bool {
	if m.AvailableFunc == nil {
		return true
	}
	return m.AvailableFunc(ctx)
}

var _ domainai.Provider = (*MockProvider)(nil)
