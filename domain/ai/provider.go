// Package ai defines the boundary to the external AI inference backend.
package ai

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Nether404/theWebKnot-sub006/domain/request"
	"github.com/Nether404/theWebKnot-sub006/domain/wizard"
)

// Provider is the AI backend client. Implementations map transport and
// protocol failures onto the request error taxonomy so the orchestrator
// can decide between surfacing and falling back.
type Provider interface {
	// Name returns the provider identifier.
	Name() string

	// Generate performs one request/response inference call. A returned
	// error is always a *request.Error.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)

	// Available checks if the provider is reachable and configured.
	Available(ctx context.Context) bool
}

// GenerateRequest carries one inference call.
type GenerateRequest struct {
	// Operation selects the expected result shape.
	Operation request.Operation `json:"operation"`

	// Prompt is the free-text payload.
	Prompt string `json:"prompt,omitempty"`

	// Selection is the structured payload, when present.
	Selection *wizard.Selection `json:"selection,omitempty"`

	// Model overrides the configured default model.
	Model string `json:"model,omitempty"`

	// Temperature controls randomness.
	Temperature float64 `json:"temperature,omitempty"`

	// MaxOutputTokens bounds the generated output.
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

// GenerateResponse is a structured success payload.
type GenerateResponse struct {
	// Content is the operation-shaped result body.
	Content json.RawMessage `json:"content"`

	// Model is the model that served the call.
	Model string `json:"model"`

	// Usage contains token accounting.
	Usage Usage `json:"usage"`

	// Latency is the request duration.
	Latency time.Duration `json:"latency"`
}

// Usage represents token usage information.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}
