package request

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/Nether404/theWebKnot-sub006/domain/wizard"
)

// Request is a single semantic AI request. Requests are created per call
// and discarded once the orchestrator resolves a Result.
type Request struct {
	// Operation selects the request kind.
	Operation Operation `json:"operation"`

	// Prompt is the free-text payload. Required for enhancement and chat;
	// for analysis it is the project description.
	Prompt string `json:"prompt,omitempty"`

	// Selection is the structured payload for analysis and suggestions.
	Selection *wizard.Selection `json:"selection,omitempty"`

	// Identity is the caller identity used for rate limiting. In the
	// absence of an authenticated user this is the installation id.
	Identity string `json:"identity,omitempty"`

	// Privileged callers bypass admission control entirely.
	Privileged bool `json:"privileged,omitempty"`

	// DisableFallback surfaces recoverable errors instead of invoking the
	// deterministic engines.
	DisableFallback bool `json:"disableFallback,omitempty"`
}

// CacheKey derives the deterministic cache key for this request. The same
// operation and payload always hash to the same key; identity and flags
// do not participate.
func (r Request) CacheKey() string {
	h := sha256.New()
	h.Write([]byte(r.Operation))
	h.Write([]byte{0})
	h.Write([]byte(r.Prompt))
	if r.Selection != nil {
		h.Write([]byte{0})
		// Marshal of a struct emits fields in declaration order, so the
		// encoding is stable for identical selections.
		b, err := json.Marshal(r.Selection)
		if err == nil {
			h.Write(b)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Validate checks the request before any cache, limiter, or backend work.
func (r Request) Validate() *Error {
	if !r.Operation.Valid() {
		return NewError(ErrInvalidInput, "unknown operation %q", string(r.Operation))
	}
	switch r.Operation {
	case OpAnalysis:
		if r.Prompt == "" && (r.Selection == nil || r.Selection.Description == "") {
			return NewError(ErrInvalidInput, "analysis requires a project description")
		}
	case OpSuggestions:
		if r.Selection == nil {
			return NewError(ErrInvalidInput, "suggestions require a selection snapshot")
		}
	case OpEnhancement, OpChat:
		if r.Prompt == "" {
			return NewError(ErrInvalidInput, "%s requires prompt text", r.Operation)
		}
	}
	return nil
}

// Description returns the free-text description for this request,
// preferring the prompt over the selection snapshot.
func (r Request) Description() string {
	if r.Prompt != "" {
		return r.Prompt
	}
	if r.Selection != nil {
		return r.Selection.Description
	}
	return ""
}
