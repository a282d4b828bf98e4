package request

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a caller-visible failure.
type ErrorKind string

const (
	// ErrAPI means the backend responded with a failure status.
	ErrAPI ErrorKind = "API_ERROR"
	// ErrNetwork means the transport failed before a response arrived.
	ErrNetwork ErrorKind = "NETWORK_ERROR"
	// ErrTimeout means the deadline for the call was exceeded.
	ErrTimeout ErrorKind = "TIMEOUT_ERROR"
	// ErrInvalidResponse means a success body could not be parsed.
	ErrInvalidResponse ErrorKind = "INVALID_RESPONSE"
	// ErrRateLimit means admission was denied by the rate limiter.
	ErrRateLimit ErrorKind = "RATE_LIMIT"
	// ErrInvalidAPIKey means the credential was rejected. Never retried,
	// never falls back.
	ErrInvalidAPIKey ErrorKind = "INVALID_API_KEY"
	// ErrInvalidInput means the request failed validation before any
	// cache, limiter, or backend work.
	ErrInvalidInput ErrorKind = "INVALID_INPUT"
)

// Recoverable reports whether a failure of this kind may be masked by a
// deterministic fallback. RATE_LIMIT and INVALID_API_KEY must surface
// verbatim because the caller has to act on them.
func (k ErrorKind) Recoverable() bool {
	switch k {
	case ErrAPI, ErrNetwork, ErrTimeout, ErrInvalidResponse:
		return true
	default:
		return false
	}
}

// Error is the typed error carried by a failed Result.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind `json:"kind"`

	// Message is an actionable, caller-facing description.
	Message string `json:"message"`

	// Recoverable mirrors Kind.Recoverable for serialized results.
	Recoverable bool `json:"recoverable"`
}

// NewError creates a typed error for the given kind.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Kind:        kind,
		Message:     fmt.Sprintf(format, args...),
		Recoverable: kind.Recoverable(),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches errors by kind, so errors.Is works against a kind sentinel
// regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// AsError extracts a typed error from err, wrapping anything foreign as
// a NETWORK_ERROR so the orchestrator always sees the taxonomy.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return NewError(ErrNetwork, "%v", err)
}
