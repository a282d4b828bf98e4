package request

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKind_Recoverable(t *testing.T) {
	t.Parallel()

	recoverable := []ErrorKind{ErrAPI, ErrNetwork, ErrTimeout, ErrInvalidResponse}
	for _, k := range recoverable {
		if !k.Recoverable() {
			t.Errorf("%s should be recoverable", k)
		}
	}

	terminal := []ErrorKind{ErrRateLimit, ErrInvalidAPIKey, ErrInvalidInput}
	for _, k := range terminal {
		if k.Recoverable() {
			t.Errorf("%s must not be recoverable", k)
		}
	}
}

func TestNewError(t *testing.T) {
	t.Parallel()

	err := NewError(ErrTimeout, "deadline after %dms", 500)
	if err.Kind != ErrTimeout {
		t.Errorf("Kind = %v, want TIMEOUT_ERROR", err.Kind)
	}
	if err.Message != "deadline after 500ms" {
		t.Errorf("Message = %q", err.Message)
	}
	if !err.Recoverable {
		t.Error("Recoverable should mirror the kind")
	}
	if got := err.Error(); got != "TIMEOUT_ERROR: deadline after 500ms" {
		t.Errorf("Error() = %q", got)
	}
}

func TestError_IsMatchesByKind(t *testing.T) {
	t.Parallel()

	err := NewError(ErrNetwork, "connection refused")
	if !errors.Is(err, NewError(ErrNetwork, "different message")) {
		t.Error("errors with the same kind should match")
	}
	if errors.Is(err, NewError(ErrTimeout, "connection refused")) {
		t.Error("errors with different kinds should not match")
	}
}

func TestAsError(t *testing.T) {
	t.Parallel()

	if AsError(nil) != nil {
		t.Error("AsError(nil) should be nil")
	}

	typed := NewError(ErrAPI, "status 500")
	if got := AsError(typed); got != typed {
		t.Error("a typed error should pass through unchanged")
	}

	wrapped := fmt.Errorf("dial: %w", NewError(ErrTimeout, "deadline"))
	if got := AsError(wrapped); got.Kind != ErrTimeout {
		t.Errorf("wrapped Kind = %v, want TIMEOUT_ERROR", got.Kind)
	}

	foreign := AsError(errors.New("broken pipe"))
	if foreign.Kind != ErrNetwork {
		t.Errorf("foreign Kind = %v, want NETWORK_ERROR", foreign.Kind)
	}
	if !foreign.Recoverable {
		t.Error("foreign errors should map to a recoverable kind")
	}
}
