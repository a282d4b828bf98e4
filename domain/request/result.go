package request

import "encoding/json"

// Source tags where a successful result came from. It is part of the
// contract: callers must be able to distinguish a cache hit from a live
// call from a fallback.
type Source string

const (
	// SourceCache means the local cache served the result.
	SourceCache Source = "cache"
	// SourceRemote means the shared remote cache served the result.
	SourceRemote Source = "remote"
	// SourceLive means the AI backend produced the result.
	SourceLive Source = "live"
	// SourceFallback means a deterministic engine produced the result.
	SourceFallback Source = "fallback"
)

// Result is the tagged outcome of a resolved request: either a success
// value with its source, or a typed error. Exactly one of Value and Err
// is meaningful.
type Result struct {
	// Source is set on success.
	Source Source `json:"source,omitempty"`

	// Value is the operation's result payload.
	Value json.RawMessage `json:"value,omitempty"`

	// Err is set on failure.
	Err *Error `json:"error,omitempty"`
}

// Success creates a successful result from the given source.
func Success(source Source, value json.RawMessage) Result {
	return Result{Source: source, Value: value}
}

// Failure creates a failed result carrying the typed error.
func Failure(err *Error) Result {
	return Result{Err: err}
}

// OK reports whether the result is a success.
func (r Result) OK() bool {
	return r.Err == nil
}

// Decode unmarshals a successful result's value into T.
func Decode[T any](r Result) (T, error) {
	var out T
	if r.Err != nil {
		return out, r.Err
	}
	if err := json.Unmarshal(r.Value, &out); err != nil {
		return out, err
	}
	return out, nil
}
