package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/Nether404/theWebKnot-sub006/domain/request"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Common field constructors for orchestration logging.

// RequestID adds a request id field.
func RequestID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("request_id", id)
	}
}

// Op adds the operation kind.
func Op(op request.Operation) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("operation", string(op))
	}
}

// CacheKey adds the derived cache key.
func CacheKey(key string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("cache_key", key)
	}
}

// ResultSource adds the result source tag.
func ResultSource(s request.Source) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("source", string(s))
	}
}

// Identity adds the caller identity.
func Identity(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("identity", id)
	}
}

// ErrKind adds the typed error kind.
func ErrKind(kind request.ErrorKind) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("error_kind", string(kind))
	}
}

// FromState adds a from_state field for transitions.
func FromState(s string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("from_state", s)
	}
}

// ToState adds a to_state field for transitions.
func ToState(s string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("to_state", s)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// Err adds an error field.
func Err(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Err(err)
	}
}

// Str adds an arbitrary string field.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}

// Int adds an arbitrary int field.
func Int(key string, value int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int(key, value)
	}
}
