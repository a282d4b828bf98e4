// Package statemachine provides the statekit statechart that drives request
// resolution. Every request walks the same chart: cache lookup, admission
// check, live dispatch, and either completion or the fallback path.
package statemachine

import (
	"time"

	"github.com/felixgeelhaar/statekit"

	"github.com/Nether404/theWebKnot-sub006/domain/request"
)

// Phase names a position in the resolution lifecycle.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseCacheCheck Phase = "cache_check"
	PhaseRateCheck  Phase = "rate_check"
	PhaseLive       Phase = "live"
	PhaseFallback   Phase = "fallback"
	PhaseDone       Phase = "done"
	PhaseFailed     Phase = "failed"
)

// Event types accepted by the chart. These are untyped so they satisfy
// both the builder and statekit.Event.
const (
	EventBegin   = "BEGIN"
	EventHit     = "HIT"
	EventMiss    = "MISS"
	EventAdmit   = "ADMIT"
	EventDeny    = "DENY"
	EventSucceed = "SUCCEED"
	EventRecover = "RECOVER"
	EventFail    = "FAIL"
)

// Transition is one recorded hop through the chart.
type Transition struct {
	From   Phase     `json:"from"`
	To     Phase     `json:"to"`
	Reason string    `json:"reason,omitempty"`
	At     time.Time `json:"at"`
}

// Context carries per-request state through the machine.
type Context struct {
	RequestID       string
	Operation       request.Operation
	FallbackEnabled bool
	CurrentPhase    Phase
	Trace           []Transition
}

// NewContext creates a machine context for one request.
func NewContext(requestID string, op request.Operation, fallbackEnabled bool) *Context {
	return &Context{
		RequestID:       requestID,
		Operation:       op,
		FallbackEnabled: fallbackEnabled,
		CurrentPhase:    PhaseIdle,
	}
}

// State IDs as StateID type for statekit.
const (
	stateIdle       statekit.StateID = statekit.StateID(PhaseIdle)
	stateCacheCheck statekit.StateID = statekit.StateID(PhaseCacheCheck)
	stateRateCheck  statekit.StateID = statekit.StateID(PhaseRateCheck)
	stateLive       statekit.StateID = statekit.StateID(PhaseLive)
	stateFallback   statekit.StateID = statekit.StateID(PhaseFallback)
	stateDone       statekit.StateID = statekit.StateID(PhaseDone)
	stateFailed     statekit.StateID = statekit.StateID(PhaseFailed)
)

// NewResolveMachine creates the canonical resolution statechart.
//
// A denied admission goes straight to failed: rate limit errors surface
// verbatim and never enter the fallback path. A live failure only reaches
// fallback through the RECOVER event, which is guarded on the context's
// FallbackEnabled flag.
func NewResolveMachine() (*statekit.MachineConfig[*Context], error) {
	return statekit.NewMachine[*Context]("resolve").
		WithInitial(stateIdle).
		WithContext(&Context{}).
		WithAction("logEntry", logPhaseEntry).
		WithAction("recordTransition", recordTransition).
		WithGuard("fallbackEnabled", guardFallbackEnabled).
		State(stateIdle).
			OnEntry("logEntry").
			On(EventBegin).Target(stateCacheCheck).Do("recordTransition").
			Done().
		State(stateCacheCheck).
			OnEntry("logEntry").
			On(EventHit).Target(stateDone).Do("recordTransition").
			On(EventMiss).Target(stateRateCheck).Do("recordTransition").
			Done().
		State(stateRateCheck).
			OnEntry("logEntry").
			On(EventAdmit).Target(stateLive).Do("recordTransition").
			On(EventDeny).Target(stateFailed).Do("recordTransition").
			Done().
		State(stateLive).
			OnEntry("logEntry").
			On(EventSucceed).Target(stateDone).Do("recordTransition").
			On(EventRecover).Target(stateFallback).Guard("fallbackEnabled").Do("recordTransition").
			On(EventFail).Target(stateFailed).Do("recordTransition").
			Done().
		State(stateFallback).
			OnEntry("logEntry").
			On(EventSucceed).Target(stateDone).Do("recordTransition").
			On(EventFail).Target(stateFailed).Do("recordTransition").
			Done().
		State(stateDone).
			Final().
			OnEntry("logEntry").
			Done().
		State(stateFailed).
			Final().
			OnEntry("logEntry").
			Done().
		Build()
}
