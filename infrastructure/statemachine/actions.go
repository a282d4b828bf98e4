package statemachine

import (
	"time"

	"github.com/felixgeelhaar/statekit"

	"github.com/Nether404/theWebKnot-sub006/infrastructure/logging"
)

// TransitionPayload carries the target phase and a reason with an event.
type TransitionPayload struct {
	ToPhase Phase
	Reason  string
}

// logPhaseEntry logs entry into a phase.
// In statekit, actions receive a pointer to the context. Since our context is
// *Context, actions receive **Context.
func logPhaseEntry(ctx **Context, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	c := *ctx

	phase := c.CurrentPhase
	if payload, ok := event.Payload.(TransitionPayload); ok && payload.ToPhase != "" {
		phase = payload.ToPhase
	}

	logging.Debug().
		Add(logging.RequestID(c.RequestID)).
		Add(logging.Op(c.Operation)).
		Add(logging.ToState(string(phase))).
		Msg("resolution phase entered")
}

// recordTransition appends the hop to the context trace and advances the
// tracked phase.
func recordTransition(ctx **Context, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	c := *ctx

	var toPhase Phase
	var reason string
	if payload, ok := event.Payload.(TransitionPayload); ok {
		toPhase = payload.ToPhase
		reason = payload.Reason
	} else {
		toPhase = phaseFromEventType(event.Type)
	}
	if toPhase == "" {
		return
	}

	c.Trace = append(c.Trace, Transition{
		From:   c.CurrentPhase,
		To:     toPhase,
		Reason: reason,
		At:     time.Now(),
	})
	c.CurrentPhase = toPhase
}
