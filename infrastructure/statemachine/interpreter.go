package statemachine

import (
	"github.com/felixgeelhaar/statekit"
)

// Interpreter wraps the statekit interpreter with resolution-specific
// helpers.
type Interpreter struct {
	interp *statekit.Interpreter[*Context]
	ctx    *Context
}

// NewInterpreter creates an interpreter bound to the given context.
func NewInterpreter(machine *statekit.MachineConfig[*Context], ctx *Context) *Interpreter {
	interp := statekit.NewInterpreter(machine)
	// Update the context reference in the machine
	interp.UpdateContext(func(c **Context) {
		*c = ctx
	})
	return &Interpreter{
		interp: interp,
		ctx:    ctx,
	}
}

// Start enters the initial phase.
func (i *Interpreter) Start() {
	i.interp.Start()
	i.ctx.CurrentPhase = Phase(i.interp.State().Value)
}

// Stop stops the interpreter.
func (i *Interpreter) Stop() {
	i.interp.Stop()
}

// Phase returns the current phase.
func (i *Interpreter) Phase() Phase {
	return Phase(i.interp.State().Value)
}

// Advance sends the event with a payload naming the target phase and the
// reason for the hop.
func (i *Interpreter) Advance(eventType statekit.EventType, reason string) {
	i.interp.Send(statekit.Event{
		Type: eventType,
		Payload: TransitionPayload{
			ToPhase: phaseFromEventType(eventType),
			Reason:  reason,
		},
	})
}

// IsTerminal reports whether the chart reached done or failed.
func (i *Interpreter) IsTerminal() bool {
	return i.interp.Done()
}

// Context returns the interpreter context.
func (i *Interpreter) Context() *Context {
	return i.ctx
}

// Trace returns the transitions recorded so far.
func (i *Interpreter) Trace() []Transition {
	return i.ctx.Trace
}
