package statemachine

import (
	"github.com/felixgeelhaar/statekit"
)

// guardFallbackEnabled gates the RECOVER transition. A caller that opted
// out of fallback can only reach failed from live.
// In statekit, guards receive the context by value. Since our context is
// *Context, the guard receives *Context directly.
func guardFallbackEnabled(ctx *Context, _ statekit.Event) bool {
	return ctx != nil && ctx.FallbackEnabled
}

// phaseFromEventType derives the target phase from an event type. Every
// event in the chart is named after the outcome it reports, so the mapping
// is unambiguous even when no payload is attached.
func phaseFromEventType(eventType statekit.EventType) Phase {
	switch eventType {
	case EventBegin:
		return PhaseCacheCheck
	case EventHit:
		return PhaseDone
	case EventMiss:
		return PhaseRateCheck
	case EventAdmit:
		return PhaseLive
	case EventDeny:
		return PhaseFailed
	case EventSucceed:
		return PhaseDone
	case EventRecover:
		return PhaseFallback
	case EventFail:
		return PhaseFailed
	default:
		return ""
	}
}
