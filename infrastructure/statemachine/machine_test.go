package statemachine

import (
	"testing"

	"github.com/felixgeelhaar/statekit"

	"github.com/Nether404/theWebKnot-sub006/domain/request"
)

func newTestInterpreter(t *testing.T, fallbackEnabled bool) *Interpreter {
	t.Helper()

	machine, err := NewResolveMachine()
	if err != nil {
		t.Fatalf("NewResolveMachine() error = %v", err)
	}
	ctx := NewContext("req-1", request.OpAnalysis, fallbackEnabled)
	interp := NewInterpreter(machine, ctx)
	interp.Start()
	return interp
}

func TestNewContext(t *testing.T) {
	t.Parallel()

	ctx := NewContext("req-42", request.OpChat, true)

	if ctx.RequestID != "req-42" {
		t.Errorf("RequestID = %s, want req-42", ctx.RequestID)
	}
	if ctx.Operation != request.OpChat {
		t.Errorf("Operation = %s, want chat", ctx.Operation)
	}
	if !ctx.FallbackEnabled {
		t.Error("FallbackEnabled should be true")
	}
	if ctx.CurrentPhase != PhaseIdle {
		t.Errorf("CurrentPhase = %s, want idle", ctx.CurrentPhase)
	}
	if len(ctx.Trace) != 0 {
		t.Error("Trace should start empty")
	}
}

func TestNewResolveMachine(t *testing.T) {
	t.Parallel()

	machine, err := NewResolveMachine()
	if err != nil {
		t.Fatalf("NewResolveMachine() error = %v", err)
	}
	if machine == nil {
		t.Fatal("NewResolveMachine() returned nil machine")
	}
}

func TestInterpreter_Start(t *testing.T) {
	t.Parallel()

	interp := newTestInterpreter(t, true)

	if interp.Phase() != PhaseIdle {
		t.Errorf("Initial phase = %s, want idle", interp.Phase())
	}
	if interp.IsTerminal() {
		t.Error("Should not be terminal after start")
	}
}

func TestInterpreter_CacheHitPath(t *testing.T) {
	t.Parallel()

	interp := newTestInterpreter(t, true)

	interp.Advance(EventBegin, "resolution started")
	if interp.Phase() != PhaseCacheCheck {
		t.Fatalf("Phase = %s, want cache_check", interp.Phase())
	}

	interp.Advance(EventHit, "local cache hit")
	if interp.Phase() != PhaseDone {
		t.Errorf("Phase = %s, want done", interp.Phase())
	}
	if !interp.IsTerminal() {
		t.Error("done should be terminal")
	}
}

func TestInterpreter_LiveSuccessPath(t *testing.T) {
	t.Parallel()

	interp := newTestInterpreter(t, true)

	interp.Advance(EventBegin, "resolution started")
	interp.Advance(EventMiss, "cache miss")
	if interp.Phase() != PhaseRateCheck {
		t.Fatalf("Phase = %s, want rate_check", interp.Phase())
	}

	interp.Advance(EventAdmit, "quota available")
	if interp.Phase() != PhaseLive {
		t.Fatalf("Phase = %s, want live", interp.Phase())
	}

	interp.Advance(EventSucceed, "provider responded")
	if interp.Phase() != PhaseDone {
		t.Errorf("Phase = %s, want done", interp.Phase())
	}
}

func TestInterpreter_RateDeniedGoesToFailed(t *testing.T) {
	t.Parallel()

	interp := newTestInterpreter(t, true)

	interp.Advance(EventBegin, "resolution started")
	interp.Advance(EventMiss, "cache miss")
	interp.Advance(EventDeny, "window exhausted")

	if interp.Phase() != PhaseFailed {
		t.Errorf("Phase = %s, want failed: denied admission never enters fallback", interp.Phase())
	}
	if !interp.IsTerminal() {
		t.Error("failed should be terminal")
	}
}

func TestInterpreter_FallbackPath(t *testing.T) {
	t.Parallel()

	interp := newTestInterpreter(t, true)

	interp.Advance(EventBegin, "resolution started")
	interp.Advance(EventMiss, "cache miss")
	interp.Advance(EventAdmit, "quota available")
	interp.Advance(EventRecover, "provider timeout")

	if interp.Phase() != PhaseFallback {
		t.Fatalf("Phase = %s, want fallback", interp.Phase())
	}

	interp.Advance(EventSucceed, "heuristic result")
	if interp.Phase() != PhaseDone {
		t.Errorf("Phase = %s, want done", interp.Phase())
	}
}

func TestInterpreter_FallbackDisabledBlocksRecover(t *testing.T) {
	t.Parallel()

	interp := newTestInterpreter(t, false)

	interp.Advance(EventBegin, "resolution started")
	interp.Advance(EventMiss, "cache miss")
	interp.Advance(EventAdmit, "quota available")

	// The guard rejects RECOVER, so the chart stays in live.
	interp.Advance(EventRecover, "provider timeout")
	if interp.Phase() != PhaseLive {
		t.Errorf("Phase = %s, want live: RECOVER must be guarded on FallbackEnabled", interp.Phase())
	}

	interp.Advance(EventFail, "provider timeout")
	if interp.Phase() != PhaseFailed {
		t.Errorf("Phase = %s, want failed", interp.Phase())
	}
}

func TestInterpreter_TraceRecordsEveryHop(t *testing.T) {
	t.Parallel()

	interp := newTestInterpreter(t, true)

	interp.Advance(EventBegin, "resolution started")
	interp.Advance(EventMiss, "cache miss")
	interp.Advance(EventAdmit, "quota available")
	interp.Advance(EventSucceed, "provider responded")

	trace := interp.Trace()
	if len(trace) != 4 {
		t.Fatalf("Trace has %d hops, want 4", len(trace))
	}

	want := []struct {
		from, to Phase
	}{
		{PhaseIdle, PhaseCacheCheck},
		{PhaseCacheCheck, PhaseRateCheck},
		{PhaseRateCheck, PhaseLive},
		{PhaseLive, PhaseDone},
	}
	for i, hop := range trace {
		if hop.From != want[i].from || hop.To != want[i].to {
			t.Errorf("Trace[%d] = %s -> %s, want %s -> %s", i, hop.From, hop.To, want[i].from, want[i].to)
		}
		if hop.At.IsZero() {
			t.Errorf("Trace[%d] has no timestamp", i)
		}
	}
	if trace[0].Reason != "resolution started" {
		t.Errorf("Trace[0].Reason = %q", trace[0].Reason)
	}
}

func TestGuardFallbackEnabled(t *testing.T) {
	t.Parallel()

	if guardFallbackEnabled(nil, statekit.Event{}) {
		t.Error("nil context should not pass the guard")
	}
	if guardFallbackEnabled(&Context{FallbackEnabled: false}, statekit.Event{}) {
		t.Error("disabled fallback should not pass the guard")
	}
	if !guardFallbackEnabled(&Context{FallbackEnabled: true}, statekit.Event{}) {
		t.Error("enabled fallback should pass the guard")
	}
}

func TestPhaseFromEventType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		eventType statekit.EventType
		expected  Phase
	}{
		{EventBegin, PhaseCacheCheck},
		{EventHit, PhaseDone},
		{EventMiss, PhaseRateCheck},
		{EventAdmit, PhaseLive},
		{EventDeny, PhaseFailed},
		{EventSucceed, PhaseDone},
		{EventRecover, PhaseFallback},
		{EventFail, PhaseFailed},
		{"UNKNOWN", Phase("")},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			t.Parallel()

			if got := phaseFromEventType(tt.eventType); got != tt.expected {
				t.Errorf("phaseFromEventType(%s) = %s, want %s", tt.eventType, got, tt.expected)
			}
		})
	}
}

func TestInterpreter_Stop(t *testing.T) {
	t.Parallel()

	interp := newTestInterpreter(t, true)
	interp.Advance(EventBegin, "resolution started")

	interp.Stop()

	if interp.Phase() != PhaseCacheCheck {
		t.Errorf("Phase after stop = %s, want cache_check", interp.Phase())
	}
}
