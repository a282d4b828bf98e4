package observability

import (
	"context"
	"testing"
)

func TestNew_Disabled(t *testing.T) {
	t.Parallel()

	p, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if p.Tracer() == nil {
		t.Fatal("Tracer() returned nil")
	}

	// Spans from the noop tracer must be inert.
	_, span := p.Tracer().Start(context.Background(), "resolve")
	if span.IsRecording() {
		t.Error("disabled provider should not record spans")
	}
	span.End()

	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestNew_UnknownExporter(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Exporter = "jaeger"

	if _, err := New(cfg); err == nil {
		t.Error("New() should reject unknown exporters")
	}
}

func TestNewNoop(t *testing.T) {
	t.Parallel()

	p := NewNoop()
	if p.Tracer() == nil {
		t.Fatal("Tracer() returned nil")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
