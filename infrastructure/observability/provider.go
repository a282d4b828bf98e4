// Package observability sets up OpenTelemetry tracing for the webknot
// runtime. Tracing is off by default; enabling it wires a stdout exporter,
// which is enough to inspect request resolution locally.
package observability

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Exporter selects the span exporter.
type Exporter string

const (
	// ExporterStdout writes pretty-printed spans to stdout.
	ExporterStdout Exporter = "stdout"
	// ExporterNone disables span export.
	ExporterNone Exporter = "none"
)

// Config configures the provider.
type Config struct {
	// ServiceName identifies this service in exported spans.
	ServiceName string
	// ServiceVersion is the running version.
	ServiceVersion string
	// Enabled toggles tracing entirely.
	Enabled bool
	// Exporter selects the span exporter.
	Exporter Exporter
}

// DefaultConfig returns a configuration with tracing disabled.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "webknot",
		ServiceVersion: "dev",
		Exporter:       ExporterNone,
	}
}

// Provider manages the tracer provider lifecycle.
type Provider struct {
	tracer        trace.Tracer
	shutdownFuncs []func(context.Context) error
}

// New creates a provider from the given configuration.
func New(cfg Config) (*Provider, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "webknot"
	}

	p := &Provider{}

	if !cfg.Enabled || cfg.Exporter == ExporterNone || cfg.Exporter == "" {
		p.tracer = noop.NewTracerProvider().Tracer(cfg.ServiceName)
		return p, nil
	}

	if cfg.Exporter != ExporterStdout {
		return nil, fmt.Errorf("unknown trace exporter: %s", cfg.Exporter)
	}

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	// No merge with resource.Default() to avoid schema URL conflicts.
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	p.tracer = tp.Tracer(cfg.ServiceName)
	p.shutdownFuncs = append(p.shutdownFuncs, tp.Shutdown)

	return p, nil
}

// NewNoop creates a provider that records nothing.
func NewNoop() *Provider {
	return &Provider{
		tracer: noop.NewTracerProvider().Tracer("webknot"),
	}
}

// Tracer returns the tracer.
func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

// Shutdown flushes and stops the tracer provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range p.shutdownFuncs {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
