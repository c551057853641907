// Package trace sets up OpenTelemetry tracing for outbound country lookups.
// Export is disabled unless an OTLP endpoint is configured.
package trace

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// DefaultServiceName is reported when Options.ServiceName is empty.
const DefaultServiceName = "countryexplorer"

// Options configures the tracer provider.
type Options struct {
	// Endpoint is an OTLP/HTTP endpoint, either host:port (plain HTTP) or a
	// full URL. Empty disables export.
	Endpoint    string
	ServiceName string
}

// Provider owns a tracer provider and its shutdown hook.
type Provider struct {
	tp       oteltrace.TracerProvider
	shutdown func(context.Context) error
	enabled  bool
}

// NewProvider returns a batching OTLP provider when opts.Endpoint is set and
// a no-op provider otherwise.
func NewProvider(ctx context.Context, opts Options) (*Provider, error) {
	if opts.Endpoint == "" {
		return Disabled(), nil
	}

	var exporterOpts []otlptracehttp.Option
	if strings.Contains(opts.Endpoint, "://") {
		exporterOpts = append(exporterOpts, otlptracehttp.WithEndpointURL(opts.Endpoint))
	} else {
		exporterOpts = append(exporterOpts,
			otlptracehttp.WithEndpoint(opts.Endpoint),
			otlptracehttp.WithInsecure(),
		)
	}
	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, err
	}

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{tp: tp, shutdown: tp.Shutdown, enabled: true}, nil
}

// Disabled returns a provider whose tracers record nothing.
func Disabled() *Provider {
	return &Provider{
		tp:       noop.NewTracerProvider(),
		shutdown: func(context.Context) error { return nil },
	}
}

// FromTracerProvider wraps an existing provider, e.g. an in-memory one in tests.
func FromTracerProvider(tp oteltrace.TracerProvider) *Provider {
	return &Provider{tp: tp, shutdown: func(context.Context) error { return nil }, enabled: true}
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool { return p != nil && p.enabled }

// Tracer returns a named tracer.
func (p *Provider) Tracer(name string) oteltrace.Tracer {
	if p == nil || p.tp == nil {
		return noop.NewTracerProvider().Tracer(name)
	}
	return p.tp.Tracer(name)
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.shutdown == nil {
		return nil
	}
	return p.shutdown(ctx)
}
