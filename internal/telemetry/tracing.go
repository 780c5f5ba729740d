// Package telemetry sets up the OpenTelemetry tracer provider that the
// query tracing middleware reports to.
package telemetry

import (
	"fmt"

	"github.com/coderi421/routemgr/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewTracerProvider builds a provider for cfg.Exporter and installs it as the
// global one. The caller shuts it down to flush pending spans.
func NewTracerProvider(cfg config.TracingConfig) (*sdktrace.TracerProvider, error) {
	res := resource.NewWithAttributes("",
		attribute.String("service.name", cfg.ServiceName),
	)
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
	}

	exporter, err := newExporter(cfg)
	if err != nil {
		return nil, err
	}
	if exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp, nil
}

func newExporter(cfg config.TracingConfig) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case "jaeger":
		exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.Endpoint)))
		if err != nil {
			return nil, fmt.Errorf("telemetry: jaeger exporter: %w", err)
		}
		return exp, nil
	case "zipkin":
		exp, err := zipkin.New(cfg.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("telemetry: zipkin exporter: %w", err)
		}
		return exp, nil
	case "", "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("telemetry: unknown exporter %q", cfg.Exporter)
	}
}
