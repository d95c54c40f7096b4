package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"travel-booking/internal/pkg/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
)

const (
	TracingExporterNone   = "none"
	TracingExporterStdout = "stdout"
)

var TracingModule = fx.Module("tracing",
	fx.Provide(
		NewTracerProvider,
	),
	// installs the global provider before the router builds its middleware
	fx.Invoke(func(*sdktrace.TracerProvider) {}),
)

// NewTracerProvider installs the provider and the W3C trace-context
// propagator as the otel globals and flushes pending spans on stop.
func NewTracerProvider(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*sdktrace.TracerProvider, error) {
	tp, err := BuildTracerProvider(cfg.Tracing)
	if err != nil {
		return nil, err
	}

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := tp.Shutdown(ctx); err != nil {
				logger.Warn("トレーサーの停止に失敗しました", "error", err)
			}
			return nil
		},
	})

	logger.Info("トレーシングを初期化しました",
		"exporter", cfg.Tracing.Exporter,
		"service", cfg.Tracing.ServiceName)
	return tp, nil
}

// BuildTracerProvider wires the configured exporter; extra options are
// appended after it so tests can attach their own span processors.
func BuildTracerProvider(cfg config.TracingConfig, opts ...sdktrace.TracerProviderOption) (*sdktrace.TracerProvider, error) {
	ratio := cfg.SampleRatio
	if ratio < 0 || ratio > 1 {
		return nil, fmt.Errorf("tracing sample ratio %v is outside [0, 1]", ratio)
	}

	base := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	}

	switch cfg.Exporter {
	case "", TracingExporterNone:
	case TracingExporterStdout:
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(os.Stdout))
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout span exporter: %w", err)
		}
		base = append(base, sdktrace.WithBatcher(exporter))
	default:
		return nil, fmt.Errorf("unknown tracing exporter %q", cfg.Exporter)
	}

	return sdktrace.NewTracerProvider(append(base, opts...)...), nil
}
