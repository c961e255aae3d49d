// Package telemetry wires OpenTelemetry metrics (Prometheus exporter) and traces (OTLP gRPC).
package telemetry

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/errors"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/fx"
)

// Telemetry exposes what the HTTP layer needs from the configured providers.
type Telemetry struct {
	// MetricsHandler serves the Prometheus scrape endpoint.
	MetricsHandler http.Handler
}

// Params holds dependencies for the telemetry providers, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New installs the global meter provider and, when an OTLP endpoint is configured,
// the global tracer provider. Both are flushed on shutdown.
func New(params Params) (*Telemetry, error) {
	cfg := params.Config.Telemetry
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Telemetry disabled")

		return &Telemetry{MetricsHandler: http.NotFoundHandler()}, nil
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(params.Config.Env.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironment(params.Config.Env.Env),
	)

	exporter, err := prometheus.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create prometheus exporter")
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	shutdowns := []func(context.Context) error{meterProvider.Shutdown}

	if cfg.OTLPEndpoint != "" {
		traceExporter, err := otlptracegrpc.New(params.Ctx,
			otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create OTLP trace exporter")
		}

		tracerProvider := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(traceExporter),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tracerProvider)
		shutdowns = append(shutdowns, tracerProvider.Shutdown)

		params.Logger.Info("Tracing enabled", slog.String("otlp_endpoint", cfg.OTLPEndpoint))
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			var errs []error
			for _, shutdown := range shutdowns {
				errs = append(errs, shutdown(ctx))
			}

			return errors.Join(errs...)
		},
	})

	return &Telemetry{MetricsHandler: promhttp.Handler()}, nil
}
