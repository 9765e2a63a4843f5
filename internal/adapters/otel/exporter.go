package otel

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/projectboard/internal/ports"
)

const (
	serviceName    = "projectboard"
	serviceVersion = "1.0.0"
)

// Exporter exports board metrics to an OTEL Collector.
type Exporter struct {
	provider           *sdkmetric.MeterProvider
	meter              metric.Meter
	notificationsTotal metric.Int64Counter
	projectsGauge      metric.Int64ObservableGauge

	active   atomic.Int64
	finished atomic.Int64
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	e, err := newExporter(ctx, sdkmetric.NewPeriodicReader(exp))
	if err != nil {
		return nil, err
	}
	otel.SetMeterProvider(e.provider)
	return e, nil
}

func newExporter(ctx context.Context, reader sdkmetric.Reader) (*Exporter, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
	meter := provider.Meter(serviceName)

	e := &Exporter{
		provider: provider,
		meter:    meter,
	}

	e.notificationsTotal, err = meter.Int64Counter(
		"projectboard_notifications_total",
		metric.WithDescription("Accepted board mutations delivered to listeners"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating notifications counter: %w", err)
	}

	e.projectsGauge, err = meter.Int64ObservableGauge(
		"projectboard_projects",
		metric.WithDescription("Projects on the board by status"),
		metric.WithUnit("{project}"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(e.active.Load(), metric.WithAttributes(attribute.String("status", "active")))
			o.Observe(e.finished.Load(), metric.WithAttributes(attribute.String("status", "finished")))
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating projects gauge: %w", err)
	}

	return e, nil
}

// ExportBoardMetrics records the board state after an accepted mutation.
func (e *Exporter) ExportBoardMetrics(ctx context.Context, m *ports.BoardMetrics) error {
	e.active.Store(m.Active)
	e.finished.Store(m.Finished)
	e.notificationsTotal.Add(ctx, 1)
	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
