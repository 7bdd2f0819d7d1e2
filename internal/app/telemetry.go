package app

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	otelmetric "go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const meterName = "cinema-backoffice"

type metrics struct {
	bookingsCreated    otelmetric.Int64Counter
	scheduleConflicts  otelmetric.Int64Counter
	occupancyAnomalies otelmetric.Int64Counter
}

// initTelemetry wires up the metrics pipeline. Without a collector URL the
// meter provider has no reader, so instruments record into the void at almost
// no cost and the handlers never have to nil-check.
func (app *application) initTelemetry() (func(context.Context) error, error) {
	ctx := context.Background()

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(meterName),
		semconv.ServiceVersion(version),
		semconv.DeploymentEnvironment(app.config.env),
	))
	if err != nil {
		return nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}

	if app.config.otelCollectorUrl != "" {
		exporter, err := otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpointURL(app.config.otelCollectorUrl),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return nil, err
		}

		opts = append(opts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)))
	}

	provider := sdkmetric.NewMeterProvider(opts...)
	otel.SetMeterProvider(provider)

	app.metrics, err = newMetrics(provider.Meter(meterName))
	if err != nil {
		return nil, err
	}

	return provider.Shutdown, nil
}

func newMetrics(meter otelmetric.Meter) (metrics, error) {
	var (
		m   metrics
		err error
	)

	m.bookingsCreated, err = meter.Int64Counter("bookings.created",
		otelmetric.WithDescription("Number of bookings created through the back office"))
	if err != nil {
		return metrics{}, err
	}

	m.scheduleConflicts, err = meter.Int64Counter("screenings.schedule_conflicts",
		otelmetric.WithDescription("Number of screening writes rejected with a schedule conflict warning"))
	if err != nil {
		return metrics{}, err
	}

	m.occupancyAnomalies, err = meter.Int64Counter("bookings.occupancy_anomalies",
		otelmetric.WithDescription("Number of seats found in an inconsistent occupancy state"))
	if err != nil {
		return metrics{}, err
	}

	return m, nil
}
