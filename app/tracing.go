// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package app

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func (a *App) configureTracing(ctx context.Context) error {
	if !a.config.GetBool("otel.enabled") {
		a.log.Debug("tracing disabled")
		return nil
	}

	exporter := a.spanExporter
	if exporter == nil {
		// the grpc connection is established lazily on first export
		otlp, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(a.config.GetString("otel.endpoint")),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return err
		}
		exporter = otlp
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", a.config.GetString("otel.serviceName")),
		),
	)
	if err != nil {
		return err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(
			sdktrace.TraceIDRatioBased(a.config.GetFloat64("otel.samplingProbability")),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	a.tracerFlush = tp.ForceFlush
	a.tracerStop = tp.Shutdown
	a.log.WithField("endpoint", a.config.GetString("otel.endpoint")).Info("tracing enabled")
	return nil
}

// the lambda environment may freeze right after the handler returns, so
// spans are pushed out before that
func (a *App) flushTraces(ctx context.Context) {
	if a.tracerFlush == nil {
		return
	}
	if err := a.tracerFlush(ctx); err != nil {
		a.log.WithError(err).Warn("failed to flush traces")
	}
}
