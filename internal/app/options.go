package app

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/decisionnote/internal/platform/telemetry"
)

const instrumentationName = "github.com/jsamuelsen11/decisionnote/internal/app"

// Option configures the services in this package.
type Option func(*settings)

type settings struct {
	now     func() time.Time
	metrics *telemetry.Metrics
}

func newSettings(opts []Option) settings {
	s := settings{now: time.Now}
	for _, opt := range opts {
		opt(&s)
	}
	if s.metrics == nil {
		s.metrics = telemetry.NewNoopMetrics()
	}
	return s
}

// WithClock replaces time.Now. Expiry and edit timestamps read this clock.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMetrics records domain metrics on m instead of no-op instruments.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
