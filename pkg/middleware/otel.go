package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/toastkit-go/toastkit/pkg/session"
)

// Default tracer name for toastkit applications.
const defaultTracerName = "toastkit"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "toastkit").
	TracerName string

	// Filter determines which events to trace.
	// Return true to trace the event, false to skip.
	// If nil, all events are traced.
	Filter func(ev *session.Event) bool

	// AttributeExtractor extracts custom attributes from the event.
	// Called for each traced event.
	AttributeExtractor func(ev *session.Event) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithFilter sets the event filter.
func WithFilter(filter func(ev *session.Event) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets the custom attribute extractor.
func WithAttributeExtractor(fn func(ev *session.Event) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = fn
	}
}

// OTel returns middleware that opens a span per processed client event.
func OTel(opts ...OTelOption) session.Middleware {
	cfg := OTelConfig{
		TracerName: defaultTracerName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.tracer = otel.Tracer(cfg.TracerName)

	return func(next session.EventFunc) session.EventFunc {
		return func(ev *session.Event) {
			if cfg.Filter != nil && !cfg.Filter(ev) {
				next(ev)
				return
			}

			attrs := []attribute.KeyValue{
				attribute.String("toastkit.event", ev.Name),
				attribute.String("toastkit.hid", ev.HID),
			}
			if ev.Session != nil {
				attrs = append(attrs, attribute.String("toastkit.session", ev.Session.Name()))
			}
			if cfg.AttributeExtractor != nil {
				attrs = append(attrs, cfg.AttributeExtractor(ev)...)
			}

			_, span := cfg.tracer.Start(context.Background(), "event "+ev.Name,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			next(ev)
		}
	}
}
