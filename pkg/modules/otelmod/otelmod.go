// Package otelmod provides an OpenTelemetry tracing module for the
// reconciliation engine: one span per patch cycle, annotated with node
// counts.
package otelmod

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/morph-ui/morph/pkg/vdom"
)

const defaultTracerName = "morph"

// Config configures the tracing module.
type Config struct {
	// TracerName is the name of the tracer (default: "morph").
	TracerName string

	// Attributes are added to every patch span.
	Attributes []attribute.KeyValue

	tracer trace.Tracer
}

// Option configures the tracing module.
type Option func(*Config)

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithAttributes sets constant attributes for every patch span.
func WithAttributes(attrs ...attribute.KeyValue) Option {
	return func(c *Config) {
		c.Attributes = attrs
	}
}

type tracer struct {
	cfg  Config
	span trace.Span

	created int64
	patched int64
	removed int64
}

// New returns the tracing module. The span covers one patch cycle:
// started by the global pre hook, ended by post with created/patched/
// removed node counts attached.
func New(opts ...Option) vdom.Module {
	cfg := Config{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.tracer = otel.Tracer(cfg.TracerName)

	t := &tracer{cfg: cfg}
	return vdom.Module{
		Pre: func() {
			_, t.span = t.cfg.tracer.Start(context.Background(), "vdom.patch",
				trace.WithAttributes(t.cfg.Attributes...))
			t.created, t.patched, t.removed = 0, 0, 0
		},
		Create: func(_, _ *vdom.VNode) {
			t.created++
		},
		Update: func(_, _ *vdom.VNode) {
			t.patched++
		},
		Destroy: func(_ *vdom.VNode) {
			t.removed++
		},
		Post: func() {
			t.span.SetAttributes(
				attribute.Int64("vdom.nodes_created", t.created),
				attribute.Int64("vdom.nodes_patched", t.patched),
				attribute.Int64("vdom.nodes_removed", t.removed),
			)
			t.span.End()
		},
	}
}
