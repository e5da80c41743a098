// Package metrics provides a Prometheus instrumentation module for the
// reconciliation engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/morph-ui/morph/pkg/vdom"
)

// Config configures the Prometheus module.
type Config struct {
	// Namespace is the metrics namespace (default: "morph").
	Namespace string

	// Subsystem is the metrics subsystem (default: "vdom").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for patch cycle duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures the Prometheus module.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "morph",
		Subsystem: "vdom",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

type collector struct {
	nodesCreated  prometheus.Counter
	nodesPatched  prometheus.Counter
	nodesRemoved  prometheus.Counter
	patchCycles   prometheus.Counter
	patchDuration prometheus.Histogram

	cycleStart time.Time
}

// New returns the instrumentation module. Counters track materialized,
// reconciled, and destroyed nodes; the histogram observes wall time
// per patch cycle via the global pre/post hooks.
func New(opts ...Option) vdom.Module {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)
	c := &collector{
		nodesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "nodes_created_total",
			Help:        "Host nodes materialized from vnodes.",
			ConstLabels: cfg.ConstLabels,
		}),
		nodesPatched: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "nodes_patched_total",
			Help:        "Vnodes reconciled in place.",
			ConstLabels: cfg.ConstLabels,
		}),
		nodesRemoved: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "nodes_removed_total",
			Help:        "Vnodes destroyed with their subtrees.",
			ConstLabels: cfg.ConstLabels,
		}),
		patchCycles: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "patch_cycles_total",
			Help:        "Completed patch cycles.",
			ConstLabels: cfg.ConstLabels,
		}),
		patchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "patch_duration_seconds",
			Help:        "Wall time per patch cycle.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),
	}

	return vdom.Module{
		Pre: func() {
			c.cycleStart = time.Now()
		},
		Create: func(_, _ *vdom.VNode) {
			c.nodesCreated.Inc()
		},
		Update: func(_, _ *vdom.VNode) {
			c.nodesPatched.Inc()
		},
		Destroy: func(_ *vdom.VNode) {
			c.nodesRemoved.Inc()
		},
		Post: func() {
			c.patchCycles.Inc()
			c.patchDuration.Observe(time.Since(c.cycleStart).Seconds())
		},
	}
}
