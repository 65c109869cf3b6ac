// Package prometheus exposes node telemetry as Prometheus metrics.
package prometheus

import (
	"github.com/aretw0/araignee/pkg/core"
	"github.com/aretw0/araignee/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector turns node samples into Prometheus metrics.
// Tick durations feed a histogram; every other metric is exposed as a gauge
// holding the last recorded value.
type Collector struct {
	ticks    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	gauges   *prometheus.GaugeVec
}

type Option func(*options)

type options struct {
	namespace string
	buckets   []float64
}

// WithNamespace sets the metric namespace. Defaults to "araignee".
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithBuckets sets the histogram buckets of tick durations, in seconds.
func WithBuckets(buckets []float64) Option {
	return func(o *options) {
		o.buckets = buckets
	}
}

// New creates a Collector and registers its metrics with reg.
func New(reg prometheus.Registerer, opts ...Option) (*Collector, error) {
	o := options{
		namespace: "araignee",
		buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Collector{
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Name:      "node_ticks_total",
				Help:      "Total number of recorded node ticks",
			},
			[]string{"node_id", "kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: o.namespace,
				Name:      "node_tick_duration_seconds",
				Help:      "Duration of node ticks",
				Buckets:   o.buckets,
			},
			[]string{"node_id", "kind"},
		),
		gauges: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: o.namespace,
				Name:      "node_metric",
				Help:      "Last value of custom node metrics",
			},
			[]string{"node_id", "kind", "metric"},
		),
	}

	for _, col := range []prometheus.Collector{c.ticks, c.duration, c.gauges} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// For returns the recorder of a node. Its signature matches
// ports.RecorderFactory.
func (c *Collector) For(id, kind string) ports.Recorder {
	return &nodeRecorder{collector: c, id: id, kind: kind}
}

type nodeRecorder struct {
	collector *Collector
	id        string
	kind      string
}

func (r *nodeRecorder) Record(metric string, value float64) {
	if metric == core.MetricDuration {
		r.collector.ticks.WithLabelValues(r.id, r.kind).Inc()
		r.collector.duration.WithLabelValues(r.id, r.kind).Observe(value)
		return
	}
	r.collector.gauges.WithLabelValues(r.id, r.kind, metric).Set(value)
}
