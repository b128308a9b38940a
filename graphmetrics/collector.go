// SPDX-License-Identifier: MIT
//
// File: collector.go
// Role: Prometheus collector exporting graph size and change counters.
// Policy:
//   - Values are read at scrape time from a single Stats() call, so the
//     series of one scrape always describe the same state.
//   - The collector never mutates the source.

// Package graphmetrics exposes graph statistics as Prometheus metrics.
//
// The source must be safe to read from the scrape goroutine; in practice that
// is a *syncgraph.Graph:
//
//	sg := syncgraph.New()
//	prometheus.MustRegister(graphmetrics.New(sg, graphmetrics.WithName("routes")))
package graphmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/wgraph/core"
)

// DefaultNamespace prefixes every metric unless WithNamespace overrides it.
const DefaultNamespace = "wgraph"

// StatsSource is anything that can report a consistent core.Stats snapshot.
type StatsSource interface {
	Stats() core.Stats
}

// Collector implements prometheus.Collector over a StatsSource.
type Collector struct {
	src StatsSource

	vertices      *prometheus.Desc
	edges         *prometheus.Desc
	maxDegree     *prometheus.Desc
	modifications *prometheus.Desc
}

type config struct {
	namespace string
	name      string
}

// Option configures a Collector.
type Option func(*config)

// WithNamespace sets the metric name prefix.
func WithNamespace(ns string) Option {
	return func(c *config) { c.namespace = ns }
}

// WithName sets the constant "graph" label, letting several graphs share one registry.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// New returns a collector for src. It panics on a nil source.
func New(src StatsSource, opts ...Option) *Collector {
	if src == nil {
		panic("graphmetrics: New(nil source)")
	}
	cfg := config{namespace: DefaultNamespace, name: "default"}
	for _, opt := range opts {
		opt(&cfg)
	}
	labels := prometheus.Labels{"graph": cfg.name}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(cfg.namespace, "", name), help, nil, labels)
	}

	return &Collector{
		src:           src,
		vertices:      desc("vertices", "Number of vertices in the graph."),
		edges:         desc("edges", "Number of undirected edges in the graph."),
		maxDegree:     desc("max_degree", "Largest vertex degree in the graph."),
		modifications: desc("modifications_total", "Structural changes applied to the graph."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.vertices
	ch <- c.edges
	ch <- c.maxDegree
	ch <- c.modifications
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.vertices, prometheus.GaugeValue, float64(st.VertexCount))
	ch <- prometheus.MustNewConstMetric(c.edges, prometheus.GaugeValue, float64(st.EdgeCount))
	ch <- prometheus.MustNewConstMetric(c.maxDegree, prometheus.GaugeValue, float64(st.MaxDegree))
	ch <- prometheus.MustNewConstMetric(c.modifications, prometheus.CounterValue, float64(st.ModificationCount))
}
