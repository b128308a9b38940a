// SPDX-License-Identifier: MIT

// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wgraph/core"
)

// benchVertices and benchDegree approximate the target workload: many
// vertices with an average degree around ten.
const (
	benchVertices = 100_000
	benchDegree   = 10
)

// sparseGraph builds benchVertices vertices with ~benchDegree random edges each.
func sparseGraph(b *testing.B) *core.Graph {
	b.Helper()
	r := rand.New(rand.NewSource(1))
	g := core.NewGraph(core.WithCapacity(benchVertices))
	for i := 0; i < benchVertices; i++ {
		g.AddVertex(i)
	}
	for i := 0; i < benchVertices*benchDegree/2; i++ {
		g.Connect(r.Intn(benchVertices), r.Intn(benchVertices), r.Float64())
	}

	return g
}

// BenchmarkAddVertex measures vertex insertion on a presized graph.
func BenchmarkAddVertex(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(b.N))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddVertex(i)
	}
}

// BenchmarkConnect measures edge insertion between random existing vertices.
func BenchmarkConnect(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(benchVertices))
	for i := 0; i < benchVertices; i++ {
		g.AddVertex(i)
	}
	r := rand.New(rand.NewSource(2))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Connect(r.Intn(benchVertices), r.Intn(benchVertices), 1)
	}
}

// BenchmarkWeight measures the O(1) weight lookup.
func BenchmarkWeight(b *testing.B) {
	g := sparseGraph(b)
	r := rand.New(rand.NewSource(3))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Weight(r.Intn(benchVertices), r.Intn(benchVertices))
	}
}

// BenchmarkRangeNeighbors measures allocation-free neighborhood scans.
func BenchmarkRangeNeighbors(b *testing.B) {
	g := sparseGraph(b)
	var sum float64
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.RangeNeighbors(i%benchVertices, func(_ *core.Vertex, w float64) bool {
			sum += w
			return true
		})
	}
	_ = sum
}

// BenchmarkRemoveVertex measures cascading removal at average degree.
func BenchmarkRemoveVertex(b *testing.B) {
	g := sparseGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := i % benchVertices
		g.RemoveVertex(k)
		b.StopTimer()
		g.AddVertex(k)
		b.StartTimer()
	}
}
