// SPDX-License-Identifier: MIT

// Package wgraph is a compact, mutable, undirected weighted graph for
// algorithm layers that need O(1) adjacency and weight lookups over
// integer-keyed vertices.
//
// What is in the box:
//
//	core/         Graph, Vertex, Edge: the container, its invariants, fail-fast iterators
//	syncgraph/    RWMutex wrapper for graphs shared across goroutines
//	tagqueue/     B-tree priority queue over vertex tags (distances, keys)
//	gonumgraph/   gonum graph.WeightedUndirected adapter (Dijkstra, components, ...)
//	graphio/      YAML documents for fixtures and debugging
//	graphmetrics/ Prometheus collector for size and change counters
//	builder/      deterministic generators: Path, Cycle, Grid, RandomDegree, ...
//	cmd/wgraph    CLI to generate, inspect and query YAML graphs
//	examples/     output-checked scenarios combining the packages above
//
// Quick start:
//
//	g := core.NewGraph()
//	g.AddVertex(1)
//	g.AddVertex(2)
//	g.Connect(1, 2, 2.5)
//	w, ok := g.Weight(2, 1) // 2.5, true
//
// Guarantees:
//
//   - Undirected symmetry: Weight(a,b) == Weight(b,a) for every stored edge.
//   - No self-loops, no negative or NaN weights, at most one edge per pair.
//   - EdgeCount and ModificationCount are O(1); the counter moves only on
//     structural change, so cached algorithm results can be validated cheaply.
//   - core.Graph is single-owner; share it through syncgraph.
package wgraph
