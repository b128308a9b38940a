// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Policy:
//   - Graph is single-owner: no locks, no atomics. Wrap it with syncgraph for shared use.
//   - Default mutators never fail loudly; the Try* family reports misuse with the sentinels below.
//   - Internal maps never escape the package.

package core

import (
	"errors"
	"fmt"
	"math"
)

// NoEdge is the weight reported by Weight for a missing edge.
const NoEdge float64 = -1

// Sentinel errors returned by the strict (Try*) surface and by iterators.
var (
	// ErrVertexExists indicates TryAddVertex was called with a key already present.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a key that is not in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates TryDisconnect was called for a pair without an edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates both endpoints of an edge operation are the same vertex.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates a weight below zero (or NaN) was supplied to TryConnect.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrConcurrentModification indicates the graph was structurally changed while
	// an iterator or a cached version was still in use.
	ErrConcurrentModification = errors.New("core: graph modified during iteration")
)

// Vertex is a graph node: an immutable integer key plus two scratch fields
// (info and tag) that belong to whoever runs algorithms over the graph.
//
// Writing info or tag never changes the graph structure and therefore never
// bumps the modification counter.
type Vertex struct {
	key  int
	info string
	tag  float64
}

// Key returns the unique identity of the vertex.
func (v *Vertex) Key() int { return v.key }

// Info returns the free-form label.
func (v *Vertex) Info() string { return v.info }

// SetInfo replaces the free-form label.
func (v *Vertex) SetInfo(s string) { v.info = s }

// Tag returns the scratch value.
func (v *Vertex) Tag() float64 { return v.tag }

// SetTag replaces the scratch value.
func (v *Vertex) SetTag(t float64) { v.tag = t }

// Compare orders vertices by tag: -1 if v.Tag() < o.Tag(), +1 if greater, 0 otherwise.
// NaN tags sort before every number, as in cmp.Compare.
func (v *Vertex) Compare(o *Vertex) int {
	switch {
	case v.tag < o.tag || (math.IsNaN(v.tag) && !math.IsNaN(o.tag)):
		return -1
	case v.tag > o.tag || (!math.IsNaN(v.tag) && math.IsNaN(o.tag)):
		return 1
	default:
		return 0
	}
}

// String renders the vertex for debugging.
func (v *Vertex) String() string {
	return fmt.Sprintf("Vertex{key=%d, info=%q, tag=%g}", v.key, v.info, v.tag)
}

// ByTag is a less function ordering vertices by tag, then by key.
// It gives a strict total order suitable for sort.Slice and ordered containers.
func ByTag(a, b *Vertex) bool {
	if c := a.Compare(b); c != 0 {
		return c < 0
	}

	return a.key < b.key
}

// Edge is the value form of an undirected edge returned by snapshots.
// Snapshots normalize endpoints so that A < B.
type Edge struct {
	A      int
	B      int
	Weight float64
}

// String renders the edge as {a,b;weight}.
func (e Edge) String() string {
	return fmt.Sprintf("{%d,%d;%g}", e.A, e.B, e.Weight)
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity presizes the vertex and adjacency maps for n vertices.
// Negative values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// WithKeyStart sets the first key tried by AddVertexAuto.
func WithKeyStart(k int) GraphOption {
	return func(g *Graph) { g.nextKey = k }
}

// Graph is a mutable, undirected, weighted graph without self-loops or parallel edges.
//
// Storage:
//   - vertices: key → *Vertex.
//   - adjacency: key → (neighbor key → weight). Every edge is recorded in both
//     directions with the same weight.
//   - edgeCount counts undirected pairs once.
//   - mc is bumped on every vertex add/remove and edge add/update/remove.
//
// A Graph must not be used from several goroutines without external locking.
type Graph struct {
	vertices  map[int]*Vertex
	adjacency map[int]map[int]float64

	edgeCount int
	mc        uint64

	nextKey  int // cursor for AddVertexAuto
	capacity int // presize hint, applied once in NewGraph
}

// NewGraph returns an empty Graph configured by opts.
// Complexity: O(capacity) for presized maps, otherwise O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[int]*Vertex, g.capacity)
	g.adjacency = make(map[int]map[int]float64, g.capacity)

	return g
}
