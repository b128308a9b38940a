// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: Connect/Disconnect/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns each undirected edge once, A < B, sorted by (A, B).
// Counter policy:
//   - New edge, changed weight and removed edge each bump mc by one.
//   - Re-connecting with the same weight is a no-op.

package core

import (
	"math"
	"sort"
)

// Connect creates the undirected edge {a,b} with weight w, or updates its weight.
//
// Silently rejected (graph unchanged):
//   - w < 0 or w is NaN.
//   - a or b is not a vertex.
//   - a == b.
//
// Complexity: O(1) amortized.
func (g *Graph) Connect(a, b int, w float64) {
	_ = g.TryConnect(a, b, w)
}

// TryConnect is the strict form of Connect.
//
// Steps:
//  1. Validate weight, then endpoints, then the self-loop rule; -0 becomes +0.
//  2. Missing edge: write both directions, edgeCount++, mc++.
//  3. Existing edge with another weight: overwrite both directions, mc++.
//  4. Existing edge with the same weight: nothing.
//
// Errors:
//   - ErrNegativeWeight, ErrVertexNotFound, ErrSelfLoop.
func (g *Graph) TryConnect(a, b int, w float64) error {
	if w < 0 || math.IsNaN(w) {
		return ErrNegativeWeight
	}
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return ErrVertexNotFound
	}
	if a == b {
		return ErrSelfLoop
	}
	if w == 0 {
		w = 0 // store -0 as +0
	}

	old, exists := g.lookup(a, b)
	switch {
	case !exists:
		g.link(a, b, w)
		g.edgeCount++
		g.mc++
	case old != w:
		g.link(a, b, w)
		g.mc++
	}

	return nil
}

// Disconnect removes the edge {a,b}. Missing edges and a == b are no-ops.
// Complexity: O(1).
func (g *Graph) Disconnect(a, b int) {
	_ = g.TryDisconnect(a, b)
}

// TryDisconnect is the strict form of Disconnect.
//
// Errors:
//   - ErrSelfLoop: a == b.
//   - ErrVertexNotFound: either endpoint is unknown.
//   - ErrEdgeNotFound: both endpoints exist but are not adjacent.
func (g *Graph) TryDisconnect(a, b int) error {
	if a == b {
		return ErrSelfLoop
	}
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return ErrVertexNotFound
	}
	if _, ok := g.lookup(a, b); !ok {
		return ErrEdgeNotFound
	}
	g.unlink(a, b)
	g.edgeCount--
	g.mc++

	return nil
}

// HasEdge reports whether {a,b} is an edge.
// False for a == b, for unknown keys, and for a pair missing either direction.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	if a == b || !g.HasVertex(a) || !g.HasVertex(b) {
		return false
	}
	_, ok := g.lookup(a, b)

	return ok
}

// Weight returns the weight of {a,b}.
// Without an edge it returns (NoEdge, false); it never fails on unknown keys.
// Complexity: O(1).
func (g *Graph) Weight(a, b int) (float64, bool) {
	if !g.HasEdge(a, b) {
		return NoEdge, false
	}

	return g.lookup(a, b)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Edges returns every undirected edge once, normalized to A < B and sorted by (A, B).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for a, nb := range g.adjacency {
		for b, w := range nb {
			if a < b {
				out = append(out, Edge{A: a, B: b, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}
