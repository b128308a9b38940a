// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborKeys, Degree, RangeNeighbors).
// Determinism:
//   - Neighbors() order is unspecified (map order); cost stays O(deg).
//   - NeighborKeys() is sorted ascending for stable output.
// Ownership:
//   - Returned slices are fresh; the neighbor map itself never leaves the package.

package core

import "sort"

// Neighbors returns the vertices adjacent to key, in unspecified order.
//
// Behavior highlights:
//   - Unknown or isolated key → empty (non-nil) slice.
//   - The *Vertex values are live records; the slice is a snapshot.
//
// Complexity:
//   - Time O(deg(key)), Space O(deg(key)).
func (g *Graph) Neighbors(key int) []*Vertex {
	nb := g.adjacency[key]
	out := make([]*Vertex, 0, len(nb))
	for peer := range nb {
		if v, ok := g.vertices[peer]; ok {
			out = append(out, v)
		}
	}

	return out
}

// NeighborKeys returns the keys adjacent to key, sorted ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborKeys(key int) []int {
	nb := g.adjacency[key]
	out := make([]int, 0, len(nb))
	for peer := range nb {
		out = append(out, peer)
	}
	sort.Ints(out)

	return out
}

// Degree returns the number of edges incident to key (0 for unknown keys).
// Complexity: O(1).
func (g *Graph) Degree(key int) int {
	return len(g.adjacency[key])
}

// RangeNeighbors calls fn for every neighbor of key with the edge weight,
// stopping early when fn returns false. It allocates nothing.
//
// fn must not mutate the graph structure; doing so is undefined behavior.
// Use IterNeighbors when mutation detection is needed.
// Complexity: O(deg(key)).
func (g *Graph) RangeNeighbors(key int, fn func(v *Vertex, w float64) bool) {
	for peer, w := range g.adjacency[key] {
		v, ok := g.vertices[peer]
		if !ok {
			continue
		}
		if !fn(v, w) {
			return
		}
	}
}
