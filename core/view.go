// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Fail-fast iterators over vertices and neighborhoods.
// Contract:
//   - An iterator snapshots the keys it will visit and the modification counter.
//   - Any structural change afterwards ends the iteration: Next returns false
//     and Err returns ErrConcurrentModification.
//   - Info/tag writes through Vertex() are allowed while iterating.

package core

import "sort"

// VertexIterator walks vertices in ascending key order.
//
//	it := g.IterVertices()
//	for it.Next() {
//		v := it.Vertex()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
type VertexIterator struct {
	g       *Graph
	keys    []int
	pos     int
	cur     *Vertex
	version uint64
	err     error
}

// IterVertices returns an iterator over all vertices, sorted by key.
// Complexity: O(V log V) to set up, O(1) per step.
func (g *Graph) IterVertices() *VertexIterator {
	return &VertexIterator{g: g, keys: g.Keys(), pos: -1, version: g.mc}
}

// Next advances to the next vertex. It returns false at the end or after the
// graph was modified.
func (it *VertexIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if err := it.g.CheckUnmodified(it.version); err != nil {
		it.err = err
		it.cur = nil
		return false
	}
	it.pos++
	if it.pos >= len(it.keys) {
		it.cur = nil
		return false
	}
	it.cur = it.g.vertices[it.keys[it.pos]]

	return true
}

// Vertex returns the current vertex, or nil before Next or after the end.
func (it *VertexIterator) Vertex() *Vertex { return it.cur }

// Err returns ErrConcurrentModification if iteration stopped because the graph changed.
func (it *VertexIterator) Err() error { return it.err }

// NeighborIterator walks the neighbors of one vertex in ascending key order,
// exposing the connecting edge weight.
type NeighborIterator struct {
	g       *Graph
	from    int
	keys    []int
	pos     int
	cur     *Vertex
	w       float64
	version uint64
	err     error
}

// IterNeighbors returns an iterator over the neighbors of key.
// Unknown or isolated keys yield an empty iteration.
// Complexity: O(d log d) to set up, O(1) per step.
func (g *Graph) IterNeighbors(key int) *NeighborIterator {
	nb := g.adjacency[key]
	keys := make([]int, 0, len(nb))
	for peer := range nb {
		keys = append(keys, peer)
	}
	sort.Ints(keys)

	return &NeighborIterator{g: g, from: key, keys: keys, pos: -1, w: NoEdge, version: g.mc}
}

// Next advances to the next neighbor.
func (it *NeighborIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if err := it.g.CheckUnmodified(it.version); err != nil {
		it.err = err
		it.cur, it.w = nil, NoEdge
		return false
	}
	it.pos++
	if it.pos >= len(it.keys) {
		it.cur, it.w = nil, NoEdge
		return false
	}
	peer := it.keys[it.pos]
	it.cur = it.g.vertices[peer]
	it.w = it.g.adjacency[it.from][peer]

	return true
}

// Vertex returns the current neighbor.
func (it *NeighborIterator) Vertex() *Vertex { return it.cur }

// Weight returns the weight of the edge to the current neighbor, or NoEdge.
func (it *NeighborIterator) Weight() float64 { return it.w }

// Err returns ErrConcurrentModification if iteration stopped because the graph changed.
func (it *NeighborIterator) Err() error { return it.err }
