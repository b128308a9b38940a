// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Identity:
//   - Clone carries the modification counter and the auto-key cursor, so a
//     clone continues the same key sequence and version history.

package core

// CloneEmpty returns a new Graph with copies of all vertices (info and tag
// included) and no edges. The clone's counter equals its vertex count, as if
// each vertex had been added once.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	clone := NewGraph(WithCapacity(len(g.vertices)), WithKeyStart(g.nextKey))
	for k, v := range g.vertices {
		clone.vertices[k] = &Vertex{key: v.key, info: v.info, tag: v.tag}
	}
	clone.mc = uint64(len(clone.vertices))

	return clone
}

// Clone returns a deep copy: vertices, adjacency, counts and counter.
// Mutating either graph afterwards never affects the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for k, nb := range g.adjacency {
		cp := make(map[int]float64, len(nb))
		for peer, w := range nb {
			cp[peer] = w
		}
		clone.adjacency[k] = cp
	}
	clone.edgeCount = g.edgeCount
	clone.mc = g.mc

	return clone
}

// Clear removes every vertex and edge. The counter keeps growing: Clear bumps
// it once so cached versions are invalidated even on an already empty graph.
//
// Complexity: O(1) (maps are reallocated).
func (g *Graph) Clear() {
	g.vertices = make(map[int]*Vertex, g.capacity)
	g.adjacency = make(map[int]map[int]float64, g.capacity)
	g.edgeCount = 0
	g.mc++
}
