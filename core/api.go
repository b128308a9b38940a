// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: modification counter, version checks and Stats snapshots.
// Policy:
//   - No mutation here; every function is a pure read.

package core

// Stats is a point-in-time summary of a graph.
type Stats struct {
	VertexCount       int
	EdgeCount         int
	ModificationCount uint64
	MaxDegree         int
}

// AverageDegree returns 2E/V, or 0 for an empty graph.
func (s Stats) AverageDegree() float64 {
	if s.VertexCount == 0 {
		return 0
	}

	return 2 * float64(s.EdgeCount) / float64(s.VertexCount)
}

// ModificationCount returns the change counter.
//
// It grows by one for every vertex added or removed, every edge added or
// removed, and every edge weight changed. Reads and info/tag writes leave it alone.
// Complexity: O(1).
func (g *Graph) ModificationCount() uint64 {
	return g.mc
}

// CheckUnmodified returns ErrConcurrentModification if the graph changed since
// version was read from ModificationCount.
//
// Algorithms that cache results keyed by the counter call this before reuse.
func (g *Graph) CheckUnmodified(version uint64) error {
	if g.mc != version {
		return ErrConcurrentModification
	}

	return nil
}

// Stats returns counts plus the maximum degree.
// Complexity: O(V) for MaxDegree; the rest is O(1).
func (g *Graph) Stats() Stats {
	s := Stats{
		VertexCount:       len(g.vertices),
		EdgeCount:         g.edgeCount,
		ModificationCount: g.mc,
	}
	for _, nb := range g.adjacency {
		if len(nb) > s.MaxDegree {
			s.MaxDegree = len(nb)
		}
	}

	return s
}
