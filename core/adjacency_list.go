// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Internal helpers for the symmetric adjacency index.
// Policy:
//   - Helpers touch adjacency only; counters are maintained by callers.
//   - Neighbor buckets are created lazily on the first incident edge and
//     dropped when the last one goes away, so isolated vertices cost one map entry.

package core

// link records a→b and b→a with weight w, allocating buckets on demand.
// Complexity: O(1) amortized.
func (g *Graph) link(a, b int, w float64) {
	g.bucket(a)[b] = w
	g.bucket(b)[a] = w
}

// bucket returns the neighbor map of key, creating it if missing.
func (g *Graph) bucket(key int) map[int]float64 {
	nb := g.adjacency[key]
	if nb == nil {
		nb = make(map[int]float64)
		g.adjacency[key] = nb
	}

	return nb
}

// unlink removes both directed entries of {a,b} and prunes empty buckets.
// Complexity: O(1).
func (g *Graph) unlink(a, b int) {
	g.drop(a, b)
	g.drop(b, a)
}

// drop removes the single directed entry from→to.
func (g *Graph) drop(from, to int) {
	nb := g.adjacency[from]
	if nb == nil {
		return
	}
	delete(nb, to)
	if len(nb) == 0 {
		delete(g.adjacency, from)
	}
}

// lookup returns the weight of {a,b} when both directed entries exist.
// A half-built pair (only one direction present) reads as missing.
func (g *Graph) lookup(a, b int) (float64, bool) {
	w, ok := g.adjacency[a][b]
	if !ok {
		return NoEdge, false
	}
	if _, back := g.adjacency[b][a]; !back {
		return NoEdge, false
	}

	return w, true
}

// removeIncident strips every edge incident to key.
// Each removal bumps mc and decrements edgeCount, exactly as Disconnect would.
// Complexity: O(deg(key)).
func (g *Graph) removeIncident(key int) {
	nb := g.adjacency[key]
	if len(nb) == 0 {
		return
	}
	// Collect first: unlink mutates the bucket being walked.
	peers := make([]int, 0, len(nb))
	for peer := range nb {
		peers = append(peers, peer)
	}
	for _, peer := range peers {
		g.unlink(key, peer)
		g.edgeCount--
		g.mc++
	}
}
