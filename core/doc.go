// SPDX-License-Identifier: MIT

// Package core provides a compact, mutable, undirected weighted graph sized
// for millions of vertices with moderate degree.
//
// The Graph G = (V,E) keeps:
//
//   - A vertex store: integer key → *Vertex (key, info label, tag).
//   - A symmetric adjacency index: adjacency[a][b] == adjacency[b][a] == weight.
//   - A modification counter bumped on every structural or weight change.
//
// Invariants held after every public call:
//
//   - No self-loops, no parallel edges, weights ≥ 0.
//   - Symmetry: {a,b} with weight w exists iff both directed entries carry w.
//   - EdgeCount() counts undirected pairs once.
//   - RemoveVertex strips incident edges before the vertex record goes.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(key int)                      // O(1), idempotent
//	AddVertexAuto() int                     // O(1) amortized
//	RemoveVertex(key int) (*Vertex, bool)   // O(deg)
//	Vertex(key int) (*Vertex, bool)         // O(1)
//
//	// Edge lifecycle
//	Connect(a, b int, w float64)            // O(1), create or update
//	Disconnect(a, b int)                    // O(1)
//	HasEdge(a, b int) bool                  // O(1)
//	Weight(a, b int) (float64, bool)        // O(1), NoEdge when absent
//
//	// Query
//	Neighbors(key int) []*Vertex            // O(deg), unordered
//	Vertices() []*Vertex                    // O(V log V), sorted by key
//	Edges() []Edge                          // O(E log E), sorted, once per pair
//	VertexCount(), EdgeCount() int          // O(1)
//	ModificationCount() uint64              // O(1)
//
//	// Whole graph
//	Equal(other *Graph) bool                // O(V+E)
//	Fingerprint() uint64                    // O(V+E)
//	Clone() *Graph                          // O(V+E)
//
// Error policy:
//
// The default methods never panic and never return errors: negative weights,
// self-loops, unknown keys and duplicate adds are ignored, and queries answer
// false/NoEdge/empty. Callers that want misuse reported use the strict
// variants (TryAddVertex, TryRemoveVertex, TryConnect, TryDisconnect), which
// return the Err* sentinels of this package.
//
// Concurrency:
//
// A Graph has a single owner. There are no locks inside; see package
// syncgraph for a lock-wrapped graph. Iterators returned by IterVertices and
// IterNeighbors detect structural changes made while they are open and stop
// with ErrConcurrentModification.
package core
