// SPDX-License-Identifier: MIT
//
// File: syncgraph.go
// Role: Lock-wrapped core.Graph for callers that share one graph across goroutines.
// Policy:
//   - One sync.RWMutex guards the whole container: reads share, mutations exclude.
//   - Returned values are snapshots; no internal map or live *core.Vertex leaves the lock.
//   - Multi-step work goes through View/Update so it runs under a single critical section.

// Package syncgraph wraps core.Graph with a single RWMutex.
//
// core.Graph has no internal locking by contract. syncgraph.Graph is the
// external synchronization layer: every method takes the lock for its whole
// duration, and View/Update expose the underlying graph to a callback for
// compound operations.
package syncgraph

import (
	"sync"

	"github.com/katalvlaran/wgraph/core"
)

// VertexInfo is a detached copy of a vertex record.
type VertexInfo struct {
	Key  int
	Info string
	Tag  float64
}

func infoOf(v *core.Vertex) VertexInfo {
	return VertexInfo{Key: v.Key(), Info: v.Info(), Tag: v.Tag()}
}

// Graph is a core.Graph guarded by a RWMutex. The zero value is not usable; call New or Wrap.
type Graph struct {
	mu sync.RWMutex
	g  *core.Graph
}

// New returns an empty synchronized graph.
func New(opts ...core.GraphOption) *Graph {
	return &Graph{g: core.NewGraph(opts...)}
}

// Wrap takes ownership of g. The caller must not touch g directly afterwards.
func Wrap(g *core.Graph) *Graph {
	if g == nil {
		g = core.NewGraph()
	}

	return &Graph{g: g}
}

// View runs fn under the read lock. fn must not mutate the graph or retain it.
func (s *Graph) View(fn func(g *core.Graph)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.g)
}

// Update runs fn under the write lock. fn must not retain the graph.
func (s *Graph) Update(fn func(g *core.Graph)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.g)
}

// Snapshot returns a deep copy taken under the read lock.
func (s *Graph) Snapshot() *core.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Clone()
}

// AddVertex inserts key if missing.
func (s *Graph) AddVertex(key int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.AddVertex(key)
}

// TryAddVertex is the strict form of AddVertex.
func (s *Graph) TryAddVertex(key int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.TryAddVertex(key)
}

// AddVertexAuto inserts a vertex under the next unused key.
func (s *Graph) AddVertexAuto() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.AddVertexAuto()
}

// RemoveVertex deletes key and its edges, returning a copy of the removed record.
func (s *Graph) RemoveVertex(key int) (VertexInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.g.RemoveVertex(key)
	if !ok {
		return VertexInfo{}, false
	}

	return infoOf(v), true
}

// Vertex returns a copy of the record for key.
func (s *Graph) Vertex(key int) (VertexInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.g.Vertex(key)
	if !ok {
		return VertexInfo{}, false
	}

	return infoOf(v), true
}

// HasVertex reports whether key is present.
func (s *Graph) HasVertex(key int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.HasVertex(key)
}

// SetInfo writes the info label of key.
// It takes the write lock because the record is shared with readers.
func (s *Graph) SetInfo(key int, info string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.SetInfo(key, info)
}

// SetTag writes the tag of key.
func (s *Graph) SetTag(key int, tag float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.SetTag(key, tag)
}

// Connect creates or updates {a,b}; invalid input is ignored.
func (s *Graph) Connect(a, b int, w float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.Connect(a, b, w)
}

// TryConnect is the strict form of Connect.
func (s *Graph) TryConnect(a, b int, w float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.TryConnect(a, b, w)
}

// Disconnect removes {a,b} if present.
func (s *Graph) Disconnect(a, b int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.Disconnect(a, b)
}

// TryDisconnect is the strict form of Disconnect.
func (s *Graph) TryDisconnect(a, b int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.TryDisconnect(a, b)
}

// HasEdge reports whether {a,b} is an edge.
func (s *Graph) HasEdge(a, b int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.HasEdge(a, b)
}

// Weight returns the weight of {a,b}, or (core.NoEdge, false).
func (s *Graph) Weight(a, b int) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Weight(a, b)
}

// NeighborKeys returns the keys adjacent to key, sorted.
func (s *Graph) NeighborKeys(key int) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.NeighborKeys(key)
}

// Neighbors returns copies of the vertices adjacent to key, in unspecified order.
func (s *Graph) Neighbors(key int) []VertexInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nb := s.g.Neighbors(key)
	out := make([]VertexInfo, len(nb))
	for i, v := range nb {
		out[i] = infoOf(v)
	}

	return out
}

// Vertices returns copies of all vertices sorted by key.
func (s *Graph) Vertices() []VertexInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vs := s.g.Vertices()
	out := make([]VertexInfo, len(vs))
	for i, v := range vs {
		out[i] = infoOf(v)
	}

	return out
}

// Edges returns every undirected edge once, sorted.
func (s *Graph) Edges() []core.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Edges()
}

// Degree returns the number of edges incident to key.
func (s *Graph) Degree(key int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Degree(key)
}

// VertexCount returns the number of vertices.
func (s *Graph) VertexCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.VertexCount()
}

// EdgeCount returns the number of undirected edges.
func (s *Graph) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.EdgeCount()
}

// ModificationCount returns the change counter.
func (s *Graph) ModificationCount() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.ModificationCount()
}

// Stats returns a consistent summary taken under one read lock.
func (s *Graph) Stats() core.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Stats()
}

// Fingerprint returns the content hash of the current state.
func (s *Graph) Fingerprint() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Fingerprint()
}

// String renders the current state for debugging.
func (s *Graph) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.String()
}
