// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices sorted by key ascending.
//
// Counter policy:
//   - AddVertex of a new key and RemoveVertex of a present key bump mc.
//   - Info/tag writes never bump mc.
package core

import "sort"

// AddVertex inserts a vertex with the given key if missing (idempotent).
//
// Behavior highlights:
//   - A present key is left untouched: no count change, no counter bump.
//   - New vertices start with an empty info and a zero tag.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(key int) {
	_ = g.TryAddVertex(key)
}

// TryAddVertex is the strict form of AddVertex.
//
// Errors:
//   - ErrVertexExists: key is already present (graph unchanged).
func (g *Graph) TryAddVertex(key int) error {
	if _, exists := g.vertices[key]; exists {
		return ErrVertexExists
	}
	g.vertices[key] = &Vertex{key: key}
	g.mc++

	return nil
}

// AddVertexAuto inserts a vertex under the next unused key and returns that key.
//
// Implementation:
//   - Stage 1: Start from the internal cursor (WithKeyStart, default 0).
//   - Stage 2: Skip keys already taken by caller-chosen vertices.
//   - Stage 3: Insert and advance the cursor past the returned key.
//
// Complexity:
//   - Amortized O(1); a run of k occupied keys is skipped once.
func (g *Graph) AddVertexAuto() int {
	for {
		if _, taken := g.vertices[g.nextKey]; !taken {
			break
		}
		g.nextKey++
	}
	key := g.nextKey
	g.nextKey++
	g.AddVertex(key)

	return key
}

// HasVertex reports whether key is present.
// Complexity: O(1).
func (g *Graph) HasVertex(key int) bool {
	_, ok := g.vertices[key]

	return ok
}

// Vertex returns the live vertex record for key.
//
// The record may be used to read the key and to read or write info/tag;
// those writes are not structural and leave the counter alone.
// Complexity: O(1).
func (g *Graph) Vertex(key int) (*Vertex, bool) {
	v, ok := g.vertices[key]

	return v, ok
}

// SetInfo writes the info label of key. Returns false for an unknown key.
func (g *Graph) SetInfo(key int, s string) bool {
	v, ok := g.vertices[key]
	if !ok {
		return false
	}
	v.info = s

	return true
}

// SetTag writes the tag of key. Returns false for an unknown key.
func (g *Graph) SetTag(key int, t float64) bool {
	v, ok := g.vertices[key]
	if !ok {
		return false
	}
	v.tag = t

	return true
}

// RemoveVertex deletes key and every edge incident to it, and returns the removed record.
//
// Implementation:
//   - Stage 1: Return (nil,false) for an unknown key, without side effects.
//   - Stage 2: Strip incident edges (each one counts as an edge removal).
//   - Stage 3: Delete the vertex record and bump mc once more.
//
// Complexity:
//   - Time O(deg(key)), Space O(deg(key)) for the peer list.
func (g *Graph) RemoveVertex(key int) (*Vertex, bool) {
	v, err := g.TryRemoveVertex(key)

	return v, err == nil
}

// TryRemoveVertex is the strict form of RemoveVertex.
//
// Errors:
//   - ErrVertexNotFound: key is not present.
func (g *Graph) TryRemoveVertex(key int) (*Vertex, error) {
	v, ok := g.vertices[key]
	if !ok {
		return nil, ErrVertexNotFound
	}
	g.removeIncident(key)
	delete(g.vertices, key)
	g.mc++

	return v, nil
}

// Vertices returns a snapshot of all vertices sorted by key ascending.
//
// The slice is owned by the caller; the *Vertex values are the live records.
// Complexity: O(V log V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })

	return out
}

// Keys returns all vertex keys sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Keys() []int {
	keys := make([]int, 0, len(g.vertices))
	for k := range g.vertices {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}
