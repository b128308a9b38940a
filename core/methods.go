// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Whole-graph comparisons and renderings: Equal, Fingerprint, String.
// Determinism:
//   - String() lists keys ascending and edges by (A, B); each edge appears once.
//   - Fingerprint() does not depend on insertion or map order.

package core

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether g and other hold the same vertex keys and the same
// edges with identical weights. Vertex info and tags are not compared, nor is
// the modification counter.
//
// Implementation:
//   - Stage 1: Compare vertex and edge counts (O(1) rejection).
//   - Stage 2: Every key of g must be a key of other. Equal counts make the sets equal.
//   - Stage 3: Every directed entry of g must exist in other with the same weight.
//     Equal edge counts and symmetry make the edge sets equal.
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}
	if len(g.vertices) != len(other.vertices) || g.edgeCount != other.edgeCount {
		return false
	}
	for k := range g.vertices {
		if _, ok := other.vertices[k]; !ok {
			return false
		}
	}
	for a, nb := range g.adjacency {
		for b, w := range nb {
			ow, ok := other.lookup(a, b)
			if !ok || ow != w {
				return false
			}
		}
	}

	return true
}

// Fingerprint returns a 64-bit content hash: equal graphs (per Equal) hash equal.
//
// Each vertex key and each undirected edge is hashed on its own with xxhash and
// the results are summed, so the value is independent of map iteration order.
// Complexity: O(V + E).
func (g *Graph) Fingerprint() uint64 {
	var (
		buf [25]byte
		sum uint64
	)
	buf[0] = 'v'
	for k := range g.vertices {
		binary.LittleEndian.PutUint64(buf[1:9], uint64(int64(k)))
		sum += xxhash.Sum64(buf[:9])
	}
	buf[0] = 'e'
	for a, nb := range g.adjacency {
		for b, w := range nb {
			if a > b {
				continue
			}
			binary.LittleEndian.PutUint64(buf[1:9], uint64(int64(a)))
			binary.LittleEndian.PutUint64(buf[9:17], uint64(int64(b)))
			binary.LittleEndian.PutUint64(buf[17:25], math.Float64bits(w))
			sum += xxhash.Sum64(buf[:])
		}
	}

	return sum ^ uint64(len(g.vertices))<<32 ^ uint64(g.edgeCount)
}

// String renders the graph for debugging and test fixtures:
//
//	Ver: [1 2 3]
//	Edg: [{1,2;5} {2,3;0.5}]
//
// The layout is not a stable format.
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString("Ver: [")
	for i, k := range g.Keys() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(k))
	}
	sb.WriteString("]\nEdg: [")
	for i, e := range g.Edges() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
