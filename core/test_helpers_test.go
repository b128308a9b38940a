// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for wgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Provide one invariant checker run after every mutation in property tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

// Common vertex keys used across core tests.
const (
	VertexA = 1
	VertexB = 2
	VertexC = 3
	VertexD = 4
	VertexX = 99 // never added
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0   = 0.0
	Weight1   = 1.0
	Weight2_5 = 2.5
	Weight5   = 5.0
	Weight7_5 = 7.5
	WeightNeg = -3.0
)

// NewSquare RETURNS the 4-cycle A-B-C-D-A with weights 1,2,3,4 plus the chord A-C (5).
//
//	A───B
//	│ ╲ │
//	D───C
func NewSquare(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, k := range []int{VertexA, VertexB, VertexC, VertexD} {
		require.NoError(t, g.TryAddVertex(k))
	}
	require.NoError(t, g.TryConnect(VertexA, VertexB, 1))
	require.NoError(t, g.TryConnect(VertexB, VertexC, 2))
	require.NoError(t, g.TryConnect(VertexC, VertexD, 3))
	require.NoError(t, g.TryConnect(VertexD, VertexA, 4))
	require.NoError(t, g.TryConnect(VertexA, VertexC, 5))

	return g
}

// RequireInvariants FAILS the test unless g satisfies every structural invariant:
// no self-loops, symmetric weights, non-negative weights, and
// EdgeCount == Σdeg/2 with every neighbor being a vertex.
func RequireInvariants(t *testing.T, g *core.Graph) {
	t.Helper()

	degreeSum := 0
	for _, v := range g.Vertices() {
		a := v.Key()
		require.False(t, g.HasEdge(a, a), "self-loop on %d", a)
		for _, b := range g.NeighborKeys(a) {
			require.True(t, g.HasVertex(b), "neighbor %d of %d is not a vertex", b, a)
			wab, ok := g.Weight(a, b)
			require.True(t, ok, "Weight(%d,%d)", a, b)
			wba, ok := g.Weight(b, a)
			require.True(t, ok, "Weight(%d,%d)", b, a)
			require.Equal(t, wab, wba, "asymmetric weight on {%d,%d}", a, b)
			require.GreaterOrEqual(t, wab, 0.0)
		}
		require.Equal(t, len(g.NeighborKeys(a)), g.Degree(a))
		degreeSum += g.Degree(a)
	}
	require.Equal(t, 0, degreeSum%2, "odd degree sum")
	require.Equal(t, degreeSum/2, g.EdgeCount(), "edge count vs. degree sum")
	require.Len(t, g.Edges(), g.EdgeCount())
	require.Len(t, g.Vertices(), g.VertexCount())
}
