// SPDX-License-Identifier: MIT
// Package core_test verifies fail-fast iteration and version checks.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wgraph/core"
)

// IteratorSuite runs every case against a fresh 4-cycle with a chord.
type IteratorSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *IteratorSuite) SetupTest() {
	s.g = NewSquare(s.T())
}

func (s *IteratorSuite) TestVerticesInKeyOrder() {
	it := s.g.IterVertices()
	var keys []int
	for it.Next() {
		keys = append(keys, it.Vertex().Key())
	}
	s.NoError(it.Err())
	s.Equal([]int{VertexA, VertexB, VertexC, VertexD}, keys)
	s.Nil(it.Vertex())
	s.False(it.Next())
}

func (s *IteratorSuite) TestNeighborsWithWeights() {
	it := s.g.IterNeighbors(VertexA)
	got := map[int]float64{}
	var order []int
	for it.Next() {
		got[it.Vertex().Key()] = it.Weight()
		order = append(order, it.Vertex().Key())
	}
	s.NoError(it.Err())
	s.Equal(map[int]float64{VertexB: 1, VertexC: 5, VertexD: 4}, got)
	s.Equal([]int{VertexB, VertexC, VertexD}, order)
	s.Equal(core.NoEdge, it.Weight())
}

func (s *IteratorSuite) TestNeighborsOfUnknownVertex() {
	it := s.g.IterNeighbors(VertexX)
	s.False(it.Next())
	s.NoError(it.Err())
}

func (s *IteratorSuite) TestStructuralChangeStopsVertexIteration() {
	it := s.g.IterVertices()
	s.True(it.Next())
	s.g.AddVertex(VertexX)
	s.False(it.Next())
	s.ErrorIs(it.Err(), core.ErrConcurrentModification)
	s.False(it.Next(), "a failed iterator stays failed")
}

func (s *IteratorSuite) TestWeightChangeStopsNeighborIteration() {
	it := s.g.IterNeighbors(VertexA)
	s.True(it.Next())
	s.g.Connect(VertexA, VertexB, 11)
	s.False(it.Next())
	s.ErrorIs(it.Err(), core.ErrConcurrentModification)
	s.Nil(it.Vertex())
}

func (s *IteratorSuite) TestRemovalDuringIteration() {
	it := s.g.IterNeighbors(VertexA)
	for it.Next() {
		s.g.RemoveVertex(it.Vertex().Key())
	}
	s.ErrorIs(it.Err(), core.ErrConcurrentModification)
	RequireInvariants(s.T(), s.g)
}

func (s *IteratorSuite) TestScratchWritesAreAllowed() {
	it := s.g.IterVertices()
	n := 0
	for it.Next() {
		it.Vertex().SetTag(float64(n))
		it.Vertex().SetInfo("seen")
		n++
	}
	s.NoError(it.Err())
	s.Equal(4, n)
}

func (s *IteratorSuite) TestNoOpMutationsKeepIteratorValid() {
	it := s.g.IterVertices()
	s.True(it.Next())
	s.g.AddVertex(VertexA)            // already present
	s.g.Connect(VertexA, VertexB, 1)  // same weight
	s.g.Connect(VertexA, VertexA, 1)  // self-loop, rejected
	s.g.Disconnect(VertexB, VertexD)  // no such edge
	s.g.RemoveVertex(VertexX)         // unknown
	s.g.Connect(VertexA, VertexB, -1) // negative, rejected
	s.True(it.Next())
	s.NoError(it.Err())
}

func (s *IteratorSuite) TestCheckUnmodified() {
	v := s.g.ModificationCount()
	s.NoError(s.g.CheckUnmodified(v))
	_ = s.g.Neighbors(VertexA)
	s.NoError(s.g.CheckUnmodified(v))
	s.g.Disconnect(VertexA, VertexB)
	s.ErrorIs(s.g.CheckUnmodified(v), core.ErrConcurrentModification)
}

func TestIteratorSuite(t *testing.T) {
	suite.Run(t, new(IteratorSuite))
}
