// SPDX-License-Identifier: MIT

// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, counts, determinism and default weights.
package builder_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
)

// requireEdges asserts that every pair is an edge of weight DefaultEdgeWeight.
func requireEdges(t *testing.T, g *core.Graph, pairs ...[2]int) {
	t.Helper()
	for _, p := range pairs {
		w, ok := g.Weight(p[0], p[1])
		require.True(t, ok, "missing edge %d-%d", p[0], p[1])
		require.Equal(t, builder.DefaultEdgeWeight, w, "weight of %d-%d", p[0], p[1])
	}
}

// degreeSum must equal twice the edge count in any simple undirected graph.
func degreeSum(g *core.Graph) int {
	sum := 0
	for _, k := range g.Keys() {
		sum += g.Degree(k)
	}

	return sum
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					requireEdges(t, g, [2]int{i, (i + 1) % 5})
					assert.Equal(t, 2, g.Degree(i))
				}
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				requireEdges(t, g, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
				assert.False(t, g.HasEdge(3, 0))
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				requireEdges(t, g, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
				assert.Equal(t, 3, g.Degree(0))
			},
		},
		{
			name:  "Wheel(5)",
			ctor:  builder.Wheel(5),
			wantV: 5, wantE: 8, // 4 rim + 4 spokes
			sampleCheck: func(t *testing.T, g *core.Graph) {
				requireEdges(t, g, [2]int{1, 2}, [2]int{4, 1}, [2]int{0, 3})
				assert.Equal(t, 4, g.Degree(0))
				assert.Equal(t, 3, g.Degree(2))
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				requireEdges(t, g, [2]int{0, 1}, [2]int{1, 3}, [2]int{2, 3})
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {},
		},
		{
			name:  "Grid(2x3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7, // 2*(3-1) + (2-1)*3
			sampleCheck: func(t *testing.T, g *core.Graph) {
				requireEdges(t, g, [2]int{0, 1}, [2]int{0, 3}, [2]int{4, 5})
				assert.False(t, g.HasEdge(2, 3), "no wrap between rows")
			},
		},
		{
			name:  "RandomSparse_p0(5)",
			ctor:  builder.RandomSparse(5, 0.0),
			wantV: 5, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {},
		},
		{
			name:  "RandomSparse_p1(5)",
			ctor:  builder.RandomSparse(5, 1.0),
			wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				requireEdges(t, g, [2]int{0, 4})
			},
		},
		{
			name:  "RandomDegree_d0(5)",
			ctor:  builder.RandomDegree(5, 0),
			wantV: 5, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount(), "vertices")
			assert.Equal(t, tc.wantE, g.EdgeCount(), "edges")
			assert.Equal(t, 2*g.EdgeCount(), degreeSum(g))
			tc.sampleCheck(t, g)

			// Determinism: a second run yields the same content.
			g2, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.True(t, g.Equal(g2))
		})
	}
}

// TestBuilders_Validation checks the sentinel reported for each bad parameter.
func TestBuilders_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Grid(0x3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"RandomSparse(0)", builder.RandomSparse(0, 0.5), nil, builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(5, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(5, 1.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(5, 0.5), nil, builder.ErrNeedRandSource},
		{"RandomDegree(1)", builder.RandomDegree(1, 0), nil, builder.ErrTooFewVertices},
		{"RandomDegree(d=n)", builder.RandomDegree(4, 4), nil, builder.ErrTooFewVertices},
		{"RandomDegree(no rng)", builder.RandomDegree(10, 2), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"negative weight", builder.Path(3), []builder.BuilderOption{
			builder.WithWeightFn(func(_ *rand.Rand) float64 { return -1 }),
		}, core.ErrNegativeWeight},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Nil(t, g)
		})
	}
}

func TestRandomSparse_Seeded(t *testing.T) {
	t.Parallel()
	opts := []builder.BuilderOption{builder.WithSeed(11), builder.WithUniformWeight(1, 10)}
	g1, err := builder.BuildGraph(nil, opts, builder.RandomSparse(40, 0.2))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(11), builder.WithUniformWeight(1, 10)},
		builder.RandomSparse(40, 0.2))
	require.NoError(t, err)

	assert.Equal(t, g1.Fingerprint(), g2.Fingerprint())
	assert.Greater(t, g1.EdgeCount(), 0)
	assert.Less(t, g1.EdgeCount(), 40*39/2)
	for _, e := range g1.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.Less(t, e.Weight, 10.0)
	}
}

func TestRandomDegree_Seeded(t *testing.T) {
	t.Parallel()
	const n, d = 2000, 10
	g, err := builder.BuildGraph([]core.GraphOption{core.WithCapacity(n)},
		[]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomDegree(n, d))
	require.NoError(t, err)
	assert.Equal(t, n, g.VertexCount())
	assert.Equal(t, n*d/2, g.EdgeCount())
	assert.InDelta(t, float64(d), g.Stats().AverageDegree(), 1e-9)

	again, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomDegree(n, d))
	require.NoError(t, err)
	assert.True(t, g.Equal(again))

	// Dense target still completes within the draw budget.
	k, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomDegree(8, 7))
	require.NoError(t, err)
	assert.Equal(t, 28, k.EdgeCount())
}

func TestKeyOffsetAndComposition(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithKeyOffset(100)}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []int{100, 101, 102}, g.Keys())

	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithKeyOffset(0)}, builder.Cycle(3)))
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())

	// Overlapping keys collide instead of merging.
	err = builder.Apply(g, nil, builder.Star(2))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, core.ErrVertexExists)

	require.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

func TestBuildGraph_GraphOptions(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph([]core.GraphOption{core.WithKeyStart(50)}, nil, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, 50, g.AddVertexAuto(), "graph options reach the new graph")
}

func TestWeightOptions_Distributions(t *testing.T) {
	t.Parallel()
	build := func(opt builder.BuilderOption) *core.Graph {
		t.Helper()
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(5), opt}, builder.Complete(20))
		require.NoError(t, err)
		require.Equal(t, 190, g.EdgeCount())

		return g
	}
	mean := func(g *core.Graph) float64 {
		sum := 0.0
		for _, e := range g.Edges() {
			sum += e.Weight
		}

		return sum / float64(g.EdgeCount())
	}

	normal := build(builder.WithNormalWeight(5, 1))
	for _, e := range normal.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 0.0)
	}
	assert.InDelta(t, 5.0, mean(normal), 0.5)

	// Far below zero every draw clips to 0.
	for _, e := range build(builder.WithNormalWeight(-100, 1)).Edges() {
		assert.Zero(t, e.Weight)
	}

	exp := build(builder.WithExponentialWeight(2))
	assert.InDelta(t, 0.5, mean(exp), 0.2)

	for _, e := range build(builder.WithConstantWeight(2.5)).Edges() {
		assert.Equal(t, 2.5, e.Weight)
	}

	assert.Panics(t, func() { builder.WithUniformWeight(0, math.Inf(1)) })
	assert.Panics(t, func() { builder.WithNormalWeight(math.NaN(), 1) })
}
