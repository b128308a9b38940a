// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_random_degree.go - implementation of RandomDegree(n, d) constructor.
//
// Canonical model:
//   - n vertices, then uniformly drawn pairs until n·d/2 distinct edges exist
//     (average degree d). Self-pairs and repeats are redrawn.
//
// Contract:
//   - n ≥ 2 and 0 ≤ d ≤ n-1 (else ErrTooFewVertices).
//   - cfg.rng is required when d > 0 (else ErrNeedRandSource).
//   - Draws are bounded by maxDrawFactor per target edge plus a constant;
//     exhausting them yields ErrConstructFailed. Only near-complete targets can hit it.
//
// Complexity:
//   - Time: expected O(n·d) for d ≪ n, no O(n²) scan; suits million-vertex fixtures.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodRandomDegree = "RandomDegree"
	minDegreeVertices  = 2
	maxDrawFactor      = 32
	minDraws           = 1024
)

// RandomDegree returns a Constructor that samples a sparse graph with average degree d.
func RandomDegree(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minDegreeVertices {
			return tooFew(methodRandomDegree, n, minDegreeVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomDegree, n, d, ErrTooFewVertices)
		}
		if d > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDegree, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomDegree, n); err != nil {
			return err
		}

		target := n * d / 2
		budget := target*maxDrawFactor + minDraws
		for made := 0; made < target; {
			if budget == 0 {
				return fmt.Errorf("%s: %d of %d edges after exhausting draws: %w",
					methodRandomDegree, made, target, ErrConstructFailed)
			}
			budget--
			i, j := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if i == j || g.HasEdge(cfg.key(i), cfg.key(j)) {
				continue
			}
			if err := connect(g, cfg, methodRandomDegree, i, j); err != nil {
				return err
			}
			made++
		}

		return nil
	}
}
