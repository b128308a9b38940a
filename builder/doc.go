// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph fixtures for tests,
// benchmarks and the wgraph CLI.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a core.Graph and apply constructors in order.
//     – Constructor: func(g *core.Graph, cfg builderConfig) error.
//   - Options (BuilderOption):
//     – WithSeed / WithRand:     randomness for stochastic constructors.
//     – WithWeightFn and friends: per-edge weight policy (default constant 1).
//     – WithKeyOffset:           shift every generated key, so several fixtures can share one graph.
//   - Topologies:
//     – Path, Cycle, Star, Wheel, Complete, Grid.
//     – RandomSparse(n, p): Bernoulli trial per pair, O(n²).
//     – RandomDegree(n, d): about n·d/2 uniformly drawn edges, O(n·d).
//   - Edge-weight distributions (WeightFn): Constant, Uniform, Normal, Exponential.
//
// Guarantees:
//
//   - Same options, seed and constructor order produce identical graphs
//     (equal Fingerprint values).
//   - Constructors validate first and return wrapped sentinels; only option
//     constructors panic, and only on meaningless input.
//   - Keys are offset+i for i in [0, n); Star and Wheel use offset+0 as the hub.
//     Grid uses offset + r*cols + c.
package builder
