package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pathmetry/pathmetry/core"
)

// RandomGraph generates a directed weighted graph with n nodes whose
// payloads are their indices 0..n-1.
//
// For each node, an out-degree is drawn from N(density·(n−1), σ) and
// clamped into [0, n−1]; that many distinct heads are sampled uniformly
// from the other nodes, and each edge receives a uniform integer weight
// from the configured inclusive range. σ defaults to 0.2·density·(n−1)
// unless WithStdDev overrides it.
//
// Determinism: node order is 0..n-1 ascending; per-node head sampling uses
// a single seeded rand.Rand, so a fixed (n, density, options) triple always
// produces the same graph.
//
// Complexity: O(n) vertices + O(n²) worst-case sampling; O(n) extra space.
func RandomGraph(n int, density float64, opts ...Option) (*core.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: density=%g", ErrInvalidDensity, density)
	}
	if cfg.MinWeight < 0 || cfg.MinWeight > cfg.MaxWeight {
		return nil, fmt.Errorf("%w: [%d,%d]", ErrInvalidWeightRange, cfg.MinWeight, cfg.MaxWeight)
	}
	if cfg.StdDev < 0 && cfg.StdDev != derivedStdDev {
		return nil, fmt.Errorf("%w: %g", ErrInvalidStdDev, cfg.StdDev)
	}

	meanDegree := density * float64(n-1)
	stdDev := cfg.StdDev
	if stdDev == derivedStdDev {
		stdDev = defaultStdDevFactor * meanDegree
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	g := core.NewGraph()
	nodes := make([]*core.Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = core.NewNode(i)
		if err := g.AddNode(nodes[i]); err != nil {
			return nil, fmt.Errorf("builder: AddNode(%d): %w", i, err)
		}
	}

	for i, tail := range nodes {
		degree := clamp(int(math.Round(rng.NormFloat64()*stdDev+meanDegree)), 0, n-1)
		if degree == 0 {
			continue
		}

		// Sample `degree` distinct heads among the other n-1 nodes: permute
		// candidate indices and take a prefix, skipping the tail itself.
		taken := 0
		for _, j := range rng.Perm(n) {
			if taken == degree {
				break
			}
			if j == i {
				continue
			}
			weight := float64(cfg.MinWeight + rng.Intn(cfg.MaxWeight-cfg.MinWeight+1))
			if _, err := g.AddEdge(tail, nodes[j], weight); err != nil {
				return nil, fmt.Errorf("builder: AddEdge(%d→%d): %w", i, j, err)
			}
			taken++
		}
	}

	return g, nil
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

