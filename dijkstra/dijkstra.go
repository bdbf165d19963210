package dijkstra

import (
	"fmt"
	"math"

	"github.com/pathmetry/pathmetry/core"
)

// Run executes the chosen shortest-path variant from start over g, writing
// each node's shortest distance into its Dist field in place. It is the
// single boundary entry point; SimpleShortestPath and HeapShortestPath are
// the same operations with the variant fixed.
//
// Validation (in order): g non-nil, start non-nil, start a member of g,
// no negative edge weight anywhere in g. Validation failures leave all
// distances untouched.
func Run(g *core.Graph, start *core.Node, v Variant, opts ...Option) error {
	switch v {
	case VariantSimple:
		return SimpleShortestPath(g, start, opts...)
	case VariantHeap:
		return HeapShortestPath(g, start, opts...)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
}

// gatherOptions resolves functional options into a concrete Options value.
func gatherOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate fails fast on the shared preconditions of both variants.
// The negative-weight pre-scan is O(E); it trades a cheap upfront pass for
// never returning a silently wrong answer mid-traversal.
func validate(g *core.Graph, start *core.Node) error {
	if g == nil {
		return ErrNilGraph
	}
	if start == nil {
		return ErrNilStart
	}
	if !g.Has(start) {
		return fmt.Errorf("%w: %v", ErrStartNotMember, start.Data)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: %v→%v weight=%g", ErrNegativeWeight, e.Tail.Data, e.Head.Data, e.Weight)
		}
	}

	return nil
}

// initDistances sets start.Dist = 0 and every other node to +Inf, charging
// one unit per node touched plus one per non-start reset to the variant's
// total via charge.
func initDistances(g *core.Graph, start *core.Node, charge func(int64)) {
	inf := math.Inf(1)
	start.Dist = 0
	for _, n := range g.Nodes() {
		charge(1)
		if n != start {
			charge(1)
			n.Dist = inf
		}
	}
}
