package dijkstra

import (
	"math"

	"github.com/pathmetry/pathmetry/core"
)

// SimpleShortestPath computes single-source shortest paths from start over
// g by repeatedly rescanning every outbound edge of the visited frontier
// and taking the edge that minimizes tail.Dist + weight into an unvisited
// head. Results land in each node's Dist field; unreachable nodes keep
// +Inf.
//
// The rescan is the point: each outer iteration walks all frontier edges
// again, giving O(V·E) total work for the baseline the heap variant is
// measured against. Ties break toward the first candidate in scan order
// (strict < comparison), and scan order is the graph's insertion order, so
// runs are deterministic. Termination is by sentinel — no candidate edge
// left — so disconnected components stop the scan early rather than
// spinning through a fixed V-1 iterations.
//
// Visited membership is tracked by node index (O(1)), never by payload:
// two nodes with equal data are distinct vertices.
func SimpleShortestPath(g *core.Graph, start *core.Node, opts ...Option) error {
	if err := validate(g, start); err != nil {
		return err
	}
	cfg := gatherOptions(opts...)
	c := cfg.Counter

	c.AddSimple(2)
	// Ordered frontier plus an O(1) membership index over it.
	visited := make([]*core.Node, 0, g.NodeCount())
	visited = append(visited, start)
	inFrontier := make([]bool, g.NodeCount())
	inFrontier[start.Index()] = true

	initDistances(g, start, c.AddSimple)

	// Grow the frontier one node per iteration until no edge leads out of it.
	for {
		best, dist := bestEdge(visited, inFrontier, c)

		c.AddSimple(1)
		if best == nil { // sentinel: nothing reachable remains
			return nil
		}

		c.AddSimple(2)
		visited = append(visited, best.Head)
		inFrontier[best.Head.Index()] = true
		best.Head.Dist = dist
	}
}

// bestEdge scans all outbound edges of the frontier and returns the edge
// minimizing tail.Dist + weight into an unvisited head, with the distance
// that head would receive. Returns (nil, +Inf) when no such edge exists.
func bestEdge(visited []*core.Node, inFrontier []bool, c *Counter) (*core.Edge, float64) {
	c.AddSimple(2)
	var best *core.Edge
	criterion := math.Inf(1)

	for _, n := range visited {
		c.AddSimple(1)
		for _, e := range n.Out() {
			if inFrontier[e.Head.Index()] {
				continue
			}
			c.AddSimple(2)
			cand := e.Tail.Dist + e.Weight

			// Strict < keeps the first-encountered edge on ties.
			if cand < criterion {
				c.AddSimple(2)
				best = e
				criterion = cand
			}
		}
	}

	return best, criterion
}
