package dijkstra

import (
	"container/heap"

	"github.com/pathmetry/pathmetry/core"
)

// HeapShortestPath computes single-source shortest paths from start over g
// using a binary min-heap, writing results into each node's Dist field;
// unreachable nodes keep +Inf. It produces exactly the same distances as
// SimpleShortestPath in O(E log E).
//
// The heap holds (node, distance) entries where the distance is a snapshot
// taken at push time. Node.Dist is mutable and may shrink after an entry
// is queued, so the entry's priority is never trusted to stay current:
// when a relaxation improves a node that is already queued, a fresh entry
// is pushed instead of updating the old one, and stale entries are
// discarded on pop once the node is marked visited (lazy deletion).
//
// The visited set is a boolean slice keyed by node index — an O(1)
// membership test, which is what makes the log bound real.
func HeapShortestPath(g *core.Graph, start *core.Node, opts ...Option) error {
	if err := validate(g, start); err != nil {
		return err
	}
	cfg := gatherOptions(opts...)
	c := cfg.Counter

	c.AddHeap(3)
	initDistances(g, start, c.AddHeap)

	visited := make([]bool, g.NodeCount())

	pq := make(nodePQ, 0, g.NodeCount())
	heap.Init(&pq)
	heap.Push(&pq, &pqEntry{node: start, dist: 0})

	for pq.Len() > 0 {
		c.AddHeapOp(pq.Len())
		entry := heap.Pop(&pq).(*pqEntry)
		current := entry.node

		// Lazy deletion: a node may sit in the heap several times under
		// different snapshot distances; only the first (lowest) pop counts.
		c.AddHeap(1)
		if visited[current.Index()] {
			continue
		}

		c.AddHeap(1)
		visited[current.Index()] = true

		for _, e := range current.Out() {
			c.AddHeap(3)
			cand := current.Dist + e.Weight

			// Relaxation: strictly shorter paths only, then requeue the head
			// with its new snapshot distance. Duplicates are expected.
			if cand < e.Head.Dist {
				c.AddHeap(1)
				e.Head.Dist = cand
				c.AddHeapOp(max(1, pq.Len()))
				heap.Push(&pq, &pqEntry{node: e.Head, dist: cand})
			}
		}
	}

	return nil
}

// pqEntry pairs a node with its distance at insertion time. The snapshot,
// not the node's live Dist, orders the heap — see the lazy-deletion note
// on HeapShortestPath.
type pqEntry struct {
	node *core.Node
	dist float64
}

// nodePQ is a min-heap of *pqEntry ordered by snapshot distance. Ordering
// is an explicit comparator here rather than a property of core.Node;
// nodes have no intrinsic order.
type nodePQ []*pqEntry

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*pqEntry)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return entry
}
