// Package dijkstra implements two contrasting versions of Dijkstra's
// single-source shortest-path algorithm over a core.Graph, instrumented
// with an abstract operation counter so their real work can be compared.
//
// Both variants share the same contract: given a graph and a member start
// node, write the shortest distance from start into every node's Dist
// field. Unreachable nodes keep Dist == +Inf — that is the documented
// correct output for a disconnected graph, not an error. Neither variant
// adds or removes nodes or edges.
//
// Variants:
//
//   - Simple (SimpleShortestPath): keeps an ordered list of visited nodes
//     and, on every step, rescans all outbound edges of the whole frontier
//     to find the edge minimizing tail.Dist + weight into an unvisited
//     head. Ties break toward the first candidate in scan order (strict <).
//     Termination is by sentinel: no candidate edge means done, so
//     disconnected components halt the scan early.
//     Complexity: O(V·E) — the intended pedagogical inefficiency.
//
//   - Heap (HeapShortestPath): a binary min-heap (container/heap) of
//     (node, distance-at-insertion) entries plus an O(1) visited set keyed
//     by node index. Priorities are snapshots: a node relaxed after being
//     queued is simply pushed again, and stale entries are discarded on pop
//     once the node is already visited (lazy deletion). No in-place
//     decrease-key is ever attempted.
//     Complexity: O(E log E).
//
// Instrumentation:
//
//	A Counter is an explicit per-run accumulator, passed via WithCounter.
//	The simple variant pays integer unit costs per constant-time step; the
//	heap variant additionally pays log2(max(size,1))+1 per heap push/pop,
//	kept as a float64 to avoid compounding rounding error. Counting is
//	orthogonal to correctness: distances are identical with or without it.
//
// Caller obligations:
//
//	Distances are shared mutable state on the nodes. Reset them
//	(core.Graph.ResetDistances) between runs over the same graph, and never
//	run two algorithms against one graph concurrently. Use one Counter per
//	run when measuring concurrent runs over distinct graphs.
//
// Errors (sentinel):
//
//	ErrNilGraph       — the graph pointer is nil.
//	ErrNilStart       — the start node pointer is nil.
//	ErrStartNotMember — the start node is not a member of the graph.
//	ErrNegativeWeight — a negative edge weight was found by the pre-scan.
//	ErrUnknownVariant — Run was given a Variant it does not recognize.
package dijkstra
