// Package core provides the graph primitives shared by every algorithm in
// pathmetry: Node, Edge and Graph, with adjacency bookkeeping wired at
// construction time.
//
// The model is deliberately identity-based:
//
//   - Nodes are mutable reference objects. Two nodes carrying equal payloads
//     are still distinct vertices; algorithms compare nodes by pointer (or by
//     the stable index a Graph assigns on attach), never by value.
//   - Edges are immutable ordered pairs (Tail → Head) with a non-negative
//     weight. Creating an edge through Graph.AddEdge registers it into the
//     tail's outbound list and the head's inbound list; inbound lists are
//     bookkeeping only and no shipped algorithm reads them.
//   - Graphs hold nodes and edges in insertion order. Order is significant:
//     it fixes the default start node and the tie-breaking scan order.
//
// Distance contract:
//
//	Node.Dist is the single mutable field the shortest-path algorithms
//	write. It defaults to +Inf (math.Inf(1)) meaning "not reached". Running
//	a second algorithm over the same graph without Graph.ResetDistances in
//	between reads stale values — resetting is the caller's responsibility.
//
// Concurrency:
//
//	None. A Graph and its nodes are plain mutable state; exactly one
//	algorithm run may be in flight against a given graph at a time.
//	Callers wanting parallel measurements must build independent graphs.
//
// Errors (sentinel):
//
//	ErrNilNode        — a nil *Node was supplied.
//	ErrNodeAttached   — the node already belongs to a graph.
//	ErrNodeNotMember  — an edge endpoint is not a member of the graph.
//	ErrNegativeWeight — an edge weight below zero was supplied.
package core
