// Package core defines the Node, Edge and Graph types plus their sentinel
// errors. Constructors and graph methods live in graph.go.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core graph construction.
var (
	// ErrNilNode indicates that a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("core: node is nil")

	// ErrNodeAttached indicates an attempt to add a node that already belongs
	// to a graph. Nodes have reference identity and a single home graph.
	ErrNodeAttached = errors.New("core: node already attached to a graph")

	// ErrNodeNotMember indicates that an edge endpoint is not a member of the
	// graph the edge is being added to. This is a construction-time
	// precondition, surfaced immediately rather than mid-traversal.
	ErrNodeNotMember = errors.New("core: node is not a member of the graph")

	// ErrNegativeWeight indicates a negative edge weight. Dijkstra's
	// precondition is weight ≥ 0, so the model rejects violations up front.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// unattached marks a node that no graph has claimed yet.
const unattached = -1

// Node is a vertex of a weighted directed graph.
//
// Data is an opaque payload the algorithms never inspect. Dist is the
// shortest known distance from the current run's start node; it defaults to
// +Inf and is written only by the shortest-path algorithms and
// Graph.ResetDistances. All other fields are wired by Graph and read-only
// for callers.
type Node struct {
	// Data is the caller's payload (a name, an index, anything).
	Data any

	// Dist is the shortest known distance from the start of the last run.
	// +Inf means the node has not been reached.
	Dist float64

	in    []*Edge // inbound edges; bookkeeping only
	out   []*Edge // outbound edges in creation order
	index int     // position in the owning graph's node order
}

// NewNode returns a detached node carrying data, with Dist set to +Inf.
// Attach it with Graph.AddNode before wiring edges.
func NewNode(data any) *Node {
	return &Node{
		Data:  data,
		Dist:  math.Inf(1),
		index: unattached,
	}
}

// Index reports the node's position in its graph's node order, or -1 if the
// node is not attached to any graph. Indices are stable for the lifetime of
// the graph and give algorithms an O(1) membership key.
func (n *Node) Index() int { return n.index }

// Out returns the node's outbound edges in creation order.
// The slice is owned by the node; callers must not modify it.
func (n *Node) Out() []*Edge { return n.out }

// In returns the node's inbound edges in creation order.
// The slice is owned by the node; callers must not modify it.
func (n *Node) In() []*Edge { return n.in }

// Reached reports whether the node was assigned a finite distance by the
// last algorithm run.
func (n *Node) Reached() bool { return !math.IsInf(n.Dist, 1) }

// String renders the node as Node(data, dist=…) for logs and test failures.
func (n *Node) String() string {
	return fmt.Sprintf("Node(%v, dist=%g)", n.Data, n.Dist)
}

// Edge is a directed connection Tail → Head with a non-negative weight.
//
// Edges are immutable after construction: treat all fields as read-only.
// Graph.AddEdge is the only constructor; it registers the edge into
// Tail.Out and Head.In.
type Edge struct {
	// Tail is the node the edge leaves.
	Tail *Node

	// Head is the node the edge enters.
	Head *Node

	// Weight is the non-negative traversal cost.
	Weight float64
}

// String renders the edge as data→data(weight).
func (e *Edge) String() string {
	return fmt.Sprintf("Edge(%v→%v, %g)", e.Tail.Data, e.Head.Data, e.Weight)
}

// Graph is an ordered collection of nodes and the edges between them.
//
// Node order is significant: Node(0) is the conventional default start node
// and iteration order fixes deterministic tie-breaking in the algorithms.
// The zero value is not usable; call NewGraph.
type Graph struct {
	nodes []*Node
	edges []*Edge
}
