package core

import (
	"fmt"
	"math"
)

// NewGraph creates an empty graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode attaches n to the graph, assigning it the next index in node
// order. A node belongs to at most one graph; re-adding it (to this graph
// or another) returns ErrNodeAttached.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.index != unattached {
		return fmt.Errorf("%w: %v at index %d", ErrNodeAttached, n.Data, n.index)
	}
	n.index = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return nil
}

// AddNodes attaches each node in order, stopping at the first failure.
// Complexity: O(len(nodes)) amortized.
func (g *Graph) AddNodes(nodes ...*Node) error {
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return err
		}
	}

	return nil
}

// AddEdge creates the directed edge tail → head with the given weight and
// registers it into tail's outbound and head's inbound lists.
//
// Fail-fast preconditions:
//   - both endpoints non-nil (ErrNilNode),
//   - both endpoints members of this graph (ErrNodeNotMember),
//   - weight ≥ 0 (ErrNegativeWeight).
//
// Complexity: O(1) amortized (membership is an index check, not a scan).
func (g *Graph) AddEdge(tail, head *Node, weight float64) (*Edge, error) {
	if tail == nil || head == nil {
		return nil, ErrNilNode
	}
	if !g.Has(tail) {
		return nil, fmt.Errorf("%w: tail %v", ErrNodeNotMember, tail.Data)
	}
	if !g.Has(head) {
		return nil, fmt.Errorf("%w: head %v", ErrNodeNotMember, head.Data)
	}
	if weight < 0 || math.IsNaN(weight) {
		return nil, fmt.Errorf("%w: %v→%v weight=%g", ErrNegativeWeight, tail.Data, head.Data, weight)
	}

	e := &Edge{Tail: tail, Head: head, Weight: weight}
	tail.out = append(tail.out, e)
	head.in = append(head.in, e)
	g.edges = append(g.edges, e)

	return e, nil
}

// Has reports whether n is a member of this graph.
// Membership is by identity: a node with an equal payload but a different
// address is not a member.
// Complexity: O(1).
func (g *Graph) Has(n *Node) bool {
	return n != nil && n.index >= 0 && n.index < len(g.nodes) && g.nodes[n.index] == n
}

// Node returns the node at position i in insertion order.
// Panics if i is out of range, mirroring slice indexing.
// Complexity: O(1).
func (g *Graph) Node(i int) *Node { return g.nodes[i] }

// Nodes returns a copy of the node sequence in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edge sequence in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount reports the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount reports the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// ResetDistances sets every node's Dist back to +Inf, making the graph
// ready for a fresh algorithm run. Call this between runs over the same
// graph; the algorithms themselves never clear each other's output.
// Complexity: O(V).
func (g *Graph) ResetDistances() {
	inf := math.Inf(1)
	for _, n := range g.nodes {
		n.Dist = inf
	}
}

// String renders a compact summary, not the full adjacency structure.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(%d nodes, %d edges)", len(g.nodes), len(g.edges))
}
