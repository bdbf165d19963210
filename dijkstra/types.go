// Package dijkstra: variants, functional options, and sentinel errors.
// The algorithms themselves live in simple.go and heap.go; the operation
// accumulator lives in counter.go.
package dijkstra

import "errors"

// Sentinel errors returned by the shortest-path entry points.
var (
	// ErrNilGraph indicates a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilStart indicates a nil start node was supplied.
	ErrNilStart = errors.New("dijkstra: start node is nil")

	// ErrStartNotMember indicates the start node does not belong to the
	// supplied graph. Membership is by identity, not payload equality.
	ErrStartNotMember = errors.New("dijkstra: start node is not a member of the graph")

	// ErrNegativeWeight indicates a negative edge weight was detected by the
	// upfront edge scan. Classic Dijkstra is undefined for negative weights,
	// so the run is rejected rather than silently producing a wrong answer.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnknownVariant indicates Run received a Variant value outside
	// {VariantSimple, VariantHeap}.
	ErrUnknownVariant = errors.New("dijkstra: unknown variant")
)

// Variant selects which shortest-path implementation Run dispatches to.
type Variant int

const (
	// VariantSimple is the O(V·E) frontier-rescan implementation.
	VariantSimple Variant = iota

	// VariantHeap is the O(E log E) lazy-deletion priority-queue implementation.
	VariantHeap
)

// String renders the variant name for logs and errors.
func (v Variant) String() string {
	switch v {
	case VariantSimple:
		return "simple"
	case VariantHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// Options configures a single shortest-path run.
//
// Counter — optional per-run operation accumulator. Nil disables counting;
// the computed distances are identical either way.
type Options struct {
	Counter *Counter
}

// Option is a functional option for configuring a run.
type Option func(*Options)

// WithCounter attaches an operation accumulator to the run. Pass one
// Counter to both variants to compare their totals for the same graph.
func WithCounter(c *Counter) Option {
	return func(o *Options) { o.Counter = c }
}

// DefaultOptions returns the zero configuration: no counting.
func DefaultOptions() Options {
	return Options{Counter: nil}
}
