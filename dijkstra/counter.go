package dijkstra

import "math"

// Counter accumulates abstract operation costs for the two variants, one
// running total per implementation.
//
// The simple total is an integer: every constant-cost step the simple
// variant actually executes (comparisons, list appends) adds a unit. The
// heap total is a float64: constant steps add units, and every heap
// push/pop adds the amortized cost log2(max(size,1))+1 of touching a heap
// of the given size. The float total is rounded only at reporting time so
// rounding error never compounds across operations.
//
// A Counter is a plain value with no internal locking. Use one Counter per
// run; independent runs over distinct graphs each get their own instance,
// so measurements cannot interfere. All mutating methods are nil-safe:
// calling them on a nil *Counter is a no-op, which lets the algorithms
// count unconditionally.
type Counter struct {
	simple int64
	heap   float64
}

// NewCounter returns a zeroed accumulator.
func NewCounter() *Counter {
	return &Counter{}
}

// Reset zeroes both totals. Call it before a fresh measurement pass.
func (c *Counter) Reset() {
	if c == nil {
		return
	}
	c.simple = 0
	c.heap = 0
}

// AddSimple charges n unit operations to the simple variant's total.
func (c *Counter) AddSimple(n int64) {
	if c == nil {
		return
	}
	c.simple += n
}

// AddHeap charges n constant-cost unit operations to the heap variant's
// total (bookkeeping steps outside the heap itself).
func (c *Counter) AddHeap(n int64) {
	if c == nil {
		return
	}
	c.heap += float64(n)
}

// AddHeapOp charges one heap push or pop against a heap currently holding
// heapSize elements, modeled as log2(max(heapSize,1)) + 1. The floor of 1
// avoids log(0) when pushing into an empty heap.
func (c *Counter) AddHeapOp(heapSize int) {
	if c == nil {
		return
	}
	if heapSize < 1 {
		heapSize = 1
	}
	c.heap += math.Log2(float64(heapSize)) + 1
}

// SimpleOps reports the simple variant's total.
func (c *Counter) SimpleOps() int64 {
	if c == nil {
		return 0
	}

	return c.simple
}

// HeapOps reports the heap variant's total without rounding.
func (c *Counter) HeapOps() float64 {
	if c == nil {
		return 0
	}

	return c.heap
}

// HeapOpsRounded reports the heap variant's total rounded to the nearest
// integer, the form used for display and serialized results.
func (c *Counter) HeapOpsRounded() int64 {
	if c == nil {
		return 0
	}

	return int64(math.Round(c.heap))
}
