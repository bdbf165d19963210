// Package pathmetry is a small laboratory for single-source shortest paths:
// build weighted directed graphs, run two contrasting implementations of
// Dijkstra's algorithm, and measure how much abstract work each one does.
//
// What's inside?
//
//	core/     — Node, Edge and Graph primitives with adjacency bookkeeping
//	dijkstra/ — the two algorithm variants plus the operation Counter:
//	            • Simple: O(V·E) frontier rescan (the pedagogical baseline)
//	            • Heap:   O(E log E) lazy-deletion priority queue
//	graphio/  — .adj adjacency-list text files, adjacency-matrix JSON,
//	            and matrix ↔ graph conversion
//	builder/  — seeded random graph generation by target density
//	measure/  — batch runs over graph folders with JSON result series
//	cmd/      — the pathmetry command-line tool (run / generate / measure)
//
// Why two Dijkstras?
//
//   - The simple variant rescans every edge out of the visited frontier on
//     each step; the heap variant pays log-cost per queue operation instead.
//   - Both write the same answer into each node's Dist field, so the
//     operation totals isolate the cost of the data structure choice.
//
// Quick ASCII example:
//
//	A ──1── B
//	 \      │
//	  3     1
//	   \    │
//	    ──► C        shortest A→C is 2 (via B), not 3.
//
// See each package's doc.go for contracts, complexity and error semantics.
//
//	go get github.com/pathmetry/pathmetry
package pathmetry
