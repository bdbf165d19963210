// Package measure orchestrates batch benchmark runs: it executes both
// shortest-path variants over graphs loaded from .adj folders and
// serializes the per-run operation totals as JSON.
//
// Layout convention (mirrors what builder's generation plans produce):
//
//	root/
//	  density_0/ graph_10_0.adj graph_10_1.adj …
//	  density_1/ …
//
// RunDensities walks the density_* folders in name order; within a folder
// every .adj file is measured in name order and the results grouped by
// node count. The serialized form is a JSON array with one object per
// density group, keyed by node count:
//
//	[ { "10": [ { "n":10, "m":20, "simple_ops":100, "heap_ops":50 } ] } ]
//
// Each graph is measured with a fresh Counter (runs never interfere) and
// distances are reset between the simple and heap passes, so both variants
// see identical initial state.
package measure
