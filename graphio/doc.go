// Package graphio reads and writes core.Graph values in the two exchange
// formats the benchmark tooling uses, and converts between graphs and
// dense adjacency matrices.
//
// Adjacency-list text (.adj):
//
//	One line per node: the node name, then its neighbors, all separated by
//	tabs. Each neighbor cell is "name,weight". Blank lines are ignored.
//
//	A	B,1	C,3
//	B	C,2
//	C
//
//	declares nodes A, B, C with edges A→B(1), A→C(3), B→C(2). Node order
//	in the file is the graph's node order (line one holds the default
//	start node). Node payloads round-trip as strings.
//
// Adjacency-matrix JSON:
//
//	A square matrix where row i, column j holds the weight of edge i→j and
//	null marks "no edge" (+Inf in the in-memory [][]float64 form — JSON has
//	no Infinity literal, so absence is encoded as null on disk). Node
//	payloads are the row indices.
//
// Both readers fail fast on malformed input with wrapped sentinel errors;
// neither format performs any validation beyond what core.Graph
// construction already enforces.
package graphio
