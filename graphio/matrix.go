// Package graphio: dense adjacency-matrix conversion and JSON files.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pathmetry/pathmetry/core"
)

// ErrNonSquareMatrix indicates the supplied matrix has a row whose length
// differs from the row count.
var ErrNonSquareMatrix = errors.New("graphio: adjacency matrix must be square")

// ToMatrix converts g to a dense n×n adjacency matrix: cell (i,j) holds
// the weight of edge i→j, +Inf where no edge exists. Parallel edges are
// last-write-wins in edge insertion order.
// Complexity: O(V² + E).
func ToMatrix(g *core.Graph) [][]float64 {
	n := g.NodeCount()
	inf := math.Inf(1)

	m := make([][]float64, n)
	for i := range m {
		row := make([]float64, n)
		for j := range row {
			row[j] = inf
		}
		m[i] = row
	}

	for _, e := range g.Edges() {
		m[e.Tail.Index()][e.Head.Index()] = e.Weight
	}

	return m
}

// FromMatrix builds a graph from a dense adjacency matrix. Cell (i,j)
// becomes the edge i→j unless it is +Inf. Node payloads are the row
// indices. Rejects non-square input with ErrNonSquareMatrix.
// Complexity: O(V²).
func FromMatrix(m [][]float64) (*core.Graph, error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquareMatrix, i, len(row), n)
		}
	}

	g := core.NewGraph()
	nodes := make([]*core.Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = core.NewNode(i)
		if err := g.AddNode(nodes[i]); err != nil {
			return nil, fmt.Errorf("graphio: %w", err)
		}
	}

	for i, row := range m {
		for j, w := range row {
			if math.IsInf(w, 1) {
				continue
			}
			if _, err := g.AddEdge(nodes[i], nodes[j], w); err != nil {
				return nil, fmt.Errorf("graphio: cell (%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// WriteMatrix serializes g's adjacency matrix as JSON to w. Missing edges
// become null cells: JSON has no Infinity literal, so +Inf cannot be
// emitted directly.
func WriteMatrix(g *core.Graph, w io.Writer) error {
	m := ToMatrix(g)
	cells := make([][]*float64, len(m))
	for i, row := range m {
		cells[i] = make([]*float64, len(row))
		for j := range row {
			if math.IsInf(row[j], 1) {
				continue // null cell
			}
			v := row[j]
			cells[i][j] = &v
		}
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(cells); err != nil {
		return fmt.Errorf("graphio: encoding matrix: %w", err)
	}

	return nil
}

// ReadMatrix parses a JSON adjacency matrix from r, mapping null cells to
// "no edge", and builds the graph via FromMatrix.
func ReadMatrix(r io.Reader) (*core.Graph, error) {
	var cells [][]*float64
	if err := json.NewDecoder(r).Decode(&cells); err != nil {
		return nil, fmt.Errorf("graphio: decoding matrix: %w", err)
	}

	inf := math.Inf(1)
	m := make([][]float64, len(cells))
	for i, row := range cells {
		m[i] = make([]float64, len(row))
		for j, cell := range row {
			if cell == nil {
				m[i][j] = inf
				continue
			}
			m[i][j] = *cell
		}
	}

	return FromMatrix(m)
}

// ReadMatrixFile reads a JSON adjacency-matrix file from disk.
func ReadMatrixFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadMatrix(f)
}

// WriteMatrixFile writes g's adjacency matrix as JSON to path.
func WriteMatrixFile(g *core.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	if err = WriteMatrix(g, f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
