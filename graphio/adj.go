// Package graphio: the tab-separated .adj adjacency-list format.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pathmetry/pathmetry/core"
)

// Sentinel errors for .adj parsing.
var (
	// ErrDuplicateNode indicates the same node name appears on two lines.
	ErrDuplicateNode = errors.New("graphio: duplicate node name")

	// ErrUnknownNeighbor indicates a neighbor cell references a name with no
	// line of its own — a membership violation caught at the boundary.
	ErrUnknownNeighbor = errors.New("graphio: neighbor references unknown node")

	// ErrBadNeighbor indicates a neighbor cell is not "name,weight" with a
	// parseable non-negative weight.
	ErrBadNeighbor = errors.New("graphio: malformed neighbor cell")
)

const (
	cellSep     = "\t"
	neighborSep = ","
)

// ReadAdjacencyList parses a .adj document from r.
//
// Two passes over the lines: first create every node so order and
// membership are fixed, then wire the edges. Neighbor names must match
// some node line (ErrUnknownNeighbor), weights must parse non-negative.
func ReadAdjacencyList(r io.Reader) (*core.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var lines [][]string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.Split(line, cellSep))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: reading adjacency list: %w", err)
	}

	g := core.NewGraph()
	byName := make(map[string]*core.Node, len(lines))

	for _, cells := range lines {
		name := strings.TrimSpace(cells[0])
		if _, ok := byName[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}
		n := core.NewNode(name)
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("graphio: %w", err)
		}
		byName[name] = n
	}

	for _, cells := range lines {
		tail := byName[strings.TrimSpace(cells[0])]
		for _, cell := range cells[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			name, weight, err := parseNeighbor(cell)
			if err != nil {
				return nil, err
			}
			head, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q (from %v)", ErrUnknownNeighbor, name, tail.Data)
			}
			if _, err = g.AddEdge(tail, head, weight); err != nil {
				return nil, fmt.Errorf("graphio: %w", err)
			}
		}
	}

	return g, nil
}

// parseNeighbor splits one "name,weight" cell.
func parseNeighbor(cell string) (string, float64, error) {
	name, raw, ok := strings.Cut(cell, neighborSep)
	if !ok || name == "" {
		return "", 0, fmt.Errorf("%w: %q", ErrBadNeighbor, cell)
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q: %v", ErrBadNeighbor, cell, err)
	}

	return name, weight, nil
}

// WriteAdjacencyList renders g in .adj form: one line per node in graph
// order, neighbors in outbound-edge order. Node payloads render via %v,
// weights in shortest float form, so string- and int-named graphs both
// round-trip.
func WriteAdjacencyList(g *core.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, n := range g.Nodes() {
		if _, err := fmt.Fprintf(bw, "%v", n.Data); err != nil {
			return fmt.Errorf("graphio: writing adjacency list: %w", err)
		}
		for _, e := range n.Out() {
			if _, err := fmt.Fprintf(bw, "%s%v%s%s", cellSep, e.Head.Data, neighborSep,
				strconv.FormatFloat(e.Weight, 'g', -1, 64)); err != nil {
				return fmt.Errorf("graphio: writing adjacency list: %w", err)
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return fmt.Errorf("graphio: writing adjacency list: %w", err)
		}
	}

	return bw.Flush()
}

// ReadAdjacencyListFile reads a .adj file from disk.
func ReadAdjacencyListFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadAdjacencyList(f)
}

// WriteAdjacencyListFile writes g to path in .adj form.
func WriteAdjacencyListFile(g *core.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	if err = WriteAdjacencyList(g, f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
