package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pathmetry/pathmetry/builder"
	"github.com/pathmetry/pathmetry/graphio"
)

// Sentinel errors for generation plans.
var (
	// ErrBadPlan indicates a plan file that parsed but fails validation.
	ErrBadPlan = errors.New("pathmetry: invalid generation plan")
)

// Plan is the TOML description of a graph-generation batch: which folder
// to fill, which sizes and densities to cover, how many graphs per size,
// and the edge-weight range.
//
//	folder = "graphs"
//	node_counts = [10, 20, 30]
//	densities = [0.1, 0.2, 0.3]
//	graphs_per_size = 5
//	weight_min = 1
//	weight_max = 10
//	seed = 42
type Plan struct {
	Folder        string    `toml:"folder"`
	NodeCounts    []int     `toml:"node_counts"`
	Densities     []float64 `toml:"densities"`
	GraphsPerSize int       `toml:"graphs_per_size"`
	WeightMin     int       `toml:"weight_min"`
	WeightMax     int       `toml:"weight_max"`
	Seed          int64     `toml:"seed"`
}

// LoadPlan reads and validates a TOML plan file.
func LoadPlan(path string) (Plan, error) {
	var p Plan
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Plan{}, fmt.Errorf("pathmetry: decoding plan %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}

	return p, nil
}

// Validate checks the plan's fields; generator-level constraints (density
// range, weight range) are re-checked by builder at generation time.
func (p Plan) Validate() error {
	switch {
	case p.Folder == "":
		return fmt.Errorf("%w: folder is required", ErrBadPlan)
	case len(p.NodeCounts) == 0:
		return fmt.Errorf("%w: node_counts is empty", ErrBadPlan)
	case len(p.Densities) == 0:
		return fmt.Errorf("%w: densities is empty", ErrBadPlan)
	case p.GraphsPerSize < 1:
		return fmt.Errorf("%w: graphs_per_size must be at least 1", ErrBadPlan)
	}
	for _, n := range p.NodeCounts {
		if n < 1 {
			return fmt.Errorf("%w: node count %d", ErrBadPlan, n)
		}
	}
	for _, d := range p.Densities {
		if d < 0 || d > 1 {
			return fmt.Errorf("%w: density %g", ErrBadPlan, d)
		}
	}

	return nil
}

// Count reports how many graphs the plan will produce.
func (p Plan) Count() int {
	return len(p.Densities) * len(p.NodeCounts) * p.GraphsPerSize
}

// Execute materializes the plan: one density_<i> folder per density, each
// holding graph_<n>_<k>.adj files. Seeds advance deterministically from
// p.Seed, so re-running a plan reproduces the same tree.
func (p Plan) Execute() error {
	seed := p.Seed
	for di, density := range p.Densities {
		dir := filepath.Join(p.Folder, fmt.Sprintf("density_%d", di))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("pathmetry: mkdir %s: %w", dir, err)
		}
		for _, n := range p.NodeCounts {
			for k := 0; k < p.GraphsPerSize; k++ {
				g, err := builder.RandomGraph(n, density,
					builder.WithSeed(seed),
					builder.WithWeightRange(p.WeightMin, p.WeightMax),
				)
				if err != nil {
					return fmt.Errorf("pathmetry: generating n=%d density=%g: %w", n, density, err)
				}
				seed++

				name := filepath.Join(dir, fmt.Sprintf("graph_%d_%d.adj", n, k))
				if err = graphio.WriteAdjacencyListFile(g, name); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
