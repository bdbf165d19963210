// Command pathmetry runs the shortest-path benchmarks from the terminal.
//
// Usage:
//
//	pathmetry run -graph g.adj [-format adj|matrix] [-variant simple|heap|both]
//	pathmetry generate -plan plan.toml
//	pathmetry measure -root graphs [-out densities.json]
//
// run loads one graph, executes the requested variant(s) from the first
// node, and prints per-node distances plus operation totals. generate
// materializes a TOML generation plan into density folders of .adj files.
// measure scans such a tree, runs both variants over every graph, and
// writes the grouped totals as JSON.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/pathmetry/pathmetry/core"
	"github.com/pathmetry/pathmetry/dijkstra"
	"github.com/pathmetry/pathmetry/graphio"
	"github.com/pathmetry/pathmetry/measure"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = cmdRun(os.Args[2:])
	case "generate":
		err = cmdGenerate(os.Args[2:])
	case "measure":
		err = cmdMeasure(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "pathmetry:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  pathmetry run -graph FILE [-format adj|matrix] [-variant simple|heap|both]
  pathmetry generate -plan FILE
  pathmetry measure -root DIR [-out FILE]`)
}

func cmdRun(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	path := fs.String("graph", "", "graph file to load")
	format := fs.String("format", "adj", "graph file format: adj or matrix")
	variant := fs.String("variant", "both", "which implementation: simple, heap or both")
	_ = fs.Parse(args)

	if *path == "" {
		return fmt.Errorf("run: -graph is required")
	}

	var (
		g   *core.Graph
		err error
	)
	switch *format {
	case "adj":
		g, err = graphio.ReadAdjacencyListFile(*path)
	case "matrix":
		g, err = graphio.ReadMatrixFile(*path)
	default:
		return fmt.Errorf("run: unknown format %q", *format)
	}
	if err != nil {
		return err
	}
	if g.NodeCount() == 0 {
		return measure.ErrEmptyGraph
	}

	fmt.Printf("Loaded graph with %s nodes and %s edges.\n",
		humanize.Comma(int64(g.NodeCount())), humanize.Comma(int64(g.EdgeCount())))

	start := g.Node(0)
	ops := dijkstra.NewCounter()

	runOne := func(name string, v dijkstra.Variant) error {
		g.ResetDistances()
		if err := dijkstra.Run(g, start, v, dijkstra.WithCounter(ops)); err != nil {
			return err
		}
		fmt.Printf("\n%s implementation:\n", name)
		printDistances(g)

		return nil
	}

	switch *variant {
	case "simple":
		err = runOne("Simple", dijkstra.VariantSimple)
	case "heap":
		err = runOne("Heap", dijkstra.VariantHeap)
	case "both":
		if err = runOne("Simple", dijkstra.VariantSimple); err == nil {
			err = runOne("Heap", dijkstra.VariantHeap)
		}
	default:
		return fmt.Errorf("run: unknown variant %q", *variant)
	}
	if err != nil {
		return err
	}

	fmt.Printf("\nSimple implementation operations: %s\n", humanize.Comma(ops.SimpleOps()))
	fmt.Printf("Heap implementation operations:   %s\n", humanize.Comma(ops.HeapOpsRounded()))

	return nil
}

// printDistances lists each node's distance, ∞ for unreached nodes.
func printDistances(g *core.Graph) {
	for _, n := range g.Nodes() {
		if math.IsInf(n.Dist, 1) {
			fmt.Printf("  %v: unreachable\n", n.Data)
			continue
		}
		fmt.Printf("  %v: %g\n", n.Data, n.Dist)
	}
}

func cmdGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	planPath := fs.String("plan", "", "TOML generation plan")
	_ = fs.Parse(args)

	if *planPath == "" {
		return fmt.Errorf("generate: -plan is required")
	}

	plan, err := LoadPlan(*planPath)
	if err != nil {
		return err
	}
	if err = plan.Execute(); err != nil {
		return err
	}

	fmt.Printf("Generated %s graphs under %s.\n", humanize.Comma(int64(plan.Count())), plan.Folder)

	return nil
}

func cmdMeasure(args []string) error {
	fs := flag.NewFlagSet("measure", flag.ExitOnError)
	root := fs.String("root", "", "folder containing density_* subfolders")
	out := fs.String("out", "densities.json", "output JSON file")
	_ = fs.Parse(args)

	if *root == "" {
		return fmt.Errorf("measure: -root is required")
	}

	data, err := measure.RunDensities(*root, measure.WithProgress(func(folder, file string, i, n int) {
		fmt.Printf("%s: measuring %s (%d/%d)...\n", folder, file, i, n)
	}))
	if err != nil {
		return err
	}
	if err = measure.WriteDensitiesFile(data, *out); err != nil {
		return err
	}

	fmt.Printf("Wrote %s.\n", *out)

	return nil
}
