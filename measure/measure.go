package measure

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pathmetry/pathmetry/core"
	"github.com/pathmetry/pathmetry/dijkstra"
	"github.com/pathmetry/pathmetry/graphio"
)

// Sentinel errors for batch measurement.
var (
	// ErrEmptyGraph indicates a graph with no nodes; there is no start node
	// to run from.
	ErrEmptyGraph = errors.New("measure: graph has no nodes")

	// ErrNoDensityFolders indicates the root contains no density_* folders.
	ErrNoDensityFolders = errors.New("measure: no density folders found")
)

// densityPrefix names the per-density subfolders a generation plan emits.
const densityPrefix = "density_"

// adjExt is the adjacency-list file extension the scanner picks up.
const adjExt = ".adj"

// RunData captures one graph's measurement: its size and the operation
// totals of both variants (heap total already rounded for reporting).
type RunData struct {
	N         int   `json:"n"`
	M         int   `json:"m"`
	SimpleOps int64 `json:"simple_ops"`
	HeapOps   int64 `json:"heap_ops"`
}

// SizeSeries groups run results by node count within one density group.
// json.Marshal renders the int keys as strings, matching the documented
// serialized form.
type SizeSeries map[int][]RunData

// Options configures batch runs.
type Options struct {
	// Progress, when non-nil, is invoked before each file is measured with
	// the folder, file name, 1-based position and total file count.
	Progress func(folder, file string, index, total int)
}

// Option is a functional option for RunFolder and RunDensities.
type Option func(*Options)

// WithProgress registers a per-file progress hook.
func WithProgress(fn func(folder, file string, index, total int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Progress = fn
		}
	}
}

// RunGraph measures one graph: the simple variant, a distance reset, then
// the heap variant, all against a fresh Counter. The start node is the
// graph's first node, per the node-order convention.
func RunGraph(g *core.Graph) (RunData, error) {
	if g == nil || g.NodeCount() == 0 {
		return RunData{}, ErrEmptyGraph
	}
	start := g.Node(0)
	ops := dijkstra.NewCounter()

	if err := dijkstra.SimpleShortestPath(g, start, dijkstra.WithCounter(ops)); err != nil {
		return RunData{}, fmt.Errorf("measure: simple run: %w", err)
	}
	g.ResetDistances()
	if err := dijkstra.HeapShortestPath(g, start, dijkstra.WithCounter(ops)); err != nil {
		return RunData{}, fmt.Errorf("measure: heap run: %w", err)
	}

	return RunData{
		N:         g.NodeCount(),
		M:         g.EdgeCount(),
		SimpleOps: ops.SimpleOps(),
		HeapOps:   ops.HeapOpsRounded(),
	}, nil
}

// RunFolder measures every .adj file in dir (name order) and groups the
// results by node count.
func RunFolder(dir string, opts ...Option) (SizeSeries, error) {
	cfg := gatherOptions(opts...)

	files, err := listSorted(dir, func(e os.DirEntry) bool {
		return !e.IsDir() && strings.HasSuffix(e.Name(), adjExt)
	})
	if err != nil {
		return nil, err
	}

	series := make(SizeSeries)
	for i, name := range files {
		if cfg.Progress != nil {
			cfg.Progress(filepath.Base(dir), name, i+1, len(files))
		}
		g, err := graphio.ReadAdjacencyListFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		data, err := RunGraph(g)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		series[data.N] = append(series[data.N], data)
	}

	return series, nil
}

// RunDensities measures each density_* subfolder of root in name order and
// returns one SizeSeries per density group.
func RunDensities(root string, opts ...Option) ([]SizeSeries, error) {
	folders, err := listSorted(root, func(e os.DirEntry) bool {
		return e.IsDir() && strings.HasPrefix(e.Name(), densityPrefix)
	})
	if err != nil {
		return nil, err
	}
	if len(folders) == 0 {
		return nil, fmt.Errorf("%w: under %s", ErrNoDensityFolders, root)
	}

	out := make([]SizeSeries, 0, len(folders))
	for _, name := range folders {
		series, err := RunFolder(filepath.Join(root, name), opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, series)
	}

	return out, nil
}

// WriteDensities serializes density-group results as JSON to w.
func WriteDensities(data []SizeSeries, w io.Writer) error {
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("measure: encoding results: %w", err)
	}

	return nil
}

// WriteDensitiesFile serializes density-group results as JSON to path.
func WriteDensitiesFile(data []SizeSeries, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("measure: create %s: %w", path, err)
	}
	if err = WriteDensities(data, f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// gatherOptions resolves functional options.
func gatherOptions(opts ...Option) Options {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// listSorted returns the names of dir entries passing keep, sorted.
func listSorted(dir string, keep func(os.DirEntry) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("measure: read dir %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if keep(e) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}
