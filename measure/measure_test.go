package measure_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathmetry/pathmetry/builder"
	"github.com/pathmetry/pathmetry/core"
	"github.com/pathmetry/pathmetry/graphio"
	"github.com/pathmetry/pathmetry/measure"
)

// detourGraph is scenario A: A→B(1), A→C(3), B→C(1).
func detourGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := graphio.ReadAdjacencyList(strings.NewReader("A\tB,1\tC,3\nB\tC,1\nC\n"))
	require.NoError(t, err)

	return g
}

func TestRunGraph_Basics(t *testing.T) {
	g := detourGraph(t)

	data, err := measure.RunGraph(g)
	require.NoError(t, err)

	assert.Equal(t, 3, data.N)
	assert.Equal(t, 3, data.M)
	assert.Positive(t, data.SimpleOps)
	assert.Positive(t, data.HeapOps)

	// The heap run wrote final distances last; spot-check the detour result.
	assert.Equal(t, 0.0, g.Node(0).Dist)
	assert.Equal(t, 1.0, g.Node(1).Dist)
	assert.Equal(t, 2.0, g.Node(2).Dist)
}

func TestRunGraph_EmptyGraph(t *testing.T) {
	_, err := measure.RunGraph(core.NewGraph())
	assert.ErrorIs(t, err, measure.ErrEmptyGraph)

	_, err = measure.RunGraph(nil)
	assert.ErrorIs(t, err, measure.ErrEmptyGraph)
}

func TestRunGraph_FreshCounterPerRun(t *testing.T) {
	g := detourGraph(t)

	first, err := measure.RunGraph(g)
	require.NoError(t, err)

	g.ResetDistances()
	second, err := measure.RunGraph(g)
	require.NoError(t, err)

	assert.Equal(t, first, second, "independent counters must not accumulate across runs")
}

// writeTree lays out a two-density folder tree of generated graphs.
func writeTree(t *testing.T, root string) {
	t.Helper()
	for di, density := range []float64{0.2, 0.5} {
		dir := filepath.Join(root, fmt.Sprintf("density_%d", di))
		require.NoError(t, os.MkdirAll(dir, 0o755))
		for gi, n := range []int{5, 5, 8} {
			g, err := builder.RandomGraph(n, density, builder.WithSeed(int64(di*100+gi)))
			require.NoError(t, err)
			name := filepath.Join(dir, fmt.Sprintf("graph_%d_%d.adj", n, gi))
			require.NoError(t, graphio.WriteAdjacencyListFile(g, name))
		}
	}
}

func TestRunDensities_TreeScan(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	var seen int
	data, err := measure.RunDensities(root, measure.WithProgress(func(folder, file string, i, n int) {
		seen++
		assert.True(t, strings.HasPrefix(folder, "density_"))
		assert.True(t, strings.HasSuffix(file, ".adj"))
		assert.LessOrEqual(t, i, n)
	}))
	require.NoError(t, err)

	require.Len(t, data, 2, "one series per density folder")
	assert.Equal(t, 6, seen, "progress hook fires once per file")

	for _, series := range data {
		assert.Len(t, series[5], 2)
		assert.Len(t, series[8], 1)
	}
}

func TestRunDensities_NoFolders(t *testing.T) {
	_, err := measure.RunDensities(t.TempDir())
	assert.ErrorIs(t, err, measure.ErrNoDensityFolders)
}

func TestWriteDensities_JSONShape(t *testing.T) {
	data := []measure.SizeSeries{
		{10: {{N: 10, M: 20, SimpleOps: 100, HeapOps: 50}}},
	}

	var buf strings.Builder
	require.NoError(t, measure.WriteDensities(data, &buf))

	// Keys serialize as strings, fields in snake_case.
	var decoded []map[string][]map[string]int64
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &decoded))
	require.Len(t, decoded, 1)
	runs := decoded[0]["10"]
	require.Len(t, runs, 1)
	assert.Equal(t, int64(10), runs[0]["n"])
	assert.Equal(t, int64(20), runs[0]["m"])
	assert.Equal(t, int64(100), runs[0]["simple_ops"])
	assert.Equal(t, int64(50), runs[0]["heap_ops"])
}

func TestWriteDensitiesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "densities.json")
	data := []measure.SizeSeries{{3: {{N: 3, M: 2, SimpleOps: 9, HeapOps: 7}}}}

	require.NoError(t, measure.WriteDensitiesFile(data, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"simple_ops":9`)
}
