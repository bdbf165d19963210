package graphio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathmetry/pathmetry/graphio"
)

const sampleAdj = "A\tB,1\tC,3\nB\tC,2\nC\n"

func TestReadAdjacencyList_Sample(t *testing.T) {
	g, err := graphio.ReadAdjacencyList(strings.NewReader(sampleAdj))
	require.NoError(t, err)

	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 3, g.EdgeCount())

	a, b, c := g.Node(0), g.Node(1), g.Node(2)
	assert.Equal(t, "A", a.Data, "file line order is node order")
	assert.Equal(t, "B", b.Data)
	assert.Equal(t, "C", c.Data)

	require.Len(t, a.Out(), 2)
	assert.Same(t, b, a.Out()[0].Head)
	assert.Equal(t, 1.0, a.Out()[0].Weight)
	assert.Same(t, c, a.Out()[1].Head)
	assert.Equal(t, 3.0, a.Out()[1].Weight)

	require.Len(t, b.Out(), 1)
	assert.Same(t, c, b.Out()[0].Head)
	assert.Equal(t, 2.0, b.Out()[0].Weight)

	assert.Empty(t, c.Out())
	assert.Len(t, c.In(), 2, "inbound bookkeeping is wired too")
}

func TestReadAdjacencyList_SkipsBlankLines(t *testing.T) {
	g, err := graphio.ReadAdjacencyList(strings.NewReader("A\tB,1\n\n   \nB\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestReadAdjacencyList_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"duplicate node", "A\nA\n", graphio.ErrDuplicateNode},
		{"unknown neighbor", "A\tZ,1\n", graphio.ErrUnknownNeighbor},
		{"missing weight", "A\tB\nB\n", graphio.ErrBadNeighbor},
		{"bad weight", "A\tB,abc\nB\n", graphio.ErrBadNeighbor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.ReadAdjacencyList(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAdjacencyList_RoundTrip(t *testing.T) {
	g, err := graphio.ReadAdjacencyList(strings.NewReader(sampleAdj))
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, graphio.WriteAdjacencyList(g, &out))
	assert.Equal(t, sampleAdj, out.String(), "write must reproduce the canonical form")

	again, err := graphio.ReadAdjacencyList(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Equal(t, g.NodeCount(), again.NodeCount())
	assert.Equal(t, g.EdgeCount(), again.EdgeCount())
}

func TestAdjacencyListFile_RoundTrip(t *testing.T) {
	g, err := graphio.ReadAdjacencyList(strings.NewReader(sampleAdj))
	require.NoError(t, err)

	path := t.TempDir() + "/graph.adj"
	require.NoError(t, graphio.WriteAdjacencyListFile(g, path))

	again, err := graphio.ReadAdjacencyListFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, again.NodeCount())
	assert.Equal(t, 3, again.EdgeCount())
}
