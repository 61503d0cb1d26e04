package svdag_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ecopia-map/svdag_tiler/internal/data"
	"github.com/ecopia-map/svdag_tiler/internal/svdag"
)

var unitCorner = r3.Vec{}

// slabMesh is the closed surface of a full-width box spanning [y0, y1]
// along Y inside the unit cube.
func slabMesh(y0, y1 float64) *data.Mesh {
	return data.BoxMesh(r3.Vec{X: 0, Y: y0, Z: 0}, r3.Vec{X: 1, Y: y1, Z: 1})
}

func buildArena(t *testing.T, mesh *data.Mesh, depth int) *svdag.Arena {
	t.Helper()
	arena, err := svdag.NewBuilder(mesh, svdag.BuildOptions{}).Build(depth, unitCorner, 1)
	require.NoError(t, err)
	return arena
}

func allNodes(t *testing.T, a *svdag.Arena) []svdag.Node {
	t.Helper()
	nodes := make([]svdag.Node, 0, a.Size())
	for i := 0; i < a.Size(); i++ {
		n, err := a.Get(i)
		require.NoError(t, err)
		nodes = append(nodes, n)
	}
	return nodes
}

func requireSameArenas(t *testing.T, want, got *svdag.Arena) {
	t.Helper()
	require.Equal(t, want.Size(), got.Size())
	require.Equal(t, allNodes(t, want), allNodes(t, got))
	require.Equal(t, want.Root(), got.Root())
}

func solidAt(a *svdag.Arena, x, y, z float64, depth int) bool {
	return a.SampleVoxel(r3.Vec{X: x, Y: y, Z: z}, unitCorner, 1, depth)
}

func allLeafNode() svdag.Node {
	var n svdag.Node
	for i := range n.Children {
		n.Children[i] = svdag.LeafSolid
	}
	return n
}

// expandedNodeCount counts reachable node instances once per path, the
// size the DAG would have as a plain tree without sharing.
func expandedNodeCount(t *testing.T, a *svdag.Arena) int {
	t.Helper()
	var walk func(slot svdag.Slot) int
	walk = func(slot svdag.Slot) int {
		if !slot.IsChild() {
			return 0
		}
		n, err := a.Get(slot.Pos())
		require.NoError(t, err)
		total := 1
		for _, c := range n.Children {
			total += walk(c)
		}
		return total
	}
	return walk(a.Root())
}
