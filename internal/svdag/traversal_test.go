package svdag_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ecopia-map/svdag_tiler/internal/svdag"
)

func solidArena(t *testing.T, depth int) *svdag.Arena {
	t.Helper()
	arena, err := svdag.FromSDF(depth, func(r3.Vec, float64) bool { return true })
	require.NoError(t, err)
	return arena
}

func lowerHalfArena(t *testing.T, depth int) *svdag.Arena {
	t.Helper()
	arena, err := svdag.FromSDF(depth, func(p r3.Vec, _ float64) bool { return p.Y < 0.5 })
	require.NoError(t, err)
	return arena
}

func TestTraverseHitsFrontFace(t *testing.T) {
	requireT := require.New(t)

	arena := solidArena(t, 2)
	ray := svdag.Ray{Origin: r3.Vec{X: -1, Y: 0.3, Z: 0.3}, Dir: r3.Vec{X: 1}}

	hit, ok := svdag.Traverse(arena, ray, unitCorner, 1, 31, 1e9)
	requireT.True(ok)
	requireT.InDelta(1.0, hit.Distance, 1e-9)
	requireT.InDelta(0.0, hit.Position.X, 1e-9)
	requireT.InDelta(0.3, hit.Position.Y, 1e-9)
	requireT.InDelta(0.3, hit.Position.Z, 1e-9)
}

func TestTraverseNegativeDirection(t *testing.T) {
	requireT := require.New(t)

	arena := lowerHalfArena(t, 3)
	ray := svdag.Ray{Origin: r3.Vec{X: 0.3, Y: 2, Z: 0.3}, Dir: r3.Vec{Y: -1}}

	hit, ok := svdag.Traverse(arena, ray, unitCorner, 1, 31, 1e9)
	requireT.True(ok)
	// the solid half ends at y=0.5, within one voxel edge
	requireT.InDelta(1.5, hit.Distance, 0.125)
	requireT.InDelta(0.5, hit.Position.Y, 0.125)
}

func TestTraverseMissesEmptyHalf(t *testing.T) {
	requireT := require.New(t)

	arena := lowerHalfArena(t, 3)
	ray := svdag.Ray{Origin: r3.Vec{X: -1, Y: 0.8, Z: 0.3}, Dir: r3.Vec{X: 1}}

	_, ok := svdag.Traverse(arena, ray, unitCorner, 1, 31, 1e9)
	requireT.False(ok)
}

func TestTraverseMissesCubeEntirely(t *testing.T) {
	requireT := require.New(t)

	arena := solidArena(t, 2)

	_, ok := svdag.Traverse(arena, svdag.Ray{
		Origin: r3.Vec{X: -1, Y: 5, Z: 0.5},
		Dir:    r3.Vec{X: 1},
	}, unitCorner, 1, 31, 1e9)
	requireT.False(ok)

	// pointing away from the cube
	_, ok = svdag.Traverse(arena, svdag.Ray{
		Origin: r3.Vec{X: -1, Y: 0.5, Z: 0.5},
		Dir:    r3.Vec{X: -1},
	}, unitCorner, 1, 31, 1e9)
	requireT.False(ok)
}

func TestTraverseEmptyArena(t *testing.T) {
	requireT := require.New(t)

	_, ok := svdag.Traverse(svdag.NewArena(), svdag.Ray{
		Origin: r3.Vec{X: -1, Y: 0.5, Z: 0.5},
		Dir:    r3.Vec{X: 1},
	}, unitCorner, 1, 31, 1e9)
	requireT.False(ok)
}

func TestTraverseRespectsMaxDist(t *testing.T) {
	requireT := require.New(t)

	arena := solidArena(t, 2)
	ray := svdag.Ray{Origin: r3.Vec{X: -1, Y: 0.3, Z: 0.3}, Dir: r3.Vec{X: 1}}

	_, ok := svdag.Traverse(arena, ray, unitCorner, 1, 31, 0.5)
	requireT.False(ok)

	hit, ok := svdag.Traverse(arena, ray, unitCorner, 1, 31, 1.5)
	requireT.True(ok)
	requireT.InDelta(1.0, hit.Distance, 1e-9)
}

func TestTraverseMaxDepthTreatsNodesAsSolid(t *testing.T) {
	requireT := require.New(t)

	arena := lowerHalfArena(t, 3)
	ray := svdag.Ray{Origin: r3.Vec{X: -1, Y: 0.8, Z: 0.3}, Dir: r3.Vec{X: 1}}

	// at depth 0 the root cube itself counts as solid
	hit, ok := svdag.Traverse(arena, ray, unitCorner, 1, 0, 1e9)
	requireT.True(ok)
	requireT.InDelta(1.0, hit.Distance, 1e-9)
}

func TestTraverseOriginInsideSolid(t *testing.T) {
	requireT := require.New(t)

	arena := solidArena(t, 2)
	ray := svdag.Ray{Origin: r3.Vec{X: 0.3, Y: 0.3, Z: 0.3}, Dir: r3.Vec{X: 1}}

	hit, ok := svdag.Traverse(arena, ray, unitCorner, 1, 31, 1e9)
	requireT.True(ok)
	requireT.Equal(0.0, hit.Distance)
	requireT.Equal(ray.Origin, hit.Position)
}

func TestTraverseUnaffectedByCompression(t *testing.T) {
	requireT := require.New(t)

	// an uncompressed merge leaves duplicates and garbage behind
	arena := buildArena(t, slabMesh(0.05, 0.45), 3)
	arena.Combine(buildArena(t, slabMesh(0.55, 0.95), 3), false, false)
	compressed := arena.Clone()
	compressed.Compress()
	requireT.Less(compressed.Size(), arena.Size())

	rays := []svdag.Ray{
		{Origin: r3.Vec{X: -1, Y: 0.3, Z: 0.3}, Dir: r3.Vec{X: 1}},
		{Origin: r3.Vec{X: 0.7, Y: 2, Z: 0.7}, Dir: r3.Vec{Y: -1}},
		{Origin: r3.Vec{X: 0.1, Y: 0.1, Z: -3}, Dir: r3.Vec{Z: 1}},
		{Origin: r3.Vec{X: 2, Y: 2, Z: 2}, Dir: r3.Vec{X: -0.577, Y: -0.577, Z: -0.577}},
	}
	for _, ray := range rays {
		hitA, okA := svdag.Traverse(arena, ray, unitCorner, 1, 31, 1e9)
		hitB, okB := svdag.Traverse(compressed, ray, unitCorner, 1, 31, 1e9)
		requireT.Equal(okA, okB)
		if okA {
			requireT.InDelta(hitA.Distance, hitB.Distance, 1e-9)
		}
	}
}

func TestTraverseConcurrentReaders(t *testing.T) {
	requireT := require.New(t)

	arena := lowerHalfArena(t, 4)

	var wg sync.WaitGroup
	hits := make([]bool, 64)
	for i := 0; i < len(hits); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			x := (float64(i%8) + 0.5) / 8
			z := (float64(i/8) + 0.5) / 8
			ray := svdag.Ray{Origin: r3.Vec{X: x, Y: 2, Z: z}, Dir: r3.Vec{Y: -1}}
			_, hits[i] = svdag.Traverse(arena, ray, unitCorner, 1, 31, 1e9)
		}(i)
	}
	wg.Wait()

	for i, hit := range hits {
		requireT.True(hit, "ray %d", i)
	}
}
