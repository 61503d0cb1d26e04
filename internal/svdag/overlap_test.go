package svdag_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ecopia-map/svdag_tiler/internal/geometry"
	"github.com/ecopia-map/svdag_tiler/internal/svdag"
)

func TestBoxOverlapIsInclusive(t *testing.T) {
	requireT := require.New(t)

	cell := geometry.Cube(r3.Vec{}, 1)
	tri := geometry.Triangle{
		V0: r3.Vec{X: 1, Y: 0, Z: 0},
		V1: r3.Vec{X: 2, Y: 0, Z: 0},
		V2: r3.Vec{X: 1, Y: 1, Z: 0},
	}
	// touching the x=1 face counts as overlapping
	requireT.True(svdag.BoxOverlap(tri, tri.Bounds(), cell))

	far := geometry.Triangle{
		V0: r3.Vec{X: 1.5, Y: 0, Z: 0},
		V1: r3.Vec{X: 2, Y: 0, Z: 0},
		V2: r3.Vec{X: 1.5, Y: 1, Z: 0},
	}
	requireT.False(svdag.BoxOverlap(far, far.Bounds(), cell))
}

func TestSATOverlapRejectsCornerGrazingTriangle(t *testing.T) {
	requireT := require.New(t)

	cell := geometry.Cube(r3.Vec{}, 1)

	// the triangle plane x+y+z=3.5 never reaches the cell, but the
	// bounding boxes overlap heavily
	tri := geometry.Triangle{
		V0: r3.Vec{X: 2.5, Y: 2.5, Z: -1.5},
		V1: r3.Vec{X: 2.5, Y: -1.5, Z: 2.5},
		V2: r3.Vec{X: -1.5, Y: 2.5, Z: 2.5},
	}
	bounds := tri.Bounds()
	requireT.True(svdag.BoxOverlap(tri, bounds, cell))
	requireT.False(svdag.SATOverlap(tri, bounds, cell))
}

func TestSATOverlapAcceptsTouchingFace(t *testing.T) {
	requireT := require.New(t)

	cell := geometry.Cube(r3.Vec{}, 1)
	tri := geometry.Triangle{
		V0: r3.Vec{X: 0, Y: 0, Z: 0},
		V1: r3.Vec{X: 0, Y: 1, Z: 0},
		V2: r3.Vec{X: 0, Y: 1, Z: 1},
	}
	requireT.True(svdag.SATOverlap(tri, tri.Bounds(), cell))
}

func TestSATOverlapAcceptsCrossingTriangle(t *testing.T) {
	requireT := require.New(t)

	cell := geometry.Cube(r3.Vec{}, 1)
	tri := geometry.Triangle{
		V0: r3.Vec{X: -1, Y: 0.5, Z: 0.5},
		V1: r3.Vec{X: 2, Y: 0.5, Z: 0.4},
		V2: r3.Vec{X: 0.5, Y: 2, Z: 0.6},
	}
	requireT.True(svdag.SATOverlap(tri, tri.Bounds(), cell))
}

func TestSATOverlapDegenerateTriangle(t *testing.T) {
	requireT := require.New(t)

	cell := geometry.Cube(r3.Vec{}, 1)
	p := r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}
	tri := geometry.Triangle{V0: p, V1: p, V2: p}
	requireT.True(svdag.SATOverlap(tri, tri.Bounds(), cell))

	outside := r3.Vec{X: 5, Y: 5, Z: 5}
	farTri := geometry.Triangle{V0: outside, V1: outside, V2: outside}
	requireT.False(svdag.SATOverlap(farTri, farTri.Bounds(), cell))
}
