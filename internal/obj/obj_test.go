package obj_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ecopia-map/svdag_tiler/internal/obj"
)

func TestParseTrianglesAndQuads(t *testing.T) {
	requireT := require.New(t)

	src := `# simple quad plus triangle
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 0 0 1
vn 0 0 1
vt 0.5 0.5
o plane
f 1 2 3 4
f 1/1/1 2/1/1 5/1/1
`
	mesh, err := obj.Parse(strings.NewReader(src))
	requireT.NoError(err)

	requireT.Len(mesh.Vertices, 5)
	requireT.Equal(r3.Vec{X: 0, Y: 0, Z: 1}, mesh.Vertices[4])

	// the quad fans into two triangles
	requireT.Equal([][3]int{{0, 1, 2}, {0, 2, 3}, {0, 1, 4}}, mesh.Faces)

	min, max := mesh.Bounds()
	requireT.Equal(r3.Vec{}, min)
	requireT.Equal(r3.Vec{X: 1, Y: 1, Z: 1}, max)
}

func TestParseNegativeIndices(t *testing.T) {
	requireT := require.New(t)

	src := `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	mesh, err := obj.Parse(strings.NewReader(src))
	requireT.NoError(err)
	requireT.Equal([][3]int{{0, 1, 2}}, mesh.Faces)
}

func TestParseBadVertex(t *testing.T) {
	requireT := require.New(t)

	_, err := obj.Parse(strings.NewReader("v 1 two 3\n"))
	requireT.Error(err)

	_, err = obj.Parse(strings.NewReader("v 1 2\n"))
	requireT.Error(err)
}

func TestParseBadFace(t *testing.T) {
	requireT := require.New(t)

	_, err := obj.Parse(strings.NewReader("v 0 0 0\nf 1 2 3\n"))
	requireT.Error(err)

	_, err = obj.Parse(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2\n"))
	requireT.Error(err)
}

func TestParseFileMissing(t *testing.T) {
	_, err := obj.ParseFile("does-not-exist.obj")
	require.Error(t, err)
}
