package data

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ecopia-map/svdag_tiler/internal/geometry"
)

// Mesh is the triangle soup consumed by the voxelizer: shared vertex
// positions plus indexed faces. It implements the builder's scene
// contract.
type Mesh struct {
	Vertices []r3.Vec
	Faces    [][3]int
}

// Bounds returns the mesh AABB over all vertices. An empty mesh spans
// the zero box.
func (m *Mesh) Bounds() (min, max r3.Vec) {
	if len(m.Vertices) == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	b := geometry.FromPoints(m.Vertices...)
	return b.Min, b.Max
}

func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

func (m *Mesh) Triangle(i int) geometry.Triangle {
	f := m.Faces[i]
	return geometry.Triangle{
		V0: m.Vertices[f[0]],
		V1: m.Vertices[f[1]],
		V2: m.Vertices[f[2]],
	}
}

// AddTriangle appends a standalone triangle, growing the vertex list.
func (m *Mesh) AddTriangle(v0, v1, v2 r3.Vec) {
	base := len(m.Vertices)
	m.Vertices = append(m.Vertices, v0, v1, v2)
	m.Faces = append(m.Faces, [3]int{base, base + 1, base + 2})
}

// BoxMesh builds the 12-triangle surface of an axis-aligned box.
func BoxMesh(min, max r3.Vec) *Mesh {
	m := &Mesh{}
	v := [8]r3.Vec{}
	for i := 0; i < 8; i++ {
		v[i] = r3.Vec{X: min.X, Y: min.Y, Z: min.Z}
		if i&4 != 0 {
			v[i].X = max.X
		}
		if i&2 != 0 {
			v[i].Y = max.Y
		}
		if i&1 != 0 {
			v[i].Z = max.Z
		}
	}
	m.Vertices = v[:]
	quads := [6][4]int{
		{0, 1, 3, 2}, // x = min
		{4, 6, 7, 5}, // x = max
		{0, 4, 5, 1}, // y = min
		{2, 3, 7, 6}, // y = max
		{0, 2, 6, 4}, // z = min
		{1, 5, 7, 3}, // z = max
	}
	for _, q := range quads {
		m.Faces = append(m.Faces, [3]int{q[0], q[1], q[2]}, [3]int{q[0], q[2], q[3]})
	}
	return m
}
