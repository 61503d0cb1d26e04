package geometry

import "gonum.org/v1/gonum/spatial/r3"

// Triangle is a face of the input mesh. Winding does not matter for
// voxelization.
type Triangle struct {
	V0 r3.Vec
	V1 r3.Vec
	V2 r3.Vec
}

func (t Triangle) Bounds() BoundingBox {
	return FromPoints(t.V0, t.V1, t.V2)
}

// Normal returns the unnormalized face normal. Degenerate triangles
// yield the zero vector.
func (t Triangle) Normal() r3.Vec {
	return r3.Cross(r3.Sub(t.V1, t.V0), r3.Sub(t.V2, t.V0))
}
