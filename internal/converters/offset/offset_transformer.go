package offset

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ecopia-map/svdag_tiler/internal/converters"
)

// OffsetTransformer shifts every vertex by a constant offset, typically
// a vertical correction applied before voxelization.
type OffsetTransformer struct {
	Offset r3.Vec
}

func NewZOffsetTransformer(zOffset float64) converters.VertexTransformer {
	return &OffsetTransformer{Offset: r3.Vec{Z: zOffset}}
}

func (t *OffsetTransformer) TransformVertex(v r3.Vec) r3.Vec {
	return r3.Add(v, t.Offset)
}
