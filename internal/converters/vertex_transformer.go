package converters

import "gonum.org/v1/gonum/spatial/r3"

// VertexTransformer adjusts mesh vertices before voxelization.
type VertexTransformer interface {
	TransformVertex(v r3.Vec) r3.Vec
}
