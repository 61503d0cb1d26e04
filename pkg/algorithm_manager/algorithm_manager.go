package algorithm_manager

import (
	"github.com/ecopia-map/svdag_tiler/internal/converters"
	"github.com/ecopia-map/svdag_tiler/internal/svdag"
)

type AlgorithmManager interface {
	GetOverlapAlgorithm() svdag.OverlapFunc
	GetVertexTransformAlgorithm() converters.VertexTransformer
}
