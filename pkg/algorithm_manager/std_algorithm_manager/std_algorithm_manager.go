package std_algorithm_manager

import (
	"github.com/ecopia-map/svdag_tiler/internal/converters"
	"github.com/ecopia-map/svdag_tiler/internal/converters/offset"
	"github.com/ecopia-map/svdag_tiler/internal/svdag"
	"github.com/ecopia-map/svdag_tiler/internal/tiler"
	"github.com/ecopia-map/svdag_tiler/pkg/algorithm_manager"
)

type StandardAlgorithmManager struct {
	options *tiler.Options
}

func NewAlgorithmManager(opts *tiler.Options) algorithm_manager.AlgorithmManager {
	return &StandardAlgorithmManager{
		options: opts,
	}
}

func (m *StandardAlgorithmManager) GetOverlapAlgorithm() svdag.OverlapFunc {
	if m.options.Overlap == tiler.SAT {
		return svdag.SATOverlap
	}
	return svdag.BoxOverlap
}

func (m *StandardAlgorithmManager) GetVertexTransformAlgorithm() converters.VertexTransformer {
	return offset.NewZOffsetTransformer(m.options.ZOffset)
}
