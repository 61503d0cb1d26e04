package pkg

import (
	"github.com/shopspring/decimal"

	"github.com/ecopia-map/svdag_tiler/internal/tiler"
	"github.com/ecopia-map/svdag_tiler/tools"
)

// RunInfo prints arena statistics: node count, solid voxel count on the
// requested grid, occupancy and solid volume. Volumes are computed with
// decimal arithmetic so deep grids do not lose digits to float rounding.
func RunInfo(opts *tiler.Options) error {
	inspectOpts := opts.InspectOptions

	arena, err := ReadArenaFile(opts.Input)
	if err != nil {
		return err
	}

	depth := inspectOpts.Depth
	solid := arena.CountSolid(depth)

	side := decimal.NewFromInt(int64(1) << uint(depth))
	totalVoxels := side.Mul(side).Mul(side)

	voxelEdge := decimal.NewFromFloat(inspectOpts.Size).Div(side)
	solidDec := decimal.NewFromInt(int64(solid))
	volume := solidDec.Mul(voxelEdge).Mul(voxelEdge).Mul(voxelEdge)
	occupancy := solidDec.Div(totalVoxels)

	tools.LogOutput("arena nodes:      ", arena.Size())
	tools.LogOutput("grid depth:       ", depth)
	tools.LogOutput("solid voxels:     ", solid)
	tools.LogOutput("occupancy:        ", occupancy.StringFixed(9))
	tools.LogOutput("solid volume:     ", volume.StringFixed(9))
	tools.LogOutput("fingerprint:      ", tools.FmtJSONString(arena.Fingerprint()))
	return nil
}
