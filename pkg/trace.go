package pkg

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ecopia-map/svdag_tiler/internal/svdag"
	"github.com/ecopia-map/svdag_tiler/internal/tiler"
	"github.com/ecopia-map/svdag_tiler/tools"
)

// RunTrace casts a single ray through an arena file and prints the
// first hit.
func RunTrace(opts *tiler.Options) error {
	traceOpts := opts.TraceOptions

	arena, err := ReadArenaFile(opts.Input)
	if err != nil {
		return err
	}

	ray := svdag.Ray{
		Origin: vecOf(traceOpts.Origin),
		Dir:    r3.Unit(vecOf(traceOpts.Dir)),
	}
	corner := vecOf(traceOpts.Corner)

	hit, ok := svdag.Traverse(arena, ray, corner, traceOpts.Size, traceOpts.MaxDepth, traceOpts.MaxDist)
	if !ok {
		tools.LogOutput("no hit within", traceOpts.MaxDist)
		return nil
	}

	tools.LogOutput(fmt.Sprintf("hit at (%.6f, %.6f, %.6f), distance %.6f",
		hit.Position.X, hit.Position.Y, hit.Position.Z, hit.Distance))
	return nil
}

func vecOf(v [3]float64) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}
