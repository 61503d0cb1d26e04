package pkg

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ecopia-map/svdag_tiler/internal/svdag"
	"github.com/ecopia-map/svdag_tiler/internal/tiler"
	"github.com/ecopia-map/svdag_tiler/tools"
)

// RunSdf synthesizes an arena over the unit cube from one of the named
// inside tests.
func RunSdf(opts *tiler.Options) error {
	inside, err := namedInsideFunc(opts.SdfOptions.Shape)
	if err != nil {
		return err
	}

	arena, err := svdag.FromSDF(opts.Depth, inside)
	if err != nil {
		return err
	}
	arena.Compress()
	if err := arena.Validate(); err != nil {
		return err
	}

	tools.LogOutput("> synthesized arena:", arena.Size(), "nodes")
	return WriteArenaFile(opts.Output, arena, opts.Compress)
}

func namedInsideFunc(shape string) (svdag.InsideFunc, error) {
	switch shape {
	case "sphere":
		center := r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}
		return func(p r3.Vec, _ float64) bool {
			return r3.Norm(r3.Sub(p, center)) < 0.4
		}, nil
	case "box":
		return func(p r3.Vec, _ float64) bool {
			return p.X > 0.2 && p.X < 0.8 &&
				p.Y > 0.2 && p.Y < 0.8 &&
				p.Z > 0.2 && p.Z < 0.8
		}, nil
	case "halfspace":
		return func(p r3.Vec, _ float64) bool {
			return p.X+p.Y+p.Z < 1.5
		}, nil
	default:
		return nil, errors.Errorf("unknown sdf shape %q", shape)
	}
}
