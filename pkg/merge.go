package pkg

import (
	"github.com/golang/glog"

	"github.com/ecopia-map/svdag_tiler/internal/tiler"
	"github.com/ecopia-map/svdag_tiler/tools"
)

// RunMerge combines two arena files into one. With subtract=false the
// result is the union (or, with Overwrite, B-wins) merge; with
// subtract=true the set difference A minus B.
func RunMerge(opts *tiler.Options, subtract bool) error {
	mergeOpts := opts.MergeOptions

	a, err := ReadArenaFile(mergeOpts.InputA)
	if err != nil {
		return err
	}
	b, err := ReadArenaFile(mergeOpts.InputB)
	if err != nil {
		return err
	}

	tools.LogOutput("> input arenas:", a.Size(), "and", b.Size(), "nodes")

	if subtract {
		a.Subtract(b, mergeOpts.Recompress)
	} else {
		a.Combine(b, mergeOpts.Overwrite, mergeOpts.Recompress)
	}

	if mergeOpts.Recompress {
		if err := a.Validate(); err != nil {
			return err
		}
	}

	tools.LogOutput("> merged arena:", a.Size(), "nodes")
	glog.V(1).Infof("merged fingerprint: %016x", a.Fingerprint())

	return WriteArenaFile(opts.Output, a, opts.Compress)
}
