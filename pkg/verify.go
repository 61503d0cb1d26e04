package pkg

import (
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/ecopia-map/svdag_tiler/internal/svdag"
	"github.com/ecopia-map/svdag_tiler/internal/tiler"
)

// RunVerify re-validates an arena file: deserialization (size/count
// match and slot ranges), the topological-order invariant, and, for
// files without a zstd frame, that the re-serialized image has the
// file's size. The fingerprint is logged, not compared.
func RunVerify(opts *tiler.Options) error {
	glog.Infoln("> reading arena file...", opts.Input)

	raw, err := os.ReadFile(opts.Input)
	if err != nil {
		return errors.Wrapf(err, "read %s", opts.Input)
	}

	arena, err := ReadArenaFile(opts.Input)
	if err != nil {
		glog.Infoln(err)
		return err
	}
	glog.Infoln("> arena nodes:", arena.Size())

	if err := arena.Validate(); err != nil {
		glog.Infoln(err)
		return err
	}
	glog.Infoln("> topological order ok")

	if !isZstdFramed(raw) {
		image := arena.Serialize()
		if len(image) != len(raw) {
			return errors.Wrapf(svdag.ErrCorruptArena,
				"re-serialized size %d differs from file size %d", len(image), len(raw))
		}
	}
	glog.Infof("> fingerprint: %016x", arena.Fingerprint())

	glog.Infoln("Verify arena file success.")
	return nil
}
