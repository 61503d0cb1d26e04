package tiler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecopia-map/svdag_tiler/internal/tiler"
)

func TestLoadProfileDefaults(t *testing.T) {
	requireT := require.New(t)

	p, err := tiler.LoadProfile("")
	requireT.NoError(err)
	requireT.Equal(8, p.Depth)
	requireT.Equal(string(tiler.Box), p.Overlap)
	requireT.False(p.Compress)
}

func TestLoadProfileFromYAML(t *testing.T) {
	requireT := require.New(t)

	path := filepath.Join(t.TempDir(), "build.yaml")
	requireT.NoError(os.WriteFile(path, []byte("depth: 6\noverlap: sat\ncompress: true\nz_offset: -1.5\n"), 0644))

	p, err := tiler.LoadProfile(path)
	requireT.NoError(err)
	requireT.Equal(6, p.Depth)
	requireT.Equal("sat", p.Overlap)
	requireT.True(p.Compress)
	requireT.Equal(-1.5, p.ZOffset)
}

func TestLoadProfileRejectsBadValues(t *testing.T) {
	requireT := require.New(t)

	path := filepath.Join(t.TempDir(), "build.yaml")
	requireT.NoError(os.WriteFile(path, []byte("depth: 99\n"), 0644))
	_, err := tiler.LoadProfile(path)
	requireT.Error(err)

	requireT.NoError(os.WriteFile(path, []byte("depth: 4\noverlap: fuzzy\n"), 0644))
	_, err = tiler.LoadProfile(path)
	requireT.Error(err)

	_, err = tiler.LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	requireT.Error(err)
}

func TestProfileApplyToKeepsExplicitFlags(t *testing.T) {
	requireT := require.New(t)

	p := tiler.Profile{Depth: 6, Overlap: "SAT", Compress: true, ZOffset: 2}

	opts := tiler.Options{}
	p.ApplyTo(&opts)
	requireT.Equal(6, opts.Depth)
	requireT.Equal(tiler.SAT, opts.Overlap)
	requireT.True(opts.Compress)
	requireT.Equal(2.0, opts.ZOffset)

	explicit := tiler.Options{Depth: 3, Overlap: tiler.Box}
	p.ApplyTo(&explicit)
	requireT.Equal(3, explicit.Depth)
	requireT.Equal(tiler.Box, explicit.Overlap)
}
