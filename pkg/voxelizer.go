package pkg

import (
	"path/filepath"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ecopia-map/svdag_tiler/internal/data"
	"github.com/ecopia-map/svdag_tiler/internal/obj"
	"github.com/ecopia-map/svdag_tiler/internal/svdag"
	"github.com/ecopia-map/svdag_tiler/internal/tiler"
	"github.com/ecopia-map/svdag_tiler/pkg/algorithm_manager"
	"github.com/ecopia-map/svdag_tiler/tools"
)

type IVoxelizer interface {
	RunVoxelizer(opts *tiler.Options) error
}

// Voxelizer drives mesh file loading, the octree build and the arena
// write-out for the build command.
type Voxelizer struct {
	fileFinder       tools.FileFinder
	algorithmManager algorithm_manager.AlgorithmManager
}

func NewVoxelizer(fileFinder tools.FileFinder, algorithmManager algorithm_manager.AlgorithmManager) IVoxelizer {
	return &Voxelizer{
		fileFinder:       fileFinder,
		algorithmManager: algorithmManager,
	}
}

// Starts the voxelization process
func (v *Voxelizer) RunVoxelizer(opts *tiler.Options) error {
	tools.LogOutput("Preparing list of mesh files to process...")

	meshFiles := v.fileFinder.GetMeshFilesToProcess(opts)
	for i, filePath := range meshFiles {
		glog.V(1).Infof("mesh_file path %d [%s]", i, filePath)
	}
	if len(meshFiles) == 0 {
		return errors.Errorf("no mesh files found under %s", opts.Input)
	}

	for i, filePath := range meshFiles {
		tools.LogOutput("Processing file", i+1, "/", len(meshFiles))
		if err := v.processMeshFile(filePath, opts); err != nil {
			return err
		}
	}

	return nil
}

func (v *Voxelizer) processMeshFile(filePath string, opts *tiler.Options) error {
	tools.LogOutput("> reading geometry from", filepath.Base(filePath))
	mesh, err := obj.ParseFile(filePath)
	if err != nil {
		return err
	}

	transform := v.algorithmManager.GetVertexTransformAlgorithm()
	for i, vert := range mesh.Vertices {
		mesh.Vertices[i] = transform.TransformVertex(vert)
	}

	arena, err := v.buildArena(mesh, opts)
	if err != nil {
		return err
	}

	outPath := opts.Output
	if opts.FolderProcessing {
		name := filepath.Base(filePath)
		name = name[:len(name)-len(filepath.Ext(name))] + ".svdag"
		if opts.Compress {
			name += compressedSuffix
		}
		outPath = filepath.Join(opts.Output, name)
	}

	tools.LogOutput("> writing arena to", outPath)
	if err := WriteArenaFile(outPath, arena, opts.Compress); err != nil {
		return err
	}
	tools.LogOutput("> done processing", filepath.Base(filePath))
	return nil
}

func (v *Voxelizer) buildArena(mesh *data.Mesh, opts *tiler.Options) (*svdag.Arena, error) {
	corner, size := boundingCube(mesh)
	tools.LogOutput("> building SVDAG, depth", opts.Depth)

	builder := svdag.NewBuilder(mesh, svdag.BuildOptions{
		Overlap: v.algorithmManager.GetOverlapAlgorithm(),
		Progress: func(voxels uint64) {
			glog.V(2).Infof("voxels processed: %d", voxels)
		},
	})

	start := time.Now()
	arena, err := builder.Build(opts.Depth, corner, size)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	tools.LogOutput("> time to voxelize:", elapsed)
	tools.LogOutput("> DAG nodes:", arena.Size())
	glog.V(1).Infof("arena fingerprint: %016x", arena.Fingerprint())
	return arena, nil
}

// boundingCube derives the build cube from the mesh bounds: minimum
// corner plus the largest AABB edge. A degenerate mesh yields a
// non-positive size, which the builder rejects.
func boundingCube(mesh *data.Mesh) (r3.Vec, float64) {
	min, max := mesh.Bounds()
	d := r3.Sub(max, min)
	size := d.X
	if d.Y > size {
		size = d.Y
	}
	if d.Z > size {
		size = d.Z
	}
	return min, size
}
