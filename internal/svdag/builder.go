package svdag

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ecopia-map/svdag_tiler/internal/geometry"
)

// MaxDepth is the deepest supported octree subdivision.
const MaxDepth = 31

// Scene is the geometry source consumed by the builder. Implementations
// supply triangle soup and its bounds; winding, normals and materials
// are irrelevant to the build.
type Scene interface {
	Bounds() (min, max r3.Vec)
	TriangleCount() int
	Triangle(i int) geometry.Triangle
}

// ProgressFunc receives the number of leaf voxels processed so far. It
// is called from the build goroutine with no ordering or frequency
// guarantee and must not block. Callers wanting cooperative
// cancellation check their own flag inside the callback and drop the
// partial arena afterwards.
type ProgressFunc func(voxelsProcessed uint64)

// BuildOptions tune a Builder. The zero value selects the box overlap
// pre-cull and no progress reporting.
type BuildOptions struct {
	Overlap       OverlapFunc
	Progress      ProgressFunc
	ProgressEvery uint64
}

const defaultProgressEvery = 4096

// Builder voxelizes a scene into a deduplicated arena. A Builder is
// good for any number of sequential Build calls; builds are
// single-threaded by design.
type Builder struct {
	scene    Scene
	overlap  OverlapFunc
	progress ProgressFunc
	every    uint64

	arena     *Arena
	dedup     *dedupIndex
	tris      []geometry.Triangle
	bounds    []geometry.BoundingBox
	maxDepth  int
	processed uint64
}

func NewBuilder(scene Scene, opts BuildOptions) *Builder {
	b := &Builder{
		scene:    scene,
		overlap:  opts.Overlap,
		progress: opts.Progress,
		every:    opts.ProgressEvery,
	}
	if b.overlap == nil {
		b.overlap = BoxOverlap
	}
	if b.every == 0 {
		b.every = defaultProgressEvery
	}
	return b
}

// Build voxelizes the scene to the given depth over the cube spanned by
// corner and size. The result is maximally deduplicated with the root
// at the last position; a scene that does not overlap the cube yields
// an empty arena. Build is a pure function of its inputs: identical
// invocations produce node-for-node identical arenas.
func (b *Builder) Build(depth int, corner r3.Vec, size float64) (*Arena, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, errors.Wrapf(ErrInputRejected, "depth %d outside [1, %d]", depth, MaxDepth)
	}
	if size <= 0 {
		return nil, errors.Wrapf(ErrInputRejected, "cube size %g", size)
	}

	b.maxDepth = depth
	b.arena = NewArena()
	b.dedup = newDedupIndex(func(ref Slot) Node { return b.arena.nodes[ref.Pos()] })
	b.processed = 0

	n := b.scene.TriangleCount()
	b.tris = make([]geometry.Triangle, n)
	b.bounds = make([]geometry.BoundingBox, n)
	all := make([]int, n)
	for i := 0; i < n; i++ {
		b.tris[i] = b.scene.Triangle(i)
		b.bounds[i] = b.tris[i].Bounds()
		all[i] = i
	}

	root := b.build(b.filter(all, geometry.Cube(corner, size)), corner, size, 0)
	b.arena.SetRoot(root)
	if b.progress != nil {
		b.progress(b.processed)
	}

	arena := b.arena
	b.arena, b.dedup, b.tris, b.bounds = nil, nil, nil, nil
	return arena, nil
}

func (b *Builder) build(indexes []int, corner r3.Vec, size float64, depth int) Slot {
	if len(indexes) == 0 {
		return SlotEmpty
	}
	if depth == b.maxDepth {
		b.processed++
		if b.progress != nil && b.processed%b.every == 0 {
			b.progress(b.processed)
		}
		return LeafSolid
	}

	half := size / 2
	var node Node
	for i := 0; i < 8; i++ {
		sub := octantCorner(corner, half, i)
		node.Children[i] = b.build(b.filter(indexes, geometry.Cube(sub, half)), sub, half, depth+1)
	}
	if !node.HasValue() {
		return SlotEmpty
	}
	return intern(b.arena, b.dedup, node)
}

func (b *Builder) filter(indexes []int, cell geometry.BoundingBox) []int {
	out := make([]int, 0, len(indexes))
	for _, t := range indexes {
		if b.overlap(b.tris[t], b.bounds[t], cell) {
			out = append(out, t)
		}
	}
	return out
}

func octantCorner(corner r3.Vec, half float64, i int) r3.Vec {
	if i&4 != 0 {
		corner.X += half
	}
	if i&2 != 0 {
		corner.Y += half
	}
	if i&1 != 0 {
		corner.Z += half
	}
	return corner
}
