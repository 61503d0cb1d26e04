package svdag

import "gonum.org/v1/gonum/spatial/r3"

// CountSolid returns the number of solid voxels on the maxDepth grid: a
// leaf at depth d stands for 8^(maxDepth-d) voxels, and a non-empty
// slot truncated at maxDepth counts as one. Shared subtrees are
// memoised per (position, depth) pair, since a deduplicated child can
// be referenced from several depths at once.
func (a *Arena) CountSolid(maxDepth int) uint64 {
	memo := make(map[[2]int]uint64)
	return a.countSolid(a.Root(), 0, maxDepth, memo)
}

func (a *Arena) countSolid(slot Slot, depth, maxDepth int, memo map[[2]int]uint64) uint64 {
	if slot == SlotEmpty {
		return 0
	}
	if depth >= maxDepth {
		return 1
	}
	if slot.IsLeaf() {
		side := uint64(1) << uint(maxDepth-depth)
		return side * side * side
	}

	key := [2]int{slot.Pos(), depth}
	if v, ok := memo[key]; ok {
		return v
	}
	var sum uint64
	for _, c := range a.nodes[slot.Pos()].Children {
		sum += a.countSolid(c, depth+1, maxDepth, memo)
	}
	memo[key] = sum
	return sum
}

// SampleVoxel walks the DAG down to maxDepth and reports whether the
// point falls in a solid voxel of the cube spanned by corner and size.
// Points outside the cube are never solid.
func (a *Arena) SampleVoxel(p r3.Vec, corner r3.Vec, size float64, maxDepth int) bool {
	if size <= 0 ||
		p.X < corner.X || p.X >= corner.X+size ||
		p.Y < corner.Y || p.Y >= corner.Y+size ||
		p.Z < corner.Z || p.Z >= corner.Z+size {
		return false
	}

	slot := a.Root()
	min := corner
	s := size
	for depth := 0; ; depth++ {
		if slot == SlotEmpty {
			return false
		}
		if slot.IsLeaf() || depth >= maxDepth {
			return true
		}
		half := s / 2
		i := 0
		if p.X >= min.X+half {
			i |= 4
			min.X += half
		}
		if p.Y >= min.Y+half {
			i |= 2
			min.Y += half
		}
		if p.Z >= min.Z+half {
			i |= 1
			min.Z += half
		}
		slot = a.nodes[slot.Pos()].Children[i]
		s = half
	}
}
