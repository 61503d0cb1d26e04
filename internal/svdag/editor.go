package svdag

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Combine merges other into a. With overwrite=false the result is the
// set union of both solids; with overwrite=true other wins wherever the
// two overlap. other is shift-copied into a and never mutated (a may be
// passed as its own other). recompress runs Compress afterwards.
func (a *Arena) Combine(other *Arena, overwrite, recompress bool) {
	rSelf := a.Root()
	rOther := a.appendShifted(other)

	switch {
	case rOther == SlotEmpty:
		a.SetRoot(rSelf)
	case rSelf == SlotEmpty:
		a.SetRoot(rOther)
	case rSelf.IsChild() && rOther.IsChild():
		a.recursiveCombine(overwrite, rSelf.Pos(), rOther.Pos())
		a.SetRoot(rSelf)
	case overwrite && rSelf.IsLeaf() && rOther.IsChild():
		// refine the solid root so other only wins where it is solid
		var n Node
		for k := range n.Children {
			n.Children[k] = rSelf
		}
		rSelf = ChildSlot(a.Append(n))
		a.recursiveCombine(overwrite, rSelf.Pos(), rOther.Pos())
		a.SetRoot(rSelf)
	case overwrite:
		a.SetRoot(rOther)
	case rSelf.IsLeaf():
		// a solid root already covers the whole cube
		a.SetRoot(rSelf)
	default:
		a.SetRoot(rOther)
	}

	if recompress {
		a.Compress()
	}
}

func (a *Arena) recursiveCombine(overwrite bool, selfPos, otherPos int) {
	for i := 0; i < 8; i++ {
		o := a.nodes[otherPos].Children[i]
		if o == SlotEmpty {
			continue
		}
		s := a.nodes[selfPos].Children[i]
		switch {
		case s == SlotEmpty:
			a.nodes[selfPos].Children[i] = o
		case s.IsChild() && o.IsChild():
			// fuse into a private copy: s may be shared with other parents
			pos, err := a.DuplicateChild(selfPos, i)
			if err != nil {
				continue
			}
			a.recursiveCombine(overwrite, pos, o.Pos())
		case overwrite && s.IsLeaf() && o.IsChild():
			// refine the leaf so other only wins where it is solid
			pos, err := a.SubdivideChild(selfPos, i)
			if err != nil {
				continue
			}
			a.recursiveCombine(overwrite, pos, o.Pos())
		case overwrite:
			a.nodes[selfPos].Children[i] = o
		case s.IsChild() && o.IsLeaf():
			// union: an octant solid in either input is solid in the result
			a.nodes[selfPos].Children[i] = o
		}
	}
}

// Subtract removes other's solid from a. Where other holds an internal
// node opposite one of a's leaves the leaf is subdivided first so the
// subtraction can descend; octants emptied by the subtraction are
// pruned to the empty slot. other is shift-copied and never mutated.
func (a *Arena) Subtract(other *Arena, recompress bool) {
	rSelf := a.Root()
	rOther := a.appendShifted(other)

	switch {
	case rSelf == SlotEmpty || rOther == SlotEmpty:
		a.SetRoot(rSelf)
	case rOther.IsLeaf():
		a.SetRoot(SlotEmpty)
	default:
		if rSelf.IsLeaf() {
			var n Node
			for k := range n.Children {
				n.Children[k] = rSelf
			}
			rSelf = ChildSlot(a.Append(n))
		}
		a.recursiveSubtract(rSelf.Pos(), rOther.Pos())
		if !a.nodes[rSelf.Pos()].HasValue() {
			rSelf = SlotEmpty
		}
		a.SetRoot(rSelf)
	}

	if recompress {
		a.Compress()
	}
}

func (a *Arena) recursiveSubtract(selfPos, otherPos int) {
	for i := 0; i < 8; i++ {
		o := a.nodes[otherPos].Children[i]
		if o == SlotEmpty {
			continue
		}
		s := a.nodes[selfPos].Children[i]
		if s == SlotEmpty {
			continue
		}
		if o.IsLeaf() {
			// the whole octant is solid in other
			a.nodes[selfPos].Children[i] = SlotEmpty
			continue
		}
		if s.IsLeaf() {
			pos, err := a.SubdivideChild(selfPos, i)
			if err != nil {
				continue
			}
			s = ChildSlot(pos)
		} else {
			// descend into a private copy: s may be shared with other parents
			pos, err := a.DuplicateChild(selfPos, i)
			if err != nil {
				continue
			}
			s = ChildSlot(pos)
		}
		a.recursiveSubtract(s.Pos(), o.Pos())
		if !a.nodes[s.Pos()].HasValue() {
			a.nodes[selfPos].Children[i] = SlotEmpty
		}
	}
}

// appendShifted concatenates a shifted copy of other's nodes onto a and
// returns other's root reference re-rooted into the combined pool.
func (a *Arena) appendShifted(other *Arena) Slot {
	off := Slot(len(a.nodes))
	rOther := other.Root()
	base := len(a.nodes)
	a.nodes = append(a.nodes, other.nodes...)
	for i := base; i < len(a.nodes); i++ {
		for k, v := range a.nodes[i].Children {
			if v.IsChild() {
				a.nodes[i].Children[k] = v + off
			}
		}
	}
	if rOther.IsChild() {
		rOther += off
	}
	return rOther
}

// DuplicateChild copies the node referenced by the given child slot to
// the end of the arena and repoints the parent at the private copy.
// Fails with ErrNotFound unless the slot holds a positive reference.
func (a *Arena) DuplicateChild(parentIdx, childSlot int) (int, error) {
	if err := a.checkSlot(parentIdx, childSlot); err != nil {
		return 0, err
	}
	v := a.nodes[parentIdx].Children[childSlot]
	if !v.IsChild() {
		return 0, errors.Wrapf(ErrNotFound, "node %d slot %d holds %d", parentIdx, childSlot, int32(v))
	}
	a.pinRoot()
	pos := a.Append(a.nodes[v.Pos()])
	a.nodes[parentIdx].Children[childSlot] = ChildSlot(pos)
	return pos, nil
}

// SubdivideChild replaces the child slot with a fresh node whose eight
// slots all hold the slot's current value. Subdividing a leaf refines
// the voxel into eight identical leaf children. Fails with ErrNotFound
// on an empty slot.
func (a *Arena) SubdivideChild(parentIdx, childSlot int) (int, error) {
	if err := a.checkSlot(parentIdx, childSlot); err != nil {
		return 0, err
	}
	v := a.nodes[parentIdx].Children[childSlot]
	if v == SlotEmpty {
		return 0, errors.Wrapf(ErrNotFound, "node %d slot %d is empty", parentIdx, childSlot)
	}
	a.pinRoot()
	var n Node
	for k := range n.Children {
		n.Children[k] = v
	}
	pos := a.Append(n)
	a.nodes[parentIdx].Children[childSlot] = ChildSlot(pos)
	return pos, nil
}

func (a *Arena) checkSlot(parentIdx, childSlot int) error {
	if parentIdx < 0 || parentIdx >= len(a.nodes) {
		return errors.Wrapf(ErrIndexOutOfRange, "parent %d, size %d", parentIdx, len(a.nodes))
	}
	if childSlot < 0 || childSlot > 7 {
		return errors.Wrapf(ErrIndexOutOfRange, "child slot %d", childSlot)
	}
	return nil
}

// pinRoot records the implicit last-node root before an editor append
// moves the last position.
func (a *Arena) pinRoot() {
	if !a.rootSet {
		a.SetRoot(a.Root())
	}
}

// InsideFunc reports whether the voxel centered at center with the
// given edge length is inside the shape. FromSDF evaluates it on unit
// voxels only.
type InsideFunc func(center r3.Vec, size float64) bool

// FromSDF synthesizes an arena over the unit cube from an inside test,
// deduplicating subtrees on the fly. The recursion always bottoms at
// the requested depth; identical inside functions yield identical
// arenas.
func FromSDF(depth int, inside InsideFunc) (*Arena, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, errors.Wrapf(ErrInputRejected, "depth %d outside [1, %d]", depth, MaxDepth)
	}
	a := NewArena()
	dedup := newDedupIndex(func(ref Slot) Node { return a.nodes[ref.Pos()] })
	rscale := 1.0 / float64(uint32(1)<<uint(depth))
	root := sdfRecurse(a, dedup, [3]uint32{}, uint32(1)<<uint(depth), rscale, inside)
	a.SetRoot(root)
	return a, nil
}

func sdfRecurse(a *Arena, dedup *dedupIndex, min [3]uint32, size uint32, rscale float64, inside InsideFunc) Slot {
	if size == 1 {
		c := r3.Vec{
			X: (float64(min[0]) + 0.5) * rscale,
			Y: (float64(min[1]) + 0.5) * rscale,
			Z: (float64(min[2]) + 0.5) * rscale,
		}
		if inside(c, rscale) {
			return LeafSolid
		}
		return SlotEmpty
	}

	half := size / 2
	var n Node
	for i := 0; i < 8; i++ {
		sub := min
		if i&4 != 0 {
			sub[0] += half
		}
		if i&2 != 0 {
			sub[1] += half
		}
		if i&1 != 0 {
			sub[2] += half
		}
		n.Children[i] = sdfRecurse(a, dedup, sub, half, rscale, inside)
	}
	if !n.HasValue() {
		return SlotEmpty
	}
	return intern(a, dedup, n)
}
