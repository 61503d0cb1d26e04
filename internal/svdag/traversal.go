package svdag

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Ray is a half-line in world space. Dir should be normalized so that
// hit distances are euclidean.
type Ray struct {
	Origin r3.Vec
	Dir    r3.Vec
}

// Hit is the entry point of the first solid voxel along a ray.
type Hit struct {
	Position r3.Vec
	Distance float64
}

// degenerate direction components get this magnitude so every plane
// parameter stays finite
const dirEpsilon = 1e-12

// Traverse marches the ray through the arena over the cube spanned by
// corner and size, visiting octants front to back in the order the ray
// crosses their separating planes. A hit is reported when a solid leaf,
// or any non-empty slot at maxDepth, is entered at a parametric
// distance within maxDist. The arena is never modified; concurrent
// calls over a finished arena are safe.
func Traverse(a *Arena, ray Ray, corner r3.Vec, size float64, maxDepth int, maxDist float64) (Hit, bool) {
	root := a.Root()
	if root == SlotEmpty || size <= 0 {
		return Hit{}, false
	}

	o := ray.Origin
	d := ray.Dir
	if math.Abs(d.X) < dirEpsilon {
		d.X = dirEpsilon
	}
	if math.Abs(d.Y) < dirEpsilon {
		d.Y = dirEpsilon
	}
	if math.Abs(d.Z) < dirEpsilon {
		d.Z = dirEpsilon
	}

	min := corner
	max := r3.Add(corner, r3.Vec{X: size, Y: size, Z: size})

	// mirror the ray so every direction component is positive; child
	// addressing is fixed up through the octant mask
	var mask int
	if d.X < 0 {
		o.X = min.X + max.X - o.X
		d.X = -d.X
		mask |= 4
	}
	if d.Y < 0 {
		o.Y = min.Y + max.Y - o.Y
		d.Y = -d.Y
		mask |= 2
	}
	if d.Z < 0 {
		o.Z = min.Z + max.Z - o.Z
		d.Z = -d.Z
		mask |= 1
	}

	tx0 := (min.X - o.X) / d.X
	tx1 := (max.X - o.X) / d.X
	ty0 := (min.Y - o.Y) / d.Y
	ty1 := (max.Y - o.Y) / d.Y
	tz0 := (min.Z - o.Z) / d.Z
	tz1 := (max.Z - o.Z) / d.Z

	if math.Max(tx0, math.Max(ty0, tz0)) >= math.Min(tx1, math.Min(ty1, tz1)) {
		return Hit{}, false
	}

	t := &traverser{arena: a, ray: ray, mask: mask, maxDepth: maxDepth, maxDist: maxDist}
	return t.subtree(tx0, ty0, tz0, tx1, ty1, tz1, root, 0)
}

type traverser struct {
	arena    *Arena
	ray      Ray
	mask     int
	maxDepth int
	maxDist  float64
}

func (t *traverser) subtree(tx0, ty0, tz0, tx1, ty1, tz1 float64, slot Slot, depth int) (Hit, bool) {
	if slot == SlotEmpty {
		return Hit{}, false
	}
	if tx1 < 0 || ty1 < 0 || tz1 < 0 {
		// cell entirely behind the origin
		return Hit{}, false
	}
	entry := math.Max(tx0, math.Max(ty0, tz0))
	if entry > t.maxDist {
		return Hit{}, false
	}
	if slot.IsLeaf() || depth >= t.maxDepth {
		dist := math.Max(entry, 0)
		return Hit{
			Position: r3.Add(t.ray.Origin, r3.Scale(dist, t.ray.Dir)),
			Distance: dist,
		}, true
	}

	node := t.arena.nodes[slot.Pos()]
	txm := 0.5 * (tx0 + tx1)
	tym := 0.5 * (ty0 + ty1)
	tzm := 0.5 * (tz0 + tz1)

	for curr := firstNode(tx0, ty0, tz0, txm, tym, tzm); curr < 8; {
		cx0, cx1 := tx0, txm
		if curr&4 != 0 {
			cx0, cx1 = txm, tx1
		}
		cy0, cy1 := ty0, tym
		if curr&2 != 0 {
			cy0, cy1 = tym, ty1
		}
		cz0, cz1 := tz0, tzm
		if curr&1 != 0 {
			cz0, cz1 = tzm, tz1
		}
		if hit, ok := t.subtree(cx0, cy0, cz0, cx1, cy1, cz1, node.Children[curr^t.mask], depth+1); ok {
			return hit, true
		}
		curr = nextNode(curr, cx1, cy1, cz1)
	}
	return Hit{}, false
}

// firstNode picks the octant containing the entry point of the
// mirrored cell: the entry plane is the latest of the three lower
// planes, and a midplane already crossed at entry time sets its bit.
func firstNode(tx0, ty0, tz0, txm, tym, tzm float64) int {
	i := 0
	switch {
	case tx0 >= ty0 && tx0 >= tz0: // enters through the YZ face
		if tym < tx0 {
			i |= 2
		}
		if tzm < tx0 {
			i |= 1
		}
	case ty0 >= tz0: // XZ face
		if txm < ty0 {
			i |= 4
		}
		if tzm < ty0 {
			i |= 1
		}
	default: // XY face
		if txm < tz0 {
			i |= 4
		}
		if tym < tz0 {
			i |= 2
		}
	}
	return i
}

// nextNode advances to the neighbour across the nearest exit plane of
// the current child, or returns 8 when the ray leaves the parent cell.
func nextNode(curr int, tx1, ty1, tz1 float64) int {
	switch {
	case tx1 <= ty1 && tx1 <= tz1:
		if curr&4 != 0 {
			return 8
		}
		return curr | 4
	case ty1 <= tz1:
		if curr&2 != 0 {
			return 8
		}
		return curr | 2
	default:
		if curr&1 != 0 {
			return 8
		}
		return curr | 1
	}
}
