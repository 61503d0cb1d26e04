package svdag

import "math/bits"

// Hash returns the MurmurHash3 x86 32-bit hash of the eight child slots
// taken as unsigned 32-bit words in slot order, with seed 0. Structural
// equality implies hash equality; deduplication never relies on the
// converse.
func (n Node) Hash() uint32 {
	var h uint32
	for _, c := range n.Children {
		k := uint32(c)
		k *= 0xcc9e2d51
		k = bits.RotateLeft32(k, 15)
		k *= 0x1b873593
		h ^= k
		h = bits.RotateLeft32(h, 13)
		h = h*5 + 0xe6546b64
	}
	h ^= 8
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// dedupIndex maps node contents to existing references through the
// structural hash, resolving bucket collisions by component-wise
// equality. Its lifetime is bounded by the build or compress call that
// owns it.
type dedupIndex struct {
	get     func(Slot) Node
	buckets map[uint32][]Slot
}

func newDedupIndex(get func(Slot) Node) *dedupIndex {
	return &dedupIndex{get: get, buckets: make(map[uint32][]Slot)}
}

func (d *dedupIndex) lookup(n Node) (Slot, bool) {
	for _, ref := range d.buckets[n.Hash()] {
		if d.get(ref) == n {
			return ref, true
		}
	}
	return SlotEmpty, false
}

func (d *dedupIndex) insert(n Node, ref Slot) {
	h := n.Hash()
	d.buckets[h] = append(d.buckets[h], ref)
}

// intern appends n unless an equal node is already indexed, and returns
// the reference either way.
func intern(a *Arena, d *dedupIndex, n Node) Slot {
	if ref, ok := d.lookup(n); ok {
		return ref
	}
	ref := ChildSlot(a.Append(n))
	d.insert(n, ref)
	return ref
}
