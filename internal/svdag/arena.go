package svdag

import "github.com/pkg/errors"

// Arena is the append-only, index-addressed pool of nodes backing a
// sparse voxel DAG. Child slots hold 1-based references into the pool
// and the DAG is topologically ordered: every reference points at a
// strictly lower position. Mutating operations assume exclusive access;
// read-only traversal of a finished arena is safe from any number of
// goroutines.
type Arena struct {
	nodes []Node

	// The recorded root reference. When no root has been recorded the
	// root is the last appended node.
	root    Slot
	rootSet bool
}

func NewArena() *Arena {
	return &Arena{}
}

// Append stores the node and returns its position.
func (a *Arena) Append(n Node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// Get returns the node at the given position.
func (a *Arena) Get(index int) (Node, error) {
	if index < 0 || index >= len(a.nodes) {
		return Node{}, errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, len(a.nodes))
	}
	return a.nodes[index], nil
}

func (a *Arena) Size() int {
	return len(a.nodes)
}

// Root returns the slot of the DAG root: 0 for an empty arena, the
// recorded root if one was set, otherwise the last appended node.
func (a *Arena) Root() Slot {
	if a.rootSet {
		return a.root
	}
	if len(a.nodes) == 0 {
		return SlotEmpty
	}
	return ChildSlot(len(a.nodes) - 1)
}

// SetRoot records the root reference explicitly. Editor operations that
// append nodes after the root use this to keep the root stable.
func (a *Arena) SetRoot(s Slot) {
	a.root = s
	a.rootSet = true
}

// Clone returns a deep copy sharing nothing with the receiver.
func (a *Arena) Clone() *Arena {
	c := &Arena{
		nodes:   make([]Node, len(a.nodes)),
		root:    a.root,
		rootSet: a.rootSet,
	}
	copy(c.nodes, a.nodes)
	return c
}

// ShiftIndexes adds delta to every positive child slot of every node.
// Empty and leaf slots are untouched. Used to re-root one arena's
// references before concatenating it onto another.
func (a *Arena) ShiftIndexes(delta int32) {
	for i := range a.nodes {
		for k, v := range a.nodes[i].Children {
			if v.IsChild() {
				a.nodes[i].Children[k] = v + Slot(delta)
			}
		}
	}
}

// Compress rewrites the arena so that no two nodes are structurally
// equal and nothing unreachable from the root survives. Nodes are
// emitted in topological order (children before parents, octants in
// slot order), child slots rewritten through the old-to-new mapping and
// deduplicated through the structural hash; the root reference is
// remapped. An arena whose root is empty compresses to nothing. On an
// arena fresh out of a build, Compress is a node-for-node no-op.
func (a *Arena) Compress() {
	root := a.Root()
	if !root.IsChild() || len(a.nodes) == 0 {
		a.nodes = a.nodes[:0]
		a.SetRoot(root)
		return
	}

	out := make([]Node, 0, len(a.nodes))
	remap := make(map[int]Slot, len(a.nodes))
	dedup := newDedupIndex(func(ref Slot) Node { return out[ref.Pos()] })

	var visit func(pos int) Slot
	visit = func(pos int) Slot {
		if ref, ok := remap[pos]; ok {
			return ref
		}
		n := a.nodes[pos]
		for k, v := range n.Children {
			if v.IsChild() {
				n.Children[k] = visit(v.Pos())
			}
		}
		ref, ok := dedup.lookup(n)
		if !ok {
			out = append(out, n)
			ref = ChildSlot(len(out) - 1)
			dedup.insert(n, ref)
		}
		remap[pos] = ref
		return ref
	}

	newRoot := visit(root.Pos())
	a.nodes = out
	a.SetRoot(newRoot)
}

// Validate asserts the structural invariants of an ordered arena:
// every positive slot references a strictly lower position (the DAG is
// acyclic and topologically ordered) and the root is in range. Editor
// operations may leave forward references until the next Compress, so
// validation belongs after compression.
func (a *Arena) Validate() error {
	for i := range a.nodes {
		for _, v := range a.nodes[i].Children {
			if v.IsChild() && v.Pos() >= i {
				return errors.Wrapf(ErrIndexOutOfRange,
					"node %d references position %d out of topological order", i, v.Pos())
			}
		}
	}
	if r := a.Root(); r.IsChild() && r.Pos() >= len(a.nodes) {
		return errors.Wrapf(ErrIndexOutOfRange, "root references position %d, size %d", r.Pos(), len(a.nodes))
	}
	return nil
}
