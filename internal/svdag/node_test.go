package svdag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecopia-map/svdag_tiler/internal/svdag"
)

func TestSlotPredicates(t *testing.T) {
	requireT := require.New(t)

	requireT.True(svdag.SlotEmpty.IsEmpty())
	requireT.False(svdag.SlotEmpty.IsLeaf())
	requireT.False(svdag.SlotEmpty.IsChild())

	requireT.True(svdag.LeafSolid.IsLeaf())
	requireT.False(svdag.LeafSolid.IsChild())
	requireT.True(svdag.Slot(-7).IsLeaf())

	ref := svdag.ChildSlot(4)
	requireT.True(ref.IsChild())
	requireT.Equal(4, ref.Pos())
	requireT.Equal(svdag.Slot(5), ref)
}

func TestNodeHasValue(t *testing.T) {
	requireT := require.New(t)

	requireT.False(svdag.Node{}.HasValue())

	var leaf svdag.Node
	leaf.Children[3] = svdag.LeafSolid
	requireT.True(leaf.HasValue())

	var child svdag.Node
	child.Children[7] = svdag.ChildSlot(0)
	requireT.True(child.HasValue())
}

func TestEqualNodesEqualHash(t *testing.T) {
	requireT := require.New(t)

	cases := []svdag.Node{
		{},
		allLeafNode(),
		{Children: [8]svdag.Slot{1, 0, -1, 0, 2, 0, 0, 3}},
		{Children: [8]svdag.Slot{-1, -1, 0, 0, 0, 0, 0, 0}},
	}
	for _, n := range cases {
		m := n
		requireT.Equal(n, m)
		requireT.Equal(n.Hash(), m.Hash())
	}
}

func TestDistinctNodesDistinctHash(t *testing.T) {
	requireT := require.New(t)

	a := svdag.Node{Children: [8]svdag.Slot{1, 0, 0, 0, 0, 0, 0, 0}}
	b := svdag.Node{Children: [8]svdag.Slot{0, 1, 0, 0, 0, 0, 0, 0}}
	c := allLeafNode()

	requireT.NotEqual(a.Hash(), b.Hash())
	requireT.NotEqual(a.Hash(), c.Hash())
	requireT.NotEqual(b.Hash(), c.Hash())
	requireT.NotEqual(svdag.Node{}.Hash(), a.Hash())
}
