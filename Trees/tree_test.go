package Trees

import (
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dropCounter hands out values and counts how many of them were released.
type dropCounter struct {
	made, dropped int
}

func (d *dropCounter) item() int {
	d.made++
	return d.made
}

func (d *dropCounter) drop(int) {
	d.dropped++
}

func abc(d *dropCounter) *Builder[int] {
	return Node(d.item()).L(Node(d.item())).R(Node(d.item()))
}

func TestBinaryTree_CtorFree(t *testing.T) {
	var d dropCounter
	tree := MustBuild[uint8](abc(&d))
	require.EqualValues(t, 3, tree.Size())
	tree.Free(d.drop)
	assert.Equal(t, 3, d.dropped)
	assert.True(t, tree.Empty())
	assert.Zero(t, tree.Size())
}

func TestBuilder_Occupied(t *testing.T) {
	var d dropCounter
	_, err := Build[uint8](Node(d.item()).L(Node(d.item())).L(Node(d.item())))
	assert.Equal(t, OccupiedSlotError{Left}, err)
	_, err = Build[uint8](Node(d.item()).R(Node(d.item())).R(Node(d.item())))
	assert.EqualError(t, err, "cannot set right child, as it's not empty")

	// an error deep in the literal surfaces at the top.
	_, err = Build[uint8](Node(0).L(Node(1).R(Node(2)).R(Node(3))))
	assert.Equal(t, OccupiedSlotError{Right}, err)
	assert.PanicsWithError(t, err.Error(), func() {
		MustBuild[uint8](Node(0).L(Node(1).R(Node(2)).R(Node(3))))
	})
}

func TestBinaryTree_ReplaceRoot(t *testing.T) {
	var d dropCounter
	tree := MustBuild[uint8](abc(&d))
	sub := MustBuild[uint8](Node(d.item()))

	old := tree.ReplaceRoot(sub)
	require.NotNil(t, old)
	assert.True(t, sub.Empty(), "ownership moved out of sub")
	old.Free(d.drop)
	assert.Equal(t, 3, d.dropped)
	tree.Free(d.drop)
	assert.Equal(t, 4, d.dropped)

	assert.Nil(t, tree.ReplaceRoot(nil))
	assert.Panics(t, func() {
		tree.ReplaceRoot(tree)
	})
}

func TestBuilder_ErrorAfterAttach(t *testing.T) {
	c := Node(2)
	root := Node(1).L(c)
	c.L(Node(3)).L(Node(4))
	require.Equal(t, OccupiedSlotError{Left}, c.Err())
	assert.NoError(t, root.Err())
	tree, err := Build[uint8](root)
	assert.Equal(t, OccupiedSlotError{Left}, err)
	assert.Nil(t, tree)
}

func TestBuilder_Cyclic(t *testing.T) {
	b := Node(1)
	_, err := Build[uint8](b.L(b))
	assert.Equal(t, CyclicLiteralError{}, err)

	c := Node(2)
	top := Node(0).R(Node(1).L(c))
	c.R(top)
	_, err = Build[uint8](top)
	assert.EqualError(t, err, "cannot set a child that contains its parent")

	// the same literal twice without a cycle is fine.
	x := Node(5)
	tree, err := Build[uint8](Node(4).L(x).R(x))
	require.NoError(t, err)
	assert.Equal(t, "4 { left: 5, right: 5 }", tree.String())
}

func TestBinaryTree_ReplaceSelfUntouched(t *testing.T) {
	tree := MustBuild[uint8](Node(1).L(Node(2)).R(Node(3)))
	want := tree.String()
	assert.Panics(t, func() { tree.ReplaceRoot(tree) })
	assert.EqualValues(t, 3, tree.Size())
	assert.Equal(t, want, tree.String())
	assert.True(t, tree.a.Consistent())

	root, _ := tree.Root()
	assert.Panics(t, func() { root.ReplaceLeft(tree) })
	assert.Panics(t, func() { root.ReplaceRight(tree) })
	assert.EqualValues(t, 3, tree.Size())
	assert.Equal(t, want, tree.String())
	assert.True(t, tree.a.Consistent())
	assert.True(t, root.Valid())
}

func TestBinaryTree_ReplaceLeft(t *testing.T) {
	var d dropCounter
	tree := MustBuild[uint8](abc(&d))
	root, ok := tree.Root()
	require.True(t, ok)
	old := root.ReplaceLeft(MustBuild[uint8](Node(d.item()).L(Node(d.item()))))
	old.Free(d.drop)
	assert.Equal(t, 1, d.dropped)
	assert.EqualValues(t, 4, tree.Size())
	tree.Free(d.drop)
	assert.Equal(t, 5, d.dropped)
}

func TestBinaryTree_ReplaceRight(t *testing.T) {
	var d dropCounter
	tree := MustBuild[uint8](abc(&d))
	root, _ := tree.Root()
	old := root.ReplaceRight(MustBuild[uint8](Node(d.item()).L(Node(d.item()))))
	old.Free(d.drop)
	assert.Equal(t, 1, d.dropped)
	tree.Free(d.drop)
	assert.Equal(t, 5, d.dropped)
}

func TestEqual(t *testing.T) {
	tree1 := MustBuild[uint](Node('a').L(Node('b').L(Node('c'))).R(Node('d')))
	tree2 := MustBuild[uint](Node('a').L(Node('b').L(Node('c'))).R(Node('d')))
	assert.True(t, Equal(tree1, tree2))
	tree2.ReplaceRoot(MustBuild[uint](Node('e')))
	assert.False(t, Equal(tree1, tree2))

	mirrored := MustBuild[uint](Node('a').L(Node('b').R(Node('c'))).R(Node('d')))
	assert.False(t, Equal(tree1, mirrored))
	assert.True(t, Equal(New[rune, uint](0), New[rune, uint](0)))
}

func TestBinaryTree_Traversals(t *testing.T) {
	//       1
	//     2   3
	//    4 5   6
	//         7
	tree := MustBuild[uint16](Node(1).L(Node(2).L(Node(4)).R(Node(5))).R(Node(3).R(Node(6).L(Node(7)))))
	collect := func(walk func(func(*int) bool)) (s []int) {
		walk(func(v *int) bool {
			s = append(s, *v)
			return true
		})
		return
	}
	if pre := collect(tree.PreOrder); !deepequal.Equal([]int{1, 2, 4, 5, 3, 6, 7}, pre) {
		t.Error("pre-order mismatch")
		deepequal.SideBySide(t, "pre-order", []int{1, 2, 4, 5, 3, 6, 7}, pre)
	}
	assert.Equal(t, []int{4, 2, 5, 1, 3, 7, 6}, collect(tree.InOrder))
	assert.Equal(t, []int{4, 5, 2, 7, 6, 3, 1}, collect(tree.PostOrder))
	assert.Equal(t, 4, tree.Height())

	// mutation through the pointer, and early stop.
	tree.InOrder(func(v *int) bool {
		*v *= 10
		return true
	})
	var first []int
	tree.PostOrder(func(v *int) bool {
		first = append(first, *v)
		return len(first) < 3
	})
	assert.Equal(t, []int{40, 50, 20}, first)

	empty := New[int, uint8](0)
	assert.Empty(t, collect(empty.InOrder))
	assert.Empty(t, collect(empty.PreOrder))
	assert.Empty(t, collect(empty.PostOrder))
	assert.Zero(t, empty.Height())
}

func TestBinaryTree_DeepTraversal(t *testing.T) {
	// a degenerate chain far deeper than a goroutine stack would like if this was recursive.
	const n = 200000
	b := Node(0)
	for cur, i := b, 1; i < n; i++ {
		next := Node(i)
		cur.R(next)
		cur = next
	}
	tree := MustBuild[uint32](b)
	cnt := 0
	tree.InOrder(func(v *int) bool {
		if *v != cnt {
			t.Fatalf("in-order value %d at position %d", *v, cnt)
		}
		cnt++
		return true
	})
	assert.Equal(t, n, cnt)
	assert.Equal(t, n, tree.Height())
	var d dropCounter
	tree.Free(d.drop)
	assert.Equal(t, n, d.dropped)
}

func TestBinaryTree_String(t *testing.T) {
	tree := MustBuild[uint8](Node(2).L(Node(1).R(Node(15))).R(Node(3)))
	assert.Equal(t, "2 { left: 1 { left: null, right: 15 }, right: 3 }", tree.String())
	assert.Equal(t, "null", New[int, uint8](0).String())
}

func TestAnchor_Navigation(t *testing.T) {
	tree := MustBuild[uint8](Node("r").L(Node("l").R(Node("lr"))).R(Node("x")))
	root, ok := tree.Root()
	require.True(t, ok)
	assert.True(t, root.IsRoot())
	_, ok = root.Parent()
	assert.False(t, ok)

	l, ok := root.Left()
	require.True(t, ok)
	assert.Equal(t, "l", l.Value())
	assert.True(t, l.IsLeft())
	assert.False(t, l.IsRight())
	p, ok := l.Parent()
	require.True(t, ok)
	assert.True(t, p.Same(root))

	lr, ok := l.Right()
	require.True(t, ok)
	assert.True(t, lr.IsRight())
	back, _ := lr.Parent()
	assert.True(t, back.Same(l))
	_, ok = lr.Left()
	assert.False(t, ok)

	lr.Set("changed")
	*l.Ptr() += "!"
	assert.Equal(t, "changed", lr.Value())
	assert.Equal(t, "r { left: l! { left: null, right: changed }, right: x }", tree.String())
}

func TestAnchor_Detach(t *testing.T) {
	tree := MustBuild[uint8](Node(1).L(Node(2).L(Node(4)).R(Node(5))).R(Node(3)))
	root, _ := tree.Root()
	l, _ := root.Left()
	ll, _ := l.Left()

	sub := l.Detach()
	assert.EqualValues(t, 2, tree.Size())
	assert.EqualValues(t, 3, sub.Size())
	assert.True(t, Equal(sub, MustBuild[uint8](Node(2).L(Node(4)).R(Node(5)))))
	assert.False(t, l.Valid())
	assert.False(t, ll.Valid())
	assert.True(t, root.Valid())
	_, ok := root.Left()
	assert.False(t, ok)

	assert.PanicsWithError(t, StaleCursorError{Index: uint64(l.i)}.Error(), func() { l.Value() })
	assert.PanicsWithError(t, DanglingNodeError{}.Error(), func() { root.Detach() })
	assert.PanicsWithError(t, NilCursorError{}.Error(), func() { Anchor[int, uint8]{}.Value() })

	// the detached subtree is a full tree of its own.
	sr, _ := sub.Root()
	assert.True(t, sr.IsRoot())
	root.ReplaceLeft(sub)
	assert.True(t, sub.Empty())
	assert.Equal(t, "1 { left: 2 { left: 4, right: 5 }, right: 3 }", tree.String())
	assert.True(t, tree.a.Consistent())
}
