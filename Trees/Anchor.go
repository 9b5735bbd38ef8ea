package Trees

import (
	"github.com/g-m-twostay/go-linked/internal"
	"golang.org/x/exp/constraints"
)

// Anchor is a copyable reference to a node of a BinaryTree. It never owns the node;
// every structural edit made through it is performed by the tree.
// An Anchor stays usable until its node is released (deleted, detached or moved into
// another tree), after which any use panics with StaleCursorError.
// The zero value refers to nothing and panics with NilCursorError when used.
type Anchor[T any, S constraints.Unsigned] struct {
	t   *BinaryTree[T, S]
	i   S
	gen uint32
}

func (u *BinaryTree[T, S]) anchor(i S) Anchor[T, S] {
	if i == 0 {
		panic(NilCursorError{})
	}
	return Anchor[T, S]{u, i, u.a.At(i).Gen}
}

// maybe is anchor, but reports the nil node as absent instead of panicking.
func (u *BinaryTree[T, S]) maybe(i S) (Anchor[T, S], bool) {
	if i == 0 {
		return Anchor[T, S]{}, false
	}
	return u.anchor(i), true
}

func (u Anchor[T, S]) node() *internal.Node[T, S] {
	if u.t == nil || u.i == 0 {
		panic(NilCursorError{})
	}
	if !u.t.a.Live(u.i, u.gen) {
		panic(StaleCursorError{Index: uint64(u.i)})
	}
	return u.t.a.At(u.i)
}

// Valid reports whether the node is still alive.
func (u Anchor[T, S]) Valid() bool {
	return u.t != nil && u.t.a.Live(u.i, u.gen)
}

// Same reports whether both anchors reference the same node.
func (u Anchor[T, S]) Same(o Anchor[T, S]) bool {
	return u.t == o.t && u.i == o.i && u.gen == o.gen
}

func (u Anchor[T, S]) Value() T {
	return u.node().V
}

// Ptr to the value. Invalidated by the next insertion into the tree.
func (u Anchor[T, S]) Ptr() *T {
	return &u.node().V
}

func (u Anchor[T, S]) Set(v T) {
	u.node().V = v
}

func (u Anchor[T, S]) Parent() (Anchor[T, S], bool) {
	return u.t.maybe(u.node().Back)
}

func (u Anchor[T, S]) Left() (Anchor[T, S], bool) {
	return u.t.maybe(u.node().Own[Left])
}

func (u Anchor[T, S]) Right() (Anchor[T, S], bool) {
	return u.t.maybe(u.node().Own[Right])
}

func (u Anchor[T, S]) IsRoot() bool {
	return u.node().Slot == internal.Root
}

func (u Anchor[T, S]) IsLeft() bool {
	return u.node().Slot == Left
}

func (u Anchor[T, S]) IsRight() bool {
	return u.node().Slot == Right
}

// Detach the subtree rooted at this node from its parent and hand it to the caller as a
// standalone tree. The anchor, and every anchor into the subtree, is stale afterwards.
// Panics with DanglingNodeError on the root.
// Time: O(n) in the size of the subtree.
func (u Anchor[T, S]) Detach() *BinaryTree[T, S] {
	n := u.node()
	if n.Slot == internal.Root {
		panic(DanglingNodeError{})
	}
	return u.t.evict(u.t.a.Replace(n.Back, n.Slot, 0))
}

// ReplaceLeft moves sub into the left slot, leaving sub empty, and returns the previous left
// subtree as a standalone tree, nil if there was none. sub may be nil to clear the slot.
// Time: O(n) in the sizes of both subtrees.
func (u Anchor[T, S]) ReplaceLeft(sub *BinaryTree[T, S]) *BinaryTree[T, S] {
	return u.replace(Left, sub)
}

// ReplaceRight is ReplaceLeft for the right slot.
func (u Anchor[T, S]) ReplaceRight(sub *BinaryTree[T, S]) *BinaryTree[T, S] {
	return u.replace(Right, sub)
}

func (u Anchor[T, S]) replace(s Slot, sub *BinaryTree[T, S]) *BinaryTree[T, S] {
	u.node()
	return u.t.evict(u.t.a.Replace(u.i, s, u.t.adopt(sub)))
}
