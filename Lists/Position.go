package Lists

import (
	"github.com/g-m-twostay/go-linked/internal"
	"golang.org/x/exp/constraints"
)

// Position is a copyable reference to a node of a List. It never owns the node; edits made
// through it are performed by the list. Using a Position after its node was detached panics
// with StaleCursorError, the zero value panics with NilCursorError.
type Position[T any, S constraints.Unsigned] struct {
	l   *List[T, S]
	i   S
	gen uint32
}

func (u *List[T, S]) position(i S) Position[T, S] {
	if i == 0 {
		panic(NilCursorError{})
	}
	return Position[T, S]{u, i, u.a.At(i).Gen}
}

func (u *List[T, S]) maybe(i S) (Position[T, S], bool) {
	if i == 0 {
		return Position[T, S]{}, false
	}
	return u.position(i), true
}

func (u Position[T, S]) node() *internal.Node[T, S] {
	if u.l == nil || u.i == 0 {
		panic(NilCursorError{})
	}
	if !u.l.a.Live(u.i, u.gen) {
		panic(StaleCursorError{Index: uint64(u.i)})
	}
	return u.l.a.At(u.i)
}

// Valid reports whether the node is still in the list.
func (u Position[T, S]) Valid() bool {
	return u.l != nil && u.l.a.Live(u.i, u.gen)
}

// Same reports whether both positions reference the same node.
func (u Position[T, S]) Same(o Position[T, S]) bool {
	return u.l == o.l && u.i == o.i && u.gen == o.gen
}

// In reports whether the position belongs to l.
func (u Position[T, S]) In(l *List[T, S]) bool {
	return u.l == l
}

func (u Position[T, S]) Value() T {
	return u.node().V
}

// Ptr to the value. Invalidated by the next insertion into the list.
func (u Position[T, S]) Ptr() *T {
	return &u.node().V
}

func (u Position[T, S]) Set(v T) {
	u.node().V = v
}

func (u Position[T, S]) Next() (Position[T, S], bool) {
	return u.l.maybe(u.node().Own[internal.Next])
}

func (u Position[T, S]) Prev() (Position[T, S], bool) {
	return u.l.maybe(u.node().Back)
}

func (u Position[T, S]) IsHead() bool {
	return u.node().Slot == internal.Root
}

func (u Position[T, S]) IsTail() bool {
	return u.node().Own[internal.Next] == 0
}

// Detach removes the node from the list and returns its value. The position is stale
// afterwards.
// Time: O(1)
func (u Position[T, S]) Detach() T {
	u.node()
	u.l.unlink(u.i)
	return u.l.a.Release(u.i)
}

// InsertBefore puts v right before this node, becoming the head if this node was.
// Time: O(1)
func (u Position[T, S]) InsertBefore(v T) Position[T, S] {
	p := u.node().Back
	i := u.l.a.Alloc(v)
	u.l.link(p, i)
	return u.l.position(i)
}

// InsertAfter puts v right after this node, becoming the tail if this node was.
// Time: O(1)
func (u Position[T, S]) InsertAfter(v T) Position[T, S] {
	u.node()
	i := u.l.a.Alloc(v)
	u.l.link(u.i, i)
	return u.l.position(i)
}
